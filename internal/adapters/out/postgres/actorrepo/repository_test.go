package actorrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"atelier/internal/adapters/out/postgres/actorrepo"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ActorRepositoryTestSuite exercises ActorRepository against an in-memory
// SQLite database.
type ActorRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *actorrepo.GormActorRepository
	tracker    *MockAggregateTracker
}

func (suite *ActorRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(&actorrepo.ActorDTO{}))

	suite.db = db
	suite.tracker = new(MockAggregateTracker)
	suite.repository = actorrepo.NewGormActorRepository(db, suite.tracker)
}

func (suite *ActorRepositoryTestSuite) TestAdd_ValidActor_Success() {
	ctx := context.Background()
	testActor := suite.createTestActor("Meera", actor.RoleTailor)

	suite.tracker.On("TrackAggregate", testActor.ID(), testActor).Once()

	err := suite.repository.Add(ctx, testActor)
	suite.Require().NoError(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ActorRepositoryTestSuite) TestAdd_DuplicateID_Conflict() {
	ctx := context.Background()
	testActor := suite.createTestActor("Meera", actor.RoleTailor)
	duplicate, err := actor.RestoreActor(testActor.ID(), "Imposter", actor.RoleStaff)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testActor))

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *ActorRepositoryTestSuite) TestGet_RoundTripPreservesActor() {
	ctx := context.Background()
	testActor := suite.createTestActor("Arjun", actor.RoleAdmin)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testActor))

	restored, err := suite.repository.Get(ctx, testActor.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testActor.ID()))
	suite.Equal("Arjun", restored.Name())
	suite.Equal(actor.RoleAdmin, restored.Role())
}

func (suite *ActorRepositoryTestSuite) TestGet_NonExistentActor_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ActorRepositoryTestSuite) createTestActor(name string, role actor.Role) *actor.Actor {
	testActor, err := actor.NewActor(kernel.NewUUID(), name, role)
	suite.Require().NoError(err)
	return testActor
}

func TestActorRepositorySuite(t *testing.T) {
	suite.Run(t, new(ActorRepositoryTestSuite))
}
