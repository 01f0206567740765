package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// nopTracker satisfies the repository tracker without recording anything.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	handler    queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
	))

	suite.db = db
	suite.repository = orderrepo.NewGormOrderRepository(db, nopTracker{})
	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsFullView() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	staffID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(testOrder.Advance(order.Cutting, staffID, actor.RoleStaff))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(view.ID.IsEqual(testOrder.ID()))
	suite.True(view.CustomerID.IsEqual(testOrder.CustomerID()))
	suite.Equal("Cutting", view.Status)
	suite.Equal(int64(1200), view.Total)
	suite.Equal(string(order.FabricFromCustomer), view.FabricSource)
	suite.Equal(map[string]float64{"chest": 102.5, "waist": 88}, view.Measurements)
	suite.Equal("mandarin", view.Customization.Collar)
	suite.False(view.Embroidery.Enabled)

	suite.Require().Len(view.Items, 2)
	suite.Equal("Sherwani", view.Items[0].Name)
	suite.Equal(int64(800), view.Items[0].Subtotal)
	suite.Equal("Kurta", view.Items[1].Name)
	suite.Equal(int64(400), view.Items[1].Subtotal)

	suite.Require().Len(view.StatusHistory, 1)
	suite.Equal("OrderPlaced", view.StatusHistory[0].From)
	suite.Equal("Cutting", view.StatusHistory[0].To)
	suite.True(view.StatusHistory[0].ActorID.IsEqual(staffID))
	suite.False(view.StatusHistory[0].Forced)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderWithoutTailor_NilTailorID() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Nil(view.TailorID)
	suite.Empty(view.StatusHistory)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_AssignedTailor_AppearsInView() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	tailorID := kernel.NewUUID()

	suite.Require().NoError(testOrder.AssignTailor(tailorID))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(view.TailorID)
	suite.True(view.TailorID.IsEqual(tailorID))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) createTestOrder() *order.Order {
	sherwaniPrice, err := kernel.NewMoney(800)
	suite.Require().NoError(err)
	sherwani, err := order.NewLineItem("Sherwani", 1, sherwaniPrice)
	suite.Require().NoError(err)

	kurtaPrice, err := kernel.NewMoney(200)
	suite.Require().NoError(err)
	kurta, err := order.NewLineItem("Kurta", 2, kurtaPrice)
	suite.Require().NoError(err)

	fabric, err := order.NewCustomerFabric("customer supplied silk")
	suite.Require().NoError(err)

	measurements, err := order.NewMeasurementSnapshot(map[string]float64{
		"chest": 102.5, "waist": 88,
	})
	suite.Require().NoError(err)

	total, err := kernel.NewMoney(1200)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{sherwani, kurta},
		fabric,
		measurements,
		order.Customization{Collar: "mandarin"},
		order.DisabledEmbroidery(),
		false,
		time.Now().UTC().AddDate(0, 0, 14),
		total,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetOrderQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
