package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// testOrder builds a freshly placed order owned by customerID with a frozen
// total of 1200.
func testOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	unitPrice, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	item, err := order.NewLineItem("kurta stitching", 1, unitPrice)
	require.NoError(t, err)
	fabric, err := order.NewCustomerFabric("own linen")
	require.NoError(t, err)
	snapshot, err := order.NewMeasurementSnapshot(map[string]float64{"chest": 101.5})
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, []order.LineItem{item}, fabric, snapshot,
		order.Customization{}, order.DisabledEmbroidery(), false,
		time.Now().AddDate(0, 0, 14), unitPrice,
	)
	require.NoError(t, err)
	return o
}

// testBill builds an unpaid bill of the given amount for orderID.
func testBill(t *testing.T, orderID kernel.UUID, amount int64) *bill.Bill {
	t.Helper()

	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	b, err := bill.NewBill(kernel.NewUUID(), orderID, money)
	require.NoError(t, err)
	return b
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockBillRepository struct{ mock.Mock }

func (m *MockBillRepository) Add(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) Update(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) GetAllOutstanding(ctx context.Context) ([]*bill.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Add(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BillRepository() ports.BillRepository {
	args := m.Called()
	return args.Get(0).(ports.BillRepository)
}

func (m *MockUoW) ActorRepository() ports.ActorRepository {
	args := m.Called()
	return args.Get(0).(ports.ActorRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBillUoWFactory struct{ mock.Mock }

func (m *MockBillUoWFactory) Create() commands.BillUoW {
	args := m.Called()
	return args.Get(0).(commands.BillUoW)
}

type MockActorUoWFactory struct{ mock.Mock }

func (m *MockActorUoWFactory) Create() commands.ActorUoW {
	args := m.Called()
	return args.Get(0).(commands.ActorUoW)
}

type MockOrderActorUoWFactory struct{ mock.Mock }

func (m *MockOrderActorUoWFactory) Create() commands.OrderActorUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderActorUoW)
}

type MockOrderBillUoWFactory struct{ mock.Mock }

func (m *MockOrderBillUoWFactory) Create() commands.OrderBillUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderBillUoW)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateSession(
	ctx context.Context,
	billID kernel.UUID,
	amount kernel.Money,
) (ports.PaymentSession, error) {
	args := m.Called(ctx, billID, amount)
	return args.Get(0).(ports.PaymentSession), args.Error(1)
}

func (m *MockPaymentGateway) Verify(callback ports.GatewayCallback) error {
	args := m.Called(callback)
	return args.Error(0)
}

type MockFabricCatalog struct{ mock.Mock }

func (m *MockFabricCatalog) Get(ctx context.Context, fabricID kernel.UUID) (ports.CatalogFabric, error) {
	args := m.Called(ctx, fabricID)
	return args.Get(0).(ports.CatalogFabric), args.Error(1)
}

type MockMeasurementProvider struct{ mock.Mock }

func (m *MockMeasurementProvider) Get(ctx context.Context, customerID kernel.UUID) (map[string]float64, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type MockBillSummaryCache struct{ mock.Mock }

func (m *MockBillSummaryCache) Invalidate(orderID kernel.UUID) {
	m.Called(orderID)
}
