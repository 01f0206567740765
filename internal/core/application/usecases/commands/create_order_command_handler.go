package commands

import (
	"context"

	"go.uber.org/zap"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The workflow prices the order before the transaction opens: shop fabric is
// resolved against the catalog point-in-time, missing measurements are pulled
// from the measurement service, and the pricing calculator produces the total
// that gets frozen into the aggregate. Inside the transaction the customer's
// existence is checked and the order persisted in placed status. A status
// notification goes out after commit, best effort.
type CreateOrderCommandHandler struct {
	uowFactory   OrderActorUoWFactory
	catalog      ports.FabricCatalog
	measurements ports.MeasurementProvider
	pricing      services.PricingCalculator
	publisher    ports.NotificationPublisher
	logger       *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderActorUoWFactory,
	catalog ports.FabricCatalog,
	measurements ports.MeasurementProvider,
	pricing services.PricingCalculator,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		catalog:      catalog,
		measurements: measurements,
		pricing:      pricing,
		publisher:    publisher,
		logger:       logger,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildLineItems(cmd.Items())
	if err != nil {
		return err
	}

	fabric, err := h.resolveFabric(ctx, cmd.Fabric())
	if err != nil {
		return err
	}

	embroidery, err := buildEmbroidery(cmd.Embroidery())
	if err != nil {
		return err
	}

	snapshot, err := h.resolveMeasurements(ctx, cmd.CustomerID(), cmd.Measurements())
	if err != nil {
		return err
	}

	quote, err := h.pricing.Quote(items, fabric, embroidery, cmd.Urgent())
	if err != nil {
		return err
	}
	embroidery = embroidery.WithCost(quote.EmbroideryCost)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.ActorRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customer.Role() != actor.RoleCustomer {
		return errs.NewValueIsInvalidError("customer id")
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		fabric,
		snapshot,
		order.Customization{
			Collar: cmd.Customization().Collar,
			Sleeve: cmd.Customization().Sleeve,
			Pocket: cmd.Customization().Pocket,
			Notes:  cmd.Customization().Notes,
		},
		embroidery,
		cmd.Urgent(),
		cmd.ExpectedDelivery(),
		quote.Total,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ports.Notification{
		Kind:    ports.NotificationOrderStatusChanged,
		OrderID: aggregate.ID(),
		Detail:  aggregate.Status().String(),
	})

	return nil
}

func (h *CreateOrderCommandHandler) resolveFabric(ctx context.Context, input FabricInput) (order.FabricSelection, error) {
	switch order.FabricSource(input.Source) {
	case order.FabricFromShop:
		catalogFabric, err := h.catalog.Get(ctx, input.FabricID)
		if err != nil {
			return order.FabricSelection{}, err
		}
		return order.NewShopFabric(catalogFabric.ID, catalogFabric.Name, catalogFabric.UnitPrice, input.Quantity)
	case order.FabricFromCustomer:
		return order.NewCustomerFabric(input.Notes)
	default:
		return order.FabricSelection{}, errs.NewValueIsInvalidError("fabric source")
	}
}

func (h *CreateOrderCommandHandler) resolveMeasurements(
	ctx context.Context,
	customerID kernel.UUID,
	inline map[string]float64,
) (order.MeasurementSnapshot, error) {
	values := inline
	if len(values) == 0 {
		stored, err := h.measurements.Get(ctx, customerID)
		if err != nil {
			return order.MeasurementSnapshot{}, err
		}
		values = stored
	}

	return order.NewMeasurementSnapshot(values)
}

func (h *CreateOrderCommandHandler) publish(ctx context.Context, notification ports.Notification) {
	if err := h.publisher.Publish(ctx, notification); err != nil {
		h.logger.Warn("notification publish failed",
			zap.String("kind", string(notification.Kind)),
			zap.String("order_id", notification.OrderID.String()),
			zap.Error(err),
		)
	}
}

func buildLineItems(inputs []LineItemInput) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(inputs))
	for _, input := range inputs {
		unitPrice, err := kernel.NewMoney(input.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(input.Name, input.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func buildEmbroidery(input EmbroideryInput) (order.Embroidery, error) {
	if !input.Enabled {
		return order.DisabledEmbroidery(), nil
	}

	placements := make([]order.Placement, 0, len(input.Placements))
	for _, p := range input.Placements {
		placements = append(placements, order.Placement(p))
	}

	return order.NewEmbroidery(
		order.EmbroideryType(input.Type),
		placements,
		input.Pattern,
		input.Colors,
		input.Notes,
	)
}
