package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves single-order views from the database.
// Reads the order row, its line items and its status audit trail directly,
// without loading the domain aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the order read model.
// Returns ErrObjectNotFound if no order with the given id exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Items, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.StatusHistory, err = h.readStatusHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			tailor_id,
			status,
			fabric_source,
			fabric_name,
			fabric_quantity,
			fabric_notes,
			measurements,
			customization_collar,
			customization_sleeve,
			customization_pocket,
			customization_notes,
			embroidery_enabled,
			embroidery_type,
			embroidery_placements,
			embroidery_pattern,
			embroidery_colors,
			embroidery_notes,
			embroidery_status,
			embroidery_cost,
			urgent,
			total,
			expected_delivery,
			attachments,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var response GetOrderQueryResponse
	var id uuid.UUID
	var customerID uuid.UUID
	var tailorID uuid.NullUUID
	var status int
	var measurements, placements, colors, attachments string
	var embroidery EmbroideryView

	err = rows.Scan(
		&id,
		&customerID,
		&tailorID,
		&status,
		&response.FabricSource,
		&response.FabricName,
		&response.FabricQuantity,
		&response.FabricNotes,
		&measurements,
		&response.Customization.Collar,
		&response.Customization.Sleeve,
		&response.Customization.Pocket,
		&response.Customization.Notes,
		&embroidery.Enabled,
		&embroidery.Type,
		&placements,
		&embroidery.Pattern,
		&colors,
		&embroidery.Notes,
		&embroidery.Status,
		&embroidery.Cost,
		&response.Urgent,
		&response.Total,
		&response.ExpectedDelivery,
		&attachments,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.Version,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if tailorID.Valid {
		tID, tErr := kernel.UUIDFromBytes(tailorID.UUID[:])
		if tErr != nil {
			return GetOrderQueryResponse{}, tErr
		}
		response.TailorID = &tID
	}

	response.Status = order.Status(status).String()

	if err = json.Unmarshal([]byte(measurements), &response.Measurements); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if embroidery.Enabled {
		if err = json.Unmarshal([]byte(placements), &embroidery.Placements); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if err = json.Unmarshal([]byte(colors), &embroidery.Colors); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	response.Embroidery = embroidery

	if attachments != "" {
		if err = json.Unmarshal([]byte(attachments), &response.Attachments); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return response, rows.Err()
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		if err = rows.Scan(&item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice * int64(item.Quantity)
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readStatusHistory(ctx context.Context, orderID kernel.UUID) ([]StatusChangeView, error) {
	history := make([]StatusChangeView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			role,
			forced,
			at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view StatusChangeView
		var fromStatus, toStatus, role int
		var actorID uuid.UUID

		if err = rows.Scan(&fromStatus, &toStatus, &actorID, &role, &view.Forced, &view.At); err != nil {
			return nil, err
		}

		view.From = order.Status(fromStatus).String()
		view.To = order.Status(toStatus).String()
		view.Role = actor.Role(role).String()
		view.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}

		history = append(history, view)
	}

	return history, rows.Err()
}
