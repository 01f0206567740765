// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for querying by customer and tailor. Variable-length value lists
// (measurements, placements, colors, attachments) are stored as JSON text.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TailorID         *uuid.UUID `gorm:"type:uuid;index"`
	Status           int        `gorm:"not null"`
	FabricSource     string     `gorm:"type:varchar(16);not null"`
	FabricID         *uuid.UUID `gorm:"type:uuid"`
	FabricName       string     `gorm:"type:varchar(255)"`
	FabricUnitPrice  int64
	FabricQuantity   int
	FabricNotes      string         `gorm:"type:text"`
	Measurements     string         `gorm:"type:text;not null"`
	Customization    CustomizationDTO `gorm:"embedded;embeddedPrefix:customization_"`
	Embroidery       EmbroideryDTO    `gorm:"embedded;embeddedPrefix:embroidery_"`
	Urgent           bool
	Total            int64 `gorm:"not null"`
	ExpectedDelivery time.Time
	Attachments      string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int            `gorm:"not null"`
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomizationDTO represents the embedded styling choices within the order table.
type CustomizationDTO struct {
	Collar string `gorm:"type:varchar(255)"`
	Sleeve string `gorm:"type:varchar(255)"`
	Pocket string `gorm:"type:varchar(255)"`
	Notes  string `gorm:"type:text"`
}

// EmbroideryDTO represents the embedded embroidery sub-entity within the order table.
type EmbroideryDTO struct {
	Enabled    bool
	Type       string `gorm:"type:varchar(16)"`
	Placements string `gorm:"type:text"`
	Pattern    string `gorm:"type:varchar(255)"`
	Colors     string `gorm:"type:text"`
	Notes      string `gorm:"type:text"`
	Status     string `gorm:"type:varchar(16)"`
	Cost       int64
}

// OrderItemDTO represents a line item row belonging to an order.
// Position preserves the request order of the items.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents an audit trail row for an order status transition.
type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"not null"`
	ToStatus   int       `gorm:"not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Role       int       `gorm:"not null"`
	Forced     bool
	At         time.Time
}

// TableName specifies the database table name for order status changes.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
// The version column carries the version the aggregate was loaded with; the
// repository bumps it on update.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var tailorID *uuid.UUID
	if id := aggregate.Tailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	fabric := aggregate.Fabric()
	var fabricID *uuid.UUID
	if fabric.Source() == order.FabricFromShop {
		raw := fabric.FabricID().Bytes()
		fabricID = &raw
	}

	measurements, err := json.Marshal(aggregate.Measurements().Values())
	if err != nil {
		return OrderDTO{}, err
	}

	embroidery := aggregate.Embroidery()
	placements, err := json.Marshal(embroidery.Placements())
	if err != nil {
		return OrderDTO{}, err
	}
	colors, err := json.Marshal(embroidery.Colors())
	if err != nil {
		return OrderDTO{}, err
	}

	attachments, err := json.Marshal(aggregate.Attachments())
	if err != nil {
		return OrderDTO{}, err
	}

	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		TailorID:        tailorID,
		Status:          int(aggregate.Status()),
		FabricSource:    string(fabric.Source()),
		FabricID:        fabricID,
		FabricName:      fabric.Name(),
		FabricUnitPrice: fabric.UnitPrice().Amount(),
		FabricQuantity:  fabric.Quantity(),
		FabricNotes:     fabric.Notes(),
		Measurements:    string(measurements),
		Customization: CustomizationDTO{
			Collar: aggregate.Customization().Collar,
			Sleeve: aggregate.Customization().Sleeve,
			Pocket: aggregate.Customization().Pocket,
			Notes:  aggregate.Customization().Notes,
		},
		Embroidery: EmbroideryDTO{
			Enabled:    embroidery.Enabled(),
			Type:       string(embroidery.Type()),
			Placements: string(placements),
			Pattern:    embroidery.Pattern(),
			Colors:     string(colors),
			Notes:      embroidery.Notes(),
			Status:     string(embroidery.Status()),
			Cost:       embroidery.Cost().Amount(),
		},
		Urgent:           aggregate.Urgent(),
		Total:            aggregate.Total().Amount(),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		Attachments:      string(attachments),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
		Items:            items,
	}, nil
}

// changesFromDomain converts the aggregate's freshly recorded transitions to
// audit rows.
func changesFromDomain(aggregate *order.Order) []StatusChangeDTO {
	changes := aggregate.Changes()
	rows := make([]StatusChangeDTO, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, StatusChangeDTO{
			ID:         c.ID.Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			FromStatus: int(c.From),
			ToStatus:   int(c.To),
			ActorID:    c.ActorID.Bytes(),
			Role:       int(c.Role),
			Forced:     c.Forced,
			At:         c.At,
		})
	}
	return rows
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.TailorID != nil {
		tID, tailorErr := kernel.UUIDFromBytes((*dto.TailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}
		tailorID = &tID
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	fabric, err := fabricToDomain(dto)
	if err != nil {
		return nil, err
	}

	var measurementValues map[string]float64
	if err = json.Unmarshal([]byte(dto.Measurements), &measurementValues); err != nil {
		return nil, err
	}
	measurements, err := order.NewMeasurementSnapshot(measurementValues)
	if err != nil {
		return nil, err
	}

	embroidery, err := embroideryToDomain(dto.Embroidery)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	var attachments []string
	if dto.Attachments != "" {
		if err = json.Unmarshal([]byte(dto.Attachments), &attachments); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		fabric,
		measurements,
		order.Customization{
			Collar: dto.Customization.Collar,
			Sleeve: dto.Customization.Sleeve,
			Pocket: dto.Customization.Pocket,
			Notes:  dto.Customization.Notes,
		},
		embroidery,
		tailorID,
		order.Status(dto.Status),
		total,
		dto.Urgent,
		dto.ExpectedDelivery,
		attachments,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(dto.Name, dto.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func fabricToDomain(dto OrderDTO) (order.FabricSelection, error) {
	if order.FabricSource(dto.FabricSource) == order.FabricFromCustomer {
		return order.NewCustomerFabric(dto.FabricNotes)
	}

	var fabricID kernel.UUID
	if dto.FabricID != nil {
		id, err := kernel.UUIDFromBytes((*dto.FabricID)[:])
		if err != nil {
			return order.FabricSelection{}, err
		}
		fabricID = id
	}

	unitPrice, err := kernel.NewMoney(dto.FabricUnitPrice)
	if err != nil {
		return order.FabricSelection{}, err
	}

	return order.NewShopFabric(fabricID, dto.FabricName, unitPrice, dto.FabricQuantity)
}

func embroideryToDomain(dto EmbroideryDTO) (order.Embroidery, error) {
	if !dto.Enabled {
		return order.DisabledEmbroidery(), nil
	}

	var placements []order.Placement
	if err := json.Unmarshal([]byte(dto.Placements), &placements); err != nil {
		return order.Embroidery{}, err
	}

	var colors []string
	if err := json.Unmarshal([]byte(dto.Colors), &colors); err != nil {
		return order.Embroidery{}, err
	}

	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return order.Embroidery{}, err
	}

	return order.RestoreEmbroidery(
		true,
		order.EmbroideryType(dto.Type),
		placements,
		dto.Pattern,
		colors,
		dto.Notes,
		order.EmbroideryStatus(dto.Status),
		cost,
	)
}
