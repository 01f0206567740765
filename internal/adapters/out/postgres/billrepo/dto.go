// Package billrepo provides data transfer objects and mapping functions for bill persistence.
// This package implements the repository pattern for the bill domain aggregate, handling
// the conversion between domain entities and database representations.
package billrepo

import (
	"time"

	"github.com/google/uuid"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
)

// BillDTO represents the database structure for persisting bill aggregates.
// The unique index on OrderID enforces the one-bill-per-order rule at the
// storage level as well.
type BillDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Amount          int64     `gorm:"not null"`
	Status          int       `gorm:"not null;index"`
	ExternalOrderID string    `gorm:"type:varchar(255);index"`
	CheckoutURL     string    `gorm:"type:varchar(2048)"`
	CreatedAt       time.Time
	Version         int          `gorm:"not null"`
	Payments        []PaymentDTO `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

// PaymentDTO represents a payment row belonging to a bill.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BillID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      int64     `gorm:"not null"`
	Method      int       `gorm:"not null"`
	ExternalRef string    `gorm:"type:varchar(255)"`
	Verified    bool
	RecordedAt  time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a bill domain aggregate to its database representation.
// Status is denormalized so outstanding bills can be selected without loading
// payments.
func fromDomain(aggregate *bill.Bill) BillDTO {
	billID := aggregate.ID().Bytes()
	payments := make([]PaymentDTO, 0, len(aggregate.Payments()))
	for _, p := range aggregate.Payments() {
		payments = append(payments, PaymentDTO{
			ID:          p.ID().Bytes(),
			BillID:      billID,
			Amount:      p.Amount().Amount(),
			Method:      int(p.Method()),
			ExternalRef: p.ExternalRef(),
			Verified:    p.Verified(),
			RecordedAt:  p.RecordedAt(),
		})
	}

	return BillDTO{
		ID:              billID,
		OrderID:         aggregate.OrderID().Bytes(),
		Amount:          aggregate.Amount().Amount(),
		Status:          int(aggregate.Status()),
		ExternalOrderID: aggregate.ExternalOrderID(),
		CheckoutURL:     aggregate.CheckoutURL(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Payments:        payments,
	}
}

// toDomain converts a database DTO to a bill domain aggregate.
// Reconstructs the complete aggregate using RestoreBill; paid amount and
// status are recomputed from the payments.
func toDomain(dto BillDTO) (*bill.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	payments := make([]bill.Payment, 0, len(dto.Payments))
	for _, p := range dto.Payments {
		payment, paymentErr := paymentToDomain(p)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	return bill.RestoreBill(id, orderID, amount, dto.ExternalOrderID, dto.CheckoutURL, payments, dto.CreatedAt, dto.Version)
}

func paymentToDomain(dto PaymentDTO) (bill.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return bill.Payment{}, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return bill.Payment{}, err
	}

	return bill.RestorePayment(id, amount, bill.Method(dto.Method), dto.ExternalRef, dto.Verified, dto.RecordedAt)
}
