package billrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// GormBillRepository implements BillRepository using GORM.
type GormBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillRepository creates a new GORM bill repository.
func NewGormBillRepository(db *gorm.DB, tracker aggregateTracker) *GormBillRepository {
	return &GormBillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bill to the database. A duplicate order id trips the unique
// index and is reported as a conflict.
func (r *GormBillRepository) Add(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order "+aggregate.OrderID().String()+" is already billed", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bill. The write is version-guarded; concurrent
// modification is reported as a conflict. New payments are upserted and
// payments removed by a refund are deleted.
func (r *GormBillRepository) Update(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	tx := r.db.WithContext(ctx)
	result := tx.Model(&BillDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("id", "order_id", "created_at", "Payments").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := tx.Model(&BillDTO{}).Where("id = ?", dto.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("bill", aggregate.ID().String())
		}
		return errs.NewConflictError("bill " + aggregate.ID().String() + " was modified concurrently")
	}

	for _, payment := range dto.Payments {
		p := payment
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
	}

	for _, removedID := range aggregate.RemovedPaymentIDs() {
		if err := tx.Delete(&PaymentDTO{}, "id = ?", removedID.Bytes()).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bill by ID with its payments.
func (r *GormBillRepository) Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at ASC") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the bill generated for an order, if any.
func (r *GormBillRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at ASC") }).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOutstanding retrieves all bills that are not yet fully paid.
func (r *GormBillRepository) GetAllOutstanding(ctx context.Context) ([]*bill.Bill, error) {
	var dtos []BillDTO
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Find(&dtos, "status <> ?", int(bill.StatusPaid)).Error
	if err != nil {
		return nil, err
	}

	bills := make([]*bill.Bill, 0, len(dtos))
	for _, dto := range dtos {
		b, toDomainErr := toDomain(dto)
		if toDomainErr != nil {
			return nil, toDomainErr
		}
		bills = append(bills, b)
	}

	return bills, nil
}
