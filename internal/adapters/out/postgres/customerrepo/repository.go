// Package customerrepo persists customers in the customers table.
package customerrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// CustomerDTO is the row layout of the customers table.
type CustomerDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Email string `gorm:"type:varchar(255)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{db: db, tracker: tracker}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := CustomerDTO{Name: aggregate.Name(), Email: aggregate.Email()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceErrorWithCause("insert customer", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id)
		}
		return nil, errs.NewPersistenceErrorWithCause("select customer", err)
	}

	return customer.RestoreCustomer(dto.ID, dto.Name, dto.Email), nil
}
