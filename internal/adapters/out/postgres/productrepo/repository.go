// Package productrepo persists products in the products table.
package productrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO is the row layout of the products table.
type ProductDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ProductDTO{Name: aggregate.Name(), Price: aggregate.Price().Decimal()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceErrorWithCause("insert product", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id)
		}
		return nil, errs.NewPersistenceErrorWithCause("select product", err)
	}

	return product.RestoreProduct(dto.ID, dto.Name, dto.Price)
}
