package repository

import (
	"context"

	"property-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// PropertyTraceRepository is append-and-read only. Traces are never updated
// or deleted, not even when their property is.
type PropertyTraceRepository interface {
	GetByPropertyID(ctx context.Context, propertyID string) ([]catalog.PropertyTrace, error)
	Create(ctx context.Context, trace *catalog.PropertyTrace) error
}

type propertyTraceRepository struct {
	db *gorm.DB
}

func NewPropertyTraceRepository(db *gorm.DB) PropertyTraceRepository {
	return &propertyTraceRepository{db: db}
}

func (r *propertyTraceRepository) GetByPropertyID(ctx context.Context, propertyID string) ([]catalog.PropertyTrace, error) {
	var traces []catalog.PropertyTrace
	err := r.db.WithContext(ctx).Order("date_sale ASC").Find(&traces, "property_id = ?", propertyID).Error
	return traces, err
}

func (r *propertyTraceRepository) Create(ctx context.Context, trace *catalog.PropertyTrace) error {
	return r.db.WithContext(ctx).Create(trace).Error
}
