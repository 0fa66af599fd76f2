package repository

import (
	"context"
	"errors"

	"property-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

type PropertyImageRepository interface {
	GetByPropertyID(ctx context.Context, propertyID string) ([]catalog.PropertyImage, error)
	GetByID(ctx context.Context, id string) (*catalog.PropertyImage, error)
	Create(ctx context.Context, image *catalog.PropertyImage) error
	Delete(ctx context.Context, id string) error
}

type propertyImageRepository struct {
	db *gorm.DB
}

func NewPropertyImageRepository(db *gorm.DB) PropertyImageRepository {
	return &propertyImageRepository{db: db}
}

func (r *propertyImageRepository) GetByPropertyID(ctx context.Context, propertyID string) ([]catalog.PropertyImage, error) {
	var images []catalog.PropertyImage
	err := r.db.WithContext(ctx).Order("id ASC").Find(&images, "property_id = ?", propertyID).Error
	return images, err
}

func (r *propertyImageRepository) GetByID(ctx context.Context, id string) (*catalog.PropertyImage, error) {
	var image catalog.PropertyImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *propertyImageRepository) Create(ctx context.Context, image *catalog.PropertyImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *propertyImageRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.PropertyImage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}
