package repository

import (
	"context"
	"errors"

	"property-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	GetAll(ctx context.Context) ([]catalog.Owner, error)
	GetByID(ctx context.Context, id string) (*catalog.Owner, error)
	Create(ctx context.Context, owner *catalog.Owner) error
	Update(ctx context.Context, owner *catalog.Owner) error
	Delete(ctx context.Context, id string) error
}

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) GetAll(ctx context.Context) ([]catalog.Owner, error) {
	var owners []catalog.Owner
	err := r.db.WithContext(ctx).Order("id ASC").Find(&owners).Error
	return owners, err
}

func (r *ownerRepository) GetByID(ctx context.Context, id string) (*catalog.Owner, error) {
	var owner catalog.Owner
	err := r.db.WithContext(ctx).First(&owner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *catalog.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) Update(ctx context.Context, owner *catalog.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.Owner{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOwnerNotFound
	}
	return nil
}
