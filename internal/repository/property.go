package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"property-catalog/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchFilter holds the optional, conjunctive property filters. Zero-value
// fields are skipped entirely: an empty filter matches every property.
type SearchFilter struct {
	Name     string
	Address  string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// PropertyRow is a property joined with its owner and images, the shape the
// listing and detail endpoints project from. Owner is nil when the referenced
// owner row no longer exists; that is not an error.
type PropertyRow struct {
	Property catalog.Property
	Owner    *catalog.Owner
	Images   []catalog.PropertyImage
}

type PropertyRepository interface {
	// Search returns one page of matching rows plus the total match count
	// computed before pagination. Page numbers are 1-based; the caller is
	// expected to have defaulted non-positive values already.
	Search(ctx context.Context, filter SearchFilter, pageNumber, pageSize int) ([]PropertyRow, int64, error)
	GetByID(ctx context.Context, id string) (*PropertyRow, error)
	Create(ctx context.Context, property *catalog.Property) error
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func searchQuery(db *gorm.DB, f SearchFilter) *gorm.DB {
	q := db.Model(&catalog.Property{})
	if f.Name != "" {
		q = q.Where("name ILIKE ?", "%"+escapeLike(f.Name)+"%")
	}
	if f.Address != "" {
		q = q.Where("address ILIKE ?", "%"+escapeLike(f.Address)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	return q
}

// escapeLike neutralizes LIKE wildcards so user input is matched as a literal
// substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *propertyRepository) Search(ctx context.Context, filter SearchFilter, pageNumber, pageSize int) ([]PropertyRow, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := searchQuery(db, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []catalog.Property
	err := searchQuery(db, filter).
		Order("id ASC").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.joinRows(ctx, properties)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// joinRows attaches owners and images to a page of properties with one batch
// query per collection, mirroring the lookup stage of the listing pipeline.
func (r *propertyRepository) joinRows(ctx context.Context, properties []catalog.Property) ([]PropertyRow, error) {
	rows := make([]PropertyRow, 0, len(properties))
	if len(properties) == 0 {
		return rows, nil
	}

	db := r.db.WithContext(ctx)

	ownerIDs := make([]string, 0, len(properties))
	propertyIDs := make([]string, 0, len(properties))
	for _, p := range properties {
		ownerIDs = append(ownerIDs, p.OwnerID)
		propertyIDs = append(propertyIDs, p.ID)
	}

	var owners []catalog.Owner
	if err := db.Find(&owners, "id IN ?", ownerIDs).Error; err != nil {
		return nil, err
	}
	ownersByID := make(map[string]catalog.Owner, len(owners))
	for _, o := range owners {
		ownersByID[o.ID] = o
	}

	var images []catalog.PropertyImage
	if err := db.Order("id ASC").Find(&images, "property_id IN ?", propertyIDs).Error; err != nil {
		return nil, err
	}
	imagesByProperty := make(map[string][]catalog.PropertyImage, len(properties))
	for _, img := range images {
		imagesByProperty[img.PropertyID] = append(imagesByProperty[img.PropertyID], img)
	}

	for _, p := range properties {
		row := PropertyRow{Property: p, Images: imagesByProperty[p.ID]}
		if o, ok := ownersByID[p.OwnerID]; ok {
			owner := o
			row.Owner = &owner
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*PropertyRow, error) {
	var property catalog.Property
	err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.joinRows(ctx, []catalog.Property{property})
	if err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// Create inserts the property after verifying the owner exists. Both steps run
// in one transaction so a concurrent owner deletion cannot slip between the
// check and the insert.
func (r *propertyRepository) Create(ctx context.Context, property *catalog.Property) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalog.Owner{}).Where("id = ?", property.OwnerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOwnerNotFound
		}
		return tx.Create(property).Error
	})
}

// UpdatePrice replaces the stored price and appends the audit trace. The two
// writes are intentionally not wrapped in a transaction: the trace is
// supplementary audit data, and a missing record after a partial failure is
// tolerated.
func (r *propertyRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	db := r.db.WithContext(ctx)

	var property catalog.Property
	err := db.First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPropertyNotFound
	}
	if err != nil {
		return err
	}

	oldPrice := property.Price
	property.Price = price
	if err := db.Save(&property).Error; err != nil {
		return err
	}

	trace := catalog.PropertyTrace{
		PropertyID: property.ID,
		DateSale:   time.Now().UTC(),
		Name:       "Price Update",
		Value:      price,
		Tax:        oldPrice,
	}
	return db.Create(&trace).Error
}

// Delete removes the property's images and then the property itself. Traces
// are kept as a permanent audit trail.
func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&catalog.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPropertyNotFound
	}

	if err := db.Delete(&catalog.PropertyImage{}, "property_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&catalog.Property{}, "id = ?", id).Error
}
