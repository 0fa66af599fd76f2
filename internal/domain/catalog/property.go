package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Property struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"idProperty"`
	Name         string          `gorm:"not null" json:"name"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	CodeInternal string          `gorm:"column:code_internal" json:"codeInternal"`
	Year         int             `json:"year"`

	// OwnerID is checked against owners at creation time only. A later owner
	// deletion leaves it dangling; reads tolerate the missing row.
	OwnerID string `gorm:"type:uuid;not null;index" json:"idOwner"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
