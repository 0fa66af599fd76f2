package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropertyTrace records one price change. Rows are append-only: no operation
// updates or deletes them, including property deletion.
//
// Value holds the new price and Tax the prior one. The mapping is inherited
// from the upstream data set and kept as-is so existing records stay readable.
type PropertyTrace struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"idPropertyTrace"`
	PropertyID string          `gorm:"type:uuid;not null;index" json:"idProperty"`
	DateSale   time.Time       `json:"dateSale"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `gorm:"type:decimal(18,2)" json:"value"`
	Tax        decimal.Decimal `gorm:"type:decimal(18,2)" json:"tax"`

	CreatedAt time.Time `json:"-"`
}

func (t *PropertyTrace) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
