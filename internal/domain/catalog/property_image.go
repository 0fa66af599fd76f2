package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyImage struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"idPropertyImage"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"idProperty"`
	File       string `gorm:"not null" json:"file"`
	PublicID   string `gorm:"column:public_id" json:"publicId"`
	Enabled    bool   `gorm:"not null;default:true" json:"enabled"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
