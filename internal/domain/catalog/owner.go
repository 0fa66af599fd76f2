package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Owner struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"idOwner"`
	Name     string    `gorm:"not null" json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo"`
	Birthday time.Time `json:"birthday"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
