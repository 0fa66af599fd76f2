package properties

import (
	"testing"

	"property-catalog/internal/domain/catalog"
	"property-catalog/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToPropertyDTO(t *testing.T) {
	row := repository.PropertyRow{
		Property: catalog.Property{
			ID:      "p-1",
			Name:    "Loft",
			Address: "Calle 10",
			Price:   decimal.NewFromInt(100),
			Year:    2010,
			OwnerID: "o-1",
		},
		Owner: &catalog.Owner{ID: "o-1", Name: "Ana", Photo: "https://img.example/a.jpg"},
		Images: []catalog.PropertyImage{
			{ID: "i-1", File: "https://img.example/1.jpg", Enabled: false},
			{ID: "i-2", File: "https://img.example/2.jpg", Enabled: true},
			{ID: "i-3", File: "https://img.example/3.jpg", Enabled: true},
		},
	}

	dto := toPropertyDTO(row)
	assert.Equal(t, "p-1", dto.IDProperty)
	assert.Equal(t, "o-1", dto.IDOwner)
	assert.Equal(t, "Ana", dto.OwnerName)
	assert.Equal(t, "https://img.example/a.jpg", dto.OwnerPhoto)
	// first enabled image, not first image
	assert.Equal(t, "https://img.example/2.jpg", dto.Image)
}

func TestToPropertyDTOMissingOwner(t *testing.T) {
	dto := toPropertyDTO(repository.PropertyRow{
		Property: catalog.Property{ID: "p-1", OwnerID: "o-gone"},
	})
	assert.Equal(t, "o-gone", dto.IDOwner)
	assert.Equal(t, "", dto.OwnerName)
	assert.Equal(t, "", dto.OwnerPhoto)
	assert.Equal(t, "", dto.Image)
}

func TestToPropertyDTONoEnabledImage(t *testing.T) {
	dto := toPropertyDTO(repository.PropertyRow{
		Property: catalog.Property{ID: "p-1"},
		Images: []catalog.PropertyImage{
			{File: "https://img.example/1.jpg", Enabled: false},
		},
	})
	assert.Equal(t, "", dto.Image)
}
