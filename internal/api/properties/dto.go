package properties

import (
	"property-catalog/internal/repository"

	"github.com/shopspring/decimal"
)

// ---------- requests

type CreatePropertyRequest struct {
	Name    string          `json:"name" binding:"required"`
	Address string          `json:"address"`
	Price   decimal.Decimal `json:"price"`
	Year    int             `json:"year"`
	IDOwner string          `json:"idOwner" binding:"required"`
}

type UpdatePropertyPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type AddImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	PublicID string `json:"publicId"`
}

// ---------- responses

type PropertyDTO struct {
	IDProperty string          `json:"idProperty"`
	IDOwner    string          `json:"idOwner"`
	OwnerName  string          `json:"ownerName"`
	OwnerPhoto string          `json:"ownerPhoto"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Price      decimal.Decimal `json:"price"`
	Year       int             `json:"year"`
	Image      string          `json:"image"`
}

type ImageDTO struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// toPropertyDTO projects a joined row into the listing shape: owner fields
// fall back to empty strings when the owner row is missing, and the image is
// the file URL of the first enabled image, if any.
func toPropertyDTO(row repository.PropertyRow) PropertyDTO {
	dto := PropertyDTO{
		IDProperty: row.Property.ID,
		IDOwner:    row.Property.OwnerID,
		Name:       row.Property.Name,
		Address:    row.Property.Address,
		Price:      row.Property.Price,
		Year:       row.Property.Year,
	}
	if row.Owner != nil {
		dto.OwnerName = row.Owner.Name
		dto.OwnerPhoto = row.Owner.Photo
	}
	for _, img := range row.Images {
		if img.Enabled {
			dto.Image = img.File
			break
		}
	}
	return dto
}
