package properties

import (
	"errors"
	"net/http"

	"property-catalog/internal/api/respond"
	"property-catalog/internal/domain/catalog"
	"property-catalog/internal/repository"

	"github.com/gin-gonic/gin"
)

// GET /api/properties/:id/images
func (h *Handler) GetPropertyImages(c *gin.Context) {
	images, err := h.images.GetByPropertyID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.ServerError(c, err)
		return
	}

	out := make([]ImageDTO, 0, len(images))
	for _, img := range images {
		out = append(out, ImageDTO{ID: img.ID, URL: img.File})
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/properties/:id/images
//
// Registers an already-uploaded image against the property. The bytes live on
// the external image host; only the URL and its public id are stored here.
func (h *Handler) AddImageToProperty(c *gin.Context) {
	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	propertyID := c.Param("id")
	if _, err := h.properties.GetByID(c.Request.Context(), propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			respond.NotFound(c, "Property not found")
			return
		}
		respond.ServerError(c, err)
		return
	}

	image := catalog.PropertyImage{
		PropertyID: propertyID,
		File:       req.ImageURL,
		PublicID:   req.PublicID,
		Enabled:    true,
	}
	if err := h.images.Create(c.Request.Context(), &image); err != nil {
		respond.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageId": image.ID})
}

// DELETE /api/properties/:id/images/:imageId
func (h *Handler) DeletePropertyImage(c *gin.Context) {
	image, err := h.images.GetByID(c.Request.Context(), c.Param("imageId"))
	if errors.Is(err, repository.ErrImageNotFound) {
		respond.NotFound(c, "Image not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	// An image id under a different property is treated as absent.
	if image.PropertyID != c.Param("id") {
		respond.NotFound(c, "Image not found")
		return
	}

	if err := h.images.Delete(c.Request.Context(), image.ID); err != nil {
		respond.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
