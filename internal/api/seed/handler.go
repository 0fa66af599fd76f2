package seed

import (
	"net/http"

	"property-catalog/internal/api/respond"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	seeder *Seeder
}

func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

// POST /api/seed
func (h *Handler) SeedDatabase(c *gin.Context) {
	if err := h.seeder.Seed(c.Request.Context()); err != nil {
		respond.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully!"})
}

// DELETE /api/seed
func (h *Handler) ClearDatabase(c *gin.Context) {
	if err := h.seeder.Clear(c.Request.Context()); err != nil {
		respond.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database cleared successfully!"})
}
