package routes

import (
	ownersapi "property-catalog/internal/api/owners"
	propertiesapi "property-catalog/internal/api/properties"
	seedapi "property-catalog/internal/api/seed"
	"property-catalog/internal/app/http/middleware"
	"property-catalog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	owners := ownersapi.NewHandler(repository.NewOwnerRepository(db))
	properties := propertiesapi.NewHandler(
		repository.NewPropertyRepository(db),
		repository.NewPropertyImageRepository(db),
		repository.NewPropertyTraceRepository(db),
	)
	seeder := seedapi.NewHandler(seedapi.NewSeeder(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sanitize := middleware.SanitizeInput()

	api := r.Group("/api")

	api.GET("/owners", owners.GetOwners)
	api.POST("/owners", sanitize, owners.CreateOwner)
	api.PUT("/owners/:id", sanitize, owners.UpdateOwner)
	api.DELETE("/owners/:id", owners.DeleteOwner)

	api.GET("/properties", properties.SearchProperties)
	api.GET("/properties/:id", properties.GetPropertyByID)
	api.POST("/properties", sanitize, properties.CreateProperty)
	api.PUT("/properties/:id", properties.UpdatePropertyPrice)
	api.DELETE("/properties/:id", properties.DeleteProperty)

	api.GET("/properties/:id/images", properties.GetPropertyImages)
	api.POST("/properties/:id/images", properties.AddImageToProperty)
	api.DELETE("/properties/:id/images/:imageId", properties.DeletePropertyImage)

	api.GET("/properties/:id/traces", properties.GetPropertyTraces)

	api.POST("/seed", seeder.SeedDatabase)
	api.DELETE("/seed", seeder.ClearDatabase)
}
