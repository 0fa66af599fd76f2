package properties

import (
	"errors"
	"net/http"
	"strconv"

	"property-catalog/internal/api/paging"
	"property-catalog/internal/api/respond"
	"property-catalog/internal/domain/catalog"
	"property-catalog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

type Handler struct {
	properties repository.PropertyRepository
	images     repository.PropertyImageRepository
	traces     repository.PropertyTraceRepository
}

func NewHandler(
	properties repository.PropertyRepository,
	images repository.PropertyImageRepository,
	traces repository.PropertyTraceRepository,
) *Handler {
	return &Handler{properties: properties, images: images, traces: traces}
}

// GET /api/properties?name&address&minPrice&maxPrice&pageNumber&pageSize
func (h *Handler) SearchProperties(c *gin.Context) {
	filter := repository.SearchFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		respond.BadRequest(c, "Invalid minPrice")
		return
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		respond.BadRequest(c, "Invalid maxPrice")
		return
	}

	pageNumber, err := intParam(c, "pageNumber", defaultPageNumber)
	if err != nil {
		respond.BadRequest(c, "Invalid pageNumber")
		return
	}
	pageSize, err := intParam(c, "pageSize", defaultPageSize)
	if err != nil {
		respond.BadRequest(c, "Invalid pageSize")
		return
	}

	rows, total, err := h.properties.Search(c.Request.Context(), filter, pageNumber, pageSize)
	if err != nil {
		respond.ServerError(c, err)
		return
	}

	data := make([]PropertyDTO, 0, len(rows))
	for _, row := range rows {
		data = append(data, toPropertyDTO(row))
	}
	c.JSON(http.StatusOK, paging.NewPagedResponse(data, pageNumber, pageSize, total))
}

// GET /api/properties/:id
func (h *Handler) GetPropertyByID(c *gin.Context) {
	row, err := h.properties.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrPropertyNotFound) {
		respond.NotFound(c, "Property not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPropertyDTO(*row))
}

// POST /api/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	property := catalog.Property{
		Name:    req.Name,
		Address: req.Address,
		Price:   req.Price,
		Year:    req.Year,
		OwnerID: req.IDOwner,
	}
	err := h.properties.Create(c.Request.Context(), &property)
	if errors.Is(err, repository.ErrOwnerNotFound) {
		respond.BadRequest(c, "Owner not found.")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// PUT /api/properties/:id
//
// Price is the only mutable field; every change appends one trace record.
func (h *Handler) UpdatePropertyPrice(c *gin.Context) {
	var req UpdatePropertyPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	err := h.properties.UpdatePrice(c.Request.Context(), c.Param("id"), req.Price)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		respond.NotFound(c, "Property not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/properties/:id
func (h *Handler) DeleteProperty(c *gin.Context) {
	err := h.properties.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrPropertyNotFound) {
		respond.NotFound(c, "Property not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func priceParam(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func intParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return fallback, nil
	}
	return v, nil
}
