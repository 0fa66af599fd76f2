package owners

import (
	"errors"
	"net/http"

	"property-catalog/internal/api/respond"
	"property-catalog/internal/domain/catalog"
	"property-catalog/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	owners repository.OwnerRepository
}

func NewHandler(owners repository.OwnerRepository) *Handler {
	return &Handler{owners: owners}
}

// GET /api/owners
func (h *Handler) GetOwners(c *gin.Context) {
	owners, err := h.owners.GetAll(c.Request.Context())
	if err != nil {
		respond.ServerError(c, err)
		return
	}

	out := make([]OwnerDTO, 0, len(owners))
	for _, o := range owners {
		out = append(out, OwnerDTO{IDOwner: o.ID, Name: o.Name})
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/owners
//
// Responds with the bare id string; the web client depends on that wire shape.
func (h *Handler) CreateOwner(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	owner := catalog.Owner{
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday.Time,
	}
	if err := h.owners.Create(c.Request.Context(), &owner); err != nil {
		respond.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, owner.ID)
}

// PUT /api/owners/:id
func (h *Handler) UpdateOwner(c *gin.Context) {
	var req UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	owner, err := h.owners.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrOwnerNotFound) {
		respond.NotFound(c, "Owner not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}

	owner.Name = req.Name
	owner.Address = req.Address
	if err := h.owners.Update(c.Request.Context(), owner); err != nil {
		respond.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/owners/:id
//
// Does not cascade: the owner's properties keep their dangling owner id and
// list with empty owner fields afterwards.
func (h *Handler) DeleteOwner(c *gin.Context) {
	err := h.owners.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrOwnerNotFound) {
		respond.NotFound(c, "Owner not found")
		return
	}
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
