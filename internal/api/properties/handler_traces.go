package properties

import (
	"net/http"

	"property-catalog/internal/api/respond"

	"github.com/gin-gonic/gin"
)

// GET /api/properties/:id/traces
//
// Traces outlive their property, so this also answers for deleted properties.
func (h *Handler) GetPropertyTraces(c *gin.Context) {
	traces, err := h.traces.GetByPropertyID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, traces)
}
