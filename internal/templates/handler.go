package templates

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

// Handler serves the template catalog.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, List())
}

// get resolves an unknown or malformed id to the default template rather
// than erroring, mirroring the catalog contract.
func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond.JSON(c, http.StatusOK, Default())
		return
	}
	respond.OK(c, ByID(id))
}
