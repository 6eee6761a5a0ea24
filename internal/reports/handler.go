package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the revenue report endpoint. Still a stub: it returns an
// empty data set that the front end assembles client-side from the other
// endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(g *gin.RouterGroup) {
	g.GET("", h.List)
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": []any{}})
}
