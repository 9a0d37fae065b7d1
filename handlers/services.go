package handlers

import (
	"net/http"

	"salesbot/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListServices handles GET /api/services: the full service list with nested
// add-ons.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Services())
}
