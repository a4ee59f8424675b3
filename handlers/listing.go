package handlers

import (
	"net/http"

	"shareyourspace/services/catalog"
	"shareyourspace/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves individual listing lookups.
type ListingHandler struct {
	Catalog catalog.Catalog
}

func NewListingHandler(cat catalog.Catalog) *ListingHandler {
	return &ListingHandler{Catalog: cat}
}

// GetListingByIDHandler handles GET /api/listings/:id, returning the full
// listing including its unit inventory and contract plans.
func (h *ListingHandler) GetListingByIDHandler(c *gin.Context) {
	id := c.Param("id")
	listing, ok := h.Catalog.GetByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "listing not found", id)
		return
	}
	c.JSON(http.StatusOK, listing)
}
