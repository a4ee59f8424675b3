package handlers

import (
	"net/http"

	"shareyourspace/models"
	"shareyourspace/services/catalog"
	"shareyourspace/services/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves catalog search. The handler only parses the query
// parameters and delegates to the filter engine.
type SearchHandler struct {
	Catalog catalog.Catalog
}

func NewSearchHandler(cat catalog.Catalog) *SearchHandler {
	return &SearchHandler{Catalog: cat}
}

// SearchListings handles GET /api/search. The query parameters (location,
// checkIn, checkOut, guests, type, startDate, duration, maxPrice, sort,
// mode) are the shareable search state.
func (h *SearchHandler) SearchListings(c *gin.Context) {
	query := search.ParseSearchQuery(c.Request.URL.Query())

	results := search.FilterListings(h.Catalog.All(), query)
	search.SortListings(results, query)

	summaries := make([]models.ListingSummary, 0, len(results))
	for i := range results {
		summaries = append(summaries, search.Summarize(&results[i], query.Mode))
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":    query.Mode,
		"count":   len(summaries),
		"results": summaries,
	})
}
