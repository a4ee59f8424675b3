package handlers

import (
	"errors"
	"net/http"

	"shareyourspace/models"
	"shareyourspace/services/catalog"
	"shareyourspace/services/pricing"
	"shareyourspace/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves live price quotes for the booking widgets. Date-range
// quotes go through the marketplace-fee engine, fixed-duration and preset
// quotes through the widget-fee engine.
type QuoteHandler struct {
	Catalog      catalog.Catalog
	RangeEngine  pricing.Engine
	WidgetEngine pricing.Engine
}

func NewQuoteHandler(cat catalog.Catalog, rangeEngine, widgetEngine pricing.Engine) *QuoteHandler {
	return &QuoteHandler{Catalog: cat, RangeEngine: rangeEngine, WidgetEngine: widgetEngine}
}

// Quote handles POST /api/quotes.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	listing, ok := h.Catalog.GetByID(req.ListingID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "listing not found", req.ListingID)
		return
	}

	var unit *models.Unit
	if req.UnitID != "" {
		if unit = listing.UnitByID(req.UnitID); unit == nil {
			utils.JSONError(c, http.StatusNotFound, "unit not found", req.UnitID)
			return
		}
	} else if req.SpaceType != "" || req.PartySize > 1 {
		selected, err := pricing.SelectUnit(listing, req.SpaceType, req.PartySize)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		unit = selected
	}

	breakdown, err := h.quote(listing, unit, &req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, pricing.ErrNoAvailableUnit) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

func (h *QuoteHandler) quote(listing *models.Listing, unit *models.Unit, req *models.QuoteRequest) (*models.PricingBreakdown, error) {
	corporatePct := pricing.ResolveCorporateDiscount(listing, req.CorporateDiscount, req.CrossBenefit)

	if req.Preset != "" {
		preset, err := pricing.LookupPreset(req.Preset)
		if err != nil {
			return nil, err
		}
		return h.WidgetEngine.QuoteFixed(listing, unit, preset.Unit, preset.Quantity, req.PartySize, corporatePct)
	}
	if req.BookingUnit != "" {
		return h.WidgetEngine.QuoteFixed(listing, unit, req.BookingUnit, req.Quantity, req.PartySize, corporatePct)
	}
	if req.Start == nil || req.End == nil {
		return nil, pricing.ErrInvalidRange
	}
	return h.RangeEngine.QuoteRange(listing, unit, *req.Start, *req.End, req.PartySize, corporatePct)
}
