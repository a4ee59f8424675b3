package catalog

import (
	"shareyourspace/models"
	"shareyourspace/utils"

	"go.uber.org/zap"
)

// Catalog provides read access to the listing inventory. Listings are
// constructed once at build time and are read-only afterwards.
type Catalog interface {
	All() []models.Listing
	GetByID(id string) (*models.Listing, bool)
}

// InMemoryCatalog implements Catalog over a generated listing slice.
type InMemoryCatalog struct {
	listings []models.Listing
	byID     map[string]int
}

// NewInMemoryCatalog builds the full catalog from seed data. seedOffset
// shifts every listing's generator stream (zero keeps the default picture).
func NewInMemoryCatalog(seeds []ListingSeed, seedOffset int64) *InMemoryCatalog {
	logger := utils.GetLogger()
	c := &InMemoryCatalog{
		listings: make([]models.Listing, 0, len(seeds)),
		byID:     make(map[string]int, len(seeds)),
	}
	units := 0
	for _, seed := range seeds {
		listing := BuildListing(seed, seedOffset)
		c.byID[listing.ID] = len(c.listings)
		c.listings = append(c.listings, listing)
		units += len(listing.Units)
	}
	logger.Info("catalog built",
		zap.Int("listings", len(c.listings)),
		zap.Int("units", units))
	return c
}

// All returns every listing in catalog order. Callers must not mutate the
// returned slice.
func (c *InMemoryCatalog) All() []models.Listing {
	return c.listings
}

// GetByID looks a listing up by id.
func (c *InMemoryCatalog) GetByID(id string) (*models.Listing, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.listings[i], true
}
