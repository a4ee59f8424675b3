package search

import (
	"strings"

	"shareyourspace/models"
)

// FilterListings narrows the catalog to the listings satisfying every
// supplied predicate of the query, preserving catalog order. An empty result
// is a valid, non-exceptional outcome; this engine never errors.
func FilterListings(catalog []models.Listing, query models.SearchQuery) []models.Listing {
	results := make([]models.Listing, 0, len(catalog))
	for i := range catalog {
		if matches(&catalog[i], query) {
			results = append(results, catalog[i])
		}
	}
	return results
}

func matches(l *models.Listing, q models.SearchQuery) bool {
	if q.Mode == models.ModeContract {
		// Contract search only surfaces listings actively selling plans.
		if l.Contracts == nil || !l.Contracts.Available || len(l.Contracts.Plans) == 0 {
			return false
		}
	}
	if !matchesLocation(l, q) {
		return false
	}
	if q.Guests > 1 && l.MaxCapacity < q.Guests {
		return false
	}
	if q.MaxPrice > 0 && ComparisonPrice(l, q.Mode) > q.MaxPrice {
		return false
	}
	if q.SpaceType != "" {
		if q.Mode == models.ModeContract {
			if !l.HasPlanFor(q.SpaceType) {
				return false
			}
		} else if !l.Offers(q.SpaceType) {
			return false
		}
	}
	// Date ranges are accepted but checked only at catalog level; unit
	// calendars are the booking flow's concern.
	return true
}

// matchesLocation is title-inclusive for contract search but title-exclusive
// for flexible search, mirroring what the two search surfaces expect.
func matchesLocation(l *models.Listing, q models.SearchQuery) bool {
	if q.Location == "" {
		return true
	}
	needle := strings.ToLower(q.Location)
	if strings.Contains(strings.ToLower(l.Location), needle) {
		return true
	}
	if q.Mode == models.ModeContract {
		return strings.Contains(strings.ToLower(l.Title), needle)
	}
	return false
}

// ComparisonPrice is the price a listing is filtered and sorted by: the
// daily base price in flexible mode, the cheapest plan's monthly price in
// contract mode (falling back to basePrice x 30 when no plan exists).
func ComparisonPrice(l *models.Listing, mode models.SearchMode) float64 {
	if mode != models.ModeContract {
		return l.BasePrice
	}
	if l.Contracts == nil || len(l.Contracts.Plans) == 0 {
		return l.BasePrice * 30
	}
	cheapest := l.Contracts.Plans[0].MonthlyPrice
	for _, p := range l.Contracts.Plans[1:] {
		if p.MonthlyPrice < cheapest {
			cheapest = p.MonthlyPrice
		}
	}
	return cheapest
}

// Summarize builds the search-result card for a listing under the query's
// mode.
func Summarize(l *models.Listing, mode models.SearchMode) models.ListingSummary {
	s := models.ListingSummary{
		ID:                l.ID,
		Title:             l.Title,
		Location:          l.Location,
		OfferedSpaceTypes: l.OfferedSpaceTypes,
		BasePrice:         l.BasePrice,
		ComparisonPrice:   ComparisonPrice(l, mode),
		MaxCapacity:       l.MaxCapacity,
		InstantBook:       l.Availability.InstantBook,
	}
	if l.Corporate != nil {
		s.VerifiedHost = l.Corporate.VerifiedHost
	}
	if l.Contracts != nil {
		s.PlanCount = len(l.Contracts.Plans)
	}
	return s
}
