package search

import (
	"sort"

	"shareyourspace/models"
)

// SortListings orders a filtered result set by the query's sort key. The
// sort is stable, so ties keep catalog order. An empty or unknown key leaves
// the slice untouched.
func SortListings(listings []models.Listing, query models.SearchQuery) {
	switch query.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return ComparisonPrice(&listings[i], query.Mode) < ComparisonPrice(&listings[j], query.Mode)
		})
	case models.SortCapacityDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].MaxCapacity > listings[j].MaxCapacity
		})
	case models.SortTypeAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return primaryType(&listings[i]) < primaryType(&listings[j])
		})
	}
}

func primaryType(l *models.Listing) models.SpaceType {
	if len(l.OfferedSpaceTypes) == 0 {
		return ""
	}
	return l.OfferedSpaceTypes[0]
}
