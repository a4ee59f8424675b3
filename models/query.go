package models

import "time"

// SearchMode selects which booking surface a query comes from.
type SearchMode string

const (
	ModeFlexible SearchMode = "flexible" // short-term, date-range driven
	ModeContract SearchMode = "contract" // long-term, plan driven
)

// SortKey enumerates the supported result orderings. Sorting is stable:
// ties keep catalog order.
type SortKey string

const (
	SortPriceAsc     SortKey = "price-asc"
	SortCapacityDesc SortKey = "capacity-desc"
	SortTypeAsc      SortKey = "type-asc"
)

// SearchQuery is the transient, user-supplied filter input. Zero values mean
// "predicate not supplied".
type SearchQuery struct {
	Mode      SearchMode `json:"mode"`
	Location  string     `json:"location,omitempty"`
	CheckIn   *time.Time `json:"checkIn,omitempty"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"` // contract mode
	Duration  int        `json:"duration,omitempty"`  // contract term in months
	Guests    int        `json:"guests,omitempty"`
	MaxPrice  float64    `json:"maxPrice,omitempty"`
	SpaceType SpaceType  `json:"spaceType,omitempty"`
	Sort      SortKey    `json:"sort,omitempty"`
}
