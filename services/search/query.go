package search

import (
	"net/url"
	"strconv"
	"time"

	"shareyourspace/models"
)

// The URL parameter names below are the system's only wire format: search
// state is shareable and bookmarkable through them.
const (
	paramLocation  = "location"
	paramCheckIn   = "checkIn"
	paramCheckOut  = "checkOut"
	paramGuests    = "guests"
	paramType      = "type"
	paramStartDate = "startDate"
	paramDuration  = "duration"
	paramMaxPrice  = "maxPrice"
	paramSort      = "sort"
	paramMode      = "mode"
)

// ParseSearchQuery assembles a SearchQuery from URL query parameters.
// Missing or malformed parameters leave their predicate unset rather than
// failing. Contract mode is inferred from startDate/duration when no mode
// parameter is given.
func ParseSearchQuery(values url.Values) models.SearchQuery {
	q := models.SearchQuery{
		Mode:      models.ModeFlexible,
		Location:  values.Get(paramLocation),
		CheckIn:   parseDate(values.Get(paramCheckIn)),
		CheckOut:  parseDate(values.Get(paramCheckOut)),
		StartDate: parseDate(values.Get(paramStartDate)),
		SpaceType: models.SpaceType(values.Get(paramType)),
		Sort:      models.SortKey(values.Get(paramSort)),
	}

	if n, err := strconv.Atoi(values.Get(paramGuests)); err == nil && n > 0 {
		q.Guests = n
	}
	if n, err := strconv.Atoi(values.Get(paramDuration)); err == nil && n > 0 {
		q.Duration = n
	}
	if f, err := strconv.ParseFloat(values.Get(paramMaxPrice), 64); err == nil && f > 0 {
		q.MaxPrice = f
	}

	switch models.SearchMode(values.Get(paramMode)) {
	case models.ModeContract:
		q.Mode = models.ModeContract
	case models.ModeFlexible:
		q.Mode = models.ModeFlexible
	default:
		if q.StartDate != nil || q.Duration > 0 {
			q.Mode = models.ModeContract
		}
	}
	return q
}

// parseDate accepts plain dates ("2006-01-02") and RFC 3339 instants.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
