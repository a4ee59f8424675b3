package models

import "time"

// BookingSession is a cached quote awaiting confirmation. Sessions live in
// the session cache under a UUID key and expire on their own; nothing is
// persisted beyond that.
type BookingSession struct {
	ID               string           `json:"id"`
	ListingID        string           `json:"listingId"`
	UnitID           string           `json:"unitId"`
	Start            *time.Time       `json:"start,omitempty"`
	End              *time.Time       `json:"end,omitempty"`
	BookingUnit      BookingUnit      `json:"bookingUnit,omitempty"`
	Quantity         int              `json:"quantity,omitempty"`
	PartySize        int              `json:"partySize"`
	CorporateCovered bool             `json:"corporateCovered"`
	Breakdown        PricingBreakdown `json:"breakdown"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// BookingSummary is the acknowledgment record handed to the confirmation
// sink. It is user-facing only; no order is persisted.
type BookingSummary struct {
	BookingID        string     `json:"bookingId"`
	ListingID        string     `json:"listingId"`
	UnitID           string     `json:"unitId"`
	Start            *time.Time `json:"start,omitempty"`
	End              *time.Time `json:"end,omitempty"`
	Total            float64    `json:"total"`
	CorporateCovered bool       `json:"corporateCovered"`
	Status           string     `json:"status"` // e.g. "Confirmed"
	CreatedAt        time.Time  `json:"createdAt"`
}

// ListingSummary is the search-result DTO: the listing card fields without
// the full unit inventory.
type ListingSummary struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Location          string      `json:"location"`
	OfferedSpaceTypes []SpaceType `json:"offeredSpaceTypes"`
	BasePrice         float64     `json:"basePrice"`
	ComparisonPrice   float64     `json:"comparisonPrice"` // per the query's mode
	MaxCapacity       int         `json:"maxCapacity"`
	InstantBook       bool        `json:"instantBook"`
	VerifiedHost      bool        `json:"verifiedHost"`
	PlanCount         int         `json:"planCount,omitempty"`
}
