package models

import "time"

// BookingUnit is the unit a fixed-duration quote counts in.
type BookingUnit string

const (
	UnitHour  BookingUnit = "hour"
	UnitDay   BookingUnit = "day"
	UnitWeek  BookingUnit = "week"
	UnitMonth BookingUnit = "month"
)

// PricingBreakdown is the computed, ephemeral result of a pricing call.
// All monetary fields are non-negative and
// total = subtotal - weeklyDiscount - monthlyDiscount - corporateDiscount + serviceFee,
// floored at zero.
type PricingBreakdown struct {
	BasePrice         float64     `json:"basePrice"`
	Quantity          int         `json:"quantity"`
	Unit              BookingUnit `json:"unit"`
	Subtotal          float64     `json:"subtotal"`
	WeeklyDiscount    float64     `json:"weeklyDiscount"`
	MonthlyDiscount   float64     `json:"monthlyDiscount"`
	CorporateDiscount float64     `json:"corporateDiscount"`
	ServiceFee        float64     `json:"serviceFee"`
	Total             float64     `json:"total"`
}

// QuoteRequest carries everything a quote needs. Either Start/End are set
// (date-range form) or BookingUnit/Quantity are set (fixed-duration form);
// Preset resolves to the latter server-side.
type QuoteRequest struct {
	ListingID         string      `json:"listingId" binding:"required"`
	UnitID            string      `json:"unitId,omitempty"`
	SpaceType         SpaceType   `json:"spaceType,omitempty"` // unit auto-selection when UnitID is empty
	Start             *time.Time  `json:"start,omitempty"`
	End               *time.Time  `json:"end,omitempty"`
	BookingUnit       BookingUnit `json:"bookingUnit,omitempty"`
	Quantity          int         `json:"quantity,omitempty"`
	Preset            string      `json:"preset,omitempty"`
	PartySize         int         `json:"partySize,omitempty"`
	CorporateDiscount float64     `json:"corporateDiscount,omitempty"` // percent
	CrossBenefit      bool        `json:"crossBenefit,omitempty"`      // visitor company is a benefits partner
}
