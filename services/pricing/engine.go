package pricing

import (
	"math"
	"time"

	"shareyourspace/models"
)

// hourlyCutoff is the discriminator between hourly and daily pricing in the
// date-range form: ranges of up to this many elapsed hours price hourly.
const hourlyCutoff = 8

// Bulk-discount thresholds, in day-equivalents.
const (
	weeklyThresholdDays  = 7
	monthlyThresholdDays = 30
)

// Engine computes deterministic price breakdowns. Implementations are pure:
// no I/O, no clock, no state beyond configuration.
type Engine interface {
	QuoteRange(listing *models.Listing, unit *models.Unit, start, end time.Time, partySize int, corporatePct float64) (*models.PricingBreakdown, error)
	QuoteFixed(listing *models.Listing, unit *models.Unit, bookingUnit models.BookingUnit, quantity, partySize int, corporatePct float64) (*models.PricingBreakdown, error)
}

// DefaultEngine implements Engine. ServiceFeeRate is a fraction (0.05 for
// 5%) and varies by booking surface, so it is injected rather than fixed.
type DefaultEngine struct {
	ServiceFeeRate float64
}

// NewDefaultEngine returns an engine charging the given service-fee rate.
func NewDefaultEngine(serviceFeeRate float64) *DefaultEngine {
	return &DefaultEngine{ServiceFeeRate: serviceFeeRate}
}

// QuoteRange prices a continuous date/time range. Ranges of 1 to 8 elapsed
// hours price hourly; everything else, including a bare same-day date pair,
// prices daily. A same-day range counts as one day.
func (e *DefaultEngine) QuoteRange(listing *models.Listing, unit *models.Unit, start, end time.Time, partySize int, corporatePct float64) (*models.PricingBreakdown, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	hours := int(math.Ceil(end.Sub(start).Hours()))
	if hours >= 1 && hours <= hourlyCutoff {
		// Hourly bookings skip bulk discounts entirely.
		bd := &models.PricingBreakdown{
			BasePrice: resolveHourlyRate(listing, unit),
			Quantity:  hours,
			Unit:      models.UnitHour,
		}
		bd.Subtotal = bd.BasePrice * float64(bd.Quantity)
		e.settle(listing, bd, 0, corporatePct)
		return bd, nil
	}

	// Inclusive calendar-date counting: a same-day range is 1 day, a
	// Mon-to-Sun range is 7.
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	bd := &models.PricingBreakdown{
		BasePrice: resolveDailyRate(listing, unit),
		Quantity:  days,
		Unit:      models.UnitDay,
	}
	bd.Subtotal = bd.BasePrice * float64(bd.Quantity)
	e.settle(listing, bd, days, corporatePct)
	return bd, nil
}

// QuoteFixed prices an explicit count of hours, days, weeks or months, as
// supplied by quick-pick widgets. Bulk-discount thresholds apply on the
// day-equivalents of the declared unit; hourly bookings are exempt. Party
// sizes above one scale the subtotal by 0.8 per head, capped at linear.
func (e *DefaultEngine) QuoteFixed(listing *models.Listing, unit *models.Unit, bookingUnit models.BookingUnit, quantity, partySize int, corporatePct float64) (*models.PricingBreakdown, error) {
	if quantity < 1 {
		quantity = 1
	}

	bd := &models.PricingBreakdown{
		BasePrice: resolveRate(listing, unit, bookingUnit),
		Quantity:  quantity,
		Unit:      bookingUnit,
	}
	bd.Subtotal = bd.BasePrice * float64(bd.Quantity)

	if partySize > 1 && bookingUnit != models.UnitHour {
		multiplier := math.Min(float64(partySize)*0.8, float64(partySize))
		bd.Subtotal *= multiplier
	}

	e.settle(listing, bd, dayEquivalents(bookingUnit, quantity), corporatePct)
	return bd, nil
}

// settle applies the bulk tiers, the corporate discount, the service fee and
// the floor. bulkDays carries the day-equivalents deciding the bulk tier;
// zero exempts the booking.
func (e *DefaultEngine) settle(listing *models.Listing, bd *models.PricingBreakdown, bulkDays int, corporatePct float64) {
	switch {
	case bulkDays >= monthlyThresholdDays:
		// Monthly supersedes weekly; the tiers never stack.
		bd.MonthlyDiscount = bd.Subtotal * listing.Pricing.MonthlyDiscount / 100
	case bulkDays >= weeklyThresholdDays:
		bd.WeeklyDiscount = bd.Subtotal * listing.Pricing.WeeklyDiscount / 100
	}

	// The corporate discount stacks with the bulk tier.
	if corporatePct > 0 {
		bd.CorporateDiscount = bd.Subtotal * corporatePct / 100
	}

	discounted := bd.Subtotal - bd.WeeklyDiscount - bd.MonthlyDiscount - bd.CorporateDiscount
	if discounted < 0 {
		discounted = 0
	}
	bd.ServiceFee = discounted * e.ServiceFeeRate
	bd.Total = discounted + bd.ServiceFee
}

func dayEquivalents(bookingUnit models.BookingUnit, quantity int) int {
	switch bookingUnit {
	case models.UnitDay:
		return quantity
	case models.UnitWeek:
		return quantity * 7
	case models.UnitMonth:
		return quantity * 30
	}
	return 0
}

func resolveRate(listing *models.Listing, unit *models.Unit, bookingUnit models.BookingUnit) float64 {
	switch bookingUnit {
	case models.UnitHour:
		return resolveHourlyRate(listing, unit)
	case models.UnitWeek:
		if unit != nil && unit.Rates.Weekly > 0 {
			return unit.Rates.Weekly
		}
		return listing.BasePrice * 7
	case models.UnitMonth:
		if unit != nil && unit.Rates.Monthly > 0 {
			return unit.Rates.Monthly
		}
		if listing.MonthlyPrice > 0 {
			return listing.MonthlyPrice
		}
		return listing.BasePrice * 30
	}
	return resolveDailyRate(listing, unit)
}

func resolveHourlyRate(listing *models.Listing, unit *models.Unit) float64 {
	if unit != nil && unit.Rates.Hourly > 0 {
		return unit.Rates.Hourly
	}
	if listing.HourlyRate > 0 {
		return listing.HourlyRate
	}
	return listing.BasePrice / 8
}

func resolveDailyRate(listing *models.Listing, unit *models.Unit) float64 {
	if unit != nil && unit.Rates.Daily > 0 {
		return unit.Rates.Daily
	}
	return listing.BasePrice
}
