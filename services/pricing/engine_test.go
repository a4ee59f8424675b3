package pricing

import (
	"errors"
	"math"
	"testing"
	"time"

	"shareyourspace/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testListing() *models.Listing {
	return &models.Listing{
		ID:        "l1",
		Title:     "Test Loft",
		Location:  "Munich",
		BasePrice: 30,
		Pricing:   models.PricingPolicy{WeeklyDiscount: 15, MonthlyDiscount: 25},
	}
}

func TestQuoteRangeWeeklyDiscount(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	// Jan 1 to Jan 7 inclusive is a 7-day booking.
	bd, err := engine.QuoteRange(testListing(), nil, date(2025, 1, 1), date(2025, 1, 7), 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if bd.Unit != models.UnitDay || bd.Quantity != 7 {
		t.Fatalf("got %d %s, want 7 day", bd.Quantity, bd.Unit)
	}
	if !approx(bd.Subtotal, 210) {
		t.Errorf("subtotal = %v, want 210", bd.Subtotal)
	}
	if !approx(bd.WeeklyDiscount, 31.5) {
		t.Errorf("weekly discount = %v, want 31.5", bd.WeeklyDiscount)
	}
	if bd.MonthlyDiscount != 0 {
		t.Errorf("monthly discount = %v, want 0", bd.MonthlyDiscount)
	}
	if !approx(bd.ServiceFee, 8.925) {
		t.Errorf("service fee = %v, want 8.925", bd.ServiceFee)
	}
	if !approx(bd.Total, 187.425) {
		t.Errorf("total = %v, want 187.425", bd.Total)
	}
}

func TestQuoteRangeMonthlyDiscount(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	// Jan 1 to Jan 30 inclusive is a 30-day booking.
	bd, err := engine.QuoteRange(testListing(), nil, date(2025, 1, 1), date(2025, 1, 30), 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if bd.Quantity != 30 {
		t.Fatalf("quantity = %d, want 30", bd.Quantity)
	}
	if !approx(bd.Subtotal, 900) {
		t.Errorf("subtotal = %v, want 900", bd.Subtotal)
	}
	if !approx(bd.MonthlyDiscount, 225) {
		t.Errorf("monthly discount = %v, want 225", bd.MonthlyDiscount)
	}
	if bd.WeeklyDiscount != 0 {
		t.Errorf("weekly discount = %v, want 0 (monthly supersedes weekly)", bd.WeeklyDiscount)
	}
	if !approx(bd.ServiceFee, 33.75) {
		t.Errorf("service fee = %v, want 33.75", bd.ServiceFee)
	}
	if !approx(bd.Total, 708.75) {
		t.Errorf("total = %v, want 708.75", bd.Total)
	}
}

func TestQuoteRangeHourlyDailyBoundary(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	listing := testListing()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	bd, err := engine.QuoteRange(listing, nil, start, start.Add(8*time.Hour), 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange 8h: %v", err)
	}
	if bd.Unit != models.UnitHour || bd.Quantity != 8 {
		t.Errorf("8h range: got %d %s, want 8 hour", bd.Quantity, bd.Unit)
	}

	bd, err = engine.QuoteRange(listing, nil, start, start.Add(9*time.Hour), 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange 9h: %v", err)
	}
	if bd.Unit != models.UnitDay {
		t.Errorf("9h range: got unit %s, want day", bd.Unit)
	}
}

func TestQuoteRangeSameDayCountsOneDay(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	day := date(2025, 1, 1)
	bd, err := engine.QuoteRange(testListing(), nil, day, day, 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if bd.Unit != models.UnitDay || bd.Quantity != 1 {
		t.Errorf("same-day range: got %d %s, want 1 day", bd.Quantity, bd.Unit)
	}
}

func TestQuoteRangeInvalidRange(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	_, err := engine.QuoteRange(testListing(), nil, date(2025, 1, 7), date(2025, 1, 1), 1, 0)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestQuoteRangeHourlySkipsBulkDiscounts(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	bd, err := engine.QuoteRange(testListing(), nil, start, start.Add(8*time.Hour), 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if bd.WeeklyDiscount != 0 || bd.MonthlyDiscount != 0 {
		t.Errorf("hourly booking got bulk discounts: weekly=%v monthly=%v", bd.WeeklyDiscount, bd.MonthlyDiscount)
	}
}

func TestQuoteRangeHourlyRateFallback(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	// No unit, no listing hourly rate: falls back to basePrice / 8.
	bd, err := engine.QuoteRange(testListing(), nil, start, end, 1, 0)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if !approx(bd.BasePrice, 30.0/8) {
		t.Errorf("base price = %v, want %v", bd.BasePrice, 30.0/8)
	}

	// Listing hourly rate wins over the basePrice fallback.
	listing := testListing()
	listing.HourlyRate = 6
	bd, _ = engine.QuoteRange(listing, nil, start, end, 1, 0)
	if !approx(bd.BasePrice, 6) {
		t.Errorf("base price = %v, want 6", bd.BasePrice)
	}

	// Unit rate wins over everything.
	unit := &models.Unit{ID: "u1", Rates: models.RateCard{Hourly: 9}}
	bd, _ = engine.QuoteRange(listing, unit, start, end, 1, 0)
	if !approx(bd.BasePrice, 9) {
		t.Errorf("base price = %v, want 9", bd.BasePrice)
	}
}

func TestQuoteRangeCorporateStacksWithBulk(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	bd, err := engine.QuoteRange(testListing(), nil, date(2025, 1, 1), date(2025, 1, 7), 1, 10)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	if !approx(bd.WeeklyDiscount, 31.5) {
		t.Errorf("weekly discount = %v, want 31.5", bd.WeeklyDiscount)
	}
	if !approx(bd.CorporateDiscount, 21) {
		t.Errorf("corporate discount = %v, want 21", bd.CorporateDiscount)
	}
	discounted := 210 - 31.5 - 21.0
	if !approx(bd.Total, discounted*1.05) {
		t.Errorf("total = %v, want %v", bd.Total, discounted*1.05)
	}
}

func TestQuoteRangeTotalFlooredAtZero(t *testing.T) {
	engine := NewDefaultEngine(0.05)
	bd, err := engine.QuoteRange(testListing(), nil, date(2025, 1, 1), date(2025, 1, 7), 1, 500)
	if err != nil {
		t.Fatalf("QuoteRange: %v", err)
	}
	for name, v := range map[string]float64{
		"subtotal":  bd.Subtotal,
		"weekly":    bd.WeeklyDiscount,
		"monthly":   bd.MonthlyDiscount,
		"corporate": bd.CorporateDiscount,
		"fee":       bd.ServiceFee,
		"total":     bd.Total,
	} {
		if v < 0 {
			t.Errorf("%s = %v, want >= 0", name, v)
		}
	}
	if bd.Total != 0 {
		t.Errorf("total = %v, want 0", bd.Total)
	}
}

func TestQuoteFixedBulkTiersByDayEquivalents(t *testing.T) {
	engine := NewDefaultEngine(0.12)
	listing := testListing()

	// One week equals 7 day-equivalents: weekly tier.
	bd, err := engine.QuoteFixed(listing, nil, models.UnitWeek, 1, 1, 0)
	if err != nil {
		t.Fatalf("QuoteFixed week: %v", err)
	}
	if bd.WeeklyDiscount == 0 || bd.MonthlyDiscount != 0 {
		t.Errorf("week booking: weekly=%v monthly=%v", bd.WeeklyDiscount, bd.MonthlyDiscount)
	}

	// One month equals 30 day-equivalents: monthly tier.
	bd, err = engine.QuoteFixed(listing, nil, models.UnitMonth, 1, 1, 0)
	if err != nil {
		t.Fatalf("QuoteFixed month: %v", err)
	}
	if bd.MonthlyDiscount == 0 || bd.WeeklyDiscount != 0 {
		t.Errorf("month booking: weekly=%v monthly=%v", bd.WeeklyDiscount, bd.MonthlyDiscount)
	}

	// Hours are exempt regardless of count.
	bd, err = engine.QuoteFixed(listing, nil, models.UnitHour, 40, 1, 0)
	if err != nil {
		t.Fatalf("QuoteFixed hour: %v", err)
	}
	if bd.WeeklyDiscount != 0 || bd.MonthlyDiscount != 0 {
		t.Errorf("hour booking got bulk discounts: weekly=%v monthly=%v", bd.WeeklyDiscount, bd.MonthlyDiscount)
	}
}

func TestQuoteFixedTeamMultiplier(t *testing.T) {
	engine := NewDefaultEngine(0.12)
	listing := testListing()

	bd, err := engine.QuoteFixed(listing, nil, models.UnitDay, 1, 4, 0)
	if err != nil {
		t.Fatalf("QuoteFixed: %v", err)
	}
	// 4 people at 0.8 per head: 3.2x the single-seat subtotal.
	if !approx(bd.Subtotal, 30*3.2) {
		t.Errorf("subtotal = %v, want %v", bd.Subtotal, 30*3.2)
	}

	// Hourly bookings never scale by party size.
	bd, err = engine.QuoteFixed(listing, nil, models.UnitHour, 2, 4, 0)
	if err != nil {
		t.Fatalf("QuoteFixed hour: %v", err)
	}
	if !approx(bd.Subtotal, bd.BasePrice*2) {
		t.Errorf("hourly subtotal = %v, want %v", bd.Subtotal, bd.BasePrice*2)
	}
}

func TestQuoteFixedMonthlyRateFallback(t *testing.T) {
	engine := NewDefaultEngine(0.12)
	listing := testListing()
	listing.MonthlyPrice = 450

	bd, err := engine.QuoteFixed(listing, nil, models.UnitMonth, 1, 1, 0)
	if err != nil {
		t.Fatalf("QuoteFixed: %v", err)
	}
	if !approx(bd.BasePrice, 450) {
		t.Errorf("base price = %v, want 450", bd.BasePrice)
	}

	listing.MonthlyPrice = 0
	bd, _ = engine.QuoteFixed(listing, nil, models.UnitMonth, 1, 1, 0)
	if !approx(bd.BasePrice, 900) {
		t.Errorf("base price = %v, want 900 (basePrice x 30)", bd.BasePrice)
	}
}

func TestQuoteFixedMinimumQuantity(t *testing.T) {
	engine := NewDefaultEngine(0.12)
	bd, err := engine.QuoteFixed(testListing(), nil, models.UnitDay, 0, 1, 0)
	if err != nil {
		t.Fatalf("QuoteFixed: %v", err)
	}
	if bd.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", bd.Quantity)
	}
}
