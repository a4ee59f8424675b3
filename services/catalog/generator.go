package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"shareyourspace/models"
)

// Unit-count heuristics relative to a listing's team capacity.
const (
	maxHotDesks = 10
	maxDesks    = 8
)

// Rate-card multipliers off the seed's daily and monthly prices, per space
// type. Weekly is always six times the derived daily rate.
var rateMultipliers = map[models.SpaceType]struct {
	Hourly  float64
	Daily   float64
	Monthly float64
}{
	models.SpaceTypeHotDesk:       {Hourly: 0.20, Daily: 0.80, Monthly: 0.70},
	models.SpaceTypeDesk:          {Hourly: 0.25, Daily: 1.00, Monthly: 1.00},
	models.SpaceTypePrivateOffice: {Hourly: 2.50, Daily: 8.00, Monthly: 5.00},
	models.SpaceTypeMeetingRoom:   {Hourly: 1.50, Daily: 8.00, Monthly: 6.00},
}

// Probability of a generated unit starting out booked, per space type. A
// further 5% of draws land in maintenance.
var bookedProbability = map[models.SpaceType]float64{
	models.SpaceTypeHotDesk:       0.20,
	models.SpaceTypeDesk:          0.30,
	models.SpaceTypePrivateOffice: 0.40,
	models.SpaceTypeMeetingRoom:   0.50,
}

const maintenanceProbability = 0.05

var amenitiesByType = map[models.SpaceType][]string{
	models.SpaceTypeHotDesk:       {"wifi", "coffee"},
	models.SpaceTypeDesk:          {"wifi", "monitor", "locker"},
	models.SpaceTypePrivateOffice: {"wifi", "whiteboard", "phone-booth", "lockable"},
	models.SpaceTypeMeetingRoom:   {"wifi", "screen", "video-conference", "whiteboard"},
}

var meetingRoomNames = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"}

// BuildListing derives a full listing from its seed. The unit inventory is
// pseudo-random but reproducible: the generator stream is seeded from an
// FNV hash of the listing id plus the deployment seed offset, so the same
// seed data always yields the same catalog.
func BuildListing(seed ListingSeed, seedOffset int64) models.Listing {
	rng := rand.New(rand.NewSource(listingSeed(seed.ID) + seedOffset))

	listing := models.Listing{
		ID:           seed.ID,
		Title:        seed.Title,
		Location:     seed.Location,
		BasePrice:    seed.DailyPrice,
		HourlyRate:   seed.HourlyRate,
		MonthlyPrice: seed.MonthlyPrice,
		MaxCapacity:  seed.TeamCapacity,
		Availability: models.AvailabilityPolicy{
			InstantBook: seed.InstantBook,
			MinStayDays: seed.MinStayDays,
			MaxStayDays: seed.MaxStayDays,
		},
		Pricing: models.PricingPolicy{
			WeeklyDiscount:   seed.WeeklyDiscount,
			MonthlyDiscount:  seed.MonthlyDiscount,
			LongTermDiscount: seed.LongTermDiscount,
		},
	}

	for _, st := range offeredTypes(seed) {
		count := unitCount(st, seed.TeamCapacity)
		for i := 1; i <= count; i++ {
			listing.Units = append(listing.Units, buildUnit(seed, st, i, rng))
		}
		listing.OfferedSpaceTypes = append(listing.OfferedSpaceTypes, st)
	}

	if seed.Contract {
		listing.Contracts = &models.ContractOffering{
			Available:    true,
			ApprovalMode: seed.ApprovalMode,
			Plans:        buildPlans(seed, listing.OfferedSpaceTypes),
		}
	}
	if seed.VerifiedHost || seed.CrossBenefit || seed.PartnerDiscount > 0 {
		listing.Corporate = &models.CorporateBenefit{
			VerifiedHost:         seed.VerifiedHost,
			CrossBenefitEligible: seed.CrossBenefit,
			PartnerDiscount:      seed.PartnerDiscount,
		}
	}
	return listing
}

// offeredTypes applies the id-based heuristic for which space types a
// listing offers. Desks and hot desks are universal; offices and meeting
// rooms depend on the id hash and on the capacity supporting at least one
// unit.
func offeredTypes(seed ListingSeed) []models.SpaceType {
	h := listingSeed(seed.ID)
	types := []models.SpaceType{models.SpaceTypeHotDesk, models.SpaceTypeDesk}
	if h%4 != 0 && unitCount(models.SpaceTypePrivateOffice, seed.TeamCapacity) > 0 {
		types = append(types, models.SpaceTypePrivateOffice)
	}
	if h%3 != 0 {
		types = append(types, models.SpaceTypeMeetingRoom)
	}
	return types
}

func unitCount(st models.SpaceType, capacity int) int {
	switch st {
	case models.SpaceTypeHotDesk:
		n := capacity * 6 / 10
		if n > maxHotDesks {
			n = maxHotDesks
		}
		if n < 1 {
			n = 1
		}
		return n
	case models.SpaceTypeDesk:
		n := capacity * 4 / 10
		if n > maxDesks {
			n = maxDesks
		}
		if n < 1 {
			n = 1
		}
		return n
	case models.SpaceTypePrivateOffice:
		return capacity / 8
	case models.SpaceTypeMeetingRoom:
		n := capacity / 10
		if n < 2 {
			n = 2
		}
		return n
	}
	return 0
}

func buildUnit(seed ListingSeed, st models.SpaceType, ordinal int, rng *rand.Rand) models.Unit {
	mult := rateMultipliers[st]
	daily := seed.DailyPrice * mult.Daily
	unit := models.Unit{
		ID:        fmt.Sprintf("%s-%s-%d", seed.ID, st, ordinal),
		Name:      unitName(st, ordinal),
		SpaceType: st,
		Capacity:  unitCapacity(st, rng),
		Rates: models.RateCard{
			Hourly:  round2(seed.DailyPrice * mult.Hourly),
			Daily:   round2(daily),
			Weekly:  round2(daily * 6),
			Monthly: round2(seed.MonthlyPrice * mult.Monthly),
		},
		Status:    unitStatus(st, rng),
		Amenities: amenitiesByType[st],
	}
	return unit
}

func unitName(st models.SpaceType, ordinal int) string {
	switch st {
	case models.SpaceTypeHotDesk:
		return fmt.Sprintf("Hot Desk %d", ordinal)
	case models.SpaceTypeDesk:
		return fmt.Sprintf("Desk %d", ordinal)
	case models.SpaceTypePrivateOffice:
		return fmt.Sprintf("Private Office %d", ordinal)
	case models.SpaceTypeMeetingRoom:
		return "Meeting Room " + meetingRoomNames[(ordinal-1)%len(meetingRoomNames)]
	}
	return fmt.Sprintf("Unit %d", ordinal)
}

func unitCapacity(st models.SpaceType, rng *rand.Rand) int {
	switch st {
	case models.SpaceTypePrivateOffice:
		return 4 + rng.Intn(5) // 4-8 people
	case models.SpaceTypeMeetingRoom:
		return 6 + rng.Intn(7) // 6-12 people
	}
	return 1
}

func unitStatus(st models.SpaceType, rng *rand.Rand) models.UnitStatus {
	r := rng.Float64()
	booked := bookedProbability[st]
	switch {
	case r < booked:
		return models.UnitBooked
	case r < booked+maintenanceProbability:
		return models.UnitMaintenance
	default:
		return models.UnitAvailable
	}
}

// Monthly-price factors per contract term; longer terms are cheaper per
// month.
var termFactors = []struct {
	Term   models.PlanTerm
	Months int
	Factor float64
}{
	{models.Term1Month, 1, 1.00},
	{models.Term3Months, 3, 0.95},
	{models.Term6Months, 6, 0.90},
	{models.Term12Months, 12, 0.85},
}

func buildPlans(seed ListingSeed, offered []models.SpaceType) []models.Plan {
	var plans []models.Plan
	for _, st := range offered {
		if st != models.SpaceTypeDesk && st != models.SpaceTypePrivateOffice {
			continue
		}
		base := seed.MonthlyPrice * rateMultipliers[st].Monthly
		for _, tf := range termFactors {
			monthly := round2(base * tf.Factor)
			plans = append(plans, models.Plan{
				ID:           fmt.Sprintf("%s-plan-%s-%s", seed.ID, st, tf.Term),
				Name:         fmt.Sprintf("%s %s", planLabel(st), tf.Term),
				SpaceType:    st,
				Term:         tf.Term,
				MonthlyPrice: monthly,
				SetupFee:     setupFee(st, tf.Months),
				MaxUsers:     planMaxUsers(st),
				DiscountFromDaily: round2(math.Max(0,
					(1-monthly/(seed.DailyPrice*rateMultipliers[st].Daily*30))*100)),
				Features: planFeatures(st),
			})
		}
	}
	return plans
}

func planLabel(st models.SpaceType) string {
	if st == models.SpaceTypePrivateOffice {
		return "Team Office"
	}
	return "Dedicated Desk"
}

func setupFee(st models.SpaceType, months int) float64 {
	// Waived on year-long commitments.
	if months >= 12 {
		return 0
	}
	if st == models.SpaceTypePrivateOffice {
		return 150
	}
	return 50
}

func planMaxUsers(st models.SpaceType) int {
	if st == models.SpaceTypePrivateOffice {
		return 8
	}
	return 1
}

func planFeatures(st models.SpaceType) []string {
	if st == models.SpaceTypePrivateOffice {
		return []string{"24/7 access", "meeting-room credits", "mail handling", "branding"}
	}
	return []string{"24/7 access", "locker", "mail handling"}
}

func listingSeed(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
