package models

// SpaceType enumerates the kinds of bookable workspace.
type SpaceType string

const (
	SpaceTypeDesk          SpaceType = "desk"
	SpaceTypeHotDesk       SpaceType = "hot-desk"
	SpaceTypePrivateOffice SpaceType = "private-office"
	SpaceTypeMeetingRoom   SpaceType = "meeting-room"
)

// UnitStatus enumerates the booking state of a unit.
type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitBooked      UnitStatus = "booked"
	UnitMaintenance UnitStatus = "maintenance"
)

// RateCard holds the four independently set price tiers of a unit. The tiers
// are not required to be mathematically consistent with each other.
type RateCard struct {
	Hourly  float64 `json:"hourly"`
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// Unit is a specific bookable sub-resource of a listing, e.g. "Desk 3" or
// "Meeting Room Alpha".
type Unit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	SpaceType SpaceType  `json:"spaceType"`
	Capacity  int        `json:"capacity"` // bounds the party size allowed to book it
	Rates     RateCard   `json:"rates"`
	Status    UnitStatus `json:"status"`
	Amenities []string   `json:"amenities,omitempty"`
}

// AvailabilityPolicy describes listing-level booking constraints.
type AvailabilityPolicy struct {
	InstantBook bool `json:"instantBook"`
	MinStayDays int  `json:"minStayDays"`
	MaxStayDays int  `json:"maxStayDays"`
}

// PricingPolicy holds the listing's discount percentages.
type PricingPolicy struct {
	WeeklyDiscount   float64 `json:"weeklyDiscount"`   // percent, applied at >= 7 days
	MonthlyDiscount  float64 `json:"monthlyDiscount"`  // percent, applied at >= 30 days
	LongTermDiscount float64 `json:"longTermDiscount"` // percent, display only on contract plans
}

// PlanTerm enumerates contract lengths.
type PlanTerm string

const (
	Term1Month   PlanTerm = "1-month"
	Term3Months  PlanTerm = "3-months"
	Term6Months  PlanTerm = "6-months"
	Term12Months PlanTerm = "12-months"
)

// Plan is a long-term contract pricing option scoped to one space type.
type Plan struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SpaceType         SpaceType `json:"spaceType"`
	Term              PlanTerm  `json:"term"`
	MonthlyPrice      float64   `json:"monthlyPrice"`
	SetupFee          float64   `json:"setupFee,omitempty"`
	MaxUsers          int       `json:"maxUsers"`
	DiscountFromDaily float64   `json:"discountFromDaily"` // percent, display only
	Features          []string  `json:"features,omitempty"`
}

// ContractOffering describes whether and how a listing sells contract plans.
type ContractOffering struct {
	Available    bool   `json:"available"`
	ApprovalMode string `json:"approvalMode"` // "instant" or "manual"
	Plans        []Plan `json:"plans"`
}

// CorporateBenefit describes a host's corporate partner relationship.
type CorporateBenefit struct {
	VerifiedHost         bool    `json:"verifiedHost"`
	CrossBenefitEligible bool    `json:"crossBenefitEligible"`
	PartnerDiscount      float64 `json:"partnerDiscount"` // percent
}

// Listing is a workspace property offering one or more units.
type Listing struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Location          string             `json:"location"`
	OfferedSpaceTypes []SpaceType        `json:"offeredSpaceTypes"` // invariant: non-empty
	BasePrice         float64            `json:"basePrice"`         // per day
	HourlyRate        float64            `json:"hourlyRate,omitempty"`
	MonthlyPrice      float64            `json:"monthlyPrice,omitempty"`
	MaxCapacity       int                `json:"maxCapacity"`
	Units             []Unit             `json:"units"`
	Availability      AvailabilityPolicy `json:"availability"`
	Pricing           PricingPolicy      `json:"pricing"`
	Contracts         *ContractOffering  `json:"contracts,omitempty"`
	Corporate         *CorporateBenefit  `json:"corporate,omitempty"`
}

// Offers reports whether the listing offers the given space type.
func (l *Listing) Offers(st SpaceType) bool {
	for _, offered := range l.OfferedSpaceTypes {
		if offered == st {
			return true
		}
	}
	return false
}

// HasPlanFor reports whether the listing has a contract plan for the given
// space type.
func (l *Listing) HasPlanFor(st SpaceType) bool {
	if l.Contracts == nil {
		return false
	}
	for _, p := range l.Contracts.Plans {
		if p.SpaceType == st {
			return true
		}
	}
	return false
}

// UnitByID returns the unit with the given id, or nil.
func (l *Listing) UnitByID(id string) *Unit {
	for i := range l.Units {
		if l.Units[i].ID == id {
			return &l.Units[i]
		}
	}
	return nil
}
