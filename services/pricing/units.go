package pricing

import "shareyourspace/models"

// SelectUnit picks the first available unit of the requested space type that
// can hold the party size, keeping catalog order. An empty space type
// considers every unit. Returns ErrNoAvailableUnit when nothing fits.
func SelectUnit(listing *models.Listing, spaceType models.SpaceType, partySize int) (*models.Unit, error) {
	if partySize < 1 {
		partySize = 1
	}
	for i := range listing.Units {
		u := &listing.Units[i]
		if spaceType != "" && u.SpaceType != spaceType {
			continue
		}
		if u.Status != models.UnitAvailable {
			continue
		}
		if u.Capacity >= partySize {
			return u, nil
		}
	}
	return nil, ErrNoAvailableUnit
}

// ResolveCorporateDiscount returns the corporate discount percent for a
// quote: an explicit percent wins; otherwise a cross-benefit-eligible
// visitor inherits the host's partner discount.
func ResolveCorporateDiscount(listing *models.Listing, explicitPct float64, crossBenefit bool) float64 {
	if explicitPct > 0 {
		return explicitPct
	}
	if crossBenefit && listing.Corporate != nil && listing.Corporate.CrossBenefitEligible {
		return listing.Corporate.PartnerDiscount
	}
	return 0
}
