package catalog

import (
	"reflect"
	"testing"

	"shareyourspace/models"
)

func TestBuildListingIsDeterministic(t *testing.T) {
	for _, seed := range DefaultSeeds() {
		first := BuildListing(seed, 0)
		second := BuildListing(seed, 0)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("listing %s: two builds differ", seed.ID)
		}
	}
}

func TestBuildListingInvariants(t *testing.T) {
	for _, seed := range DefaultSeeds() {
		listing := BuildListing(seed, 0)

		if len(listing.OfferedSpaceTypes) == 0 {
			t.Errorf("listing %s: no offered space types", listing.ID)
		}
		if listing.MaxCapacity != seed.TeamCapacity {
			t.Errorf("listing %s: max capacity %d, want %d", listing.ID, listing.MaxCapacity, seed.TeamCapacity)
		}

		counts := map[models.SpaceType]int{}
		for _, u := range listing.Units {
			counts[u.SpaceType]++

			if !listing.Offers(u.SpaceType) {
				t.Errorf("listing %s: unit %s has unoffered type %s", listing.ID, u.ID, u.SpaceType)
			}
			if u.Capacity < 1 {
				t.Errorf("unit %s: capacity %d", u.ID, u.Capacity)
			}
			for _, rate := range []float64{u.Rates.Hourly, u.Rates.Daily, u.Rates.Weekly, u.Rates.Monthly} {
				if rate < 0 {
					t.Errorf("unit %s: negative rate", u.ID)
				}
			}
			switch u.Status {
			case models.UnitAvailable, models.UnitBooked, models.UnitMaintenance:
			default:
				t.Errorf("unit %s: invalid status %q", u.ID, u.Status)
			}
			if u.Name == "" {
				t.Errorf("unit %s: empty name", u.ID)
			}
		}

		if counts[models.SpaceTypeHotDesk] > maxHotDesks {
			t.Errorf("listing %s: %d hot desks", listing.ID, counts[models.SpaceTypeHotDesk])
		}
		if counts[models.SpaceTypeDesk] > maxDesks {
			t.Errorf("listing %s: %d desks", listing.ID, counts[models.SpaceTypeDesk])
		}
		if listing.Offers(models.SpaceTypeMeetingRoom) && counts[models.SpaceTypeMeetingRoom] < 2 {
			t.Errorf("listing %s: %d meeting rooms, want >= 2", listing.ID, counts[models.SpaceTypeMeetingRoom])
		}
	}
}

func TestBuildListingRateMultipliers(t *testing.T) {
	seed := DefaultSeeds()[0]
	listing := BuildListing(seed, 0)

	for _, u := range listing.Units {
		switch u.SpaceType {
		case models.SpaceTypePrivateOffice:
			if u.Rates.Hourly != round2(seed.DailyPrice*2.5) {
				t.Errorf("office hourly = %v, want daily x 2.5", u.Rates.Hourly)
			}
		case models.SpaceTypeMeetingRoom:
			if u.Rates.Monthly != round2(seed.MonthlyPrice*6) {
				t.Errorf("meeting room monthly = %v, want monthly x 6", u.Rates.Monthly)
			}
		}
	}
}

func TestBuildListingContractPlans(t *testing.T) {
	for _, seed := range DefaultSeeds() {
		listing := BuildListing(seed, 0)
		if !seed.Contract {
			if listing.Contracts != nil {
				t.Errorf("listing %s: unexpected contract offering", listing.ID)
			}
			continue
		}
		if listing.Contracts == nil || !listing.Contracts.Available {
			t.Errorf("listing %s: missing contract offering", listing.ID)
			continue
		}
		for _, p := range listing.Contracts.Plans {
			if p.MonthlyPrice <= 0 {
				t.Errorf("plan %s: monthly price %v", p.ID, p.MonthlyPrice)
			}
			if !listing.Offers(p.SpaceType) {
				t.Errorf("plan %s: space type %s not offered by listing", p.ID, p.SpaceType)
			}
			if p.Term == models.Term12Months && p.SetupFee != 0 {
				t.Errorf("plan %s: 12-month term should waive the setup fee", p.ID)
			}
		}
	}
}

func TestInMemoryCatalog(t *testing.T) {
	c := NewInMemoryCatalog(DefaultSeeds(), 0)

	if len(c.All()) != len(DefaultSeeds()) {
		t.Fatalf("catalog holds %d listings, want %d", len(c.All()), len(DefaultSeeds()))
	}
	listing, ok := c.GetByID("sys-001")
	if !ok || listing.Title != "TechHub Munich Central" {
		t.Errorf("GetByID(sys-001) = %v, %v", listing, ok)
	}
	if _, ok := c.GetByID("sys-999"); ok {
		t.Error("GetByID(sys-999) should miss")
	}
}
