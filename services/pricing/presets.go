package pricing

import (
	"fmt"

	"shareyourspace/models"
)

// Preset is a named quick-pick booking option resolved server-side.
type Preset struct {
	Name     string
	Unit     models.BookingUnit
	Quantity int
}

var presets = map[string]Preset{
	"hour-pass":    {Name: "Hour Pass", Unit: models.UnitHour, Quantity: 2},
	"day-pass":     {Name: "Day Pass", Unit: models.UnitDay, Quantity: 1},
	"week-sprint":  {Name: "Week Sprint", Unit: models.UnitWeek, Quantity: 1},
	"monthly-desk": {Name: "Monthly Desk", Unit: models.UnitMonth, Quantity: 1},
	"quarter-team": {Name: "Quarter Team", Unit: models.UnitMonth, Quantity: 3},
}

// LookupPreset resolves a preset key, e.g. "day-pass".
func LookupPreset(key string) (Preset, error) {
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("pricing: unknown preset %q", key)
	}
	return p, nil
}
