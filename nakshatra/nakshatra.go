// Package nakshatra computes nakshatra/pada placement and the KP pointer
// for a sidereal longitude (spec.md 4.4), thin wrappers over the reference
// tables and closed-form KP partition reftables already carries.
package nakshatra

import (
	"fmt"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/reftables"
)

// Placement is a body's (or a chart point's) nakshatra/pada/lord.
type Placement struct {
	Number int // 1..27
	Name   string
	Lord   reftables.Planet
	Pada   int // 1..4
}

// Of computes the nakshatra placement for a sidereal longitude.
func Of(lon float64) (Placement, error) {
	x := angle.Norm(lon)
	number := int(x/reftables.NakshatraWidth) + 1
	if number > reftables.NakshatraCount {
		number = reftables.NakshatraCount
	}
	name, ok := reftables.NakshatraName(number)
	if !ok {
		return Placement{}, fmt.Errorf("nakshatra: no name for nakshatra %d", number)
	}
	lord, ok := reftables.NakshatraLord(number)
	if !ok {
		return Placement{}, fmt.Errorf("nakshatra: no lord for nakshatra %d", number)
	}
	within := x - float64(number-1)*reftables.NakshatraWidth
	pada := int(within/reftables.PadaWidth) + 1
	if pada > 4 {
		pada = 4
	}
	return Placement{Number: number, Name: name, Lord: lord, Pada: pada}, nil
}

// KPPointer re-exports reftables.KPPointerAt under this package's natural
// call site: the chart/transit/compatibility layers ask "nakshatra" for
// this, not "reftables", even though the partition itself lives there.
func KPPointer(lon float64) (reftables.KPPointer, error) {
	p, ok := reftables.KPPointerAt(lon)
	if !ok {
		return reftables.KPPointer{}, fmt.Errorf("nakshatra: no KP pointer for longitude %f", lon)
	}
	return p, nil
}

// Offset returns the nakshatra number `steps` ahead of `from` (1-based,
// wrapping mod 27), the operation Tara Bala and transit-from-Moon
// calculations both need.
func Offset(from, steps int) int {
	return ((from-1+steps)%reftables.NakshatraCount + reftables.NakshatraCount) % reftables.NakshatraCount + 1
}
