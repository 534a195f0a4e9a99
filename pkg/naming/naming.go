// Package naming maps domain concepts to unique proposition names.
//
// Every concept class owns a distinct prefix and location identifiers are
// unique, so names never collide across classes.
package naming

import (
	"strconv"

	"github.com/aretw0/plangen/pkg/domain"
)

// Fixed prefixes and literals.
const (
	PrefixVehicleAt  = "vehicleat_"
	PrefixSpareIn    = "sparein_"
	PrefixRoad       = "road_"
	PrefixChangeTire = "changetire_"
	PrefixMoveCar    = "movecar_"
	PrefixRow        = "r"
	PrefixCol        = "c"

	FlatTire = "flattire"
)

// Namer renders locations and concepts as proposition names.
// The zero value concatenates coordinates without padding.
type Namer struct {
	width int
}

// New returns a Namer for locations whose coordinates never exceed maxCoord.
// Coordinates are zero-padded to the width of maxCoord once it has more than
// one digit, which keeps the concatenated identifiers injective.
func New(maxCoord int) Namer {
	w := len(strconv.Itoa(maxCoord))
	if maxCoord < 10 {
		w = 1
	}
	return Namer{width: w}
}

// Location renders a location identifier, e.g. "12" for (1,2).
func (n Namer) Location(l domain.Location) string {
	return n.pad(l.I) + n.pad(l.J)
}

func (n Namer) pad(v int) string {
	s := strconv.Itoa(v)
	for len(s) < n.width {
		s = "0" + s
	}
	return s
}

// VehicleAt names the fluent "vehicle is at l".
func (n Namer) VehicleAt(l domain.Location) string {
	return PrefixVehicleAt + n.Location(l)
}

// SpareIn names the fluent "a spare tire is available at l".
func (n Namer) SpareIn(l domain.Location) string {
	return PrefixSpareIn + n.Location(l)
}

// Road names the static proposition "a road leads from -> to".
func (n Namer) Road(from, to domain.Location) string {
	return PrefixRoad + n.Location(from) + "_" + n.Location(to)
}

// ChangeTire names the agent action changing the tire at l.
func (n Namer) ChangeTire(l domain.Location) string {
	return PrefixChangeTire + n.Location(l)
}

// MoveCar names the agent action driving from -> to.
func (n Namer) MoveCar(from, to domain.Location) string {
	return PrefixMoveCar + n.Location(from) + "_" + n.Location(to)
}

// Row names grid row i (1-based).
func Row(i int) string {
	return PrefixRow + strconv.Itoa(i)
}

// Col names grid column j (1-based).
func Col(j int) string {
	return PrefixCol + strconv.Itoa(j)
}
