package tireworld

import (
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/ltl"
	"github.com/aretw0/plangen/pkg/naming"
)

// MoveCar builds the action driving along e. It requires the car at the
// source, the road and an intact tire; it moves the car.
func MoveCar(n naming.Namer, e domain.Edge) domain.Action {
	from, to := n.VehicleAt(e.From), n.VehicleAt(e.To)
	return domain.Action{
		ID:           domain.ActionID{Kind: domain.KindMoveCar, From: e.From, To: e.To},
		Name:         n.MoveCar(e.From, e.To),
		Precondition: ltl.Group(ltl.And(from, n.Road(e.From, e.To), ltl.Not(naming.FlatTire))),
		Add:          []string{to},
		Del:          []string{from},
	}
}

// ChangeTire builds the action using the spare at l. It requires the spare,
// the car at l and a flat tire; it consumes the spare and repairs the tire.
// The car stays where it is.
func ChangeTire(n naming.Namer, l domain.Location) domain.Action {
	spare := n.SpareIn(l)
	return domain.Action{
		ID:           domain.ActionID{Kind: domain.KindChangeTire, From: l},
		Name:         n.ChangeTire(l),
		Precondition: ltl.Group(ltl.And(spare, n.VehicleAt(l), naming.FlatTire)),
		Del:          []string{spare, naming.FlatTire},
	}
}

// Actions lists every move-car action in road order followed by every
// change-tire action in location order.
func Actions(n naming.Namer, locations []domain.Location, roads []domain.Edge) []domain.Action {
	actions := make([]domain.Action, 0, len(roads)+len(locations))
	for _, e := range roads {
		actions = append(actions, MoveCar(n, e))
	}
	for _, l := range locations {
		actions = append(actions, ChangeTire(n, l))
	}
	return actions
}
