package tireworld

import (
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/ltl"
	"github.com/aretw0/plangen/pkg/naming"
)

// FuturePreconditions forbids every action whose precondition does not hold:
//
//	(!P -> X(!a))
func FuturePreconditions(actions []domain.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = ltl.Group(ltl.Implies(ltl.Not(a.Precondition), ltl.Next(ltl.Not(a.Name))))
	}
	return out
}

// FutureEffects states each action's outcome one step ahead. A move reaches
// its destination with the tire in either state; a tire change consumes the
// spare and repairs the tire in place.
func FutureEffects(n naming.Namer, actions []domain.Action) []string {
	flat := naming.FlatTire
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a.ID.Kind {
		case domain.KindMoveCar:
			from, to := n.VehicleAt(a.ID.From), n.VehicleAt(a.ID.To)
			outcome := ltl.Group(ltl.And(to, ltl.Group(ltl.Or(flat, ltl.Not(flat)))))
			out = append(out, ltl.Group(ltl.Implies(from, ltl.Next(ltl.Implies(a.Name, outcome)))))
		case domain.KindChangeTire:
			spare, at := n.SpareIn(a.ID.From), n.VehicleAt(a.ID.From)
			outcome := ltl.Group(ltl.And(ltl.Not(spare), ltl.Not(flat), at))
			out = append(out, ltl.Group(ltl.Implies(ltl.And(spare, at), ltl.Next(ltl.Implies(a.Name, outcome)))))
		}
	}
	return out
}

// SpareStatus keeps spares from appearing and from vanishing unless changed:
//
//	G((!s -> X(!s)) & ((s & !changetire_l) -> X(s)) & ...)
func SpareStatus(n naming.Namer, locations []domain.Location) string {
	rules := make([]string, 0, 2*len(locations))
	for _, l := range locations {
		s := n.SpareIn(l)
		rules = append(rules,
			ltl.Group(ltl.Implies(ltl.Not(s), ltl.Next(ltl.Not(s)))),
			ltl.Group(ltl.Implies(ltl.Group(ltl.And(s, ltl.Not(n.ChangeTire(l)))), ltl.Next(s))),
		)
	}
	return ltl.Always(ltl.And(rules...))
}
