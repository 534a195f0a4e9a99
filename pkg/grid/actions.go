package grid

import (
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/ltl"
)

type axis int

const (
	axisCols axis = iota
	axisRows
)

// move describes one movement action: the axis it travels and its direction.
type move struct {
	kind  domain.ActionKind
	axis  axis
	delta int
}

// moves is the fixed action order l, r, u, d.
var moves = []move{
	{kind: domain.KindLeft, axis: axisCols, delta: -1},
	{kind: domain.KindRight, axis: axisCols, delta: +1},
	{kind: domain.KindUp, axis: axisRows, delta: -1},
	{kind: domain.KindDown, axis: axisRows, delta: +1},
}

// edge returns the proposition of the board edge a move cannot cross.
func (m move) edge(rows, cols []string) string {
	line := cols
	if m.axis == axisRows {
		line = rows
	}
	if m.delta < 0 {
		return line[0]
	}
	return line[len(line)-1]
}

// Actions builds the four movement actions. Each is only enabled away from
// the edge it would leave the board through, so its precondition is "!(edge)".
// Movement changes rows and columns through Transitions, not add/delete lists.
func Actions(rows, cols []string) []domain.Action {
	actions := make([]domain.Action, 0, len(moves))
	for _, m := range moves {
		actions = append(actions, domain.Action{
			ID:           domain.ActionID{Kind: m.kind},
			Name:         string(m.kind),
			Precondition: ltl.NotGroup(m.edge(rows, cols)),
		})
	}
	return actions
}
