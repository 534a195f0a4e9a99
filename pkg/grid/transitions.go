package grid

import (
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/ltl"
)

func (m move) line(rows, cols []string) []string {
	if m.axis == axisRows {
		return rows
	}
	return cols
}

// target renders where a slide may end: a single proposition, or the grouped
// disjunction of both candidates.
func target(line []string, idx []int) string {
	if len(idx) == 1 {
		return line[idx[0]]
	}
	names := make([]string, len(idx))
	for i, k := range idx {
		names[i] = line[k]
	}
	return ltl.Group(ltl.Or(names...))
}

// fired renders "(m & Y(pre))": the move fires and was enabled one step earlier.
func fired(m move, pre map[domain.ActionID]string) string {
	return ltl.Group(ltl.And(string(m.kind), ltl.Yesterday(pre[domain.ActionID{Kind: m.kind}])))
}

// Transitions compiles the past-time movement rules, in l, r, u, d order:
//
//	(Y(p) -> ((m & Y(pre)) -> target))
//
// Positions on the edge a move leaves through produce no rule.
func Transitions(rows, cols []string, pre map[domain.ActionID]string) []string {
	var out []string
	for _, m := range moves {
		line := m.line(rows, cols)
		for i, p := range line {
			idx := Slide(i, m.delta, len(line))
			if len(idx) == 0 {
				continue
			}
			out = append(out, ltl.Group(ltl.Implies(ltl.Yesterday(p), ltl.Group(ltl.Implies(fired(m, pre), target(line, idx))))))
		}
	}
	return out
}

// Persistence compiles the rules keeping the coordinate a move does not
// travel along: vertical moves keep the column, horizontal moves keep the row.
//
//	(Y(p) -> ((m & Y(pre)) -> p))
func Persistence(rows, cols []string, pre map[domain.ActionID]string) []string {
	var out []string
	for _, a := range []axis{axisCols, axisRows} {
		line := cols
		if a == axisRows {
			line = rows
		}
		for _, p := range line {
			for _, m := range moves {
				if m.axis == a {
					continue
				}
				out = append(out, ltl.Group(ltl.Implies(ltl.Yesterday(p), ltl.Group(ltl.Implies(fired(m, pre), p)))))
			}
		}
	}
	return out
}

// FutureTransitions is the next-time counterpart of Transitions:
//
//	(p -> X(m -> target))
func FutureTransitions(rows, cols []string) []string {
	var out []string
	for _, m := range moves {
		line := m.line(rows, cols)
		for i, p := range line {
			idx := Slide(i, m.delta, len(line))
			if len(idx) == 0 {
				continue
			}
			out = append(out, ltl.Group(ltl.Implies(p, ltl.Next(ltl.Implies(string(m.kind), target(line, idx))))))
		}
	}
	return out
}

// FuturePersistence is the next-time counterpart of Persistence.
func FuturePersistence(rows, cols []string) []string {
	var out []string
	for _, a := range []axis{axisCols, axisRows} {
		line := cols
		if a == axisRows {
			line = rows
		}
		for _, p := range line {
			for _, m := range moves {
				if m.axis == a {
					continue
				}
				out = append(out, ltl.Group(ltl.Implies(p, ltl.Next(ltl.Implies(string(m.kind), p)))))
			}
		}
	}
	return out
}

// FuturePreconditions renders "(m -> pre)" for every move.
func FuturePreconditions(actions []domain.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = ltl.Group(ltl.Implies(a.Name, a.Precondition))
	}
	return out
}
