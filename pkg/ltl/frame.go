package ltl

import "github.com/aretw0/plangen/pkg/domain"

// Shape identifies which frame-axiom form a fluent compiled to.
type Shape int

const (
	// ShapeBoth: the fluent has enabling and disabling actions.
	ShapeBoth Shape = iota
	// ShapeDecay: no action establishes the fluent; it can only be lost.
	ShapeDecay
	// ShapeLatch: no action negates the fluent; once set it stays set.
	ShapeLatch
	// ShapeInert: no action touches the fluent; it keeps its previous value.
	ShapeInert
)

func (s Shape) String() string {
	switch s {
	case ShapeBoth:
		return "both"
	case ShapeDecay:
		return "decay"
	case ShapeLatch:
		return "latch"
	case ShapeInert:
		return "inert"
	}
	return "unknown"
}

// MarshalText renders the shape by name in JSON and YAML output.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Firing renders "(a & P)": action a fires while its precondition held.
func Firing(action, precondition string) string {
	return Group(And(action, precondition))
}

// FrameAxiom compiles the persistence biconditional of fluent.
//
// activated and deactivated are the already-joined disjunctions of Firing
// terms for the enabling and disabling actions. The form is chosen on their
// emptiness:
//
//	both    (f <-> (Y(A) | Y(f & (!(D)))))
//	decay   (f <-> Y(f & (!(D))))
//	latch   (f <-> (Y(A)))
//	inert   (f <-> Y(f))
func FrameAxiom(fluent, activated, deactivated string) (string, Shape) {
	switch {
	case activated == "" && deactivated == "":
		return Group(Iff(fluent, Yesterday(fluent))), ShapeInert
	case activated == "":
		return Group(Iff(fluent, persists(fluent, deactivated))), ShapeDecay
	case deactivated == "":
		return Group(Iff(fluent, Group(Yesterday(activated)))), ShapeLatch
	default:
		return Group(Iff(fluent, Group(Or(Yesterday(activated), persists(fluent, deactivated))))), ShapeBoth
	}
}

// persists renders "Y(f & (!(D)))".
func persists(fluent, deactivated string) string {
	return Yesterday(And(fluent, Group(NotGroup(deactivated))))
}

// Axiom is the compiled frame axiom of one fluent.
type Axiom struct {
	Fluent  string `json:"fluent" yaml:"fluent"`
	Formula string `json:"formula" yaml:"formula"`
	Shape   Shape  `json:"shape" yaml:"shape"`
}

// FrameAxioms compiles one axiom per fluent, in fluent order.
//
// Enabling and disabling actions are collected in action order from their add
// and delete lists; each contributes Firing(name, pre[id]).
func FrameAxioms(fluents []string, actions []domain.Action, pre map[domain.ActionID]string) []Axiom {
	axioms := make([]Axiom, 0, len(fluents))
	for _, f := range fluents {
		var add, del []string
		for _, a := range actions {
			if a.Adds(f) {
				add = append(add, Firing(a.Name, pre[a.ID]))
			}
			if a.Deletes(f) {
				del = append(del, Firing(a.Name, pre[a.ID]))
			}
		}
		formula, shape := FrameAxiom(f, Or(add...), Or(del...))
		axioms = append(axioms, Axiom{Fluent: f, Formula: formula, Shape: shape})
	}
	return axioms
}

// Formulas extracts the axiom texts in order.
func Formulas(axioms []Axiom) []string {
	out := make([]string, len(axioms))
	for i, a := range axioms {
		out[i] = a.Formula
	}
	return out
}
