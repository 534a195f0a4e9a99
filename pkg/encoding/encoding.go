// Package encoding holds the result of encoding a domain instance and the
// writers that serialize it for downstream tools.
package encoding

import (
	"fmt"
	"strings"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/ltl"
)

// Mode selects the temporal flavour of an encoding.
type Mode string

const (
	// ModePPLTL is the pure-past encoding: one F(...) over past-time constraints.
	ModePPLTL Mode = "ppltl"
	// ModeLTLf is the future-time alternative built from X(...) transitions.
	ModeLTLf Mode = "ltlf"
)

// ParseMode resolves a mode name. The empty string selects ModePPLTL.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case "", ModePPLTL:
		return ModePPLTL, nil
	case ModeLTLf:
		return ModeLTLf, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Sections are the four parts an encoding is assembled from.
type Sections struct {
	Init        string `json:"init" yaml:"init"`
	Agent       string `json:"agent" yaml:"agent"`
	Environment string `json:"environment" yaml:"environment"`
	Goal        string `json:"goal" yaml:"goal"`
}

// Encoding is a complete benchmark: the symbol partition and the formula.
type Encoding struct {
	Domain    string           `json:"domain" yaml:"domain"`
	Size      int              `json:"size" yaml:"size"`
	Mode      Mode             `json:"mode" yaml:"mode"`
	Partition domain.Partition `json:"partition" yaml:"partition"`
	Formula   string           `json:"formula" yaml:"formula"`
	Sections  Sections         `json:"sections" yaml:"sections"`

	// Axioms lists the frame axioms behind the environment section, when the
	// domain compiles any.
	Axioms []ltl.Axiom `json:"axioms,omitempty" yaml:"axioms,omitempty"`
}

// AssembleFuture builds the LTLf formula shared by every domain:
// (INIT & G(AGENT) & G(ENV)) -> (GOAL). Init is expected to be grouped already.
func AssembleFuture(s Sections) string {
	antecedent := ltl.Group(ltl.And(
		s.Init,
		ltl.Always(s.Agent),
		ltl.Always(s.Environment),
	))
	return ltl.Implies(antecedent, ltl.Group(s.Goal))
}
