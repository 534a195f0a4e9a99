package domain

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Instance is the root aggregate of one generation run.
// It is built once by a domain generator and only read afterwards.
type Instance struct {
	Domain string `json:"domain" yaml:"domain"`
	Size   int    `json:"size" yaml:"size"`

	Locations []Location `json:"locations" yaml:"locations"`
	Edges     []Edge     `json:"edges,omitempty" yaml:"edges,omitempty"`

	Partition Partition `json:"partition" yaml:"partition"`
	Actions   []Action  `json:"actions" yaml:"actions"`

	// Fluents are the environment propositions governed by frame axioms.
	Fluents []string `json:"fluents,omitempty" yaml:"fluents,omitempty"`
	// Static propositions hold at every instant (e.g. roads).
	Static []string `json:"static,omitempty" yaml:"static,omitempty"`

	// Init, Goal and GameOver are conjunctions of literals ("p" or "!p").
	Init     []string `json:"init" yaml:"init"`
	Goal     []string `json:"goal" yaml:"goal"`
	GameOver []string `json:"game_over,omitempty" yaml:"game_over,omitempty"`
}

// Action returns the action with the given ID.
func (in *Instance) Action(id ActionID) (Action, bool) {
	for _, a := range in.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Validate checks that the partition is disjoint, names are unique and every
// referenced proposition is declared in the right class. All violations are
// reported together.
func (in *Instance) Validate() error {
	var err error

	class := make(map[string]Class, len(in.Partition.Inputs)+len(in.Partition.Outputs))
	for _, p := range in.Partition.Propositions() {
		if prev, ok := class[p.Name]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q declared as %s and %s", ErrDuplicateProposition, p.Name, prev, p.Class))
			continue
		}
		class[p.Name] = p.Class
	}

	expect := func(name string, want Class, where string) {
		if got, ok := class[name]; !ok || got != want {
			err = multierr.Append(err, fmt.Errorf("%w: %s refers to %q (want %s)", ErrUndeclaredProposition, where, name, want))
		}
	}

	for _, a := range in.Actions {
		expect(a.Name, Agent, "action list")
		for _, f := range a.Add {
			expect(f, Environment, "add list of "+a.Name)
		}
		for _, f := range a.Del {
			expect(f, Environment, "delete list of "+a.Name)
		}
	}
	for _, f := range in.Fluents {
		expect(f, Environment, "fluents")
	}
	for _, f := range in.Static {
		expect(f, Environment, "static propositions")
	}
	for _, lit := range in.Init {
		expect(strings.TrimPrefix(lit, "!"), Environment, "initial state")
	}
	for _, lit := range in.Goal {
		expect(strings.TrimPrefix(lit, "!"), Environment, "goal")
	}
	for _, lit := range in.GameOver {
		expect(strings.TrimPrefix(lit, "!"), Environment, "game-over state")
	}

	return err
}
