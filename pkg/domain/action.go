package domain

import "slices"

// ActionKind names a family of actions within a domain.
type ActionKind string

// Action kinds used by the shipped domains.
const (
	KindLeft       ActionKind = "l"
	KindRight      ActionKind = "r"
	KindUp         ActionKind = "u"
	KindDown       ActionKind = "d"
	KindMoveCar    ActionKind = "movecar"
	KindChangeTire ActionKind = "changetire"
)

// ActionID is a stable, comparable action identifier.
// Location fields are zero when the kind does not use them.
type ActionID struct {
	Kind ActionKind `json:"kind" yaml:"kind"`
	From Location   `json:"from" yaml:"from"`
	To   Location   `json:"to" yaml:"to"`
}

// Action is an agent proposition together with its precondition and its
// add/delete effects on environment fluents.
type Action struct {
	ID   ActionID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`

	// Precondition is evaluated one step before the action fires.
	// Empty means the domain gates the action structurally instead.
	Precondition string `json:"precondition,omitempty" yaml:"precondition,omitempty"`

	Add []string `json:"add,omitempty" yaml:"add,omitempty"`
	Del []string `json:"del,omitempty" yaml:"del,omitempty"`
}

// Adds reports whether the action establishes fluent.
func (a Action) Adds(fluent string) bool {
	return slices.Contains(a.Add, fluent)
}

// Deletes reports whether the action negates fluent.
func (a Action) Deletes(fluent string) bool {
	return slices.Contains(a.Del, fluent)
}

// Preconditions indexes the precondition formulas of actions by ID.
func Preconditions(actions []Action) map[ActionID]string {
	m := make(map[ActionID]string, len(actions))
	for _, a := range actions {
		m[a.ID] = a.Precondition
	}
	return m
}

