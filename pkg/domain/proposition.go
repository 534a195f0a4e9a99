package domain

// Class tells who controls a proposition.
type Class string

const (
	// Environment propositions are state fluents and static relations (inputs).
	Environment Class = "environment"
	// Agent propositions are the controllable actions (outputs).
	Agent Class = "agent"
)

// Proposition is a named boolean variable.
type Proposition struct {
	Name  string `json:"name" yaml:"name"`
	Class Class  `json:"class" yaml:"class"`
}

// Partition is the split of the symbol set into inputs and outputs,
// in declaration order.
type Partition struct {
	Inputs  []string `json:"inputs" yaml:"inputs"`
	Outputs []string `json:"outputs" yaml:"outputs"`
}

// Propositions flattens the partition, inputs first.
func (p Partition) Propositions() []Proposition {
	props := make([]Proposition, 0, len(p.Inputs)+len(p.Outputs))
	for _, name := range p.Inputs {
		props = append(props, Proposition{Name: name, Class: Environment})
	}
	for _, name := range p.Outputs {
		props = append(props, Proposition{Name: name, Class: Agent})
	}
	return props
}
