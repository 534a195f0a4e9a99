package tireworld

import (
	"fmt"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/ltl"
	"github.com/aretw0/plangen/pkg/naming"
)

// Hard-coded benchmark parameters: the car starts at the top with an intact
// tire, spares lie on the top two layers and the goal is the right corner of
// the second layer.
var (
	StartLocation = domain.Location{I: 1, J: 1}
	GoalLocation  = domain.Location{I: 2, J: 1}
	SpareLocations = []domain.Location{
		{I: 1, J: 2},
		{I: 1, J: 1},
		{I: 2, J: 1},
	}
)

// Build derives the tireworld instance with n layers.
func Build(n int) (*domain.Instance, error) {
	if n < MinLayers {
		return nil, fmt.Errorf("tireworld layers %d is below the minimum of %d: %w", n, MinLayers, domain.ErrInvalidSize)
	}

	namer := naming.New(n)
	layers := Layers(n)
	locations := Flatten(layers)
	roads := Roads(layers)
	actions := Actions(namer, locations, roads)

	vehicle := make([]string, len(locations))
	spares := make([]string, len(locations))
	for i, l := range locations {
		vehicle[i] = namer.VehicleAt(l)
		spares[i] = namer.SpareIn(l)
	}
	roadNames := make([]string, len(roads))
	for i, e := range roads {
		roadNames[i] = namer.Road(e.From, e.To)
	}
	outputs := make([]string, len(actions))
	for i, a := range actions {
		outputs[i] = a.Name
	}

	inputs := make([]string, 0, 2*len(locations)+len(roads)+1)
	inputs = append(inputs, vehicle...)
	inputs = append(inputs, spares...)
	inputs = append(inputs, roadNames...)
	inputs = append(inputs, naming.FlatTire)

	fluents := make([]string, 0, 2*len(locations)+1)
	fluents = append(fluents, spares...)
	fluents = append(fluents, vehicle...)
	fluents = append(fluents, naming.FlatTire)

	init := []string{ltl.Not(naming.FlatTire), namer.VehicleAt(StartLocation)}
	for _, l := range SpareLocations {
		init = append(init, namer.SpareIn(l))
	}

	return &domain.Instance{
		Domain:    domain.DomainTireworld,
		Size:      n,
		Locations: locations,
		Edges:     roads,
		Partition: domain.Partition{Inputs: inputs, Outputs: outputs},
		Actions:   actions,
		Fluents:   fluents,
		Static:    roadNames,
		Init:      init,
		Goal:      []string{namer.VehicleAt(GoalLocation)},
	}, nil
}

// Encode assembles the formula of a tireworld instance.
//
// The PPLTL formula is
//
//	F(H((A) & AC) & ((INIT) & H(((V) & VC) & (FRAMES) & H(ROADS))) -> (O(GOAL)))
//
// where A/AC and V/VC are the mutual exclusions of actions and vehicle
// positions, and FRAMES conjoins one frame axiom per fluent.
func Encode(in *domain.Instance, mode encoding.Mode) (*encoding.Encoding, error) {
	namer := naming.New(in.Size)
	vehicle := make([]string, len(in.Locations))
	for i, l := range in.Locations {
		vehicle[i] = namer.VehicleAt(l)
	}

	acts, actPairs := ltl.MutualExclusion(in.Partition.Outputs)
	at, atPairs := ltl.MutualExclusion(vehicle)
	init := ltl.And(in.Init...)
	goal := ltl.And(in.Goal...)
	roads := ltl.And(in.Static...)

	enc := &encoding.Encoding{
		Domain:    in.Domain,
		Size:      in.Size,
		Mode:      mode,
		Partition: in.Partition,
	}

	switch mode {
	case encoding.ModePPLTL:
		enc.Axioms = ltl.FrameAxioms(in.Fluents, in.Actions, domain.Preconditions(in.Actions))
		frames := ltl.And(ltl.Formulas(enc.Axioms)...)

		agent := ltl.And(ltl.Group(acts), actPairs)
		env := ltl.And(
			ltl.Group(ltl.And(ltl.Group(at), atPairs)),
			ltl.Group(frames),
			ltl.Historically(roads),
		)
		enc.Sections = encoding.Sections{
			Init:        ltl.Group(init),
			Agent:       ltl.Group(agent),
			Environment: ltl.Group(env),
			Goal:        ltl.Once(goal),
		}
		enc.Formula = ltl.Eventually(ltl.Implies(
			ltl.And(
				ltl.Historically(agent),
				ltl.Group(ltl.And(ltl.Group(init), ltl.Historically(env))),
			),
			ltl.Group(ltl.Once(goal)),
		))

	case encoding.ModeLTLf:
		enc.Sections = encoding.Sections{
			Init: ltl.Group(init),
			Agent: ltl.And(
				ltl.Group(ltl.And(ltl.Group(acts), actPairs)),
				ltl.Group(ltl.And(FuturePreconditions(in.Actions)...)),
			),
			Environment: ltl.And(
				ltl.Group(ltl.And(ltl.Group(at), atPairs)),
				ltl.Group(ltl.And(FutureEffects(namer, in.Actions)...)),
				ltl.Group(SpareStatus(namer, in.Locations)),
				ltl.Always(roads),
			),
			Goal: ltl.Eventually(goal),
		}
		enc.Formula = encoding.AssembleFuture(enc.Sections)

	default:
		return nil, fmt.Errorf("%w: %q", encoding.ErrUnknownMode, mode)
	}

	return enc, nil
}

// Generate builds and encodes a tireworld with n layers.
func Generate(n int, mode encoding.Mode) (*encoding.Encoding, error) {
	in, err := Build(n)
	if err != nil {
		return nil, err
	}
	return Encode(in, mode)
}
