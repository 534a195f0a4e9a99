package grid

import (
	"fmt"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/ltl"
	"github.com/aretw0/plangen/pkg/naming"
)

// Hard-coded benchmark parameters. Init and goal are clamped onto a small
// board; the game-over cell is dropped instead (see GameOver).
var (
	InitCell     = domain.Location{I: 1, J: 1}
	GoalCell     = domain.Location{I: 4, J: 4}
	GameOverCell = domain.Location{I: 3, J: 2}
)

// Build derives the grid instance for an n×n board.
func Build(n int) (*domain.Instance, error) {
	if n < MinSize {
		return nil, fmt.Errorf("grid size %d is below the minimum of %d: %w", n, MinSize, domain.ErrInvalidSize)
	}

	rows, cols := Rows(n), Cols(n)
	actions := Actions(rows, cols)

	inputs := make([]string, 0, 2*n)
	inputs = append(inputs, rows...)
	inputs = append(inputs, cols...)

	outputs := make([]string, len(actions))
	for i, a := range actions {
		outputs[i] = a.Name
	}

	cells := Cells(n)
	var edges []domain.Edge
	for _, c := range cells {
		for _, next := range Neighbors(c, n) {
			edges = append(edges, domain.Edge{From: c, To: next})
		}
	}

	return &domain.Instance{
		Domain:    domain.DomainGrid,
		Size:      n,
		Locations: cells,
		Edges:     edges,
		Partition: domain.Partition{Inputs: inputs, Outputs: outputs},
		Actions:   actions,
		Init:      cellLiterals(Clamp(InitCell, n)),
		Goal:      cellLiterals(Clamp(GoalCell, n)),
		GameOver:  GameOver(n),
	}, nil
}

// GameOver returns the game-over literals of an n×n board, or nil when the
// game-over cell is off the board or coincides with the goal.
func GameOver(n int) []string {
	l := GameOverCell
	if l.I > n || l.J > n || l == Clamp(GoalCell, n) {
		return nil
	}
	return cellLiterals(l)
}

// Clamp moves l onto an n×n board.
func Clamp(l domain.Location, n int) domain.Location {
	return domain.Location{I: min(l.I, n), J: min(l.J, n)}
}

func cellLiterals(l domain.Location) []string {
	return []string{naming.Row(l.I), naming.Col(l.J)}
}

// Encode assembles the formula of a grid instance.
//
// The PPLTL formula is
//
//	F((H((A) & (AC)) & (INIT) & H((R) & (RC) & (C) & (CC) & (T))) -> (O(GOAL)))
//
// where A/AC, R/RC and C/CC are the mutual exclusions of actions, rows and
// columns, and T conjoins Transitions and Persistence.
func Encode(in *domain.Instance, mode encoding.Mode) (*encoding.Encoding, error) {
	rows, cols := Rows(in.Size), Cols(in.Size)
	pre := domain.Preconditions(in.Actions)

	acts, actPairs := ltl.MutualExclusion(in.Partition.Outputs)
	rowAny, rowPairs := ltl.MutualExclusion(rows)
	colAny, colPairs := ltl.MutualExclusion(cols)
	init := ltl.And(in.Init...)
	goal := ltl.And(in.Goal...)

	enc := &encoding.Encoding{
		Domain:    in.Domain,
		Size:      in.Size,
		Mode:      mode,
		Partition: in.Partition,
	}

	switch mode {
	case encoding.ModePPLTL:
		trans := ltl.And(append(Transitions(rows, cols, pre), Persistence(rows, cols, pre)...)...)

		enc.Sections = encoding.Sections{
			Init:  ltl.Group(init),
			Agent: ltl.Group(ltl.And(ltl.Group(acts), actPairs)),
			Environment: ltl.Group(ltl.And(
				ltl.Group(ltl.And(ltl.Group(rowAny), rowPairs)),
				ltl.Group(ltl.And(ltl.Group(colAny), colPairs)),
				ltl.Group(trans),
			)),
			Goal: ltl.Once(goal),
		}
		enc.Formula = ltl.Eventually(ltl.Implies(
			ltl.Group(ltl.And(
				ltl.Historically(ltl.And(ltl.Group(acts), ltl.Group(actPairs))),
				ltl.Group(init),
				ltl.Historically(ltl.And(
					ltl.Group(rowAny), ltl.Group(rowPairs),
					ltl.Group(colAny), ltl.Group(colPairs),
					ltl.Group(trans),
				)),
			)),
			ltl.Group(ltl.Once(goal)),
		))

	case encoding.ModeLTLf:
		trans := ltl.And(append(FutureTransitions(rows, cols), FuturePersistence(rows, cols)...)...)

		enc.Sections = encoding.Sections{
			Init: ltl.Group(init),
			Agent: ltl.And(
				ltl.Group(ltl.And(ltl.Group(acts), actPairs)),
				ltl.Group(ltl.And(FuturePreconditions(in.Actions)...)),
			),
			Environment: ltl.And(
				ltl.Group(ltl.And(ltl.Group(rowAny), rowPairs)),
				ltl.Group(ltl.And(ltl.Group(colAny), colPairs)),
				ltl.Group(trans),
			),
			Goal: ltl.Eventually(goal),
		}
		enc.Formula = encoding.AssembleFuture(enc.Sections)

	default:
		return nil, fmt.Errorf("%w: %q", encoding.ErrUnknownMode, mode)
	}

	return enc, nil
}

// Generate builds and encodes an n×n grid.
func Generate(n int, mode encoding.Mode) (*encoding.Encoding, error) {
	in, err := Build(n)
	if err != nil {
		return nil, err
	}
	return Encode(in, mode)
}
