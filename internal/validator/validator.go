package validator

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/aretw0/plangen/pkg/domain"
)

// ValidateInstance runs the instance invariants and crawls the location graph
// from start. It reports dangling edges, unreachable locations and, for the
// tireworld, any road without its move-car action or vice versa.
func ValidateInstance(in *domain.Instance, start domain.Location) error {
	err := in.Validate()

	for _, e := range in.Edges {
		if !slices.Contains(in.Locations, e.From) || !slices.Contains(in.Locations, e.To) {
			err = multierr.Append(err, fmt.Errorf("edge %s -> %s leaves the location set", e.From, e.To))
		}
	}

	if len(in.Locations) > 0 {
		if !slices.Contains(in.Locations, start) {
			return multierr.Append(err, fmt.Errorf("start location %s not found", start))
		}
		for _, l := range unreachable(in, start) {
			err = multierr.Append(err, fmt.Errorf("location %s is unreachable from %s", l, start))
		}
	}

	if in.Domain == domain.DomainTireworld {
		err = multierr.Append(err, checkRoadMoves(in))
	}

	return err
}

// unreachable crawls the edges breadth-first and returns the locations never
// visited, in declaration order.
func unreachable(in *domain.Instance, start domain.Location) []domain.Location {
	next := make(map[domain.Location][]domain.Location, len(in.Locations))
	for _, e := range in.Edges {
		next[e.From] = append(next[e.From], e.To)
	}

	visited := map[domain.Location]bool{}
	queue := []domain.Location{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next[current] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	var out []domain.Location
	for _, l := range in.Locations {
		if !visited[l] {
			out = append(out, l)
		}
	}
	return out
}

func checkRoadMoves(in *domain.Instance) error {
	var err error
	moves := map[domain.Edge]int{}
	for _, a := range in.Actions {
		if a.ID.Kind == domain.KindMoveCar {
			moves[domain.Edge{From: a.ID.From, To: a.ID.To}]++
		}
	}
	roads := map[domain.Edge]int{}
	for _, e := range in.Edges {
		roads[e]++
		if roads[e] == 2 {
			err = multierr.Append(err, fmt.Errorf("road %s -> %s declared twice", e.From, e.To))
		}
		if moves[e] != 1 {
			err = multierr.Append(err, fmt.Errorf("road %s -> %s has %d move actions", e.From, e.To, moves[e]))
		}
	}
	for e := range moves {
		if roads[e] == 0 {
			err = multierr.Append(err, fmt.Errorf("move %s -> %s has no road", e.From, e.To))
		}
	}
	return err
}
