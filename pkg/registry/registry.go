package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/grid"
	"github.com/aretw0/plangen/pkg/tireworld"
)

// BuildFunc derives a domain instance from its size parameter.
type BuildFunc func(size int) (*domain.Instance, error)

// EncodeFunc assembles the formula of an instance.
type EncodeFunc func(in *domain.Instance, mode encoding.Mode) (*encoding.Encoding, error)

// Generator describes one planning domain.
type Generator struct {
	Name    string
	Summary string
	// SizeName is how the size parameter reads in help texts ("side", "layers").
	SizeName string
	MinSize  int
	Build    BuildFunc
	Encode   EncodeFunc
	// Start names the initial location of an instance of the given size.
	// It may be nil for domains without a location graph.
	Start func(size int) domain.Location
}

// Registry manages the available domain generators.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Default returns a registry holding the grid and tireworld generators.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Generator{
		Name:     domain.DomainGrid,
		Summary:  "Slippery grid world: moves slide one or two cells",
		SizeName: "side",
		MinSize:  grid.MinSize,
		Build:    grid.Build,
		Encode:   grid.Encode,
		Start: func(n int) domain.Location {
			return grid.Clamp(grid.InitCell, n)
		},
	})
	r.Register(Generator{
		Name:     domain.DomainTireworld,
		Summary:  "Triangle tireworld: roads on a triangular map, tires may go flat",
		SizeName: "layers",
		MinSize:  tireworld.MinLayers,
		Build:    tireworld.Build,
		Encode:   tireworld.Encode,
		Start: func(int) domain.Location {
			return tireworld.StartLocation
		},
	})
	return r
}

// Register adds a generator to the registry.
// If a generator with the same name exists, it is overwritten.
func (r *Registry) Register(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[g.Name] = g
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (Generator, error) {
	r.mu.RLock()
	g, ok := r.generators[name]
	r.mu.RUnlock()

	if !ok {
		return Generator{}, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, name)
	}
	return g, nil
}

// Names lists the registered domains in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartOf returns the start location of in. Generators without a Start
// function fall back to the first declared location; ok is false when the
// instance has no locations at all.
func (g Generator) StartOf(in *domain.Instance) (domain.Location, bool) {
	if g.Start != nil {
		return g.Start(in.Size), true
	}
	if len(in.Locations) == 0 {
		return domain.Location{}, false
	}
	return in.Locations[0], true
}
