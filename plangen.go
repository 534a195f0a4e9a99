package plangen

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/plangen/internal/logging"
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/observability"
	"github.com/aretw0/plangen/pkg/registry"
)

// Version is the release of the generator.
var Version = "0.3.0"

// Generator is the high-level entry point for the library.
// It resolves domains through a registry and wraps every run with logging
// and metrics. A Generator is safe for concurrent use; runs share nothing.
type Generator struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *observability.Metrics
	mode     encoding.Mode
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMetrics records every run on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}

// WithRegistry replaces the default grid/tireworld registry.
func WithRegistry(r *registry.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithMode sets the encoding mode (default: PPLTL).
func WithMode(mode encoding.Mode) Option {
	return func(g *Generator) {
		g.mode = mode
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		registry: registry.Default(),
		logger:   logging.NewNop(),
		mode:     encoding.ModePPLTL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Registry exposes the registry the Generator resolves domains with.
func (g *Generator) Registry() *registry.Registry {
	return g.registry
}

// Mode returns the configured encoding mode.
func (g *Generator) Mode() encoding.Mode {
	return g.mode
}

// Build derives the instance of the named domain without encoding it.
func (g *Generator) Build(ctx context.Context, name string, size int) (*domain.Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gen, err := g.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	in, err := gen.Build(size)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	g.logger.Debug("instance built",
		"domain", name,
		"size", size,
		"locations", len(in.Locations),
		"actions", len(in.Actions),
	)
	return in, nil
}

// Generate builds and encodes the named domain in the configured mode.
func (g *Generator) Generate(ctx context.Context, name string, size int) (*encoding.Encoding, error) {
	return g.GenerateMode(ctx, name, size, g.mode)
}

// GenerateMode is Generate with an explicit encoding mode.
func (g *Generator) GenerateMode(ctx context.Context, name string, size int, mode encoding.Mode) (*encoding.Encoding, error) {
	enc, err := g.generate(ctx, name, size, mode)
	if err != nil {
		g.metrics.Failed(failureLabels(name, mode, err))
		g.logger.Warn("generation failed", "domain", name, "size", size, "error", err)
		return nil, err
	}
	g.metrics.Observe(enc)
	g.logger.Debug("encoding generated",
		"domain", name,
		"size", size,
		"mode", enc.Mode,
		"inputs", len(enc.Partition.Inputs),
		"outputs", len(enc.Partition.Outputs),
		"formula_bytes", len(enc.Formula),
	)
	return enc, nil
}

// failureLabels keeps unresolved names out of metric labels.
func failureLabels(name string, mode encoding.Mode, err error) (string, encoding.Mode) {
	if errors.Is(err, domain.ErrUnknownDomain) {
		name = observability.LabelUnknown
	}
	if mode != encoding.ModePPLTL && mode != encoding.ModeLTLf {
		mode = observability.LabelUnknown
	}
	return name, mode
}

func (g *Generator) generate(ctx context.Context, name string, size int, mode encoding.Mode) (*encoding.Encoding, error) {
	in, err := g.Build(ctx, name, size)
	if err != nil {
		return nil, err
	}
	gen, err := g.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return gen.Encode(in, mode)
}

// Domains lists the registered domain names.
func (g *Generator) Domains() []string {
	return g.registry.Names()
}
