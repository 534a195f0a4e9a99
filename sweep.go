package plangen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
)

// Sweep generates the named domain for every size in [from, to] concurrently
// and returns the encodings in size order. The first failure cancels the rest.
func (g *Generator) Sweep(ctx context.Context, name string, from, to int) ([]*encoding.Encoding, error) {
	if from > to {
		return nil, fmt.Errorf("sweep range %d..%d is empty: %w", from, to, domain.ErrInvalidSize)
	}

	out := make([]*encoding.Encoding, to-from+1)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for size := from; size <= to; size++ {
		eg.Go(func() error {
			enc, err := g.Generate(ctx, name, size)
			if err != nil {
				return err
			}
			out[size-from] = enc
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
