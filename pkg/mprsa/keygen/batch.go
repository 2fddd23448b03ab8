package keygen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// GenerateBatch generates count independent key materials, each from
// numPrimes primes, running at most Config.Workers generations at once. All
// generations share the Generator's locked Source. The first failure cancels
// the remaining work and is returned.
func (g *Generator) GenerateBatch(ctx context.Context, count, numPrimes int) ([]*Material, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative batch size %d", mprsa.ErrInvalidArgument, count)
	}

	out := make([]*Material, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	for i := range out {
		eg.Go(func() error {
			m, err := g.GenerateMaterial(ctx, numPrimes)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			out[i] = m
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		for _, m := range out {
			if m != nil {
				m.Destroy()
			}
		}
		return nil, err
	}
	return out, nil
}
