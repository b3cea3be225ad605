package statistics

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/lox/prng/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Factory builds the engine for one stream. Every stream gets its own
// instance, so streams never share state.
type Factory func(stream int) (registry.Engine, error)

// Collect draws samples Float() values from each of streams engines in
// parallel and merges them into one Statistics.
func Collect(ctx context.Context, factory Factory, streams, samples, buckets int) (*Statistics, error) {
	if streams < 1 {
		return nil, fmt.Errorf("invalid stream count %d", streams)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	total := New(buckets)

	for stream := 0; stream < streams; stream++ {
		g.Go(func() error {
			e, err := factory(stream)
			if err != nil {
				return fmt.Errorf("stream %d: %w", stream, err)
			}

			local := New(buckets)
			for i := 0; i < samples; i++ {
				// check for cancellation every 64k samples
				if i&0xFFFF == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.Add(e.Float())
			}

			mu.Lock()
			defer mu.Unlock()
			return total.Merge(local)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}
