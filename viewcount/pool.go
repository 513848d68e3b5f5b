// SPDX-License-Identifier: MIT

package viewcount

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runPool evaluates job(i) for every i in [0, n) on at most o.workers
// goroutines and returns the results indexed by i.
// The context is checked before each job; the first job error or the
// context error aborts the pass and no results are returned.
func (o Options) runPool(ctx context.Context, n int, job func(i int) (int, error)) ([]int, error) {
	results := make([]int, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	var (
		mu   sync.Mutex
		done int
	)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := job(i)
			if err != nil {
				return err
			}
			results[i] = v
			if o.progress != nil {
				mu.Lock()
				done++
				o.progress(done, n)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation that raced the last job still counts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
