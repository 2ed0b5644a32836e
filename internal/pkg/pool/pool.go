// Package pool bounds the number of simultaneously in-flight tasks without
// every call site growing its own chunking loop.
package pool

import (
	"context"
	"sync"
)

// ForEach runs fn for every item with at most maxInFlight invocations running
// at once, advancing through items in order regardless of the list length.
// The results slice is index-aligned with items. ForEach waits for all started
// tasks before returning; it stops admitting new tasks once ctx is done and
// returns ctx.Err() in that case.
func ForEach[T, R any](ctx context.Context, items []T, maxInFlight int, fn func(ctx context.Context, item T) R) ([]R, error) {
	if maxInFlight < 1 {
		maxInFlight = 1
	}

	results := make([]R, len(items))
	sem := make(chan struct{}, maxInFlight)
	var wg sync.WaitGroup

	for i, item := range items {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return results, ctx.Err()
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = fn(ctx, item)
		}(i, item)
	}

	wg.Wait()
	return results, nil
}
