// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// Config controls the per-structure worker pool.
type Config struct {
	Workers int // worker goroutines; <=0 means all CPUs
}

// Result is the outcome of one structure's back-calculation. Failures are
// carried as data so one bad structure never takes down its siblings.
type Result[T any] struct {
	Path   string
	Output T
	Err    error
}

// Map runs fn once per path on a bounded worker pool and returns one
// Result per path, in input order. fn must be a pure function of its path
// argument: results carry no cross-structure state.
//
// There is no mid-batch cancellation beyond ctx; paths not yet started
// when ctx is done are reported with ctx.Err().
func Map[T any](ctx context.Context, cfg Config, paths []string, fn func(context.Context, string) (T, error)) []Result[T] {
	results := make([]Result[T], len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, err := fn(ctx, paths[i])
				results[i] = Result[T]{Path: paths[i], Output: out, Err: err}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Unstarted jobs fail with the context error; started ones
			// finish and report their own outcome.
			for j := i; j < len(paths); j++ {
				results[j] = Result[T]{Path: paths[j], Err: ctx.Err()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
