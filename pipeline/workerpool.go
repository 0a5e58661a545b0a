package pipeline

import (
	"context"
	"sync"
)

// RunWorkerPool fans fn out over archives with at most concurrency
// workers running at once, collecting every error fn returns (one slot
// in the returned slice per archive, in archives order; nil where fn
// succeeded). This is the same "bounded channel of slots plus
// sync.WaitGroup" shape penny-vault/pvdata's cmd/run.go and go-edgar's
// batch.go both use for concurrent per-item work.
func RunWorkerPool(ctx context.Context, archives []string, concurrency int, fn func(archiveURL string) error) []error {
	if concurrency < 1 {
		concurrency = 1
	}

	errs := make([]error, len(archives))
	jobs := make(chan int, len(archives))
	for i := range archives {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					errs[i] = ctx.Err()
					continue
				}
				errs[i] = fn(archives[i])
			}
		}()
	}
	wg.Wait()

	return errs
}
