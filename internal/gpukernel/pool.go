package gpukernel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool launches a fixed number of worker goroutines per call, each given
// a contiguous, disjoint slice of an index space — the host-side stand-in
// for dispatching a GPU kernel across a thread grid.
type Pool struct {
	workers int
}

// NewPool creates a Pool with the given worker count. workers must be > 0;
// it is typically GOMAXPROCS, not the thousand-plus lanes a real GPU block
// would use, since these are OS threads.
func NewPool(workers int) (*Pool, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	return &Pool{workers: workers}, nil
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// Launch partitions [0, n) into at most p.workers contiguous chunks and
// runs fn once per chunk concurrently, passing the chunk's worker index
// (for indexing a caller-owned partials slice) and its [lo, hi) bounds.
//
// A panic inside fn is recovered and reported as *ErrWorkerPanic so a
// single bad launch surfaces as an ordinary error to the caller, which
// must treat it as fatal and abort every rank.
//
// Complexity: O(n/workers) per worker, O(workers) combine overhead left
// to the caller.
func (p *Pool) Launch(ctx context.Context, n int, fn func(worker, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	base := n / workers
	remainder := n % workers

	group, gctx := errgroup.WithContext(ctx)
	offset := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < remainder {
			size++
		}
		lo, hi := offset, offset+size
		offset = hi

		w := w
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &ErrWorkerPanic{Worker: w, Value: r}
				}
			}()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			return fn(w, lo, hi)
		})
	}

	return group.Wait()
}
