package collective

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// channels holds the shared, tree-shaped wiring every rank's Comm reads
// and writes. One set per element type is enough: within a single rank's
// goroutine, collective calls execute strictly sequentially, so the same
// channels can be reused by every logical collective of a given type
// across the whole run.
type channels struct {
	upF, downF []chan []float64
	upI, downI []chan []int32
	upS, downS []chan int
}

func newChannels(n int) *channels {
	c := &channels{
		upF: make([]chan []float64, n), downF: make([]chan []float64, n),
		upI: make([]chan []int32, n), downI: make([]chan []int32, n),
		upS: make([]chan int, n), downS: make([]chan int, n),
	}
	for i := 0; i < n; i++ {
		c.upF[i] = make(chan []float64, 1)
		c.downF[i] = make(chan []float64, 1)
		c.upI[i] = make(chan []int32, 1)
		c.downI[i] = make(chan []int32, 1)
		c.upS[i] = make(chan int, 1)
		c.downS[i] = make(chan int, 1)
	}

	return c
}

// Ranks is the simulated world of P worker processes running the same
// program against disjoint data (SPMD): Run spawns one goroutine per
// rank and hands each one a *Comm
// wired into the same tree so they can all reach the collective layer.
type Ranks struct {
	n int
}

// New creates a simulated world of n ranks. n must be > 0.
func New(n int) (*Ranks, error) {
	if n <= 0 {
		return nil, ErrInvalidRankCount
	}

	return &Ranks{n: n}, nil
}

// N returns the world size.
func (r *Ranks) N() int { return r.n }

// Run invokes fn once per rank, concurrently, each with its own *Comm.
// fn must call Comm's methods in the same order on every rank — Run does
// not enforce this; a mismatched call order deadlocks exactly as it would
// under real MPI, until ctx is canceled by a sibling's failure.
//
// If any rank's fn returns a non-nil error, every other rank's ctx is
// canceled (via errgroup.WithContext) so that ranks blocked on a
// collective unblock with a context error instead of hanging forever;
// Run returns the first error, wrapped in *ErrRankFailed.
func (r *Ranks) Run(ctx context.Context, fn func(ctx context.Context, comm *Comm) error) error {
	ch := newChannels(r.n)

	group, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < r.n; rank++ {
		rank := rank
		group.Go(func() error {
			comm := newComm(rank, r.n, ch)
			if err := fn(gctx, comm); err != nil {
				return &ErrRankFailed{Rank: rank, Err: err}
			}

			return nil
		})
	}

	return group.Wait()
}
