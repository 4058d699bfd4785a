package gpukernel

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkerCount indicates a non-positive worker count was requested.
var ErrInvalidWorkerCount = errors.New("gpukernel: worker count must be > 0")

// ErrWorkerPanic is the fatal, GPU-resource-failure analogue: a launched
// worker panicked instead of returning an error.
// The pool recovers the panic so one bad launch cannot take down the
// whole process before the controller has a chance to abort every rank.
type ErrWorkerPanic struct {
	Worker int
	Value  any
}

func (e *ErrWorkerPanic) Error() string {
	return fmt.Sprintf("gpukernel: worker %d panicked: %v", e.Worker, e.Value)
}
