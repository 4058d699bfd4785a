// Package gpukernel simulates the device-side, data-parallel half of the
// system: a bounded pool of goroutines standing in for GPU threads, each
// processing a disjoint contiguous slice of an index space
// and producing a partial result that the caller combines on the host —
// the same "reduce per block, sum partials on host" shape the real kernels
// use, just with OS threads instead of device lanes and a handful of
// workers instead of a thousand-wide block.
package gpukernel
