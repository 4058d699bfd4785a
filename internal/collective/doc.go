// Package collective simulates the MPI-style collective primitives a
// distributed co-clustering run needs — AllReduce-sum, AllGather-varying,
// and Barrier — over a fixed number of simulated worker ranks, without a
// real network.
//
// Each rank is a goroutine; cross-rank combination happens over channels
// arranged as a binary tree (values flow up to rank 0, which combines them,
// then the combined result flows back down), grounded on the parent/child
// tree-reduction shape of a classic tree allreduce. Every collective call
// must be invoked in the same order by every rank — the same requirement
// a real MPI program has, since these are blocking rendezvous points, not
// asynchronous messages.
package collective
