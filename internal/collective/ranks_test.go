package collective_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coclust/coclust/internal/collective"
)

func TestRanks_AllReduceSum(t *testing.T) {
	const n = 5
	ranks, err := collective.New(n)
	require.NoError(t, err)

	err = ranks.Run(context.Background(), func(ctx context.Context, comm *collective.Comm) error {
		local := []float64{float64(comm.Rank() + 1), 1.0}
		sum, err := comm.AllReduceSum(ctx, local)
		if err != nil {
			return err
		}
		require.Equal(t, float64(1+2+3+4+5), sum[0])
		require.Equal(t, float64(n), sum[1])

		return nil
	})
	require.NoError(t, err)
}

func TestRanks_AllReduceScalar(t *testing.T) {
	const n = 4
	ranks, err := collective.New(n)
	require.NoError(t, err)

	err = ranks.Run(context.Background(), func(ctx context.Context, comm *collective.Comm) error {
		total, err := comm.AllReduceScalar(ctx, comm.Rank())
		if err != nil {
			return err
		}
		require.Equal(t, 0+1+2+3, total)

		return nil
	})
	require.NoError(t, err)
}

func TestRanks_AllGatherVarying(t *testing.T) {
	const n = 3
	ranks, err := collective.New(n)
	require.NoError(t, err)

	counts := []int{3, 3, 4}
	disp := []int{0, 3, 6}

	err = ranks.Run(context.Background(), func(ctx context.Context, comm *collective.Comm) error {
		local := make([]int32, counts[comm.Rank()])
		for i := range local {
			local[i] = int32(disp[comm.Rank()] + i)
		}
		full, err := comm.AllGatherVarying(ctx, local, counts, disp)
		if err != nil {
			return err
		}
		for i, v := range full {
			require.Equal(t, int32(i), v)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestRanks_Barrier(t *testing.T) {
	const n = 6
	ranks, err := collective.New(n)
	require.NoError(t, err)

	err = ranks.Run(context.Background(), func(ctx context.Context, comm *collective.Comm) error {
		time.Sleep(time.Duration(n-comm.Rank()) * time.Millisecond)

		return comm.Barrier(ctx)
	})
	require.NoError(t, err)
}

func TestRanks_FailureAbortsAllRanks(t *testing.T) {
	const n = 4
	ranks, err := collective.New(n)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = ranks.Run(context.Background(), func(ctx context.Context, comm *collective.Comm) error {
		if comm.Rank() == 2 {
			return boom
		}
		// Every other rank waits on a collective that rank 2 never joins;
		// it must unblock via ctx cancellation rather than hang the test.
		_, err := comm.AllReduceScalar(ctx, 1)

		return err
	})

	var rankErr *collective.ErrRankFailed
	require.True(t, errors.As(err, &rankErr))
}

func TestNew_InvalidRankCount(t *testing.T) {
	_, err := collective.New(0)
	require.ErrorIs(t, err, collective.ErrInvalidRankCount)
}
