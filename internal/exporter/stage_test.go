package exporter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/etl/internal/common"
)

func identity(batch []int) []int { return batch }

func TestRunStageWritesEveryBatch(t *testing.T) {
	var mu sync.Mutex
	written := make([]int, 0)

	batches := common.SliceToChunks([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	err := RunStage(context.Background(), "test", batches, 2,
		func(ctx context.Context, batch []int) ([]int, error) { return batch, nil },
		identity,
		func(ctx context.Context, rows []int) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, rows...)
			return nil
		},
	)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, written)
}

func TestRunStageBoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	batches := common.SliceToChunks([]int{1, 2, 3, 4, 5, 6, 7, 8}, 1)

	err := RunStage(context.Background(), "test", batches, 3,
		func(ctx context.Context, batch []int) ([]int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return batch, nil
		},
		identity,
		func(ctx context.Context, rows []int) error { return nil },
	)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRunStageFetchFailureStopsDispatch(t *testing.T) {
	var fetched, written atomic.Int32
	batches := common.SliceToChunks([]int{1, 2, 3, 4, 5}, 1)

	err := RunStage(context.Background(), "receipts", batches, 1,
		func(ctx context.Context, batch []int) ([]int, error) {
			fetched.Add(1)
			if batch[0] == 2 {
				return nil, errors.New("429 too many requests")
			}
			return batch, nil
		},
		identity,
		func(ctx context.Context, rows []int) error {
			written.Add(1)
			return nil
		},
	)
	require.Error(t, err)

	var fetchErr *common.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "receipts", fetchErr.Stage)
	assert.Equal(t, "#1", fetchErr.Batch)
	assert.Equal(t, int32(1), written.Load())
	assert.LessOrEqual(t, fetched.Load(), int32(3))
}

func TestRunStageWrapsWriteFailure(t *testing.T) {
	sinkErr := errors.New("connection reset")
	err := RunStage(context.Background(), "blocks_and_transactions", []common.BlockRange{{Start: 0, End: 9}}, 1,
		func(ctx context.Context, batch common.BlockRange) ([]uint64, error) { return batch.Numbers(), nil },
		func(numbers []uint64) []uint64 { return numbers },
		func(ctx context.Context, rows []uint64) error { return sinkErr },
	)

	var writeErr *common.SinkWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, "#0 (0-9)", writeErr.Batch)
}

func TestRunStageWithoutBatches(t *testing.T) {
	err := RunStage(context.Background(), "contracts", [][]string{}, 0,
		func(ctx context.Context, batch []string) ([]string, error) {
			t.Fatal("fetch must not run without batches")
			return nil, nil
		},
		func(rows []string) []string { return rows },
		func(ctx context.Context, rows []string) error { return nil },
	)
	assert.NoError(t, err)
}

func TestRunStageReportsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunStage(ctx, "logs", common.SliceToChunks([]int{1, 2}, 1), 1,
		func(ctx context.Context, batch []int) ([]int, error) { return batch, nil },
		identity,
		func(ctx context.Context, rows []int) error { return nil },
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
