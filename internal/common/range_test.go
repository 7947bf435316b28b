package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRangeValidate(t *testing.T) {
	_, err := NewBlockRange(10, 9)
	assert.Error(t, err)

	r, err := NewBlockRange(5, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Len())
	assert.Equal(t, "5-5", r.String())
}

func TestBlockRangeBatchesCoverRangeExactlyOnce(t *testing.T) {
	r := BlockRange{Start: 100, End: 137}

	for size := -1; size <= 45; size++ {
		batches := r.Batches(size)
		require.NotEmpty(t, batches)

		seen := make(map[uint64]int)
		next := r.Start
		for _, b := range batches {
			require.NoError(t, b.Validate())
			assert.Equal(t, next, b.Start, "batch size %d leaves a gap or overlap", size)
			if size > 0 {
				assert.LessOrEqual(t, b.Len(), uint64(size))
			}
			for _, n := range b.Numbers() {
				seen[n]++
			}
			next = b.End + 1
		}
		assert.Equal(t, r.End, batches[len(batches)-1].End)
		assert.Len(t, seen, int(r.Len()))
		for n, count := range seen {
			assert.Equal(t, 1, count, "block %d seen %d times with batch size %d", n, count, size)
		}
	}
}

func TestBlockRangeBatchesShortLastBatch(t *testing.T) {
	batches := BlockRange{Start: 0, End: 9}.Batches(4)
	assert.Equal(t, []BlockRange{{0, 3}, {4, 7}, {8, 9}}, batches)
}

func TestSliceToChunks(t *testing.T) {
	assert.Equal(t, [][]int{}, SliceToChunks([]int{}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, SliceToChunks([]int{1, 2, 3}, 0))
	assert.Equal(t, [][]int{{1, 2}, {3}}, SliceToChunks([]int{1, 2, 3}, 2))
}
