package common

import "fmt"

// BlockRange is an inclusive range of block numbers.
type BlockRange struct {
	Start uint64 `json:"start_block"`
	End   uint64 `json:"end_block"`
}

func NewBlockRange(start, end uint64) (BlockRange, error) {
	r := BlockRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return BlockRange{}, err
	}
	return r, nil
}

func (r BlockRange) Validate() error {
	if r.End < r.Start {
		return fmt.Errorf("invalid block range: end block %d is lower than start block %d", r.End, r.Start)
	}
	return nil
}

// Len returns the number of blocks in the range.
func (r BlockRange) Len() uint64 {
	return r.End - r.Start + 1
}

func (r BlockRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Numbers lists every block number in the range in ascending order.
func (r BlockRange) Numbers() []uint64 {
	numbers := make([]uint64, 0, r.Len())
	for n := r.Start; ; n++ {
		numbers = append(numbers, n)
		if n == r.End {
			break
		}
	}
	return numbers
}

// Batches splits the range into contiguous, non-overlapping sub-ranges of at
// most size blocks. A non-positive size yields the whole range as one batch.
func (r BlockRange) Batches(size int) []BlockRange {
	if size <= 0 || uint64(size) >= r.Len() {
		return []BlockRange{r}
	}
	step := uint64(size)
	batches := make([]BlockRange, 0, (r.Len()+step-1)/step)
	for start := r.Start; ; start += step {
		end := start + step - 1
		if end >= r.End || end < start {
			batches = append(batches, BlockRange{Start: start, End: r.End})
			break
		}
		batches = append(batches, BlockRange{Start: start, End: end})
	}
	return batches
}
