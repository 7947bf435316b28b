package storage

import (
	"context"
	"sync"

	"github.com/thirdweb-dev/etl/internal/common"
)

type MemoryCheckpointStorage struct {
	mu     sync.Mutex
	stages map[common.BlockRange][]string
}

func NewMemoryCheckpointStorage() *MemoryCheckpointStorage {
	return &MemoryCheckpointStorage{stages: make(map[common.BlockRange][]string)}
}

func (m *MemoryCheckpointStorage) GetCompletedStages(ctx context.Context, blockRange common.BlockRange) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.stages[blockRange]...), nil
}

func (m *MemoryCheckpointStorage) MarkStageCompleted(ctx context.Context, blockRange common.BlockRange, stage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stages[blockRange] {
		if s == stage {
			return nil
		}
	}
	m.stages[blockRange] = append(m.stages[blockRange], stage)
	return nil
}

func (m *MemoryCheckpointStorage) ClearStages(ctx context.Context, blockRange common.BlockRange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stages, blockRange)
	return nil
}

func (m *MemoryCheckpointStorage) Close() error {
	return nil
}
