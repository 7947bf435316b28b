package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/metrics"
)

// ISink is the relational target of the pipeline. Every insert is an upsert
// keyed by the natural identity of the entity, so writing a batch twice
// leaves the same rows as writing it once.
type ISink interface {
	InsertBlockData(ctx context.Context, data []common.BlockData) error
	InsertLogs(ctx context.Context, logs []common.Log) error
	InsertReceipts(ctx context.Context, receipts []common.Receipt) error
	InsertContracts(ctx context.Context, contracts []common.Contract) error
	InsertTokenTransfers(ctx context.Context, transfers []common.TokenTransfer) error

	GetTransactionHashes(ctx context.Context, blockRange common.BlockRange) ([]string, error)
	GetContractCandidates(ctx context.Context, blockRange common.BlockRange) ([]common.ContractCandidate, error)

	Close() error
}

// ICheckpointStorage records which stages already completed for a range.
type ICheckpointStorage interface {
	GetCompletedStages(ctx context.Context, blockRange common.BlockRange) ([]string, error)
	MarkStageCompleted(ctx context.Context, blockRange common.BlockRange, stage string) error
	ClearStages(ctx context.Context, blockRange common.BlockRange) error
	Close() error
}

// NewSink picks the driver from the scheme of the DSN.
func NewSink(ctx context.Context, cfg config.StorageConfig) (ISink, error) {
	u, err := url.Parse(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid storage DSN: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return NewPostgresConnector(ctx, cfg)
	case "clickhouse":
		return NewClickHouseConnector(ctx, cfg)
	case "memory":
		return NewMemoryConnector(), nil
	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", u.Scheme)
	}
}

// NewCheckpointStorage returns nil when checkpoints are disabled. Checkpoints
// are scoped to the sink they describe.
func NewCheckpointStorage(ctx context.Context, cfg config.CheckpointConfig, sinkDSN string) (ICheckpointStorage, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	store, err := NewRedisCheckpointStorage(ctx, cfg.Redis, sinkDSN)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func observeInsert(table string, rows int, start time.Time) {
	metrics.SinkInsertDuration.WithLabelValues(table).Observe(time.Since(start).Seconds())
	metrics.RowsWritten.WithLabelValues(table).Add(float64(rows))
}

// dedupe keeps the last occurrence of every key in input order.
func dedupe[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			result[i] = item
			continue
		}
		index[k] = len(result)
		result = append(result, item)
	}
	return result
}

func blockKey(b common.Block) string            { return fmt.Sprintf("%d", b.Number) }
func transactionKey(t common.Transaction) string { return t.Hash }
func logKey(l common.Log) string                 { return fmt.Sprintf("%s:%d", l.TransactionHash, l.LogIndex) }
func receiptKey(r common.Receipt) string         { return r.TransactionHash }
func contractKey(c common.Contract) string       { return c.Address }
func transferKey(t common.TokenTransfer) string {
	return fmt.Sprintf("%s:%d", t.TransactionHash, t.LogIndex)
}

func splitBlockData(data []common.BlockData) ([]common.Block, []common.Transaction) {
	blocks := make([]common.Block, 0, len(data))
	txs := make([]common.Transaction, 0)
	for _, d := range data {
		blocks = append(blocks, d.Block)
		txs = append(txs, d.Transactions...)
	}
	return dedupe(blocks, blockKey), dedupe(txs, transactionKey)
}
