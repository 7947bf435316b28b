package orchestrator

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/exporter"
	"github.com/thirdweb-dev/etl/internal/metrics"
	"github.com/thirdweb-dev/etl/internal/rpc"
	"github.com/thirdweb-dev/etl/internal/storage"
)

const (
	DEFAULT_BATCH_SIZE  = 100
	DEFAULT_MAX_WORKERS = 1
)

// Pipeline runs the dependent extraction stages for a block range. Every
// stage after the first reads its input back from the sink, so a stage only
// starts once its predecessor's rows are durable.
type Pipeline struct {
	rpc         rpc.IRPCClient
	sink        storage.ISink
	checkpoints storage.ICheckpointStorage
	batchSize   int
	maxWorkers  int
	exporter    *exporter.Exporter
}

type PipelineOption func(*Pipeline)

func WithBatchSize(batchSize int) PipelineOption {
	return func(p *Pipeline) {
		if batchSize > 0 {
			p.batchSize = batchSize
		}
	}
}

func WithMaxWorkers(maxWorkers int) PipelineOption {
	return func(p *Pipeline) {
		if maxWorkers > 0 {
			p.maxWorkers = maxWorkers
		}
	}
}

// WithCheckpointStorage lets a replayed range skip stages that already
// completed. A nil store disables checkpoints.
func WithCheckpointStorage(checkpoints storage.ICheckpointStorage) PipelineOption {
	return func(p *Pipeline) {
		p.checkpoints = checkpoints
	}
}

func NewPipeline(rpcClient rpc.IRPCClient, sink storage.ISink, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		rpc:        rpcClient,
		sink:       sink,
		batchSize:  DEFAULT_BATCH_SIZE,
		maxWorkers: DEFAULT_MAX_WORKERS,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.exporter = exporter.NewExporter(rpcClient, sink, p.batchSize, p.maxWorkers)
	return p
}

type pipelineStage struct {
	name string
	run  func(ctx context.Context) error
}

// RunFullExport runs blocks and transactions, logs, receipts, contracts and
// token transfers in that order. A failing stage stops the run and rows of
// the stages before it stay in the sink.
func (p *Pipeline) RunFullExport(ctx context.Context, blockRange common.BlockRange) error {
	if err := blockRange.Validate(); err != nil {
		return err
	}

	var txHashes []string
	var txHashesLoaded bool
	loadTxHashes := func(ctx context.Context) ([]string, error) {
		if txHashesLoaded {
			return txHashes, nil
		}
		hashes, err := p.sink.GetTransactionHashes(ctx, blockRange)
		if err != nil {
			return nil, fmt.Errorf("failed to read transaction hashes for range %s: %w", blockRange, err)
		}
		txHashes, txHashesLoaded = hashes, true
		log.Debug().Msgf("Found %d transactions in range %s", len(hashes), blockRange)
		return txHashes, nil
	}

	stages := []pipelineStage{
		{
			name: exporter.StageBlocksAndTransactions,
			run: func(ctx context.Context) error {
				return p.exporter.ExportBlocksAndTransactions(ctx, blockRange)
			},
		},
		{
			name: exporter.StageLogs,
			run: func(ctx context.Context) error {
				hashes, err := loadTxHashes(ctx)
				if err != nil {
					return err
				}
				return p.exporter.ExportLogs(ctx, hashes)
			},
		},
		{
			name: exporter.StageReceipts,
			run: func(ctx context.Context) error {
				hashes, err := loadTxHashes(ctx)
				if err != nil {
					return err
				}
				return p.exporter.ExportReceipts(ctx, hashes)
			},
		},
		{
			name: exporter.StageContracts,
			run: func(ctx context.Context) error {
				candidates, err := p.sink.GetContractCandidates(ctx, blockRange)
				if err != nil {
					return fmt.Errorf("failed to read contract candidates for range %s: %w", blockRange, err)
				}
				log.Debug().Msgf("Found %d created contracts in range %s", len(candidates), blockRange)
				return p.exporter.ExportContracts(ctx, candidates)
			},
		},
		{
			name: exporter.StageTokenTransfers,
			run: func(ctx context.Context) error {
				return p.exporter.ExportTokenTransfers(ctx, blockRange)
			},
		},
	}

	completed := p.completedStages(ctx, blockRange)
	for _, stage := range stages {
		if completed.Contains(stage.name) {
			log.Info().Str("stage", stage.name).Msgf("Skipping stage already completed for range %s", blockRange)
			metrics.StageSkipped.WithLabelValues(stage.name).Inc()
			continue
		}
		if err := measureStageDuration(ctx, stage); err != nil {
			return fmt.Errorf("stage %s failed for range %s: %w", stage.name, blockRange, err)
		}
		p.markStageCompleted(ctx, blockRange, stage.name)
	}

	p.clearCheckpoints(ctx, blockRange)
	return nil
}

// RunBlocksAndTransactions runs the first stage only.
func (p *Pipeline) RunBlocksAndTransactions(ctx context.Context, blockRange common.BlockRange) error {
	if err := blockRange.Validate(); err != nil {
		return err
	}
	return measureStageDuration(ctx, pipelineStage{
		name: exporter.StageBlocksAndTransactions,
		run: func(ctx context.Context) error {
			return p.exporter.ExportBlocksAndTransactions(ctx, blockRange)
		},
	})
}

func measureStageDuration(ctx context.Context, stage pipelineStage) error {
	start := time.Now()
	log.Info().Str("stage", stage.name).Msg("[JOB_DURATION_STATISTICS] Starting job")

	err := stage.run(ctx)
	elapsed := time.Since(start)
	metrics.StageDuration.WithLabelValues(stage.name).Observe(elapsed.Seconds())
	if err != nil {
		log.Error().Err(err).Str("stage", stage.name).Float64("duration_seconds", elapsed.Seconds()).Msg("[JOB_DURATION_STATISTICS] Job failed")
		return err
	}

	log.Info().Str("stage", stage.name).Float64("duration_seconds", elapsed.Seconds()).
		Msgf("[JOB_DURATION_STATISTICS] Job '%s' completed in %.2f seconds.", stage.name, elapsed.Seconds())
	return nil
}

func (p *Pipeline) completedStages(ctx context.Context, blockRange common.BlockRange) mapset.Set[string] {
	completed := mapset.NewThreadUnsafeSet[string]()
	if p.checkpoints == nil {
		return completed
	}
	stages, err := p.checkpoints.GetCompletedStages(ctx, blockRange)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed to read checkpoints for range %s, running every stage", blockRange)
		return completed
	}
	completed.Append(stages...)
	return completed
}

func (p *Pipeline) markStageCompleted(ctx context.Context, blockRange common.BlockRange, stage string) {
	if p.checkpoints == nil {
		return
	}
	if err := p.checkpoints.MarkStageCompleted(ctx, blockRange, stage); err != nil {
		log.Warn().Err(err).Str("stage", stage).Msgf("Failed to checkpoint range %s", blockRange)
	}
}

func (p *Pipeline) clearCheckpoints(ctx context.Context, blockRange common.BlockRange) {
	if p.checkpoints == nil {
		return
	}
	if err := p.checkpoints.ClearStages(ctx, blockRange); err != nil {
		log.Warn().Err(err).Msgf("Failed to clear checkpoints for range %s", blockRange)
	}
}
