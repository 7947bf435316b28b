package exporter

import (
	"context"

	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/rpc"
	"github.com/thirdweb-dev/etl/internal/storage"
)

const (
	StageBlocksAndTransactions = "blocks_and_transactions"
	StageLogs                  = "logs"
	StageReceipts              = "receipts"
	StageContracts             = "contracts"
	StageTokenTransfers        = "token_transfers"
)

// Exporter runs the individual extraction stages against one provider and
// one sink.
type Exporter struct {
	rpc        rpc.IRPCClient
	sink       storage.ISink
	batchSize  int
	maxWorkers int
}

func NewExporter(rpcClient rpc.IRPCClient, sink storage.ISink, batchSize int, maxWorkers int) *Exporter {
	return &Exporter{
		rpc:        rpcClient,
		sink:       sink,
		batchSize:  batchSize,
		maxWorkers: maxWorkers,
	}
}

func (e *Exporter) ExportBlocksAndTransactions(ctx context.Context, blockRange common.BlockRange) error {
	return RunStage(ctx, StageBlocksAndTransactions, blockRange.Batches(e.batchSize), e.maxWorkers,
		e.fetchBlocks,
		func(results []rpc.GetBlocksResult) []common.BlockData {
			data := make([]common.BlockData, 0, len(results))
			for _, result := range results {
				data = append(data, result.Data)
			}
			return data
		},
		e.sink.InsertBlockData,
	)
}

func (e *Exporter) ExportLogs(ctx context.Context, txHashes []string) error {
	return RunStage(ctx, StageLogs, common.SliceToChunks(txHashes, e.batchSize), e.maxWorkers,
		e.fetchReceipts,
		func(results []rpc.GetReceiptsResult) []common.Log {
			logs := make([]common.Log, 0)
			for _, result := range results {
				logs = append(logs, result.Data.Logs...)
			}
			return logs
		},
		e.sink.InsertLogs,
	)
}

func (e *Exporter) ExportReceipts(ctx context.Context, txHashes []string) error {
	return RunStage(ctx, StageReceipts, common.SliceToChunks(txHashes, e.batchSize), e.maxWorkers,
		e.fetchReceipts,
		func(results []rpc.GetReceiptsResult) []common.Receipt {
			receipts := make([]common.Receipt, 0, len(results))
			for _, result := range results {
				receipts = append(receipts, result.Data)
			}
			return receipts
		},
		e.sink.InsertReceipts,
	)
}

func (e *Exporter) ExportContracts(ctx context.Context, candidates []common.ContractCandidate) error {
	return RunStage(ctx, StageContracts, common.SliceToChunks(candidates, e.batchSize), e.maxWorkers,
		func(ctx context.Context, batch []common.ContractCandidate) ([]rpc.GetCodeResult, error) {
			results := e.rpc.GetCode(ctx, batch)
			for _, result := range results {
				if result.Error != nil {
					return nil, result.Error
				}
			}
			return results, nil
		},
		func(results []rpc.GetCodeResult) []common.Contract {
			contracts := make([]common.Contract, 0, len(results))
			for _, result := range results {
				contracts = append(contracts, result.Data)
			}
			return contracts
		},
		e.sink.InsertContracts,
	)
}

func (e *Exporter) ExportTokenTransfers(ctx context.Context, blockRange common.BlockRange) error {
	return RunStage(ctx, StageTokenTransfers, blockRange.Batches(e.batchSize), e.maxWorkers,
		e.rpc.GetTransferLogs,
		common.ExtractTokenTransfers,
		e.sink.InsertTokenTransfers,
	)
}

func (e *Exporter) fetchBlocks(ctx context.Context, batch common.BlockRange) ([]rpc.GetBlocksResult, error) {
	results := e.rpc.GetBlocks(ctx, batch.Numbers())
	for _, result := range results {
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return results, nil
}

func (e *Exporter) fetchReceipts(ctx context.Context, batch []string) ([]rpc.GetReceiptsResult, error) {
	results := e.rpc.GetReceipts(ctx, batch)
	for _, result := range results {
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return results, nil
}
