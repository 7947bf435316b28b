package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/exporter"
	"github.com/thirdweb-dev/etl/internal/rpc"
	"github.com/thirdweb-dev/etl/internal/storage"
	"github.com/thirdweb-dev/etl/test/mocks"
)

const (
	testToken    = "0x00000000000000000000000000000000000000aa"
	testCreated  = "0x00000000000000000000000000000000000000c1"
	testCreateAt = uint64(102)
)

// fakeChain serves one transaction per block. The transaction in block 102
// creates a contract and every transaction emits one ERC-20 transfer.
type fakeChain struct {
	blockCalls    atomic.Int32
	receiptCalls  atomic.Int32
	codeCalls     atomic.Int32
	transferCalls atomic.Int32

	failReceipts  bool
	failTransfers bool
}

func txHash(n uint64) string {
	return fmt.Sprintf("0x%064x", n)
}

func (f *fakeChain) blocks(ctx context.Context, numbers []uint64) []rpc.GetBlocksResult {
	f.blockCalls.Add(1)
	results := make([]rpc.GetBlocksResult, 0, len(numbers))
	for _, n := range numbers {
		to := "0x00000000000000000000000000000000000000b0"
		if n == testCreateAt {
			to = ""
		}
		results = append(results, rpc.GetBlocksResult{
			BlockNumber: n,
			Data: common.BlockData{
				Block: common.Block{
					Number:           n,
					Hash:             fmt.Sprintf("0xb%d", n),
					Timestamp:        time.Unix(int64(1438269973+n), 0).UTC(),
					TransactionCount: 1,
					GasLimit:         big.NewInt(5000),
					GasUsed:          big.NewInt(21000),
				},
				Transactions: []common.Transaction{{
					Hash:        txHash(n),
					BlockNumber: n,
					BlockHash:   fmt.Sprintf("0xb%d", n),
					ToAddress:   to,
					Value:       big.NewInt(int64(n)),
					GasPrice:    big.NewInt(1),
				}},
			},
		})
	}
	return results
}

func (f *fakeChain) receipts(ctx context.Context, hashes []string) []rpc.GetReceiptsResult {
	f.receiptCalls.Add(1)
	results := make([]rpc.GetReceiptsResult, 0, len(hashes))
	for _, hash := range hashes {
		if f.failReceipts {
			results = append(results, rpc.GetReceiptsResult{TransactionHash: hash, Error: errors.New("receipt unavailable")})
			continue
		}
		var n uint64
		fmt.Sscanf(hash, "0x%x", &n)
		receipt := common.Receipt{
			TransactionHash: hash,
			BlockNumber:     n,
			BlockHash:       fmt.Sprintf("0xb%d", n),
			GasUsed:         21000,
			Logs:            []common.Log{transferLog(n)},
		}
		if n == testCreateAt {
			receipt.ContractAddress = testCreated
		}
		results = append(results, rpc.GetReceiptsResult{TransactionHash: hash, Data: receipt})
	}
	return results
}

func (f *fakeChain) code(ctx context.Context, candidates []common.ContractCandidate) []rpc.GetCodeResult {
	f.codeCalls.Add(1)
	results := make([]rpc.GetCodeResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, rpc.GetCodeResult{
			Candidate: candidate,
			Data:      common.NewContract(candidate.Address, "0x6080", candidate.BlockNumber),
		})
	}
	return results
}

func (f *fakeChain) transferLogs(ctx context.Context, blockRange common.BlockRange) ([]common.Log, error) {
	f.transferCalls.Add(1)
	if f.failTransfers {
		return nil, errors.New("eth_getLogs timed out")
	}
	logs := make([]common.Log, 0)
	for _, n := range blockRange.Numbers() {
		logs = append(logs, transferLog(n))
	}
	return logs, nil
}

func transferLog(n uint64) common.Log {
	return common.Log{
		BlockNumber:     n,
		BlockHash:       fmt.Sprintf("0xb%d", n),
		TransactionHash: txHash(n),
		Address:         testToken,
		Topics: []string{
			common.TransferEventTopic,
			"0x0000000000000000000000000000000000000000000000000000000000000001",
			"0x0000000000000000000000000000000000000000000000000000000000000002",
		},
		Data: fmt.Sprintf("0x%064x", n),
	}
}

func newMockRPC(t *testing.T, chain *fakeChain) *mocks.MockIRPCClient {
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetBlocks(mock.Anything, mock.Anything).RunAndReturn(chain.blocks).Maybe()
	mockRPC.EXPECT().GetReceipts(mock.Anything, mock.Anything).RunAndReturn(chain.receipts).Maybe()
	mockRPC.EXPECT().GetCode(mock.Anything, mock.Anything).RunAndReturn(chain.code).Maybe()
	mockRPC.EXPECT().GetTransferLogs(mock.Anything, mock.Anything).RunAndReturn(chain.transferLogs).Maybe()
	return mockRPC
}

func TestRunFullExportWritesEveryStage(t *testing.T) {
	chain := &fakeChain{}
	sink := storage.NewMemoryConnector()
	pipeline := NewPipeline(newMockRPC(t, chain), sink, WithBatchSize(2), WithMaxWorkers(2))

	err := pipeline.RunFullExport(context.Background(), common.BlockRange{Start: 100, End: 104})
	require.NoError(t, err)

	snapshot := sink.Snapshot()
	assert.Len(t, snapshot.Blocks, 5)
	assert.Len(t, snapshot.Transactions, 5)
	assert.Len(t, snapshot.Logs, 5)
	assert.Len(t, snapshot.Receipts, 5)
	require.Len(t, snapshot.Contracts, 1)
	assert.Equal(t, testCreated, snapshot.Contracts[0].Address)
	assert.Equal(t, testCreateAt, snapshot.Contracts[0].BlockNumber)
	require.Len(t, snapshot.TokenTransfers, 5)
	assert.Equal(t, common.TokenTypeERC20, snapshot.TokenTransfers[0].TokenType)
	assert.Equal(t, testToken, snapshot.TokenTransfers[0].TokenAddress)

	// 5 blocks in batches of 2
	assert.Equal(t, int32(3), chain.blockCalls.Load())
	assert.Equal(t, int32(3), chain.transferCalls.Load())
	// logs and receipts stages both read receipts
	assert.Equal(t, int32(6), chain.receiptCalls.Load())
	assert.Equal(t, int32(1), chain.codeCalls.Load())
}

func TestRunFullExportIsIdempotent(t *testing.T) {
	blockRange := common.BlockRange{Start: 100, End: 103}

	once := storage.NewMemoryConnector()
	require.NoError(t, NewPipeline(newMockRPC(t, &fakeChain{}), once, WithBatchSize(3)).RunFullExport(context.Background(), blockRange))

	twice := storage.NewMemoryConnector()
	pipeline := NewPipeline(newMockRPC(t, &fakeChain{}), twice, WithBatchSize(3))
	require.NoError(t, pipeline.RunFullExport(context.Background(), blockRange))
	require.NoError(t, pipeline.RunFullExport(context.Background(), blockRange))

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestRunFullExportStopsAfterReceiptFailure(t *testing.T) {
	chain := &fakeChain{failReceipts: true}
	sink := storage.NewMemoryConnector()
	pipeline := NewPipeline(newMockRPC(t, chain), sink, WithBatchSize(10))

	err := pipeline.RunFullExport(context.Background(), common.BlockRange{Start: 100, End: 104})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage logs failed for range 100-104")

	var fetchErr *common.FetchError
	assert.ErrorAs(t, err, &fetchErr)

	snapshot := sink.Snapshot()
	assert.Len(t, snapshot.Blocks, 5)
	assert.Empty(t, snapshot.Logs)
	assert.Empty(t, snapshot.Receipts)
	assert.Empty(t, snapshot.Contracts)
	assert.Empty(t, snapshot.TokenTransfers)
	assert.Equal(t, int32(0), chain.codeCalls.Load())
	assert.Equal(t, int32(0), chain.transferCalls.Load())
}

func TestRunFullExportResumesFromCheckpoint(t *testing.T) {
	blockRange := common.BlockRange{Start: 100, End: 104}
	chain := &fakeChain{failTransfers: true}
	sink := storage.NewMemoryConnector()
	checkpoints := storage.NewMemoryCheckpointStorage()
	pipeline := NewPipeline(newMockRPC(t, chain), sink, WithBatchSize(5), WithCheckpointStorage(checkpoints))

	err := pipeline.RunFullExport(context.Background(), blockRange)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage token_transfers failed")

	completed, err := checkpoints.GetCompletedStages(context.Background(), blockRange)
	require.NoError(t, err)
	assert.Equal(t, []string{
		exporter.StageBlocksAndTransactions,
		exporter.StageLogs,
		exporter.StageReceipts,
		exporter.StageContracts,
	}, completed)

	chain.failTransfers = false
	require.NoError(t, pipeline.RunFullExport(context.Background(), blockRange))

	assert.Equal(t, int32(1), chain.blockCalls.Load())
	assert.Equal(t, int32(2), chain.receiptCalls.Load())
	assert.Equal(t, int32(1), chain.codeCalls.Load())
	assert.Equal(t, int32(2), chain.transferCalls.Load())
	assert.Len(t, sink.Snapshot().TokenTransfers, 5)

	completed, err = checkpoints.GetCompletedStages(context.Background(), blockRange)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestRunFullExportIgnoresCheckpointReadFailure(t *testing.T) {
	blockRange := common.BlockRange{Start: 7, End: 7}
	checkpoints := mocks.NewMockICheckpointStorage(t)
	checkpoints.EXPECT().GetCompletedStages(mock.Anything, blockRange).Return(nil, errors.New("connection refused"))
	checkpoints.EXPECT().MarkStageCompleted(mock.Anything, blockRange, mock.Anything).Return(nil).Times(5)
	checkpoints.EXPECT().ClearStages(mock.Anything, blockRange).Return(nil)

	chain := &fakeChain{}
	pipeline := NewPipeline(newMockRPC(t, chain), storage.NewMemoryConnector(), WithCheckpointStorage(checkpoints))
	require.NoError(t, pipeline.RunFullExport(context.Background(), blockRange))
	assert.Equal(t, int32(1), chain.blockCalls.Load())
}

func TestRunFullExportSkipsEmptyStages(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetBlocks(mock.Anything, []uint64{0}).Return([]rpc.GetBlocksResult{{
		BlockNumber: 0,
		Data:        common.BlockData{Block: common.Block{Number: 0, Hash: "0xgenesis"}},
	}})
	mockRPC.EXPECT().GetTransferLogs(mock.Anything, common.BlockRange{Start: 0, End: 0}).Return([]common.Log{}, nil)

	sink := storage.NewMemoryConnector()
	require.NoError(t, NewPipeline(mockRPC, sink).RunFullExport(context.Background(), common.BlockRange{Start: 0, End: 0}))

	snapshot := sink.Snapshot()
	assert.Len(t, snapshot.Blocks, 1)
	assert.Empty(t, snapshot.Transactions)
	assert.Empty(t, snapshot.TokenTransfers)
}

func TestRunFullExportRejectsInvalidRange(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	pipeline := NewPipeline(mockRPC, storage.NewMemoryConnector())

	err := pipeline.RunFullExport(context.Background(), common.BlockRange{Start: 10, End: 9})
	assert.Error(t, err)
}

func TestRunFullExportWrapsSinkFailures(t *testing.T) {
	sink := mocks.NewMockISink(t)
	sink.EXPECT().InsertBlockData(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	pipeline := NewPipeline(newMockRPC(t, &fakeChain{}), sink, WithBatchSize(10))
	err := pipeline.RunFullExport(context.Background(), common.BlockRange{Start: 1, End: 3})
	require.Error(t, err)

	var writeErr *common.SinkWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, exporter.StageBlocksAndTransactions, writeErr.Stage)
}

func TestRunBlocksAndTransactions(t *testing.T) {
	chain := &fakeChain{}
	sink := storage.NewMemoryConnector()
	require.NoError(t, NewPipeline(newMockRPC(t, chain), sink).RunBlocksAndTransactions(context.Background(), common.BlockRange{Start: 100, End: 101}))

	snapshot := sink.Snapshot()
	assert.Len(t, snapshot.Blocks, 2)
	assert.Len(t, snapshot.Transactions, 2)
	assert.Empty(t, snapshot.Receipts)
	assert.Equal(t, int32(0), chain.receiptCalls.Load())
}

func TestFullExportAfterBlocksAndTransactionsMatchesFreshRun(t *testing.T) {
	blockRange := common.BlockRange{Start: 100, End: 104}

	fresh := storage.NewMemoryConnector()
	require.NoError(t, NewPipeline(newMockRPC(t, &fakeChain{}), fresh, WithBatchSize(1)).RunFullExport(context.Background(), blockRange))

	sink := storage.NewMemoryConnector()
	pipeline := NewPipeline(newMockRPC(t, &fakeChain{}), sink, WithBatchSize(1))
	require.NoError(t, pipeline.RunBlocksAndTransactions(context.Background(), blockRange))
	require.NoError(t, pipeline.RunFullExport(context.Background(), blockRange))

	assert.Equal(t, fresh.Snapshot(), sink.Snapshot())
}

type failingReceiptsSink struct {
	*storage.MemoryConnector
}

func (s failingReceiptsSink) InsertReceipts(ctx context.Context, receipts []common.Receipt) error {
	return errors.New("receipts table locked")
}

func TestRunFullExportStopsAfterReceiptWriteFailure(t *testing.T) {
	chain := &fakeChain{}
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetBlocks(mock.Anything, mock.Anything).RunAndReturn(chain.blocks)
	mockRPC.EXPECT().GetReceipts(mock.Anything, mock.Anything).RunAndReturn(chain.receipts)

	sink := failingReceiptsSink{storage.NewMemoryConnector()}
	err := NewPipeline(mockRPC, sink, WithBatchSize(10)).RunFullExport(context.Background(), common.BlockRange{Start: 100, End: 104})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage receipts failed for range 100-104")

	var writeErr *common.SinkWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, exporter.StageReceipts, writeErr.Stage)

	snapshot := sink.Snapshot()
	assert.Len(t, snapshot.Logs, 5)
	assert.Empty(t, snapshot.Receipts)
	assert.Empty(t, snapshot.Contracts)
	assert.Empty(t, snapshot.TokenTransfers)
	mockRPC.AssertNotCalled(t, "GetCode", mock.Anything, mock.Anything)
	mockRPC.AssertNotCalled(t, "GetTransferLogs", mock.Anything, mock.Anything)
}
