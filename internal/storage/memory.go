package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/thirdweb-dev/etl/internal/common"
)

// MemoryConnector keeps every table in a map keyed by natural key. It backs
// dry runs and tests.
type MemoryConnector struct {
	mu             sync.RWMutex
	blocks         map[string]common.Block
	transactions   map[string]common.Transaction
	logs           map[string]common.Log
	receipts       map[string]common.Receipt
	contracts      map[string]common.Contract
	tokenTransfers map[string]common.TokenTransfer
}

func NewMemoryConnector() *MemoryConnector {
	return &MemoryConnector{
		blocks:         make(map[string]common.Block),
		transactions:   make(map[string]common.Transaction),
		logs:           make(map[string]common.Log),
		receipts:       make(map[string]common.Receipt),
		contracts:      make(map[string]common.Contract),
		tokenTransfers: make(map[string]common.TokenTransfer),
	}
}

func (m *MemoryConnector) Close() error {
	return nil
}

func upsertMemory[T any](table map[string]T, items []T, key func(T) string) {
	for _, item := range items {
		table[key(item)] = item
	}
}

func (m *MemoryConnector) InsertBlockData(ctx context.Context, data []common.BlockData) error {
	start := time.Now()
	blocks, txs := splitBlockData(data)
	m.mu.Lock()
	upsertMemory(m.blocks, blocks, blockKey)
	upsertMemory(m.transactions, txs, transactionKey)
	m.mu.Unlock()
	observeInsert(blocksTable.name, len(blocks), start)
	observeInsert(transactionsTable.name, len(txs), start)
	return nil
}

func (m *MemoryConnector) InsertLogs(ctx context.Context, logs []common.Log) error {
	start := time.Now()
	m.mu.Lock()
	upsertMemory(m.logs, logs, logKey)
	m.mu.Unlock()
	observeInsert(logsTable.name, len(logs), start)
	return nil
}

func (m *MemoryConnector) InsertReceipts(ctx context.Context, receipts []common.Receipt) error {
	start := time.Now()
	m.mu.Lock()
	upsertMemory(m.receipts, receipts, receiptKey)
	m.mu.Unlock()
	observeInsert(receiptsTable.name, len(receipts), start)
	return nil
}

func (m *MemoryConnector) InsertContracts(ctx context.Context, contracts []common.Contract) error {
	start := time.Now()
	m.mu.Lock()
	upsertMemory(m.contracts, contracts, contractKey)
	m.mu.Unlock()
	observeInsert(contractsTable.name, len(contracts), start)
	return nil
}

func (m *MemoryConnector) InsertTokenTransfers(ctx context.Context, transfers []common.TokenTransfer) error {
	start := time.Now()
	m.mu.Lock()
	upsertMemory(m.tokenTransfers, transfers, transferKey)
	m.mu.Unlock()
	observeInsert(tokenTransfersTable.name, len(transfers), start)
	return nil
}

func (m *MemoryConnector) GetTransactionHashes(ctx context.Context, blockRange common.BlockRange) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txs := make([]common.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.BlockNumber >= blockRange.Start && tx.BlockNumber <= blockRange.End {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].BlockNumber != txs[j].BlockNumber {
			return txs[i].BlockNumber < txs[j].BlockNumber
		}
		return txs[i].TransactionIndex < txs[j].TransactionIndex
	})

	hashes := make([]string, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash)
	}
	return hashes, nil
}

func (m *MemoryConnector) GetContractCandidates(ctx context.Context, blockRange common.BlockRange) ([]common.ContractCandidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	receipts := make([]common.Receipt, 0)
	for _, r := range m.receipts {
		if r.BlockNumber >= blockRange.Start && r.BlockNumber <= blockRange.End {
			receipts = append(receipts, r)
		}
	}
	sort.Slice(receipts, func(i, j int) bool {
		if receipts[i].BlockNumber != receipts[j].BlockNumber {
			return receipts[i].BlockNumber < receipts[j].BlockNumber
		}
		return receipts[i].TransactionIndex < receipts[j].TransactionIndex
	})
	return common.ContractCandidates(receipts), nil
}

// Snapshot is a copy of every table, sorted by natural key.
type Snapshot struct {
	Blocks         []common.Block
	Transactions   []common.Transaction
	Logs           []common.Log
	Receipts       []common.Receipt
	Contracts      []common.Contract
	TokenTransfers []common.TokenTransfer
}

func (m *MemoryConnector) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Blocks:         sortedValues(m.blocks),
		Transactions:   sortedValues(m.transactions),
		Logs:           sortedValues(m.logs),
		Receipts:       sortedValues(m.receipts),
		Contracts:      sortedValues(m.contracts),
		TokenTransfers: sortedValues(m.tokenTransfers),
	}
}

func sortedValues[T any](table map[string]T) []T {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, table[k])
	}
	return values
}
