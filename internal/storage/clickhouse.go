package storage

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
)

// ClickHouseConnector writes into ReplacingMergeTree tables ordered by the
// natural keys, so duplicates collapse on merge and reads use FINAL.
type ClickHouseConnector struct {
	conn clickhouse.Conn
}

func NewClickHouseConnector(ctx context.Context, cfg config.StorageConfig) (*ClickHouseConnector, error) {
	options, err := clickhouse.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid clickhouse DSN: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		options.MaxOpenConns = cfg.MaxOpenConns
	}
	if cfg.MaxIdleConns > 0 {
		options.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.ConnMaxLifetime > 0 {
		options.ConnMaxLifetime = time.Duration(cfg.ConnMaxLifetime) * time.Second
	}
	options.Settings = clickhouse.Settings{
		"do_not_merge_across_partitions_select_final": "1",
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return &ClickHouseConnector{conn: conn}, nil
}

func (c *ClickHouseConnector) Close() error {
	return c.conn.Close()
}

func (c *ClickHouseConnector) InsertBlockData(ctx context.Context, data []common.BlockData) error {
	if len(data) == 0 {
		return nil
	}
	blocks, txs := splitBlockData(data)

	blockRows := make([][]interface{}, 0, len(blocks))
	for _, b := range blocks {
		blockRows = append(blockRows, []interface{}{
			b.Number, b.Hash, b.ParentHash, b.Nonce, b.Sha3Uncles, b.MixHash, b.Miner,
			b.StateRoot, b.TransactionsRoot, b.ReceiptsRoot, b.LogsBloom, common.BigIntOrZero(b.Difficulty),
			nullableBigInt(b.TotalDifficulty), b.Size, b.ExtraData, common.BigIntOrZero(b.GasLimit),
			common.BigIntOrZero(b.GasUsed), b.Timestamp, b.TransactionCount, nullableBigInt(b.BaseFeePerGas),
			b.WithdrawalsRoot, nullableBigInt(b.BlobGasUsed), nullableBigInt(b.ExcessBlobGas),
		})
	}
	if err := c.batchInsert(ctx, blocksTable, blockRows); err != nil {
		return err
	}

	txRows := make([][]interface{}, 0, len(txs))
	for _, t := range txs {
		hashes := t.BlobVersionedHashes
		if hashes == nil {
			hashes = []string{}
		}
		txRows = append(txRows, []interface{}{
			t.Hash, t.Nonce, t.BlockHash, t.BlockNumber, t.BlockTimestamp, t.TransactionIndex,
			t.FromAddress, t.ToAddress, common.BigIntOrZero(t.Value), t.Gas, common.BigIntOrZero(t.GasPrice),
			t.Input, t.FunctionSelector, nullableBigInt(t.MaxFeePerGas), nullableBigInt(t.MaxPriorityFeePerGas),
			nullableBigInt(t.MaxFeePerBlobGas), hashes, t.TransactionType,
		})
	}
	return c.batchInsert(ctx, transactionsTable, txRows)
}

func (c *ClickHouseConnector) InsertLogs(ctx context.Context, logs []common.Log) error {
	logs = dedupe(logs, logKey)
	rows := make([][]interface{}, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []interface{}{
			l.TransactionHash, l.LogIndex, l.TransactionIndex, l.BlockHash, l.BlockNumber,
			l.Address, l.Data, l.Topic(0), l.Topic(1), l.Topic(2), l.Topic(3),
		})
	}
	return c.batchInsert(ctx, logsTable, rows)
}

func (c *ClickHouseConnector) InsertReceipts(ctx context.Context, receipts []common.Receipt) error {
	receipts = dedupe(receipts, receiptKey)
	rows := make([][]interface{}, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, []interface{}{
			r.TransactionHash, r.TransactionIndex, r.BlockHash, r.BlockNumber, r.CumulativeGasUsed,
			r.GasUsed, r.ContractAddress, r.Root, r.Status, nullableBigInt(r.EffectiveGasPrice),
			nullableBigInt(r.BlobGasUsed), nullableBigInt(r.BlobGasPrice),
		})
	}
	return c.batchInsert(ctx, receiptsTable, rows)
}

func (c *ClickHouseConnector) InsertContracts(ctx context.Context, contracts []common.Contract) error {
	contracts = dedupe(contracts, contractKey)
	rows := make([][]interface{}, 0, len(contracts))
	for _, ct := range contracts {
		rows = append(rows, []interface{}{
			ct.Address, ct.Bytecode, ct.FunctionSighashes, ct.IsErc20, ct.IsErc721, ct.BlockNumber,
		})
	}
	return c.batchInsert(ctx, contractsTable, rows)
}

func (c *ClickHouseConnector) InsertTokenTransfers(ctx context.Context, transfers []common.TokenTransfer) error {
	transfers = dedupe(transfers, transferKey)
	rows := make([][]interface{}, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []interface{}{
			t.TransactionHash, t.LogIndex, t.TokenAddress, t.FromAddress, t.ToAddress,
			common.BigIntOrZero(t.Value), t.TokenType, t.BlockNumber, t.BlockHash,
		})
	}
	return c.batchInsert(ctx, tokenTransfersTable, rows)
}

func (c *ClickHouseConnector) GetTransactionHashes(ctx context.Context, blockRange common.BlockRange) ([]string, error) {
	query := "SELECT hash FROM transactions FINAL WHERE block_number >= ? AND block_number <= ? ORDER BY block_number, transaction_index"
	rows, err := c.conn.Query(ctx, query, blockRange.Start, blockRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction hashes: %w", err)
	}
	defer rows.Close()

	hashes := make([]string, 0)
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			log.Error().Err(err).Msg("Error scanning transaction hash")
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}

func (c *ClickHouseConnector) GetContractCandidates(ctx context.Context, blockRange common.BlockRange) ([]common.ContractCandidate, error) {
	query := "SELECT contract_address, block_number FROM receipts FINAL WHERE block_number >= ? AND block_number <= ? AND contract_address != '' ORDER BY block_number, transaction_index"
	rows, err := c.conn.Query(ctx, query, blockRange.Start, blockRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]common.ContractCandidate, 0)
	for rows.Next() {
		var candidate common.ContractCandidate
		if err := rows.Scan(&candidate.Address, &candidate.BlockNumber); err != nil {
			log.Error().Err(err).Msg("Error scanning contract candidate")
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (c *ClickHouseConnector) batchInsert(ctx context.Context, table tableSchema, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	start := time.Now()
	query := fmt.Sprintf("INSERT INTO %s (%s)", table.name, strings.Join(table.columns, ", "))
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare batch for %s: %w", table.name, err)
	}
	defer batch.Abort()

	for _, row := range rows {
		if err := batch.Append(row...); err != nil {
			return fmt.Errorf("failed to append row to %s: %w", table.name, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch to %s: %w", table.name, err)
	}
	observeInsert(table.name, len(rows), start)
	return nil
}

func nullableBigInt(v *big.Int) interface{} {
	if v == nil {
		return nil
	}
	return v
}
