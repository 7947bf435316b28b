package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
)

// postgres caps a statement at 65535 bind parameters
const postgresMaxParams = 65535

type PostgresConnector struct {
	db *sql.DB
}

func NewPostgresConnector(ctx context.Context, cfg config.StorageConfig) (*PostgresConnector, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresConnector{db: db}, nil
}

func (p *PostgresConnector) Close() error {
	return p.db.Close()
}

func (p *PostgresConnector) InsertBlockData(ctx context.Context, data []common.BlockData) error {
	if len(data) == 0 {
		return nil
	}
	blocks, txs := splitBlockData(data)

	blockRows := make([][]interface{}, 0, len(blocks))
	for _, b := range blocks {
		blockRows = append(blockRows, []interface{}{
			b.Number, b.Hash, b.ParentHash, b.Nonce, b.Sha3Uncles, b.MixHash, b.Miner,
			b.StateRoot, b.TransactionsRoot, b.ReceiptsRoot, b.LogsBloom, common.BigIntString(b.Difficulty),
			common.BigIntString(b.TotalDifficulty), b.Size, b.ExtraData, common.BigIntString(b.GasLimit),
			common.BigIntString(b.GasUsed), b.Timestamp, b.TransactionCount, common.BigIntString(b.BaseFeePerGas),
			b.WithdrawalsRoot, common.BigIntString(b.BlobGasUsed), common.BigIntString(b.ExcessBlobGas),
		})
	}

	txRows := make([][]interface{}, 0, len(txs))
	for _, t := range txs {
		txRows = append(txRows, []interface{}{
			t.Hash, t.Nonce, t.BlockHash, t.BlockNumber, t.BlockTimestamp, t.TransactionIndex,
			t.FromAddress, t.ToAddress, common.BigIntString(t.Value), t.Gas, common.BigIntString(t.GasPrice),
			t.Input, t.FunctionSelector, common.BigIntString(t.MaxFeePerGas), common.BigIntString(t.MaxPriorityFeePerGas),
			common.BigIntString(t.MaxFeePerBlobGas), pq.Array(t.BlobVersionedHashes), t.TransactionType,
		})
	}

	return p.inTx(ctx, func(tx *sql.Tx) error {
		if err := upsertRows(ctx, tx, blocksTable, blockRows); err != nil {
			return err
		}
		return upsertRows(ctx, tx, transactionsTable, txRows)
	})
}

func (p *PostgresConnector) InsertLogs(ctx context.Context, logs []common.Log) error {
	logs = dedupe(logs, logKey)
	rows := make([][]interface{}, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []interface{}{
			l.TransactionHash, l.LogIndex, l.TransactionIndex, l.BlockHash, l.BlockNumber,
			l.Address, l.Data, l.Topic(0), l.Topic(1), l.Topic(2), l.Topic(3),
		})
	}
	return p.inTx(ctx, func(tx *sql.Tx) error {
		return upsertRows(ctx, tx, logsTable, rows)
	})
}

func (p *PostgresConnector) InsertReceipts(ctx context.Context, receipts []common.Receipt) error {
	receipts = dedupe(receipts, receiptKey)
	rows := make([][]interface{}, 0, len(receipts))
	for _, r := range receipts {
		var status interface{}
		if r.Status != nil {
			status = *r.Status
		}
		rows = append(rows, []interface{}{
			r.TransactionHash, r.TransactionIndex, r.BlockHash, r.BlockNumber, r.CumulativeGasUsed,
			r.GasUsed, r.ContractAddress, r.Root, status, common.BigIntString(r.EffectiveGasPrice),
			common.BigIntString(r.BlobGasUsed), common.BigIntString(r.BlobGasPrice),
		})
	}
	return p.inTx(ctx, func(tx *sql.Tx) error {
		return upsertRows(ctx, tx, receiptsTable, rows)
	})
}

func (p *PostgresConnector) InsertContracts(ctx context.Context, contracts []common.Contract) error {
	contracts = dedupe(contracts, contractKey)
	rows := make([][]interface{}, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []interface{}{
			c.Address, c.Bytecode, pq.Array(c.FunctionSighashes), c.IsErc20, c.IsErc721, c.BlockNumber,
		})
	}
	return p.inTx(ctx, func(tx *sql.Tx) error {
		return upsertRows(ctx, tx, contractsTable, rows)
	})
}

func (p *PostgresConnector) InsertTokenTransfers(ctx context.Context, transfers []common.TokenTransfer) error {
	transfers = dedupe(transfers, transferKey)
	rows := make([][]interface{}, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []interface{}{
			t.TransactionHash, t.LogIndex, t.TokenAddress, t.FromAddress, t.ToAddress,
			common.BigIntString(t.Value), t.TokenType, t.BlockNumber, t.BlockHash,
		})
	}
	return p.inTx(ctx, func(tx *sql.Tx) error {
		return upsertRows(ctx, tx, tokenTransfersTable, rows)
	})
}

func (p *PostgresConnector) GetTransactionHashes(ctx context.Context, blockRange common.BlockRange) ([]string, error) {
	query := `SELECT hash FROM transactions
	          WHERE block_number >= $1 AND block_number <= $2
	          ORDER BY block_number ASC, transaction_index ASC`

	rows, err := p.db.QueryContext(ctx, query, blockRange.Start, blockRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction hashes: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close rows in GetTransactionHashes")
		}
	}()

	hashes := make([]string, 0)
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("error scanning transaction hash: %w", err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}

func (p *PostgresConnector) GetContractCandidates(ctx context.Context, blockRange common.BlockRange) ([]common.ContractCandidate, error) {
	query := `SELECT contract_address, block_number FROM receipts
	          WHERE block_number >= $1 AND block_number <= $2
	          AND contract_address IS NOT NULL AND contract_address <> ''
	          ORDER BY block_number ASC, transaction_index ASC`

	rows, err := p.db.QueryContext(ctx, query, blockRange.Start, blockRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract candidates: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close rows in GetContractCandidates")
		}
	}()

	candidates := make([]common.ContractCandidate, 0)
	for rows.Next() {
		var candidate common.ContractCandidate
		if err := rows.Scan(&candidate.Address, &candidate.BlockNumber); err != nil {
			return nil, fmt.Errorf("error scanning contract candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (p *PostgresConnector) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}
	return tx.Commit()
}

func upsertRows(ctx context.Context, tx *sql.Tx, table tableSchema, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	start := time.Now()
	rowsPerStatement := postgresMaxParams / len(table.columns)
	for _, chunk := range common.SliceToChunks(rows, rowsPerStatement) {
		args := make([]interface{}, 0, len(chunk)*len(table.columns))
		for _, row := range chunk {
			args = append(args, row...)
		}
		if _, err := tx.ExecContext(ctx, buildUpsertQuery(table, len(chunk)), args...); err != nil {
			return fmt.Errorf("failed to upsert into %s: %w", table.name, err)
		}
	}
	observeInsert(table.name, len(rows), start)
	return nil
}

func buildUpsertQuery(table tableSchema, rowCount int) string {
	columnCount := len(table.columns)
	valueStrings := make([]string, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		placeholders := make([]string, columnCount)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*columnCount+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
	}

	conflicts := make(map[string]bool, len(table.conflicts))
	for _, c := range table.conflicts {
		conflicts[c] = true
	}
	updates := make([]string, 0, columnCount)
	for _, c := range table.columns {
		if !conflicts[c] {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) DO UPDATE SET %s",
		table.name,
		strings.Join(table.columns, ", "),
		strings.Join(valueStrings, ", "),
		strings.Join(table.conflicts, ", "),
		strings.Join(updates, ", "),
	)
}
