package storage

// tableSchema lists the columns of a sink table in insert order and the
// columns forming its natural key.
type tableSchema struct {
	name      string
	columns   []string
	conflicts []string
}

var (
	blocksTable = tableSchema{
		name: "blocks",
		columns: []string{
			"number", "hash", "parent_hash", "nonce", "sha3_uncles", "mix_hash", "miner",
			"state_root", "transactions_root", "receipts_root", "logs_bloom", "difficulty",
			"total_difficulty", "size", "extra_data", "gas_limit", "gas_used", "timestamp",
			"transaction_count", "base_fee_per_gas", "withdrawals_root", "blob_gas_used", "excess_blob_gas",
		},
		conflicts: []string{"number"},
	}
	transactionsTable = tableSchema{
		name: "transactions",
		columns: []string{
			"hash", "nonce", "block_hash", "block_number", "block_timestamp", "transaction_index",
			"from_address", "to_address", "value", "gas", "gas_price", "input", "function_selector",
			"max_fee_per_gas", "max_priority_fee_per_gas", "max_fee_per_blob_gas",
			"blob_versioned_hashes", "transaction_type",
		},
		conflicts: []string{"hash"},
	}
	logsTable = tableSchema{
		name: "logs",
		columns: []string{
			"transaction_hash", "log_index", "transaction_index", "block_hash", "block_number",
			"address", "data", "topic0", "topic1", "topic2", "topic3",
		},
		conflicts: []string{"transaction_hash", "log_index"},
	}
	receiptsTable = tableSchema{
		name: "receipts",
		columns: []string{
			"transaction_hash", "transaction_index", "block_hash", "block_number", "cumulative_gas_used",
			"gas_used", "contract_address", "root", "status", "effective_gas_price", "blob_gas_used", "blob_gas_price",
		},
		conflicts: []string{"transaction_hash"},
	}
	contractsTable = tableSchema{
		name:      "contracts",
		columns:   []string{"address", "bytecode", "function_sighashes", "is_erc20", "is_erc721", "block_number"},
		conflicts: []string{"address"},
	}
	tokenTransfersTable = tableSchema{
		name: "token_transfers",
		columns: []string{
			"transaction_hash", "log_index", "token_address", "from_address", "to_address",
			"value", "token_type", "block_number", "block_hash",
		},
		conflicts: []string{"transaction_hash", "log_index"},
	}
)
