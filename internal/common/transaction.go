package common

import (
	"math/big"
	"time"
)

type Transaction struct {
	Hash                 string    `json:"hash"`
	Nonce                uint64    `json:"nonce"`
	BlockHash            string    `json:"block_hash"`
	BlockNumber          uint64    `json:"block_number"`
	BlockTimestamp       time.Time `json:"block_timestamp"`
	TransactionIndex     uint64    `json:"transaction_index"`
	FromAddress          string    `json:"from_address"`
	ToAddress            string    `json:"to_address"`
	Value                *big.Int  `json:"value"`
	Gas                  uint64    `json:"gas"`
	GasPrice             *big.Int  `json:"gas_price"`
	Input                string    `json:"input"`
	FunctionSelector     string    `json:"function_selector"`
	MaxFeePerGas         *big.Int  `json:"max_fee_per_gas"`
	MaxPriorityFeePerGas *big.Int  `json:"max_priority_fee_per_gas"`
	MaxFeePerBlobGas     *big.Int  `json:"max_fee_per_blob_gas"`
	BlobVersionedHashes  []string  `json:"blob_versioned_hashes"`
	TransactionType      uint8     `json:"transaction_type"`
}

// IsContractCreation reports whether the transaction has no recipient.
func (t Transaction) IsContractCreation() bool {
	return t.ToAddress == ""
}
