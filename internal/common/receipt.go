package common

import "math/big"

type Receipt struct {
	TransactionHash   string   `json:"transaction_hash"`
	TransactionIndex  uint64   `json:"transaction_index"`
	BlockHash         string   `json:"block_hash"`
	BlockNumber       uint64   `json:"block_number"`
	CumulativeGasUsed uint64   `json:"cumulative_gas_used"`
	GasUsed           uint64   `json:"gas_used"`
	ContractAddress   string   `json:"contract_address"`
	Root              string   `json:"root"`
	Status            *uint64  `json:"status"`
	EffectiveGasPrice *big.Int `json:"effective_gas_price"`
	BlobGasUsed       *big.Int `json:"blob_gas_used"`
	BlobGasPrice      *big.Int `json:"blob_gas_price"`
	Logs              []Log    `json:"-"`
}

// ContractCandidate is an address created by a transaction, paired with the
// block its code must be read at.
type ContractCandidate struct {
	Address     string `json:"contract_address"`
	BlockNumber uint64 `json:"block_number"`
}

// ContractCandidates returns the created contracts among the receipts.
func ContractCandidates(receipts []Receipt) []ContractCandidate {
	candidates := make([]ContractCandidate, 0)
	for _, receipt := range receipts {
		if receipt.ContractAddress == "" {
			continue
		}
		candidates = append(candidates, ContractCandidate{
			Address:     receipt.ContractAddress,
			BlockNumber: receipt.BlockNumber,
		})
	}
	return candidates
}
