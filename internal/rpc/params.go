package rpc

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/thirdweb-dev/etl/internal/common"
)

func GetBlockWithTransactionsParams(blockNum uint64) []interface{} {
	return []interface{}{hexutil.EncodeUint64(blockNum), true}
}

func GetTransactionReceiptParams(txHash string) []interface{} {
	return []interface{}{txHash}
}

// GetCodeParams pins the read to the creation block instead of latest.
func GetCodeParams(candidate common.ContractCandidate) []interface{} {
	return []interface{}{candidate.Address, hexutil.EncodeUint64(candidate.BlockNumber)}
}

func GetTransferLogsParams(r common.BlockRange) []interface{} {
	return []interface{}{map[string]interface{}{
		"fromBlock": hexutil.EncodeUint64(r.Start),
		"toBlock":   hexutil.EncodeUint64(r.End),
		"topics":    []interface{}{common.TransferEventTopic},
	}}
}
