package rpc

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/etl/internal/common"
)

type RawBlock = map[string]interface{}
type RawReceipt = map[string]interface{}
type RawLogs = []map[string]interface{}

func SerializeBlocks(blocks []RPCFetchBatchResult[uint64, RawBlock]) []GetBlocksResult {
	results := make([]GetBlocksResult, 0, len(blocks))

	for _, rawBlock := range blocks {
		result := GetBlocksResult{
			BlockNumber: rawBlock.Key,
		}
		if rawBlock.Error != nil {
			result.Error = rawBlock.Error
			results = append(results, result)
			continue
		}
		if rawBlock.Result == nil {
			log.Warn().Msgf("Received a nil block result for block %d.", rawBlock.Key)
			result.Error = fmt.Errorf("received a nil block result from RPC for block %d", rawBlock.Key)
			results = append(results, result)
			continue
		}

		result.Data.Block = serializeBlock(rawBlock.Result)
		rawTransactions, _ := rawBlock.Result["transactions"].([]interface{})
		result.Data.Transactions = serializeTransactions(rawTransactions, result.Data.Block.Timestamp)
		results = append(results, result)
	}

	return results
}

func serializeBlock(block RawBlock) common.Block {
	transactions, _ := block["transactions"].([]interface{})
	return common.Block{
		Number:           hexToUint64(block["number"]),
		Hash:             interfaceToString(block["hash"]),
		ParentHash:       interfaceToString(block["parentHash"]),
		Timestamp:        time.Unix(int64(hexToUint64(block["timestamp"])), 0).UTC(),
		Nonce:            interfaceToString(block["nonce"]),
		Sha3Uncles:       interfaceToString(block["sha3Uncles"]),
		MixHash:          interfaceToString(block["mixHash"]),
		Miner:            common.NormalizeAddress(interfaceToString(block["miner"])),
		StateRoot:        interfaceToString(block["stateRoot"]),
		TransactionsRoot: interfaceToString(block["transactionsRoot"]),
		ReceiptsRoot:     interfaceToString(block["receiptsRoot"]),
		LogsBloom:        interfaceToString(block["logsBloom"]),
		Size:             hexToUint64(block["size"]),
		ExtraData:        interfaceToString(block["extraData"]),
		Difficulty:       hexToBigInt(block["difficulty"]),
		TotalDifficulty:  hexToOptionalBigInt(block["totalDifficulty"]),
		GasLimit:         hexToBigInt(block["gasLimit"]),
		GasUsed:          hexToBigInt(block["gasUsed"]),
		TransactionCount: uint64(len(transactions)),
		WithdrawalsRoot:  interfaceToString(block["withdrawalsRoot"]),
		BaseFeePerGas:    hexToOptionalBigInt(block["baseFeePerGas"]),
		BlobGasUsed:      hexToOptionalBigInt(block["blobGasUsed"]),
		ExcessBlobGas:    hexToOptionalBigInt(block["excessBlobGas"]),
	}
}

func serializeTransactions(transactions []interface{}, blockTimestamp time.Time) []common.Transaction {
	if len(transactions) == 0 {
		return []common.Transaction{}
	}
	serializedTransactions := make([]common.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		serializedTransactions = append(serializedTransactions, serializeTransaction(tx, blockTimestamp))
	}
	return serializedTransactions
}

func serializeTransaction(rawTx interface{}, blockTimestamp time.Time) common.Transaction {
	tx, ok := rawTx.(map[string]interface{})
	if !ok {
		log.Debug().Msgf("Failed to serialize transaction: %v", rawTx)
		return common.Transaction{}
	}
	return common.Transaction{
		Hash:                 interfaceToString(tx["hash"]),
		Nonce:                hexToUint64(tx["nonce"]),
		BlockHash:            interfaceToString(tx["blockHash"]),
		BlockNumber:          hexToUint64(tx["blockNumber"]),
		BlockTimestamp:       blockTimestamp,
		TransactionIndex:     hexToUint64(tx["transactionIndex"]),
		FromAddress:          common.NormalizeAddress(interfaceToString(tx["from"])),
		ToAddress:            common.NormalizeAddress(interfaceToString(tx["to"])),
		Value:                hexToBigInt(tx["value"]),
		Gas:                  hexToUint64(tx["gas"]),
		GasPrice:             hexToBigInt(tx["gasPrice"]),
		Input:                interfaceToString(tx["input"]),
		FunctionSelector:     extractFunctionSelector(interfaceToString(tx["input"])),
		MaxFeePerGas:         hexToOptionalBigInt(tx["maxFeePerGas"]),
		MaxPriorityFeePerGas: hexToOptionalBigInt(tx["maxPriorityFeePerGas"]),
		MaxFeePerBlobGas:     hexToOptionalBigInt(tx["maxFeePerBlobGas"]),
		BlobVersionedHashes:  interfaceToStrings(tx["blobVersionedHashes"]),
		TransactionType:      uint8(hexToUint64(tx["type"])),
	}
}

/**
 * Extracts the function selector (first 4 bytes) from a transaction input.
 */
func extractFunctionSelector(s string) string {
	if len(s) < 10 {
		return ""
	}
	return s[0:10]
}

func SerializeReceipts(receipts []RPCFetchBatchResult[string, RawReceipt]) []GetReceiptsResult {
	results := make([]GetReceiptsResult, 0, len(receipts))
	for _, rawReceipt := range receipts {
		result := GetReceiptsResult{TransactionHash: rawReceipt.Key}
		switch {
		case rawReceipt.Error != nil:
			result.Error = rawReceipt.Error
		case rawReceipt.Result == nil:
			result.Error = fmt.Errorf("received a nil receipt from RPC for transaction %s", rawReceipt.Key)
		default:
			result.Data = serializeReceipt(rawReceipt.Result)
		}
		results = append(results, result)
	}
	return results
}

func serializeReceipt(receipt RawReceipt) common.Receipt {
	var status *uint64
	if receipt["status"] != nil {
		s := hexToUint64(receipt["status"])
		status = &s
	}
	rawLogs, _ := receipt["logs"].([]interface{})
	logs := make([]common.Log, 0, len(rawLogs))
	for _, rawLog := range rawLogs {
		if l, ok := rawLog.(map[string]interface{}); ok {
			logs = append(logs, serializeLog(l))
		}
	}
	return common.Receipt{
		TransactionHash:   interfaceToString(receipt["transactionHash"]),
		TransactionIndex:  hexToUint64(receipt["transactionIndex"]),
		BlockHash:         interfaceToString(receipt["blockHash"]),
		BlockNumber:       hexToUint64(receipt["blockNumber"]),
		CumulativeGasUsed: hexToUint64(receipt["cumulativeGasUsed"]),
		GasUsed:           hexToUint64(receipt["gasUsed"]),
		ContractAddress:   common.NormalizeAddress(interfaceToString(receipt["contractAddress"])),
		Root:              interfaceToString(receipt["root"]),
		Status:            status,
		EffectiveGasPrice: hexToOptionalBigInt(receipt["effectiveGasPrice"]),
		BlobGasUsed:       hexToOptionalBigInt(receipt["blobGasUsed"]),
		BlobGasPrice:      hexToOptionalBigInt(receipt["blobGasPrice"]),
		Logs:              logs,
	}
}

func SerializeLogs(rawLogs RawLogs) []common.Log {
	serializedLogs := make([]common.Log, len(rawLogs))
	for i, rawLog := range rawLogs {
		serializedLogs[i] = serializeLog(rawLog)
	}
	return serializedLogs
}

func serializeLog(rawLog map[string]interface{}) common.Log {
	return common.Log{
		BlockNumber:      hexToUint64(rawLog["blockNumber"]),
		BlockHash:        interfaceToString(rawLog["blockHash"]),
		TransactionHash:  interfaceToString(rawLog["transactionHash"]),
		TransactionIndex: hexToUint64(rawLog["transactionIndex"]),
		LogIndex:         hexToUint64(rawLog["logIndex"]),
		Address:          common.NormalizeAddress(interfaceToString(rawLog["address"])),
		Data:             interfaceToString(rawLog["data"]),
		Topics:           interfaceToStrings(rawLog["topics"]),
	}
}

func SerializeContracts(codes []RPCFetchBatchResult[common.ContractCandidate, string]) []GetCodeResult {
	results := make([]GetCodeResult, 0, len(codes))
	for _, code := range codes {
		result := GetCodeResult{Candidate: code.Key}
		if code.Error != nil {
			result.Error = code.Error
		} else {
			result.Data = common.NewContract(code.Key.Address, code.Result, code.Key.BlockNumber)
		}
		results = append(results, result)
	}
	return results
}

func hexToBigInt(hex interface{}) *big.Int {
	v := hexToOptionalBigInt(hex)
	if v == nil {
		return new(big.Int)
	}
	return v
}

func hexToOptionalBigInt(hex interface{}) *big.Int {
	hexString := interfaceToString(hex)
	if len(hexString) < 3 {
		return nil
	}
	v, ok := new(big.Int).SetString(hexString[2:], 16)
	if !ok {
		return nil
	}
	return v
}

func hexToUint64(hex interface{}) uint64 {
	hexString := interfaceToString(hex)
	if len(hexString) < 3 {
		return 0
	}
	v, _ := strconv.ParseUint(hexString[2:], 16, 64)
	return v
}

func interfaceToString(value interface{}) string {
	if value == nil {
		return ""
	}
	res, ok := value.(string)
	if !ok {
		return ""
	}
	return res
}

func interfaceToStrings(value interface{}) []string {
	values, ok := value.([]interface{})
	if !ok {
		return []string{}
	}
	res := make([]string, 0, len(values))
	for _, v := range values {
		res = append(res, interfaceToString(v))
	}
	return res
}
