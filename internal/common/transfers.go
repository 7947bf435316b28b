package common

import (
	"math/big"
	"strings"
)

const (
	// keccak256("Transfer(address,address,uint256)")
	TransferEventTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

	TokenTypeERC20  = "erc20"
	TokenTypeERC721 = "erc721"
)

type TokenTransfer struct {
	TokenType       string   `json:"token_type"`
	TokenAddress    string   `json:"token_address"`
	FromAddress     string   `json:"from_address"`
	ToAddress       string   `json:"to_address"`
	Value           *big.Int `json:"value"`
	TransactionHash string   `json:"transaction_hash"`
	LogIndex        uint64   `json:"log_index"`
	BlockNumber     uint64   `json:"block_number"`
	BlockHash       string   `json:"block_hash"`
}

// ExtractTokenTransfer decodes a Transfer event. ERC-20 puts the value in
// data behind three topics, ERC-721 puts the token id in a fourth topic.
// Any other layout is not a token transfer.
func ExtractTokenTransfer(l Log) (*TokenTransfer, bool) {
	if len(l.Topics) == 0 || !strings.EqualFold(l.Topics[0], TransferEventTopic) {
		return nil, false
	}

	words := make([]string, 0, 4)
	words = append(words, l.Topics...)
	words = append(words, splitToWords(l.Data)...)
	if len(words) != 4 {
		return nil, false
	}

	value, ok := new(big.Int).SetString(strings.TrimPrefix(words[3], "0x"), 16)
	if !ok {
		return nil, false
	}

	tokenType := TokenTypeERC20
	if len(l.Topics) == 4 {
		tokenType = TokenTypeERC721
	}

	return &TokenTransfer{
		TokenType:       tokenType,
		TokenAddress:    NormalizeAddress(l.Address),
		FromAddress:     wordToAddress(words[1]),
		ToAddress:       wordToAddress(words[2]),
		Value:           value,
		TransactionHash: l.TransactionHash,
		LogIndex:        l.LogIndex,
		BlockNumber:     l.BlockNumber,
		BlockHash:       l.BlockHash,
	}, true
}

// ExtractTokenTransfers keeps the logs that decode as token transfers.
func ExtractTokenTransfers(logs []Log) []TokenTransfer {
	transfers := make([]TokenTransfer, 0)
	for _, l := range logs {
		if transfer, ok := ExtractTokenTransfer(l); ok {
			transfers = append(transfers, *transfer)
		}
	}
	return transfers
}

func splitToWords(data string) []string {
	data = strings.TrimPrefix(data, "0x")
	words := make([]string, 0, (len(data)+63)/64)
	for i := 0; i < len(data); i += 64 {
		end := i + 64
		if end > len(data) {
			end = len(data)
		}
		words = append(words, "0x"+data[i:end])
	}
	return words
}

func wordToAddress(word string) string {
	word = strings.TrimPrefix(strings.ToLower(word), "0x")
	if len(word) < 40 {
		word = strings.Repeat("0", 40-len(word)) + word
	}
	return "0x" + word[len(word)-40:]
}
