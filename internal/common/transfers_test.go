package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fromWord = "0x000000000000000000000000a9d1e08c7793af67e9d92fe308d5697fb81d3e43"
	toWord   = "0x00000000000000000000000077696bb39917c91a0c3908d577d5e322095425ca"
)

func TestExtractTokenTransferERC20(t *testing.T) {
	l := Log{
		BlockNumber:     17000000,
		BlockHash:       "0xblock",
		TransactionHash: "0xtx",
		LogIndex:        7,
		Address:         "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		Topics:          []string{TransferEventTopic, fromWord, toWord},
		Data:            "0x00000000000000000000000000000000000000000000000000000000017d7840",
	}

	transfer, ok := ExtractTokenTransfer(l)
	require.True(t, ok)
	assert.Equal(t, TokenTypeERC20, transfer.TokenType)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", transfer.TokenAddress)
	assert.Equal(t, "0xa9d1e08c7793af67e9d92fe308d5697fb81d3e43", transfer.FromAddress)
	assert.Equal(t, "0x77696bb39917c91a0c3908d577d5e322095425ca", transfer.ToAddress)
	assert.Equal(t, "25000000", transfer.Value.String())
	assert.Equal(t, uint64(7), transfer.LogIndex)
	assert.Equal(t, uint64(17000000), transfer.BlockNumber)
}

func TestExtractTokenTransferERC721(t *testing.T) {
	l := Log{
		Address: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		Topics: []string{
			TransferEventTopic,
			fromWord,
			toWord,
			"0x0000000000000000000000000000000000000000000000000000000000000457",
		},
		Data: "0x",
	}

	transfer, ok := ExtractTokenTransfer(l)
	require.True(t, ok)
	assert.Equal(t, TokenTypeERC721, transfer.TokenType)
	assert.Equal(t, "1111", transfer.Value.String())
}

func TestExtractTokenTransferRejectsOtherLayouts(t *testing.T) {
	// three topics without data
	_, ok := ExtractTokenTransfer(Log{Topics: []string{TransferEventTopic, fromWord, toWord}})
	assert.False(t, ok)

	// two words of data on top of three topics
	_, ok = ExtractTokenTransfer(Log{
		Topics: []string{TransferEventTopic, fromWord, toWord},
		Data:   "0x" + fromWord[2:] + toWord[2:],
	})
	assert.False(t, ok)

	// another event
	_, ok = ExtractTokenTransfer(Log{Topics: []string{"0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925", fromWord, toWord}, Data: toWord})
	assert.False(t, ok)

	_, ok = ExtractTokenTransfer(Log{})
	assert.False(t, ok)
}

func TestExtractTokenTransfersFiltersLogs(t *testing.T) {
	logs := []Log{
		{Topics: []string{TransferEventTopic, fromWord, toWord}, Data: toWord},
		{Topics: []string{"0x01"}},
	}
	assert.Len(t, ExtractTokenTransfers(logs), 1)
}
