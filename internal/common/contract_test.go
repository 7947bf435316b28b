package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// dispatcher builds code that pushes each selector followed by an EQ.
func dispatcher(signatures ...string) string {
	var sb strings.Builder
	sb.WriteString("0x6080604052")
	for _, signature := range signatures {
		sb.WriteString("63")
		sb.WriteString(strings.TrimPrefix(Selector(signature), "0x"))
		sb.WriteString("14")
	}
	return sb.String()
}

func TestSelector(t *testing.T) {
	assert.Equal(t, "0xa9059cbb", Selector("transfer(address,uint256)"))
	assert.Equal(t, "0x18160ddd", Selector("totalSupply()"))
}

func TestFunctionSighashes(t *testing.T) {
	// PUSH32 operand hides a PUSH4 opcode which must not be read
	code := "0x7f63deadbeef000000000000000000000000000000000000000000000000000000" +
		"63a9059cbb" + "6318160ddd" + "63a9059cbb" + "00"
	assert.Equal(t, []string{"0x18160ddd", "0xa9059cbb"}, FunctionSighashes(code))

	assert.Empty(t, FunctionSighashes("0x"))
	assert.Empty(t, FunctionSighashes(""))
	assert.Empty(t, FunctionSighashes("0xzz"))
	// truncated PUSH4 operand
	assert.Empty(t, FunctionSighashes("0x63a905"))
}

func TestNewContractDetectsErc20(t *testing.T) {
	code := dispatcher(
		"totalSupply()",
		"balanceOf(address)",
		"transfer(address,uint256)",
		"transferFrom(address,address,uint256)",
		"approve(address,uint256)",
		"allowance(address,address)",
	)
	contract := NewContract("0xABC", code, 42)

	assert.Equal(t, "0xabc", contract.Address)
	assert.Equal(t, uint64(42), contract.BlockNumber)
	assert.Len(t, contract.FunctionSighashes, 6)
	assert.True(t, contract.IsErc20)
	assert.False(t, contract.IsErc721)
}

func TestNewContractDetectsErc721(t *testing.T) {
	code := dispatcher(
		"balanceOf(address)",
		"ownerOf(uint256)",
		"transferFrom(address,address,uint256)",
		"approve(address,uint256)",
	)
	contract := NewContract("0xdef", code, 1)

	assert.False(t, contract.IsErc20)
	assert.True(t, contract.IsErc721)
}

func TestNewContractWithoutCode(t *testing.T) {
	contract := NewContract("0x1", "0x", 1)
	assert.Empty(t, contract.FunctionSighashes)
	assert.False(t, contract.IsErc20)
	assert.False(t, contract.IsErc721)
}

func TestContractCandidates(t *testing.T) {
	receipts := []Receipt{
		{TransactionHash: "0x1", BlockNumber: 10, ContractAddress: "0xc1"},
		{TransactionHash: "0x2", BlockNumber: 11},
	}
	assert.Equal(t, []ContractCandidate{{Address: "0xc1", BlockNumber: 10}}, ContractCandidates(receipts))
}
