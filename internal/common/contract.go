package common

import (
	"encoding/hex"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
)

type Contract struct {
	Address           string   `json:"address"`
	Bytecode          string   `json:"bytecode"`
	FunctionSighashes []string `json:"function_sighashes"`
	IsErc20           bool     `json:"is_erc20"`
	IsErc721          bool     `json:"is_erc721"`
	BlockNumber       uint64   `json:"block_number"`
}

// NewContract analyses the bytecode of a created contract.
func NewContract(address string, bytecode string, blockNumber uint64) Contract {
	sighashes := FunctionSighashes(bytecode)
	set := mapset.NewThreadUnsafeSet(sighashes...)
	return Contract{
		Address:           NormalizeAddress(address),
		Bytecode:          bytecode,
		FunctionSighashes: sighashes,
		IsErc20:           isErc20(set),
		IsErc721:          isErc721(set),
		BlockNumber:       blockNumber,
	}
}

// FunctionSighashes returns the sorted distinct PUSH4 operands of the code,
// which is where the solidity dispatcher keeps the function selectors.
func FunctionSighashes(bytecode string) []string {
	code, err := hex.DecodeString(strings.TrimPrefix(bytecode, "0x"))
	if err != nil || len(code) == 0 {
		return []string{}
	}

	found := mapset.NewThreadUnsafeSet[string]()
	for pc := 0; pc < len(code); pc++ {
		op := vm.OpCode(code[pc])
		if op < vm.PUSH1 || op > vm.PUSH32 {
			continue
		}
		size := int(op-vm.PUSH1) + 1
		if op == vm.PUSH4 && pc+size < len(code) {
			found.Add("0x" + hex.EncodeToString(code[pc+1:pc+1+size]))
		}
		pc += size
	}

	sighashes := found.ToSlice()
	sort.Strings(sighashes)
	return sighashes
}

// Selector returns the 4-byte function selector of a signature.
func Selector(signature string) string {
	return "0x" + hex.EncodeToString(crypto.Keccak256([]byte(signature))[:4])
}

func implements(sighashes mapset.Set[string], signatures ...string) bool {
	for _, signature := range signatures {
		if !sighashes.Contains(Selector(signature)) {
			return false
		}
	}
	return true
}

func implementsAny(sighashes mapset.Set[string], signatures ...string) bool {
	for _, signature := range signatures {
		if sighashes.Contains(Selector(signature)) {
			return true
		}
	}
	return false
}

func isErc20(sighashes mapset.Set[string]) bool {
	return implements(sighashes,
		"totalSupply()",
		"balanceOf(address)",
		"transfer(address,uint256)",
		"transferFrom(address,address,uint256)",
		"approve(address,uint256)",
		"allowance(address,address)",
	)
}

func isErc721(sighashes mapset.Set[string]) bool {
	return implements(sighashes, "balanceOf(address)", "ownerOf(uint256)", "approve(address,uint256)") &&
		implementsAny(sighashes, "transfer(address,uint256)", "transferFrom(address,address,uint256)")
}
