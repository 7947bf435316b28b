package common

import (
	"math/big"
	"strings"
)

func SliceToChunks[T any](values []T, chunkSize int) [][]T {
	if len(values) == 0 {
		return [][]T{}
	}
	if chunkSize >= len(values) || chunkSize <= 0 {
		return [][]T{values}
	}
	var chunks [][]T
	for i := 0; i < len(values); i += chunkSize {
		end := i + chunkSize
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[i:end])
	}
	return chunks
}

// NormalizeAddress lowercases an address and keeps the empty value empty.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// BigIntString renders a nullable big integer for NUMERIC columns.
func BigIntString(v *big.Int) interface{} {
	if v == nil {
		return nil
	}
	return v.String()
}

// BigIntOrZero returns v or a zero value when v is nil.
func BigIntOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
