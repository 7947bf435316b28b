package rpc

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/etl/internal/metrics"
)

type RPCFetchBatchResult[K any, T any] struct {
	Key    K
	Error  error
	Result T
}

// RPCFetchSingleBatch sends one JSON-RPC batch for all keys. The whole batch
// is retried with exponential backoff while the transport or any element
// fails, and the errors of the last attempt are reported per key.
func RPCFetchSingleBatch[K any, T any](rpc *Client, ctx context.Context, keys []K, method string, argsFunc func(K) []interface{}) []RPCFetchBatchResult[K, T] {
	batch := make([]gethRpc.BatchElem, len(keys))
	results := make([]RPCFetchBatchResult[K, T], len(keys))
	if len(keys) == 0 {
		return results
	}

	for i, key := range keys {
		results[i] = RPCFetchBatchResult[K, T]{Key: key}
		batch[i] = gethRpc.BatchElem{
			Method: method,
			Args:   argsFunc(key),
		}
	}

	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			for i := range batch {
				batch[i].Result = new(T)
				batch[i].Error = nil
			}
			rpc.limiter.Take()
			if err := rpc.RPCClient.BatchCallContext(ctx, batch); err != nil {
				return err
			}
			for _, elem := range batch {
				if elem.Error != nil {
					return fmt.Errorf("%s batch element failed: %w", method, elem.Error)
				}
			}
			return nil
		},
		retry.Attempts(rpc.retry.attempts),
		retry.Delay(rpc.retry.delay),
		retry.MaxDelay(rpc.retry.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Err(err).Msgf("Retrying %s batch of %d requests (attempt %d)", method, len(keys), n+1)
		}),
	)
	if err != nil {
		metrics.RPCBatchErrors.WithLabelValues(method).Inc()
		log.Error().Err(err).Msgf("Failed to fetch %s batch of %d requests after %d attempts", method, len(keys), attempt)
	}

	for i, elem := range batch {
		switch {
		case elem.Error != nil:
			results[i].Error = elem.Error
		case err != nil:
			results[i].Error = err
		default:
			results[i].Result = *elem.Result.(*T)
		}
	}

	return results
}

// FirstError returns the first failed key of a batch.
func FirstError[K any, T any](results []RPCFetchBatchResult[K, T]) error {
	for _, result := range results {
		if result.Error != nil {
			return fmt.Errorf("request for %v failed: %w", result.Key, result.Error)
		}
	}
	return nil
}
