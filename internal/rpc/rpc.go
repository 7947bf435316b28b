package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
	"go.uber.org/ratelimit"
)

type GetBlocksResult struct {
	BlockNumber uint64
	Error       error
	Data        common.BlockData
}

type GetReceiptsResult struct {
	TransactionHash string
	Error           error
	Data            common.Receipt
}

type GetCodeResult struct {
	Candidate common.ContractCandidate
	Error     error
	Data      common.Contract
}

type IRPCClient interface {
	GetBlocks(ctx context.Context, blockNumbers []uint64) []GetBlocksResult
	GetReceipts(ctx context.Context, txHashes []string) []GetReceiptsResult
	GetCode(ctx context.Context, candidates []common.ContractCandidate) []GetCodeResult
	GetTransferLogs(ctx context.Context, blockRange common.BlockRange) ([]common.Log, error)
	GetChainID() *big.Int
	GetProviderKind() ProviderKind
	Close()
}

type retryConfig struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

type Client struct {
	RPCClient *gethRpc.Client
	EthClient *ethclient.Client
	kind      ProviderKind
	chainID   *big.Int
	retry     retryConfig
	limiter   ratelimit.Limiter
}

type ClientOption func(*Client)

// WithRetry configures how often a failed batch is resent.
func WithRetry(attempts uint, delay, maxDelay time.Duration) ClientOption {
	return func(c *Client) {
		if attempts > 0 {
			c.retry.attempts = attempts
		}
		if delay > 0 {
			c.retry.delay = delay
		}
		if maxDelay > 0 {
			c.retry.maxDelay = maxDelay
		}
	}
}

// WithRateLimit caps the number of batch requests per second. Zero disables it.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = ratelimit.New(requestsPerSecond)
		} else {
			c.limiter = ratelimit.NewUnlimited()
		}
	}
}

// Initialize dials the provider named by the config and reads its chain id.
func Initialize(ctx context.Context, cfg config.RPCConfig) (IRPCClient, error) {
	url := config.ProviderURIForChain(cfg.Chain, cfg.URL)
	kind, endpoint, err := ResolveProvider(url)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Initializing %s RPC provider", kind)
	rpcClient, dialErr := gethRpc.DialContext(ctx, endpoint)
	if dialErr != nil {
		return nil, fmt.Errorf("failed to dial provider %s: %w", url, dialErr)
	}

	client := NewClient(rpcClient, kind,
		WithRetry(cfg.Batch.RetryAttempts, time.Duration(cfg.Batch.RetryDelay)*time.Millisecond, time.Duration(cfg.Batch.RetryMaxDelay)*time.Millisecond),
		WithRateLimit(cfg.Batch.RequestsPerSecond),
	)
	if err := client.setChainID(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewClient wraps an already connected geth client.
func NewClient(rpcClient *gethRpc.Client, kind ProviderKind, opts ...ClientOption) *Client {
	client := &Client{
		RPCClient: rpcClient,
		EthClient: ethclient.NewClient(rpcClient),
		kind:      kind,
		retry: retryConfig{
			attempts: 5,
			delay:    500 * time.Millisecond,
			maxDelay: 10 * time.Second,
		},
		limiter: ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (rpc *Client) GetChainID() *big.Int {
	return rpc.chainID
}

func (rpc *Client) GetProviderKind() ProviderKind {
	return rpc.kind
}

func (rpc *Client) Close() {
	rpc.EthClient.Close()
}

func (rpc *Client) setChainID(ctx context.Context) error {
	chainID, err := rpc.EthClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %v", err)
	}
	rpc.chainID = chainID
	return nil
}

func (rpc *Client) GetBlocks(ctx context.Context, blockNumbers []uint64) []GetBlocksResult {
	blocks := RPCFetchSingleBatch[uint64, RawBlock](rpc, ctx, blockNumbers, "eth_getBlockByNumber", GetBlockWithTransactionsParams)
	return SerializeBlocks(blocks)
}

func (rpc *Client) GetReceipts(ctx context.Context, txHashes []string) []GetReceiptsResult {
	receipts := RPCFetchSingleBatch[string, RawReceipt](rpc, ctx, txHashes, "eth_getTransactionReceipt", GetTransactionReceiptParams)
	return SerializeReceipts(receipts)
}

func (rpc *Client) GetCode(ctx context.Context, candidates []common.ContractCandidate) []GetCodeResult {
	codes := RPCFetchSingleBatch[common.ContractCandidate, string](rpc, ctx, candidates, "eth_getCode", GetCodeParams)
	return SerializeContracts(codes)
}

func (rpc *Client) GetTransferLogs(ctx context.Context, blockRange common.BlockRange) ([]common.Log, error) {
	results := RPCFetchSingleBatch[common.BlockRange, RawLogs](rpc, ctx, []common.BlockRange{blockRange}, "eth_getLogs", GetTransferLogsParams)
	if err := FirstError(results); err != nil {
		return nil, err
	}
	return SerializeLogs(results[0].Result), nil
}
