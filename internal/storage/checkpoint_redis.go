package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/libs"
)

// Set of completed stage names: checkpoint:stages:{sink}:{start}-{end}
const KeyStageCheckpoint = "checkpoint:stages"

type RedisCheckpointStorage struct {
	client *redis.Client
	ttl    time.Duration
	sink   string
}

// NewRedisCheckpointStorage scopes every checkpoint to sinkDSN, so ranges
// exported into different databases never share completed stages.
func NewRedisCheckpointStorage(ctx context.Context, cfg config.RedisConfig, sinkDSN string) (*RedisCheckpointStorage, error) {
	client, err := libs.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("Using Redis for stage checkpoints")
	return &RedisCheckpointStorage{
		client: client,
		ttl:    time.Duration(cfg.TTL) * time.Second,
		sink:   sinkNamespace(sinkDSN),
	}, nil
}

// sinkNamespace keeps the DSN, and the credentials in it, out of Redis.
func sinkNamespace(sinkDSN string) string {
	return crypto.Keccak256Hash([]byte(sinkDSN)).Hex()[2:18]
}

func checkpointKey(sink string, blockRange common.BlockRange) string {
	return fmt.Sprintf("%s:%s:%s", KeyStageCheckpoint, sink, blockRange.String())
}

func (r *RedisCheckpointStorage) GetCompletedStages(ctx context.Context, blockRange common.BlockRange) ([]string, error) {
	stages, err := r.client.SMembers(ctx, checkpointKey(r.sink, blockRange)).Result()
	if err == redis.Nil {
		return []string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read checkpoints for range %s: %w", blockRange, err)
	}
	return stages, nil
}

func (r *RedisCheckpointStorage) MarkStageCompleted(ctx context.Context, blockRange common.BlockRange, stage string) error {
	key := checkpointKey(r.sink, blockRange)
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, key, stage)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark stage %s for range %s: %w", stage, blockRange, err)
	}
	return nil
}

func (r *RedisCheckpointStorage) ClearStages(ctx context.Context, blockRange common.BlockRange) error {
	return r.client.Del(ctx, checkpointKey(r.sink, blockRange)).Err()
}

func (r *RedisCheckpointStorage) Close() error {
	return r.client.Close()
}
