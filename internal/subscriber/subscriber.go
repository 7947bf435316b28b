package subscriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/libs"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	DEFAULT_POLL_TIMEOUT      = time.Second
	DEFAULT_RETRY_BACKOFF     = 5 * time.Second
	DEFAULT_REBALANCE_TIMEOUT = 30 * time.Minute

	commitTimeout = 10 * time.Second
)

// Handler processes one record. Returning nil or a DecodeError commits the
// record, any other error rewinds its partition so the record is redelivered.
type Handler func(ctx context.Context, record *kgo.Record) error

type consumer interface {
	PollFetches(ctx context.Context) kgo.Fetches
	MarkCommitRecords(rs ...*kgo.Record)
	SetOffsets(setOffsets map[string]map[int32]kgo.EpochOffset)
	AllowRebalance()
	CommitMarkedOffsets(ctx context.Context) error
	Close()
}

type Subscriber struct {
	client       consumer
	topic        string
	pollTimeout  time.Duration
	retryBackoff time.Duration
}

func NewSubscriber(ctx context.Context, cfg config.KafkaConfig) (*Subscriber, error) {
	opts := append(libs.KafkaClientOpts(cfg, "ethereum-etl-worker"),
		kgo.ConsumerGroup(cfg.GroupID),
		kgo.ConsumeTopics(cfg.ConsumeTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.AutoCommitMarks(),
		kgo.BlockRebalanceOnPoll(),
		kgo.RebalanceTimeout(rebalanceTimeout(cfg)),
		kgo.OnPartitionsRevoked(func(ctx context.Context, client *kgo.Client, revoked map[string][]int32) {
			if err := client.CommitMarkedOffsets(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to commit offsets on partition revoke")
			}
		}),
	)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, &common.QueueConnectionError{Brokers: cfg.Brokers, Err: err}
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, &common.QueueConnectionError{Brokers: cfg.Brokers, Err: err}
	}

	log.Info().Str("topic", cfg.ConsumeTopic).Str("group", cfg.GroupID).Msg("Kafka subscriber connected")
	return newSubscriber(client, cfg.ConsumeTopic,
		time.Duration(cfg.PollTimeout)*time.Millisecond,
		time.Duration(cfg.RetryBackoff)*time.Millisecond,
	), nil
}

func newSubscriber(client consumer, topic string, pollTimeout time.Duration, retryBackoff time.Duration) *Subscriber {
	if pollTimeout <= 0 {
		pollTimeout = DEFAULT_POLL_TIMEOUT
	}
	if retryBackoff < 0 {
		retryBackoff = DEFAULT_RETRY_BACKOFF
	}
	return &Subscriber{
		client:       client,
		topic:        topic,
		pollTimeout:  pollTimeout,
		retryBackoff: retryBackoff,
	}
}

// Run polls until ctx is cancelled or the client is closed. Handlers run on a
// context that survives cancellation so an in-flight range finishes before
// Run returns.
func (s *Subscriber) Run(ctx context.Context, handler Handler) error {
	log.Info().Str("topic", s.topic).Msg("Waiting for range requests")
	for {
		if ctx.Err() != nil {
			log.Info().Msg("Subscriber stopping")
			return nil
		}

		pollCtx, cancel := context.WithTimeout(ctx, s.pollTimeout)
		fetches := s.client.PollFetches(pollCtx)
		cancel()

		if fetches.IsClientClosed() {
			log.Info().Msg("Kafka client closed, subscriber stopping")
			return nil
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				log.Debug().Msg("No range requests within poll timeout")
				return
			}
			log.Error().Err(err).Str("topic", topic).Int32("partition", partition).Msg("Fetch error")
		})

		if records := fetches.Records(); len(records) > 0 {
			s.processRecords(ctx, records, handler)
		}
		// partitions cannot be revoked between a poll and the marks or
		// rewinds of its records
		s.client.AllowRebalance()
	}
}

// rebalanceTimeout bounds how long the group waits for one polled batch of
// ranges to be exported before evicting this member.
func rebalanceTimeout(cfg config.KafkaConfig) time.Duration {
	if cfg.RebalanceTimeout <= 0 {
		return DEFAULT_REBALANCE_TIMEOUT
	}
	return time.Duration(cfg.RebalanceTimeout) * time.Millisecond
}

func (s *Subscriber) processRecords(ctx context.Context, records []*kgo.Record, handler Handler) {
	rewound := make(map[int32]bool)
	for _, record := range records {
		if ctx.Err() != nil {
			return
		}
		if rewound[record.Partition] {
			continue
		}

		err := handler(context.WithoutCancel(ctx), record)
		var decodeErr *common.DecodeError
		if err == nil || errors.As(err, &decodeErr) {
			s.client.MarkCommitRecords(record)
			continue
		}

		log.Error().Err(err).Int32("partition", record.Partition).Int64("offset", record.Offset).
			Msgf("Range request failed, redelivering after %s", s.retryBackoff)
		s.client.SetOffsets(map[string]map[int32]kgo.EpochOffset{
			record.Topic: {record.Partition: {Epoch: record.LeaderEpoch, Offset: record.Offset}},
		})
		rewound[record.Partition] = true
		s.backoff(ctx)
	}
}

func (s *Subscriber) backoff(ctx context.Context) {
	if s.retryBackoff == 0 {
		return
	}
	timer := time.NewTimer(s.retryBackoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Close commits the marked offsets and leaves the group.
func (s *Subscriber) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	var err error
	if commitErr := s.client.CommitMarkedOffsets(ctx); commitErr != nil {
		err = fmt.Errorf("failed to commit offsets: %w", commitErr)
	}
	s.client.Close()
	s.client = nil
	return err
}
