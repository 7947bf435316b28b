package publisher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/libs"
	"github.com/thirdweb-dev/etl/internal/metrics"
	"github.com/twmb/franz-go/pkg/kgo"
)

// IPublisher emits completion events for processed ranges.
type IPublisher interface {
	Publish(ctx context.Context, key []byte, value []byte) error
	Close() error
}

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Publisher struct {
	client producer
	topic  string
	mu     sync.RWMutex
}

func NewPublisher(ctx context.Context, cfg config.KafkaConfig) (*Publisher, error) {
	opts := append(libs.KafkaClientOpts(cfg, "ethereum-etl-publisher"),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProduceRequestTimeout(30*time.Second),
		kgo.RequestRetries(5),
	)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, &common.QueueConnectionError{Brokers: cfg.Brokers, Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		client.Close()
		return nil, &common.QueueConnectionError{Brokers: cfg.Brokers, Err: err}
	}

	return newPublisher(client, cfg.ProduceTopic), nil
}

func newPublisher(client producer, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

// Publish writes one record and waits for the broker acknowledgement.
func (p *Publisher) Publish(ctx context.Context, key []byte, value []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.client == nil {
		return fmt.Errorf("publisher is closed")
	}

	start := time.Now()
	record := &kgo.Record{Topic: p.topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}
	metrics.PublishDuration.Observe(time.Since(start).Seconds())
	log.Debug().Str("topic", p.topic).Msgf("Published completion event %s", string(key))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		p.client.Close()
		p.client = nil
		log.Debug().Msg("Publisher client closed")
	}
	return nil
}
