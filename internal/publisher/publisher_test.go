package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
	closed  bool
}

func (f *fakeProducer) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		if f.err == nil {
			f.records = append(f.records, r)
		}
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func (f *fakeProducer) Close() {
	f.closed = true
}

func TestPublishWritesRecordToTopic(t *testing.T) {
	producer := &fakeProducer{}
	p := newPublisher(producer, "eth-etl-block-batch-completed")

	value := []byte(`{"start_block": 100, "end_block": 104}`)
	require.NoError(t, p.Publish(context.Background(), []byte("key-1"), value))

	require.Len(t, producer.records, 1)
	assert.Equal(t, "eth-etl-block-batch-completed", producer.records[0].Topic)
	assert.Equal(t, []byte("key-1"), producer.records[0].Key)
	assert.Equal(t, value, producer.records[0].Value)
}

func TestPublishReturnsBrokerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("not leader for partition")}
	p := newPublisher(producer, "out")

	err := p.Publish(context.Background(), []byte("k"), []byte("v"))
	assert.ErrorContains(t, err, "not leader for partition")
}

func TestPublishAfterClose(t *testing.T) {
	producer := &fakeProducer{}
	p := newPublisher(producer, "out")

	require.NoError(t, p.Close())
	assert.True(t, producer.closed)
	assert.Error(t, p.Publish(context.Background(), []byte("k"), []byte("v")))
	require.NoError(t, p.Close())
}
