package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/test/mocks"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakePipeline struct {
	ranges []common.BlockRange
	err    error
	states []WorkerState
	worker *Worker
}

func (f *fakePipeline) RunFullExport(ctx context.Context, blockRange common.BlockRange) error {
	f.ranges = append(f.ranges, blockRange)
	if f.worker != nil {
		f.states = append(f.states, f.worker.State())
	}
	return f.err
}

func TestHandleMessagePublishesOriginalBytes(t *testing.T) {
	payload := []byte(`{"start_block": 100, "end_block": 104}`)
	pipeline := &fakePipeline{}
	mockPublisher := mocks.NewMockIPublisher(t)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything, payload).
		Run(func(ctx context.Context, key []byte, value []byte) {
			_, err := uuid.Parse(string(key))
			assert.NoError(t, err)
		}).
		Return(nil).Once()

	worker := NewWorker(pipeline, mockPublisher)
	pipeline.worker = worker

	err := worker.HandleMessage(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, []common.BlockRange{{Start: 100, End: 104}}, pipeline.ranges)
	assert.Equal(t, []WorkerState{StateProcessing}, pipeline.states)
	assert.Equal(t, StateIdle, worker.State())
}

func TestHandleMessageUsesFreshKeys(t *testing.T) {
	payload := []byte(`{"start_block": 1, "end_block": 1}`)
	keys := make([]string, 0)
	mockPublisher := mocks.NewMockIPublisher(t)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything, payload).
		Run(func(ctx context.Context, key []byte, value []byte) {
			keys = append(keys, string(key))
		}).
		Return(nil).Twice()

	worker := NewWorker(&fakePipeline{}, mockPublisher)
	require.NoError(t, worker.HandleMessage(context.Background(), payload))
	require.NoError(t, worker.HandleMessage(context.Background(), payload))

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestHandleMessageRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing end_block", payload: `{"start_block": 100}`},
		{name: "missing start_block", payload: `{"end_block": 100}`},
		{name: "not json", payload: `100-104`},
		{name: "negative block", payload: `{"start_block": -1, "end_block": 4}`},
		{name: "string block", payload: `{"start_block": "1", "end_block": 4}`},
		{name: "end before start", payload: `{"start_block": 10, "end_block": 4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &fakePipeline{}
			mockPublisher := mocks.NewMockIPublisher(t)
			worker := NewWorker(pipeline, mockPublisher)

			err := worker.HandleMessage(context.Background(), []byte(tt.payload))
			require.Error(t, err)

			var decodeErr *common.DecodeError
			assert.ErrorAs(t, err, &decodeErr)
			assert.Empty(t, pipeline.ranges)
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleMessageDoesNotPublishOnPipelineFailure(t *testing.T) {
	stageErr := &common.FetchError{Stage: "receipts", Batch: "0", Err: errors.New("rate limited")}
	pipeline := &fakePipeline{err: stageErr}
	mockPublisher := mocks.NewMockIPublisher(t)
	worker := NewWorker(pipeline, mockPublisher)

	err := worker.HandleMessage(context.Background(), []byte(`{"start_block": 5, "end_block": 6}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, stageErr)

	var decodeErr *common.DecodeError
	assert.False(t, errors.As(err, &decodeErr))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, StateIdle, worker.State())
}

func TestHandleMessageReturnsPublishFailure(t *testing.T) {
	mockPublisher := mocks.NewMockIPublisher(t)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	worker := NewWorker(&fakePipeline{}, mockPublisher)
	err := worker.HandleMessage(context.Background(), []byte(`{"start_block": 5, "end_block": 6}`))
	assert.ErrorContains(t, err, "broker unavailable")
}

func TestHandleRecord(t *testing.T) {
	payload := []byte(`{"start_block": 0, "end_block": 0}`)
	pipeline := &fakePipeline{}
	mockPublisher := mocks.NewMockIPublisher(t)
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything, payload).Return(nil)

	worker := NewWorker(pipeline, mockPublisher)
	err := worker.HandleRecord(context.Background(), &kgo.Record{Topic: "eth-block-batch", Value: payload})
	require.NoError(t, err)
	assert.Equal(t, []common.BlockRange{{Start: 0, End: 0}}, pipeline.ranges)
}
