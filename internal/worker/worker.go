package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/metrics"
	"github.com/thirdweb-dev/etl/internal/publisher"
	"github.com/twmb/franz-go/pkg/kgo"
)

type WorkerState int

const (
	StateIdle WorkerState = iota
	StateProcessing
)

func (s WorkerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

const (
	outcomeCompleted     = "completed"
	outcomeDecodeError   = "decode_error"
	outcomePipelineError = "pipeline_error"
	outcomePublishError  = "publish_error"
)

// IPipeline runs every extraction stage for a block range.
type IPipeline interface {
	RunFullExport(ctx context.Context, blockRange common.BlockRange) error
}

// RangeRequest is the inbound message naming the blocks to export.
type RangeRequest struct {
	StartBlock *uint64 `json:"start_block"`
	EndBlock   *uint64 `json:"end_block"`
}

// Worker handles one range request at a time. A range is announced on the
// completion topic only after the whole pipeline succeeded for it.
type Worker struct {
	pipeline  IPipeline
	publisher publisher.IPublisher

	mu    sync.RWMutex
	state WorkerState
}

func NewWorker(pipeline IPipeline, publisher publisher.IPublisher) *Worker {
	return &Worker{
		pipeline:  pipeline,
		publisher: publisher,
		state:     StateIdle,
	}
}

func (w *Worker) State() WorkerState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Worker) setState(state WorkerState) {
	w.mu.Lock()
	w.state = state
	w.mu.Unlock()

	if state == StateProcessing {
		metrics.WorkerProcessing.Set(1)
	} else {
		metrics.WorkerProcessing.Set(0)
	}
}

// DecodeRangeRequest parses the payload of an inbound message. Both bounds are
// required and the end may not precede the start.
func DecodeRangeRequest(payload []byte) (common.BlockRange, error) {
	var request RangeRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return common.BlockRange{}, &common.DecodeError{Payload: payload, Err: err}
	}
	if request.StartBlock == nil {
		return common.BlockRange{}, &common.DecodeError{Payload: payload, Err: errors.New("missing start_block")}
	}
	if request.EndBlock == nil {
		return common.BlockRange{}, &common.DecodeError{Payload: payload, Err: errors.New("missing end_block")}
	}
	blockRange := common.BlockRange{Start: *request.StartBlock, End: *request.EndBlock}
	if err := blockRange.Validate(); err != nil {
		return common.BlockRange{}, &common.DecodeError{Payload: payload, Err: err}
	}
	return blockRange, nil
}

// HandleRecord is the subscriber handler for one consumed record.
func (w *Worker) HandleRecord(ctx context.Context, record *kgo.Record) error {
	log.Debug().Str("topic", record.Topic).Int32("partition", record.Partition).Int64("offset", record.Offset).Msg("Received range request")
	return w.HandleMessage(ctx, record.Value)
}

// HandleMessage exports the range named by value and publishes value
// unchanged under a fresh key. Any returned error other than a DecodeError
// means the message should be delivered again.
func (w *Worker) HandleMessage(ctx context.Context, value []byte) error {
	blockRange, err := DecodeRangeRequest(value)
	if err != nil {
		log.Error().Err(err).Msg("Dropping undecodable range request")
		metrics.WorkerMessages.WithLabelValues(outcomeDecodeError).Inc()
		return err
	}

	w.setState(StateProcessing)
	defer w.setState(StateIdle)

	log.Info().Msgf("Starting export for blocks %s", blockRange)
	if err := w.pipeline.RunFullExport(ctx, blockRange); err != nil {
		log.Error().Err(err).Msgf("Export failed for blocks %s", blockRange)
		metrics.WorkerMessages.WithLabelValues(outcomePipelineError).Inc()
		return fmt.Errorf("export failed for blocks %s: %w", blockRange, err)
	}

	key := uuid.New().String()
	if err := w.publisher.Publish(ctx, []byte(key), value); err != nil {
		log.Error().Err(err).Msgf("Failed to publish completion for blocks %s", blockRange)
		metrics.WorkerMessages.WithLabelValues(outcomePublishError).Inc()
		return fmt.Errorf("failed to publish completion for blocks %s: %w", blockRange, err)
	}

	metrics.WorkerMessages.WithLabelValues(outcomeCompleted).Inc()
	metrics.LastCompletedStartBlock.Set(float64(blockRange.Start))
	metrics.LastCompletedEndBlock.Set(float64(blockRange.End))
	log.Info().Str("key", key).Msgf("Completed export for blocks %s", blockRange)
	return nil
}
