package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage metrics
var (
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "etl_stage_duration_seconds",
		Help:    "Wall clock duration of a pipeline stage",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"stage"})

	StageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_stage_failures_total",
		Help: "The number of pipeline stages that failed",
	}, []string{"stage"})

	StageSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_stage_skipped_total",
		Help: "The number of stages skipped because a checkpoint marked them complete",
	}, []string{"stage"})

	BatchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_batches_processed_total",
		Help: "The number of batches fetched, transformed and written",
	}, []string{"stage"})

	RowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_rows_written_total",
		Help: "The number of rows upserted into the sink",
	}, []string{"table"})
)

// Sink metrics
var (
	SinkInsertDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "etl_sink_insert_duration_seconds",
		Help:    "Time taken to upsert one batch into the sink",
		Buckets: prometheus.DefBuckets,
	}, []string{"table"})
)

// RPC metrics
var (
	RPCBatchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_rpc_batch_errors_total",
		Help: "The number of RPC batches that failed after all retries",
	}, []string{"method"})
)

// Worker metrics
var (
	WorkerMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_worker_messages_total",
		Help: "The number of range requests handled by outcome",
	}, []string{"outcome"})

	WorkerProcessing = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "etl_worker_processing",
		Help: "1 while the worker is processing a range request",
	})

	LastCompletedStartBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "etl_worker_last_completed_start_block",
		Help: "The start block of the last completed range",
	})

	LastCompletedEndBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "etl_worker_last_completed_end_block",
		Help: "The end block of the last completed range",
	})

	PublishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "etl_publish_duration_seconds",
		Help:    "Time taken to publish a completion event",
		Buckets: prometheus.DefBuckets,
	})
)
