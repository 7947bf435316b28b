package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/etl/internal/common"
	"github.com/thirdweb-dev/etl/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// RunStage runs fetch, transform and write for every batch with at most
// maxWorkers batches in flight. The first failing batch stops the dispatch of
// new batches; batches already in flight run to completion and the first
// error is returned.
func RunStage[B any, R any, T any](
	ctx context.Context,
	name string,
	batches []B,
	maxWorkers int,
	fetch func(context.Context, B) (R, error),
	transform func(R) T,
	write func(context.Context, T) error,
) error {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, batch := range batches {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gCtx.Err() != nil {
				return nil
			}
			label := batchLabel(i, batch)
			raw, err := fetch(ctx, batch)
			if err != nil {
				return &common.FetchError{Stage: name, Batch: label, Err: err}
			}
			if err := write(ctx, transform(raw)); err != nil {
				return &common.SinkWriteError{Stage: name, Batch: label, Err: err}
			}
			metrics.BatchesProcessed.WithLabelValues(name).Inc()
			log.Debug().Str("stage", name).Msgf("Batch %s written", label)
			return nil
		})
	}

	err := g.Wait()
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("stage %s interrupted: %w", name, ctx.Err())
	}
	if err != nil {
		metrics.StageFailures.WithLabelValues(name).Inc()
		return err
	}
	log.Debug().Str("stage", name).Msgf("Wrote %d batches in %s", len(batches), time.Since(start))
	return nil
}

func batchLabel(index int, batch interface{}) string {
	if s, ok := batch.(fmt.Stringer); ok {
		return fmt.Sprintf("#%d (%s)", index, s.String())
	}
	return fmt.Sprintf("#%d", index)
}
