package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/orchestrator"
	"github.com/thirdweb-dev/etl/internal/publisher"
	"github.com/thirdweb-dev/etl/internal/rpc"
	"github.com/thirdweb-dev/etl/internal/server"
	"github.com/thirdweb-dev/etl/internal/storage"
	"github.com/thirdweb-dev/etl/internal/subscriber"
	"github.com/thirdweb-dev/etl/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "kafka_worker",
	Short: "Export every block range requested on the inbound topic",
	Long:  "Consumes range requests from Kafka, exports every stage for each range and publishes the request to the completion topic once the range is fully exported.",
	Run:   RunWorker,
}

func RunWorker(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, section := range []interface{}{config.Cfg.RPC, config.Cfg.Kafka, config.Cfg.Storage, config.Cfg.Worker} {
		if err := config.Validate(section); err != nil {
			log.Fatal().Err(err).Msg("Invalid worker settings")
		}
	}

	rpcClient, err := rpc.Initialize(ctx, config.Cfg.RPC)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer rpcClient.Close()

	sink, err := storage.NewSink(ctx, config.Cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize sink")
	}
	defer sink.Close()

	checkpoints, err := storage.NewCheckpointStorage(ctx, config.Cfg.Checkpoint, config.Cfg.Storage.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize checkpoint storage")
	}
	if checkpoints != nil {
		defer checkpoints.Close()
	}

	pipeline := orchestrator.NewPipeline(rpcClient, sink,
		orchestrator.WithBatchSize(config.Cfg.Worker.BatchSize),
		orchestrator.WithMaxWorkers(config.Cfg.Worker.MaxWorkers),
		orchestrator.WithCheckpointStorage(checkpoints),
	)

	pub, err := publisher.NewPublisher(ctx, config.Cfg.Kafka)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize publisher")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close publisher")
		}
	}()

	sub, err := subscriber.NewSubscriber(ctx, config.Cfg.Kafka)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize subscriber")
	}

	w := worker.NewWorker(pipeline, pub)

	if config.Cfg.Server.Enabled {
		srv := server.NewServer(config.Cfg.Server, func() string { return w.State().String() })
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Error().Err(err).Msg("Ops server error")
			}
		}()
	}

	log.Info().Msgf("Starting kafka worker on topic %s", config.Cfg.Kafka.ConsumeTopic)
	if err := sub.Run(ctx, w.HandleRecord); err != nil {
		log.Error().Err(err).Msg("Subscriber stopped with error")
	}

	if err := sub.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close subscriber")
	}
	log.Info().Msg("Kafka worker stopped")
}
