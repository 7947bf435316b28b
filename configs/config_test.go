package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromFile(t *testing.T, contents string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	require.NoError(t, LoadConfig(path))
}

func TestLoadConfigDefaults(t *testing.T) {
	loadFromFile(t, "log:\n  level: debug\n")

	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.Equal(t, DefaultProviderURI, Cfg.RPC.URL)
	assert.Equal(t, DefaultStorageDSN, Cfg.Storage.DSN)
	assert.Equal(t, "eth-block-batch", Cfg.Kafka.ConsumeTopic)
	assert.Equal(t, "eth-etl-block-batch-completed", Cfg.Kafka.ProduceTopic)
	assert.Equal(t, "ethereum-etl", Cfg.Kafka.GroupID)
	assert.Equal(t, 1000, Cfg.Kafka.PollTimeout)
	assert.Equal(t, 1800000, Cfg.Kafka.RebalanceTimeout)
	assert.Equal(t, 1, Cfg.Worker.BatchSize)
	assert.Equal(t, 1, Cfg.Worker.MaxWorkers)
	assert.Equal(t, 100, Cfg.Export.BatchSize)
}

func TestLoadConfigLegacyEnvAliases(t *testing.T) {
	t.Setenv("KAFKA_URI", "broker-1:9092")
	t.Setenv("ETH_FULL_RPC_URI", "ws://node:8546")
	t.Setenv("DB_CONNSTRING", "clickhouse://ch:9000/eth")

	loadFromFile(t, "")

	assert.Equal(t, "broker-1:9092", Cfg.Kafka.Brokers)
	assert.Equal(t, "ws://node:8546", Cfg.RPC.URL)
	assert.Equal(t, "clickhouse://ch:9000/eth", Cfg.Storage.DSN)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(ExportConfig{BatchSize: 1, MaxWorkers: 1}))
	assert.Error(t, Validate(ExportConfig{BatchSize: 0, MaxWorkers: 1}))
	assert.Error(t, Validate(KafkaConfig{Brokers: "localhost:9092"}))
}

func TestProviderURIForChain(t *testing.T) {
	assert.Equal(t, DefaultClassicProviderURI, ProviderURIForChain("classic", DefaultProviderURI))
	assert.Equal(t, "http://localhost:8545", ProviderURIForChain("classic", "http://localhost:8545"))
	assert.Equal(t, DefaultProviderURI, ProviderURIForChain("ethereum", DefaultProviderURI))
}
