package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/common"
)

func TestExportSettingsPreferChangedFlags(t *testing.T) {
	previous := config.Cfg
	t.Cleanup(func() { config.Cfg = previous })

	config.Cfg.RPC = config.RPCConfig{URL: "http://from-env:8545", Chain: "ethereum"}
	config.Cfg.Storage = config.StorageConfig{DSN: "postgresql://env/db"}
	config.Cfg.Export = config.ExportConfig{BatchSize: 100, MaxWorkers: 1}

	require.NoError(t, exportAllCmd.Flags().Set("start-block", "100"))
	require.NoError(t, exportAllCmd.Flags().Set("end-block", "104"))
	require.NoError(t, exportAllCmd.Flags().Set("max-workers", "4"))
	require.NoError(t, exportAllCmd.Flags().Set("sink", "memory://"))

	blockRange, rpcCfg, storageCfg, exportCfg := exportSettings(exportAllCmd)

	assert.Equal(t, common.BlockRange{Start: 100, End: 104}, blockRange)
	assert.Equal(t, "http://from-env:8545", rpcCfg.URL)
	assert.Equal(t, "memory://", storageCfg.DSN)
	assert.Equal(t, 100, exportCfg.BatchSize)
	assert.Equal(t, 4, exportCfg.MaxWorkers)
}

func TestExportCommandsShareFlags(t *testing.T) {
	for _, cmd := range []string{"export_all", "export_blocks_and_transactions"} {
		found, _, err := rootCmd.Find([]string{cmd})
		require.NoError(t, err)
		for _, short := range []string{"s", "e", "b", "p", "w", "d", "c"} {
			assert.NotNil(t, found.Flags().ShorthandLookup(short), "%s -%s", cmd, short)
		}
	}
}
