package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
server_port = 31001

[chains]
	[chains.ethereum]
	chain = "ethereum"
	block_time = 12
	rpc_url = "http://localhost:8545"
	tx_timeout = 60
	chain_id = 1
	use_gas_eip_1559 = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 31001, cfg.ServerPort)

	// The file's ethereum entry wins over the default.
	eth := cfg.ChainConfig(types.ChainEthereum)
	require.Equal(t, "http://localhost:8545", eth.RpcUrl)
	require.Equal(t, int64(60), eth.TxTimeout)

	// Chains the file does not mention get their defaults.
	doge := cfg.ChainConfig(types.ChainDoge)
	require.Equal(t, int64(1000), doge.MinimumByteFee)

	for _, chain := range types.AllChains {
		require.NotEmpty(t, cfg.ChainConfig(chain).RpcUrl, string(chain))
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Len(t, cfg.Chains, len(types.AllChains))
}

func TestConfigTemplateRoundTrip(t *testing.T) {
	cfg := &Config{
		DbHost:     "127.0.0.1",
		DbPort:     3306,
		DbUsername: "root",
		DbPassword: "password",
		DbSchema:   "wallet",
		ServerPort: 31001,
		Chains:     DefaultChains(),
	}

	tmpl, err := template.New("config").Parse(ConfigTemplate)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, tmpl.Execute(buf, cfg))

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.DbSchema, loaded.DbSchema)
	require.Equal(t, cfg.ServerPort, loaded.ServerPort)
	require.Equal(t, cfg.ChainConfig(types.ChainBitcoin).TxTimeout,
		loaded.ChainConfig(types.ChainBitcoin).TxTimeout)
}
