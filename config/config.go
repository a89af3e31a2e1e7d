package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tidewallet/core/types"
)

// Chain holds the static per-chain parameters the engine needs. The
// per-chain tuning constants (timeouts, fee floors, gas multipliers)
// are deliberately centralized here instead of being scattered through
// the adapters.
type Chain struct {
	Chain     string `toml:"chain" json:"chain"`
	BlockTime int    `toml:"block_time" json:"block_time"`
	RpcUrl    string `toml:"rpc_url" json:"rpc_url"`

	// TxTimeout bounds how long a broadcast transaction may stay
	// pending before the reconciliation loop fails it, in seconds.
	TxTimeout int64 `toml:"tx_timeout" json:"tx_timeout"`

	// MinimumByteFee is the floor for UTXO chains, in the chain's
	// smallest unit per byte.
	MinimumByteFee int64 `toml:"minimum_byte_fee" json:"minimum_byte_fee"`

	// NewAccountGasMultiplier scales the funded-account gas limit when
	// the destination account does not exist yet on sequence chains.
	NewAccountGasMultiplier int64 `toml:"new_account_gas_multiplier" json:"new_account_gas_multiplier"`

	ExplorerUrl string `toml:"explorer_url" json:"explorer_url"`

	// EVM only.
	ChainId       int64 `toml:"chain_id" json:"chain_id"`
	UseGasEip1559 bool  `toml:"use_gas_eip_1559" json:"use_gas_eip_1559"`
}

type Config struct {
	DbHost     string `toml:"db_host"`
	DbPort     int    `toml:"db_port"`
	DbUsername string `toml:"db_username"`
	DbPassword string `toml:"db_password"`
	DbSchema   string `toml:"db_schema"`

	ServerPort int `toml:"server_port"`

	Chains map[string]Chain `toml:"chains"`
}

// Load reads a TOML config file and fills defaults for any chain the
// file does not mention.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Chains == nil {
		cfg.Chains = make(map[string]Chain)
	}
	for name, def := range DefaultChains() {
		if _, ok := cfg.Chains[name]; !ok {
			cfg.Chains[name] = def
		}
	}
	return cfg, nil
}

// ChainConfig returns the config for a chain, falling back to the
// built-in defaults.
func (c *Config) ChainConfig(chain types.Chain) Chain {
	if cfg, ok := c.Chains[string(chain)]; ok {
		return cfg
	}
	return DefaultChains()[string(chain)]
}
