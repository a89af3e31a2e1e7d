package config

// DefaultChains is the built-in per-chain parameter table. Values can be
// overridden per deployment through the TOML config; the tuning
// constants here mirror the production defaults and are not derived
// from any formula.
func DefaultChains() map[string]Chain {
	return map[string]Chain{
		"bitcoin": {
			Chain:          "bitcoin",
			BlockTime:      600,
			RpcUrl:         "https://bitcoin.example-rpc.com",
			TxTimeout:      14400,
			MinimumByteFee: 1,
			ExplorerUrl:    "https://blockchair.com/bitcoin",
		},
		"litecoin": {
			Chain:          "litecoin",
			BlockTime:      150,
			RpcUrl:         "https://litecoin.example-rpc.com",
			TxTimeout:      7200,
			MinimumByteFee: 5,
			ExplorerUrl:    "https://blockchair.com/litecoin",
		},
		"doge": {
			Chain:          "doge",
			BlockTime:      60,
			RpcUrl:         "https://doge.example-rpc.com",
			TxTimeout:      3600,
			MinimumByteFee: 1000,
			ExplorerUrl:    "https://blockchair.com/dogecoin",
		},
		"ethereum": {
			Chain:         "ethereum",
			BlockTime:     12,
			RpcUrl:        "https://eth.example-rpc.com",
			TxTimeout:     1800,
			ChainId:       1,
			UseGasEip1559: true,
			ExplorerUrl:   "https://etherscan.io",
		},
		"smartchain": {
			Chain:         "smartchain",
			BlockTime:     3,
			RpcUrl:        "https://bsc.example-rpc.com",
			TxTimeout:     600,
			ChainId:       56,
			UseGasEip1559: false,
			ExplorerUrl:   "https://bscscan.com",
		},
		"solana": {
			Chain:       "solana",
			BlockTime:   1,
			RpcUrl:      "https://solana.example-rpc.com",
			TxTimeout:   300,
			ExplorerUrl: "https://solscan.io",
		},
		"cosmos": {
			Chain:       "cosmos",
			BlockTime:   6,
			RpcUrl:      "https://cosmos.example-rpc.com",
			TxTimeout:   600,
			ExplorerUrl: "https://mintscan.io/cosmos",
		},
		"aptos": {
			Chain:                   "aptos",
			BlockTime:               4,
			RpcUrl:                  "https://aptos.example-rpc.com",
			TxTimeout:               600,
			NewAccountGasMultiplier: 100,
			ExplorerUrl:             "https://explorer.aptoslabs.com",
		},
		"sui": {
			Chain:       "sui",
			BlockTime:   3,
			RpcUrl:      "https://sui.example-rpc.com",
			TxTimeout:   300,
			ExplorerUrl: "https://suiscan.xyz",
		},
		"ton": {
			Chain:       "ton",
			BlockTime:   5,
			RpcUrl:      "https://ton.example-rpc.com",
			TxTimeout:   600,
			ExplorerUrl: "https://tonviewer.com",
		},
		"tron": {
			Chain:       "tron",
			BlockTime:   3,
			RpcUrl:      "https://tron.example-rpc.com",
			TxTimeout:   600,
			ExplorerUrl: "https://tronscan.org",
		},
		"near": {
			Chain:                   "near",
			BlockTime:               1,
			RpcUrl:                  "https://near.example-rpc.com",
			TxTimeout:               300,
			NewAccountGasMultiplier: 100,
			ExplorerUrl:             "https://nearblocks.io",
		},
		"polkadot": {
			Chain:       "polkadot",
			BlockTime:   6,
			RpcUrl:      "https://polkadot.example-rpc.com",
			TxTimeout:   900,
			ExplorerUrl: "https://polkadot.subscan.io",
		},
		"stellar": {
			Chain:       "stellar",
			BlockTime:   5,
			RpcUrl:      "https://horizon.stellar.org",
			TxTimeout:   300,
			ExplorerUrl: "https://stellar.expert",
		},
		"xrp": {
			Chain:       "xrp",
			BlockTime:   4,
			RpcUrl:      "https://xrp.example-rpc.com",
			TxTimeout:   300,
			ExplorerUrl: "https://xrpscan.com",
		},
		"algorand": {
			Chain:       "algorand",
			BlockTime:   3,
			RpcUrl:      "https://algorand.example-rpc.com",
			TxTimeout:   300,
			ExplorerUrl: "https://allo.info",
		},
		"cardano": {
			Chain:       "cardano",
			BlockTime:   20,
			RpcUrl:      "https://cardano-mainnet.blockfrost.io/api/v0",
			TxTimeout:   3600,
			ExplorerUrl: "https://cardanoscan.io",
		},
		"hypercore": {
			Chain:       "hypercore",
			BlockTime:   1,
			RpcUrl:      "https://api.hyperliquid.xyz",
			TxTimeout:   120,
			ExplorerUrl: "https://app.hyperliquid.xyz/explorer",
		},
	}
}
