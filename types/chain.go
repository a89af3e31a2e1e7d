package types

// Chain identifies a supported network. The value is a stable string
// identifier used in config files, transaction ids and the database.
type Chain string

const (
	ChainBitcoin    Chain = "bitcoin"
	ChainLitecoin   Chain = "litecoin"
	ChainDoge       Chain = "doge"
	ChainEthereum   Chain = "ethereum"
	ChainSmartChain Chain = "smartchain"
	ChainSolana     Chain = "solana"
	ChainCosmos     Chain = "cosmos"
	ChainAptos      Chain = "aptos"
	ChainSui        Chain = "sui"
	ChainTon        Chain = "ton"
	ChainTron       Chain = "tron"
	ChainNear       Chain = "near"
	ChainPolkadot   Chain = "polkadot"
	ChainStellar    Chain = "stellar"
	ChainXrp        Chain = "xrp"
	ChainAlgorand   Chain = "algorand"
	ChainCardano    Chain = "cardano"
	ChainHyperCore  Chain = "hypercore"
)

// AllChains lists every network the engine ships adapters for.
var AllChains = []Chain{
	ChainBitcoin,
	ChainLitecoin,
	ChainDoge,
	ChainEthereum,
	ChainSmartChain,
	ChainSolana,
	ChainCosmos,
	ChainAptos,
	ChainSui,
	ChainTon,
	ChainTron,
	ChainNear,
	ChainPolkadot,
	ChainStellar,
	ChainXrp,
	ChainAlgorand,
	ChainCardano,
	ChainHyperCore,
}

// UtxoChains are the Bitcoin-like networks served by the bitcoin adapter.
var UtxoChains = []Chain{ChainBitcoin, ChainLitecoin, ChainDoge}

// EvmChains are the networks served by the evm adapter.
var EvmChains = []Chain{ChainEthereum, ChainSmartChain}

func (c Chain) String() string {
	return string(c)
}

func (c Chain) IsUtxo() bool {
	for _, chain := range UtxoChains {
		if chain == c {
			return true
		}
	}
	return false
}

func (c Chain) IsEvm() bool {
	for _, chain := range EvmChains {
		if chain == c {
			return true
		}
	}
	return false
}

// Account is a chain-qualified address owned by the user. PubKey is set
// for chains whose transaction envelope carries the sender public key.
type Account struct {
	Chain   Chain
	Address string
	PubKey  []byte
}
