package bitcoin

import (
	"context"
	"math/big"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

// ChainData bridges the preloader to the sign client for the Bitcoin
// family: the spendable UTXO set plus the per-tier byte-fee table.
type ChainData struct {
	Chain    types.Chain
	Utxos    []Utxo
	ByteFees map[types.FeePriority]*big.Int
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

// Preloader serves one Bitcoin-family chain. The same implementation
// covers Bitcoin, Litecoin and Doge; per-chain behavior (fee floors,
// confirmation targets) comes from the config table.
type Preloader struct {
	chain  types.Chain
	cfg    config.Chain
	client Client
}

func NewPreloader(chain types.Chain, cfg config.Chain, client Client) *Preloader {
	return &Preloader{
		chain:  chain,
		cfg:    cfg,
		client: client,
	}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return p.chain == chain
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	utxos, err := p.client.GetUtxos(params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: p.chain, Err: err}
	}

	rates := make(map[types.FeePriority]*big.Int, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		perKb, err := p.client.EstimateFee(priorityBlocks[priority])
		if err != nil {
			return nil, &types.ServiceUnavailable{Chain: p.chain, Err: err}
		}
		rates[priority] = PerByteRate(perKb, p.cfg.MinimumByteFee)
	}

	fees, err := CalculateFees(p.cfg, p.chain, rates, utxos, params.Value(), params.MaxAmount)
	if err != nil {
		return nil, err
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    p.chain,
			Utxos:    utxos,
			ByteFees: rates,
		},
		Fees: fees,
	}, nil
}
