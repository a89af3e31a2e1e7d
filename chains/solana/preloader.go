package solana

import (
	"context"
	"fmt"
	"math/big"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

// Every Solana transaction pays a fixed base fee per signature; priority
// is bought with a per-compute-unit price on top.
const (
	baseFeeLamports     = 5_000
	transferComputeUnit = 450
)

// ChainData for Solana: the recent blockhash the transaction must
// reference and the per-tier compute-unit prices.
type ChainData struct {
	Chain      types.Chain
	Blockhash  string
	UnitPrices map[types.FeePriority]uint64
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

type Preloader struct {
	cfg    config.Chain
	client RpcClient
}

func NewPreloader(cfg config.Chain, client RpcClient) *Preloader {
	return &Preloader{
		cfg:    cfg,
		client: client,
	}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSolana
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(ctx, params)
}

func (p *Preloader) PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(ctx, params)
}

func (p *Preloader) PreloadSwap(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(ctx, params)
}

func (p *Preloader) PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	if params.Validator == "" {
		return nil, fmt.Errorf("stake intent without a vote account")
	}
	return p.preload(ctx, params)
}

func (p *Preloader) preload(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	blockhash, err := p.client.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}

	priorityFee, err := p.client.GetRecentPrioritizationFee(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}

	unitPrices := map[types.FeePriority]uint64{
		types.FeePrioritySlow:   priorityFee / 2,
		types.FeePriorityNormal: priorityFee,
		types.FeePriorityFast:   priorityFee * 2,
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		// unit price is in micro-lamports per compute unit.
		priorityLamports := unitPrices[priority] * transferComputeUnit / 1_000_000
		fees = append(fees, types.NewFee(types.ChainSolana, priority,
			big.NewInt(int64(baseFeeLamports+priorityLamports))))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:      types.ChainSolana,
			Blockhash:  blockhash.String(),
			UnitPrices: unitPrices,
		},
		Fees: fees,
	}, nil
}
