package ton

import (
	"context"
	"math/big"

	"github.com/tidewallet/core/types"
)

// Static forwarding-fee quotes in nanoton. Value transfers on the
// basechain price by gas and forwarding fees that barely move; the
// tiers widen the margin rather than tracking an oracle.
var feeTiers = map[types.FeePriority]int64{
	types.FeePrioritySlow:   5_000_000,
	types.FeePriorityNormal: 10_000_000,
	types.FeePriorityFast:   20_000_000,
}

type ChainData struct {
	Chain types.Chain
	Seqno uint32
	// Deployed is false for a wallet that has not published its
	// contract code yet; its first message must carry the state init.
	Deployed bool
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

type Preloader struct {
	client Client
}

func NewPreloader(client Client) *Preloader {
	return &Preloader{client: client}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainTon
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	info, err := p.client.GetAddressInfo(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTon, Err: err}
	}

	seqno, err := p.client.Seqno(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTon, Err: err}
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainTon, priority,
			big.NewInt(feeTiers[priority])))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    types.ChainTon,
			Seqno:    seqno,
			Deployed: info.State == "active",
		},
		Fees: fees,
	}, nil
}
