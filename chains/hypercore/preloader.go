package hypercore

import (
	"context"
	"math/big"
	"time"

	"github.com/tidewallet/core/types"
)

type ChainData struct {
	Chain types.Chain
	// Nonce in wall-clock milliseconds; the exchange requires it to sit
	// inside a short recency window.
	Time uint64
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
	return chain == types.ChainHyperCore
}

// PreloadNativeTransfer needs no chain reads: sends are gasless and the
// nonce is the current timestamp.
func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainHyperCore, priority, big.NewInt(0)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain: types.ChainHyperCore,
			Time:  uint64(time.Now().UnixMilli()),
		},
		Fees: fees,
	}, nil
}
