package algorand

import (
	"context"
	"math/big"

	"github.com/tidewallet/core/types"
)

// Rounds a transaction stays valid after its first-valid round. The
// protocol caps the window at 1000.
const validityWindow = 1000

type ChainData struct {
	Chain       types.Chain
	GenesisId   string
	GenesisHash string
	FirstValid  uint64
	LastValid   uint64
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
	return chain == types.ChainAlgorand
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	suggested, err := p.client.TransactionParams()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAlgorand, Err: err}
	}

	minFee := suggested.MinFee
	if minFee == 0 {
		minFee = 1000
	}

	// Fee-per-byte is zero outside congestion, leaving the flat minimum
	// fee for every tier.
	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainAlgorand, priority,
			new(big.Int).SetUint64(minFee)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:       types.ChainAlgorand,
			GenesisId:   suggested.GenesisId,
			GenesisHash: suggested.GenesisHash,
			FirstValid:  suggested.LastRound,
			LastValid:   suggested.LastRound + validityWindow,
		},
		Fees: fees,
	}, nil
}
