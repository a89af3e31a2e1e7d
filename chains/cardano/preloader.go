package cardano

import (
	"context"
	"fmt"
	"math/big"

	"github.com/echovl/cardano-go"

	"github.com/tidewallet/core/types"
)

// Serialized size of a one-input two-output payment, used to quote the
// deterministic a*size+b fee before the exact transaction exists.
const estimatedTxSize = 300

type ChainData struct {
	Chain    types.Chain
	Slot     uint64
	Protocol *cardano.ProtocolParams
	Utxos    []cardano.UTxO
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
	return chain == types.ChainCardano
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	block, err := p.client.LatestBlock(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCardano, Err: err}
	}

	protocol, err := p.client.ProtocolParams(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCardano, Err: err}
	}

	utxos, err := p.client.AddressUTXOs(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCardano, Err: err}
	}
	if len(utxos) == 0 {
		return nil, fmt.Errorf("sender %s has no unspent outputs", params.From.Address)
	}

	// The fee schedule is deterministic, so every tier quotes the same
	// amount.
	fee := uint64(protocol.MinFeeB) + uint64(protocol.MinFeeA)*estimatedTxSize
	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainCardano, priority,
			new(big.Int).SetUint64(fee)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    types.ChainCardano,
			Slot:     uint64(block.Slot),
			Protocol: protocol,
			Utxos:    utxos,
		},
		Fees: fees,
	}, nil
}
