package polkadot

import (
	"context"
	"fmt"
	"math/big"

	"github.com/tidewallet/core/types"
)

type ChainData struct {
	Chain types.Chain
	Nonce uint64
	// Mortality checkpoint: the finalized block the era is anchored at.
	BlockHash   string
	BlockNumber uint64
	GenesisHash string
	SpecVersion uint32
	TxVersion   uint32
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
	return chain == types.ChainPolkadot
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	nonce, err := p.client.AccountNextIndex(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}

	head, err := p.client.FinalizedHead(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	header, err := p.client.Header(ctx, head)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	blockNumber, err := header.BlockNumber()
	if err != nil {
		return nil, err
	}

	genesisHash, err := p.client.BlockHash(ctx, 0)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	version, err := p.client.RuntimeVersion(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}

	chainData := &ChainData{
		Chain:       types.ChainPolkadot,
		Nonce:       nonce,
		BlockHash:   head,
		BlockNumber: blockNumber,
		GenesisHash: genesisHash,
		SpecVersion: version.SpecVersion,
		TxVersion:   version.TransactionVersion,
	}

	destPub, err := ss58Decode(params.Destination)
	if err != nil {
		return nil, err
	}
	info, err := p.client.PaymentQueryInfo(ctx,
		feeProbeExtrinsic(chainData, destPub, params.Value()))
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	partialFee, ok := new(big.Int).SetString(info.PartialFee, 10)
	if !ok {
		return nil, fmt.Errorf("malformed partial fee %q", info.PartialFee)
	}

	// Inclusion fees do not move with priority; all tiers quote the
	// runtime's partial fee.
	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainPolkadot, priority,
			new(big.Int).Set(partialFee)))
	}

	return &types.SignerParams{
		Input:     params,
		Owner:     params.From.Address,
		ChainData: chainData,
		Fees:      fees,
	}, nil
}
