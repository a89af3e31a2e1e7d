package xrp

import (
	"context"
	"fmt"
	"math/big"

	"github.com/tidewallet/core/types"
)

// Base reserve an account must hold to exist on ledger, in drops.
const accountReserve = 10_000_000

type ChainData struct {
	Chain    types.Chain
	Sequence uint32
	// LastLedger bounds how long the transaction stays valid.
	LastLedger uint32
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
	return chain == types.ChainXrp
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	account, err := p.client.AccountInfo(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}
	if account.NotFound() {
		return nil, fmt.Errorf("sender account not funded")
	}

	// Sending less than the base reserve to an account that does not
	// exist yet would burn the payment.
	destination, err := p.client.AccountInfo(ctx, params.Destination)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}
	if destination.NotFound() && params.Value().Cmp(big.NewInt(accountReserve)) < 0 {
		return nil, types.ErrDestinationNotActive
	}

	fee, err := p.client.Fee(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}

	minimum, ok := new(big.Int).SetString(fee.Drops.MinimumFee, 10)
	if !ok {
		return nil, fmt.Errorf("malformed minimum fee %q", fee.Drops.MinimumFee)
	}
	openLedger, ok := new(big.Int).SetString(fee.Drops.OpenLedgerFee, 10)
	if !ok {
		return nil, fmt.Errorf("malformed open ledger fee %q", fee.Drops.OpenLedgerFee)
	}
	if openLedger.Cmp(minimum) < 0 {
		openLedger = minimum
	}

	fees := []*types.Fee{
		types.NewFee(types.ChainXrp, types.FeePrioritySlow, minimum),
		types.NewFee(types.ChainXrp, types.FeePriorityNormal, openLedger),
		types.NewFee(types.ChainXrp, types.FeePriorityFast,
			new(big.Int).Mul(openLedger, big.NewInt(2))),
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:      types.ChainXrp,
			Sequence:   account.AccountData.Sequence,
			LastLedger: account.LedgerCurrentIndex + 100,
		},
		Fees: fees,
	}, nil
}
