package stellar

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidewallet/core/types"
)

// Minimum balance a fresh account must receive, in stroops.
const accountReserve = 10_000_000

type ChainData struct {
	Chain    types.Chain
	Sequence int64
	// CreateDestination selects the create_account operation for a
	// destination that does not exist on ledger yet.
	CreateDestination bool
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
	return chain == types.ChainStellar
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	account, err := p.client.GetAccount(params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}
	if account.NotFound() {
		return nil, fmt.Errorf("sender account not funded")
	}

	sequence, err := strconv.ParseInt(account.Sequence, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sequence %q: %w", account.Sequence, err)
	}

	destination, err := p.client.GetAccount(params.Destination)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}
	createDestination := destination.NotFound()
	if createDestination && params.Value().Cmp(big.NewInt(accountReserve)) < 0 {
		return nil, types.ErrDestinationNotActive
	}

	stats, err := p.client.FeeStats()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}

	base, err := parseFee(stats.LastLedgerBaseFee)
	if err != nil {
		return nil, err
	}
	p50, err := parseFee(stats.FeeCharged.P50)
	if err != nil {
		return nil, err
	}
	p90, err := parseFee(stats.FeeCharged.P90)
	if err != nil {
		return nil, err
	}
	if p50.Cmp(base) < 0 {
		p50 = base
	}
	if p90.Cmp(p50) < 0 {
		p90 = p50
	}

	fees := []*types.Fee{
		types.NewFee(types.ChainStellar, types.FeePrioritySlow, base),
		types.NewFee(types.ChainStellar, types.FeePriorityNormal, p50),
		types.NewFee(types.ChainStellar, types.FeePriorityFast, p90),
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:             types.ChainStellar,
			Sequence:          sequence,
			CreateDestination: createDestination,
		},
		Fees: fees,
	}, nil
}

// PreloadActivate funds a fresh account with the base reserve. The
// destination must not exist yet; activating a live account is a no-op
// the caller should not pay for.
func (p *Preloader) PreloadActivate(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	destination, err := p.client.GetAccount(params.Destination)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}
	if !destination.NotFound() {
		return nil, fmt.Errorf("destination %s is already active", params.Destination)
	}
	if params.Value().Cmp(big.NewInt(accountReserve)) < 0 {
		return nil, types.ErrDestinationNotActive
	}
	return p.PreloadNativeTransfer(ctx, params)
}

func parseFee(s string) (*big.Int, error) {
	fee, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed fee %q", s)
	}
	return fee, nil
}
