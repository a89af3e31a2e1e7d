package cosmos

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidewallet/core/types"
)

const (
	transferGasLimit = 200_000
	stakeGasLimit    = 600_000
)

// Gas prices in thousandths of the base denom per gas unit. The hub does
// not expose a fee oracle; validators publish static minimums instead.
var gasPriceMilli = map[types.FeePriority]int64{
	types.FeePrioritySlow:   25,
	types.FeePriorityNormal: 50,
	types.FeePriorityFast:   100,
}

type ChainData struct {
	Chain         types.Chain
	ChainId       string
	AccountNumber uint64
	Sequence      uint64
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

type Preloader struct {
	client  Client
	chainId string
	denom   string
}

func NewPreloader(client Client, chainId, denom string) *Preloader {
	return &Preloader{client: client, chainId: chainId, denom: denom}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainCosmos
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(params, transferGasLimit)
}

func (p *Preloader) PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(params, stakeGasLimit)
}

func (p *Preloader) preload(params *types.ConfirmParams, gasLimit int64) (*types.SignerParams, error) {
	account, err := p.client.GetAccount(params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCosmos, Err: err}
	}

	var accountNumber, sequence uint64
	if !account.NotFound() {
		accountNumber, err = strconv.ParseUint(account.Account.AccountNumber, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid account number %q: %w", account.Account.AccountNumber, err)
		}
		sequence, err = strconv.ParseUint(account.Account.Sequence, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sequence %q: %w", account.Account.Sequence, err)
		}
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		amount := gasLimit * gasPriceMilli[priority] / 1000
		fee := types.NewFee(types.ChainCosmos, priority, big.NewInt(amount))
		fee.GasLimit = big.NewInt(gasLimit)
		fees = append(fees, fee)
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:         types.ChainCosmos,
			ChainId:       p.chainId,
			AccountNumber: accountNumber,
			Sequence:      sequence,
		},
		Fees: fees,
	}, nil
}
