package sui

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidewallet/core/types"
)

const (
	// Gas units a split-and-transfer programmable transaction consumes,
	// with storage headroom.
	transferGasUnits = 3_000

	maxGasCoins = 16
)

// GasCoin is one coin object pledged as gas payment.
type GasCoin struct {
	ObjectId string
	Version  uint64
	Digest   string
}

type ChainData struct {
	Chain    types.Chain
	GasPrice uint64
	Coins    []GasCoin
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
	return chain == types.ChainSui
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	price, err := p.client.ReferenceGasPrice(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSui, Err: err}
	}

	page, err := p.client.GetCoins(ctx, params.From.Address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSui, Err: err}
	}
	if len(page.Data) == 0 {
		return nil, fmt.Errorf("sender %s owns no gas coins", params.From.Address)
	}

	coins := make([]GasCoin, 0, maxGasCoins)
	for _, coin := range page.Data {
		if len(coins) == maxGasCoins {
			break
		}
		version, err := strconv.ParseUint(coin.Version, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed coin version %q", coin.Version)
		}
		coins = append(coins, GasCoin{
			ObjectId: coin.CoinObjectId,
			Version:  version,
			Digest:   coin.Digest,
		})
	}

	units := big.NewInt(transferGasUnits)
	fees := []*types.Fee{
		types.NewGasFee(types.ChainSui, types.FeePrioritySlow, new(big.Int).SetUint64(price), units),
		types.NewGasFee(types.ChainSui, types.FeePriorityNormal, new(big.Int).SetUint64(price), units),
		types.NewGasFee(types.ChainSui, types.FeePriorityFast, new(big.Int).SetUint64(2*price), units),
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    types.ChainSui,
			GasPrice: price,
			Coins:    coins,
		},
		Fees: fees,
	}, nil
}
