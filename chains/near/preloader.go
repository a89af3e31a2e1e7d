package near

import (
	"context"
	"math/big"

	"github.com/mr-tron/base58"

	"github.com/tidewallet/core/types"
)

// Transfers burn a flat amount of gas; the oracle only moves the price.
const transferGas = 450_000_000_000

type ChainData struct {
	Chain     types.Chain
	Nonce     uint64
	BlockHash string
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
	return chain == types.ChainNear
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	publicKey := "ed25519:" + base58.Encode(params.From.PubKey)

	key, err := p.client.ViewAccessKey(ctx, params.From.Address, publicKey)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
	}

	// A key the chain has never seen starts at nonce 0; the block hash
	// still has to be live, so fetch it separately in that case.
	blockHash := key.BlockHash
	var nonce uint64
	if key.NotFound() {
		block, err := p.client.LatestBlock(ctx)
		if err != nil {
			return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
		}
		blockHash = block.Header.Hash
	} else {
		nonce = key.Nonce
	}

	gasPrice, err := p.client.GasPrice(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		price := new(big.Int).Set(gasPrice)
		if priority == types.FeePriorityFast {
			price.Mul(price, big.NewInt(2))
		}
		fees = append(fees, types.NewGasFee(types.ChainNear, priority,
			price, big.NewInt(transferGas)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:     types.ChainNear,
			Nonce:     nonce,
			BlockHash: blockHash,
		},
		Fees: fees,
	}, nil
}
