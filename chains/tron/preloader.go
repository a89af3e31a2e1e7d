package tron

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/tidewallet/core/types"
)

const (
	// Bandwidth bytes a plain transfer occupies once signed.
	transferSizeBytes = 270

	// Defaults when the node omits the chain parameter.
	defaultBytePrice        = 1_000
	defaultCreateAccountFee = 1_100_000

	transactionLifetime = 10 * time.Minute
)

type ChainData struct {
	Chain         types.Chain
	RefBlockBytes string
	RefBlockHash  string
	Timestamp     int64
	Expiration    int64
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
	return chain == types.ChainTron
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	block, err := p.client.GetNowBlock()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}

	blockId, err := hex.DecodeString(block.BlockID)
	if err != nil || len(blockId) < 16 {
		return nil, fmt.Errorf("malformed block id %q", block.BlockID)
	}

	number := block.BlockHeader.RawData.Number
	refBlockBytes := []byte{byte(number >> 8), byte(number)}

	bytePrice, createFee := p.feeParameters()

	fee := int64(transferSizeBytes) * bytePrice
	destination, err := p.client.GetAccount(params.Destination)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}
	// Transfers to an address the chain has never seen also pay the
	// account-creation fee.
	if destination.Address == "" {
		fee += createFee
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainTron, priority, big.NewInt(fee)))
	}

	now := block.BlockHeader.RawData.Timestamp
	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:         types.ChainTron,
			RefBlockBytes: hex.EncodeToString(refBlockBytes),
			RefBlockHash:  hex.EncodeToString(blockId[8:16]),
			Timestamp:     now,
			Expiration:    now + transactionLifetime.Milliseconds(),
		},
		Fees: fees,
	}, nil
}

// PreloadStake covers freeze/unfreeze intents. Staking moves no
// bandwidth beyond the transaction itself, so the transfer sizing
// applies; the destination probe is skipped because funds stay with
// the owner.
func (p *Preloader) PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	block, err := p.client.GetNowBlock()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}

	blockId, err := hex.DecodeString(block.BlockID)
	if err != nil || len(blockId) < 16 {
		return nil, fmt.Errorf("malformed block id %q", block.BlockID)
	}

	number := block.BlockHeader.RawData.Number
	refBlockBytes := []byte{byte(number >> 8), byte(number)}

	bytePrice, _ := p.feeParameters()
	fee := int64(transferSizeBytes) * bytePrice

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewFee(types.ChainTron, priority, big.NewInt(fee)))
	}

	now := block.BlockHeader.RawData.Timestamp
	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:         types.ChainTron,
			RefBlockBytes: hex.EncodeToString(refBlockBytes),
			RefBlockHash:  hex.EncodeToString(blockId[8:16]),
			Timestamp:     now,
			Expiration:    now + transactionLifetime.Milliseconds(),
		},
		Fees: fees,
	}, nil
}

func (p *Preloader) feeParameters() (bytePrice, createFee int64) {
	bytePrice = defaultBytePrice
	createFee = defaultCreateAccountFee

	params, err := p.client.GetChainParameters()
	if err != nil {
		return bytePrice, createFee
	}

	var accountFee, contractFee int64 = -1, -1
	for _, param := range params.ChainParameter {
		switch param.Key {
		case "getTransactionFee":
			bytePrice = param.Value
		case "getCreateAccountFee":
			accountFee = param.Value
		case "getCreateNewAccountFeeInSystemContract":
			contractFee = param.Value
		}
	}
	if accountFee >= 0 && contractFee >= 0 {
		createFee = accountFee + contractFee
	}
	return bytePrice, createFee
}
