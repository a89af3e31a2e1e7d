package evm

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

// ChainData for EVM chains: the pending nonce and the chain id the
// transaction will be signed against.
type ChainData struct {
	Chain   types.Chain
	ChainId int64
	Nonce   uint64
	// Call data for token transfers, swaps and approvals, hex encoded.
	CallData string
	// Recipient of the raw transaction: destination for native
	// transfers, contract address otherwise.
	TxTo string
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

type Preloader struct {
	chain  types.Chain
	cfg    config.Chain
	client EthClient
}

func NewPreloader(chain types.Chain, cfg config.Chain, client EthClient) *Preloader {
	return &Preloader{
		chain:  chain,
		cfg:    cfg,
		client: client,
	}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return p.chain == chain
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return p.preload(ctx, params, params.Destination, nil, params.Value())
}

func (p *Preloader) PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	callData := EncodeTokenTransfer(params.Destination, params.Value())
	return p.preload(ctx, params, params.AssetId.TokenId, callData, big.NewInt(0))
}

func (p *Preloader) PreloadSwap(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	callData, err := decodeHexData(params.CallData)
	if err != nil {
		return nil, fmt.Errorf("malformed swap call data: %w", err)
	}

	to := params.Contract
	if to == "" {
		to = params.Destination
	}
	value := big.NewInt(0)
	if params.AssetId.IsNative() {
		value = params.Value()
	}
	return p.preload(ctx, params, to, callData, value)
}

func (p *Preloader) preload(ctx context.Context, params *types.ConfirmParams,
	to string, callData []byte, txValue *big.Int) (*types.SignerParams, error) {
	from := common.HexToAddress(params.From.Address)

	nonce, err := p.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: p.chain, Err: err}
	}

	base, tip, err := p.fetchGasOracle(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: p.chain, Err: err}
	}

	gasLimit, err := p.estimateGasLimit(ctx, from, to, callData, txValue)
	if err != nil {
		return nil, err
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    p.chain,
			ChainId:  p.cfg.ChainId,
			Nonce:    nonce,
			CallData: hex.EncodeToString(callData),
			TxTo:     to,
		},
		Fees: CalculateFees(p.chain, base, tip, gasLimit),
	}, nil
}

// estimateGasLimit asks the node to simulate the call. Estimates other
// than the fixed native-transfer cost get a 50% safety margin: contract
// execution cost can drift between estimation and inclusion.
func (p *Preloader) estimateGasLimit(ctx context.Context, from common.Address,
	to string, callData []byte, value *big.Int) (uint64, error) {
	if len(callData) == 0 {
		return nativeTransferGasLimit, nil
	}

	toAddr := common.HexToAddress(to)
	estimated, err := p.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &toAddr,
		Value: value,
		Data:  callData,
	})
	if err != nil {
		return 0, &types.ServiceUnavailable{Chain: p.chain, Err: err}
	}

	if estimated == nativeTransferGasLimit {
		return estimated, nil
	}
	return estimated + estimated/2, nil
}

// EncodeTokenTransfer builds the ERC-20 transfer(address,uint256) call.
func EncodeTokenTransfer(recipient string, amount *big.Int) []byte {
	selector := []byte{0xa9, 0x05, 0x9c, 0xbb}

	data := make([]byte, 0, 4+64)
	data = append(data, selector...)
	data = append(data, common.LeftPadBytes(common.HexToAddress(recipient).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

func decodeHexData(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
