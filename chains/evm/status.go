package evm

import (
	"context"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/tidewallet/core/types"
)

type StatusClient struct {
	chain  types.Chain
	client EthClient
}

func NewStatusClient(chain types.Chain, client EthClient) *StatusClient {
	return &StatusClient{
		chain:  chain,
		client: client,
	}
}

func (s *StatusClient) SupportsChain(chain types.Chain) bool {
	return s.chain == chain
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	receipt, err := s.client.TransactionReceipt(ctx, common.HexToHash(req.Hash))
	if err != nil {
		// Not-found means not yet included; anything else is transient.
		if err == ethereum.NotFound || strings.Contains(err.Error(), "not found") {
			return &types.TransactionChanges{State: types.StatePending}, nil
		}
		return nil, &types.ServiceUnavailable{Chain: s.chain, Err: err}
	}

	if receipt == nil || receipt.BlockNumber == nil {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	changes := &types.TransactionChanges{}
	switch receipt.Status {
	case ethtypes.ReceiptStatusSuccessful:
		changes.State = types.StateConfirmed
	default:
		// Included but failed execution: the EVM distinguishes inclusion
		// from success.
		changes.State = types.StateReverted
	}

	// EIP-1559 settles the effective price post-inclusion; store the
	// real fee instead of the quote.
	if receipt.EffectiveGasPrice != nil {
		changes.Fee = new(big.Int).Mul(receipt.EffectiveGasPrice,
			new(big.Int).SetUint64(receipt.GasUsed))
	}

	return changes, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	height, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: s.chain, Err: err}
	}
	chainId, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: s.chain, Err: err}
	}

	return &types.NodeStatus{
		Chain:         s.chain,
		ChainId:       strconv.FormatInt(chainId.Int64(), 10),
		LatestBlock:   new(big.Int).SetUint64(height),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}

type BalanceClient struct {
	chain  types.Chain
	client EthClient
}

func NewBalanceClient(chain types.Chain, client EthClient) *BalanceClient {
	return &BalanceClient{
		chain:  chain,
		client: client,
	}
}

func (b *BalanceClient) SupportsChain(chain types.Chain) bool {
	return b.chain == chain
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := b.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: b.chain, Err: err}
	}
	return balance, nil
}
