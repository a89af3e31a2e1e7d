package cosmos

import (
	"context"
	"math/big"
	"time"

	"github.com/tidewallet/core/types"
)

type StatusClient struct {
	client Client
}

func NewStatusClient(client Client) *StatusClient {
	return &StatusClient{client: client}
}

func (s *StatusClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainCosmos
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	resp, err := s.client.GetTx(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCosmos, Err: err}
	}

	// The LCD answers a not-yet-indexed hash with an error body.
	if resp.TxResponse == nil {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	if resp.TxResponse.Code == 0 {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	// Included in a block but failed execution.
	return &types.TransactionChanges{State: types.StateReverted}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	block, err := s.client.GetLatestBlock()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCosmos, Err: err}
	}

	height, ok := new(big.Int).SetString(block.Block.Header.Height, 10)
	if !ok {
		height = big.NewInt(0)
	}

	return &types.NodeStatus{
		Chain:         types.ChainCosmos,
		LatestBlock:   height,
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}

type BalanceClient struct {
	client Client
	denom  string
}

func NewBalanceClient(client Client, denom string) *BalanceClient {
	return &BalanceClient{client: client, denom: denom}
}

func (b *BalanceClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainCosmos
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	resp, err := b.client.GetBalance(address, b.denom)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCosmos, Err: err}
	}

	balance, ok := new(big.Int).SetString(resp.Balance.Amount, 10)
	if !ok {
		balance = big.NewInt(0)
	}
	return balance, nil
}
