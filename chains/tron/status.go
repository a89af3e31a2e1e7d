package tron

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
	return chain == types.ChainTron
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	info, err := s.client.GetTransactionInfo(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}

	// The node answers an empty object until the transaction is packed
	// into a block.
	if info.Id == "" {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	changes := &types.TransactionChanges{State: types.StateConfirmed}
	if info.Result == "FAILED" || info.Receipt.Result == "REVERT" ||
		info.Receipt.Result == "OUT_OF_ENERGY" {
		changes.State = types.StateReverted
	}
	// The settled fee includes bandwidth and account-creation charges the
	// quote could only estimate.
	if info.Fee > 0 {
		changes.Fee = big.NewInt(info.Fee)
	}
	return changes, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	block, err := s.client.GetNowBlock()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainTron,
		LatestBlock:   big.NewInt(block.BlockHeader.RawData.Number),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}

type BalanceClient struct {
	client Client
}

func NewBalanceClient(client Client) *BalanceClient {
	return &BalanceClient{client: client}
}

func (b *BalanceClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainTron
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	account, err := b.client.GetAccount(address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTron, Err: err}
	}
	return big.NewInt(account.Balance), nil
}
