package near

import (
	"context"
	"math/big"
	"strings"
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
	return chain == types.ChainNear
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	status, err := s.client.TxStatus(ctx, req.Hash, req.Sender)
	if err != nil {
		// The node answers an unknown hash with an error; stay pending
		// until it shows up or the timeout fires.
		if strings.Contains(err.Error(), "UNKNOWN_TRANSACTION") ||
			strings.Contains(err.Error(), "doesn't exist") {
			return &types.TransactionChanges{State: types.StatePending}, nil
		}
		return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
	}

	switch {
	case status.Status.Failure != nil:
		return &types.TransactionChanges{State: types.StateFailed}, nil
	case status.Status.SuccessValue != nil || status.Status.SuccessReceiptId != nil:
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	default:
		return &types.TransactionChanges{State: types.StatePending}, nil
	}
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	block, err := s.client.LatestBlock(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainNear,
		LatestBlock:   new(big.Int).SetUint64(block.Header.Height),
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
	return chain == types.ChainNear
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	view, err := b.client.ViewAccount(ctx, address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainNear, Err: err}
	}
	if view.Error != "" {
		return big.NewInt(0), nil
	}

	balance, ok := new(big.Int).SetString(view.Amount, 10)
	if !ok {
		balance = big.NewInt(0)
	}
	return balance, nil
}
