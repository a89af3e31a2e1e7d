package algorand

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
	return chain == types.ChainAlgorand
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	pending, err := s.client.PendingTransaction(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAlgorand, Err: err}
	}

	if pending.PoolError != "" {
		return &types.TransactionChanges{State: types.StateFailed}, nil
	}
	if pending.ConfirmedRound > 0 {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	return &types.TransactionChanges{State: types.StatePending}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	status, err := s.client.Status()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAlgorand, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainAlgorand,
		LatestBlock:   new(big.Int).SetUint64(status.LastRound),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}
