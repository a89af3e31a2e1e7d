package stellar

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
	return chain == types.ChainStellar
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	resp, err := s.client.GetTransaction(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}
	if resp.NotFound() {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	if resp.Successful {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	return &types.TransactionChanges{State: types.StateFailed}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	root, err := s.client.Root()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainStellar, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainStellar,
		LatestBlock:   big.NewInt(root.HistoryLatestLedger),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        root.HistoryLatestLedger >= root.CoreLatestLedger-1,
	}, nil
}
