package cardano

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
	return chain == types.ChainCardano
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	content, err := s.client.Transaction(ctx, req.Hash)
	if err != nil {
		// Blockfrost answers 404 until the transaction reaches a block.
		if strings.Contains(err.Error(), "404") ||
			strings.Contains(err.Error(), "Not Found") {
			return &types.TransactionChanges{State: types.StatePending}, nil
		}
		return nil, &types.ServiceUnavailable{Chain: types.ChainCardano, Err: err}
	}

	// Inclusion is final; validation happened before acceptance.
	changes := &types.TransactionChanges{State: types.StateConfirmed}
	if fee, ok := new(big.Int).SetString(content.Fees, 10); ok {
		changes.Fee = fee
	}
	return changes, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	block, err := s.client.LatestBlock(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainCardano, Err: err}
	}

	healthy, err := s.client.Health(ctx)
	if err != nil {
		healthy = false
	}

	return &types.NodeStatus{
		Chain:         types.ChainCardano,
		LatestBlock:   big.NewInt(int64(block.Height)),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        healthy,
	}, nil
}
