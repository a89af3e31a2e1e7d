package aptos

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
	return chain == types.ChainAptos
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	info, err := s.client.GetTransaction(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}

	// Still in the mempool, or unknown to this node.
	if info.Success == nil || info.Type == "pending_transaction" {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	if *info.Success {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	return &types.TransactionChanges{State: types.StateReverted}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	info, err := s.client.GetLedgerInfo()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}

	height, ok := new(big.Int).SetString(info.BlockHeight, 10)
	if !ok {
		height = big.NewInt(0)
	}

	return &types.NodeStatus{
		Chain:         types.ChainAptos,
		LatestBlock:   height,
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}
