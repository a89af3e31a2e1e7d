package sui

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
	return chain == types.ChainSui
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	block, err := s.client.GetTransactionBlock(ctx, req.Hash)
	if err != nil {
		// The node errors on digests it has not seen yet.
		if strings.Contains(err.Error(), "Could not find") {
			return &types.TransactionChanges{State: types.StatePending}, nil
		}
		return nil, &types.ServiceUnavailable{Chain: types.ChainSui, Err: err}
	}

	if block.Effects == nil || block.Checkpoint == "" {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	changes := &types.TransactionChanges{State: types.StateConfirmed}
	if block.Effects.Status.Status != "success" {
		changes.State = types.StateReverted
	}
	if fee, ok := settledFee(block.Effects); ok {
		changes.Fee = fee
	}
	return changes, nil
}

// settledFee sums the gas charges and subtracts the storage rebate.
func settledFee(effects *TransactionEffects) (*big.Int, bool) {
	computation, ok1 := new(big.Int).SetString(effects.GasUsed.ComputationCost, 10)
	storage, ok2 := new(big.Int).SetString(effects.GasUsed.StorageCost, 10)
	rebate, ok3 := new(big.Int).SetString(effects.GasUsed.StorageRebate, 10)
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}

	fee := new(big.Int).Add(computation, storage)
	fee.Sub(fee, rebate)
	if fee.Sign() < 0 {
		fee.SetInt64(0)
	}
	return fee, true
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	checkpoint, err := s.client.LatestCheckpoint(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSui, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainSui,
		LatestBlock:   new(big.Int).SetUint64(checkpoint),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}
