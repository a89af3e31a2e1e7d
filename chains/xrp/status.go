package xrp

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
	return chain == types.ChainXrp
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	result, err := s.client.Tx(ctx, req.Hash)
	if err != nil {
		if strings.Contains(err.Error(), "txnNotFound") {
			return &types.TransactionChanges{State: types.StatePending}, nil
		}
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}
	if result.Error == "txnNotFound" || !result.Validated {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	if result.Meta.TransactionResult == "tesSUCCESS" {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	return &types.TransactionChanges{State: types.StateFailed}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	fee, err := s.client.Fee(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainXrp,
		LatestBlock:   big.NewInt(int64(fee.LedgerCurrentIndex)),
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
	return chain == types.ChainXrp
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	info, err := b.client.AccountInfo(ctx, address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainXrp, Err: err}
	}
	if info.NotFound() {
		return big.NewInt(0), nil
	}

	balance, ok := new(big.Int).SetString(info.AccountData.Balance, 10)
	if !ok {
		balance = big.NewInt(0)
	}
	return balance, nil
}
