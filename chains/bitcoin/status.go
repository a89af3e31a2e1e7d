package bitcoin

import (
	"context"
	"math/big"
	"time"

	"github.com/tidewallet/core/types"
)

type StatusClient struct {
	chain  types.Chain
	client Client
}

func NewStatusClient(chain types.Chain, client Client) *StatusClient {
	return &StatusClient{
		chain:  chain,
		client: client,
	}
}

func (s *StatusClient) SupportsChain(chain types.Chain) bool {
	return s.chain == chain
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	info, err := s.client.GetTransaction(req.Hash)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: s.chain, Err: err}
	}

	// A transaction the node does not know about yet, or one still in
	// the mempool, stays pending. Bitcoin-like chains have no reverted
	// state: inclusion is success.
	if info == nil || info.TxId == "" || info.Confirmations <= 0 {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	return &types.TransactionChanges{State: types.StateConfirmed}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	info, err := s.client.NodeInfo()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: s.chain, Err: err}
	}

	return &types.NodeStatus{
		Chain:         s.chain,
		LatestBlock:   big.NewInt(info.Blockbook.BestHeight),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        info.Blockbook.InSync,
	}, nil
}

type BalanceClient struct {
	chain  types.Chain
	client Client
}

func NewBalanceClient(chain types.Chain, client Client) *BalanceClient {
	return &BalanceClient{
		chain:  chain,
		client: client,
	}
}

func (b *BalanceClient) SupportsChain(chain types.Chain) bool {
	return b.chain == chain
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := b.client.GetBalance(address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: b.chain, Err: err}
	}
	return balance, nil
}
