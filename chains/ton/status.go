package ton

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
	return chain == types.ChainTon
}

// TransactionStatus matches the broadcast external-message hash against
// the sender's recent transactions. The chain-level transaction hash
// only exists after inclusion, so finding it doubles as the canonical
// hash rewrite.
func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	entries, err := s.client.GetTransactions(ctx, req.Sender, 20)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTon, Err: err}
	}

	for _, entry := range entries {
		if entry.InMsg.Hash == req.Hash {
			return &types.TransactionChanges{
				State:   types.StateConfirmed,
				NewHash: entry.TransactionId.Hash,
			}, nil
		}
	}
	return &types.TransactionChanges{State: types.StatePending}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	info, err := s.client.MasterchainInfo(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTon, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainTon,
		LatestBlock:   big.NewInt(info.Last.Seqno),
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
	return chain == types.ChainTon
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	info, err := b.client.GetAddressInfo(ctx, address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainTon, Err: err}
	}

	balance, ok := new(big.Int).SetString(info.Balance, 10)
	if !ok {
		balance = big.NewInt(0)
	}
	return balance, nil
}
