package hypercore

import (
	"context"
	"fmt"
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
	return chain == types.ChainHyperCore
}

// TransactionStatus confirms immediately: the exchange only hands out a
// success response after the action has settled, so anything stored
// locally is already final.
func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	return &types.TransactionChanges{State: types.StateConfirmed}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	if _, err := s.client.Meta(); err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainHyperCore, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainHyperCore,
		LatestBlock:   big.NewInt(0),
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
	return chain == types.ChainHyperCore
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	balances, err := b.client.SpotBalances(address)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainHyperCore, Err: err}
	}

	for _, balance := range balances {
		if balance.Coin == "USDC" {
			return parseUsd(balance.Total)
		}
	}
	return big.NewInt(0), nil
}

// parseUsd converts the exchange's decimal string into atomic units.
func parseUsd(s string) (*big.Int, error) {
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > usdDecimals {
		frac = frac[:usdDecimals]
	}
	for len(frac) < usdDecimals {
		frac += "0"
	}

	value, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("malformed balance %q", s)
	}
	return value, nil
}
