package solana

import (
	"context"
	"math/big"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/tidewallet/core/types"
)

type StatusClient struct {
	client RpcClient
}

func NewStatusClient(client RpcClient) *StatusClient {
	return &StatusClient{client: client}
}

func (s *StatusClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSolana
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	signature, err := solana.SignatureFromBase58(req.Hash)
	if err != nil {
		return nil, types.ErrChainDataMismatch
	}

	status, err := s.client.GetSignatureStatus(ctx, signature)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}

	// Unknown signature: either still propagating or the blockhash
	// expired. Stay pending and let the timeout decide.
	if status == nil {
		return &types.TransactionChanges{State: types.StatePending}, nil
	}

	if status.Err != nil {
		// Included but failed execution.
		return &types.TransactionChanges{State: types.StateReverted}, nil
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	default:
		return &types.TransactionChanges{State: types.StatePending}, nil
	}
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	if err := s.client.GetHealth(ctx); err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}
	slot, err := s.client.GetSlot(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}

	return &types.NodeStatus{
		Chain:         types.ChainSolana,
		LatestBlock:   new(big.Int).SetUint64(slot),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}

type BalanceClient struct {
	client RpcClient
}

func NewBalanceClient(client RpcClient) *BalanceClient {
	return &BalanceClient{client: client}
}

func (b *BalanceClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSolana
}

func (b *BalanceClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, err
	}

	lamports, err := b.client.GetBalance(ctx, pub)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainSolana, Err: err}
	}

	return new(big.Int).SetUint64(lamports), nil
}
