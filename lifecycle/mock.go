package lifecycle

import (
	"context"

	"github.com/tidewallet/core/types"
)

type MockBroadcaster struct {
	BroadcastFunc func(ctx context.Context, chain types.Chain, owner string,
		signedBytes []byte, txType types.TxType) (string, error)
}

func (m *MockBroadcaster) Broadcast(ctx context.Context, chain types.Chain, owner string,
	signedBytes []byte, txType types.TxType) (string, error) {
	if m.BroadcastFunc != nil {
		return m.BroadcastFunc(ctx, chain, owner, signedBytes, txType)
	}

	return "", nil
}

type MockStatusProvider struct {
	GetStatusFunc func(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error)
}

func (m *MockStatusProvider) GetStatus(ctx context.Context,
	req *types.TxStateRequest) (*types.TransactionChanges, error) {
	if m.GetStatusFunc != nil {
		return m.GetStatusFunc(ctx, req)
	}

	return nil, nil
}
