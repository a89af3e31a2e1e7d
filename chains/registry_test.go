package chains

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

// fakePreloader claims a fixed chain set and records which preload
// operation was invoked.
type fakePreloader struct {
	chains []types.Chain
	called string
}

func (f *fakePreloader) SupportsChain(chain types.Chain) bool {
	for _, c := range f.chains {
		if c == chain {
			return true
		}
	}
	return false
}

func (f *fakePreloader) preload(op string, params *types.ConfirmParams) (*types.SignerParams, error) {
	f.called = op
	return &types.SignerParams{Input: params}, nil
}

func (f *fakePreloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return f.preload("native", params)
}

func (f *fakePreloader) PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return f.preload("token", params)
}

func (f *fakePreloader) PreloadSwap(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return f.preload("swap", params)
}

func (f *fakePreloader) PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return f.preload("stake", params)
}

func (f *fakePreloader) PreloadActivate(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	return f.preload("activate", params)
}

func intent(kind types.TxType, chain types.Chain) *types.ConfirmParams {
	return &types.ConfirmParams{
		Kind:    kind,
		AssetId: types.NewAssetId(chain),
		From:    types.Account{Chain: chain, Address: "sender"},
	}
}

func TestClientForRejectsUnclaimedChain(t *testing.T) {
	eth := &fakePreloader{chains: []types.Chain{types.ChainEthereum}}
	proxy := NewSignerPreloaderProxy(
		[]NativeTransferPreloader{eth}, nil, nil, nil, nil)

	_, err := proxy.Preload(context.Background(), intent(types.TxTypeTransfer, types.ChainSolana))
	require.ErrorIs(t, err, types.ErrNoClient)
}

func TestClientForRejectsDuplicateClaims(t *testing.T) {
	first := &fakePreloader{chains: []types.Chain{types.ChainEthereum}}
	second := &fakePreloader{chains: []types.Chain{types.ChainEthereum}}
	proxy := NewSignerPreloaderProxy(
		[]NativeTransferPreloader{first, second}, nil, nil, nil, nil)

	_, err := proxy.Preload(context.Background(), intent(types.TxTypeTransfer, types.ChainEthereum))
	require.ErrorIs(t, err, types.ErrDuplicateClient)
}

func TestPreloadDispatchesByKind(t *testing.T) {
	testCases := []struct {
		kind types.TxType
		want string
	}{
		{types.TxTypeTransfer, "native"},
		{types.TxTypeTokenTransfer, "token"},
		{types.TxTypeSwap, "swap"},
		// Approvals ride the swap path.
		{types.TxTypeTokenApproval, "swap"},
		{types.TxTypeStakeDelegate, "stake"},
		{types.TxTypeStakeUndelegate, "stake"},
		{types.TxTypeActivate, "activate"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			client := &fakePreloader{chains: []types.Chain{types.ChainEthereum}}
			proxy := NewSignerPreloaderProxy(
				[]NativeTransferPreloader{client},
				[]TokenTransferPreloader{client},
				[]SwapTransactionPreloader{client},
				[]StakeTransactionPreloader{client},
				[]ActivationTransactionPreloader{client},
			)

			_, err := proxy.Preload(context.Background(), intent(tc.kind, types.ChainEthereum))
			require.NoError(t, err)
			require.Equal(t, tc.want, client.called)
		})
	}
}

func TestPreloadRejectsUnknownKind(t *testing.T) {
	client := &fakePreloader{chains: []types.Chain{types.ChainEthereum}}
	proxy := NewSignerPreloaderProxy(
		[]NativeTransferPreloader{client}, nil, nil, nil, nil)

	_, err := proxy.Preload(context.Background(), intent(types.TxType("mint"), types.ChainEthereum))
	require.Error(t, err)
}

type fakeStatusClient struct {
	chain types.Chain
	calls int
	next  *types.TransactionChanges
}

func (f *fakeStatusClient) SupportsChain(chain types.Chain) bool {
	return f.chain == chain
}

func (f *fakeStatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	f.calls++
	return f.next, nil
}

func TestGetStatusCachesTerminalVerdicts(t *testing.T) {
	client := &fakeStatusClient{
		chain: types.ChainEthereum,
		next:  &types.TransactionChanges{State: types.StatePending},
	}
	service := NewTransactionStatusService([]TransactionStatusClient{client})
	req := &types.TxStateRequest{Chain: types.ChainEthereum, Hash: "0xabc"}

	// Pending verdicts are never cached.
	for i := 0; i < 2; i++ {
		changes, err := service.GetStatus(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.StatePending, changes.State)
	}
	require.Equal(t, 2, client.calls)

	// The first terminal verdict pins the answer.
	client.next = &types.TransactionChanges{State: types.StateConfirmed}
	for i := 0; i < 3; i++ {
		changes, err := service.GetStatus(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.StateConfirmed, changes.State)
	}
	require.Equal(t, 3, client.calls)
}

func TestProxySupportsChainReflectsRegistration(t *testing.T) {
	eth := &fakePreloader{chains: []types.Chain{types.ChainEthereum, types.ChainSmartChain}}
	sol := &fakePreloader{chains: []types.Chain{types.ChainSolana}}
	proxy := NewSignerPreloaderProxy(
		[]NativeTransferPreloader{eth, sol}, nil, nil, nil, nil)

	require.True(t, proxy.SupportsChain(types.ChainEthereum))
	require.True(t, proxy.SupportsChain(types.ChainSmartChain))
	require.True(t, proxy.SupportsChain(types.ChainSolana))
	require.False(t, proxy.SupportsChain(types.ChainBitcoin))
}
