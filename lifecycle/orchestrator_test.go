package lifecycle

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/store"
	"github.com/tidewallet/core/types"
)

func testConfig() *config.Config {
	return &config.Config{Chains: config.DefaultChains()}
}

func testSignerParams() *types.SignerParams {
	return &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:        types.TxTypeTransfer,
			AssetId:     types.NewAssetId(types.ChainEthereum),
			From:        types.Account{Chain: types.ChainEthereum, Address: "0xsender"},
			Destination: "0xreceiver",
			Amount:      big.NewInt(1_000_000),
		},
		Owner: "0xsender",
		Fees: []*types.Fee{
			types.NewFee(types.ChainEthereum, types.FeePriorityNormal, big.NewInt(21_000)),
		},
	}
}

func TestAddTransactionPersistsAfterBroadcast(t *testing.T) {
	st := store.NewMemoryStore()
	broadcaster := &MockBroadcaster{
		BroadcastFunc: func(ctx context.Context, chain types.Chain, owner string,
			signedBytes []byte, txType types.TxType) (string, error) {
			return "0xhash1", nil
		},
	}

	o := NewOrchestrator(testConfig(), broadcaster, &MockStatusProvider{}, st)
	tx, err := o.AddTransaction(context.Background(), testSignerParams(),
		types.FeePriorityNormal, []byte{1})
	require.NoError(t, err)
	require.Equal(t, "ethereum_0xhash1", tx.Id)
	require.Equal(t, types.StatePending, tx.State)
	require.Equal(t, "21000", tx.Fee)

	stored, err := st.GetTransaction("ethereum_0xhash1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, types.DirectionOutgoing, stored.Direction)
}

func TestAddTransactionBroadcastFailureStoresNothing(t *testing.T) {
	st := store.NewMemoryStore()
	broadcaster := &MockBroadcaster{
		BroadcastFunc: func(ctx context.Context, chain types.Chain, owner string,
			signedBytes []byte, txType types.TxType) (string, error) {
			return "", types.NewBroadcastError(chain, "insufficient funds")
		},
	}

	o := NewOrchestrator(testConfig(), broadcaster, &MockStatusProvider{}, st)
	_, err := o.AddTransaction(context.Background(), testSignerParams(),
		types.FeePriorityNormal, []byte{1})
	require.Error(t, err)

	pending, err := st.GetPendingTransactions()
	require.NoError(t, err)
	require.Empty(t, pending)
}

func addPendingTx(t *testing.T, o *Orchestrator) *types.Transaction {
	t.Helper()
	tx, err := o.AddTransaction(context.Background(), testSignerParams(),
		types.FeePriorityNormal, []byte{1})
	require.NoError(t, err)
	return tx
}

func TestReconcileLeavesPendingUntouched(t *testing.T) {
	st := store.NewMemoryStore()
	broadcaster := &MockBroadcaster{
		BroadcastFunc: func(ctx context.Context, chain types.Chain, owner string,
			signedBytes []byte, txType types.TxType) (string, error) {
			return "0xhash1", nil
		},
	}
	status := &MockStatusProvider{
		GetStatusFunc: func(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
			return &types.TransactionChanges{State: types.StatePending}, nil
		},
	}

	o := NewOrchestrator(testConfig(), broadcaster, status, st)
	tx := addPendingTx(t, o)

	o.reconcile(context.Background())
	o.reconcile(context.Background())

	stored, err := st.GetTransaction(tx.Id)
	require.NoError(t, err)
	require.Equal(t, types.StatePending, stored.State)
	// No spurious writes: the record keeps its original timestamp.
	require.Equal(t, tx.UpdatedAt, stored.UpdatedAt)
}

func TestReconcileAppliesHashRewriteAndFee(t *testing.T) {
	st := store.NewMemoryStore()
	broadcaster := &MockBroadcaster{
		BroadcastFunc: func(ctx context.Context, chain types.Chain, owner string,
			signedBytes []byte, txType types.TxType) (string, error) {
			return "0xprovisional", nil
		},
	}
	status := &MockStatusProvider{
		GetStatusFunc: func(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
			return &types.TransactionChanges{
				State:   types.StateConfirmed,
				NewHash: "0xcanonical",
				Fee:     big.NewInt(19_500),
			}, nil
		},
	}

	o := NewOrchestrator(testConfig(), broadcaster, status, st)
	addPendingTx(t, o)

	o.reconcile(context.Background())

	old, err := st.GetTransaction("ethereum_0xprovisional")
	require.NoError(t, err)
	require.Nil(t, old)

	rewritten, err := st.GetTransaction("ethereum_0xcanonical")
	require.NoError(t, err)
	require.NotNil(t, rewritten)
	require.Equal(t, types.StateConfirmed, rewritten.State)
	require.Equal(t, "19500", rewritten.Fee)
}

func TestReconcileTimesOutStalePending(t *testing.T) {
	st := store.NewMemoryStore()
	broadcaster := &MockBroadcaster{
		BroadcastFunc: func(ctx context.Context, chain types.Chain, owner string,
			signedBytes []byte, txType types.TxType) (string, error) {
			return "0xhash1", nil
		},
	}
	status := &MockStatusProvider{
		GetStatusFunc: func(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
			return nil, fmt.Errorf("node down")
		},
	}

	o := NewOrchestrator(testConfig(), broadcaster, status, st)
	tx := addPendingTx(t, o)

	// First tick: poll fails, record is fresh, nothing changes.
	o.reconcile(context.Background())
	stored, err := st.GetTransaction(tx.Id)
	require.NoError(t, err)
	require.Equal(t, types.StatePending, stored.State)

	// Jump past the ethereum timeout.
	timeout := testConfig().ChainConfig(types.ChainEthereum).TxTimeout
	o.now = func() time.Time {
		return time.UnixMilli(tx.CreatedAt).Add(time.Duration(timeout+1) * time.Second)
	}
	o.reconcile(context.Background())

	stored, err = st.GetTransaction(tx.Id)
	require.NoError(t, err)
	require.Equal(t, types.StateFailed, stored.State)

	// Terminal states are final: a late confirmation is ignored because
	// the record is no longer pending.
	status.GetStatusFunc = func(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
		return &types.TransactionChanges{State: types.StateConfirmed}, nil
	}
	o.reconcile(context.Background())

	stored, err = st.GetTransaction(tx.Id)
	require.NoError(t, err)
	require.Equal(t, types.StateFailed, stored.State)
}

func TestStartStop(t *testing.T) {
	st := store.NewMemoryStore()
	o := NewOrchestrator(testConfig(), &MockBroadcaster{}, &MockStatusProvider{}, st)
	o.interval = time.Millisecond

	o.Start()
	time.Sleep(10 * time.Millisecond)
	o.Stop()

	// Stop is idempotent.
	o.Stop()
}
