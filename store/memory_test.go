package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func testTx(id string, state types.TransactionState, createdAt int64) *types.Transaction {
	return &types.Transaction{
		Id:        id,
		Hash:      "0xabc",
		AssetId:   types.NewAssetId(types.ChainEthereum),
		State:     state,
		Type:      types.TxTypeTransfer,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestMemoryStoreInsertIsIdempotent(t *testing.T) {
	s := NewMemoryStore()

	first := testTx("ethereum_0xabc", types.StatePending, 1)
	require.NoError(t, s.InsertTransactions([]*types.Transaction{first}))

	// A second insert with the same id must not overwrite.
	second := testTx("ethereum_0xabc", types.StateConfirmed, 2)
	require.NoError(t, s.InsertTransactions([]*types.Transaction{second}))

	got, err := s.GetTransaction("ethereum_0xabc")
	require.NoError(t, err)
	require.Equal(t, types.StatePending, got.State)
}

func TestMemoryStoreApplyBatch(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.InsertTransactions([]*types.Transaction{
		testTx("ethereum_0xold", types.StatePending, 1),
	}))

	rewritten := testTx("ethereum_0xnew", types.StateConfirmed, 1)
	require.NoError(t, s.ApplyBatch(
		[]*types.Transaction{rewritten},
		[]string{"ethereum_0xold"},
	))

	old, err := s.GetTransaction("ethereum_0xold")
	require.NoError(t, err)
	require.Nil(t, old)

	got, err := s.GetTransaction("ethereum_0xnew")
	require.NoError(t, err)
	require.Equal(t, types.StateConfirmed, got.State)

	pending, err := s.GetPendingTransactions()
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestMemoryStoreChangeFeed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.UpsertTransaction(testTx("ethereum_0xabc", types.StatePending, 1)))

	select {
	case changed := <-s.Changes():
		require.Len(t, changed, 1)
		require.Equal(t, "ethereum_0xabc", changed[0].Id)
	default:
		t.Fatal("expected a change event")
	}
}

func TestMemoryStoreObservers(t *testing.T) {
	s := NewMemoryStore()
	confirmed := s.ObserveByState(types.StateConfirmed)
	byId := s.ObserveTransaction("ethereum_0xdef")

	require.NoError(t, s.UpsertTransaction(testTx("ethereum_0xabc", types.StatePending, 1)))

	// Pending write matches neither observer.
	select {
	case <-confirmed:
		t.Fatal("unexpected event on the confirmed observer")
	case <-byId:
		t.Fatal("unexpected event on the id observer")
	default:
	}

	require.NoError(t, s.UpsertTransaction(testTx("ethereum_0xdef", types.StateConfirmed, 2)))

	select {
	case changed := <-confirmed:
		require.Len(t, changed, 1)
		require.Equal(t, "ethereum_0xdef", changed[0].Id)
	default:
		t.Fatal("expected an event on the confirmed observer")
	}
	select {
	case changed := <-byId:
		require.Equal(t, "ethereum_0xdef", changed[0].Id)
	default:
		t.Fatal("expected an event on the id observer")
	}
}

func TestMemoryStoreSwapMetadata(t *testing.T) {
	s := NewMemoryStore()

	m := &types.SwapMetadata{
		FromAsset: types.NewAssetId(types.ChainEthereum),
		ToAsset:   types.NewTokenAssetId(types.ChainEthereum, "0xdead"),
		FromValue: "1000",
		ToValue:   "2000",
	}
	require.NoError(t, s.AddSwapMetadata("ethereum_0xabc", m))

	got, err := s.GetSwapMetadata("ethereum_0xabc")
	require.NoError(t, err)
	require.Equal(t, m, got)

	missing, err := s.GetSwapMetadata("ethereum_0xmissing")
	require.NoError(t, err)
	require.Nil(t, missing)
}
