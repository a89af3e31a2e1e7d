package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransactionId(t *testing.T) {
	require.Equal(t, "ethereum_0xabc", TransactionId(ChainEthereum, "0xabc"))
}

func TestStateTerminality(t *testing.T) {
	require.False(t, StatePending.IsTerminal())
	require.True(t, StateConfirmed.IsTerminal())
	require.True(t, StateFailed.IsTerminal())
	require.True(t, StateReverted.IsTerminal())
}

func TestSwapMetadataRoundTrip(t *testing.T) {
	meta := &SwapMetadata{
		FromAsset: NewAssetId(ChainEthereum),
		ToAsset:   NewTokenAssetId(ChainEthereum, "0xtoken"),
		FromValue: "1000",
		ToValue:   "995",
		Provider:  "1inch",
	}
	tx := &Transaction{Type: TxTypeSwap, Metadata: meta.Encode()}

	decoded, ok := tx.SwapMetadata()
	require.True(t, ok)
	require.Equal(t, meta, decoded)
}

func TestSwapMetadataDegradesGracefully(t *testing.T) {
	// Malformed payloads render as plain transfers, never an error.
	tx := &Transaction{Type: TxTypeSwap, Metadata: "{not json"}
	_, ok := tx.SwapMetadata()
	require.False(t, ok)

	// Non-swap records never expose metadata.
	tx = &Transaction{Type: TxTypeTransfer, Metadata: `{"from_value":"1"}`}
	_, ok = tx.SwapMetadata()
	require.False(t, ok)

	tx = &Transaction{Type: TxTypeSwap}
	_, ok = tx.SwapMetadata()
	require.False(t, ok)
}

func TestFeePrioritiesOrder(t *testing.T) {
	require.Equal(t, []FeePriority{FeePrioritySlow, FeePriorityNormal, FeePriorityFast},
		FeePriorities)
}

func TestSelectFee(t *testing.T) {
	fees := []*Fee{
		NewFee(ChainEthereum, FeePrioritySlow, big.NewInt(10)),
		NewFee(ChainEthereum, FeePriorityNormal, big.NewInt(20)),
		NewFee(ChainEthereum, FeePriorityFast, big.NewInt(30)),
	}

	require.Equal(t, int64(30), SelectFee(fees, FeePriorityFast).Amount.Int64())
	// Empty priority falls back to Normal.
	require.Equal(t, int64(20), SelectFee(fees, "").Amount.Int64())
	// Unknown tier falls back to Normal.
	require.Equal(t, int64(20), SelectFee(fees, FeePriority("turbo")).Amount.Int64())

	// Single-tier chains return their only quote whatever the ask.
	flat := []*Fee{NewFee(ChainBitcoin, FeePrioritySlow, big.NewInt(5))}
	require.Equal(t, int64(5), SelectFee(flat, FeePriorityFast).Amount.Int64())

	require.Nil(t, SelectFee(nil, FeePriorityNormal))
}

func TestAssetIdIdentifier(t *testing.T) {
	native := NewAssetId(ChainSolana)
	require.Equal(t, "solana", native.Identifier())
	require.True(t, native.IsNative())

	token := NewTokenAssetId(ChainEthereum, "0xdac17f958d2ee523a2206206994597c13d831ec7")
	id := token.Identifier()
	require.Equal(t, "ethereum_0xdac17f958d2ee523a2206206994597c13d831ec7", id)

	parsed, ok := AssetIdFromIdentifier(id)
	require.True(t, ok)
	require.Equal(t, token, parsed)

	_, ok = AssetIdFromIdentifier("atlantis_0xdead")
	require.False(t, ok)
}
