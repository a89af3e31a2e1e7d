package cosmos

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func fundedAccountClient() *MockClient {
	return &MockClient{
		GetAccountFunc: func(address string) (*AccountResponse, error) {
			resp := &AccountResponse{}
			resp.Account.AccountNumber = "2153"
			resp.Account.Sequence = "41"
			return resp, nil
		},
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(fundedAccountClient(), "cosmoshub-4", "uatom")

	params := &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainCosmos),
		From:        types.Account{Chain: types.ChainCosmos, Address: "cosmos1sender"},
		Destination: "cosmos1dest",
		Amount:      big.NewInt(1_000_000),
	}

	result, err := preloader.PreloadNativeTransfer(context.Background(), params)
	require.NoError(t, err)

	chainData, ok := result.ChainData.(*ChainData)
	require.True(t, ok)
	require.Equal(t, types.ChainCosmos, chainData.SignDataChain())
	require.Equal(t, "cosmoshub-4", chainData.ChainId)
	require.Equal(t, uint64(2153), chainData.AccountNumber)
	require.Equal(t, uint64(41), chainData.Sequence)

	seen := make(map[types.FeePriority]int)
	for _, fee := range result.Fees {
		seen[fee.Priority]++
	}
	for _, priority := range types.FeePriorities {
		require.Equal(t, 1, seen[priority])
	}

	slow := result.Fee(types.FeePrioritySlow)
	normal := result.Fee(types.FeePriorityNormal)
	fast := result.Fee(types.FeePriorityFast)
	require.Equal(t, big.NewInt(5_000), slow.Amount)
	require.Equal(t, big.NewInt(10_000), normal.Amount)
	require.Equal(t, big.NewInt(20_000), fast.Amount)
	require.True(t, fast.Amount.Cmp(normal.Amount) >= 0)
	require.True(t, normal.Amount.Cmp(slow.Amount) >= 0)
}

func TestPreloadStakeUsesLargerGasLimit(t *testing.T) {
	preloader := NewPreloader(fundedAccountClient(), "cosmoshub-4", "uatom")

	result, err := preloader.PreloadStake(context.Background(), &types.ConfirmParams{
		Kind:      types.TxTypeStakeDelegate,
		AssetId:   types.NewAssetId(types.ChainCosmos),
		From:      types.Account{Chain: types.ChainCosmos, Address: "cosmos1sender"},
		Validator: "cosmosvaloper1xyz",
		Amount:    big.NewInt(5_000_000),
	})
	require.NoError(t, err)

	normal := result.Fee(types.FeePriorityNormal)
	require.Equal(t, big.NewInt(stakeGasLimit), normal.GasLimit)
}

func TestPreloadNewAccountStartsAtZero(t *testing.T) {
	client := &MockClient{
		GetAccountFunc: func(address string) (*AccountResponse, error) {
			return &AccountResponse{Code: 5, Message: "account not found"}, nil
		},
	}

	preloader := NewPreloader(client, "cosmoshub-4", "uatom")
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:    types.TxTypeTransfer,
		AssetId: types.NewAssetId(types.ChainCosmos),
		From:    types.Account{Chain: types.ChainCosmos, Address: "cosmos1new"},
		Amount:  big.NewInt(1),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(0), chainData.Sequence)
	require.Equal(t, uint64(0), chainData.AccountNumber)
}
