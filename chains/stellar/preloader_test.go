package stellar

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func testClient(destinationExists bool) *MockClient {
	return &MockClient{
		GetAccountFunc: func(address string) (*AccountResponse, error) {
			if address == "GDEST" && !destinationExists {
				return &AccountResponse{Status: 404}, nil
			}
			return &AccountResponse{Sequence: "190051015968774"}, nil
		},
		FeeStatsFunc: func() (*FeeStats, error) {
			stats := &FeeStats{LastLedgerBaseFee: "100"}
			stats.FeeCharged.P50 = "120"
			stats.FeeCharged.P90 = "5000"
			return stats, nil
		},
	}
}

func transferParams(amount int64) *types.ConfirmParams {
	return &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainStellar),
		From:        types.Account{Chain: types.ChainStellar, Address: "GSENDER"},
		Destination: "GDEST",
		Amount:      big.NewInt(amount),
	}
}

func TestPreloadNativeTransferTiers(t *testing.T) {
	preloader := NewPreloader(testClient(true))

	result, err := preloader.PreloadNativeTransfer(context.Background(), transferParams(50_000_000))
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, int64(190051015968774), chainData.Sequence)
	require.False(t, chainData.CreateDestination)

	slow := result.Fee(types.FeePrioritySlow)
	normal := result.Fee(types.FeePriorityNormal)
	fast := result.Fee(types.FeePriorityFast)
	require.Equal(t, big.NewInt(100), slow.Amount)
	require.Equal(t, big.NewInt(120), normal.Amount)
	require.Equal(t, big.NewInt(5000), fast.Amount)
}

func TestPreloadSelectsCreateAccountForNewDestination(t *testing.T) {
	preloader := NewPreloader(testClient(false))

	result, err := preloader.PreloadNativeTransfer(context.Background(), transferParams(accountReserve))
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.True(t, chainData.CreateDestination)
}

func TestPreloadRejectsDustToNewDestination(t *testing.T) {
	preloader := NewPreloader(testClient(false))

	_, err := preloader.PreloadNativeTransfer(context.Background(), transferParams(100))
	require.ErrorIs(t, err, types.ErrDestinationNotActive)
}
