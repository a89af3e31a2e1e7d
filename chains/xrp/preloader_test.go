package xrp

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func activeAccountClient() *MockClient {
	return &MockClient{
		AccountInfoFunc: func(ctx context.Context, address string) (*AccountInfo, error) {
			info := &AccountInfo{LedgerCurrentIndex: 80_000_000}
			info.AccountData.Sequence = 62
			info.AccountData.Balance = "25000000"
			return info, nil
		},
		FeeFunc: func(ctx context.Context) (*FeeInfo, error) {
			fee := &FeeInfo{}
			fee.Drops.MinimumFee = "10"
			fee.Drops.OpenLedgerFee = "12"
			return fee, nil
		},
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(activeAccountClient())

	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainXrp),
		From:        types.Account{Chain: types.ChainXrp, Address: "rSenderAddress"},
		Destination: "rDestAddress",
		Amount:      big.NewInt(20_000_000),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint32(62), chainData.Sequence)
	require.Equal(t, uint32(80_000_100), chainData.LastLedger)

	require.Equal(t, big.NewInt(10), result.Fee(types.FeePrioritySlow).Amount)
	require.Equal(t, big.NewInt(12), result.Fee(types.FeePriorityNormal).Amount)
	require.Equal(t, big.NewInt(24), result.Fee(types.FeePriorityFast).Amount)
}

func TestPreloadRejectsSmallPaymentToInactiveDestination(t *testing.T) {
	client := activeAccountClient()
	client.AccountInfoFunc = func(ctx context.Context, address string) (*AccountInfo, error) {
		if address == "rDestAddress" {
			return &AccountInfo{Error: "actNotFound"}, nil
		}
		info := &AccountInfo{LedgerCurrentIndex: 80_000_000}
		info.AccountData.Sequence = 62
		return info, nil
	}

	preloader := NewPreloader(client)
	_, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainXrp),
		From:        types.Account{Chain: types.ChainXrp, Address: "rSenderAddress"},
		Destination: "rDestAddress",
		Amount:      big.NewInt(1_000_000),
	})
	require.ErrorIs(t, err, types.ErrDestinationNotActive)
}

func TestPreloadAllowsReserveFundingPayment(t *testing.T) {
	client := activeAccountClient()
	client.AccountInfoFunc = func(ctx context.Context, address string) (*AccountInfo, error) {
		if address == "rDestAddress" {
			return &AccountInfo{Error: "actNotFound"}, nil
		}
		info := &AccountInfo{LedgerCurrentIndex: 80_000_000}
		info.AccountData.Sequence = 62
		return info, nil
	}

	preloader := NewPreloader(client)
	_, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainXrp),
		From:        types.Account{Chain: types.ChainXrp, Address: "rSenderAddress"},
		Destination: "rDestAddress",
		Amount:      big.NewInt(accountReserve),
	})
	require.NoError(t, err)
}
