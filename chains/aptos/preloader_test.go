package aptos

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

const (
	testSender      = "0x9b1dadfee463dbef8e03cd2bb28dbddd3e7b33ba1c1f83e477e1ed18e1d3c341"
	testDestination = "0xa55ce8189aca02697e335be10cc2eab4a87a2f8e2fbd63dbdcc64f38d35c1a9a"
)

func testConfig() config.Chain {
	return config.Chain{
		Chain:                   string(types.ChainAptos),
		NewAccountGasMultiplier: 100,
	}
}

func transferParams() *types.ConfirmParams {
	return &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainAptos),
		From:        types.Account{Chain: types.ChainAptos, Address: testSender},
		Destination: testDestination,
		Amount:      big.NewInt(100_000_000),
	}
}

func fundedClient(t *testing.T) *MockClient {
	return &MockClient{
		GetAccountFunc: func(address string) (*Account, error) {
			if address == testSender {
				return &Account{SequenceNumber: "8"}, nil
			}
			return &Account{SequenceNumber: "0"}, nil
		},
		EstimateGasPriceFunc: func() (*GasPrice, error) {
			return &GasPrice{GasEstimate: 100, PrioritizedGasEstimate: 150}, nil
		},
		SimulateFunc: func(tx *Simulation) ([]SimulatedTransaction, error) {
			require.Equal(t, "8", tx.SequenceNumber)
			require.Equal(t, testSender, tx.Sender)
			return []SimulatedTransaction{{Success: true, GasUsed: "9"}}, nil
		},
	}
}

func TestPreloadNativeTransferFundedAccount(t *testing.T) {
	preloader := NewPreloader(fundedClient(t), testConfig())

	result, err := preloader.PreloadNativeTransfer(context.Background(), transferParams())
	require.NoError(t, err)

	chainData, ok := result.ChainData.(*ChainData)
	require.True(t, ok)
	require.Equal(t, types.ChainAptos, chainData.SignDataChain())
	require.Equal(t, uint64(8), chainData.Sequence)

	normal := result.Fee(types.FeePriorityNormal)
	require.Equal(t, big.NewInt(150), normal.MaxGasPrice)
	require.Equal(t, big.NewInt(9), normal.GasLimit)
	require.Equal(t, big.NewInt(1350), normal.Amount)

	slow := result.Fee(types.FeePrioritySlow)
	fast := result.Fee(types.FeePriorityFast)
	require.Equal(t, big.NewInt(100), slow.MaxGasPrice)
	require.Equal(t, big.NewInt(300), fast.MaxGasPrice)
}

func TestPreloadNativeTransferNewSender(t *testing.T) {
	client := fundedClient(t)
	client.GetAccountFunc = func(address string) (*Account, error) {
		if address == testSender {
			return &Account{ErrorCode: "account_not_found"}, nil
		}
		return &Account{SequenceNumber: "0"}, nil
	}
	client.SimulateFunc = func(tx *Simulation) ([]SimulatedTransaction, error) {
		require.Equal(t, "0", tx.SequenceNumber)
		return []SimulatedTransaction{{Success: true, GasUsed: "9"}}, nil
	}

	preloader := NewPreloader(client, testConfig())
	result, err := preloader.PreloadNativeTransfer(context.Background(), transferParams())
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(0), chainData.Sequence)
}

func TestPreloadNativeTransferNewDestination(t *testing.T) {
	client := fundedClient(t)
	client.GetAccountFunc = func(address string) (*Account, error) {
		if address == testDestination {
			return &Account{ErrorCode: "account_not_found"}, nil
		}
		return &Account{SequenceNumber: "8"}, nil
	}

	preloader := NewPreloader(client, testConfig())
	result, err := preloader.PreloadNativeTransfer(context.Background(), transferParams())
	require.NoError(t, err)

	// Creating the destination account costs two orders of magnitude
	// more gas than a plain transfer.
	normal := result.Fee(types.FeePriorityNormal)
	require.Equal(t, big.NewInt(900), normal.GasLimit)
	require.Equal(t, big.NewInt(135_000), normal.Amount)
}

func TestPreloadTokenTransferUsesFixedGasCeiling(t *testing.T) {
	client := fundedClient(t)
	client.SimulateFunc = func(tx *Simulation) ([]SimulatedTransaction, error) {
		t.Fatal("token preload must not simulate")
		return nil, nil
	}

	preloader := NewPreloader(client, testConfig())
	params := transferParams()
	params.Kind = types.TxTypeTokenTransfer
	params.AssetId = types.AssetId{Chain: types.ChainAptos, TokenId: "0x1::usdc::USDC"}

	result, err := preloader.PreloadTokenTransfer(context.Background(), params)
	require.NoError(t, err)

	normal := result.Fee(types.FeePriorityNormal)
	require.Equal(t, big.NewInt(1500), normal.GasLimit)
}

func TestPreloadFailsWhenSimulationFails(t *testing.T) {
	client := fundedClient(t)
	client.SimulateFunc = func(tx *Simulation) ([]SimulatedTransaction, error) {
		return []SimulatedTransaction{{Success: false, VmStatus: "OUT_OF_GAS"}}, nil
	}

	preloader := NewPreloader(client, testConfig())
	_, err := preloader.PreloadNativeTransfer(context.Background(), transferParams())
	require.Error(t, err)
	require.Contains(t, err.Error(), "OUT_OF_GAS")
}

func TestPreloadFailsWhenNodeUnavailable(t *testing.T) {
	client := fundedClient(t)
	client.EstimateGasPriceFunc = func() (*GasPrice, error) {
		return nil, context.DeadlineExceeded
	}

	preloader := NewPreloader(client, testConfig())
	_, err := preloader.PreloadNativeTransfer(context.Background(), transferParams())
	require.Error(t, err)

	var unavailable *types.ServiceUnavailable
	require.ErrorAs(t, err, &unavailable)
}
