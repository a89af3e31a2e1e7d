package bitcoin

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func TestPreloadNativeTransfer(t *testing.T) {
	client := &MockClient{
		GetUtxosFunc: func(address string) ([]Utxo, error) {
			require.Equal(t, "DTZSTXecLmSXpRGSfht4tAMyqra1wsL7xb", address)
			return []Utxo{{TxId: "aa", Vout: 0, Value: "86055170"}}, nil
		},
		EstimateFeeFunc: func(blocks int) (*big.Int, error) {
			// Per-kilobyte oracle rates keyed by confirmation target.
			switch blocks {
			case 2:
				return big.NewInt(30_000_000), nil
			case 6:
				return big.NewInt(17_458_000), nil
			default:
				return big.NewInt(8_000_000), nil
			}
		},
	}

	preloader := NewPreloader(types.ChainDoge, dogeConfig(), client)

	params := &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainDoge),
		From:        types.Account{Chain: types.ChainDoge, Address: "DTZSTXecLmSXpRGSfht4tAMyqra1wsL7xb"},
		Destination: "DLCDJhnh6aGotZbGDhxvhMrHGUFLozuoNW",
		Amount:      big.NewInt(86055170),
		MaxAmount:   true,
	}

	result, err := preloader.PreloadNativeTransfer(context.Background(), params)
	require.NoError(t, err)

	chainData, ok := result.ChainData.(*ChainData)
	require.True(t, ok)
	require.Equal(t, types.ChainDoge, chainData.SignDataChain())
	require.Len(t, chainData.Utxos, 1)

	normal := result.Fee(types.FeePriorityNormal)
	require.Equal(t, big.NewInt(3_351_936), normal.Amount)
	require.Equal(t, big.NewInt(192), normal.GasLimit)
}

func TestPreloadFailsWhenOracleFails(t *testing.T) {
	client := &MockClient{
		GetUtxosFunc: func(address string) ([]Utxo, error) {
			return []Utxo{{TxId: "aa", Vout: 0, Value: "86055170"}}, nil
		},
		EstimateFeeFunc: func(blocks int) (*big.Int, error) {
			return nil, context.DeadlineExceeded
		},
	}

	preloader := NewPreloader(types.ChainDoge, dogeConfig(), client)
	_, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:    types.TxTypeTransfer,
		AssetId: types.NewAssetId(types.ChainDoge),
		From:    types.Account{Chain: types.ChainDoge, Address: "DTZSTXecLmSXpRGSfht4tAMyqra1wsL7xb"},
		Amount:  big.NewInt(1),
	})
	require.Error(t, err)

	var unavailable *types.ServiceUnavailable
	require.ErrorAs(t, err, &unavailable)
}
