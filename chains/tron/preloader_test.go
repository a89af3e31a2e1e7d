package tron

import (
	"context"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func testAddress(fill byte) string {
	payload := make([]byte, 21)
	payload[0] = addressPrefix
	for i := 1; i < len(payload); i++ {
		payload[i] = fill
	}
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return base58.Encode(append(payload, second[:4]...))
}

func testClient(destinationActive bool) *MockClient {
	return &MockClient{
		GetNowBlockFunc: func() (*NowBlock, error) {
			block := &NowBlock{
				BlockID: "00000000035e9b4a1122334455667788aabbccddeeff00112233445566778899",
			}
			block.BlockHeader.RawData.Number = 0x035e9b4a
			block.BlockHeader.RawData.Timestamp = 1_700_000_000_000
			return block, nil
		},
		GetAccountFunc: func(address string) (*Account, error) {
			if !destinationActive {
				return &Account{}, nil
			}
			return &Account{Address: address, Balance: 5_000_000}, nil
		},
		GetChainParametersFunc: func() (*ChainParameters, error) {
			params := &ChainParameters{}
			params.ChainParameter = []struct {
				Key   string `json:"key"`
				Value int64  `json:"value"`
			}{
				{Key: "getTransactionFee", Value: 1_000},
				{Key: "getCreateAccountFee", Value: 100_000},
				{Key: "getCreateNewAccountFeeInSystemContract", Value: 1_000_000},
			}
			return params, nil
		},
	}
}

func testParams(destination string) *types.ConfirmParams {
	return &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainTron),
		From:        types.Account{Chain: types.ChainTron, Address: testAddress(1)},
		Destination: destination,
		Amount:      big.NewInt(2_500_000),
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(testClient(true))
	result, err := preloader.PreloadNativeTransfer(context.Background(), testParams(testAddress(2)))
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, "9b4a", chainData.RefBlockBytes)
	require.Equal(t, "1122334455667788", chainData.RefBlockHash)
	require.Equal(t, int64(1_700_000_000_000), chainData.Timestamp)
	require.Equal(t, int64(1_700_000_600_000), chainData.Expiration)

	// Bandwidth pricing has no tiers; the quote is flat.
	for _, priority := range types.FeePriorities {
		require.Equal(t, big.NewInt(270_000), result.Fee(priority).Amount)
	}
}

func TestPreloadChargesAccountCreation(t *testing.T) {
	preloader := NewPreloader(testClient(false))
	result, err := preloader.PreloadNativeTransfer(context.Background(), testParams(testAddress(2)))
	require.NoError(t, err)

	require.Equal(t, big.NewInt(1_370_000), result.Fee(types.FeePriorityNormal).Amount)
}

func TestSignTransaction(t *testing.T) {
	preloader := NewPreloader(testClient(true))
	params, err := preloader.PreloadNativeTransfer(context.Background(), testParams(testAddress(2)))
	require.NoError(t, err)

	privateKey := make([]byte, 32)
	privateKey[31] = 1

	signer := NewSignClient()
	signed, err := signer.SignTransaction(params, types.FeePriorityNormal, privateKey)
	require.NoError(t, err)
	require.Len(t, signed, 1)

	// Transaction proto: field 1 raw_data, then field 2 holding the
	// 65-byte recoverable signature.
	tx := signed[0]
	require.Equal(t, byte(0x0a), tx[0])
	require.Equal(t, byte(0x12), tx[len(tx)-67])
	require.Equal(t, byte(65), tx[len(tx)-66])

	_, err = signer.SignTransaction(&types.SignerParams{
		Input:     testParams(testAddress(2)),
		ChainData: &ChainData{Chain: types.ChainNear},
	}, types.FeePriorityNormal, privateKey)
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}

func TestSignStakeIntents(t *testing.T) {
	preloader := NewPreloader(testClient(true))
	signer := NewSignClient()

	privateKey := make([]byte, 32)
	privateKey[31] = 1

	params := testParams(testAddress(2))
	params.Kind = types.TxTypeStakeDelegate
	result, err := preloader.PreloadStake(context.Background(), params)
	require.NoError(t, err)

	signed, err := signer.SignTransaction(result, types.FeePriorityNormal, privateKey)
	require.NoError(t, err)
	require.Contains(t, string(signed[0]), "protocol.FreezeBalanceV2Contract")

	params.Kind = types.TxTypeStakeUndelegate
	result, err = preloader.PreloadStake(context.Background(), params)
	require.NoError(t, err)

	signed, err = signer.SignTransaction(result, types.FeePriorityNormal, privateKey)
	require.NoError(t, err)
	require.Contains(t, string(signed[0]), "protocol.UnfreezeBalanceV2Contract")

	params.Kind = types.TxTypeStakeRedelegate
	result, err = preloader.PreloadStake(context.Background(), params)
	require.NoError(t, err)

	_, err = signer.SignTransaction(result, types.FeePriorityNormal, privateKey)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported intent")
}

func TestSignRejectsBadChecksum(t *testing.T) {
	address := testAddress(2)
	flip := "1"
	if address[len(address)-1] == '1' {
		flip = "2"
	}
	mangled := address[:len(address)-1] + flip

	_, err := decodeAddress(mangled)
	require.Error(t, err)
}
