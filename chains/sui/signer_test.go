package sui

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/tidewallet/core/types"
)

const (
	testSender    = "0xd77a6cd55073e98d4029b1b0b8bd8d88f45f343dad2732fc9a7965094e635c55"
	testRecipient = "0x7b8e0864967427679b4e129f79dc332a885c6087ec9e187b53451a9006ee15f2"
)

func testCoinDigest() string {
	return base58.Encode(make([]byte, 32))
}

func testClient() *MockClient {
	return &MockClient{
		ReferenceGasPriceFunc: func(ctx context.Context) (uint64, error) {
			return 750, nil
		},
		GetCoinsFunc: func(ctx context.Context, owner string) (*CoinPage, error) {
			return &CoinPage{Data: []Coin{
				{
					CoinObjectId: "0x0101010101010101010101010101010101010101010101010101010101010101",
					Version:      "5",
					Digest:       testCoinDigest(),
					Balance:      "900000000",
				},
			}}, nil
		},
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(testClient())
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainSui),
		From:        types.Account{Chain: types.ChainSui, Address: testSender},
		Destination: testRecipient,
		Amount:      big.NewInt(10_000_000),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(750), chainData.GasPrice)
	require.Len(t, chainData.Coins, 1)
	require.Equal(t, uint64(5), chainData.Coins[0].Version)

	normal := result.Fee(types.FeePriorityNormal)
	fast := result.Fee(types.FeePriorityFast)
	require.Equal(t, big.NewInt(2_250_000), normal.Amount)
	require.Equal(t, big.NewInt(4_500_000), fast.Amount)
}

func TestPreloadWithoutGasCoins(t *testing.T) {
	client := testClient()
	client.GetCoinsFunc = func(ctx context.Context, owner string) (*CoinPage, error) {
		return &CoinPage{}, nil
	}

	preloader := NewPreloader(client)
	_, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainSui),
		From:        types.Account{Chain: types.ChainSui, Address: testSender},
		Destination: testRecipient,
		Amount:      big.NewInt(1),
	})
	require.ErrorContains(t, err, "no gas coins")
}

func TestSignTransaction(t *testing.T) {
	preloader := NewPreloader(testClient())
	params, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainSui),
		From:        types.Account{Chain: types.ChainSui, Address: testSender},
		Destination: testRecipient,
		Amount:      big.NewInt(10_000_000),
	})
	require.NoError(t, err)

	seed := make([]byte, ed25519.SeedSize)
	seed[0] = 7

	signer := NewSignClient()
	signed, err := signer.SignTransaction(params, types.FeePriorityNormal, seed)
	require.NoError(t, err)
	require.Len(t, signed, 1)

	payload := &SignedPayload{}
	require.NoError(t, json.Unmarshal(signed[0], payload))

	txBytes, err := base64.StdEncoding.DecodeString(payload.TxBytes)
	require.NoError(t, err)
	// V1 programmable transaction with two inputs.
	require.Equal(t, []byte{0, 0, 2, 0, 8}, txBytes[:5])

	serialized, err := base64.StdEncoding.DecodeString(payload.Signature)
	require.NoError(t, err)
	require.Len(t, serialized, 97)
	require.Equal(t, byte(ed25519SignatureScheme), serialized[0])

	key := ed25519.NewKeyFromSeed(seed)
	message := append([]byte{0, 0, 0}, txBytes...)
	digest := blake2b.Sum256(message)
	require.True(t, ed25519.Verify(key.Public().(ed25519.PublicKey), digest[:], serialized[1:65]))
	require.Equal(t, []byte(key.Public().(ed25519.PublicKey)), serialized[65:])

	_, err = signer.SignTransaction(&types.SignerParams{
		ChainData: &ChainData{Chain: types.ChainTon},
	}, types.FeePriorityNormal, seed)
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
