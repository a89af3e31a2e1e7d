package near

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

var testBlockHash = base58.Encode(make([]byte, 32))

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestPreloadUsesAccessKeyNonce(t *testing.T) {
	client := &MockClient{
		ViewAccessKeyFunc: func(ctx context.Context, accountId, publicKey string) (*AccessKey, error) {
			require.Equal(t, "alice.near", accountId)
			return &AccessKey{Nonce: 7, BlockHash: testBlockHash}, nil
		},
		GasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(100_000_000), nil
		},
	}

	preloader := NewPreloader(client)
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainNear),
		From:        types.Account{Chain: types.ChainNear, Address: "alice.near", PubKey: make([]byte, 32)},
		Destination: "bob.near",
		Amount:      big.NewInt(1),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(7), chainData.Nonce)
	require.Equal(t, testBlockHash, chainData.BlockHash)

	normal := result.Fee(types.FeePriorityNormal)
	fast := result.Fee(types.FeePriorityFast)
	require.Equal(t, big.NewInt(100_000_000), normal.MaxGasPrice)
	require.Equal(t, big.NewInt(200_000_000), fast.MaxGasPrice)
}

func TestPreloadUnknownKeyStartsAtZero(t *testing.T) {
	client := &MockClient{
		ViewAccessKeyFunc: func(ctx context.Context, accountId, publicKey string) (*AccessKey, error) {
			return &AccessKey{Error: "access key not found"}, nil
		},
		LatestBlockFunc: func(ctx context.Context) (*BlockHeader, error) {
			header := &BlockHeader{}
			header.Header.Hash = testBlockHash
			header.Header.Height = 1000
			return header, nil
		},
		GasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(100_000_000), nil
		},
	}

	preloader := NewPreloader(client)
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:    types.TxTypeTransfer,
		AssetId: types.NewAssetId(types.ChainNear),
		From:    types.Account{Chain: types.ChainNear, Address: "fresh.near", PubKey: make([]byte, 32)},
		Amount:  big.NewInt(1),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(0), chainData.Nonce)
	require.Equal(t, testBlockHash, chainData.BlockHash)
}

func TestSignTransactionIncrementsNonce(t *testing.T) {
	signer := NewSignClient()
	seed := testSeed()
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

	params := &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:        types.TxTypeTransfer,
			AssetId:     types.NewAssetId(types.ChainNear),
			From:        types.Account{Chain: types.ChainNear, Address: "alice.near", PubKey: pub},
			Destination: "bob.near",
			Amount:      big.NewInt(250),
		},
		Owner: "alice.near",
		ChainData: &ChainData{
			Chain:     types.ChainNear,
			Nonce:     7,
			BlockHash: testBlockHash,
		},
		Fees: []*types.Fee{
			types.NewGasFee(types.ChainNear, types.FeePriorityNormal,
				big.NewInt(100_000_000), big.NewInt(transferGas)),
		},
	}

	payloads, err := signer.SignTransaction(params, types.FeePriorityNormal, seed)
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	signed := &signedTransaction{}
	require.NoError(t, borsh.Deserialize(signed, payloads[0]))
	require.Equal(t, uint64(8), signed.Transaction.Nonce)
	require.Equal(t, "alice.near", signed.Transaction.SignerId)
	require.Equal(t, "bob.near", signed.Transaction.ReceiverId)
	require.Len(t, signed.Transaction.Actions, 1)

	txBytes, err := borsh.Serialize(signed.Transaction)
	require.NoError(t, err)
	digest := sha256.Sum256(txBytes)
	require.True(t, ed25519.Verify(pub, digest[:], signed.Signature.Data[:]))
}

func TestSignTransactionRejectsForeignChainData(t *testing.T) {
	signer := NewSignClient()
	_, err := signer.SignTransaction(&types.SignerParams{
		Input:     &types.ConfirmParams{},
		ChainData: &struct{ types.ChainSignData }{},
	}, types.FeePriorityNormal, testSeed())
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
