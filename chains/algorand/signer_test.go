package algorand

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func TestMsgpackCanonicalEncoding(t *testing.T) {
	bz, err := encodeMap([]mapField{
		{key: "b", value: uint64(200)},
		{key: "a", value: uint64(1)},
	})
	require.NoError(t, err)
	// Keys come out sorted; 200 needs the uint8 marker.
	require.Equal(t, []byte{0x82, 0xa1, 'a', 0x01, 0xa1, 'b', 0xcc, 200}, bz)

	bz, err = encodeMap([]mapField{{key: "fv", value: uint64(70000)}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0xa2, 'f', 'v', 0xce, 0x00, 0x01, 0x11, 0x70}, bz)
}

func testGenesisHash() string {
	hash := make([]byte, 32)
	hash[0] = 0xaa
	return base64.StdEncoding.EncodeToString(hash)
}

func testClient() *MockClient {
	return &MockClient{
		TransactionParamsFunc: func() (*TransactionParams, error) {
			return &TransactionParams{
				Fee:         0,
				GenesisId:   "mainnet-v1.0",
				GenesisHash: testGenesisHash(),
				LastRound:   44_000_000,
				MinFee:      1000,
			}, nil
		},
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(testClient())
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainAlgorand),
		From:        types.Account{Chain: types.ChainAlgorand, Address: "SENDER"},
		Destination: "RECEIVER",
		Amount:      big.NewInt(1_000_000),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(44_000_000), chainData.FirstValid)
	require.Equal(t, uint64(44_001_000), chainData.LastValid)
	require.Equal(t, "mainnet-v1.0", chainData.GenesisId)

	for _, priority := range types.FeePriorities {
		require.Equal(t, big.NewInt(1000), result.Fee(priority).Amount)
	}
}

func TestSignTransaction(t *testing.T) {
	senderSeed := make([]byte, ed25519.SeedSize)
	senderSeed[0] = 1
	receiverSeed := make([]byte, ed25519.SeedSize)
	receiverSeed[0] = 2

	senderKey := ed25519.NewKeyFromSeed(senderSeed)
	senderPub := senderKey.Public().(ed25519.PublicKey)
	receiverPub := ed25519.NewKeyFromSeed(receiverSeed).Public().(ed25519.PublicKey)

	preloader := NewPreloader(testClient())
	params, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainAlgorand),
		From:        types.Account{Chain: types.ChainAlgorand, Address: EncodeAddress(senderPub)},
		Destination: EncodeAddress(receiverPub),
		Amount:      big.NewInt(1_000_000),
		Memo:        "invoice 7",
	})
	require.NoError(t, err)

	signer := NewSignClient()
	signed, err := signer.SignTransaction(params, types.FeePriorityNormal, senderSeed)
	require.NoError(t, err)
	require.Len(t, signed, 1)

	// SignedTxn is a two-entry map, sig before txn.
	bz := signed[0]
	require.Equal(t, byte(0x82), bz[0])
	require.Equal(t, []byte{0xa3, 's', 'i', 'g'}, bz[1:5])

	sig := bz[7 : 7+64]
	txn := bz[7+64+4:]
	require.True(t, ed25519.Verify(senderPub, append([]byte("TX"), txn...), sig))

	_, err = signer.SignTransaction(&types.SignerParams{
		ChainData: &ChainData{Chain: types.ChainSui},
	}, types.FeePriorityNormal, senderSeed)
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}

func TestDecodeAddressRejectsBadChecksum(t *testing.T) {
	pub := make([]byte, 32)
	address := EncodeAddress(pub)

	_, err := decodeAddress(address)
	require.NoError(t, err)

	mangled := "A" + address[1:]
	if address[0] == 'A' {
		mangled = "B" + address[1:]
	}
	_, err = decodeAddress(mangled)
	require.Error(t, err)
}
