package hypercore

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func TestFormatUsd(t *testing.T) {
	require.Equal(t, "12", formatUsd(big.NewInt(12_000_000)))
	require.Equal(t, "12.5", formatUsd(big.NewInt(12_500_000)))
	require.Equal(t, "0.000001", formatUsd(big.NewInt(1)))
	require.Equal(t, "0", formatUsd(big.NewInt(0)))
}

func TestSignTransaction(t *testing.T) {
	privateKey := make([]byte, 32)
	privateKey[31] = 1
	key, err := ethcrypto.ToECDSA(privateKey)
	require.NoError(t, err)

	params := &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:        types.TxTypeTransfer,
			AssetId:     types.NewAssetId(types.ChainHyperCore),
			From:        types.Account{Chain: types.ChainHyperCore, Address: "0xSender"},
			Destination: "0x1234567890AbcdEF1234567890aBcdef12345678",
			Amount:      big.NewInt(25_000_000),
		},
		ChainData: &ChainData{Chain: types.ChainHyperCore, Time: 1_700_000_000_000},
	}

	signer := NewSignClient()
	signed, err := signer.SignTransaction(params, types.FeePriorityNormal, privateKey)
	require.NoError(t, err)
	require.Len(t, signed, 1)

	request := &SignedRequest{}
	require.NoError(t, json.Unmarshal(signed[0], request))
	require.Equal(t, "usdSend", request.Action.Type)
	require.Equal(t, "25", request.Action.Amount)
	require.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", request.Action.Destination)
	require.Equal(t, uint64(1_700_000_000_000), request.Nonce)

	// The signature must recover to the signing key.
	digest, err := signDigest(request.Action)
	require.NoError(t, err)

	r, err := hexutil.Decode(request.Signature.R)
	require.NoError(t, err)
	s, err := hexutil.Decode(request.Signature.S)
	require.NoError(t, err)

	sig := make([]byte, 65)
	copy(sig[:32], r)
	copy(sig[32:64], s)
	sig[64] = request.Signature.V - 27

	recovered, err := ethcrypto.SigToPub(digest, sig)
	require.NoError(t, err)
	require.Equal(t, ethcrypto.PubkeyToAddress(key.PublicKey), ethcrypto.PubkeyToAddress(*recovered))

	_, err = signer.SignTransaction(&types.SignerParams{
		ChainData: &ChainData{Chain: types.ChainSolana},
	}, types.FeePriorityNormal, privateKey)
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
