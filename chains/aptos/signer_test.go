package aptos

import (
	"encoding/json"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func signerParams(params *types.ConfirmParams) *types.SignerParams {
	return &types.SignerParams{
		Input: params,
		Owner: testSender,
		ChainData: &ChainData{
			Chain:    types.ChainAptos,
			Sequence: 8,
		},
		Fees: []*types.Fee{
			types.NewGasFee(types.ChainAptos, types.FeePriorityNormal,
				big.NewInt(150), big.NewInt(9)),
		},
	}
}

func signSubmission(t *testing.T, params *types.ConfirmParams) *Simulation {
	signed, err := NewSignClient().SignTransaction(signerParams(params),
		types.FeePriorityNormal, make([]byte, 32))
	require.NoError(t, err)
	require.Len(t, signed, 1)

	submission := &Simulation{}
	require.NoError(t, json.Unmarshal(signed[0], submission))
	return submission
}

func TestSignNativeTransfer(t *testing.T) {
	submission := signSubmission(t, transferParams())

	require.Equal(t, testSender, submission.Sender)
	require.Equal(t, "8", submission.SequenceNumber)
	require.Equal(t, "0x1::aptos_account::transfer", submission.Payload.Function)
	require.Empty(t, submission.Payload.TypeArguments)
	require.Equal(t, []string{testDestination, "100000000"}, submission.Payload.Arguments)
	require.NotEmpty(t, submission.Signature.Signature)
}

func TestSignTokenTransfer(t *testing.T) {
	params := transferParams()
	params.Kind = types.TxTypeTokenTransfer
	params.AssetId = types.AssetId{Chain: types.ChainAptos, TokenId: "0x1::usdc::USDC"}

	submission := signSubmission(t, params)

	require.Equal(t, "0x1::coin::transfer", submission.Payload.Function)
	require.Equal(t, []string{"0x1::usdc::USDC"}, submission.Payload.TypeArguments)
	require.Equal(t, []string{testDestination, "100000000"}, submission.Payload.Arguments)
}

func TestSignRejectsMalformedCoinType(t *testing.T) {
	params := transferParams()
	params.Kind = types.TxTypeTokenTransfer
	params.AssetId = types.AssetId{Chain: types.ChainAptos, TokenId: "usdc"}

	_, err := NewSignClient().SignTransaction(signerParams(params),
		types.FeePriorityNormal, make([]byte, 32))
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed coin type")
}

func TestEncodeRawTransactionTokenTypeTag(t *testing.T) {
	payload, err := transferPayload(&types.ConfirmParams{
		Kind:        types.TxTypeTokenTransfer,
		AssetId:     types.AssetId{Chain: types.ChainAptos, TokenId: "0x1::usdc::USDC"},
		Destination: testDestination,
		Amount:      big.NewInt(42),
	})
	require.NoError(t, err)

	raw, err := encodeRawTransaction(testSender, 8, 1500, 100, 1_700_000_000, payload)
	require.NoError(t, err)

	// Past sender, sequence, payload variant, module address and the
	// module::function names sits the type-argument vector: one entry,
	// struct variant, then the coin's address.
	offset := 32 + 8 + 1 + 32
	offset += 1 + len("coin")
	offset += 1 + len("transfer")
	require.Equal(t, byte(1), raw[offset])
	require.Equal(t, byte(7), raw[offset+1])

	coinAddr, err := decodeAddress("0x1")
	require.NoError(t, err)
	require.Equal(t, coinAddr, raw[offset+2:offset+34])
	require.Equal(t, byte(len("usdc")), raw[offset+34])
	require.Equal(t, "usdc", string(raw[offset+35:offset+35+4]))
}

func TestSignUsesSelectedFeeTier(t *testing.T) {
	submission := signSubmission(t, transferParams())

	require.Equal(t, strconv.Itoa(9), submission.MaxGasAmount)
	require.Equal(t, strconv.Itoa(150), submission.GasUnitPrice)
}
