package cosmos

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func stakeSignerParams(kind types.TxType) *types.SignerParams {
	return &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:      kind,
			AssetId:   types.NewAssetId(types.ChainCosmos),
			From:      types.Account{Chain: types.ChainCosmos, Address: "cosmos1sender"},
			Validator: "cosmosvaloper1validator",
			Amount:    big.NewInt(1_000_000),
		},
		Owner: "cosmos1sender",
		ChainData: &ChainData{
			Chain:         types.ChainCosmos,
			ChainId:       "cosmoshub-4",
			AccountNumber: 2153,
			Sequence:      41,
		},
		Fees: []*types.Fee{
			types.NewGasFee(types.ChainCosmos, types.FeePriorityNormal,
				big.NewInt(50), big.NewInt(600_000)),
		},
	}
}

func signStake(t *testing.T, kind types.TxType) []byte {
	privateKey := make([]byte, 32)
	privateKey[31] = 1

	signed, err := NewSignClient("uatom").SignTransaction(stakeSignerParams(kind),
		types.FeePriorityNormal, privateKey)
	require.NoError(t, err)
	require.Len(t, signed, 1)
	return signed[0]
}

func TestSignStakeDelegate(t *testing.T) {
	tx := signStake(t, types.TxTypeStakeDelegate)
	require.Contains(t, string(tx), msgDelegateUrl)
	require.Contains(t, string(tx), "cosmosvaloper1validator")
}

func TestSignStakeWithdraw(t *testing.T) {
	// Unbonded principal is released by the chain itself, so both
	// withdraw-flavored intents carry the distribution withdrawal.
	for _, kind := range []types.TxType{types.TxTypeStakeWithdraw, types.TxTypeStakeClaimRewards} {
		tx := signStake(t, kind)
		require.Contains(t, string(tx), msgWithdrawUrl)
	}
}

func TestSignRejectsUnknownIntent(t *testing.T) {
	privateKey := make([]byte, 32)
	privateKey[31] = 1

	params := stakeSignerParams(types.TxTypeActivate)
	_, err := NewSignClient("uatom").SignTransaction(params, types.FeePriorityNormal, privateKey)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported intent")
}
