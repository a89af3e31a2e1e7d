package solana

import (
	"crypto/ed25519"
	"encoding/binary"
	"math/big"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func testKey(fill byte) solana.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = fill
	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed))
}

func testChainData(unitPrices map[types.FeePriority]uint64) *ChainData {
	return &ChainData{
		Chain:      types.ChainSolana,
		Blockhash:  solana.Hash{}.String(),
		UnitPrices: unitPrices,
	}
}

func testSignerParams(kind types.TxType, unitPrices map[types.FeePriority]uint64) *types.SignerParams {
	return &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:        kind,
			AssetId:     types.NewAssetId(types.ChainSolana),
			From:        types.Account{Chain: types.ChainSolana, Address: testKey(1).PublicKey().String()},
			Destination: testKey(2).PublicKey().String(),
			Amount:      big.NewInt(1_000_000),
		},
		Owner:     testKey(1).PublicKey().String(),
		ChainData: testChainData(unitPrices),
	}
}

func TestSignTransactionSetsUnitPrice(t *testing.T) {
	params := testSignerParams(types.TxTypeTransfer, map[types.FeePriority]uint64{
		types.FeePrioritySlow:   50,
		types.FeePriorityNormal: 100,
		types.FeePriorityFast:   200,
	})

	signed, err := NewSignClient().SignTransaction(params, types.FeePriorityFast, []byte(testKey(1)))
	require.NoError(t, err)
	require.Len(t, signed, 1)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signed[0]))
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 2)

	budget := tx.Message.Instructions[0]
	program, err := tx.Message.Program(budget.ProgramIDIndex)
	require.NoError(t, err)
	require.Equal(t, computeBudgetProgram, program.String())
	require.Equal(t, byte(setComputeUnitPriceOp), budget.Data[0])
	require.Equal(t, uint64(200), binary.LittleEndian.Uint64(budget.Data[1:]))

	transfer := tx.Message.Instructions[1]
	program, err = tx.Message.Program(transfer.ProgramIDIndex)
	require.NoError(t, err)
	require.Equal(t, solana.SystemProgramID, program)
}

func TestSignTransactionSkipsZeroUnitPrice(t *testing.T) {
	params := testSignerParams(types.TxTypeTransfer, map[types.FeePriority]uint64{})

	signed, err := NewSignClient().SignTransaction(params, types.FeePriorityNormal, []byte(testKey(1)))
	require.NoError(t, err)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signed[0]))
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 1)
}

func TestSignTransactionUnknownTierFallsBackToNormal(t *testing.T) {
	params := testSignerParams(types.TxTypeTransfer, map[types.FeePriority]uint64{
		types.FeePriorityNormal: 100,
	})

	signed, err := NewSignClient().SignTransaction(params, types.FeePriority("turbo"), []byte(testKey(1)))
	require.NoError(t, err)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signed[0]))
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 2)
	require.Equal(t, uint64(100), binary.LittleEndian.Uint64(tx.Message.Instructions[0].Data[1:]))
}

func TestSignTransactionRejectsStakeIntent(t *testing.T) {
	params := testSignerParams(types.TxTypeStakeDelegate, nil)
	params.Input.Validator = testKey(3).PublicKey().String()

	_, err := NewSignClient().SignTransaction(params, types.FeePriorityNormal, []byte(testKey(1)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported intent")
}

func TestSignTransactionRejectsForeignChainData(t *testing.T) {
	params := testSignerParams(types.TxTypeTransfer, nil)
	params.ChainData = &ChainData{Chain: types.ChainNear}

	_, err := NewSignClient().SignTransaction(params, types.FeePriorityNormal, []byte(testKey(1)))
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
