package cardano

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/blockfrost/blockfrost-go"
	"github.com/echovl/cardano-go"
	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

const (
	testSender = "addr_test1vqyqp03az6w8xuknzpfup3h7ghjwu26z7xa6gk7l9j7j2gs8zfwcy"
	testUtxoTx = "bc82779c18b98f0f5628b0cae12af618020e5388258d3bcce936c380583298dc"
)

func testClient(t *testing.T) *MockClient {
	return &MockClient{
		LatestBlockFunc: func(ctx context.Context) (*blockfrost.Block, error) {
			return &blockfrost.Block{Height: 9_000_000, Slot: 103_000_000}, nil
		},
		ProtocolParamsFunc: func(ctx context.Context) (*cardano.ProtocolParams, error) {
			return &cardano.ProtocolParams{
				MinFeeA: cardano.Coin(44),
				MinFeeB: cardano.Coin(155_381),
			}, nil
		},
		AddressUTXOsFunc: func(ctx context.Context, address string) ([]cardano.UTxO, error) {
			spender, err := cardano.NewAddress(address)
			require.NoError(t, err)
			txHash, err := cardano.NewHash32(testUtxoTx)
			require.NoError(t, err)

			return []cardano.UTxO{{
				Spender: spender,
				TxHash:  txHash,
				Amount:  cardano.NewValue(994_171_615),
				Index:   0,
			}}, nil
		},
	}
}

func testParams() *types.ConfirmParams {
	return &types.ConfirmParams{
		Kind:        types.TxTypeTransfer,
		AssetId:     types.NewAssetId(types.ChainCardano),
		From:        types.Account{Chain: types.ChainCardano, Address: testSender},
		Destination: testSender,
		Amount:      big.NewInt(1_000_000),
	}
}

func TestPreloadNativeTransfer(t *testing.T) {
	preloader := NewPreloader(testClient(t))
	result, err := preloader.PreloadNativeTransfer(context.Background(), testParams())
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint64(103_000_000), chainData.Slot)
	require.Len(t, chainData.Utxos, 1)

	for _, priority := range types.FeePriorities {
		require.Equal(t, big.NewInt(168_581), result.Fee(priority).Amount)
	}
}

func TestPreloadWithoutUtxos(t *testing.T) {
	client := testClient(t)
	client.AddressUTXOsFunc = func(ctx context.Context, address string) ([]cardano.UTxO, error) {
		return nil, nil
	}

	preloader := NewPreloader(client)
	_, err := preloader.PreloadNativeTransfer(context.Background(), testParams())
	require.ErrorContains(t, err, "no unspent outputs")
}

func TestTransactionStatus(t *testing.T) {
	client := testClient(t)
	client.TransactionFunc = func(ctx context.Context, hash string) (*blockfrost.TransactionContent, error) {
		return nil, fmt.Errorf("blockfrost: 404 Not Found")
	}

	status := NewStatusClient(client)
	changes, err := status.TransactionStatus(context.Background(), &types.TxStateRequest{
		Chain: types.ChainCardano,
		Hash:  testUtxoTx,
	})
	require.NoError(t, err)
	require.Equal(t, types.StatePending, changes.State)

	client.TransactionFunc = func(ctx context.Context, hash string) (*blockfrost.TransactionContent, error) {
		return &blockfrost.TransactionContent{Fees: "171253", BlockHeight: 9_000_100}, nil
	}
	changes, err = status.TransactionStatus(context.Background(), &types.TxStateRequest{
		Chain: types.ChainCardano,
		Hash:  testUtxoTx,
	})
	require.NoError(t, err)
	require.Equal(t, types.StateConfirmed, changes.State)
	require.Equal(t, big.NewInt(171_253), changes.Fee)
}

func TestSignRejectsForeignChainData(t *testing.T) {
	signer := NewSignClient()
	_, err := signer.SignTransaction(&types.SignerParams{
		Input:     testParams(),
		ChainData: &ChainData{Chain: types.ChainAlgorand},
	}, types.FeePriorityNormal, nil)
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
