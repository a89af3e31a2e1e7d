package evm

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/tidewallet/core/types"
)

func statusRequest() *types.TxStateRequest {
	return &types.TxStateRequest{
		Chain:  types.ChainEthereum,
		Hash:   "0x16a5888ba9c50cb457eee1ea9d599c5cbaa2da19c8e4fc11f3b6c2d1d17f9113",
		Sender: "0x1cbd3b2770909d4e10f157cabc84c7264073c9ec",
	}
}

func TestTransactionStatusConfirmed(t *testing.T) {
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			return &ethtypes.Receipt{
				Status:            ethtypes.ReceiptStatusSuccessful,
				BlockNumber:       big.NewInt(1_000_000),
				GasUsed:           21_000,
				EffectiveGasPrice: big.NewInt(2),
			}, nil
		},
	}

	statusClient := NewStatusClient(types.ChainEthereum, client)
	changes, err := statusClient.TransactionStatus(context.Background(), statusRequest())
	require.NoError(t, err)
	require.Equal(t, types.StateConfirmed, changes.State)
	require.Equal(t, big.NewInt(42_000), changes.Fee)
}

func TestTransactionStatusReverted(t *testing.T) {
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			return &ethtypes.Receipt{
				Status:      ethtypes.ReceiptStatusFailed,
				BlockNumber: big.NewInt(1_000_000),
			}, nil
		},
	}

	statusClient := NewStatusClient(types.ChainEthereum, client)
	changes, err := statusClient.TransactionStatus(context.Background(), statusRequest())
	require.NoError(t, err)
	require.Equal(t, types.StateReverted, changes.State)
}

func TestTransactionStatusNotFoundStaysPending(t *testing.T) {
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			return nil, ethereum.NotFound
		},
	}

	statusClient := NewStatusClient(types.ChainEthereum, client)
	changes, err := statusClient.TransactionStatus(context.Background(), statusRequest())
	require.NoError(t, err)
	require.Equal(t, types.StatePending, changes.State)
}

func TestSignClientRejectsForeignChainData(t *testing.T) {
	signClient := NewSignClient(types.ChainEthereum, true)

	params := &types.SignerParams{
		Input: &types.ConfirmParams{
			Kind:    types.TxTypeTransfer,
			AssetId: types.NewAssetId(types.ChainEthereum),
			From:    types.Account{Chain: types.ChainEthereum, Address: "0x1cbd3b2770909d4e10f157cabc84c7264073c9ec"},
		},
		ChainData: &ChainData{Chain: types.ChainSmartChain, ChainId: 56},
	}

	_, err := signClient.SignTransaction(params, types.FeePriorityNormal, make([]byte, 32))
	require.ErrorIs(t, err, types.ErrChainDataMismatch)
}
