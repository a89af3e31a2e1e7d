package evm

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tidewallet/core/types"
)

type SignClient struct {
	chain         types.Chain
	useGasEip1559 bool
}

func NewSignClient(chain types.Chain, useGasEip1559 bool) *SignClient {
	return &SignClient{
		chain:         chain,
		useGasEip1559: useGasEip1559,
	}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return s.chain == chain
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != s.chain {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil || fee.MaxGasPrice == nil || fee.GasLimit == nil {
		return nil, fmt.Errorf("incomplete gas fee quote for priority %q", priority)
	}

	callData, err := hex.DecodeString(chainData.CallData)
	if err != nil {
		return nil, types.ErrChainDataMismatch
	}

	value := big.NewInt(0)
	if params.Input.AssetId.IsNative() && !params.Input.Kind.IsStake() {
		value = params.Input.Value()
	}
	to := common.HexToAddress(chainData.TxTo)

	var tx *ethtypes.Transaction
	if s.useGasEip1559 {
		tip := fee.MinerFee
		if tip == nil {
			tip = big.NewInt(0)
		}
		tx = ethtypes.NewTx(&ethtypes.DynamicFeeTx{
			ChainID:   big.NewInt(chainData.ChainId),
			Nonce:     chainData.Nonce,
			GasTipCap: tip,
			GasFeeCap: fee.MaxGasPrice,
			Gas:       fee.GasLimit.Uint64(),
			To:        &to,
			Value:     value,
			Data:      callData,
		})
	} else {
		tx = ethtypes.NewTx(&ethtypes.LegacyTx{
			Nonce:    chainData.Nonce,
			GasPrice: fee.MaxGasPrice,
			Gas:      fee.GasLimit.Uint64(),
			To:       &to,
			Value:    value,
			Data:     callData,
		})
	}

	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("malformed private key: %w", err)
	}

	signer := ethtypes.LatestSignerForChainID(big.NewInt(chainData.ChainId))
	signed, err := ethtypes.SignTx(tx, signer, key)
	if err != nil {
		return nil, err
	}

	bz, err := signed.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return [][]byte{bz}, nil
}
