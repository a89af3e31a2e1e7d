package cosmos

import (
	"crypto/sha256"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/tidewallet/core/types"
	"github.com/tidewallet/core/utils"
)

const (
	msgSendUrl         = "/cosmos.bank.v1beta1.MsgSend"
	msgDelegateUrl     = "/cosmos.staking.v1beta1.MsgDelegate"
	msgUndelegateUrl   = "/cosmos.staking.v1beta1.MsgUndelegate"
	msgRedelegateUrl   = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
	msgWithdrawUrl     = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	secp256k1PubKeyUrl = "/cosmos.crypto.secp256k1.PubKey"

	signModeDirect = 1
)

type SignClient struct {
	denom string
}

func NewSignClient(denom string) *SignClient {
	return &SignClient{denom: denom}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainCosmos
}

// SignTransaction encodes a SIGN_MODE_DIRECT transaction. The message
// set is fixed (bank send plus the staking messages), so the proto wire
// format is written directly instead of going through generated types.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainCosmos {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil || fee.GasLimit == nil {
		return nil, fmt.Errorf("missing %s fee quote", priority)
	}

	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}

	msg, err := s.encodeMessage(params)
	if err != nil {
		return nil, err
	}

	bodyBytes := utils.AppendProtoBytes(nil, 1, msg)
	if params.Input.Memo != "" {
		bodyBytes = utils.AppendProtoString(bodyBytes, 2, params.Input.Memo)
	}

	authInfoBytes := s.encodeAuthInfo(ethcrypto.CompressPubkey(&key.PublicKey),
		chainData.Sequence, fee)

	var signDoc []byte
	signDoc = utils.AppendProtoBytes(signDoc, 1, bodyBytes)
	signDoc = utils.AppendProtoBytes(signDoc, 2, authInfoBytes)
	signDoc = utils.AppendProtoString(signDoc, 3, chainData.ChainId)
	signDoc = utils.AppendProtoVarint(signDoc, 4, chainData.AccountNumber)

	digest := sha256.Sum256(signDoc)
	signature, err := ethcrypto.Sign(digest[:], key)
	if err != nil {
		return nil, err
	}

	var txRaw []byte
	txRaw = utils.AppendProtoBytes(txRaw, 1, bodyBytes)
	txRaw = utils.AppendProtoBytes(txRaw, 2, authInfoBytes)
	// Drop the recovery byte; cosmos expects a 64-byte r||s signature.
	txRaw = utils.AppendProtoBytes(txRaw, 3, signature[:64])

	return [][]byte{txRaw}, nil
}

func (s *SignClient) encodeMessage(params *types.SignerParams) ([]byte, error) {
	input := params.Input
	coin := s.encodeCoin(input.Value().String())

	var typeUrl string
	var value []byte
	switch input.Kind {
	case types.TxTypeTransfer:
		typeUrl = msgSendUrl
		value = utils.AppendProtoString(value, 1, params.Owner)
		value = utils.AppendProtoString(value, 2, input.Destination)
		value = utils.AppendProtoBytes(value, 3, coin)

	case types.TxTypeStakeDelegate:
		typeUrl = msgDelegateUrl
		value = utils.AppendProtoString(value, 1, params.Owner)
		value = utils.AppendProtoString(value, 2, input.Validator)
		value = utils.AppendProtoBytes(value, 3, coin)

	case types.TxTypeStakeUndelegate:
		typeUrl = msgUndelegateUrl
		value = utils.AppendProtoString(value, 1, params.Owner)
		value = utils.AppendProtoString(value, 2, input.Validator)
		value = utils.AppendProtoBytes(value, 3, coin)

	case types.TxTypeStakeRedelegate:
		typeUrl = msgRedelegateUrl
		value = utils.AppendProtoString(value, 1, params.Owner)
		value = utils.AppendProtoString(value, 2, input.SrcValidator)
		value = utils.AppendProtoString(value, 3, input.Validator)
		value = utils.AppendProtoBytes(value, 4, coin)

	// Undelegated principal is released by the chain once the unbonding
	// period ends, so a withdraw intent maps to the distribution
	// withdrawal just like a rewards claim.
	case types.TxTypeStakeWithdraw, types.TxTypeStakeClaimRewards:
		typeUrl = msgWithdrawUrl
		value = utils.AppendProtoString(value, 1, params.Owner)
		value = utils.AppendProtoString(value, 2, input.Validator)

	default:
		return nil, fmt.Errorf("unsupported intent %s", input.Kind)
	}

	var msg []byte
	msg = utils.AppendProtoString(msg, 1, typeUrl)
	msg = utils.AppendProtoBytes(msg, 2, value)
	return msg, nil
}

func (s *SignClient) encodeCoin(amount string) []byte {
	var coin []byte
	coin = utils.AppendProtoString(coin, 1, s.denom)
	coin = utils.AppendProtoString(coin, 2, amount)
	return coin
}

func (s *SignClient) encodeAuthInfo(pubKey []byte, sequence uint64, fee *types.Fee) []byte {
	pubKeyValue := utils.AppendProtoBytes(nil, 1, pubKey)

	var pubKeyAny []byte
	pubKeyAny = utils.AppendProtoString(pubKeyAny, 1, secp256k1PubKeyUrl)
	pubKeyAny = utils.AppendProtoBytes(pubKeyAny, 2, pubKeyValue)

	single := utils.AppendProtoVarint(nil, 1, signModeDirect)
	modeInfo := utils.AppendProtoBytes(nil, 1, single)

	var signerInfo []byte
	signerInfo = utils.AppendProtoBytes(signerInfo, 1, pubKeyAny)
	signerInfo = utils.AppendProtoBytes(signerInfo, 2, modeInfo)
	signerInfo = utils.AppendProtoVarint(signerInfo, 3, sequence)

	var feeMsg []byte
	feeMsg = utils.AppendProtoBytes(feeMsg, 1, s.encodeCoin(fee.Amount.String()))
	feeMsg = utils.AppendProtoVarint(feeMsg, 2, fee.GasLimit.Uint64())

	var authInfo []byte
	authInfo = utils.AppendProtoBytes(authInfo, 1, signerInfo)
	authInfo = utils.AppendProtoBytes(authInfo, 2, feeMsg)
	return authInfo
}
