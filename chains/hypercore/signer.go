package hypercore

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/tidewallet/core/types"
)

const (
	// Sends are signed against the Arbitrum chain id regardless of where
	// the wallet lives.
	signatureChainId = 42161

	usdDecimals = 6
)

// usdSendAction is the core transfer action. Field order matters: the
// exchange hashes the serialized action, so keys stay in this exact
// order.
type usdSendAction struct {
	Type             string `json:"type"`
	HyperliquidChain string `json:"hyperliquidChain"`
	SignatureChainId string `json:"signatureChainId"`
	Destination      string `json:"destination"`
	Amount           string `json:"amount"`
	Time             uint64 `json:"time"`
}

type rsvSignature struct {
	R string `json:"r"`
	S string `json:"s"`
	V uint8  `json:"v"`
}

// SignedRequest is the body the broadcaster posts to the exchange.
type SignedRequest struct {
	Action    usdSendAction `json:"action"`
	Nonce     uint64        `json:"nonce"`
	Signature rsvSignature  `json:"signature"`
}

type SignClient struct {
	hyperliquidChain string
}

func NewSignClient() *SignClient {
	return &SignClient{hyperliquidChain: "Mainnet"}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainHyperCore
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainHyperCore {
		return nil, types.ErrChainDataMismatch
	}

	action := usdSendAction{
		Type:             "usdSend",
		HyperliquidChain: s.hyperliquidChain,
		SignatureChainId: hexutil.EncodeUint64(signatureChainId),
		Destination:      strings.ToLower(params.Input.Destination),
		Amount:           formatUsd(params.Input.Value()),
		Time:             chainData.Time,
	}

	digest, err := signDigest(action)
	if err != nil {
		return nil, err
	}

	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}
	sig, err := ethcrypto.Sign(digest, key)
	if err != nil {
		return nil, err
	}

	request, err := json.Marshal(&SignedRequest{
		Action: action,
		Nonce:  chainData.Time,
		Signature: rsvSignature{
			R: hexutil.Encode(sig[:32]),
			S: hexutil.Encode(sig[32:64]),
			V: sig[64] + 27,
		},
	})
	if err != nil {
		return nil, err
	}

	return [][]byte{request}, nil
}

// signDigest computes the EIP-712 digest for a usdSend action.
func signDigest(action usdSendAction) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"HyperliquidTransaction:UsdSend": {
				{Name: "hyperliquidChain", Type: "string"},
				{Name: "destination", Type: "string"},
				{Name: "amount", Type: "string"},
				{Name: "time", Type: "uint64"},
			},
		},
		PrimaryType: "HyperliquidTransaction:UsdSend",
		Domain: apitypes.TypedDataDomain{
			Name:              "HyperliquidSignTransaction",
			Version:           "1",
			ChainId:           math.NewHexOrDecimal256(signatureChainId),
			VerifyingContract: "0x0000000000000000000000000000000000000000",
		},
		Message: apitypes.TypedDataMessage{
			"hyperliquidChain": action.HyperliquidChain,
			"destination":      action.Destination,
			"amount":           action.Amount,
			"time":             fmt.Sprintf("%d", action.Time),
		},
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, err
	}
	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, err
	}

	raw := append([]byte{0x19, 0x01}, domainSeparator...)
	raw = append(raw, messageHash...)
	return ethcrypto.Keccak256(raw), nil
}

// formatUsd renders atomic units as the decimal string the exchange
// expects, trailing zeros trimmed.
func formatUsd(amount *big.Int) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(usdDecimals), nil)
	whole, frac := new(big.Int).QuoRem(amount, scale, new(big.Int))

	if frac.Sign() == 0 {
		return whole.String()
	}

	fracStr := fmt.Sprintf("%0*d", usdDecimals, frac)
	fracStr = strings.TrimRight(fracStr, "0")
	return whole.String() + "." + fracStr
}
