package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"

	"github.com/tidewallet/core/types"
	"github.com/tidewallet/core/utils"
)

const (
	addressPrefix = 0x41

	transferContractType    = 1
	transferContractTypeUrl = "type.googleapis.com/protocol.TransferContract"

	freezeContractType      = 54
	freezeContractTypeUrl   = "type.googleapis.com/protocol.FreezeBalanceV2Contract"
	unfreezeContractType    = 55
	unfreezeContractTypeUrl = "type.googleapis.com/protocol.UnfreezeBalanceV2Contract"
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainTron
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainTron {
		return nil, types.ErrChainDataMismatch
	}

	refBlockBytes, err := hex.DecodeString(chainData.RefBlockBytes)
	if err != nil {
		return nil, fmt.Errorf("malformed ref block bytes %q", chainData.RefBlockBytes)
	}
	refBlockHash, err := hex.DecodeString(chainData.RefBlockHash)
	if err != nil {
		return nil, fmt.Errorf("malformed ref block hash %q", chainData.RefBlockHash)
	}

	contract, err := s.buildContract(params)
	if err != nil {
		return nil, err
	}

	var rawData []byte
	rawData = utils.AppendProtoBytes(rawData, 1, refBlockBytes)
	rawData = utils.AppendProtoBytes(rawData, 4, refBlockHash)
	rawData = utils.AppendProtoVarint(rawData, 8, uint64(chainData.Expiration))
	rawData = utils.AppendProtoBytes(rawData, 11, contract)
	rawData = utils.AppendProtoVarint(rawData, 14, uint64(chainData.Timestamp))

	// The transaction id is the hash of raw_data, and it is also the
	// digest the signature covers.
	txid := sha256.Sum256(rawData)

	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}
	sig, err := ethcrypto.Sign(txid[:], key)
	if err != nil {
		return nil, err
	}

	var tx []byte
	tx = utils.AppendProtoBytes(tx, 1, rawData)
	tx = utils.AppendProtoBytes(tx, 2, sig)

	return [][]byte{tx}, nil
}

// buildContract encodes the contract for the intent. Stake intents use
// the resource-freezing contracts; the default bandwidth resource is
// proto3 zero and stays off the wire.
func (s *SignClient) buildContract(params *types.SignerParams) ([]byte, error) {
	owner, err := decodeAddress(params.Owner)
	if err != nil {
		return nil, err
	}
	amount := params.Input.Value().Uint64()

	var contractType uint64
	var typeUrl string
	var parameter []byte

	switch params.Input.Kind {
	case types.TxTypeTransfer:
		to, err := decodeAddress(params.Input.Destination)
		if err != nil {
			return nil, err
		}
		contractType, typeUrl = transferContractType, transferContractTypeUrl
		parameter = utils.AppendProtoBytes(parameter, 1, owner)
		parameter = utils.AppendProtoBytes(parameter, 2, to)
		parameter = utils.AppendProtoVarint(parameter, 3, amount)

	case types.TxTypeStakeDelegate:
		contractType, typeUrl = freezeContractType, freezeContractTypeUrl
		parameter = utils.AppendProtoBytes(parameter, 1, owner)
		parameter = utils.AppendProtoVarint(parameter, 2, amount)

	case types.TxTypeStakeUndelegate:
		contractType, typeUrl = unfreezeContractType, unfreezeContractTypeUrl
		parameter = utils.AppendProtoBytes(parameter, 1, owner)
		parameter = utils.AppendProtoVarint(parameter, 2, amount)

	default:
		return nil, fmt.Errorf("unsupported intent %s", params.Input.Kind)
	}

	var any []byte
	any = utils.AppendProtoString(any, 1, typeUrl)
	any = utils.AppendProtoBytes(any, 2, parameter)

	var contract []byte
	contract = utils.AppendProtoVarint(contract, 1, contractType)
	contract = utils.AppendProtoBytes(contract, 2, any)
	return contract, nil
}

// decodeAddress decodes a base58check Tron address into its 21-byte
// on-chain form.
func decodeAddress(address string) ([]byte, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	if len(decoded) != 25 || decoded[0] != addressPrefix {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	payload, checksum := decoded[:21], decoded[21:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	for i := 0; i < 4; i++ {
		if checksum[i] != second[i] {
			return nil, fmt.Errorf("address %q checksum mismatch", address)
		}
	}
	return payload, nil
}
