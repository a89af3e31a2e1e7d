package aptos

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/tidewallet/core/types"
)

const (
	mainnetChainId      = 1
	transactionLifetime = 10 * time.Minute

	rawTransactionSalt = "APTOS::RawTransaction"
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainAptos
}

// SignTransaction builds the transfer entry function, signs the BCS raw
// transaction and returns the JSON submission body.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainAptos {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil || fee.MaxGasPrice == nil || fee.GasLimit == nil {
		return nil, fmt.Errorf("missing %s fee quote", priority)
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	expiration := time.Now().Add(transactionLifetime).Unix()

	payload, err := transferPayload(params.Input)
	if err != nil {
		return nil, err
	}

	raw, err := encodeRawTransaction(params.Owner, chainData.Sequence,
		fee.GasLimit.Uint64(), fee.MaxGasPrice.Uint64(), uint64(expiration), payload)
	if err != nil {
		return nil, err
	}

	message := append(signingSalt(), raw...)
	signature := ed25519.Sign(key, message)
	publicKey := key.Public().(ed25519.PublicKey)

	submission := &Simulation{
		Sender:                  params.Owner,
		SequenceNumber:          strconv.FormatUint(chainData.Sequence, 10),
		MaxGasAmount:            fee.GasLimit.String(),
		GasUnitPrice:            fee.MaxGasPrice.String(),
		ExpirationTimestampSecs: strconv.FormatInt(expiration, 10),
		Payload:                 payload.json(),
		Signature: Signature{
			Type:      "ed25519_signature",
			PublicKey: "0x" + hex.EncodeToString(publicKey),
			Signature: "0x" + hex.EncodeToString(signature),
		},
	}

	bz, err := json.Marshal(submission)
	if err != nil {
		return nil, err
	}
	return [][]byte{bz}, nil
}

func signingSalt() []byte {
	sum := sha3.Sum256([]byte(rawTransactionSalt))
	return sum[:]
}

// entryFunction is the payload shape this signer produces: a framework
// transfer call with address and amount arguments. Token transfers call
// 0x1::coin::transfer with the coin struct as the type argument.
type entryFunction struct {
	module      string
	name        string
	function    string
	coinType    string
	destination string
	amount      uint64
}

func transferPayload(input *types.ConfirmParams) (*entryFunction, error) {
	if input.AssetId.IsNative() {
		return &entryFunction{
			module:      "0x1",
			name:        "aptos_account",
			function:    "transfer",
			destination: input.Destination,
			amount:      input.Value().Uint64(),
		}, nil
	}

	if _, err := parseCoinType(input.AssetId.TokenId); err != nil {
		return nil, err
	}
	return &entryFunction{
		module:      "0x1",
		name:        "coin",
		function:    "transfer",
		coinType:    input.AssetId.TokenId,
		destination: input.Destination,
		amount:      input.Value().Uint64(),
	}, nil
}

// coinStruct is a parsed Move struct tag like 0x1::aptos_coin::AptosCoin.
type coinStruct struct {
	address string
	module  string
	name    string
}

func parseCoinType(tokenId string) (*coinStruct, error) {
	parts := strings.Split(tokenId, "::")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed coin type %q", tokenId)
	}
	return &coinStruct{address: parts[0], module: parts[1], name: parts[2]}, nil
}

func (e *entryFunction) json() Payload {
	typeArguments := []string{}
	if e.coinType != "" {
		typeArguments = []string{e.coinType}
	}
	return Payload{
		Type:          "entry_function_payload",
		Function:      fmt.Sprintf("%s::%s::%s", e.module, e.name, e.function),
		TypeArguments: typeArguments,
		Arguments:     []string{e.destination, strconv.FormatUint(e.amount, 10)},
	}
}

func encodeRawTransaction(sender string, sequence, maxGas, gasPrice, expiration uint64,
	payload *entryFunction) ([]byte, error) {
	var buf bytes.Buffer

	senderBytes, err := decodeAddress(sender)
	if err != nil {
		return nil, err
	}
	buf.Write(senderBytes)
	writeU64(&buf, sequence)

	// Payload variant 2 = EntryFunction.
	writeUleb(&buf, 2)
	moduleAddr, err := decodeAddress(payload.module)
	if err != nil {
		return nil, err
	}
	buf.Write(moduleAddr)
	writeString(&buf, payload.name)
	writeString(&buf, payload.function)

	if payload.coinType == "" {
		writeUleb(&buf, 0) // no type arguments
	} else {
		coin, err := parseCoinType(payload.coinType)
		if err != nil {
			return nil, err
		}
		coinAddr, err := decodeAddress(coin.address)
		if err != nil {
			return nil, err
		}
		writeUleb(&buf, 1)
		// TypeTag variant 7 = Struct.
		writeUleb(&buf, 7)
		buf.Write(coinAddr)
		writeString(&buf, coin.module)
		writeString(&buf, coin.name)
		writeUleb(&buf, 0) // no nested type arguments
	}

	destBytes, err := decodeAddress(payload.destination)
	if err != nil {
		return nil, err
	}
	var amountArg bytes.Buffer
	writeU64(&amountArg, payload.amount)
	writeUleb(&buf, 2)
	writeBytes(&buf, destBytes)
	writeBytes(&buf, amountArg.Bytes())

	writeU64(&buf, maxGas)
	writeU64(&buf, gasPrice)
	writeU64(&buf, expiration)
	buf.WriteByte(mainnetChainId)

	return buf.Bytes(), nil
}

// decodeAddress parses a hex account address, left-padding short forms
// like 0x1 to the full 32 bytes.
func decodeAddress(address string) ([]byte, error) {
	trimmed := strings.TrimPrefix(address, "0x")
	if len(trimmed)%2 == 1 {
		trimmed = "0" + trimmed
	}
	bz, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(bz) > 32 {
		return nil, fmt.Errorf("address %q too long", address)
	}
	padded := make([]byte, 32)
	copy(padded[32-len(bz):], bz)
	return padded, nil
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], v)
	buf.Write(le[:])
}

func writeUleb(buf *bytes.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf.WriteByte(b | 0x80)
			continue
		}
		buf.WriteByte(b)
		return
	}
}

func writeBytes(buf *bytes.Buffer, bz []byte) {
	writeUleb(buf, uint64(len(bz)))
	buf.Write(bz)
}

func writeString(buf *bytes.Buffer, s string) {
	writeBytes(buf, []byte(s))
}
