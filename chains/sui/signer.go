package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/tidewallet/core/types"
)

const ed25519SignatureScheme = 0x00

// SignedPayload carries the transaction bytes and the serialized
// signature the execution RPC takes as separate arguments.
type SignedPayload struct {
	TxBytes   string `json:"tx_bytes"`
	Signature string `json:"signature"`
}

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSui
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainSui {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil {
		return nil, fmt.Errorf("no fee quote for priority %s", priority)
	}

	txBytes, err := encodeTransferTransaction(params, chainData, fee)
	if err != nil {
		return nil, err
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	pub := key.Public().(ed25519.PublicKey)

	// Signing covers the intent-prefixed transaction, hashed with
	// blake2b-256.
	message := append([]byte{0, 0, 0}, txBytes...)
	digest := blake2b.Sum256(message)
	sig := ed25519.Sign(key, digest[:])

	serialized := make([]byte, 0, 1+len(sig)+len(pub))
	serialized = append(serialized, ed25519SignatureScheme)
	serialized = append(serialized, sig...)
	serialized = append(serialized, pub...)

	payload, err := json.Marshal(&SignedPayload{
		TxBytes:   base64.StdEncoding.EncodeToString(txBytes),
		Signature: base64.StdEncoding.EncodeToString(serialized),
	})
	if err != nil {
		return nil, err
	}

	return [][]byte{payload}, nil
}

// encodeTransferTransaction builds the BCS TransactionData for a
// programmable transaction that splits the amount off the gas coin and
// transfers it to the recipient.
func encodeTransferTransaction(params *types.SignerParams, chainData *ChainData,
	fee *types.Fee) ([]byte, error) {
	sender, err := decodeAddress(params.Owner)
	if err != nil {
		return nil, err
	}
	recipient, err := decodeAddress(params.Input.Destination)
	if err != nil {
		return nil, err
	}

	// TransactionData::V1 wrapping TransactionKind::ProgrammableTransaction.
	tx := []byte{0, 0}

	// Inputs: the amount and the recipient, both pure values.
	tx = appendUleb(tx, 2)
	tx = append(tx, 0)
	tx = appendUleb(tx, 8)
	tx = appendU64(tx, params.Input.Value().Uint64())
	tx = append(tx, 0)
	tx = appendUleb(tx, 32)
	tx = append(tx, recipient...)

	// Commands: SplitCoins(GasCoin, [Input 0]) then
	// TransferObjects([Result 0], Input 1).
	tx = appendUleb(tx, 2)
	tx = append(tx, 2, 0)
	tx = appendUleb(tx, 1)
	tx = append(tx, 1, 0, 0)
	tx = append(tx, 1)
	tx = appendUleb(tx, 1)
	tx = append(tx, 2, 0, 0)
	tx = append(tx, 1, 1, 0)

	tx = append(tx, sender...)

	// Gas data: payment object refs, owner, price, budget.
	tx = appendUleb(tx, uint64(len(chainData.Coins)))
	for _, coin := range chainData.Coins {
		objectId, err := decodeAddress(coin.ObjectId)
		if err != nil {
			return nil, err
		}
		digest, err := base58.Decode(coin.Digest)
		if err != nil || len(digest) != 32 {
			return nil, fmt.Errorf("malformed object digest %q", coin.Digest)
		}
		tx = append(tx, objectId...)
		tx = appendU64(tx, coin.Version)
		tx = appendUleb(tx, 32)
		tx = append(tx, digest...)
	}
	tx = append(tx, sender...)
	tx = appendU64(tx, fee.MaxGasPrice.Uint64())
	tx = appendU64(tx, fee.Amount.Uint64())

	// TransactionExpiration::None.
	tx = append(tx, 0)

	return tx, nil
}

func decodeAddress(address string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(address, "0x"))
	if err != nil || len(raw) > 32 {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	padded := make([]byte, 32)
	copy(padded[32-len(raw):], raw)
	return padded, nil
}

func appendUleb(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func appendU64(buf []byte, v uint64) []byte {
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}
