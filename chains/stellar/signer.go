package stellar

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tidewallet/core/types"
	"github.com/tidewallet/core/utils"
)

const (
	networkPassphrase = "Public Global Stellar Network ; September 2015"

	envelopeTypeTx = 2

	memoNone = 0
	memoText = 1

	opCreateAccount = 0
	opPayment       = 1

	transactionLifetime = 5 * time.Minute
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainStellar
}

// SignTransaction encodes a one-operation TransactionV1Envelope in XDR
// and signs its network-scoped digest.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainStellar {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil {
		return nil, fmt.Errorf("missing %s fee quote", priority)
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	pub := key.Public().(ed25519.PublicKey)

	destination, err := decodeStrkey(params.Input.Destination)
	if err != nil {
		return nil, err
	}

	var tx bytes.Buffer
	// Source account, MuxedAccount KEY_TYPE_ED25519.
	writeU32(&tx, 0)
	tx.Write(pub)
	writeU32(&tx, uint32(fee.Amount.Uint64()))
	writeU64(&tx, uint64(chainData.Sequence+1))

	// Preconditions: time bounds only.
	writeU32(&tx, 1)
	writeU64(&tx, 0)
	writeU64(&tx, uint64(time.Now().Add(transactionLifetime).Unix()))

	writeMemo(&tx, params.Input.Memo)

	// One operation, no per-op source account.
	writeU32(&tx, 1)
	writeU32(&tx, 0)
	if chainData.CreateDestination {
		writeU32(&tx, opCreateAccount)
		writeU32(&tx, 0) // PUBLIC_KEY_TYPE_ED25519
		tx.Write(destination)
		writeU64(&tx, params.Input.Value().Uint64())
	} else {
		writeU32(&tx, opPayment)
		writeU32(&tx, 0) // MuxedAccount KEY_TYPE_ED25519
		tx.Write(destination)
		writeU32(&tx, 0) // ASSET_TYPE_NATIVE
		writeU64(&tx, params.Input.Value().Uint64())
	}

	// ext
	writeU32(&tx, 0)

	signature := ed25519.Sign(key, signatureBase(tx.Bytes()))

	var envelope bytes.Buffer
	writeU32(&envelope, envelopeTypeTx)
	envelope.Write(tx.Bytes())
	writeU32(&envelope, 1) // one decorated signature
	envelope.Write(pub[len(pub)-4:])
	writeOpaque(&envelope, signature)

	return [][]byte{envelope.Bytes()}, nil
}

// signatureBase is the digest the network verifies: the network id, the
// envelope type tag and the transaction body.
func signatureBase(txBytes []byte) []byte {
	networkId := sha256.Sum256([]byte(networkPassphrase))

	var base bytes.Buffer
	base.Write(networkId[:])
	writeU32(&base, envelopeTypeTx)
	base.Write(txBytes)

	digest := sha256.Sum256(base.Bytes())
	return digest[:]
}

func writeMemo(buf *bytes.Buffer, memo string) {
	if memo == "" {
		writeU32(buf, memoNone)
		return
	}
	if len(memo) > 28 {
		memo = memo[:28]
	}
	writeU32(buf, memoText)
	writeOpaque(buf, []byte(memo))
}

// decodeStrkey extracts the 32-byte ed25519 public key from a G...
// address, verifying the CRC16 checksum.
func decodeStrkey(address string) ([]byte, error) {
	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(decoded) != 35 || decoded[0] != 6<<3 {
		return nil, fmt.Errorf("malformed address %q", address)
	}

	payload, checksum := decoded[:33], decoded[33:]
	if utils.Crc16(payload) != binary.LittleEndian.Uint16(checksum) {
		return nil, fmt.Errorf("bad checksum in address %q", address)
	}
	return payload[1:], nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var be [4]byte
	binary.BigEndian.PutUint32(be[:], v)
	buf.Write(be[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var be [8]byte
	binary.BigEndian.PutUint64(be[:], v)
	buf.Write(be[:])
}

// writeOpaque writes an XDR variable-length opaque, padded to 4 bytes.
func writeOpaque(buf *bytes.Buffer, bz []byte) {
	writeU32(buf, uint32(len(bz)))
	buf.Write(bz)
	if pad := len(bz) % 4; pad != 0 {
		buf.Write(make([]byte, 4-pad))
	}
}
