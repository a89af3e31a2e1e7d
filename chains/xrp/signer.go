package xrp

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/tidewallet/core/types"
)

var rippleAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

const (
	paymentType         = 0
	tfFullyCanonicalSig = 0x80000000
	nativeAmountFlag    = 0x4000000000000000
	signingPrefix       = 0x53545800 // "STX\0"
	ed25519PubKeyPrefix = 0xED
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainXrp
}

// SignTransaction serializes a Payment in canonical field order and
// signs it with the account's ed25519 key. Ed25519 signs the prefixed
// serialization directly, without an intermediate hash.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainXrp {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil {
		return nil, fmt.Errorf("missing %s fee quote", priority)
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	pubKey := append([]byte{ed25519PubKeyPrefix}, key.Public().(ed25519.PublicKey)...)

	account, err := decodeAccountId(params.Owner)
	if err != nil {
		return nil, err
	}
	destination, err := decodeAccountId(params.Input.Destination)
	if err != nil {
		return nil, err
	}

	payment := &paymentFields{
		flags:       tfFullyCanonicalSig,
		sequence:    chainData.Sequence,
		lastLedger:  chainData.LastLedger,
		amount:      params.Input.Value().Uint64(),
		fee:         fee.Amount.Uint64(),
		pubKey:      pubKey,
		account:     account,
		destination: destination,
	}
	if tag, err := strconv.ParseUint(strings.TrimSpace(params.Input.Memo), 10, 32); err == nil &&
		params.Input.Memo != "" {
		payment.destinationTag = uint32(tag)
		payment.hasTag = true
	}

	unsigned := payment.serialize(nil)
	message := make([]byte, 4, 4+len(unsigned))
	binary.BigEndian.PutUint32(message, signingPrefix)
	message = append(message, unsigned...)

	payment.signature = ed25519.Sign(key, message)
	return [][]byte{payment.serialize(payment.signature)}, nil
}

type paymentFields struct {
	flags          uint32
	sequence       uint32
	destinationTag uint32
	hasTag         bool
	lastLedger     uint32
	amount         uint64
	fee            uint64
	pubKey         []byte
	signature      []byte
	account        []byte
	destination    []byte
}

// serialize writes the fields in canonical (type, field) order. The
// signature slot is omitted while computing the signing payload.
func (p *paymentFields) serialize(signature []byte) []byte {
	var buf bytes.Buffer

	// TransactionType, UInt16 (1, 2).
	buf.WriteByte(0x12)
	writeU16(&buf, paymentType)

	// Flags (2, 2), Sequence (2, 4), DestinationTag (2, 14),
	// LastLedgerSequence (2, 27).
	buf.WriteByte(0x22)
	writeU32(&buf, p.flags)
	buf.WriteByte(0x24)
	writeU32(&buf, p.sequence)
	if p.hasTag {
		buf.WriteByte(0x2E)
		writeU32(&buf, p.destinationTag)
	}
	buf.Write([]byte{0x20, 0x1B})
	writeU32(&buf, p.lastLedger)

	// Amount (6, 1) and Fee (6, 8), native drops.
	buf.WriteByte(0x61)
	writeU64(&buf, nativeAmountFlag|p.amount)
	buf.WriteByte(0x68)
	writeU64(&buf, nativeAmountFlag|p.fee)

	// SigningPubKey (7, 3), TxnSignature (7, 4).
	buf.WriteByte(0x73)
	writeVl(&buf, p.pubKey)
	if signature != nil {
		buf.WriteByte(0x74)
		writeVl(&buf, signature)
	}

	// Account (8, 1), Destination (8, 3).
	buf.WriteByte(0x81)
	writeVl(&buf, p.account)
	buf.WriteByte(0x83)
	writeVl(&buf, p.destination)

	return buf.Bytes()
}

// decodeAccountId turns an r-address into its 20-byte account id,
// verifying the double-sha256 checksum.
func decodeAccountId(address string) ([]byte, error) {
	decoded, err := base58.DecodeAlphabet(address, rippleAlphabet)
	if err != nil {
		return nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(decoded) != 25 || decoded[0] != 0 {
		return nil, fmt.Errorf("malformed address %q", address)
	}

	payload, checksum := decoded[:21], decoded[21:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:4], checksum) {
		return nil, fmt.Errorf("bad checksum in address %q", address)
	}

	return payload[1:], nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var be [2]byte
	binary.BigEndian.PutUint16(be[:], v)
	buf.Write(be[:])
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

// writeVl writes a variable-length blob. All blobs here are well under
// the 192-byte single-byte length boundary.
func writeVl(buf *bytes.Buffer, bz []byte) {
	buf.WriteByte(byte(len(bz)))
	buf.Write(bz)
}

// TxBlobHex is what the submit RPC expects.
func TxBlobHex(signed []byte) string {
	return strings.ToUpper(hex.EncodeToString(signed))
}
