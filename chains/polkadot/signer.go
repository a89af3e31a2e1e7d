package polkadot

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/tidewallet/core/types"
)

const (
	balancesPallet        = 5
	transferKeepAliveCall = 3

	extrinsicVersion = 0x84
	eraPeriod        = 64
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainPolkadot
}

// SignTransaction builds a balances.transfer_keep_alive extrinsic with a
// mortal era anchored at the preloaded checkpoint block.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainPolkadot {
		return nil, types.ErrChainDataMismatch
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	pub := key.Public().(ed25519.PublicKey)

	destPub, err := ss58Decode(params.Input.Destination)
	if err != nil {
		return nil, err
	}

	genesisHash, err := decodeHex32(chainData.GenesisHash)
	if err != nil {
		return nil, err
	}
	checkpointHash, err := decodeHex32(chainData.BlockHash)
	if err != nil {
		return nil, err
	}

	call := encodeCall(destPub, params.Input.Value())
	era := mortalEra(chainData.BlockNumber, eraPeriod)

	var payload []byte
	payload = append(payload, call...)
	payload = append(payload, era...)
	payload = appendCompactUint(payload, chainData.Nonce)
	payload = appendCompactUint(payload, 0) // tip
	payload = appendU32(payload, chainData.SpecVersion)
	payload = appendU32(payload, chainData.TxVersion)
	payload = append(payload, genesisHash...)
	payload = append(payload, checkpointHash...)

	// Payloads longer than 256 bytes are hashed before signing.
	message := payload
	if len(message) > 256 {
		digest := blake2b.Sum256(message)
		message = digest[:]
	}
	signature := ed25519.Sign(key, message)

	return [][]byte{buildExtrinsic(pub, signature, era, chainData.Nonce, call)}, nil
}

func encodeCall(destPub []byte, amount *big.Int) []byte {
	buf := []byte{balancesPallet, transferKeepAliveCall, 0x00} // MultiAddress::Id
	buf = append(buf, destPub...)
	return appendCompact(buf, amount)
}

func buildExtrinsic(signerPub, signature, era []byte, nonce uint64, call []byte) []byte {
	var body []byte
	body = append(body, extrinsicVersion)
	body = append(body, 0x00) // MultiAddress::Id
	body = append(body, signerPub...)
	body = append(body, 0x00) // MultiSignature::Ed25519
	body = append(body, signature...)
	body = append(body, era...)
	body = appendCompactUint(body, nonce)
	body = appendCompactUint(body, 0) // tip
	body = append(body, call...)

	return append(appendCompactUint(nil, uint64(len(body))), body...)
}

// feeProbeExtrinsic is a zero-signed extrinsic used only against
// payment_queryInfo, which ignores signature validity.
func feeProbeExtrinsic(chainData *ChainData, destPub []byte, amount *big.Int) string {
	call := encodeCall(destPub, amount)
	era := mortalEra(chainData.BlockNumber, eraPeriod)
	probe := buildExtrinsic(make([]byte, 32), make([]byte, 64), era, chainData.Nonce, call)
	return "0x" + hex.EncodeToString(probe)
}

// ss58Decode extracts the 32-byte public key from an SS58 address and
// verifies its checksum.
func ss58Decode(address string) ([]byte, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(decoded) != 35 {
		return nil, fmt.Errorf("malformed address %q", address)
	}

	payload, checksum := decoded[:33], decoded[33:]
	hasher, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}
	hasher.Write([]byte("SS58PRE"))
	hasher.Write(payload)
	if !bytes.Equal(hasher.Sum(nil)[:2], checksum) {
		return nil, fmt.Errorf("bad checksum in address %q", address)
	}

	return payload[1:], nil
}
