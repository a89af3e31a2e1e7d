package algorand

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"fmt"

	"github.com/tidewallet/core/types"
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainAlgorand
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainAlgorand {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil {
		return nil, fmt.Errorf("no fee quote for priority %s", priority)
	}

	sender, err := decodeAddress(params.Owner)
	if err != nil {
		return nil, err
	}
	receiver, err := decodeAddress(params.Input.Destination)
	if err != nil {
		return nil, err
	}
	genesisHash, err := base64.StdEncoding.DecodeString(chainData.GenesisHash)
	if err != nil {
		return nil, fmt.Errorf("malformed genesis hash %q", chainData.GenesisHash)
	}

	// Canonical encoding omits zero-value fields.
	fields := []mapField{
		{key: "fee", value: fee.Amount.Uint64()},
		{key: "fv", value: chainData.FirstValid},
		{key: "gh", value: genesisHash},
		{key: "lv", value: chainData.LastValid},
		{key: "rcv", value: receiver},
		{key: "snd", value: sender},
		{key: "type", value: "pay"},
	}
	if amount := params.Input.Value().Uint64(); amount > 0 {
		fields = append(fields, mapField{key: "amt", value: amount})
	}
	if chainData.GenesisId != "" {
		fields = append(fields, mapField{key: "gen", value: chainData.GenesisId})
	}
	if params.Input.Memo != "" {
		fields = append(fields, mapField{key: "note", value: []byte(params.Input.Memo)})
	}

	txn, err := encodeMap(fields)
	if err != nil {
		return nil, err
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	sig := ed25519.Sign(key, append([]byte("TX"), txn...))

	signed, err := encodeMap([]mapField{
		{key: "sig", value: sig},
		{key: "txn", value: fields},
	})
	if err != nil {
		return nil, err
	}

	return [][]byte{signed}, nil
}

// decodeAddress decodes the base32 address form into the 32-byte public
// key, verifying the sha512/256 checksum suffix.
func decodeAddress(address string) ([]byte, error) {
	decoded, err := addressEncoding.DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	if len(decoded) != 36 {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	pubKey, checksum := decoded[:32], decoded[32:]
	digest := sha512.Sum512_256(pubKey)
	for i := 0; i < 4; i++ {
		if checksum[i] != digest[28+i] {
			return nil, fmt.Errorf("address %q checksum mismatch", address)
		}
	}
	return pubKey, nil
}

// EncodeAddress is the inverse of decodeAddress, used when deriving the
// wallet address from a public key.
func EncodeAddress(pubKey []byte) string {
	digest := sha512.Sum512_256(pubKey)
	return addressEncoding.EncodeToString(append(pubKey, digest[28:]...))
}
