package ton

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tidewallet/core/types"
	"github.com/tidewallet/core/utils"
)

const (
	// Wallet v4 subwallet id on the basechain.
	subwalletId = 698983191

	// Pay forwarding fees separately and ignore action errors, the
	// standard mode for wallet transfers.
	sendModePayFeesSeparately = 3

	messageLifetime = 5 * time.Minute
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainTon
}

// SignTransaction builds the wallet's external message carrying one
// internal transfer, signs its body and serializes the bag of cells.
func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainTon {
		return nil, types.ErrChainDataMismatch
	}
	if !chainData.Deployed {
		return nil, fmt.Errorf("wallet contract not deployed")
	}

	key := ed25519.NewKeyFromSeed(privateKey)

	ownerWc, ownerHash, err := decodeAddress(params.Owner)
	if err != nil {
		return nil, err
	}
	destWc, destHash, err := decodeAddress(params.Input.Destination)
	if err != nil {
		return nil, err
	}

	transfer := newCell()
	transfer.writeUint(0, 1) // int_msg_info
	transfer.writeBit(true)  // ihr_disabled
	transfer.writeBit(false) // bounce: plain transfers must not bounce
	transfer.writeBit(false) // bounced
	transfer.writeEmptyAddress()
	transfer.writeAddress(destWc, destHash)
	transfer.writeCoins(params.Input.Value())
	transfer.writeBit(false)  // no extra currencies
	transfer.writeCoins(nil)  // ihr_fee
	transfer.writeCoins(nil)  // fwd_fee
	transfer.writeUint(0, 64) // created_lt
	transfer.writeUint(0, 32) // created_at
	transfer.writeBit(false)  // no state init
	if params.Input.Memo == "" {
		transfer.writeBit(false) // empty body, inline
	} else {
		comment := newCell()
		comment.writeUint(0, 32) // text comment op
		comment.writeBytes([]byte(params.Input.Memo))
		transfer.writeBit(true) // body as reference
		transfer.ref(comment)
	}

	body := newCell()
	body.writeUint(subwalletId, 32)
	body.writeUint(uint64(time.Now().Add(messageLifetime).Unix()), 32)
	body.writeUint(uint64(chainData.Seqno), 32)
	body.writeUint(0, 8) // op: simple send
	body.writeUint(sendModePayFeesSeparately, 8)
	body.ref(transfer)

	signature := ed25519.Sign(key, body.hash())

	signedBody := newCell()
	signedBody.writeBytes(signature)
	signedBody.writeBytes(body.paddedData())
	signedBody.refs = body.refs

	external := newCell()
	external.writeUint(0b10, 2) // ext_in_msg_info
	external.writeEmptyAddress()
	external.writeAddress(ownerWc, ownerHash)
	external.writeCoins(nil) // import fee
	external.writeBit(false) // no state init
	external.writeBit(true)  // body as reference
	external.ref(signedBody)

	boc, err := serializeBoc(external)
	if err != nil {
		return nil, err
	}
	return [][]byte{boc}, nil
}

// decodeAddress parses a user-friendly base64 address into workchain
// and account hash, verifying the CRC16 checksum.
func decodeAddress(address string) (int8, []byte, error) {
	decoded, err := base64.URLEncoding.DecodeString(address)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(address)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(decoded) != 36 {
		return 0, nil, fmt.Errorf("malformed address %q", address)
	}

	payload, checksum := decoded[:34], decoded[34:]
	if utils.Crc16(payload) != binary.BigEndian.Uint16(checksum) {
		return 0, nil, fmt.Errorf("bad checksum in address %q", address)
	}

	return int8(payload[1]), payload[2:34], nil
}
