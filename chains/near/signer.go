package near

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"

	"github.com/tidewallet/core/types"
)

const ed25519KeyType = 0

type publicKey struct {
	KeyType uint8
	Data    [32]uint8
}

type signature struct {
	KeyType uint8
	Data    [64]uint8
}

type transfer struct {
	Deposit big.Int
}

type action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  struct{}
	DeployContract struct{}
	FunctionCall   struct{}
	Transfer       transfer
}

type rawTransaction struct {
	SignerId   string
	PublicKey  publicKey
	Nonce      uint64
	ReceiverId string
	BlockHash  [32]uint8
	Actions    []action
}

type signedTransaction struct {
	Transaction rawTransaction
	Signature   signature
}

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainNear
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainNear {
		return nil, types.ErrChainDataMismatch
	}

	key := ed25519.NewKeyFromSeed(privateKey)
	pub := key.Public().(ed25519.PublicKey)

	blockHash, err := base58.Decode(chainData.BlockHash)
	if err != nil || len(blockHash) != 32 {
		return nil, fmt.Errorf("malformed block hash %q", chainData.BlockHash)
	}

	transferAction := action{Enum: 3}
	transferAction.Transfer.Deposit = *params.Input.Value()

	tx := rawTransaction{
		SignerId: params.Owner,
		// The stored nonce is the last one used; the next transaction
		// takes nonce + 1.
		Nonce:      chainData.Nonce + 1,
		ReceiverId: params.Input.Destination,
		Actions:    []action{transferAction},
	}
	tx.PublicKey.KeyType = ed25519KeyType
	copy(tx.PublicKey.Data[:], pub)
	copy(tx.BlockHash[:], blockHash)

	txBytes, err := borsh.Serialize(tx)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(txBytes)
	sig := ed25519.Sign(key, digest[:])

	signed := signedTransaction{Transaction: tx}
	signed.Signature.KeyType = ed25519KeyType
	copy(signed.Signature.Data[:], sig)

	bz, err := borsh.Serialize(signed)
	if err != nil {
		return nil, err
	}

	return [][]byte{bz}, nil
}
