package cardano

import (
	"fmt"

	"github.com/echovl/cardano-go"
	"github.com/echovl/cardano-go/crypto"

	"github.com/tidewallet/core/types"
)

// Slots a transaction stays valid after preload, roughly 20 minutes.
const ttlSlots = 1200

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainCardano
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainCardano {
		return nil, types.ErrChainDataMismatch
	}

	sender, err := cardano.NewAddress(params.Owner)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", params.Owner, err)
	}
	receiver, err := cardano.NewAddress(params.Input.Destination)
	if err != nil {
		return nil, fmt.Errorf("invalid destination address %q: %w", params.Input.Destination, err)
	}

	builder := cardano.NewTxBuilder(chainData.Protocol)
	for _, utxo := range chainData.Utxos {
		builder.AddInputs(cardano.NewTxInput(utxo.TxHash, uint(utxo.Index), utxo.Amount))
	}
	builder.AddOutputs(cardano.NewTxOutput(receiver,
		cardano.NewValue(cardano.Coin(params.Input.Value().Uint64()))))
	builder.SetTTL(chainData.Slot + ttlSlots)

	// The key blob is the extended ed25519 signing key.
	builder.Sign(crypto.PrvKey(privateKey))
	// Change collection also settles the exact a*size+b fee.
	builder.AddChangeIfNeeded(sender)

	tx, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return [][]byte{tx.Bytes()}, nil
}
