package aptos

import (
	"context"
	"encoding/json"

	"github.com/sisu-network/lib/log"

	"github.com/tidewallet/core/types"
)

type Broadcaster struct {
	client Client
}

func NewBroadcaster(client Client) *Broadcaster {
	return &Broadcaster{client: client}
}

func (b *Broadcaster) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainAptos
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	tx := &Simulation{}
	if err := json.Unmarshal(signedBytes, tx); err != nil {
		return "", types.NewBroadcastError(types.ChainAptos, "malformed signed payload: %v", err)
	}

	submitted, err := b.client.SubmitTransaction(tx)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainAptos, "%v", err)
	}
	if submitted.ErrorCode != "" {
		return "", types.NewBroadcastError(types.ChainAptos, "%s: %s",
			submitted.ErrorCode, submitted.Message)
	}

	log.Verbose("Aptos transaction dispatched, hash = ", submitted.Hash)
	return submitted.Hash, nil
}
