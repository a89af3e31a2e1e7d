package cardano

import (
	"context"

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
	return chain == types.ChainCardano
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	hash, err := b.client.SubmitTx(ctx, signedBytes)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainCardano, "%v", err)
	}

	log.Verbose("Cardano transaction dispatched, hash = ", hash)
	return hash, nil
}
