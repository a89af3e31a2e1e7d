package near

import (
	"context"
	"encoding/base64"

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
	return chain == types.ChainNear
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	hash, err := b.client.SendTransaction(ctx, base64.StdEncoding.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainNear, "%v", err)
	}

	log.Verbose("Near transaction dispatched, hash = ", hash)
	return hash, nil
}
