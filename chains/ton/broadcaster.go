package ton

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
	return chain == types.ChainTon
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	hash, err := b.client.SendBoc(ctx, base64.StdEncoding.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainTon, "%v", err)
	}

	log.Verbose("Ton message dispatched, hash = ", hash)
	return hash, nil
}
