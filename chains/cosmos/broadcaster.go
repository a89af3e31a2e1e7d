package cosmos

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
	return chain == types.ChainCosmos
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	resp, err := b.client.BroadcastTx(signedBytes)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainCosmos, "%v", err)
	}
	if resp.Code != 0 {
		return "", types.NewBroadcastError(types.ChainCosmos, "code %d: %s", resp.Code, resp.RawLog)
	}

	log.Verbose("Cosmos transaction dispatched, hash = ", resp.TxHash)
	return resp.TxHash, nil
}
