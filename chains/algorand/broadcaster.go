package algorand

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
	return chain == types.ChainAlgorand
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	txid, err := b.client.SubmitTransaction(signedBytes)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainAlgorand, "%v", err)
	}

	log.Verbose("Algorand transaction dispatched, txid = ", txid)
	return txid, nil
}
