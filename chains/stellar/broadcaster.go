package stellar

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
	return chain == types.ChainStellar
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	resp, err := b.client.SubmitTransaction(base64.StdEncoding.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainStellar, "%v", err)
	}
	if resp.Extras != nil {
		return "", types.NewBroadcastError(types.ChainStellar, "%s",
			resp.Extras.ResultCodes.Transaction)
	}
	if resp.Hash == "" {
		return "", types.NewBroadcastError(types.ChainStellar, "horizon status %d", resp.Status)
	}

	log.Verbose("Stellar transaction dispatched, hash = ", resp.Hash)
	return resp.Hash, nil
}
