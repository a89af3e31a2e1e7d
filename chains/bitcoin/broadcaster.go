package bitcoin

import (
	"context"
	"encoding/hex"

	"github.com/tidewallet/core/types"
)

type Broadcaster struct {
	chain  types.Chain
	client Client
}

func NewBroadcaster(chain types.Chain, client Client) *Broadcaster {
	return &Broadcaster{
		chain:  chain,
		client: client,
	}
}

func (b *Broadcaster) SupportsChain(chain types.Chain) bool {
	return b.chain == chain
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	result, err := b.client.SendRawTransaction(hex.EncodeToString(signedBytes))
	if err != nil {
		return "", &types.ServiceUnavailable{Chain: b.chain, Err: err}
	}

	if result.Error != nil {
		return "", types.NewBroadcastError(b.chain, "%s", result.Error.Message)
	}
	if result.Result == "" {
		return "", types.NewBroadcastError(b.chain, "node returned no transaction id")
	}

	return result.Result, nil
}
