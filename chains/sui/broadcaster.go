package sui

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
	return chain == types.ChainSui
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	payload := &SignedPayload{}
	if err := json.Unmarshal(signedBytes, payload); err != nil {
		return "", types.NewBroadcastError(types.ChainSui, "malformed signed payload: %v", err)
	}

	result, err := b.client.ExecuteTransactionBlock(ctx, payload.TxBytes, payload.Signature)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainSui, "%v", err)
	}
	if result.Effects != nil && result.Effects.Status.Status == "failure" {
		return "", types.NewBroadcastError(types.ChainSui, "%s", result.Effects.Status.Error)
	}

	log.Verbose("Sui transaction dispatched, digest = ", result.Digest)
	return result.Digest, nil
}
