package xrp

import (
	"context"
	"strings"

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
	return chain == types.ChainXrp
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	result, err := b.client.Submit(ctx, TxBlobHex(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainXrp, "%v", err)
	}

	// tes/ter results are accepted into the open ledger or queued;
	// everything else is a rejection.
	if !strings.HasPrefix(result.EngineResult, "tes") &&
		!strings.HasPrefix(result.EngineResult, "ter") {
		return "", types.NewBroadcastError(types.ChainXrp, "%s: %s",
			result.EngineResult, result.EngineResultMessage)
	}

	log.Verbose("Xrp transaction dispatched, hash = ", result.TxJson.Hash)
	return result.TxJson.Hash, nil
}
