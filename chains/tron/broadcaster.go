package tron

import (
	"context"
	"encoding/hex"

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
	return chain == types.ChainTron
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	result, err := b.client.BroadcastHex(hex.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainTron, "%v", err)
	}

	if !result.Result {
		message := result.Message
		// The node hex-encodes rejection messages.
		if decoded, err := hex.DecodeString(result.Message); err == nil {
			message = string(decoded)
		}
		return "", types.NewBroadcastError(types.ChainTron, "%s: %s", result.Code, message)
	}

	log.Verbose("Tron transaction dispatched, txid = ", result.Txid)
	return result.Txid, nil
}
