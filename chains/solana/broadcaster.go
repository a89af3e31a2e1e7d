package solana

import (
	"context"
	"encoding/base64"

	"github.com/sisu-network/lib/log"

	"github.com/tidewallet/core/types"
)

type Broadcaster struct {
	client RpcClient
}

func NewBroadcaster(client RpcClient) *Broadcaster {
	return &Broadcaster{client: client}
}

func (b *Broadcaster) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSolana
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	signature, err := b.client.SendEncodedTransaction(ctx,
		base64.StdEncoding.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainSolana, "%v", err)
	}

	log.Verbose("Solana transaction dispatched, signature = ", signature.String())
	return signature.String(), nil
}
