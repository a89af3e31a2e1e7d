package polkadot

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
	return chain == types.ChainPolkadot
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	hash, err := b.client.SubmitExtrinsic(ctx, "0x"+hex.EncodeToString(signedBytes))
	if err != nil {
		return "", types.NewBroadcastError(types.ChainPolkadot, "%v", err)
	}

	log.Verbose("Polkadot extrinsic dispatched, hash = ", hash)
	return hash, nil
}
