package hypercore

import (
	"context"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
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
	return chain == types.ChainHyperCore
}

func (b *Broadcaster) Broadcast(ctx context.Context, owner string, signedBytes []byte,
	txType types.TxType) (string, error) {
	resp, err := b.client.Exchange(signedBytes)
	if err != nil {
		return "", types.NewBroadcastError(types.ChainHyperCore, "%v", err)
	}
	if !resp.Ok() {
		return "", types.NewBroadcastError(types.ChainHyperCore, "%s: %s",
			resp.Status, string(resp.Response))
	}

	// The exchange settles actions synchronously and assigns no hash;
	// the request digest serves as the stable local id.
	hash := ethcrypto.Keccak256Hash(signedBytes).Hex()
	log.Verbose("HyperCore action accepted, id = ", hash)
	return hash, nil
}
