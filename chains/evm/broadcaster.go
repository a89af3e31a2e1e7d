package evm

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sisu-network/lib/log"

	"github.com/tidewallet/core/types"
)

type Broadcaster struct {
	chain  types.Chain
	client EthClient
}

func NewBroadcaster(chain types.Chain, client EthClient) *Broadcaster {
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
	tx := &ethtypes.Transaction{}
	if err := tx.UnmarshalBinary(signedBytes); err != nil {
		log.Error("Failed to unmarshal signed EVM transaction, err = ", err)
		return "", types.NewBroadcastError(b.chain, "malformed signed payload")
	}

	// Check the balance covers gas + value before submitting; the node's
	// own error for this case is far less actionable.
	from := common.HexToAddress(owner)
	balance, err := b.client.BalanceAt(ctx, from, nil)
	if err == nil && balance != nil {
		minimum := new(big.Int).Mul(tx.GasPrice(), big.NewInt(int64(tx.Gas())))
		minimum.Add(minimum, tx.Value())
		if minimum.Cmp(balance) > 0 {
			return "", types.ErrInsufficientFeeBalance
		}
	}

	err = b.client.SendTransaction(ctx, tx)
	switch {
	case err == nil:
		log.Verbose("EVM tx dispatched successfully, chain = ", b.chain, ", hash = ", tx.Hash().String())
	case strings.Contains(err.Error(), "already known"):
		// Another path already submitted the same payload. Ethereum
		// returns no error code for this, so string matching it is.
	case strings.Contains(err.Error(), "nonce too low"):
		return "", types.ErrSequenceMismatch
	default:
		return "", types.NewBroadcastError(b.chain, "%v", err)
	}

	return tx.Hash().String(), nil
}
