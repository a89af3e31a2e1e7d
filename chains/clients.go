package chains

import (
	"context"
	"math/big"

	"github.com/tidewallet/core/types"
)

// ChainClient is the base capability every adapter role implements. An
// adapter answers true for exactly the chains it serves; the proxies in
// this package refuse to start when zero or more than one adapter
// claims a chain for the same role.
type ChainClient interface {
	SupportsChain(chain types.Chain) bool
}

type BalanceClient interface {
	ChainClient

	// NativeBalance returns the spendable native balance in atomic units.
	NativeBalance(ctx context.Context, address string) (*big.Int, error)
}

// NativeTransferPreloader gathers the chain state needed to sign a
// native-asset transfer: sequence numbers, UTXO sets, recent block
// hashes, and a live fee quote per priority tier. The returned
// SignerParams is self-consistent with the chain's SignClient; callers
// never reuse partially filled data after a failure.
type NativeTransferPreloader interface {
	ChainClient

	PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error)
}

type TokenTransferPreloader interface {
	ChainClient

	PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error)
}

type SwapTransactionPreloader interface {
	ChainClient

	PreloadSwap(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error)
}

type StakeTransactionPreloader interface {
	ChainClient

	PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error)
}

type ActivationTransactionPreloader interface {
	ChainClient

	PreloadActivate(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error)
}

// SignClient serializes and signs a transaction offline. It is a pure
// transform: no I/O, safe to call from any goroutine. The private key
// blob comes from the secure-storage collaborator and is never retained.
// A SignerParams whose ChainData is not this client's variant is a
// routing defect and fails with types.ErrChainDataMismatch.
type SignClient interface {
	ChainClient

	SignTransaction(params *types.SignerParams, priority types.FeePriority, privateKey []byte) ([][]byte, error)
}

// BroadcastClient submits a signed payload and returns the transaction
// hash. Chain-specific rejection payloads are translated into
// *types.BroadcastError; the client never retries internally.
type BroadcastClient interface {
	ChainClient

	Broadcast(ctx context.Context, owner string, signedBytes []byte, txType types.TxType) (string, error)
}

// TransactionStatusClient reports the on-chain state of a previously
// broadcast transaction. It is idempotent and only reports a terminal
// state when the chain's data unambiguously supports it; anything
// ambiguous comes back as Pending.
type TransactionStatusClient interface {
	ChainClient

	TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error)
}

type NodeStatusClient interface {
	ChainClient

	NodeStatus(ctx context.Context) (*types.NodeStatus, error)
}
