package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RpcClient is the subset of the Solana RPC surface the adapter needs,
// wrapped so tests can mock it.
type RpcClient interface {
	GetLatestBlockhash(ctx context.Context) (solana.Hash, error)
	GetBalance(ctx context.Context, address solana.PublicKey) (uint64, error)
	GetRecentPrioritizationFee(ctx context.Context) (uint64, error)
	SendEncodedTransaction(ctx context.Context, base64Tx string) (solana.Signature, error)
	GetSignatureStatus(ctx context.Context, signature solana.Signature) (*rpc.SignatureStatusesResult, error)
	GetSlot(ctx context.Context) (uint64, error)
	GetHealth(ctx context.Context) error
}

type defaultRpcClient struct {
	client *rpc.Client
}

func NewRpcClient(rpcUrl string) RpcClient {
	return &defaultRpcClient{
		client: rpc.New(rpcUrl),
	}
}

func (c *defaultRpcClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return out.Value.Blockhash, nil
}

func (c *defaultRpcClient) GetBalance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	out, err := c.client.GetBalance(ctx, address, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}

func (c *defaultRpcClient) GetRecentPrioritizationFee(ctx context.Context) (uint64, error) {
	fees, err := c.client.GetRecentPrioritizationFees(ctx, nil)
	if err != nil {
		return 0, err
	}

	// Median of the recent slots' prioritization fees.
	values := make([]uint64, 0, len(fees))
	for _, fee := range fees {
		values = append(values, fee.PrioritizationFee)
	}
	if len(values) == 0 {
		return 0, nil
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[j] < values[i] {
				values[i], values[j] = values[j], values[i]
			}
		}
	}
	return values[len(values)/2], nil
}

func (c *defaultRpcClient) SendEncodedTransaction(ctx context.Context, base64Tx string) (solana.Signature, error) {
	return c.client.SendEncodedTransactionWithOpts(ctx, base64Tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentFinalized,
	})
}

func (c *defaultRpcClient) GetSignatureStatus(ctx context.Context, signature solana.Signature) (*rpc.SignatureStatusesResult, error) {
	out, err := c.client.GetSignatureStatuses(ctx, true, signature)
	if err != nil {
		return nil, err
	}
	if out == nil || len(out.Value) == 0 {
		return nil, nil
	}
	return out.Value[0], nil
}

func (c *defaultRpcClient) GetSlot(ctx context.Context) (uint64, error) {
	return c.client.GetSlot(ctx, rpc.CommitmentFinalized)
}

func (c *defaultRpcClient) GetHealth(ctx context.Context) error {
	_, err := c.client.GetHealth(ctx)
	return err
}
