package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type MockRpcClient struct {
	GetLatestBlockhashFunc         func(ctx context.Context) (solana.Hash, error)
	GetBalanceFunc                 func(ctx context.Context, address solana.PublicKey) (uint64, error)
	GetRecentPrioritizationFeeFunc func(ctx context.Context) (uint64, error)
	SendEncodedTransactionFunc     func(ctx context.Context, base64Tx string) (solana.Signature, error)
	GetSignatureStatusFunc         func(ctx context.Context, signature solana.Signature) (*rpc.SignatureStatusesResult, error)
	GetSlotFunc                    func(ctx context.Context) (uint64, error)
	GetHealthFunc                  func(ctx context.Context) error
}

func (c *MockRpcClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	if c.GetLatestBlockhashFunc != nil {
		return c.GetLatestBlockhashFunc(ctx)
	}

	return solana.Hash{}, nil
}

func (c *MockRpcClient) GetBalance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	if c.GetBalanceFunc != nil {
		return c.GetBalanceFunc(ctx, address)
	}

	return 0, nil
}

func (c *MockRpcClient) GetRecentPrioritizationFee(ctx context.Context) (uint64, error) {
	if c.GetRecentPrioritizationFeeFunc != nil {
		return c.GetRecentPrioritizationFeeFunc(ctx)
	}

	return 0, nil
}

func (c *MockRpcClient) SendEncodedTransaction(ctx context.Context, base64Tx string) (solana.Signature, error) {
	if c.SendEncodedTransactionFunc != nil {
		return c.SendEncodedTransactionFunc(ctx, base64Tx)
	}

	return solana.Signature{}, nil
}

func (c *MockRpcClient) GetSignatureStatus(ctx context.Context, signature solana.Signature) (*rpc.SignatureStatusesResult, error) {
	if c.GetSignatureStatusFunc != nil {
		return c.GetSignatureStatusFunc(ctx, signature)
	}

	return nil, nil
}

func (c *MockRpcClient) GetSlot(ctx context.Context) (uint64, error) {
	if c.GetSlotFunc != nil {
		return c.GetSlotFunc(ctx)
	}

	return 0, nil
}

func (c *MockRpcClient) GetHealth(ctx context.Context) error {
	if c.GetHealthFunc != nil {
		return c.GetHealthFunc(ctx)
	}

	return nil
}
