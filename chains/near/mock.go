package near

import (
	"context"
	"math/big"
)

type MockClient struct {
	ViewAccessKeyFunc   func(ctx context.Context, accountId, publicKey string) (*AccessKey, error)
	ViewAccountFunc     func(ctx context.Context, accountId string) (*AccountView, error)
	GasPriceFunc        func(ctx context.Context) (*big.Int, error)
	LatestBlockFunc     func(ctx context.Context) (*BlockHeader, error)
	SendTransactionFunc func(ctx context.Context, base64Tx string) (string, error)
	TxStatusFunc        func(ctx context.Context, hash, senderId string) (*TxStatus, error)
}

func (c *MockClient) ViewAccessKey(ctx context.Context, accountId, publicKey string) (*AccessKey, error) {
	if c.ViewAccessKeyFunc != nil {
		return c.ViewAccessKeyFunc(ctx, accountId, publicKey)
	}

	return nil, nil
}

func (c *MockClient) ViewAccount(ctx context.Context, accountId string) (*AccountView, error) {
	if c.ViewAccountFunc != nil {
		return c.ViewAccountFunc(ctx, accountId)
	}

	return nil, nil
}

func (c *MockClient) GasPrice(ctx context.Context) (*big.Int, error) {
	if c.GasPriceFunc != nil {
		return c.GasPriceFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) LatestBlock(ctx context.Context) (*BlockHeader, error) {
	if c.LatestBlockFunc != nil {
		return c.LatestBlockFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) SendTransaction(ctx context.Context, base64Tx string) (string, error) {
	if c.SendTransactionFunc != nil {
		return c.SendTransactionFunc(ctx, base64Tx)
	}

	return "", nil
}

func (c *MockClient) TxStatus(ctx context.Context, hash, senderId string) (*TxStatus, error) {
	if c.TxStatusFunc != nil {
		return c.TxStatusFunc(ctx, hash, senderId)
	}

	return nil, nil
}
