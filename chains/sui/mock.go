package sui

import "context"

type MockClient struct {
	ReferenceGasPriceFunc       func(ctx context.Context) (uint64, error)
	GetCoinsFunc                func(ctx context.Context, owner string) (*CoinPage, error)
	ExecuteTransactionBlockFunc func(ctx context.Context, txBytesBase64, signatureBase64 string) (*ExecuteResult, error)
	GetTransactionBlockFunc     func(ctx context.Context, digest string) (*TransactionBlock, error)
	LatestCheckpointFunc        func(ctx context.Context) (uint64, error)
}

func (c *MockClient) ReferenceGasPrice(ctx context.Context) (uint64, error) {
	if c.ReferenceGasPriceFunc != nil {
		return c.ReferenceGasPriceFunc(ctx)
	}

	return 0, nil
}

func (c *MockClient) GetCoins(ctx context.Context, owner string) (*CoinPage, error) {
	if c.GetCoinsFunc != nil {
		return c.GetCoinsFunc(ctx, owner)
	}

	return nil, nil
}

func (c *MockClient) ExecuteTransactionBlock(ctx context.Context, txBytesBase64,
	signatureBase64 string) (*ExecuteResult, error) {
	if c.ExecuteTransactionBlockFunc != nil {
		return c.ExecuteTransactionBlockFunc(ctx, txBytesBase64, signatureBase64)
	}

	return nil, nil
}

func (c *MockClient) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error) {
	if c.GetTransactionBlockFunc != nil {
		return c.GetTransactionBlockFunc(ctx, digest)
	}

	return nil, nil
}

func (c *MockClient) LatestCheckpoint(ctx context.Context) (uint64, error) {
	if c.LatestCheckpointFunc != nil {
		return c.LatestCheckpointFunc(ctx)
	}

	return 0, nil
}
