package xrp

import "context"

type MockClient struct {
	AccountInfoFunc func(ctx context.Context, address string) (*AccountInfo, error)
	FeeFunc         func(ctx context.Context) (*FeeInfo, error)
	SubmitFunc      func(ctx context.Context, txBlobHex string) (*SubmitResult, error)
	TxFunc          func(ctx context.Context, hash string) (*TxResult, error)
}

func (c *MockClient) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	if c.AccountInfoFunc != nil {
		return c.AccountInfoFunc(ctx, address)
	}

	return nil, nil
}

func (c *MockClient) Fee(ctx context.Context) (*FeeInfo, error) {
	if c.FeeFunc != nil {
		return c.FeeFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) Submit(ctx context.Context, txBlobHex string) (*SubmitResult, error) {
	if c.SubmitFunc != nil {
		return c.SubmitFunc(ctx, txBlobHex)
	}

	return nil, nil
}

func (c *MockClient) Tx(ctx context.Context, hash string) (*TxResult, error) {
	if c.TxFunc != nil {
		return c.TxFunc(ctx, hash)
	}

	return nil, nil
}
