package polkadot

import "context"

type MockClient struct {
	AccountNextIndexFunc func(ctx context.Context, address string) (uint64, error)
	BlockHashFunc        func(ctx context.Context, number uint64) (string, error)
	FinalizedHeadFunc    func(ctx context.Context) (string, error)
	HeaderFunc           func(ctx context.Context, hash string) (*Header, error)
	BlockFunc            func(ctx context.Context, hash string) (*Block, error)
	RuntimeVersionFunc   func(ctx context.Context) (*RuntimeVersion, error)
	PaymentQueryInfoFunc func(ctx context.Context, extrinsicHex string) (*FeeInfo, error)
	SubmitExtrinsicFunc  func(ctx context.Context, extrinsicHex string) (string, error)
}

func (c *MockClient) AccountNextIndex(ctx context.Context, address string) (uint64, error) {
	if c.AccountNextIndexFunc != nil {
		return c.AccountNextIndexFunc(ctx, address)
	}

	return 0, nil
}

func (c *MockClient) BlockHash(ctx context.Context, number uint64) (string, error) {
	if c.BlockHashFunc != nil {
		return c.BlockHashFunc(ctx, number)
	}

	return "", nil
}

func (c *MockClient) FinalizedHead(ctx context.Context) (string, error) {
	if c.FinalizedHeadFunc != nil {
		return c.FinalizedHeadFunc(ctx)
	}

	return "", nil
}

func (c *MockClient) Header(ctx context.Context, hash string) (*Header, error) {
	if c.HeaderFunc != nil {
		return c.HeaderFunc(ctx, hash)
	}

	return nil, nil
}

func (c *MockClient) Block(ctx context.Context, hash string) (*Block, error) {
	if c.BlockFunc != nil {
		return c.BlockFunc(ctx, hash)
	}

	return nil, nil
}

func (c *MockClient) RuntimeVersion(ctx context.Context) (*RuntimeVersion, error) {
	if c.RuntimeVersionFunc != nil {
		return c.RuntimeVersionFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) PaymentQueryInfo(ctx context.Context, extrinsicHex string) (*FeeInfo, error) {
	if c.PaymentQueryInfoFunc != nil {
		return c.PaymentQueryInfoFunc(ctx, extrinsicHex)
	}

	return nil, nil
}

func (c *MockClient) SubmitExtrinsic(ctx context.Context, extrinsicHex string) (string, error) {
	if c.SubmitExtrinsicFunc != nil {
		return c.SubmitExtrinsicFunc(ctx, extrinsicHex)
	}

	return "", nil
}
