package ton

import "context"

type MockClient struct {
	GetAddressInfoFunc  func(ctx context.Context, address string) (*AddressInfo, error)
	SeqnoFunc           func(ctx context.Context, address string) (uint32, error)
	MasterchainInfoFunc func(ctx context.Context) (*MasterchainInfo, error)
	SendBocFunc         func(ctx context.Context, bocBase64 string) (string, error)
	GetTransactionsFunc func(ctx context.Context, address string, limit int) ([]TransactionEntry, error)
}

func (c *MockClient) GetAddressInfo(ctx context.Context, address string) (*AddressInfo, error) {
	if c.GetAddressInfoFunc != nil {
		return c.GetAddressInfoFunc(ctx, address)
	}

	return nil, nil
}

func (c *MockClient) Seqno(ctx context.Context, address string) (uint32, error) {
	if c.SeqnoFunc != nil {
		return c.SeqnoFunc(ctx, address)
	}

	return 0, nil
}

func (c *MockClient) MasterchainInfo(ctx context.Context) (*MasterchainInfo, error) {
	if c.MasterchainInfoFunc != nil {
		return c.MasterchainInfoFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) SendBoc(ctx context.Context, bocBase64 string) (string, error) {
	if c.SendBocFunc != nil {
		return c.SendBocFunc(ctx, bocBase64)
	}

	return "", nil
}

func (c *MockClient) GetTransactions(ctx context.Context, address string, limit int) ([]TransactionEntry, error) {
	if c.GetTransactionsFunc != nil {
		return c.GetTransactionsFunc(ctx, address, limit)
	}

	return nil, nil
}
