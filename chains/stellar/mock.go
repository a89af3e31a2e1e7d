package stellar

type MockClient struct {
	GetAccountFunc        func(address string) (*AccountResponse, error)
	FeeStatsFunc          func() (*FeeStats, error)
	SubmitTransactionFunc func(envelopeBase64 string) (*SubmitResponse, error)
	GetTransactionFunc    func(hash string) (*TransactionResponse, error)
	RootFunc              func() (*RootResponse, error)
}

func (c *MockClient) GetAccount(address string) (*AccountResponse, error) {
	if c.GetAccountFunc != nil {
		return c.GetAccountFunc(address)
	}

	return nil, nil
}

func (c *MockClient) FeeStats() (*FeeStats, error) {
	if c.FeeStatsFunc != nil {
		return c.FeeStatsFunc()
	}

	return nil, nil
}

func (c *MockClient) SubmitTransaction(envelopeBase64 string) (*SubmitResponse, error) {
	if c.SubmitTransactionFunc != nil {
		return c.SubmitTransactionFunc(envelopeBase64)
	}

	return nil, nil
}

func (c *MockClient) GetTransaction(hash string) (*TransactionResponse, error) {
	if c.GetTransactionFunc != nil {
		return c.GetTransactionFunc(hash)
	}

	return nil, nil
}

func (c *MockClient) Root() (*RootResponse, error) {
	if c.RootFunc != nil {
		return c.RootFunc()
	}

	return nil, nil
}
