package tron

type MockClient struct {
	GetNowBlockFunc        func() (*NowBlock, error)
	GetAccountFunc         func(address string) (*Account, error)
	GetChainParametersFunc func() (*ChainParameters, error)
	BroadcastHexFunc       func(txHex string) (*BroadcastResult, error)
	GetTransactionInfoFunc func(txid string) (*TransactionInfo, error)
}

func (c *MockClient) GetNowBlock() (*NowBlock, error) {
	if c.GetNowBlockFunc != nil {
		return c.GetNowBlockFunc()
	}

	return nil, nil
}

func (c *MockClient) GetAccount(address string) (*Account, error) {
	if c.GetAccountFunc != nil {
		return c.GetAccountFunc(address)
	}

	return nil, nil
}

func (c *MockClient) GetChainParameters() (*ChainParameters, error) {
	if c.GetChainParametersFunc != nil {
		return c.GetChainParametersFunc()
	}

	return nil, nil
}

func (c *MockClient) BroadcastHex(txHex string) (*BroadcastResult, error) {
	if c.BroadcastHexFunc != nil {
		return c.BroadcastHexFunc(txHex)
	}

	return nil, nil
}

func (c *MockClient) GetTransactionInfo(txid string) (*TransactionInfo, error) {
	if c.GetTransactionInfoFunc != nil {
		return c.GetTransactionInfoFunc(txid)
	}

	return nil, nil
}
