package cosmos

type MockClient struct {
	GetAccountFunc     func(address string) (*AccountResponse, error)
	GetLatestBlockFunc func() (*BlockResponse, error)
	GetBalanceFunc     func(address, denom string) (*BalanceResponse, error)
	BroadcastTxFunc    func(txBytes []byte) (*TxResponse, error)
	GetTxFunc          func(hash string) (*GetTxResponse, error)
}

func (c *MockClient) GetAccount(address string) (*AccountResponse, error) {
	if c.GetAccountFunc != nil {
		return c.GetAccountFunc(address)
	}

	return nil, nil
}

func (c *MockClient) GetLatestBlock() (*BlockResponse, error) {
	if c.GetLatestBlockFunc != nil {
		return c.GetLatestBlockFunc()
	}

	return nil, nil
}

func (c *MockClient) GetBalance(address, denom string) (*BalanceResponse, error) {
	if c.GetBalanceFunc != nil {
		return c.GetBalanceFunc(address, denom)
	}

	return nil, nil
}

func (c *MockClient) BroadcastTx(txBytes []byte) (*TxResponse, error) {
	if c.BroadcastTxFunc != nil {
		return c.BroadcastTxFunc(txBytes)
	}

	return nil, nil
}

func (c *MockClient) GetTx(hash string) (*GetTxResponse, error) {
	if c.GetTxFunc != nil {
		return c.GetTxFunc(hash)
	}

	return nil, nil
}
