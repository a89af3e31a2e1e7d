package aptos

type MockClient struct {
	GetAccountFunc        func(address string) (*Account, error)
	EstimateGasPriceFunc  func() (*GasPrice, error)
	SimulateFunc          func(tx *Simulation) ([]SimulatedTransaction, error)
	SubmitTransactionFunc func(tx *Simulation) (*SubmittedTransaction, error)
	GetTransactionFunc    func(hash string) (*TransactionInfo, error)
	GetLedgerInfoFunc     func() (*LedgerInfo, error)
}

func (c *MockClient) GetAccount(address string) (*Account, error) {
	if c.GetAccountFunc != nil {
		return c.GetAccountFunc(address)
	}

	return nil, nil
}

func (c *MockClient) EstimateGasPrice() (*GasPrice, error) {
	if c.EstimateGasPriceFunc != nil {
		return c.EstimateGasPriceFunc()
	}

	return nil, nil
}

func (c *MockClient) Simulate(tx *Simulation) ([]SimulatedTransaction, error) {
	if c.SimulateFunc != nil {
		return c.SimulateFunc(tx)
	}

	return nil, nil
}

func (c *MockClient) SubmitTransaction(tx *Simulation) (*SubmittedTransaction, error) {
	if c.SubmitTransactionFunc != nil {
		return c.SubmitTransactionFunc(tx)
	}

	return nil, nil
}

func (c *MockClient) GetTransaction(hash string) (*TransactionInfo, error) {
	if c.GetTransactionFunc != nil {
		return c.GetTransactionFunc(hash)
	}

	return nil, nil
}

func (c *MockClient) GetLedgerInfo() (*LedgerInfo, error) {
	if c.GetLedgerInfoFunc != nil {
		return c.GetLedgerInfoFunc()
	}

	return nil, nil
}
