package algorand

type MockClient struct {
	TransactionParamsFunc  func() (*TransactionParams, error)
	SubmitTransactionFunc  func(rawTx []byte) (string, error)
	PendingTransactionFunc func(txid string) (*PendingTransaction, error)
	StatusFunc             func() (*NodeStatus, error)
}

func (c *MockClient) TransactionParams() (*TransactionParams, error) {
	if c.TransactionParamsFunc != nil {
		return c.TransactionParamsFunc()
	}

	return nil, nil
}

func (c *MockClient) SubmitTransaction(rawTx []byte) (string, error) {
	if c.SubmitTransactionFunc != nil {
		return c.SubmitTransactionFunc(rawTx)
	}

	return "", nil
}

func (c *MockClient) PendingTransaction(txid string) (*PendingTransaction, error) {
	if c.PendingTransactionFunc != nil {
		return c.PendingTransactionFunc(txid)
	}

	return nil, nil
}

func (c *MockClient) Status() (*NodeStatus, error) {
	if c.StatusFunc != nil {
		return c.StatusFunc()
	}

	return nil, nil
}
