package bitcoin

import "math/big"

type MockClient struct {
	GetUtxosFunc           func(address string) ([]Utxo, error)
	EstimateFeeFunc        func(blocks int) (*big.Int, error)
	GetBalanceFunc         func(address string) (*big.Int, error)
	GetTransactionFunc     func(hash string) (*txInfo, error)
	SendRawTransactionFunc func(hexPayload string) (*sendResult, error)
	NodeInfoFunc           func() (*nodeInfo, error)
}

func (c *MockClient) GetUtxos(address string) ([]Utxo, error) {
	if c.GetUtxosFunc != nil {
		return c.GetUtxosFunc(address)
	}

	return nil, nil
}

func (c *MockClient) EstimateFee(blocks int) (*big.Int, error) {
	if c.EstimateFeeFunc != nil {
		return c.EstimateFeeFunc(blocks)
	}

	return big.NewInt(0), nil
}

func (c *MockClient) GetBalance(address string) (*big.Int, error) {
	if c.GetBalanceFunc != nil {
		return c.GetBalanceFunc(address)
	}

	return big.NewInt(0), nil
}

func (c *MockClient) GetTransaction(hash string) (*txInfo, error) {
	if c.GetTransactionFunc != nil {
		return c.GetTransactionFunc(hash)
	}

	return &txInfo{}, nil
}

func (c *MockClient) SendRawTransaction(hexPayload string) (*sendResult, error) {
	if c.SendRawTransactionFunc != nil {
		return c.SendRawTransactionFunc(hexPayload)
	}

	return &sendResult{}, nil
}

func (c *MockClient) NodeInfo() (*nodeInfo, error) {
	if c.NodeInfoFunc != nil {
		return c.NodeInfoFunc()
	}

	return &nodeInfo{}, nil
}
