package hypercore

import "encoding/json"

type MockClient struct {
	ExchangeFunc     func(payload []byte) (*ExchangeResponse, error)
	SpotBalancesFunc func(user string) ([]SpotBalance, error)
	MetaFunc         func() (json.RawMessage, error)
}

func (c *MockClient) Exchange(payload []byte) (*ExchangeResponse, error) {
	if c.ExchangeFunc != nil {
		return c.ExchangeFunc(payload)
	}

	return nil, nil
}

func (c *MockClient) SpotBalances(user string) ([]SpotBalance, error) {
	if c.SpotBalancesFunc != nil {
		return c.SpotBalancesFunc(user)
	}

	return nil, nil
}

func (c *MockClient) Meta() (json.RawMessage, error) {
	if c.MetaFunc != nil {
		return c.MetaFunc()
	}

	return nil, nil
}
