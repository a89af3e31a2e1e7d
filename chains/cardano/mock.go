package cardano

import (
	"context"

	"github.com/blockfrost/blockfrost-go"
	"github.com/echovl/cardano-go"
)

type MockClient struct {
	HealthFunc         func(ctx context.Context) (bool, error)
	LatestBlockFunc    func(ctx context.Context) (*blockfrost.Block, error)
	ProtocolParamsFunc func(ctx context.Context) (*cardano.ProtocolParams, error)
	AddressUTXOsFunc   func(ctx context.Context, address string) ([]cardano.UTxO, error)
	TransactionFunc    func(ctx context.Context, hash string) (*blockfrost.TransactionContent, error)
	SubmitTxFunc       func(ctx context.Context, cborTx []byte) (string, error)
}

func (c *MockClient) Health(ctx context.Context) (bool, error) {
	if c.HealthFunc != nil {
		return c.HealthFunc(ctx)
	}

	return false, nil
}

func (c *MockClient) LatestBlock(ctx context.Context) (*blockfrost.Block, error) {
	if c.LatestBlockFunc != nil {
		return c.LatestBlockFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) ProtocolParams(ctx context.Context) (*cardano.ProtocolParams, error) {
	if c.ProtocolParamsFunc != nil {
		return c.ProtocolParamsFunc(ctx)
	}

	return nil, nil
}

func (c *MockClient) AddressUTXOs(ctx context.Context, address string) ([]cardano.UTxO, error) {
	if c.AddressUTXOsFunc != nil {
		return c.AddressUTXOsFunc(ctx, address)
	}

	return nil, nil
}

func (c *MockClient) Transaction(ctx context.Context, hash string) (*blockfrost.TransactionContent, error) {
	if c.TransactionFunc != nil {
		return c.TransactionFunc(ctx, hash)
	}

	return nil, nil
}

func (c *MockClient) SubmitTx(ctx context.Context, cborTx []byte) (string, error) {
	if c.SubmitTxFunc != nil {
		return c.SubmitTxFunc(ctx, cborTx)
	}

	return "", nil
}
