package sui

import (
	"context"
	"fmt"

	"github.com/ybbus/jsonrpc/v3"
)

const suiCoinType = "0x2::sui::SUI"

// Coin is one owned coin object usable as gas payment.
type Coin struct {
	CoinObjectId string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      string `json:"balance"`
}

type CoinPage struct {
	Data        []Coin `json:"data"`
	HasNextPage bool   `json:"hasNextPage"`
}

type ExecuteResult struct {
	Digest  string              `json:"digest"`
	Effects *TransactionEffects `json:"effects"`
}

type TransactionEffects struct {
	Status struct {
		Status string `json:"status"` // "success" or "failure"
		Error  string `json:"error"`
	} `json:"status"`
	GasUsed struct {
		ComputationCost         string `json:"computationCost"`
		StorageCost             string `json:"storageCost"`
		StorageRebate           string `json:"storageRebate"`
		NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
	} `json:"gasUsed"`
}

type TransactionBlock struct {
	Digest     string              `json:"digest"`
	Checkpoint string              `json:"checkpoint"`
	Effects    *TransactionEffects `json:"effects"`
}

type Client interface {
	ReferenceGasPrice(ctx context.Context) (uint64, error)
	GetCoins(ctx context.Context, owner string) (*CoinPage, error)
	ExecuteTransactionBlock(ctx context.Context, txBytesBase64, signatureBase64 string) (*ExecuteResult, error)
	GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error)
	LatestCheckpoint(ctx context.Context) (uint64, error)
}

type rpcClient struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string) Client {
	return &rpcClient{rpc: jsonrpc.NewClient(url)}
}

func (c *rpcClient) ReferenceGasPrice(ctx context.Context) (uint64, error) {
	resp, err := c.rpc.Call(ctx, "suix_getReferenceGasPrice")
	if err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("suix_getReferenceGasPrice: %s", resp.Error.Message)
	}

	var price string
	if err := resp.GetObject(&price); err != nil {
		return 0, err
	}

	var value uint64
	if _, err := fmt.Sscanf(price, "%d", &value); err != nil {
		return 0, fmt.Errorf("malformed gas price %q", price)
	}
	return value, nil
}

func (c *rpcClient) GetCoins(ctx context.Context, owner string) (*CoinPage, error) {
	resp, err := c.rpc.Call(ctx, "suix_getCoins", []interface{}{owner, suiCoinType})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("suix_getCoins: %s", resp.Error.Message)
	}

	page := &CoinPage{}
	if err := resp.GetObject(page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *rpcClient) ExecuteTransactionBlock(ctx context.Context, txBytesBase64,
	signatureBase64 string) (*ExecuteResult, error) {
	resp, err := c.rpc.Call(ctx, "sui_executeTransactionBlock", []interface{}{
		txBytesBase64,
		[]string{signatureBase64},
		map[string]interface{}{"showEffects": true},
		"WaitForEffectsCert",
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("sui_executeTransactionBlock: %s", resp.Error.Message)
	}

	result := &ExecuteResult{}
	if err := resp.GetObject(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *rpcClient) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error) {
	resp, err := c.rpc.Call(ctx, "sui_getTransactionBlock", []interface{}{
		digest,
		map[string]interface{}{"showEffects": true},
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("sui_getTransactionBlock: %s", resp.Error.Message)
	}

	block := &TransactionBlock{}
	if err := resp.GetObject(block); err != nil {
		return nil, err
	}
	return block, nil
}

func (c *rpcClient) LatestCheckpoint(ctx context.Context) (uint64, error) {
	resp, err := c.rpc.Call(ctx, "sui_getLatestCheckpointSequenceNumber")
	if err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("sui_getLatestCheckpointSequenceNumber: %s", resp.Error.Message)
	}

	var sequence string
	if err := resp.GetObject(&sequence); err != nil {
		return 0, err
	}

	var value uint64
	if _, err := fmt.Sscanf(sequence, "%d", &value); err != nil {
		return 0, fmt.Errorf("malformed checkpoint %q", sequence)
	}
	return value, nil
}
