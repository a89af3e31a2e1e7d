package xrp

import (
	"context"
	"fmt"

	"github.com/ybbus/jsonrpc/v3"
)

const notFoundError = "actNotFound"

type AccountInfo struct {
	AccountData struct {
		Sequence uint32 `json:"Sequence"`
		Balance  string `json:"Balance"`
	} `json:"account_data"`
	LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	Error              string `json:"error"`
	Status             string `json:"status"`
}

func (a *AccountInfo) NotFound() bool {
	return a.Error == notFoundError
}

type FeeInfo struct {
	Drops struct {
		MinimumFee    string `json:"minimum_fee"`
		OpenLedgerFee string `json:"open_ledger_fee"`
		MedianFee     string `json:"median_fee"`
	} `json:"drops"`
	LedgerCurrentIndex uint32 `json:"ledger_current_index"`
}

type SubmitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJson              struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type TxResult struct {
	Validated bool   `json:"validated"`
	Error     string `json:"error"`
	Meta      struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}

type Client interface {
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)
	Fee(ctx context.Context) (*FeeInfo, error)
	Submit(ctx context.Context, txBlobHex string) (*SubmitResult, error)
	Tx(ctx context.Context, hash string) (*TxResult, error)
}

type rpcClient struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string) Client {
	return &rpcClient{rpc: jsonrpc.NewClient(url)}
}

// rippled wraps every request's parameters in a single-element array.
func (c *rpcClient) call(ctx context.Context, method string, params map[string]interface{},
	out interface{}) error {
	resp, err := c.rpc.Call(ctx, method, []interface{}{params})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %s", method, resp.Error.Message)
	}
	return resp.GetObject(out)
}

func (c *rpcClient) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	info := &AccountInfo{}
	err := c.call(ctx, "account_info", map[string]interface{}{
		"account":      address,
		"ledger_index": "current",
	}, info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (c *rpcClient) Fee(ctx context.Context) (*FeeInfo, error) {
	fee := &FeeInfo{}
	if err := c.call(ctx, "fee", map[string]interface{}{}, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (c *rpcClient) Submit(ctx context.Context, txBlobHex string) (*SubmitResult, error) {
	result := &SubmitResult{}
	err := c.call(ctx, "submit", map[string]interface{}{"tx_blob": txBlobHex}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *rpcClient) Tx(ctx context.Context, hash string) (*TxResult, error) {
	result := &TxResult{}
	err := c.call(ctx, "tx", map[string]interface{}{"transaction": hash}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
