package near

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ybbus/jsonrpc/v3"
)

// AccessKey is the nonce view for one (account, public key) pair. Error
// is set when the node answers the query with an UNKNOWN_ACCESS_KEY or
// UNKNOWN_ACCOUNT body instead of a key view.
type AccessKey struct {
	Nonce       uint64 `json:"nonce"`
	BlockHash   string `json:"block_hash"`
	BlockHeight uint64 `json:"block_height"`
	Error       string `json:"error"`
}

func (k *AccessKey) NotFound() bool {
	return k.Error != ""
}

type AccountView struct {
	Amount string `json:"amount"`
	Error  string `json:"error"`
}

type GasPrice struct {
	GasPrice string `json:"gas_price"`
}

type BlockHeader struct {
	Header struct {
		Height uint64 `json:"height"`
		Hash   string `json:"hash"`
	} `json:"header"`
}

type TxStatus struct {
	Status struct {
		SuccessValue     *string     `json:"SuccessValue"`
		SuccessReceiptId *string     `json:"SuccessReceiptId"`
		Failure          interface{} `json:"Failure"`
	} `json:"status"`
}

type Client interface {
	ViewAccessKey(ctx context.Context, accountId, publicKey string) (*AccessKey, error)
	ViewAccount(ctx context.Context, accountId string) (*AccountView, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	LatestBlock(ctx context.Context) (*BlockHeader, error)
	SendTransaction(ctx context.Context, base64Tx string) (string, error)
	TxStatus(ctx context.Context, hash, senderId string) (*TxStatus, error)
}

type rpcClient struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string) Client {
	return &rpcClient{rpc: jsonrpc.NewClient(url)}
}

func (c *rpcClient) ViewAccessKey(ctx context.Context, accountId, publicKey string) (*AccessKey, error) {
	resp, err := c.rpc.Call(ctx, "query", map[string]interface{}{
		"request_type": "view_access_key",
		"finality":     "final",
		"account_id":   accountId,
		"public_key":   publicKey,
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("query: %s", resp.Error.Message)
	}

	key := &AccessKey{}
	if err := resp.GetObject(key); err != nil {
		return nil, err
	}
	return key, nil
}

func (c *rpcClient) ViewAccount(ctx context.Context, accountId string) (*AccountView, error) {
	resp, err := c.rpc.Call(ctx, "query", map[string]interface{}{
		"request_type": "view_account",
		"finality":     "final",
		"account_id":   accountId,
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("query: %s", resp.Error.Message)
	}

	view := &AccountView{}
	if err := resp.GetObject(view); err != nil {
		return nil, err
	}
	return view, nil
}

func (c *rpcClient) GasPrice(ctx context.Context) (*big.Int, error) {
	resp, err := c.rpc.Call(ctx, "gas_price", []interface{}{nil})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("gas_price: %s", resp.Error.Message)
	}

	price := &GasPrice{}
	if err := resp.GetObject(price); err != nil {
		return nil, err
	}

	value, ok := new(big.Int).SetString(price.GasPrice, 10)
	if !ok {
		return nil, fmt.Errorf("malformed gas price %q", price.GasPrice)
	}
	return value, nil
}

func (c *rpcClient) LatestBlock(ctx context.Context) (*BlockHeader, error) {
	resp, err := c.rpc.Call(ctx, "block", map[string]interface{}{"finality": "final"})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("block: %s", resp.Error.Message)
	}

	header := &BlockHeader{}
	if err := resp.GetObject(header); err != nil {
		return nil, err
	}
	return header, nil
}

func (c *rpcClient) SendTransaction(ctx context.Context, base64Tx string) (string, error) {
	resp, err := c.rpc.Call(ctx, "broadcast_tx_async", []interface{}{base64Tx})
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("broadcast_tx_async: %s", resp.Error.Message)
	}

	hash, err := resp.GetString()
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *rpcClient) TxStatus(ctx context.Context, hash, senderId string) (*TxStatus, error) {
	resp, err := c.rpc.Call(ctx, "tx", []interface{}{hash, senderId})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("tx: %s", resp.Error.Message)
	}

	status := &TxStatus{}
	if err := resp.GetObject(status); err != nil {
		return nil, err
	}
	return status, nil
}
