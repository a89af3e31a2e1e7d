package ton

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ybbus/jsonrpc/v3"
)

type AddressInfo struct {
	Balance string `json:"balance"`
	State   string `json:"state"` // active | uninitialized | frozen
}

type RunResult struct {
	ExitCode int             `json:"exit_code"`
	Stack    [][]interface{} `json:"stack"`
}

type MasterchainInfo struct {
	Last struct {
		Seqno int64 `json:"seqno"`
	} `json:"last"`
}

type TransactionEntry struct {
	TransactionId struct {
		Hash string `json:"hash"`
		Lt   string `json:"lt"`
	} `json:"transaction_id"`
	InMsg struct {
		Hash string `json:"hash"`
	} `json:"in_msg"`
}

type Client interface {
	GetAddressInfo(ctx context.Context, address string) (*AddressInfo, error)
	// Seqno runs the wallet's seqno get-method; an uninitialized wallet
	// has no code yet and reports seqno 0.
	Seqno(ctx context.Context, address string) (uint32, error)
	MasterchainInfo(ctx context.Context) (*MasterchainInfo, error)
	SendBoc(ctx context.Context, bocBase64 string) (string, error)
	GetTransactions(ctx context.Context, address string, limit int) ([]TransactionEntry, error)
}

type rpcClient struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string) Client {
	return &rpcClient{rpc: jsonrpc.NewClient(url)}
}

func (c *rpcClient) call(ctx context.Context, out interface{}, method string,
	params map[string]interface{}) error {
	resp, err := c.rpc.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %s", method, resp.Error.Message)
	}
	return resp.GetObject(out)
}

func (c *rpcClient) GetAddressInfo(ctx context.Context, address string) (*AddressInfo, error) {
	info := &AddressInfo{}
	err := c.call(ctx, info, "getAddressInformation", map[string]interface{}{"address": address})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (c *rpcClient) Seqno(ctx context.Context, address string) (uint32, error) {
	result := &RunResult{}
	err := c.call(ctx, result, "runGetMethod", map[string]interface{}{
		"address": address,
		"method":  "seqno",
		"stack":   []interface{}{},
	})
	if err != nil {
		return 0, err
	}

	// Exit code 11 means the method is missing: the wallet contract is
	// not deployed yet and its first message uses seqno 0.
	if result.ExitCode != 0 {
		return 0, nil
	}
	if len(result.Stack) == 0 || len(result.Stack[0]) < 2 {
		return 0, fmt.Errorf("malformed seqno stack")
	}

	raw, ok := result.Stack[0][1].(string)
	if !ok {
		return 0, fmt.Errorf("malformed seqno value")
	}
	seqno, err := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed seqno %q: %w", raw, err)
	}
	return uint32(seqno), nil
}

func (c *rpcClient) MasterchainInfo(ctx context.Context) (*MasterchainInfo, error) {
	info := &MasterchainInfo{}
	if err := c.call(ctx, info, "getMasterchainInfo", map[string]interface{}{}); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *rpcClient) SendBoc(ctx context.Context, bocBase64 string) (string, error) {
	result := &struct {
		Hash string `json:"hash"`
	}{}
	err := c.call(ctx, result, "sendBocReturnHash", map[string]interface{}{"boc": bocBase64})
	if err != nil {
		return "", err
	}
	return result.Hash, nil
}

func (c *rpcClient) GetTransactions(ctx context.Context, address string, limit int) ([]TransactionEntry, error) {
	resp, err := c.rpc.Call(ctx, "getTransactions", map[string]interface{}{
		"address": address,
		"limit":   limit,
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("getTransactions: %s", resp.Error.Message)
	}

	entries := make([]TransactionEntry, 0)
	if err := resp.GetObject(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
