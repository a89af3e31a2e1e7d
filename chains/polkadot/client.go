package polkadot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ybbus/jsonrpc/v3"
)

type RuntimeVersion struct {
	SpecVersion        uint32 `json:"specVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

type Header struct {
	Number string `json:"number"`
}

func (h *Header) BlockNumber() (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(h.Number, "0x"), 16, 64)
}

type Block struct {
	Block struct {
		Extrinsics []string `json:"extrinsics"`
	} `json:"block"`
}

type FeeInfo struct {
	PartialFee string `json:"partialFee"`
}

type Client interface {
	AccountNextIndex(ctx context.Context, address string) (uint64, error)
	BlockHash(ctx context.Context, number uint64) (string, error)
	FinalizedHead(ctx context.Context) (string, error)
	Header(ctx context.Context, hash string) (*Header, error)
	Block(ctx context.Context, hash string) (*Block, error)
	RuntimeVersion(ctx context.Context) (*RuntimeVersion, error)
	PaymentQueryInfo(ctx context.Context, extrinsicHex string) (*FeeInfo, error)
	SubmitExtrinsic(ctx context.Context, extrinsicHex string) (string, error)
}

type rpcClient struct {
	rpc jsonrpc.RPCClient
}

func NewClient(url string) Client {
	return &rpcClient{rpc: jsonrpc.NewClient(url)}
}

func (c *rpcClient) call(ctx context.Context, out interface{}, method string,
	params ...interface{}) error {
	resp, err := c.rpc.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %s", method, resp.Error.Message)
	}
	return resp.GetObject(out)
}

func (c *rpcClient) AccountNextIndex(ctx context.Context, address string) (uint64, error) {
	resp, err := c.rpc.Call(ctx, "system_accountNextIndex", address)
	if err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("system_accountNextIndex: %s", resp.Error.Message)
	}

	index, err := resp.GetInt()
	if err != nil {
		return 0, err
	}
	return uint64(index), nil
}

func (c *rpcClient) BlockHash(ctx context.Context, number uint64) (string, error) {
	resp, err := c.rpc.Call(ctx, "chain_getBlockHash", number)
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("chain_getBlockHash: %s", resp.Error.Message)
	}
	return resp.GetString()
}

func (c *rpcClient) FinalizedHead(ctx context.Context) (string, error) {
	resp, err := c.rpc.Call(ctx, "chain_getFinalizedHead")
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("chain_getFinalizedHead: %s", resp.Error.Message)
	}
	return resp.GetString()
}

func (c *rpcClient) Header(ctx context.Context, hash string) (*Header, error) {
	header := &Header{}
	if err := c.call(ctx, header, "chain_getHeader", hash); err != nil {
		return nil, err
	}
	return header, nil
}

func (c *rpcClient) Block(ctx context.Context, hash string) (*Block, error) {
	block := &Block{}
	if err := c.call(ctx, block, "chain_getBlock", hash); err != nil {
		return nil, err
	}
	return block, nil
}

func (c *rpcClient) RuntimeVersion(ctx context.Context) (*RuntimeVersion, error) {
	version := &RuntimeVersion{}
	if err := c.call(ctx, version, "state_getRuntimeVersion"); err != nil {
		return nil, err
	}
	return version, nil
}

func (c *rpcClient) PaymentQueryInfo(ctx context.Context, extrinsicHex string) (*FeeInfo, error) {
	info := &FeeInfo{}
	if err := c.call(ctx, info, "payment_queryInfo", extrinsicHex); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *rpcClient) SubmitExtrinsic(ctx context.Context, extrinsicHex string) (string, error) {
	resp, err := c.rpc.Call(ctx, "author_submitExtrinsic", extrinsicHex)
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("author_submitExtrinsic: %s", resp.Error.Message)
	}
	return resp.GetString()
}
