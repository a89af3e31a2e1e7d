package cosmos

import (
	"encoding/json"
	"fmt"

	"github.com/tidewallet/core/network"
)

type AccountResponse struct {
	Account struct {
		AccountNumber string `json:"account_number"`
		Sequence      string `json:"sequence"`
	} `json:"account"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NotFound reports the LCD "account not found" error body. A missing
// account has account number and sequence 0.
func (a *AccountResponse) NotFound() bool {
	return a.Code == 5
}

type BlockResponse struct {
	Block struct {
		Header struct {
			ChainId string `json:"chain_id"`
			Height  string `json:"height"`
		} `json:"header"`
	} `json:"block"`
}

type BalanceResponse struct {
	Balance struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"balance"`
}

type TxResponse struct {
	Height string `json:"height"`
	TxHash string `json:"txhash"`
	Code   int    `json:"code"`
	RawLog string `json:"raw_log"`
}

type BroadcastResponse struct {
	TxResponse TxResponse `json:"tx_response"`
}

type GetTxResponse struct {
	TxResponse *TxResponse `json:"tx_response"`
	Code       int         `json:"code"`
	Message    string      `json:"message"`
}

type Client interface {
	GetAccount(address string) (*AccountResponse, error)
	GetLatestBlock() (*BlockResponse, error)
	GetBalance(address, denom string) (*BalanceResponse, error)
	BroadcastTx(txBytes []byte) (*TxResponse, error)
	GetTx(hash string) (*GetTxResponse, error)
}

type lcdClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &lcdClient{baseUrl: baseUrl, http: http}
}

func (c *lcdClient) GetAccount(address string) (*AccountResponse, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/cosmos/auth/v1beta1/accounts/%s", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	account := &AccountResponse{}
	if err := json.Unmarshal(bz, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *lcdClient) GetLatestBlock() (*BlockResponse, error) {
	bz, err := c.http.Get(c.baseUrl + "/cosmos/base/tendermint/v1beta1/blocks/latest")
	if err != nil {
		return nil, err
	}

	block := &BlockResponse{}
	if err := json.Unmarshal(bz, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (c *lcdClient) GetBalance(address, denom string) (*BalanceResponse, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/cosmos/bank/v1beta1/balances/%s/by_denom?denom=%s",
		c.baseUrl, address, denom))
	if err != nil {
		return nil, err
	}

	balance := &BalanceResponse{}
	if err := json.Unmarshal(bz, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

func (c *lcdClient) BroadcastTx(txBytes []byte) (*TxResponse, error) {
	body, err := json.Marshal(map[string]interface{}{
		"tx_bytes": txBytes, // marshals to base64
		"mode":     "BROADCAST_MODE_SYNC",
	})
	if err != nil {
		return nil, err
	}

	bz, err := c.http.Post(c.baseUrl+"/cosmos/tx/v1beta1/txs", body)
	if err != nil {
		return nil, err
	}

	resp := &BroadcastResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		return nil, err
	}
	return &resp.TxResponse, nil
}

func (c *lcdClient) GetTx(hash string) (*GetTxResponse, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/cosmos/tx/v1beta1/txs/%s", c.baseUrl, hash))
	if err != nil {
		return nil, err
	}

	resp := &GetTxResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
