package tron

import (
	"encoding/json"
	"fmt"

	"github.com/tidewallet/core/network"
)

type NowBlock struct {
	BlockID     string `json:"blockID"`
	BlockHeader struct {
		RawData struct {
			Number    int64 `json:"number"`
			Timestamp int64 `json:"timestamp"`
		} `json:"raw_data"`
	} `json:"block_header"`
}

type Account struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type BroadcastResult struct {
	Result  bool   `json:"result"`
	Code    string `json:"code"`
	Txid    string `json:"txid"`
	Message string `json:"message"`
}

type TransactionInfo struct {
	Id          string `json:"id"`
	BlockNumber int64  `json:"blockNumber"`
	Fee         int64  `json:"fee"`
	Receipt     struct {
		Result string `json:"result"`
	} `json:"receipt"`
	Result string `json:"result"` // "FAILED" when execution failed
}

type ChainParameters struct {
	ChainParameter []struct {
		Key   string `json:"key"`
		Value int64  `json:"value"`
	} `json:"chainParameter"`
}

type Client interface {
	GetNowBlock() (*NowBlock, error)
	GetAccount(address string) (*Account, error)
	GetChainParameters() (*ChainParameters, error)
	BroadcastHex(txHex string) (*BroadcastResult, error)
	GetTransactionInfo(txid string) (*TransactionInfo, error)
}

type restClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &restClient{baseUrl: baseUrl, http: http}
}

func (c *restClient) post(path string, request interface{}, out interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	bz, err := c.http.Post(c.baseUrl+path, body)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, out)
}

func (c *restClient) GetNowBlock() (*NowBlock, error) {
	block := &NowBlock{}
	if err := c.post("/wallet/getnowblock", map[string]interface{}{}, block); err != nil {
		return nil, err
	}
	if block.BlockID == "" {
		return nil, fmt.Errorf("empty block response")
	}
	return block, nil
}

func (c *restClient) GetAccount(address string) (*Account, error) {
	account := &Account{}
	err := c.post("/wallet/getaccount", map[string]interface{}{
		"address": address,
		"visible": true,
	}, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (c *restClient) GetChainParameters() (*ChainParameters, error) {
	params := &ChainParameters{}
	bz, err := c.http.Get(c.baseUrl + "/wallet/getchainparameters")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bz, params); err != nil {
		return nil, err
	}
	return params, nil
}

func (c *restClient) BroadcastHex(txHex string) (*BroadcastResult, error) {
	result := &BroadcastResult{}
	err := c.post("/wallet/broadcasthex", map[string]interface{}{"transaction": txHex}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *restClient) GetTransactionInfo(txid string) (*TransactionInfo, error) {
	info := &TransactionInfo{}
	err := c.post("/wallet/gettransactioninfobyid", map[string]interface{}{"value": txid}, info)
	if err != nil {
		return nil, err
	}
	return info, nil
}
