package bitcoin

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/tidewallet/core/network"
)

// Utxo is one unspent output as reported by a blockbook-style node.
type Utxo struct {
	TxId  string `json:"txid"`
	Vout  uint32 `json:"vout"`
	Value string `json:"value"`
}

func (u *Utxo) Amount() *big.Int {
	value, ok := new(big.Int).SetString(u.Value, 10)
	if !ok {
		return big.NewInt(0)
	}
	return value
}

type feeEstimate struct {
	Result string `json:"result"`
}

type addressInfo struct {
	Balance string `json:"balance"`
}

type txInfo struct {
	TxId          string `json:"txid"`
	BlockHeight   int64  `json:"blockHeight"`
	Confirmations int64  `json:"confirmations"`
}

type sendResult struct {
	Result string `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type nodeInfo struct {
	Blockbook struct {
		BestHeight int64 `json:"bestHeight"`
		InSync     bool  `json:"inSync"`
	} `json:"blockbook"`
}

// Client is the subset of the blockbook HTTP API the adapter needs.
type Client interface {
	GetUtxos(address string) ([]Utxo, error)
	// EstimateFee returns the fee rate for a confirmation target, in the
	// chain's smallest unit per kilobyte.
	EstimateFee(blocks int) (*big.Int, error)
	GetBalance(address string) (*big.Int, error)
	GetTransaction(hash string) (*txInfo, error)
	SendRawTransaction(hexPayload string) (*sendResult, error)
	NodeInfo() (*nodeInfo, error)
}

type blockbookClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &blockbookClient{
		baseUrl: baseUrl,
		http:    http,
	}
}

func (c *blockbookClient) GetUtxos(address string) ([]Utxo, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api/v2/utxo/%s", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	utxos := make([]Utxo, 0)
	if err := json.Unmarshal(bz, &utxos); err != nil {
		return nil, err
	}

	return utxos, nil
}

func (c *blockbookClient) EstimateFee(blocks int) (*big.Int, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api/v1/estimatefee/%d", c.baseUrl, blocks))
	if err != nil {
		return nil, err
	}

	estimate := &feeEstimate{}
	if err := json.Unmarshal(bz, estimate); err != nil {
		return nil, err
	}

	rate, ok := new(big.Int).SetString(estimate.Result, 10)
	if !ok {
		return nil, fmt.Errorf("malformed fee estimate %q", estimate.Result)
	}

	return rate, nil
}

func (c *blockbookClient) GetBalance(address string) (*big.Int, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api/v2/address/%s", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	info := &addressInfo{}
	if err := json.Unmarshal(bz, info); err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(info.Balance, 10)
	if !ok {
		return nil, fmt.Errorf("malformed balance %q", info.Balance)
	}

	return balance, nil
}

func (c *blockbookClient) GetTransaction(hash string) (*txInfo, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api/v2/tx/%s", c.baseUrl, hash))
	if err != nil {
		return nil, err
	}

	info := &txInfo{}
	if err := json.Unmarshal(bz, info); err != nil {
		return nil, err
	}

	return info, nil
}

func (c *blockbookClient) SendRawTransaction(hexPayload string) (*sendResult, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api/v2/sendtx/%s", c.baseUrl, hexPayload))
	if err != nil {
		return nil, err
	}

	result := &sendResult{}
	if err := json.Unmarshal(bz, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *blockbookClient) NodeInfo() (*nodeInfo, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/api", c.baseUrl))
	if err != nil {
		return nil, err
	}

	info := &nodeInfo{}
	if err := json.Unmarshal(bz, info); err != nil {
		return nil, err
	}

	return info, nil
}
