package algorand

import (
	"encoding/json"
	"fmt"

	"github.com/tidewallet/core/network"
)

// TransactionParams mirrors the algod suggested-params response.
type TransactionParams struct {
	ConsensusVersion string `json:"consensus-version"`
	Fee              uint64 `json:"fee"`
	GenesisId        string `json:"genesis-id"`
	GenesisHash      string `json:"genesis-hash"`
	LastRound        uint64 `json:"last-round"`
	MinFee           uint64 `json:"min-fee"`
}

type PendingTransaction struct {
	ConfirmedRound uint64 `json:"confirmed-round"`
	PoolError      string `json:"pool-error"`
}

type NodeStatus struct {
	LastRound uint64 `json:"last-round"`
}

type submitResponse struct {
	TxId    string `json:"txId"`
	Message string `json:"message"`
}

type Client interface {
	TransactionParams() (*TransactionParams, error)
	SubmitTransaction(rawTx []byte) (string, error)
	PendingTransaction(txid string) (*PendingTransaction, error)
	Status() (*NodeStatus, error)
}

type restClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &restClient{baseUrl: baseUrl, http: http}
}

func (c *restClient) TransactionParams() (*TransactionParams, error) {
	bz, err := c.http.Get(c.baseUrl + "/v2/transactions/params")
	if err != nil {
		return nil, err
	}

	params := &TransactionParams{}
	if err := json.Unmarshal(bz, params); err != nil {
		return nil, err
	}
	if params.GenesisHash == "" {
		return nil, fmt.Errorf("empty suggested params response")
	}
	return params, nil
}

func (c *restClient) SubmitTransaction(rawTx []byte) (string, error) {
	bz, err := c.http.PostRaw(c.baseUrl+"/v2/transactions", "application/x-binary", rawTx)
	if err != nil {
		return "", err
	}

	resp := &submitResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		return "", err
	}
	if resp.TxId == "" {
		return "", fmt.Errorf("submit rejected: %s", resp.Message)
	}
	return resp.TxId, nil
}

func (c *restClient) PendingTransaction(txid string) (*PendingTransaction, error) {
	bz, err := c.http.Get(c.baseUrl + "/v2/transactions/pending/" + txid + "?format=json")
	if err != nil {
		return nil, err
	}

	pending := &PendingTransaction{}
	if err := json.Unmarshal(bz, pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (c *restClient) Status() (*NodeStatus, error) {
	bz, err := c.http.Get(c.baseUrl + "/v2/status")
	if err != nil {
		return nil, err
	}

	status := &NodeStatus{}
	if err := json.Unmarshal(bz, status); err != nil {
		return nil, err
	}
	return status, nil
}
