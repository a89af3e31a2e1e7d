package stellar

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tidewallet/core/network"
)

type AccountResponse struct {
	Sequence string `json:"sequence"`
	Balances []struct {
		AssetType string `json:"asset_type"`
		Balance   string `json:"balance"`
	} `json:"balances"`
	Status int `json:"status"`
}

// NotFound reports horizon's 404 problem body.
func (a *AccountResponse) NotFound() bool {
	return a.Status == 404
}

type FeeStats struct {
	LastLedgerBaseFee string `json:"last_ledger_base_fee"`
	FeeCharged        struct {
		P50 string `json:"p50"`
		P90 string `json:"p90"`
	} `json:"fee_charged"`
}

type SubmitResponse struct {
	Hash   string `json:"hash"`
	Status int    `json:"status"`
	Extras *struct {
		ResultCodes struct {
			Transaction string   `json:"transaction"`
			Operations  []string `json:"operations"`
		} `json:"result_codes"`
	} `json:"extras"`
}

type TransactionResponse struct {
	Successful bool   `json:"successful"`
	Ledger     int64  `json:"ledger"`
	Status     int    `json:"status"`
	Hash       string `json:"hash"`
}

func (t *TransactionResponse) NotFound() bool {
	return t.Status == 404
}

type RootResponse struct {
	HistoryLatestLedger int64 `json:"history_latest_ledger"`
	CoreLatestLedger    int64 `json:"core_latest_ledger"`
}

type Client interface {
	GetAccount(address string) (*AccountResponse, error)
	FeeStats() (*FeeStats, error)
	SubmitTransaction(envelopeBase64 string) (*SubmitResponse, error)
	GetTransaction(hash string) (*TransactionResponse, error)
	Root() (*RootResponse, error)
}

type horizonClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &horizonClient{baseUrl: baseUrl, http: http}
}

func (c *horizonClient) GetAccount(address string) (*AccountResponse, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/accounts/%s", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	account := &AccountResponse{}
	if err := json.Unmarshal(bz, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *horizonClient) FeeStats() (*FeeStats, error) {
	bz, err := c.http.Get(c.baseUrl + "/fee_stats")
	if err != nil {
		return nil, err
	}

	stats := &FeeStats{}
	if err := json.Unmarshal(bz, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *horizonClient) SubmitTransaction(envelopeBase64 string) (*SubmitResponse, error) {
	form := url.Values{"tx": {envelopeBase64}}
	bz, err := c.http.PostRaw(c.baseUrl+"/transactions",
		"application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return nil, err
	}

	resp := &SubmitResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *horizonClient) GetTransaction(hash string) (*TransactionResponse, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/transactions/%s", c.baseUrl, hash))
	if err != nil {
		return nil, err
	}

	resp := &TransactionResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *horizonClient) Root() (*RootResponse, error) {
	bz, err := c.http.Get(c.baseUrl + "/")
	if err != nil {
		return nil, err
	}

	root := &RootResponse{}
	if err := json.Unmarshal(bz, root); err != nil {
		return nil, err
	}
	return root, nil
}
