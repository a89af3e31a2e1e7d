package aptos

import (
	"encoding/json"
	"fmt"

	"github.com/tidewallet/core/network"
)

const accountNotFoundCode = "account_not_found"

// Account is the /v1/accounts response. On a 404 the node still returns
// a JSON body carrying error_code, which is how a brand-new (unfunded)
// account is recognized.
type Account struct {
	SequenceNumber string `json:"sequence_number"`
	ErrorCode      string `json:"error_code"`
	Message        string `json:"message"`
}

func (a *Account) NotFound() bool {
	return a.ErrorCode == accountNotFoundCode
}

type GasPrice struct {
	GasEstimate            int64 `json:"gas_estimate"`
	PrioritizedGasEstimate int64 `json:"prioritized_gas_estimate"`
}

// Simulation is the request/response shape of transaction simulation
// and submission.
type Simulation struct {
	Sender                  string    `json:"sender"`
	SequenceNumber          string    `json:"sequence_number"`
	MaxGasAmount            string    `json:"max_gas_amount"`
	GasUnitPrice            string    `json:"gas_unit_price"`
	ExpirationTimestampSecs string    `json:"expiration_timestamp_secs"`
	Payload                 Payload   `json:"payload"`
	Signature               Signature `json:"signature"`
}

type Payload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []string `json:"arguments"`
}

type Signature struct {
	Type      string `json:"type"`
	PublicKey string `json:"public_key,omitempty"`
	Signature string `json:"signature,omitempty"`
}

type SimulatedTransaction struct {
	Success  bool   `json:"success"`
	GasUsed  string `json:"gas_used"`
	VmStatus string `json:"vm_status"`
}

type SubmittedTransaction struct {
	Hash      string `json:"hash"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

type TransactionInfo struct {
	Type     string `json:"type"`
	Success  *bool  `json:"success"`
	VmStatus string `json:"vm_status"`
	Version  string `json:"version"`
}

type LedgerInfo struct {
	ChainId     int    `json:"chain_id"`
	BlockHeight string `json:"block_height"`
}

type Client interface {
	GetAccount(address string) (*Account, error)
	EstimateGasPrice() (*GasPrice, error)
	Simulate(tx *Simulation) ([]SimulatedTransaction, error)
	SubmitTransaction(tx *Simulation) (*SubmittedTransaction, error)
	GetTransaction(hash string) (*TransactionInfo, error)
	GetLedgerInfo() (*LedgerInfo, error)
}

type restClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &restClient{
		baseUrl: baseUrl,
		http:    http,
	}
}

func (c *restClient) GetAccount(address string) (*Account, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/v1/accounts/%s", c.baseUrl, address))
	if err != nil {
		return nil, err
	}

	account := &Account{}
	if err := json.Unmarshal(bz, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *restClient) EstimateGasPrice() (*GasPrice, error) {
	bz, err := c.http.Get(c.baseUrl + "/v1/estimate_gas_price")
	if err != nil {
		return nil, err
	}

	price := &GasPrice{}
	if err := json.Unmarshal(bz, price); err != nil {
		return nil, err
	}
	return price, nil
}

func (c *restClient) Simulate(tx *Simulation) ([]SimulatedTransaction, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	bz, err := c.http.Post(c.baseUrl+"/v1/transactions/simulate", body)
	if err != nil {
		return nil, err
	}

	simulated := make([]SimulatedTransaction, 0)
	if err := json.Unmarshal(bz, &simulated); err != nil {
		return nil, err
	}
	return simulated, nil
}

func (c *restClient) SubmitTransaction(tx *Simulation) (*SubmittedTransaction, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	bz, err := c.http.Post(c.baseUrl+"/v1/transactions", body)
	if err != nil {
		return nil, err
	}

	submitted := &SubmittedTransaction{}
	if err := json.Unmarshal(bz, submitted); err != nil {
		return nil, err
	}
	return submitted, nil
}

func (c *restClient) GetTransaction(hash string) (*TransactionInfo, error) {
	bz, err := c.http.Get(fmt.Sprintf("%s/v1/transactions/by_hash/%s", c.baseUrl, hash))
	if err != nil {
		return nil, err
	}

	info := &TransactionInfo{}
	if err := json.Unmarshal(bz, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *restClient) GetLedgerInfo() (*LedgerInfo, error) {
	bz, err := c.http.Get(c.baseUrl + "/v1")
	if err != nil {
		return nil, err
	}

	info := &LedgerInfo{}
	if err := json.Unmarshal(bz, info); err != nil {
		return nil, err
	}
	return info, nil
}
