package hypercore

import (
	"encoding/json"
	"fmt"

	"github.com/tidewallet/core/network"
)

// ExchangeResponse is the synchronous verdict for a posted action.
type ExchangeResponse struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

func (r *ExchangeResponse) Ok() bool {
	return r.Status == "ok"
}

// SpotBalance is one token balance from the spot clearinghouse.
type SpotBalance struct {
	Coin  string `json:"coin"`
	Total string `json:"total"`
	Hold  string `json:"hold"`
}

type spotClearinghouseState struct {
	Balances []SpotBalance `json:"balances"`
}

type Client interface {
	Exchange(payload []byte) (*ExchangeResponse, error)
	SpotBalances(user string) ([]SpotBalance, error)
	Meta() (json.RawMessage, error)
}

type restClient struct {
	baseUrl string
	http    network.Http
}

func NewClient(baseUrl string, http network.Http) Client {
	return &restClient{baseUrl: baseUrl, http: http}
}

func (c *restClient) Exchange(payload []byte) (*ExchangeResponse, error) {
	bz, err := c.http.PostRaw(c.baseUrl+"/exchange", "application/json", payload)
	if err != nil {
		return nil, err
	}

	resp := &ExchangeResponse{}
	if err := json.Unmarshal(bz, resp); err != nil {
		// Rejections come back as a bare string.
		return nil, fmt.Errorf("exchange rejected: %s", string(bz))
	}
	return resp, nil
}

func (c *restClient) info(request interface{}, out interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	bz, err := c.http.PostRaw(c.baseUrl+"/info", "application/json", body)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, out)
}

func (c *restClient) SpotBalances(user string) ([]SpotBalance, error) {
	state := &spotClearinghouseState{}
	err := c.info(map[string]interface{}{
		"type": "spotClearinghouseState",
		"user": user,
	}, state)
	if err != nil {
		return nil, err
	}
	return state.Balances, nil
}

func (c *restClient) Meta() (json.RawMessage, error) {
	var meta json.RawMessage
	if err := c.info(map[string]interface{}{"type": "meta"}, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}
