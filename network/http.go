package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Http is the transport used by the REST-style chain adapters. RPC
// adapters use a JSON-RPC client instead.
type Http interface {
	Get(url string) ([]byte, error)
	Post(url string, body []byte) ([]byte, error)
	// PostRaw posts a non-JSON body (form encodings, CBOR blobs).
	PostRaw(url, contentType string, body []byte) ([]byte, error)
}

type DefaultHttp struct {
	client *http.Client
}

func NewHttp() Http {
	return &DefaultHttp{
		client: &http.Client{},
	}
}

func (d *DefaultHttp) Get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return d.do(req)
}

func (d *DefaultHttp) Post(url string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return d.do(req)
}

func (d *DefaultHttp) PostRaw(url, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	return d.do(req)
}

func (d *DefaultHttp) do(req *http.Request) ([]byte, error) {
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 500 {
		return buf, fmt.Errorf("http status %d", resp.StatusCode)
	}

	return buf, nil
}
