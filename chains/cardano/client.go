package cardano

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/blockfrost/blockfrost-go"
	"github.com/echovl/cardano-go"

	"github.com/tidewallet/core/network"
)

// Client is the read side of the adapter, backed by Blockfrost.
// Submission goes through a cardano-submit-api endpoint instead since
// wallets self-host that piece.
type Client interface {
	Health(ctx context.Context) (bool, error)
	LatestBlock(ctx context.Context) (*blockfrost.Block, error)
	ProtocolParams(ctx context.Context) (*cardano.ProtocolParams, error)
	AddressUTXOs(ctx context.Context, address string) ([]cardano.UTxO, error)
	Transaction(ctx context.Context, hash string) (*blockfrost.TransactionContent, error)
	SubmitTx(ctx context.Context, cborTx []byte) (string, error)
}

type blockfrostClient struct {
	inner     blockfrost.APIClient
	submitUrl string
	http      network.Http
}

func NewClient(projectId, server, submitUrl string, http network.Http) Client {
	return &blockfrostClient{
		inner: blockfrost.NewAPIClient(blockfrost.APIClientOptions{
			ProjectID: projectId,
			Server:    server,
		}),
		submitUrl: submitUrl,
		http:      http,
	}
}

func (c *blockfrostClient) Health(ctx context.Context) (bool, error) {
	health, err := c.inner.Health(ctx)
	if err != nil {
		return false, err
	}
	return health.IsHealthy, nil
}

func (c *blockfrostClient) LatestBlock(ctx context.Context) (*blockfrost.Block, error) {
	block, err := c.inner.BlockLatest(ctx)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (c *blockfrostClient) ProtocolParams(ctx context.Context) (*cardano.ProtocolParams, error) {
	eparams, err := c.inner.LatestEpochParameters(ctx)
	if err != nil {
		return nil, err
	}

	minUTXO, err := strconv.ParseUint(eparams.MinUtxo, 10, 64)
	if err != nil {
		return nil, err
	}
	poolDeposit, err := strconv.ParseUint(eparams.PoolDeposit, 10, 64)
	if err != nil {
		return nil, err
	}
	keyDeposit, err := strconv.ParseUint(eparams.KeyDeposit, 10, 64)
	if err != nil {
		return nil, err
	}

	return &cardano.ProtocolParams{
		MinFeeA:            cardano.Coin(eparams.MinFeeA),
		MinFeeB:            cardano.Coin(eparams.MinFeeB),
		MaxBlockBodySize:   uint(eparams.MaxBlockSize),
		MaxTxSize:          uint(eparams.MaxTxSize),
		MaxBlockHeaderSize: uint(eparams.MaxBlockHeaderSize),
		KeyDeposit:         cardano.Coin(keyDeposit),
		PoolDeposit:        cardano.Coin(poolDeposit),
		MaxEpoch:           uint(eparams.Epoch),
		NOpt:               uint(eparams.NOpt),
		CoinsPerUTXOWord:   cardano.Coin(minUTXO),
	}, nil
}

func (c *blockfrostClient) AddressUTXOs(ctx context.Context, address string) ([]cardano.UTxO, error) {
	butxos, err := c.inner.AddressUTXOs(ctx, address, blockfrost.APIQueryParams{})
	if err != nil {
		return nil, err
	}

	spender, err := cardano.NewAddress(address)
	if err != nil {
		return nil, err
	}

	utxos := make([]cardano.UTxO, 0, len(butxos))
	for _, butxo := range butxos {
		txHash, err := cardano.NewHash32(butxo.TxHash)
		if err != nil {
			return nil, err
		}

		amount := cardano.NewValue(0)
		for _, a := range butxo.Amount {
			quantity, err := strconv.ParseUint(a.Quantity, 10, 64)
			if err != nil {
				return nil, err
			}

			if a.Unit == "lovelace" {
				amount.Coin += cardano.Coin(quantity)
				continue
			}

			unitBytes, err := hex.DecodeString(a.Unit)
			if err != nil || len(unitBytes) < 28 {
				return nil, fmt.Errorf("malformed asset unit %q", a.Unit)
			}
			policyId := cardano.NewPolicyIDFromHash(unitBytes[:28])
			assetName := cardano.NewAssetName(string(unitBytes[28:]))
			if assets := amount.MultiAsset.Get(policyId); assets != nil {
				assets.Set(assetName, cardano.BigNum(quantity))
			} else {
				amount.MultiAsset.Set(policyId,
					cardano.NewAssets().Set(assetName, cardano.BigNum(quantity)))
			}
		}

		utxos = append(utxos, cardano.UTxO{
			Spender: spender,
			TxHash:  txHash,
			Amount:  amount,
			Index:   uint64(butxo.OutputIndex),
		})
	}
	return utxos, nil
}

func (c *blockfrostClient) Transaction(ctx context.Context, hash string) (*blockfrost.TransactionContent, error) {
	content, err := c.inner.Transaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *blockfrostClient) SubmitTx(ctx context.Context, cborTx []byte) (string, error) {
	bz, err := c.http.PostRaw(c.submitUrl+"/api/submit/tx", "application/cbor", cborTx)
	if err != nil {
		return "", err
	}

	// submit-api answers the transaction id as a JSON string.
	txid := strings.Trim(strings.TrimSpace(string(bz)), `"`)
	if len(txid) != 64 {
		return "", fmt.Errorf("submit rejected: %s", string(bz))
	}
	return txid, nil
}
