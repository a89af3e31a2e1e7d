package server

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tidewallet/core/chains"
	"github.com/tidewallet/core/lifecycle"
	"github.com/tidewallet/core/types"
)

// TransferRequest drives the full pipeline: preload, sign, broadcast,
// persist. The key blob comes from the caller's secure storage and is
// used for one signing attempt only.
type TransferRequest struct {
	Params     *types.ConfirmParams `json:"params"`
	Priority   types.FeePriority    `json:"priority"`
	PrivateKey hexutil.Bytes        `json:"private_key"`
}

type ApiHandler struct {
	preloader    *chains.SignerPreloaderProxy
	signer       *chains.SignClientProxy
	nodeStatus   *chains.NodeStatusService
	balances     *chains.BalanceService
	orchestrator *lifecycle.Orchestrator
	store        Store
}

// Store is the read surface the handler needs.
type Store interface {
	GetTransaction(id string) (*types.Transaction, error)
	GetPendingTransactions() ([]*types.Transaction, error)
}

func NewApi(preloader *chains.SignerPreloaderProxy, signer *chains.SignClientProxy,
	nodeStatus *chains.NodeStatusService, balances *chains.BalanceService,
	orchestrator *lifecycle.Orchestrator, store Store) *ApiHandler {
	return &ApiHandler{
		preloader:    preloader,
		signer:       signer,
		nodeStatus:   nodeStatus,
		balances:     balances,
		orchestrator: orchestrator,
		store:        store,
	}
}

// Empty function for checking health only.
func (api *ApiHandler) CheckHealth() {
}

// GetFees quotes the three fee tiers for a transaction intent.
func (api *ApiHandler) GetFees(ctx context.Context, params *types.ConfirmParams) ([]*types.Fee, error) {
	signerParams, err := api.preloader.Preload(ctx, params)
	if err != nil {
		return nil, err
	}
	return signerParams.Fees, nil
}

// Transfer runs an intent end to end and returns the stored record.
func (api *ApiHandler) Transfer(ctx context.Context, req *TransferRequest) (*types.Transaction, error) {
	signerParams, err := api.preloader.Preload(ctx, req.Params)
	if err != nil {
		return nil, err
	}

	signed, err := api.signer.Sign(signerParams, req.Priority, req.PrivateKey)
	if err != nil {
		return nil, err
	}

	return api.orchestrator.AddTransaction(ctx, signerParams, req.Priority, signed[0])
}

func (api *ApiHandler) GetTransaction(id string) (*types.Transaction, error) {
	return api.store.GetTransaction(id)
}

func (api *ApiHandler) GetPendingTransactions() ([]*types.Transaction, error) {
	return api.store.GetPendingTransactions()
}

func (api *ApiHandler) GetNodeStatus(ctx context.Context, chain string) (*types.NodeStatus, error) {
	return api.nodeStatus.NodeStatus(ctx, types.Chain(chain))
}

// GetBalance returns the spendable native balance in atomic units, as a
// decimal string.
func (api *ApiHandler) GetBalance(ctx context.Context, chain, address string) (string, error) {
	balance, err := api.balances.NativeBalance(ctx, types.Chain(chain), address)
	if err != nil {
		return "", err
	}
	return balance.String(), nil
}
