package chains

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/tidewallet/core/types"
)

// clientFor scans an adapter list for the single client serving a
// chain. Zero or duplicate matches indicate a wiring defect.
func clientFor[T ChainClient](clients []T, chain types.Chain) (T, error) {
	var found T
	count := 0
	for _, client := range clients {
		if client.SupportsChain(chain) {
			found = client
			count++
		}
	}

	switch count {
	case 0:
		return found, fmt.Errorf("%w: %s", types.ErrNoClient, chain)
	case 1:
		return found, nil
	default:
		return found, fmt.Errorf("%w: %s", types.ErrDuplicateClient, chain)
	}
}

// SignerPreloaderProxy routes a transaction intent to the preloader of
// its chain, selecting the specialized preload operation by the
// intent's kind.
type SignerPreloaderProxy struct {
	nativeClients   []NativeTransferPreloader
	tokenClients    []TokenTransferPreloader
	swapClients     []SwapTransactionPreloader
	stakeClients    []StakeTransactionPreloader
	activateClients []ActivationTransactionPreloader
}

func NewSignerPreloaderProxy(
	nativeClients []NativeTransferPreloader,
	tokenClients []TokenTransferPreloader,
	swapClients []SwapTransactionPreloader,
	stakeClients []StakeTransactionPreloader,
	activateClients []ActivationTransactionPreloader,
) *SignerPreloaderProxy {
	return &SignerPreloaderProxy{
		nativeClients:   nativeClients,
		tokenClients:    tokenClients,
		swapClients:     swapClients,
		stakeClients:    stakeClients,
		activateClients: activateClients,
	}
}

func (p *SignerPreloaderProxy) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(p.nativeClients, chain)
	return err == nil
}

func (p *SignerPreloaderProxy) Preload(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	switch {
	case params.Kind == types.TxTypeTransfer:
		return p.PreloadNativeTransfer(ctx, params)
	case params.Kind == types.TxTypeTokenTransfer:
		return p.PreloadTokenTransfer(ctx, params)
	case params.Kind == types.TxTypeNftTransfer:
		// NFTs move through the token-transfer machinery; the asset id
		// carries the collection contract.
		return p.PreloadTokenTransfer(ctx, params)
	case params.Kind == types.TxTypeSwap:
		return p.PreloadSwap(ctx, params)
	case params.Kind == types.TxTypeTokenApproval:
		// Approvals ride the swap path: same call-data shape, same fee probe.
		return p.PreloadSwap(ctx, params)
	case params.Kind.IsStake():
		return p.PreloadStake(ctx, params)
	case params.Kind == types.TxTypeActivate:
		return p.PreloadActivate(ctx, params)
	default:
		return nil, fmt.Errorf("unsupported intent kind %q", params.Kind)
	}
}

func (p *SignerPreloaderProxy) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	client, err := clientFor(p.nativeClients, params.Chain())
	if err != nil {
		return nil, err
	}
	return client.PreloadNativeTransfer(ctx, params)
}

func (p *SignerPreloaderProxy) PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	client, err := clientFor(p.tokenClients, params.Chain())
	if err != nil {
		return nil, err
	}
	return client.PreloadTokenTransfer(ctx, params)
}

func (p *SignerPreloaderProxy) PreloadSwap(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	client, err := clientFor(p.swapClients, params.Chain())
	if err != nil {
		return nil, err
	}
	return client.PreloadSwap(ctx, params)
}

func (p *SignerPreloaderProxy) PreloadStake(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	client, err := clientFor(p.stakeClients, params.Chain())
	if err != nil {
		return nil, err
	}
	return client.PreloadStake(ctx, params)
}

func (p *SignerPreloaderProxy) PreloadActivate(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	client, err := clientFor(p.activateClients, params.Chain())
	if err != nil {
		return nil, err
	}
	return client.PreloadActivate(ctx, params)
}

// SignClientProxy routes a signing request to the chain's sign client.
type SignClientProxy struct {
	clients []SignClient
}

func NewSignClientProxy(clients []SignClient) *SignClientProxy {
	return &SignClientProxy{clients: clients}
}

func (p *SignClientProxy) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(p.clients, chain)
	return err == nil
}

func (p *SignClientProxy) Sign(params *types.SignerParams, priority types.FeePriority, privateKey []byte) ([][]byte, error) {
	client, err := clientFor(p.clients, params.Input.Chain())
	if err != nil {
		return nil, err
	}
	return client.SignTransaction(params, priority, privateKey)
}

// BroadcastService is the chain-agnostic broadcast entry point.
type BroadcastService struct {
	clients []BroadcastClient
}

func NewBroadcastService(clients []BroadcastClient) *BroadcastService {
	return &BroadcastService{clients: clients}
}

func (s *BroadcastService) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(s.clients, chain)
	return err == nil
}

func (s *BroadcastService) Broadcast(ctx context.Context, chain types.Chain, owner string,
	signedBytes []byte, txType types.TxType) (string, error) {
	client, err := clientFor(s.clients, chain)
	if err != nil {
		return "", err
	}
	return client.Broadcast(ctx, owner, signedBytes, txType)
}

const terminalCacheSize = 1024

// TransactionStatusService fans status polls out to the chain adapters.
// Terminal verdicts are cached so repeated lookups for a settled
// transaction skip the node round trip.
type TransactionStatusService struct {
	clients []TransactionStatusClient

	lock     *sync.RWMutex
	terminal *lru.Cache
}

func NewTransactionStatusService(clients []TransactionStatusClient) *TransactionStatusService {
	return &TransactionStatusService{
		clients:  clients,
		lock:     &sync.RWMutex{},
		terminal: lru.New(terminalCacheSize),
	}
}

func (s *TransactionStatusService) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(s.clients, chain)
	return err == nil
}

func (s *TransactionStatusService) GetStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	key := types.TransactionId(req.Chain, req.Hash)

	s.lock.RLock()
	cached, ok := s.terminal.Get(key)
	s.lock.RUnlock()
	if ok {
		return cached.(*types.TransactionChanges), nil
	}

	client, err := clientFor(s.clients, req.Chain)
	if err != nil {
		return nil, err
	}
	changes, err := client.TransactionStatus(ctx, req)
	if err != nil {
		return nil, err
	}

	if changes != nil && changes.State.IsTerminal() {
		s.lock.Lock()
		s.terminal.Add(key, changes)
		s.lock.Unlock()
	}
	return changes, nil
}

// BalanceService reads native balances through the chain adapters.
// Chains without a balance surface simply have no client registered.
type BalanceService struct {
	clients []BalanceClient
}

func NewBalanceService(clients []BalanceClient) *BalanceService {
	return &BalanceService{clients: clients}
}

func (s *BalanceService) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(s.clients, chain)
	return err == nil
}

func (s *BalanceService) NativeBalance(ctx context.Context, chain types.Chain, address string) (*big.Int, error) {
	client, err := clientFor(s.clients, chain)
	if err != nil {
		return nil, err
	}
	return client.NativeBalance(ctx, address)
}

// NodeStatusService probes chain heads through the node-status clients.
type NodeStatusService struct {
	clients []NodeStatusClient
}

func NewNodeStatusService(clients []NodeStatusClient) *NodeStatusService {
	return &NodeStatusService{clients: clients}
}

func (s *NodeStatusService) SupportsChain(chain types.Chain) bool {
	_, err := clientFor(s.clients, chain)
	return err == nil
}

func (s *NodeStatusService) NodeStatus(ctx context.Context, chain types.Chain) (*types.NodeStatus, error) {
	client, err := clientFor(s.clients, chain)
	if err != nil {
		return nil, err
	}
	return client.NodeStatus(ctx)
}
