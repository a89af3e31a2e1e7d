package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/sisu-network/lib/log"
	"go.uber.org/atomic"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/store"
	"github.com/tidewallet/core/types"
)

const (
	// ReconcileInterval is how often the loop re-polls every pending
	// transaction.
	ReconcileInterval = 10 * time.Second

	// pollTimeout bounds one status poll so a stuck node cannot stall
	// the whole tick.
	pollTimeout = 8 * time.Second
)

// Broadcaster submits signed payloads; satisfied by
// chains.BroadcastService.
type Broadcaster interface {
	Broadcast(ctx context.Context, chain types.Chain, owner string,
		signedBytes []byte, txType types.TxType) (string, error)
}

// StatusProvider polls transaction state; satisfied by
// chains.TransactionStatusService.
type StatusProvider interface {
	GetStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error)
}

// Orchestrator owns the transaction lifecycle: records appear only
// after a successful broadcast, advance Pending -> terminal through the
// reconciliation loop, and never leave a terminal state.
type Orchestrator struct {
	cfg         *config.Config
	broadcaster Broadcaster
	status      StatusProvider
	store       store.Store

	interval time.Duration
	now      func() time.Time

	running *atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewOrchestrator(cfg *config.Config, broadcaster Broadcaster, status StatusProvider,
	st store.Store) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		broadcaster: broadcaster,
		status:      status,
		store:       st,
		interval:    ReconcileInterval,
		now:         time.Now,
		running:     atomic.NewBool(false),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// AddTransaction broadcasts the signed payload and, only when the node
// accepted it, persists the Pending record. A rejected broadcast leaves
// no trace in the store.
func (o *Orchestrator) AddTransaction(ctx context.Context, params *types.SignerParams,
	priority types.FeePriority, signedBytes []byte) (*types.Transaction, error) {
	input := params.Input
	chain := input.Chain()

	hash, err := o.broadcaster.Broadcast(ctx, chain, params.Owner, signedBytes, input.Kind)
	if err != nil {
		return nil, err
	}

	now := o.now().UnixMilli()
	tx := &types.Transaction{
		Id:         types.TransactionId(chain, hash),
		Hash:       hash,
		AssetId:    input.AssetId,
		FeeAssetId: types.NewAssetId(chain),
		From:       params.Owner,
		To:         input.Destination,
		Type:       input.Kind,
		State:      types.StatePending,
		Value:      input.Value().String(),
		Memo:       input.Memo,
		Contract:   input.Contract,
		Direction:  direction(params.Owner, input.Destination),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if fee := params.Fee(priority); fee != nil {
		tx.Fee = fee.Amount.String()
	}
	if input.Kind == types.TxTypeSwap && input.Swap != nil {
		tx.Metadata = input.Swap.Encode()
	}

	if err := o.store.InsertTransactions([]*types.Transaction{tx}); err != nil {
		return nil, err
	}
	if input.Kind == types.TxTypeSwap && input.Swap != nil {
		if err := o.store.AddSwapMetadata(tx.Id, input.Swap); err != nil {
			log.Error("Failed to persist swap metadata for ", tx.Id, ", err = ", err)
		}
	}

	log.Info("Transaction added, id = ", tx.Id)
	return tx, nil
}

func direction(from, to string) types.TransactionDirection {
	if from == to {
		return types.DirectionSelf
	}
	return types.DirectionOutgoing
}

// Start launches the reconciliation loop.
func (o *Orchestrator) Start() {
	if !o.running.CAS(false, true) {
		return
	}

	go func() {
		defer close(o.doneCh)

		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()

		for {
			select {
			case <-o.stopCh:
				return
			case <-ticker.C:
				o.reconcile(context.Background())
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight tick to finish.
func (o *Orchestrator) Stop() {
	if !o.running.CAS(true, false) {
		return
	}
	close(o.stopCh)
	<-o.doneCh
}

type pollResult struct {
	tx      *types.Transaction
	changes *types.TransactionChanges
}

// reconcile runs one tick: poll every pending transaction, apply the
// diffs, then fail records older than their chain's timeout. All
// persistence happens in one batch.
func (o *Orchestrator) reconcile(ctx context.Context) {
	pending, err := o.store.GetPendingTransactions()
	if err != nil {
		log.Error("Failed to load pending transactions, err = ", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	results := make([]pollResult, len(pending))
	wg := &sync.WaitGroup{}
	for i, tx := range pending {
		wg.Add(1)
		go func(i int, tx *types.Transaction) {
			defer wg.Done()

			pollCtx, cancel := context.WithTimeout(ctx, pollTimeout)
			defer cancel()

			changes, err := o.status.GetStatus(pollCtx, &types.TxStateRequest{
				Chain:  tx.AssetId.Chain,
				Hash:   tx.Hash,
				Sender: tx.From,
				Block:  tx.BlockNumber,
			})
			if err != nil {
				// Leave the record pending; the next tick retries.
				log.Verbose("Status poll failed for ", tx.Id, ", err = ", err)
				return
			}
			results[i] = pollResult{tx: tx, changes: changes}
		}(i, tx)
	}
	wg.Wait()

	upserts := make([]*types.Transaction, 0)
	deletes := make([]string, 0)
	dirty := make(map[*types.Transaction]bool)
	now := o.now().UnixMilli()

	for _, result := range results {
		if result.changes == nil {
			continue
		}
		tx, changes := result.tx, result.changes

		// The chain may reveal the canonical hash only after inclusion;
		// the record moves to the new id and the provisional one goes.
		if changes.NewHash != "" && changes.NewHash != tx.Hash {
			deletes = append(deletes, tx.Id)
			tx.Hash = changes.NewHash
			tx.Id = types.TransactionId(tx.AssetId.Chain, changes.NewHash)
			dirty[tx] = true
		}
		if changes.Fee != nil && changes.Fee.String() != tx.Fee {
			tx.Fee = changes.Fee.String()
			dirty[tx] = true
		}
		if changes.State != types.StatePending {
			tx.State = changes.State
			dirty[tx] = true
		}
	}

	// Timeout applies to anything still pending, including records whose
	// poll failed this tick.
	for _, tx := range pending {
		if tx.State == types.StatePending && o.timedOut(tx, now) {
			tx.State = types.StateFailed
			dirty[tx] = true
		}
	}

	for _, tx := range pending {
		if dirty[tx] {
			tx.UpdatedAt = now
			upserts = append(upserts, tx)
		}
	}

	if len(upserts) == 0 && len(deletes) == 0 {
		return
	}
	if err := o.store.ApplyBatch(upserts, deletes); err != nil {
		log.Error("Failed to persist reconciliation batch, err = ", err)
	}
}

func (o *Orchestrator) timedOut(tx *types.Transaction, nowMillis int64) bool {
	timeout := o.cfg.ChainConfig(tx.AssetId.Chain).TxTimeout
	if timeout <= 0 {
		return false
	}
	return nowMillis-tx.CreatedAt > timeout*1000
}
