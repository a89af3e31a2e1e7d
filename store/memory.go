package store

import (
	"sort"
	"sync"

	"github.com/tidewallet/core/types"
)

// MemoryStore is a Store kept entirely in memory. It backs tests and
// the dev mode where no MySQL instance is around.
type MemoryStore struct {
	lock  sync.RWMutex
	txs   map[string]*types.Transaction
	swaps map[string]*types.SwapMetadata

	feed     *feed
	changeCh <-chan []*types.Transaction
}

func NewMemoryStore() *MemoryStore {
	f := newFeed()
	return &MemoryStore{
		txs:      make(map[string]*types.Transaction),
		swaps:    make(map[string]*types.SwapMetadata),
		feed:     f,
		changeCh: f.subscribe(nil),
	}
}

func (s *MemoryStore) Init() error {
	return nil
}

func clone(tx *types.Transaction) *types.Transaction {
	copied := *tx
	return &copied
}

func (s *MemoryStore) InsertTransactions(txs []*types.Transaction) error {
	s.lock.Lock()
	for _, tx := range txs {
		if _, ok := s.txs[tx.Id]; !ok {
			s.txs[tx.Id] = clone(tx)
		}
	}
	s.lock.Unlock()

	s.notify(txs)
	return nil
}

func (s *MemoryStore) UpsertTransaction(tx *types.Transaction) error {
	s.lock.Lock()
	s.txs[tx.Id] = clone(tx)
	s.lock.Unlock()

	s.notify([]*types.Transaction{tx})
	return nil
}

func (s *MemoryStore) DeleteTransaction(id string) error {
	s.lock.Lock()
	delete(s.txs, id)
	s.lock.Unlock()
	return nil
}

func (s *MemoryStore) ApplyBatch(upserts []*types.Transaction, deletes []string) error {
	s.lock.Lock()
	for _, id := range deletes {
		delete(s.txs, id)
	}
	for _, tx := range upserts {
		s.txs[tx.Id] = clone(tx)
	}
	s.lock.Unlock()

	s.notify(upserts)
	return nil
}

func (s *MemoryStore) GetTransaction(id string) (*types.Transaction, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return nil, nil
	}
	return clone(tx), nil
}

func (s *MemoryStore) GetPendingTransactions() ([]*types.Transaction, error) {
	return s.GetTransactionsByState(types.StatePending)
}

func (s *MemoryStore) GetTransactionsByState(state types.TransactionState) ([]*types.Transaction, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	txs := make([]*types.Transaction, 0)
	for _, tx := range s.txs {
		if tx.State == state {
			txs = append(txs, clone(tx))
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt < txs[j].CreatedAt })
	return txs, nil
}

func (s *MemoryStore) AddSwapMetadata(txId string, m *types.SwapMetadata) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	copied := *m
	s.swaps[txId] = &copied
	return nil
}

func (s *MemoryStore) GetSwapMetadata(txId string) (*types.SwapMetadata, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	m, ok := s.swaps[txId]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *MemoryStore) Changes() <-chan []*types.Transaction {
	return s.changeCh
}

func (s *MemoryStore) ObserveByState(state types.TransactionState) <-chan []*types.Transaction {
	return s.feed.subscribe(matchState(state))
}

func (s *MemoryStore) ObserveTransaction(id string) <-chan []*types.Transaction {
	return s.feed.subscribe(matchId(id))
}

func (s *MemoryStore) notify(txs []*types.Transaction) {
	s.feed.publish(txs)
}
