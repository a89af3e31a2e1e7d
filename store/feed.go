package store

import (
	"sync"

	"github.com/tidewallet/core/types"
)

const feedBuffer = 16

// feed fans committed writes out to observers. Delivery is best-effort:
// a slow observer misses events instead of blocking a write, and
// observers re-query the store when they need the full picture.
type feed struct {
	lock sync.Mutex
	subs []*subscription
}

type subscription struct {
	match func(*types.Transaction) bool
	ch    chan []*types.Transaction
}

func newFeed() *feed {
	return &feed{}
}

// subscribe registers an observer. A nil match receives every event.
func (f *feed) subscribe(match func(*types.Transaction) bool) <-chan []*types.Transaction {
	sub := &subscription{
		match: match,
		ch:    make(chan []*types.Transaction, feedBuffer),
	}
	f.lock.Lock()
	f.subs = append(f.subs, sub)
	f.lock.Unlock()
	return sub.ch
}

func (f *feed) publish(txs []*types.Transaction) {
	if len(txs) == 0 {
		return
	}

	f.lock.Lock()
	subs := make([]*subscription, len(f.subs))
	copy(subs, f.subs)
	f.lock.Unlock()

	for _, sub := range subs {
		matched := txs
		if sub.match != nil {
			matched = nil
			for _, tx := range txs {
				if sub.match(tx) {
					matched = append(matched, tx)
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		select {
		case sub.ch <- matched:
		default:
		}
	}
}

func matchState(state types.TransactionState) func(*types.Transaction) bool {
	return func(tx *types.Transaction) bool {
		return tx.State == state
	}
}

func matchId(id string) func(*types.Transaction) bool {
	return func(tx *types.Transaction) bool {
		return tx.Id == id
	}
}
