package types

import (
	"encoding/json"
	"math/big"
)

// TransactionState is the lifecycle state of a stored transaction.
// Pending is the only state automatic transitions start from; the other
// three are terminal.
type TransactionState string

const (
	StatePending   TransactionState = "pending"
	StateConfirmed TransactionState = "confirmed"
	StateFailed    TransactionState = "failed"
	StateReverted  TransactionState = "reverted"
)

func (s TransactionState) IsTerminal() bool {
	return s != StatePending
}

// TransactionDirection of a transfer relative to the wallet.
type TransactionDirection string

const (
	DirectionIncoming TransactionDirection = "incoming"
	DirectionOutgoing TransactionDirection = "outgoing"
	DirectionSelf     TransactionDirection = "self"
)

// TransactionId derives the chain-qualified record id from a hash.
func TransactionId(chain Chain, hash string) string {
	return string(chain) + "_" + hash
}

// Transaction is the durable record of a broadcast transaction. Amounts
// are decimal-string encoded big integers, never floats.
type Transaction struct {
	Id          string
	Hash        string
	AssetId     AssetId
	FeeAssetId  AssetId
	From        string
	To          string
	Type        TxType
	State       TransactionState
	BlockNumber string
	Sequence    string
	Fee         string
	Value       string
	Memo        string
	Contract    string
	// JSON-encoded SwapMetadata when Type == TxTypeSwap.
	Metadata  string
	Direction TransactionDirection
	CreatedAt int64
	UpdatedAt int64
}

// SwapMetadata decodes the embedded swap payload. The bool result is
// false when the record is not a swap or the payload does not parse;
// callers treat such records as plain transfers.
func (t *Transaction) SwapMetadata() (*SwapMetadata, bool) {
	if t.Type != TxTypeSwap || t.Metadata == "" {
		return nil, false
	}
	var m SwapMetadata
	if err := json.Unmarshal([]byte(t.Metadata), &m); err != nil {
		return nil, false
	}
	return &m, true
}

// TxStateRequest asks a status client about one pending transaction.
type TxStateRequest struct {
	Chain  Chain
	Hash   string
	Sender string
	Block  string
}

// TransactionChanges is a status client's verdict for one poll. NewHash
// is set when the chain reveals a canonical hash differing from the
// locally computed one; Fee is set when the chain settles the final fee
// post-inclusion (EIP-1559 style).
type TransactionChanges struct {
	State   TransactionState
	NewHash string
	Fee     *big.Int
}

// NodeStatus is the result of a chain-head probe.
type NodeStatus struct {
	Chain         Chain
	ChainId       string
	LatestBlock   *big.Int
	LatencyMillis int64
	InSync        bool
}
