package types

import (
	"errors"
	"fmt"
)

// Routing/programmer errors. These indicate a wiring defect between the
// proxy dispatchers and the chain adapters and are never shown to users
// as recoverable conditions.
var (
	ErrNoClient          = errors.New("no client supports the requested chain")
	ErrDuplicateClient   = errors.New("more than one client supports the requested chain")
	ErrChainDataMismatch = errors.New("chain sign data does not match the client's chain")
)

// User-actionable protocol/validation errors.
var (
	ErrInsufficientFeeBalance = errors.New("insufficient balance to cover the network fee")
	ErrDestinationNotActive   = errors.New("destination account is not activated")
	ErrSequenceMismatch       = errors.New("account sequence does not match the chain")
)

// ServiceUnavailable wraps a transient RPC failure. The attempt failed;
// the caller may retry the whole operation.
type ServiceUnavailable struct {
	Chain Chain
	Err   error
}

func (e *ServiceUnavailable) Error() string {
	return fmt.Sprintf("%s node unavailable: %v", e.Chain, e.Err)
}

func (e *ServiceUnavailable) Unwrap() error {
	return e.Err
}

// BroadcastError carries the node's rejection message for a submitted
// transaction in a chain-agnostic form.
type BroadcastError struct {
	Chain   Chain
	Message string
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%s broadcast rejected: %s", e.Chain, e.Message)
}

func NewBroadcastError(chain Chain, format string, args ...interface{}) *BroadcastError {
	return &BroadcastError{Chain: chain, Message: fmt.Sprintf(format, args...)}
}
