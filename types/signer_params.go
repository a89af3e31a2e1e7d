package types

// ChainSignData is the per-chain bundle produced by a preloader and
// consumed by the matching sign client: UTXO sets for Bitcoin-like
// chains, sequence numbers for account chains, recent block hashes, and
// so on. Each chain package defines its own implementation; a sign
// client receiving a foreign variant must fail with
// ErrChainDataMismatch since that indicates broken proxy routing.
type ChainSignData interface {
	SignDataChain() Chain
}

// SignerParams carries everything a sign client needs for one signing
// attempt. Produced once per attempt by a preloader, never mutated.
type SignerParams struct {
	Input     *ConfirmParams
	Owner     string
	ChainData ChainSignData
	Fees      []*Fee
}

// Fee returns the quote for the given priority (Normal by default).
func (p *SignerParams) Fee(priority FeePriority) *Fee {
	return SelectFee(p.Fees, priority)
}
