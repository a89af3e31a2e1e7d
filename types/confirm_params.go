package types

import (
	"encoding/json"
	"math/big"
)

// TxType tags a transaction intent and the resulting stored record.
type TxType string

const (
	TxTypeTransfer          TxType = "transfer"
	TxTypeTokenTransfer     TxType = "tokenTransfer"
	TxTypeSwap              TxType = "swap"
	TxTypeTokenApproval     TxType = "tokenApproval"
	TxTypeStakeDelegate     TxType = "stakeDelegate"
	TxTypeStakeUndelegate   TxType = "stakeUndelegate"
	TxTypeStakeRedelegate   TxType = "stakeRedelegate"
	TxTypeStakeWithdraw     TxType = "stakeWithdraw"
	TxTypeStakeClaimRewards TxType = "stakeRewards"
	TxTypeNftTransfer       TxType = "nftTransfer"
	TxTypeActivate          TxType = "activate"
)

func (t TxType) IsStake() bool {
	switch t {
	case TxTypeStakeDelegate, TxTypeStakeUndelegate, TxTypeStakeRedelegate,
		TxTypeStakeWithdraw, TxTypeStakeClaimRewards:
		return true
	}
	return false
}

// SwapMetadata is the side payload persisted with swap transactions. It
// is stored JSON-encoded in the transaction's metadata column.
type SwapMetadata struct {
	FromAsset AssetId `json:"from_asset"`
	ToAsset   AssetId `json:"to_asset"`
	FromValue string  `json:"from_value"`
	ToValue   string  `json:"to_value"`
	Provider  string  `json:"provider,omitempty"`
}

func (m *SwapMetadata) Encode() string {
	bz, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(bz)
}

// ConfirmParams is a transaction intent produced by the caller and
// consumed by the preloader and sign client. It is immutable once
// constructed.
//
// Kind selects the intent variant; variant-specific fields are nil/empty
// for other kinds.
type ConfirmParams struct {
	Kind    TxType
	AssetId AssetId
	From    Account

	// Destination address. Empty for stake claim/withdraw intents.
	Destination string

	// Amount in the asset's atomic units.
	Amount *big.Int

	Memo      string
	MaxAmount bool

	// Swap intents.
	Swap *SwapMetadata
	// Raw contract call data for swap/approval intents, hex encoded.
	CallData string
	// Token approval intents.
	Contract string
	// Stake intents.
	Validator string
	// Redelegate source validator.
	SrcValidator string
}

func (p *ConfirmParams) Chain() Chain {
	return p.From.Chain
}

func (p *ConfirmParams) Value() *big.Int {
	if p.Amount == nil {
		return big.NewInt(0)
	}
	return p.Amount
}

// IsTokenIntent reports whether the intent spends a token rather than
// the native asset.
func (p *ConfirmParams) IsTokenIntent() bool {
	return !p.AssetId.IsNative()
}
