package types

import "math/big"

// FeePriority selects one of the quoted fee tiers. The zero value is not
// valid; callers default to FeePriorityNormal.
type FeePriority string

const (
	FeePrioritySlow   FeePriority = "slow"
	FeePriorityNormal FeePriority = "normal"
	FeePriorityFast   FeePriority = "fast"
)

// FeePriorities is the canonical tier order, cheapest first.
var FeePriorities = []FeePriority{FeePrioritySlow, FeePriorityNormal, FeePriorityFast}

// Fee is a quote for one priority tier, denominated in the fee asset's
// atomic units. MaxGasPrice and GasLimit are populated for chains that
// price transactions as unitPrice x units (EVM gas, UTXO bytes, compute
// units); they are nil elsewhere.
type Fee struct {
	Priority FeePriority
	AssetId  AssetId
	Amount   *big.Int

	MaxGasPrice *big.Int
	GasLimit    *big.Int
	// MinerFee is the priority-fee (tip) portion of MaxGasPrice on
	// EIP-1559 chains.
	MinerFee *big.Int
}

func NewFee(chain Chain, priority FeePriority, amount *big.Int) *Fee {
	return &Fee{
		Priority: priority,
		AssetId:  NewAssetId(chain),
		Amount:   amount,
	}
}

func NewGasFee(chain Chain, priority FeePriority, gasPrice, gasLimit *big.Int) *Fee {
	return &Fee{
		Priority:    priority,
		AssetId:     NewAssetId(chain),
		Amount:      new(big.Int).Mul(gasPrice, gasLimit),
		MaxGasPrice: gasPrice,
		GasLimit:    gasLimit,
	}
}

// SelectFee picks the quote for the given priority, falling back to
// Normal and then to the first quote when the tier is absent.
func SelectFee(fees []*Fee, priority FeePriority) *Fee {
	if priority == "" {
		priority = FeePriorityNormal
	}
	var normal *Fee
	for _, fee := range fees {
		if fee.Priority == priority {
			return fee
		}
		if fee.Priority == FeePriorityNormal {
			normal = fee
		}
	}
	if normal != nil {
		return normal
	}
	if len(fees) > 0 {
		return fees[0]
	}
	return nil
}
