package evm

import (
	"context"
	"math/big"

	"github.com/tidewallet/core/types"
)

// Transfers of the native asset to an externally owned account always
// cost exactly this much gas.
const nativeTransferGasLimit = 21_000

// gasPriceTiers derives the three priority tiers from a single oracle
// read: Slow is the node's base estimate, Normal adds the suggested
// priority tip ("prioritized"), Fast doubles the prioritized estimate.
func gasPriceTiers(base, tip *big.Int) map[types.FeePriority]*big.Int {
	prioritized := new(big.Int).Add(base, tip)
	return map[types.FeePriority]*big.Int{
		types.FeePrioritySlow:   new(big.Int).Set(base),
		types.FeePriorityNormal: prioritized,
		types.FeePriorityFast:   new(big.Int).Mul(prioritized, big.NewInt(2)),
	}
}

// CalculateFees builds the quote list for a known gas limit. Pure; safe
// to call concurrently for multiple chains.
func CalculateFees(chain types.Chain, base, tip *big.Int, gasLimit uint64) []*types.Fee {
	tiers := gasPriceTiers(base, tip)
	limit := new(big.Int).SetUint64(gasLimit)

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		price := tiers[priority]
		fee := types.NewGasFee(chain, priority, price, limit)
		// The tip portion is whatever the tier price adds on top of the
		// base estimate.
		fee.MinerFee = new(big.Int).Sub(price, base)
		fees = append(fees, fee)
	}
	return fees
}

// fetchGasOracle reads the price oracle once per preload. Chains without
// EIP-1559 support fall back to the legacy gas price with a zero tip.
func (p *Preloader) fetchGasOracle(ctx context.Context) (base, tip *big.Int, err error) {
	if p.cfg.UseGasEip1559 {
		base, err = p.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, nil, err
		}
		tip, err = p.client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, nil, err
		}
		return base, tip, nil
	}

	base, err = p.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, nil, err
	}
	return base, big.NewInt(0), nil
}
