package bitcoin

import (
	"math/big"
	"sort"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

// Confirmation targets per priority tier, in blocks.
var priorityBlocks = map[types.FeePriority]int{
	types.FeePrioritySlow:   12,
	types.FeePriorityNormal: 6,
	types.FeePriorityFast:   2,
}

const (
	// P2PKH wire sizes: 10 bytes of overhead, 148 per input, 34 per
	// output.
	txOverheadBytes = 10
	inputBytes      = 148
	outputBytes     = 34
)

// EstimateVirtualSize returns the byte size of a P2PKH transaction with
// the given shape. A max-amount transfer sweeps to a single output;
// anything else pays the destination and a change output.
func EstimateVirtualSize(inputs, outputs int) int64 {
	return int64(txOverheadBytes + inputs*inputBytes + outputs*outputBytes)
}

// PerByteRate converts a per-kilobyte fee rate to a per-byte rate,
// rounding up, and floors it at the chain's minimum so the quote never
// undercuts network minimums regardless of the oracle response.
func PerByteRate(perKb *big.Int, minimumByteFee int64) *big.Int {
	perByte := new(big.Int).Add(perKb, big.NewInt(999))
	perByte.Div(perByte, big.NewInt(1000))

	floor := big.NewInt(minimumByteFee)
	if perByte.Cmp(floor) < 0 {
		return floor
	}
	return perByte
}

// SelectUtxos picks the inputs for a transfer of amount at the given
// per-byte rate. Larger outputs are preferred to keep the input count,
// and with it the fee, small. A max-amount transfer consumes every
// input.
func SelectUtxos(utxos []Utxo, amount, byteFee *big.Int, maxAmount bool) ([]Utxo, error) {
	if maxAmount {
		return utxos, nil
	}

	sorted := make([]Utxo, len(utxos))
	copy(sorted, utxos)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Amount().Cmp(sorted[j].Amount()) > 0
	})

	selected := make([]Utxo, 0, len(sorted))
	total := new(big.Int)
	for _, utxo := range sorted {
		selected = append(selected, utxo)
		total.Add(total, utxo.Amount())

		size := EstimateVirtualSize(len(selected), 2)
		fee := new(big.Int).Mul(byteFee, big.NewInt(size))
		required := new(big.Int).Add(amount, fee)
		if total.Cmp(required) >= 0 {
			return selected, nil
		}
	}

	return nil, types.ErrInsufficientFeeBalance
}

// CalculateFees quotes every priority tier for the given transfer. The
// rates map carries per-byte oracle rates; each tier is floored at the
// chain's configured minimum byte fee.
func CalculateFees(cfg config.Chain, chain types.Chain, rates map[types.FeePriority]*big.Int,
	utxos []Utxo, amount *big.Int, maxAmount bool) ([]*types.Fee, error) {
	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		rate, ok := rates[priority]
		if !ok {
			rate = big.NewInt(0)
		}
		byteFee := rate
		if floor := big.NewInt(cfg.MinimumByteFee); byteFee.Cmp(floor) < 0 {
			byteFee = floor
		}

		selected, err := SelectUtxos(utxos, amount, byteFee, maxAmount)
		if err != nil {
			return nil, err
		}

		outputs := 2
		if maxAmount {
			outputs = 1
		}
		size := EstimateVirtualSize(len(selected), outputs)

		fees = append(fees, &types.Fee{
			Priority:    priority,
			AssetId:     types.NewAssetId(chain),
			Amount:      new(big.Int).Mul(byteFee, big.NewInt(size)),
			MaxGasPrice: byteFee,
			GasLimit:    big.NewInt(size),
		})
	}

	return fees, nil
}
