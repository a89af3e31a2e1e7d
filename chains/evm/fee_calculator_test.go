package evm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func TestCalculateFeesTiers(t *testing.T) {
	base := big.NewInt(15_000_000_000)
	tip := big.NewInt(1_000_000_000)

	fees := CalculateFees(types.ChainEthereum, base, tip, nativeTransferGasLimit)
	require.Len(t, fees, 3)

	seen := make(map[types.FeePriority]int)
	for _, fee := range fees {
		seen[fee.Priority]++
	}
	for _, priority := range types.FeePriorities {
		require.Equal(t, 1, seen[priority])
	}

	slow := types.SelectFee(fees, types.FeePrioritySlow)
	normal := types.SelectFee(fees, types.FeePriorityNormal)
	fast := types.SelectFee(fees, types.FeePriorityFast)

	require.Equal(t, big.NewInt(15_000_000_000), slow.MaxGasPrice)
	require.Equal(t, big.NewInt(16_000_000_000), normal.MaxGasPrice)
	require.Equal(t, big.NewInt(32_000_000_000), fast.MaxGasPrice)

	// fee = gasPrice x gasLimit
	require.Equal(t, new(big.Int).Mul(normal.MaxGasPrice, big.NewInt(21_000)), normal.Amount)

	require.True(t, fast.Amount.Cmp(normal.Amount) >= 0)
	require.True(t, normal.Amount.Cmp(slow.Amount) >= 0)
}

func TestSelectFeeDefaultsToNormal(t *testing.T) {
	fees := CalculateFees(types.ChainEthereum, big.NewInt(10), big.NewInt(1), 21_000)

	fee := types.SelectFee(fees, "")
	require.Equal(t, types.FeePriorityNormal, fee.Priority)
}

func TestEncodeTokenTransfer(t *testing.T) {
	data := EncodeTokenTransfer("0x1cbd3b2770909d4e10f157cabc84c7264073c9ec", big.NewInt(1000))

	require.Len(t, data, 4+32+32)
	require.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, data[:4])
}
