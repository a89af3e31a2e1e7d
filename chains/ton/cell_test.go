package ton

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidewallet/core/types"
)

func TestCellBitPacking(t *testing.T) {
	c := newCell()
	c.writeUint(0b101, 3)
	require.Equal(t, 3, c.bitLen)
	require.Equal(t, []byte{0xa0}, c.data)

	c.writeUint(0xff, 8)
	require.Equal(t, 11, c.bitLen)
	require.Equal(t, []byte{0xbf, 0xe0}, c.data)
}

func TestCellCompletionTag(t *testing.T) {
	c := newCell()
	c.writeUint(0b101, 3)
	// Unaligned data gets a single 1 bit appended.
	require.Equal(t, []byte{0xb0}, c.paddedData())

	d1, d2 := c.descriptors()
	require.Equal(t, byte(0), d1)
	require.Equal(t, byte(1), d2)
}

func TestCellCoins(t *testing.T) {
	zero := newCell()
	zero.writeCoins(nil)
	require.Equal(t, 4, zero.bitLen)
	require.Equal(t, []byte{0x00}, zero.data)

	one := newCell()
	one.writeCoins(big.NewInt(1))
	require.Equal(t, 12, one.bitLen)
	require.Equal(t, []byte{0x10, 0x10}, one.data)
}

func TestCellHashChangesWithRefs(t *testing.T) {
	a := newCell()
	a.writeUint(1, 32)

	b := newCell()
	b.writeUint(1, 32)
	require.Equal(t, a.hash(), b.hash())

	child := newCell()
	child.writeUint(2, 32)
	b.ref(child)
	require.NotEqual(t, a.hash(), b.hash())
	require.Equal(t, 1, b.depth())
}

func TestSerializeBocRoundsTopology(t *testing.T) {
	root := newCell()
	root.writeUint(7, 8)
	child := newCell()
	child.writeUint(9, 8)
	root.ref(child)

	boc, err := serializeBoc(root)
	require.NoError(t, err)
	require.Equal(t, []byte{0xb5, 0xee, 0x9c, 0x72}, boc[:4])
	// Two cells, one root.
	require.Equal(t, byte(2), boc[6])
	require.Equal(t, byte(1), boc[7])
}

func TestPreloadReportsSeqnoAndDeployment(t *testing.T) {
	client := &MockClient{
		GetAddressInfoFunc: func(ctx context.Context, address string) (*AddressInfo, error) {
			return &AddressInfo{State: "active", Balance: "1000000000"}, nil
		},
		SeqnoFunc: func(ctx context.Context, address string) (uint32, error) {
			return 14, nil
		},
	}

	preloader := NewPreloader(client)
	result, err := preloader.PreloadNativeTransfer(context.Background(), &types.ConfirmParams{
		Kind:    types.TxTypeTransfer,
		AssetId: types.NewAssetId(types.ChainTon),
		From:    types.Account{Chain: types.ChainTon, Address: "EQWallet"},
		Amount:  big.NewInt(1),
	})
	require.NoError(t, err)

	chainData := result.ChainData.(*ChainData)
	require.Equal(t, uint32(14), chainData.Seqno)
	require.True(t, chainData.Deployed)

	normal := result.Fee(types.FeePriorityNormal)
	fast := result.Fee(types.FeePriorityFast)
	require.True(t, fast.Amount.Cmp(normal.Amount) >= 0)
}
