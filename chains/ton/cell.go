package ton

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
)

// cell is an ordinary TVM cell: up to 1023 data bits and four
// references. Only what the wallet message builder needs is implemented.
type cell struct {
	data   []byte
	bitLen int
	refs   []*cell
}

func newCell() *cell {
	return &cell{}
}

func (c *cell) writeBit(bit bool) {
	if c.bitLen%8 == 0 {
		c.data = append(c.data, 0)
	}
	if bit {
		c.data[c.bitLen/8] |= 0x80 >> (c.bitLen % 8)
	}
	c.bitLen++
}

func (c *cell) writeUint(v uint64, bits int) {
	for i := bits - 1; i >= 0; i-- {
		c.writeBit(v>>i&1 == 1)
	}
}

func (c *cell) writeBytes(bz []byte) {
	for _, b := range bz {
		c.writeUint(uint64(b), 8)
	}
}

// writeCoins writes a VarUInteger 16: a 4-bit byte length followed by
// the big-endian value.
func (c *cell) writeCoins(v *big.Int) {
	if v == nil || v.Sign() == 0 {
		c.writeUint(0, 4)
		return
	}
	bz := v.Bytes()
	c.writeUint(uint64(len(bz)), 4)
	c.writeBytes(bz)
}

// writeAddress writes an addr_std.
func (c *cell) writeAddress(workchain int8, hash []byte) {
	c.writeUint(0b100, 3) // addr_std, no anycast
	c.writeUint(uint64(uint8(workchain)), 8)
	c.writeBytes(hash)
}

func (c *cell) writeEmptyAddress() {
	c.writeUint(0b00, 2) // addr_none
}

func (c *cell) ref(child *cell) {
	c.refs = append(c.refs, child)
}

func (c *cell) depth() int {
	depth := 0
	for _, ref := range c.refs {
		if d := ref.depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// paddedData returns the data bytes with the standard completion tag
// when the bit length is not byte aligned.
func (c *cell) paddedData() []byte {
	bz := append([]byte{}, c.data...)
	if c.bitLen%8 != 0 {
		bz[len(bz)-1] |= 0x80 >> (c.bitLen % 8)
	}
	return bz
}

func (c *cell) descriptors() (byte, byte) {
	d1 := byte(len(c.refs))
	d2 := byte(c.bitLen/8 + (c.bitLen+7)/8)
	return d1, d2
}

func (c *cell) hash() []byte {
	d1, d2 := c.descriptors()
	repr := []byte{d1, d2}
	repr = append(repr, c.paddedData()...)
	for _, ref := range c.refs {
		var depth [2]byte
		binary.BigEndian.PutUint16(depth[:], uint16(ref.depth()))
		repr = append(repr, depth[:]...)
	}
	for _, ref := range c.refs {
		repr = append(repr, ref.hash()...)
	}

	digest := sha256.Sum256(repr)
	return digest[:]
}

// serializeBoc writes a single-root bag of cells.
func serializeBoc(root *cell) ([]byte, error) {
	cells := topoSort(root)
	if len(cells) > 255 {
		return nil, fmt.Errorf("too many cells: %d", len(cells))
	}

	index := make(map[*cell]int, len(cells))
	for i, c := range cells {
		index[c] = i
	}

	var body []byte
	for _, c := range cells {
		d1, d2 := c.descriptors()
		body = append(body, d1, d2)
		body = append(body, c.paddedData()...)
		for _, ref := range c.refs {
			body = append(body, byte(index[ref]))
		}
	}

	var boc []byte
	boc = append(boc, 0xb5, 0xee, 0x9c, 0x72) // serialized_boc magic
	boc = append(boc, 1)                      // flags + ref size (1 byte)
	boc = append(boc, 1)                      // offset size
	boc = append(boc, byte(len(cells)))
	boc = append(boc, 1) // one root
	boc = append(boc, 0) // no absent cells
	boc = append(boc, byte(len(body)))
	boc = append(boc, 0) // root index
	boc = append(boc, body...)
	return boc, nil
}

// topoSort orders cells parent-first, deduplicating shared references.
func topoSort(root *cell) []*cell {
	var ordered []*cell
	seen := make(map[*cell]bool)

	var visit func(*cell)
	visit = func(c *cell) {
		if seen[c] {
			return
		}
		seen[c] = true
		ordered = append(ordered, c)
		for _, ref := range c.refs {
			visit(ref)
		}
	}
	visit(root)
	return ordered
}
