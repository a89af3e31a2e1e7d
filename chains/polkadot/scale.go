package polkadot

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// SCALE compact integer encoding.
func appendCompact(buf []byte, v *big.Int) []byte {
	switch {
	case v.Cmp(big.NewInt(1<<6)) < 0:
		return append(buf, byte(v.Uint64()<<2))
	case v.Cmp(big.NewInt(1<<14)) < 0:
		u := v.Uint64()<<2 | 0b01
		return append(buf, byte(u), byte(u>>8))
	case v.Cmp(big.NewInt(1<<30)) < 0:
		u := v.Uint64()<<2 | 0b10
		return append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
	default:
		bz := v.Bytes()
		buf = append(buf, byte(len(bz)-4)<<2|0b11)
		// Big-endian to little-endian.
		for i := len(bz) - 1; i >= 0; i-- {
			buf = append(buf, bz[i])
		}
		return buf
	}
}

func appendCompactUint(buf []byte, v uint64) []byte {
	return appendCompact(buf, new(big.Int).SetUint64(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// mortalEra encodes a two-byte mortal era for the given period (a power
// of two) anchored at the checkpoint block number.
func mortalEra(blockNumber, period uint64) []byte {
	phase := blockNumber % period

	quantizeFactor := period >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}

	trailing := uint64(0)
	for p := period; p > 1; p >>= 1 {
		trailing++
	}
	if trailing < 1 {
		trailing = 1
	}
	if trailing > 15 {
		trailing = 15
	}

	encoded := uint16(trailing) | uint16(phase/quantizeFactor)<<4
	return []byte{byte(encoded), byte(encoded >> 8)}
}

func decodeHex32(s string) ([]byte, error) {
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(bz) != 32 {
		return nil, fmt.Errorf("malformed hash %q", s)
	}
	return bz, nil
}
