package algorand

import (
	"fmt"
	"sort"
)

// Canonical msgpack encoding as algod expects it: map keys sorted
// lexicographically, zero-value fields omitted by the caller, integers
// in their shortest form. Only the types a payment transaction needs
// are supported.

type mapField struct {
	key   string
	value interface{}
}

func encodeMap(fields []mapField) ([]byte, error) {
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })

	if len(fields) >= 16 {
		return nil, fmt.Errorf("map too large: %d fields", len(fields))
	}
	buf := []byte{0x80 | byte(len(fields))}

	for _, field := range fields {
		buf = appendString(buf, field.key)
		var err error
		buf, err = appendValue(buf, field.value)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendValue(buf []byte, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case uint64:
		return appendUint(buf, v), nil
	case string:
		return appendString(buf, v), nil
	case []byte:
		return appendBytes(buf, v), nil
	case []mapField:
		nested, err := encodeMap(v)
		if err != nil {
			return nil, err
		}
		return append(buf, nested...), nil
	default:
		return nil, fmt.Errorf("unsupported msgpack value %T", value)
	}
}

func appendUint(buf []byte, v uint64) []byte {
	switch {
	case v < 0x80:
		return append(buf, byte(v))
	case v <= 0xff:
		return append(buf, 0xcc, byte(v))
	case v <= 0xffff:
		return append(buf, 0xcd, byte(v>>8), byte(v))
	case v <= 0xffffffff:
		return append(buf, 0xce, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	default:
		buf = append(buf, 0xcf)
		for shift := 56; shift >= 0; shift -= 8 {
			buf = append(buf, byte(v>>shift))
		}
		return buf
	}
}

func appendString(buf []byte, s string) []byte {
	switch {
	case len(s) < 32:
		buf = append(buf, 0xa0|byte(len(s)))
	case len(s) <= 0xff:
		buf = append(buf, 0xd9, byte(len(s)))
	default:
		buf = append(buf, 0xda, byte(len(s)>>8), byte(len(s)))
	}
	return append(buf, s...)
}

func appendBytes(buf []byte, bz []byte) []byte {
	switch {
	case len(bz) <= 0xff:
		buf = append(buf, 0xc4, byte(len(bz)))
	default:
		buf = append(buf, 0xc5, byte(len(bz)>>8), byte(len(bz)))
	}
	return append(buf, bz...)
}
