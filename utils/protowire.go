package utils

// Minimal protobuf wire-format writer. The Cosmos and Tron adapters
// submit a handful of fixed message shapes; encoding them directly
// avoids carrying generated bindings for two dozen upstream proto
// files. Only varint and length-delimited fields are used.

const (
	wireVarint = 0
	wireBytes  = 2
)

func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// AppendProtoVarint writes a varint field. Zero values are omitted,
// matching proto3 canonical encoding.
func AppendProtoVarint(buf []byte, field int, v uint64) []byte {
	if v == 0 {
		return buf
	}
	buf = AppendUvarint(buf, uint64(field)<<3|wireVarint)
	return AppendUvarint(buf, v)
}

// AppendProtoBytes writes a length-delimited field (bytes, string, or an
// embedded message). Empty values are omitted.
func AppendProtoBytes(buf []byte, field int, bz []byte) []byte {
	if len(bz) == 0 {
		return buf
	}
	buf = AppendUvarint(buf, uint64(field)<<3|wireBytes)
	buf = AppendUvarint(buf, uint64(len(bz)))
	return append(buf, bz...)
}

func AppendProtoString(buf []byte, field int, s string) []byte {
	return AppendProtoBytes(buf, field, []byte(s))
}
