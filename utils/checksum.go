package utils

// Crc16 computes the CRC16/XMODEM checksum used by Stellar strkeys and
// Ton user-friendly addresses.
func Crc16(bz []byte) uint16 {
	var crc uint16
	for _, b := range bz {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
