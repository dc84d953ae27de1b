package serialization

import (
	"io"
)

const (
	valueCompressMask7Bit     = 0x7F /*0b 0111 1111 */
	valueCompressMaskMoredata = 0x80 /*0b 1000 0000 */

	// 64 bits in 7 bit groups
	maxCompressedSize = (8*8 + 6) / 7
)

// appendCompressedUnsigned writes value most significant group first, every
// byte but the last carrying the more-data bit. Zero is a single 0x00.
func appendCompressedUnsigned(dst []byte, value uint64) []byte {
	var buffer [maxCompressedSize]byte
	index := len(buffer) - 1
	isFirst := true

	for {
		b := byte(valueCompressMask7Bit & value) // grab
		if !isFirst {
			b |= valueCompressMaskMoredata
		}

		buffer[index] = b
		isFirst = false

		value >>= 7
		if value == 0 {
			break
		}

		index--
	}

	return append(dst, buffer[index:]...)
}

func readCompressedUnsigned(r io.ByteReader) (uint64, error) {
	var value uint64

	for readSize := 1; readSize <= maxCompressedSize; readSize++ {
		byteValue, err := r.ReadByte()
		if err != nil {
			return 0, err
		}

		value <<= 7
		value |= uint64(byteValue & valueCompressMask7Bit)

		if byteValue&valueCompressMaskMoredata == 0 {
			return value, nil
		}
	}

	return 0, ErrCompressedOverflow
}
