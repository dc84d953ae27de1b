package serialization

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// MarshalFields encodes a list of byte fields as a compressed field count
// followed by each field's compressed length and bytes. Empty fields cost
// one byte.
func MarshalFields(fields [][]byte) []byte {
	size := maxCompressedSize
	for _, f := range fields {
		size += maxCompressedSize + len(f)
	}

	buf := make([]byte, 0, size)
	buf = appendCompressedUnsigned(buf, uint64(len(fields)))
	for _, f := range fields {
		buf = appendCompressedUnsigned(buf, uint64(len(f)))
		buf = append(buf, f...)
	}

	return buf
}

// UnmarshalFields reverses MarshalFields. Every returned field is a fresh,
// non-nil slice. The whole of data must be consumed.
func UnmarshalFields(data []byte) ([][]byte, error) {
	r := bytes.NewReader(data)

	count, err := readCompressedUnsigned(r)
	if err != nil {
		return nil, eofAsShort(err, "field count")
	}

	// every field takes at least its length byte
	if count > uint64(r.Len()) {
		return nil, errors.Wrapf(ErrShortRecord, "%d fields in %d bytes", count, r.Len())
	}

	fields := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		n, err := readCompressedUnsigned(r)
		if err != nil {
			return nil, eofAsShort(err, "field length")
		}

		if n > uint64(r.Len()) {
			return nil, errors.Wrapf(ErrShortRecord, "field %d wants %d bytes, %d left", i, n, r.Len())
		}

		f := make([]byte, n)
		if _, err := io.ReadFull(r, f); err != nil {
			return nil, eofAsShort(err, "field data")
		}

		fields = append(fields, f)
	}

	if r.Len() != 0 {
		return nil, errors.Wrapf(ErrTrailingData, "%d bytes", r.Len())
	}

	return fields, nil
}
