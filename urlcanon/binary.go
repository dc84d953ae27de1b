package urlcanon

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/machawk1/urlcanon/serialization"
)

// MarshalBinary encodes every field, junk included, as one checksummed
// record, so UnmarshalBinary restores the URL byte for byte.
func (u *ParsedURL) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(u.Len() + 64)

	if err := serialization.WriteRecord(&buf, u.Fields()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary replaces every field of u with the ones in data.
func (u *ParsedURL) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	fields, err := serialization.ReadRecord(r, serialization.DefaultRecordConfig())
	if err != nil {
		return err
	}

	if len(fields) != int(fieldCount) {
		return errors.Wrapf(serialization.ErrFieldCount, "got %d fields, want %d", len(fields), fieldCount)
	}

	if r.Len() != 0 {
		return errors.Wrapf(serialization.ErrTrailingData, "%d bytes", r.Len())
	}

	for i, f := range fields {
		u.Set(Field(i), f)
	}

	return nil
}
