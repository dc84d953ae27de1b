package serialization

import (
	"io"

	"github.com/pkg/errors"
)

var (
	ErrShortRecord        = errors.New("record truncated")
	ErrTrailingData       = errors.New("trailing data after record")
	ErrCompressedOverflow = errors.New("compressed integer longer than 64 bits")
	ErrHeaderChecksum     = errors.New("record header crc8 check fail")
	ErrBodyChecksum       = errors.New("record body crc32 check fail")
	ErrFieldCount         = errors.New("record field count mismatch")
	ErrRecordTooLarge     = errors.New("record too large")
)

// eofAsShort maps the EOFs of a truncated buffer onto ErrShortRecord.
func eofAsShort(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrShortRecord, what)
	}
	return errors.Wrap(err, what)
}
