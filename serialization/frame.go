package serialization

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/sigurn/crc8"
)

// MaxRecordBodyLength bounds the body a reader will allocate for one record.
const MaxRecordBodyLength = 64 << 20

type recordHeader struct {
	RecordLength uint32
	FieldCount   uint16
	HeaderCRC    uint8
	Reserved     uint8
	BodyCRC      uint32
}

var sizeOfRecordHeader = binary.Size(recordHeader{})

var crc8Table = crc8.MakeTable(crc8.CRC8)

// headerChecksum is the crc8 of the header with both checksum slots zeroed.
func (h recordHeader) headerChecksum() uint8 {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, &recordHeader{
		RecordLength: h.RecordLength,
		FieldCount:   h.FieldCount,
		Reserved:     h.Reserved,
	})

	return crc8.Checksum(b.Bytes(), crc8Table)
}

type RecordConfig struct {
	CheckHeaderCRC bool
	CheckBodyCRC   bool
}

func DefaultRecordConfig() RecordConfig {
	return RecordConfig{
		CheckHeaderCRC: true,
		CheckBodyCRC:   true,
	}
}

// WriteRecord writes fields as one checksummed record: a little endian
// header followed by the MarshalFields body.
func WriteRecord(w io.Writer, fields [][]byte) error {
	if len(fields) > math.MaxUint16 {
		return errors.Wrapf(ErrFieldCount, "%d fields", len(fields))
	}

	body := MarshalFields(fields)
	if len(body) > MaxRecordBodyLength {
		return errors.Wrapf(ErrRecordTooLarge, "body of %d bytes", len(body))
	}

	header := &recordHeader{
		RecordLength: uint32(sizeOfRecordHeader + len(body)),
		FieldCount:   uint16(len(fields)),
		BodyCRC:      crc32.Checksum(body, crc32.IEEETable),
	}
	header.HeaderCRC = header.headerChecksum()

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write record header")
	}

	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "write record body")
	}

	return nil
}

// ReadRecord reads one record written by WriteRecord.
func ReadRecord(r io.Reader, config RecordConfig) ([][]byte, error) {
	header := recordHeader{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, eofAsShort(err, "record header")
	}

	if config.CheckHeaderCRC && header.HeaderCRC != header.headerChecksum() {
		return nil, ErrHeaderChecksum
	}

	if header.RecordLength < uint32(sizeOfRecordHeader) {
		return nil, errors.Wrapf(ErrShortRecord, "record length %d", header.RecordLength)
	}

	bodyLength := header.RecordLength - uint32(sizeOfRecordHeader)
	if bodyLength > MaxRecordBodyLength {
		return nil, errors.Wrapf(ErrRecordTooLarge, "body of %d bytes", bodyLength)
	}

	body := make([]byte, bodyLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, eofAsShort(err, "record body")
	}

	if config.CheckBodyCRC && header.BodyCRC != crc32.Checksum(body, crc32.IEEETable) {
		return nil, ErrBodyChecksum
	}

	fields, err := UnmarshalFields(body)
	if err != nil {
		return nil, err
	}

	if len(fields) != int(header.FieldCount) {
		return nil, errors.Wrapf(ErrFieldCount, "header says %d, body has %d", header.FieldCount, len(fields))
	}

	return fields, nil
}
