package serialization

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestRecord(t *testing.T, fields [][]byte) []byte {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, fields))
	return buf.Bytes()
}

func TestRecordRoundTrip(t *testing.T) {
	fields := [][]byte{[]byte(" "), []byte("http"), []byte(":"), {}, []byte("example.com")}
	data := writeTestRecord(t, fields)

	assert.Equal(t, sizeOfRecordHeader+len(MarshalFields(fields)), len(data))

	got, err := ReadRecord(bytes.NewReader(data), DefaultRecordConfig())
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}

func TestRecordSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, [][]byte{[]byte("a")}))
	require.NoError(t, WriteRecord(&buf, [][]byte{[]byte("b"), []byte("c")}))

	r := bytes.NewReader(buf.Bytes())

	first, err := ReadRecord(r, DefaultRecordConfig())
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a")}, first)

	second, err := ReadRecord(r, DefaultRecordConfig())
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("b"), []byte("c")}, second)

	_, err = ReadRecord(r, DefaultRecordConfig())
	assert.True(t, errors.Is(err, ErrShortRecord))
}

func TestRecordHeaderChecksum(t *testing.T) {
	data := writeTestRecord(t, [][]byte{[]byte("abc")})
	data[4] ^= 0x01 // field count

	_, err := ReadRecord(bytes.NewReader(data), DefaultRecordConfig())
	assert.Equal(t, ErrHeaderChecksum, err)

	_, err = ReadRecord(bytes.NewReader(data), RecordConfig{CheckBodyCRC: true})
	assert.True(t, errors.Is(err, ErrFieldCount), "got %v", err)
}

func TestRecordBodyChecksum(t *testing.T) {
	data := writeTestRecord(t, [][]byte{[]byte("abc")})
	data[len(data)-1] ^= 0x01

	_, err := ReadRecord(bytes.NewReader(data), DefaultRecordConfig())
	assert.Equal(t, ErrBodyChecksum, err)

	got, err := ReadRecord(bytes.NewReader(data), RecordConfig{CheckHeaderCRC: true})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("abb")}, got)
}

func TestRecordTruncated(t *testing.T) {
	data := writeTestRecord(t, [][]byte{[]byte("abc")})

	for _, n := range []int{0, 1, sizeOfRecordHeader, len(data) - 1} {
		_, err := ReadRecord(bytes.NewReader(data[:n]), DefaultRecordConfig())
		assert.True(t, errors.Is(err, ErrShortRecord), "length %d: got %v", n, err)
	}
}

func TestRecordTooLarge(t *testing.T) {
	header := recordHeader{
		RecordLength: uint32(sizeOfRecordHeader) + MaxRecordBodyLength + 1,
		FieldCount:   1,
	}
	header.HeaderCRC = header.headerChecksum()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &header))

	_, err := ReadRecord(&buf, DefaultRecordConfig())
	assert.True(t, errors.Is(err, ErrRecordTooLarge), "got %v", err)
}
