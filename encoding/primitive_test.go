package encoding

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU8RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU8(&buf, 0xAB))
	v, err := ReadU8(&buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), v)
}

func TestU8_ShortRead(t *testing.T) {
	_, err := ReadU8(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestU16RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU16(&buf, 0x1234))
	assert.Equal(t, []byte{0x12, 0x34}, buf.Bytes())

	v, err := ReadU16(bytes.NewReader([]byte{0x12, 0x34}))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestU16_ShortRead(t *testing.T) {
	_, err := ReadU16(bytes.NewReader([]byte{0x01}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "a/b"))
	assert.Equal(t, []byte{0x00, 0x03, 'a', '/', 'b'}, buf.Bytes())

	s, err := ReadString(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "a/b", s)
}

func TestWriteString_TooLong(t *testing.T) {
	err := WriteString(&bytes.Buffer{}, strings.Repeat("x", MaxStringLength+1))
	assert.ErrorIs(t, err, ErrStringTooLong)
}

func TestReadString_InvalidUTF8(t *testing.T) {
	raw := []byte{0x00, 0x02, 0xFF, 0xFE}
	_, err := ReadString(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadString_EmbeddedNul(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x00}
	_, err := ReadString(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadString_ShortRead(t *testing.T) {
	raw := []byte{0x00, 0x05, 'a', 'b'}
	_, err := ReadString(bytes.NewReader(raw))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestBytesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	data := []byte{0xAA, 0xBB, 0xCC}
	require.NoError(t, WriteBytes(&buf, data))

	got, err := ReadBytes(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadRawBytes_Zero(t *testing.T) {
	got, err := ReadRawBytes(bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadRawBytes_ShortRead(t *testing.T) {
	_, err := ReadRawBytes(bytes.NewReader([]byte{0x01}), 4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
