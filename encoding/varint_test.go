package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingLength_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		bytes []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 127, []byte{0x7F}},
		{"two bytes min", 128, []byte{0x80, 0x01}},
		{"two bytes max", 16383, []byte{0xFF, 0x7F}},
		{"three bytes min", 16384, []byte{0x80, 0x80, 0x01}},
		{"three bytes max", 2097151, []byte{0xFF, 0xFF, 0x7F}},
		{"four bytes min", 2097152, []byte{0x80, 0x80, 0x80, 0x01}},
		{"protocol max", MaxRemainingLength, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeRemainingLength(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.bytes, encoded)

			decoded, err := DecodeRemainingLength(bytes.NewReader(tt.bytes))
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded)

			assert.Equal(t, len(tt.bytes), SizeRemainingLength(tt.value))
		})
	}
}

func TestEncodeRemainingLength_TooLarge(t *testing.T) {
	_, err := EncodeRemainingLength(MaxRemainingLength + 1)
	assert.ErrorIs(t, err, ErrVariableByteIntegerTooLarge)
}

func TestDecodeRemainingLength_NonMinimalAccepted(t *testing.T) {
	// Decode tolerates non-minimal continuation-byte sequences even though
	// EncodeRemainingLength never produces one.
	decoded, err := DecodeRemainingLength(bytes.NewReader([]byte{0x80, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), decoded)
}

func TestDecodeRemainingLength_FifthContinuationByteIsMalformed(t *testing.T) {
	_, err := DecodeRemainingLength(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x01}))
	assert.ErrorIs(t, err, ErrMalformedRemainingLength)
}

func TestDecodeRemainingLength_ShortRead(t *testing.T) {
	_, err := DecodeRemainingLength(bytes.NewReader([]byte{0x80}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSizeRemainingLength_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, SizeRemainingLength(MaxRemainingLength+1))
}
