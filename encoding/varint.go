package encoding

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Remaining Length is MQTT 3.1.1's variable-length integer (wire protocol
// §2.2.3): 1-4 bytes, 7 bits of value per byte, bit 7 is the continuation
// bit.

const (
	// MaxRemainingLength is the largest value the 4-byte encoding can hold.
	MaxRemainingLength uint32 = 268435455 // 0x0FFFFFFF

	maxRemainingLengthBytes = 4
)

// EncodeRemainingLength encodes value as an MQTT variable-length integer.
// The encoder always emits the minimal form, even though DecodeRemainingLength
// tolerates non-minimal continuation-byte sequences on input.
func EncodeRemainingLength(value uint32) ([]byte, error) {
	if value > MaxRemainingLength {
		return nil, ErrVariableByteIntegerTooLarge
	}

	result := make([]byte, 0, 4)
	for {
		b := byte(value % 128)
		value /= 128
		if value > 0 {
			b |= 0x80
		}
		result = append(result, b)
		if value == 0 {
			break
		}
	}
	return result, nil
}

// WriteRemainingLength encodes and writes value directly to w.
func WriteRemainingLength(w io.Writer, value uint32) error {
	buf, err := EncodeRemainingLength(value)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// DecodeRemainingLength decodes an MQTT variable-length integer from r.
// Non-minimal encodings are accepted (e.g. 0x80 0x00 reads back as 0); a
// continuation bit still set on the 4th byte is ErrMalformedRemainingLength.
func DecodeRemainingLength(r io.Reader) (uint32, error) {
	var value uint32
	var multiplier uint32 = 1
	var buf [1]byte

	for i := 0; i < maxRemainingLengthBytes; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}

		b := buf[0]
		value += uint32(b&0x7F) * multiplier

		if b&0x80 == 0 {
			return value, nil
		}
		multiplier *= 128
	}

	return 0, ErrMalformedRemainingLength
}

// SizeRemainingLength returns the number of bytes EncodeRemainingLength
// would produce for value, or 0 if value is out of range.
func SizeRemainingLength(value uint32) int {
	switch {
	case value > MaxRemainingLength:
		return 0
	case value <= 127:
		return 1
	case value <= 16383:
		return 2
	case value <= 2097151:
		return 3
	default:
		return 4
	}
}
