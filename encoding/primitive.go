package encoding

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

// MaxStringLength is the largest payload a length-prefixed string can carry
// (the u16 length prefix tops out at 65535).
const MaxStringLength = 65535

// WriteU8 writes a single byte to w.
func WriteU8(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

// ReadU8 reads a single byte from r.
func ReadU8(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return buf[0], nil
}

// WriteU16 writes v to w as big-endian.
func WriteU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadU16 reads a big-endian u16 from r.
func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteString writes s as a u16-length-prefixed UTF-8 string.
func WriteString(w io.Writer, s string) error {
	if len(s) > MaxStringLength {
		return ErrStringTooLong
	}
	if err := WriteU16(w, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadString reads a u16-length-prefixed UTF-8 string from r.
func ReadString(r io.Reader) (string, error) {
	n, err := ReadU16(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	if err := ValidateUTF8String(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteBytes writes data as a u16-length-prefixed raw byte blob.
func WriteBytes(w io.Writer, data []byte) error {
	if len(data) > MaxStringLength {
		return ErrStringTooLong
	}
	if err := WriteU16(w, uint16(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadBytes reads a u16-length-prefixed raw byte blob from r.
func ReadBytes(r io.Reader) ([]byte, error) {
	n, err := ReadU16(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// ReadRawBytes reads exactly n unprefixed bytes from r (used for payloads
// whose length is implied by the remaining length rather than self-prefixed,
// e.g. PUBLISH's application message).
func ReadRawBytes(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
