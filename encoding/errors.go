package encoding

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Leaf error kinds a caller matches against with errors.Is. Heavier types
// below (FixedHeaderError, PacketError, VariablePacketError) wrap one of
// these, or io.ErrUnexpectedEOF, which is always surfaced unwrapped so a
// "short read" stays distinguishable from a "bad packet" at any depth
// (spec §7 propagation policy).
var (
	ErrMalformedRemainingLength    = errors.New("mqtt: malformed remaining length")
	ErrVariableByteIntegerTooLarge = errors.New("mqtt: variable byte integer exceeds maximum (268,435,455)")

	ErrInvalidQoS          = errors.New("mqtt: invalid QoS level")
	ErrInvalidReservedFlag = errors.New("mqtt: reserved bit set where MUST be zero")

	ErrStringTooLong = errors.New("mqtt: string exceeds 65535 bytes")
	ErrInvalidUTF8   = errors.New("mqtt: invalid UTF-8 string")

	ErrTopicContainsWildcard = errors.New("mqtt: topic name contains '#' or '+'")
	ErrTopicContainsNul      = errors.New("mqtt: topic contains NUL byte")
	ErrTopicEmpty            = errors.New("mqtt: topic string is empty")
	ErrTopicFilterInvalid    = errors.New("mqtt: malformed topic filter wildcard")

	ErrZeroPacketIdentifier = errors.New("mqtt: packet identifier must be non-zero")

	ErrEmptySubscriptionList = errors.New("mqtt: SUBSCRIBE payload must contain at least one topic filter")
	ErrEmptyUnsubscribeList  = errors.New("mqtt: UNSUBSCRIBE payload must contain at least one topic filter")

	ErrMalformedPacket = errors.New("mqtt: malformed packet")
	ErrPacketOverread  = errors.New("mqtt: variant decoder did not consume exactly remaining length bytes")
)

// FixedHeaderError reports a failure framing the fixed header (§4.3). It
// carries the raw control-type code and the already-decoded remaining
// length so the framed parser can skip exactly that many body bytes even
// though the type itself wasn't recognized.
type FixedHeaderError struct {
	Kind            FixedHeaderErrorKind
	Code            byte
	RemainingLength uint32
	cause           error
}

// FixedHeaderErrorKind distinguishes why a fixed header failed to parse.
type FixedHeaderErrorKind int

const (
	// FixedHeaderUnrecognized: nibble outside 1..=14.
	FixedHeaderUnrecognized FixedHeaderErrorKind = iota
	// FixedHeaderReserved: control type 0 or 15.
	FixedHeaderReserved
	// FixedHeaderBadFlags: flags nibble doesn't match the type's fixed value.
	FixedHeaderBadFlags
)

func (e *FixedHeaderError) Error() string {
	switch e.Kind {
	case FixedHeaderReserved:
		return fmt.Sprintf("mqtt: reserved control type %d (remaining length %d)", e.Code, e.RemainingLength)
	case FixedHeaderBadFlags:
		return fmt.Sprintf("mqtt: invalid flags for control type %d (remaining length %d)", e.Code, e.RemainingLength)
	default:
		return fmt.Sprintf("mqtt: unrecognized control type %d (remaining length %d)", e.Code, e.RemainingLength)
	}
}

func (e *FixedHeaderError) Unwrap() error { return e.cause }

func newUnrecognizedType(code byte, remainingLength uint32) *FixedHeaderError {
	return &FixedHeaderError{Kind: FixedHeaderUnrecognized, Code: code, RemainingLength: remainingLength, cause: ErrMalformedPacket}
}

func newReservedType(code byte, remainingLength uint32) *FixedHeaderError {
	return &FixedHeaderError{Kind: FixedHeaderReserved, Code: code, RemainingLength: remainingLength, cause: ErrMalformedPacket}
}

func newBadFlags(code byte, remainingLength uint32) *FixedHeaderError {
	return &FixedHeaderError{Kind: FixedHeaderBadFlags, Code: code, RemainingLength: remainingLength, cause: ErrInvalidReservedFlag}
}

// PacketError wraps a failure encoding/decoding a specific packet variant's
// variable header or payload. Go has no associated-type polymorphism, so
// unlike the Rust original's PacketError<T> family (ConnectPacketError,
// PubcompPacketError, ...) this single type carries the originating
// PacketType as data instead of one Go type per variant.
type PacketError struct {
	Type PacketType
	Op   string // "encode" or "decode"
	Err  error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("mqtt: %s %s: %s", e.Op, e.Type, e.Err)
}

func (e *PacketError) Unwrap() error { return e.Err }

func wrapDecode(t PacketType, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return err
	}
	return &PacketError{Type: t, Op: "decode", Err: err}
}

func wrapEncode(t PacketType, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return err
	}
	return &PacketError{Type: t, Op: "encode", Err: err}
}

// VariablePacketErrorKind distinguishes the three top-level failure shapes
// the framed parser (§4.7) can return.
type VariablePacketErrorKind int

const (
	VariablePacketErrUnrecognized VariablePacketErrorKind = iota
	VariablePacketErrReserved
	VariablePacketErrPacket
)

// VariablePacketError is the error returned by Decode/Parse/PeekFinalize.
// Unrecognized/Reserved carry the raw control-type code; Body holds the
// packet's body bytes on paths that were able to drain them before
// returning (the synchronous Decode path always does; the async Peek path
// reads only the fixed header and leaves Body nil).
type VariablePacketError struct {
	Kind VariablePacketErrorKind
	Code byte
	Body []byte
	Err  error
}

func (e *VariablePacketError) Error() string {
	switch e.Kind {
	case VariablePacketErrUnrecognized:
		return fmt.Sprintf("mqtt: unrecognized packet type %d (%d body bytes)", e.Code, len(e.Body))
	case VariablePacketErrReserved:
		return fmt.Sprintf("mqtt: reserved packet type %d (%d body bytes)", e.Code, len(e.Body))
	default:
		return e.Err.Error()
	}
}

func (e *VariablePacketError) Unwrap() error { return e.Err }
