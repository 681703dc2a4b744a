package encoding

import "io"

// Packet is the uniform capability every one of the 14 control packet
// variants implements: enough to compose a fixed header, variable headers,
// and payload into wire bytes (and back) without the framed parser needing
// to know the variant's internal shape.
type Packet interface {
	// FixedHeader returns the packet's fixed header. Constructors set
	// RemainingLength to EncodedVariableHeadersLength() plus the payload's
	// encoded length; after a variable-length field is changed directly,
	// the variant's Refresh() recomputes it.
	FixedHeader() FixedHeader

	// EncodeVariableHeaders writes the variant's variable header fields
	// (everything between the fixed header and the payload) to w.
	EncodeVariableHeaders(w io.Writer) error

	// EncodedVariableHeadersLength returns the exact byte count
	// EncodeVariableHeaders would produce.
	EncodedVariableHeadersLength() uint32

	// EncodePayload writes the variant's payload to w.
	EncodePayload(w io.Writer) error

	// EncodedPayloadLength returns the exact byte count EncodePayload
	// would produce.
	EncodedPayloadLength() uint32
}

// EncodePacket writes p's fixed header, variable headers, and payload to w
// in order — the uniform encode composition (§4.6).
func EncodePacket(w io.Writer, p Packet) error {
	if err := EncodeFixedHeader(w, p.FixedHeader()); err != nil {
		return err
	}
	if err := p.EncodeVariableHeaders(w); err != nil {
		return err
	}
	return p.EncodePayload(w)
}

// EncodedLength returns the total wire size EncodePacket would produce for p.
func EncodedLength(p Packet) uint32 {
	fh := p.FixedHeader()
	headerBytes := uint32(1 + SizeRemainingLength(fh.RemainingLength))
	return headerBytes + p.EncodedVariableHeadersLength() + p.EncodedPayloadLength()
}
