package encoding

import (
	"io"

	"github.com/cockroachdb/errors"
)

// VariablePacket is the tagged union over the 14 MQTT 3.1.1 control packet
// variants. The zero value is invalid; construct one via NewVariablePacket
// or by decoding from a stream.
type VariablePacket struct {
	Type PacketType

	Connect     *ConnectPacket
	Connack     *ConnackPacket
	Publish     *PublishPacket
	Puback      *PubackPacket
	Pubrec      *PubrecPacket
	Pubrel      *PubrelPacket
	Pubcomp     *PubcompPacket
	Subscribe   *SubscribePacket
	Suback      *SubackPacket
	Unsubscribe *UnsubscribePacket
	Unsuback    *UnsubackPacket
	Pingreq     *PingreqPacket
	Pingresp    *PingrespPacket
	Disconnect  *DisconnectPacket
}

// NewVariablePacket wraps a concrete packet pointer in a VariablePacket. It
// panics if p is not one of the 14 known variant pointer types — a
// programmer error, not a data error.
func NewVariablePacket(p Packet) VariablePacket {
	switch v := p.(type) {
	case *ConnectPacket:
		return VariablePacket{Type: CONNECT, Connect: v}
	case *ConnackPacket:
		return VariablePacket{Type: CONNACK, Connack: v}
	case *PublishPacket:
		return VariablePacket{Type: PUBLISH, Publish: v}
	case *PubackPacket:
		return VariablePacket{Type: PUBACK, Puback: v}
	case *PubrecPacket:
		return VariablePacket{Type: PUBREC, Pubrec: v}
	case *PubrelPacket:
		return VariablePacket{Type: PUBREL, Pubrel: v}
	case *PubcompPacket:
		return VariablePacket{Type: PUBCOMP, Pubcomp: v}
	case *SubscribePacket:
		return VariablePacket{Type: SUBSCRIBE, Subscribe: v}
	case *SubackPacket:
		return VariablePacket{Type: SUBACK, Suback: v}
	case *UnsubscribePacket:
		return VariablePacket{Type: UNSUBSCRIBE, Unsubscribe: v}
	case *UnsubackPacket:
		return VariablePacket{Type: UNSUBACK, Unsuback: v}
	case *PingreqPacket:
		return VariablePacket{Type: PINGREQ, Pingreq: v}
	case *PingrespPacket:
		return VariablePacket{Type: PINGRESP, Pingresp: v}
	case *DisconnectPacket:
		return VariablePacket{Type: DISCONNECT, Disconnect: v}
	default:
		panic("encoding: unknown packet type passed to NewVariablePacket")
	}
}

// Packet returns the wrapped variant as the uniform Packet interface, for
// callers that only need fixed-header/encode access and don't care which
// concrete variant it is.
func (v VariablePacket) Packet() Packet {
	switch v.Type {
	case CONNECT:
		return v.Connect
	case CONNACK:
		return v.Connack
	case PUBLISH:
		return v.Publish
	case PUBACK:
		return v.Puback
	case PUBREC:
		return v.Pubrec
	case PUBREL:
		return v.Pubrel
	case PUBCOMP:
		return v.Pubcomp
	case SUBSCRIBE:
		return v.Subscribe
	case SUBACK:
		return v.Suback
	case UNSUBSCRIBE:
		return v.Unsubscribe
	case UNSUBACK:
		return v.Unsuback
	case PINGREQ:
		return v.Pingreq
	case PINGRESP:
		return v.Pingresp
	case DISCONNECT:
		return v.Disconnect
	default:
		return nil
	}
}

// Encode writes the wrapped packet to w.
func (v VariablePacket) Encode(w io.Writer) error {
	return EncodePacket(w, v.Packet())
}

// EncodedLength returns the wrapped packet's exact wire size.
func (v VariablePacket) EncodedLength() uint32 {
	return EncodedLength(v.Packet())
}

func decodeVariant(t PacketType, r io.Reader, fh FixedHeader) (VariablePacket, error) {
	switch t {
	case CONNECT:
		p, err := DecodeConnectPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: CONNECT, Connect: p}, nil
	case CONNACK:
		p, err := DecodeConnackPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: CONNACK, Connack: p}, nil
	case PUBLISH:
		p, err := DecodePublishPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PUBLISH, Publish: p}, nil
	case PUBACK:
		p, err := DecodePubackPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PUBACK, Puback: p}, nil
	case PUBREC:
		p, err := DecodePubrecPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PUBREC, Pubrec: p}, nil
	case PUBREL:
		p, err := DecodePubrelPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PUBREL, Pubrel: p}, nil
	case PUBCOMP:
		p, err := DecodePubcompPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PUBCOMP, Pubcomp: p}, nil
	case SUBSCRIBE:
		p, err := DecodeSubscribePacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: SUBSCRIBE, Subscribe: p}, nil
	case SUBACK:
		p, err := DecodeSubackPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: SUBACK, Suback: p}, nil
	case UNSUBSCRIBE:
		p, err := DecodeUnsubscribePacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: UNSUBSCRIBE, Unsubscribe: p}, nil
	case UNSUBACK:
		p, err := DecodeUnsubackPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: UNSUBACK, Unsuback: p}, nil
	case PINGREQ:
		p, err := DecodePingreqPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PINGREQ, Pingreq: p}, nil
	case PINGRESP:
		p, err := DecodePingrespPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: PINGRESP, Pingresp: p}, nil
	case DISCONNECT:
		p, err := DecodeDisconnectPacket(r, fh)
		if err != nil {
			return VariablePacket{}, err
		}
		return VariablePacket{Type: DISCONNECT, Disconnect: p}, nil
	default:
		return VariablePacket{}, &PacketError{Type: t, Op: "decode", Err: ErrMalformedPacket}
	}
}

// Decode reads one packet from r. If the fixed header names an
// unrecognized or reserved control type, Decode still consumes exactly
// remaining_length body bytes before returning a *VariablePacketError, so
// the stream is left positioned at the start of the next packet.
func Decode(r io.Reader) (VariablePacket, error) {
	fh, err := DecodeFixedHeader(r)
	if err != nil {
		var fhErr *FixedHeaderError
		if errors.As(err, &fhErr) {
			body := make([]byte, fhErr.RemainingLength)
			if _, rerr := io.ReadFull(r, body); rerr != nil {
				if errors.Is(rerr, io.ErrUnexpectedEOF) || errors.Is(rerr, io.EOF) {
					return VariablePacket{}, io.ErrUnexpectedEOF
				}
				return VariablePacket{}, rerr
			}
			switch fhErr.Kind {
			case FixedHeaderReserved:
				return VariablePacket{}, &VariablePacketError{Kind: VariablePacketErrReserved, Code: fhErr.Code, Body: body, Err: fhErr}
			default:
				return VariablePacket{}, &VariablePacketError{Kind: VariablePacketErrUnrecognized, Code: fhErr.Code, Body: body, Err: fhErr}
			}
		}
		return VariablePacket{}, err
	}

	bounded := io.LimitReader(r, int64(fh.RemainingLength))
	vp, err := decodeVariant(fh.Type, bounded, fh)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return VariablePacket{}, io.ErrUnexpectedEOF
		}
		return VariablePacket{}, &VariablePacketError{Kind: VariablePacketErrPacket, Code: byte(fh.Type), Err: err}
	}

	// A conforming variant decoder consumes exactly remaining_length bytes;
	// anything left over means it under-read.
	var probe [1]byte
	if n, _ := bounded.Read(probe[:]); n > 0 {
		return VariablePacket{}, &VariablePacketError{Kind: VariablePacketErrPacket, Code: byte(fh.Type), Err: &PacketError{Type: fh.Type, Op: "decode", Err: ErrPacketOverread}}
	}

	return vp, nil
}
