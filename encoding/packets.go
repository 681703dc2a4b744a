package encoding

import "io"

// countingReader tracks how many bytes have been read through it, so a
// decoder can figure out how much of remaining_length is left for a
// payload that isn't itself length-prefixed (PUBLISH).
type countingReader struct {
	r io.Reader
	n uint32
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint32(n)
	return n, err
}

// ackPacket is the shared shape of the five variants whose variable header
// is a bare packet identifier and whose payload is empty: PUBACK, PUBREC,
// PUBREL, PUBCOMP, UNSUBACK.
type ackPacket struct {
	FH       FixedHeader
	PacketID uint16
}

func newAckPacket(t PacketType, flags byte, packetID uint16) ackPacket {
	return ackPacket{
		FH:       FixedHeader{Type: t, Flags: flags, RemainingLength: 2},
		PacketID: packetID,
	}
}

func (p *ackPacket) FixedHeader() FixedHeader { return p.FH }

func (p *ackPacket) EncodeVariableHeaders(w io.Writer) error {
	if err := ValidatePacketID(p.PacketID); err != nil {
		return wrapEncode(p.FH.Type, err)
	}
	return wrapEncode(p.FH.Type, WriteU16(w, p.PacketID))
}

func (p *ackPacket) EncodedVariableHeadersLength() uint32 { return 2 }

func (p *ackPacket) EncodePayload(io.Writer) error { return nil }

func (p *ackPacket) EncodedPayloadLength() uint32 { return 0 }

func (p *ackPacket) SetPacketID(id uint16) { p.PacketID = id }

func decodeAckPayload(t PacketType, r io.Reader, fh FixedHeader) (uint16, error) {
	id, err := ReadU16(r)
	if err != nil {
		return 0, wrapDecode(t, err)
	}
	if err := ValidatePacketID(id); err != nil {
		return 0, wrapDecode(t, err)
	}
	return id, nil
}

// PubackPacket acknowledges a QoS 1 PUBLISH.
type PubackPacket struct{ ackPacket }

func NewPubackPacket(packetID uint16) *PubackPacket {
	return &PubackPacket{newAckPacket(PUBACK, 0, packetID)}
}

func DecodePubackPacket(r io.Reader, fh FixedHeader) (*PubackPacket, error) {
	id, err := decodeAckPayload(PUBACK, r, fh)
	if err != nil {
		return nil, err
	}
	return &PubackPacket{ackPacket{FH: fh, PacketID: id}}, nil
}

// PubrecPacket is the first step of the QoS 2 release handshake.
type PubrecPacket struct{ ackPacket }

func NewPubrecPacket(packetID uint16) *PubrecPacket {
	return &PubrecPacket{newAckPacket(PUBREC, 0, packetID)}
}

func DecodePubrecPacket(r io.Reader, fh FixedHeader) (*PubrecPacket, error) {
	id, err := decodeAckPayload(PUBREC, r, fh)
	if err != nil {
		return nil, err
	}
	return &PubrecPacket{ackPacket{FH: fh, PacketID: id}}, nil
}

// PubrelPacket is the second step of the QoS 2 release handshake. Its
// flags nibble is fixed at 2, not 0.
type PubrelPacket struct{ ackPacket }

func NewPubrelPacket(packetID uint16) *PubrelPacket {
	return &PubrelPacket{newAckPacket(PUBREL, 0x02, packetID)}
}

func DecodePubrelPacket(r io.Reader, fh FixedHeader) (*PubrelPacket, error) {
	id, err := decodeAckPayload(PUBREL, r, fh)
	if err != nil {
		return nil, err
	}
	return &PubrelPacket{ackPacket{FH: fh, PacketID: id}}, nil
}

// PubcompPacket completes the QoS 2 release handshake.
type PubcompPacket struct{ ackPacket }

func NewPubcompPacket(packetID uint16) *PubcompPacket {
	return &PubcompPacket{newAckPacket(PUBCOMP, 0, packetID)}
}

func DecodePubcompPacket(r io.Reader, fh FixedHeader) (*PubcompPacket, error) {
	id, err := decodeAckPayload(PUBCOMP, r, fh)
	if err != nil {
		return nil, err
	}
	return &PubcompPacket{ackPacket{FH: fh, PacketID: id}}, nil
}

// UnsubackPacket acknowledges an UNSUBSCRIBE.
type UnsubackPacket struct{ ackPacket }

func NewUnsubackPacket(packetID uint16) *UnsubackPacket {
	return &UnsubackPacket{newAckPacket(UNSUBACK, 0, packetID)}
}

func DecodeUnsubackPacket(r io.Reader, fh FixedHeader) (*UnsubackPacket, error) {
	id, err := decodeAckPayload(UNSUBACK, r, fh)
	if err != nil {
		return nil, err
	}
	return &UnsubackPacket{ackPacket{FH: fh, PacketID: id}}, nil
}

// emptyPacket is the shared shape of PINGREQ, PINGRESP and DISCONNECT: no
// variable header, no payload, remaining_length always 0.
type emptyPacket struct {
	FH FixedHeader
}

func newEmptyPacket(t PacketType) emptyPacket {
	return emptyPacket{FH: FixedHeader{Type: t, Flags: 0, RemainingLength: 0}}
}

func (p *emptyPacket) FixedHeader() FixedHeader                  { return p.FH }
func (p *emptyPacket) EncodeVariableHeaders(io.Writer) error      { return nil }
func (p *emptyPacket) EncodedVariableHeadersLength() uint32       { return 0 }
func (p *emptyPacket) EncodePayload(io.Writer) error              { return nil }
func (p *emptyPacket) EncodedPayloadLength() uint32               { return 0 }

// PingreqPacket is a client keep-alive heartbeat.
type PingreqPacket struct{ emptyPacket }

func NewPingreqPacket() *PingreqPacket { return &PingreqPacket{newEmptyPacket(PINGREQ)} }

func DecodePingreqPacket(r io.Reader, fh FixedHeader) (*PingreqPacket, error) {
	return &PingreqPacket{emptyPacket{FH: fh}}, nil
}

// PingrespPacket answers a PINGREQ.
type PingrespPacket struct{ emptyPacket }

func NewPingrespPacket() *PingrespPacket { return &PingrespPacket{newEmptyPacket(PINGRESP)} }

func DecodePingrespPacket(r io.Reader, fh FixedHeader) (*PingrespPacket, error) {
	return &PingrespPacket{emptyPacket{FH: fh}}, nil
}

// DisconnectPacket is a graceful client disconnect notice.
type DisconnectPacket struct{ emptyPacket }

func NewDisconnectPacket() *DisconnectPacket { return &DisconnectPacket{newEmptyPacket(DISCONNECT)} }

func DecodeDisconnectPacket(r io.Reader, fh FixedHeader) (*DisconnectPacket, error) {
	return &DisconnectPacket{emptyPacket{FH: fh}}, nil
}

// ConnectPacket opens a session.
type ConnectPacket struct {
	FH           FixedHeader
	ProtocolName string
	ProtocolLevel byte
	Flags        ConnectFlags
	KeepAlive    uint16

	ClientID    string
	WillTopic   string
	WillMessage []byte
	UserName    string
	Password    []byte
}

// NewConnectPacket builds a minimal CONNECT with CleanSession set and no
// will/credentials, and computes remaining_length.
func NewConnectPacket(protocolName, clientID string) *ConnectPacket {
	p := &ConnectPacket{
		ProtocolName:  protocolName,
		ProtocolLevel: ProtocolLevel311,
		Flags:         ConnectFlags{CleanSession: true},
		ClientID:      clientID,
	}
	p.Refresh()
	return p
}

func (p *ConnectPacket) FixedHeader() FixedHeader { return p.FH }

func (p *ConnectPacket) variableHeaderLength() uint32 {
	return uint32(2+len(p.ProtocolName)) + 1 + 1 + 2
}

func (p *ConnectPacket) payloadLength() uint32 {
	n := uint32(2 + len(p.ClientID))
	if p.Flags.WillFlag {
		n += uint32(2 + len(p.WillTopic))
		n += uint32(2 + len(p.WillMessage))
	}
	if p.Flags.UserName {
		n += uint32(2 + len(p.UserName))
	}
	if p.Flags.Password {
		n += uint32(2 + len(p.Password))
	}
	return n
}

// Refresh recomputes remaining_length from the packet's current fields.
// Call it after mutating any field that was not set through a constructor.
func (p *ConnectPacket) Refresh() {
	p.FH = FixedHeader{Type: CONNECT, Flags: 0, RemainingLength: p.variableHeaderLength() + p.payloadLength()}
}

func (p *ConnectPacket) EncodeVariableHeaders(w io.Writer) error {
	if err := WriteString(w, p.ProtocolName); err != nil {
		return wrapEncode(CONNECT, err)
	}
	if err := WriteU8(w, p.ProtocolLevel); err != nil {
		return wrapEncode(CONNECT, err)
	}
	flagByte, err := p.Flags.Encode()
	if err != nil {
		return wrapEncode(CONNECT, err)
	}
	if err := WriteU8(w, flagByte); err != nil {
		return wrapEncode(CONNECT, err)
	}
	return wrapEncode(CONNECT, WriteU16(w, p.KeepAlive))
}

func (p *ConnectPacket) EncodedVariableHeadersLength() uint32 { return p.variableHeaderLength() }

func (p *ConnectPacket) EncodePayload(w io.Writer) error {
	if err := WriteString(w, p.ClientID); err != nil {
		return wrapEncode(CONNECT, err)
	}
	if p.Flags.WillFlag {
		if err := WriteTopicNameHeader(w, p.WillTopic); err != nil {
			return wrapEncode(CONNECT, err)
		}
		if err := WriteBytes(w, p.WillMessage); err != nil {
			return wrapEncode(CONNECT, err)
		}
	}
	if p.Flags.UserName {
		if err := WriteString(w, p.UserName); err != nil {
			return wrapEncode(CONNECT, err)
		}
	}
	if p.Flags.Password {
		if err := WriteBytes(w, p.Password); err != nil {
			return wrapEncode(CONNECT, err)
		}
	}
	return nil
}

func (p *ConnectPacket) EncodedPayloadLength() uint32 { return p.payloadLength() }

// DecodeConnectPacket decodes a CONNECT variable header and payload from a
// reader already bounded to fh.RemainingLength bytes.
func DecodeConnectPacket(r io.Reader, fh FixedHeader) (*ConnectPacket, error) {
	protocolName, err := ReadString(r)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}
	protocolLevel, err := ReadU8(r)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}
	flagByte, err := ReadU8(r)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}
	flags, err := DecodeConnectFlags(flagByte)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}
	keepAlive, err := ReadU16(r)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}
	clientID, err := ReadString(r)
	if err != nil {
		return nil, wrapDecode(CONNECT, err)
	}

	p := &ConnectPacket{
		FH:            fh,
		ProtocolName:  protocolName,
		ProtocolLevel: protocolLevel,
		Flags:         flags,
		KeepAlive:     keepAlive,
		ClientID:      clientID,
	}

	if flags.WillFlag {
		if p.WillTopic, err = ReadTopicNameHeader(r); err != nil {
			return nil, wrapDecode(CONNECT, err)
		}
		if p.WillMessage, err = ReadBytes(r); err != nil {
			return nil, wrapDecode(CONNECT, err)
		}
	}
	if flags.UserName {
		if p.UserName, err = ReadString(r); err != nil {
			return nil, wrapDecode(CONNECT, err)
		}
	}
	if flags.Password {
		if p.Password, err = ReadBytes(r); err != nil {
			return nil, wrapDecode(CONNECT, err)
		}
	}

	return p, nil
}

// ConnackPacket acknowledges a CONNECT.
type ConnackPacket struct {
	FH             FixedHeader
	SessionPresent bool
	ReturnCode     ConnectReturnCode
}

func NewConnackPacket(sessionPresent bool, returnCode ConnectReturnCode) *ConnackPacket {
	return &ConnackPacket{
		FH:             FixedHeader{Type: CONNACK, Flags: 0, RemainingLength: 2},
		SessionPresent: sessionPresent,
		ReturnCode:     returnCode,
	}
}

func (p *ConnackPacket) FixedHeader() FixedHeader { return p.FH }

func (p *ConnackPacket) EncodeVariableHeaders(w io.Writer) error {
	if err := WriteU8(w, EncodeConnackFlags(p.SessionPresent)); err != nil {
		return wrapEncode(CONNACK, err)
	}
	return wrapEncode(CONNACK, WriteU8(w, byte(p.ReturnCode)))
}

func (p *ConnackPacket) EncodedVariableHeadersLength() uint32 { return 2 }
func (p *ConnackPacket) EncodePayload(io.Writer) error        { return nil }
func (p *ConnackPacket) EncodedPayloadLength() uint32         { return 0 }

func DecodeConnackPacket(r io.Reader, fh FixedHeader) (*ConnackPacket, error) {
	flagByte, err := ReadU8(r)
	if err != nil {
		return nil, wrapDecode(CONNACK, err)
	}
	sessionPresent, err := DecodeConnackFlags(flagByte)
	if err != nil {
		return nil, wrapDecode(CONNACK, err)
	}
	rc, err := ReadU8(r)
	if err != nil {
		return nil, wrapDecode(CONNACK, err)
	}
	return &ConnackPacket{FH: fh, SessionPresent: sessionPresent, ReturnCode: ConnectReturnCode(rc)}, nil
}

// PublishPacket carries an application message.
type PublishPacket struct {
	FH         FixedHeader
	TopicName  string
	PacketID   uint16 // only meaningful when FH.QoS > QoS0
	Payload    []byte
}

// NewPublishPacket builds a PUBLISH with the given flags and computes
// remaining_length. packetID is ignored (and should be 0) for QoS0.
func NewPublishPacket(topic string, qos QoS, dup, retain bool, packetID uint16, payload []byte) *PublishPacket {
	p := &PublishPacket{TopicName: topic, PacketID: packetID, Payload: payload}
	p.FH = FixedHeader{Type: PUBLISH, DUP: dup, QoS: qos, Retain: retain}
	p.Refresh()
	return p
}

func (p *PublishPacket) FixedHeader() FixedHeader { return p.FH }

func (p *PublishPacket) variableHeaderLength() uint32 {
	n := uint32(2 + len(p.TopicName))
	if p.FH.QoS > QoS0 {
		n += 2
	}
	return n
}

// Refresh recomputes remaining_length from the packet's current fields.
func (p *PublishPacket) Refresh() {
	p.FH.RemainingLength = p.variableHeaderLength() + uint32(len(p.Payload))
}

// SetPacketID sets the packet identifier; only valid when QoS > 0.
func (p *PublishPacket) SetPacketID(id uint16) error {
	if p.FH.QoS == QoS0 {
		return ErrZeroPacketIdentifier
	}
	p.PacketID = id
	return nil
}

func (p *PublishPacket) EncodeVariableHeaders(w io.Writer) error {
	if err := WriteTopicNameHeader(w, p.TopicName); err != nil {
		return wrapEncode(PUBLISH, err)
	}
	if p.FH.QoS > QoS0 {
		if err := ValidatePacketID(p.PacketID); err != nil {
			return wrapEncode(PUBLISH, err)
		}
		return wrapEncode(PUBLISH, WriteU16(w, p.PacketID))
	}
	return nil
}

func (p *PublishPacket) EncodedVariableHeadersLength() uint32 { return p.variableHeaderLength() }

func (p *PublishPacket) EncodePayload(w io.Writer) error {
	_, err := w.Write(p.Payload)
	return wrapEncode(PUBLISH, err)
}

func (p *PublishPacket) EncodedPayloadLength() uint32 { return uint32(len(p.Payload)) }

func DecodePublishPacket(r io.Reader, fh FixedHeader) (*PublishPacket, error) {
	cr := &countingReader{r: r}

	topic, err := ReadTopicNameHeader(cr)
	if err != nil {
		return nil, wrapDecode(PUBLISH, err)
	}

	var packetID uint16
	if fh.QoS > QoS0 {
		packetID, err = ReadU16(cr)
		if err != nil {
			return nil, wrapDecode(PUBLISH, err)
		}
		if err := ValidatePacketID(packetID); err != nil {
			return nil, wrapDecode(PUBLISH, err)
		}
	}

	if cr.n > fh.RemainingLength {
		return nil, wrapDecode(PUBLISH, ErrMalformedPacket)
	}
	payload, err := ReadRawBytes(r, int(fh.RemainingLength-cr.n))
	if err != nil {
		return nil, wrapDecode(PUBLISH, err)
	}

	return &PublishPacket{FH: fh, TopicName: topic, PacketID: packetID, Payload: payload}, nil
}

// Subscription is one (topic filter, requested QoS) pair in a SUBSCRIBE
// payload.
type Subscription struct {
	TopicFilter string
	QoS         QoS
}

// SubscribePacket requests subscriptions to one or more topic filters.
type SubscribePacket struct {
	FH            FixedHeader
	PacketID      uint16
	Subscriptions []Subscription
}

func NewSubscribePacket(packetID uint16, subs []Subscription) *SubscribePacket {
	p := &SubscribePacket{PacketID: packetID, Subscriptions: subs}
	p.Refresh()
	return p
}

func (p *SubscribePacket) FixedHeader() FixedHeader { return p.FH }

func (p *SubscribePacket) payloadLength() uint32 {
	var n uint32
	for _, s := range p.Subscriptions {
		n += uint32(2+len(s.TopicFilter)) + 1
	}
	return n
}

func (p *SubscribePacket) Refresh() {
	p.FH = FixedHeader{Type: SUBSCRIBE, Flags: 0x02, RemainingLength: 2 + p.payloadLength()}
}

func (p *SubscribePacket) SetPacketID(id uint16) { p.PacketID = id }

func (p *SubscribePacket) EncodeVariableHeaders(w io.Writer) error {
	if err := ValidatePacketID(p.PacketID); err != nil {
		return wrapEncode(SUBSCRIBE, err)
	}
	return wrapEncode(SUBSCRIBE, WriteU16(w, p.PacketID))
}

func (p *SubscribePacket) EncodedVariableHeadersLength() uint32 { return 2 }

func (p *SubscribePacket) EncodePayload(w io.Writer) error {
	if len(p.Subscriptions) == 0 {
		return wrapEncode(SUBSCRIBE, ErrEmptySubscriptionList)
	}
	for _, s := range p.Subscriptions {
		if err := ValidateTopicFilter(s.TopicFilter); err != nil {
			return wrapEncode(SUBSCRIBE, err)
		}
		if err := WriteString(w, s.TopicFilter); err != nil {
			return wrapEncode(SUBSCRIBE, err)
		}
		if !s.QoS.IsValid() {
			return wrapEncode(SUBSCRIBE, ErrInvalidQoS)
		}
		if err := WriteU8(w, byte(s.QoS)); err != nil {
			return wrapEncode(SUBSCRIBE, err)
		}
	}
	return nil
}

func (p *SubscribePacket) EncodedPayloadLength() uint32 { return p.payloadLength() }

func DecodeSubscribePacket(r io.Reader, fh FixedHeader) (*SubscribePacket, error) {
	packetID, err := ReadU16(r)
	if err != nil {
		return nil, wrapDecode(SUBSCRIBE, err)
	}
	if err := ValidatePacketID(packetID); err != nil {
		return nil, wrapDecode(SUBSCRIBE, err)
	}

	cr := &countingReader{r: r, n: 2}
	var subs []Subscription
	for cr.n < fh.RemainingLength {
		filter, err := ReadString(cr)
		if err != nil {
			return nil, wrapDecode(SUBSCRIBE, err)
		}
		if err := ValidateTopicFilter(filter); err != nil {
			return nil, wrapDecode(SUBSCRIBE, err)
		}
		optByte, err := ReadU8(cr)
		if err != nil {
			return nil, wrapDecode(SUBSCRIBE, err)
		}
		qos, err := ValidateSubscriptionQoS(optByte)
		if err != nil {
			return nil, wrapDecode(SUBSCRIBE, err)
		}
		subs = append(subs, Subscription{TopicFilter: filter, QoS: qos})
	}
	if cr.n != fh.RemainingLength {
		return nil, wrapDecode(SUBSCRIBE, ErrPacketOverread)
	}
	if len(subs) == 0 {
		return nil, wrapDecode(SUBSCRIBE, ErrEmptySubscriptionList)
	}

	return &SubscribePacket{FH: fh, PacketID: packetID, Subscriptions: subs}, nil
}

// SubackPacket grants (or refuses) the subscriptions of a SUBSCRIBE, one
// return code per requested topic filter, same order.
type SubackPacket struct {
	FH          FixedHeader
	PacketID    uint16
	ReturnCodes []SubscribeReturnCode
}

func NewSubackPacket(packetID uint16, codes []SubscribeReturnCode) *SubackPacket {
	p := &SubackPacket{PacketID: packetID, ReturnCodes: codes}
	p.Refresh()
	return p
}

func (p *SubackPacket) FixedHeader() FixedHeader { return p.FH }

func (p *SubackPacket) Refresh() {
	p.FH = FixedHeader{Type: SUBACK, Flags: 0, RemainingLength: 2 + uint32(len(p.ReturnCodes))}
}

func (p *SubackPacket) SetPacketID(id uint16) { p.PacketID = id }

func (p *SubackPacket) EncodeVariableHeaders(w io.Writer) error {
	if err := ValidatePacketID(p.PacketID); err != nil {
		return wrapEncode(SUBACK, err)
	}
	return wrapEncode(SUBACK, WriteU16(w, p.PacketID))
}

func (p *SubackPacket) EncodedVariableHeadersLength() uint32 { return 2 }

func (p *SubackPacket) EncodePayload(w io.Writer) error {
	for _, c := range p.ReturnCodes {
		if err := WriteU8(w, byte(c)); err != nil {
			return wrapEncode(SUBACK, err)
		}
	}
	return nil
}

func (p *SubackPacket) EncodedPayloadLength() uint32 { return uint32(len(p.ReturnCodes)) }

func DecodeSubackPacket(r io.Reader, fh FixedHeader) (*SubackPacket, error) {
	packetID, err := ReadU16(r)
	if err != nil {
		return nil, wrapDecode(SUBACK, err)
	}
	if err := ValidatePacketID(packetID); err != nil {
		return nil, wrapDecode(SUBACK, err)
	}
	if fh.RemainingLength < 2 {
		return nil, wrapDecode(SUBACK, ErrMalformedPacket)
	}
	n := fh.RemainingLength - 2
	raw, err := ReadRawBytes(r, int(n))
	if err != nil {
		return nil, wrapDecode(SUBACK, err)
	}
	codes := make([]SubscribeReturnCode, len(raw))
	for i, b := range raw {
		codes[i] = SubscribeReturnCode(b)
	}
	return &SubackPacket{FH: fh, PacketID: packetID, ReturnCodes: codes}, nil
}

// UnsubscribePacket requests removal of one or more subscriptions.
type UnsubscribePacket struct {
	FH           FixedHeader
	PacketID     uint16
	TopicFilters []string
}

func NewUnsubscribePacket(packetID uint16, filters []string) *UnsubscribePacket {
	p := &UnsubscribePacket{PacketID: packetID, TopicFilters: filters}
	p.Refresh()
	return p
}

func (p *UnsubscribePacket) FixedHeader() FixedHeader { return p.FH }

func (p *UnsubscribePacket) payloadLength() uint32 {
	var n uint32
	for _, f := range p.TopicFilters {
		n += uint32(2 + len(f))
	}
	return n
}

func (p *UnsubscribePacket) Refresh() {
	p.FH = FixedHeader{Type: UNSUBSCRIBE, Flags: 0x02, RemainingLength: 2 + p.payloadLength()}
}

func (p *UnsubscribePacket) SetPacketID(id uint16) { p.PacketID = id }

func (p *UnsubscribePacket) EncodeVariableHeaders(w io.Writer) error {
	if err := ValidatePacketID(p.PacketID); err != nil {
		return wrapEncode(UNSUBSCRIBE, err)
	}
	return wrapEncode(UNSUBSCRIBE, WriteU16(w, p.PacketID))
}

func (p *UnsubscribePacket) EncodedVariableHeadersLength() uint32 { return 2 }

func (p *UnsubscribePacket) EncodePayload(w io.Writer) error {
	if len(p.TopicFilters) == 0 {
		return wrapEncode(UNSUBSCRIBE, ErrEmptyUnsubscribeList)
	}
	for _, f := range p.TopicFilters {
		if err := ValidateTopicFilter(f); err != nil {
			return wrapEncode(UNSUBSCRIBE, err)
		}
		if err := WriteString(w, f); err != nil {
			return wrapEncode(UNSUBSCRIBE, err)
		}
	}
	return nil
}

func (p *UnsubscribePacket) EncodedPayloadLength() uint32 { return p.payloadLength() }

func DecodeUnsubscribePacket(r io.Reader, fh FixedHeader) (*UnsubscribePacket, error) {
	packetID, err := ReadU16(r)
	if err != nil {
		return nil, wrapDecode(UNSUBSCRIBE, err)
	}
	if err := ValidatePacketID(packetID); err != nil {
		return nil, wrapDecode(UNSUBSCRIBE, err)
	}

	cr := &countingReader{r: r, n: 2}
	var filters []string
	for cr.n < fh.RemainingLength {
		f, err := ReadString(cr)
		if err != nil {
			return nil, wrapDecode(UNSUBSCRIBE, err)
		}
		if err := ValidateTopicFilter(f); err != nil {
			return nil, wrapDecode(UNSUBSCRIBE, err)
		}
		filters = append(filters, f)
	}
	if cr.n != fh.RemainingLength {
		return nil, wrapDecode(UNSUBSCRIBE, ErrPacketOverread)
	}
	if len(filters) == 0 {
		return nil, wrapDecode(UNSUBSCRIBE, ErrEmptyUnsubscribeList)
	}

	return &UnsubscribePacket{FH: fh, PacketID: packetID, TopicFilters: filters}, nil
}
