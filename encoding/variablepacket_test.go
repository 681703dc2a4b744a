package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVariablePacket_AllVariants(t *testing.T) {
	packets := []Packet{
		NewConnectPacket("MQTT", "c"),
		NewConnackPacket(false, ConnectAccepted),
		NewPublishPacket("t", QoS0, false, false, 0, nil),
		NewPubackPacket(1),
		NewPubrecPacket(1),
		NewPubrelPacket(1),
		NewPubcompPacket(1),
		NewSubscribePacket(1, []Subscription{{TopicFilter: "x", QoS: QoS0}}),
		NewSubackPacket(1, []SubscribeReturnCode{SubscribeMaximumQoS0}),
		NewUnsubscribePacket(1, []string{"x"}),
		NewUnsubackPacket(1),
		NewPingreqPacket(),
		NewPingrespPacket(),
		NewDisconnectPacket(),
	}

	for _, p := range packets {
		vp := NewVariablePacket(p)
		assert.Same(t, p, vp.Packet())
		assert.NotZero(t, vp.Type)
	}
}

func TestNewVariablePacket_PanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() {
		NewVariablePacket(&unknownPacket{})
	})
}

// unknownPacket is a Packet implementation that is deliberately not one of
// the 14 known variants, for exercising NewVariablePacket's closed switch.
type unknownPacket struct{}

func (unknownPacket) FixedHeader() FixedHeader                   { return FixedHeader{} }
func (unknownPacket) EncodeVariableHeaders(w io.Writer) error     { return nil }
func (unknownPacket) EncodedVariableHeadersLength() uint32        { return 0 }
func (unknownPacket) EncodePayload(w io.Writer) error             { return nil }
func (unknownPacket) EncodedPayloadLength() uint32                { return 0 }

func TestDecode_RoundTripsAllVariants(t *testing.T) {
	packets := []VariablePacket{
		NewVariablePacket(NewConnectPacket("MQTT", "c")),
		NewVariablePacket(NewConnackPacket(true, ConnectIdentifierRejected)),
		NewVariablePacket(NewPublishPacket("a/b", QoS2, true, true, 9, []byte{1, 2, 3})),
		NewVariablePacket(NewPubackPacket(5)),
		NewVariablePacket(NewPubrecPacket(5)),
		NewVariablePacket(NewPubrelPacket(5)),
		NewVariablePacket(NewPubcompPacket(5)),
		NewVariablePacket(NewSubscribePacket(5, []Subscription{{TopicFilter: "x", QoS: QoS1}})),
		NewVariablePacket(NewSubackPacket(5, []SubscribeReturnCode{SubscribeFailure})),
		NewVariablePacket(NewUnsubscribePacket(5, []string{"x", "y"})),
		NewVariablePacket(NewUnsubackPacket(5)),
		NewVariablePacket(NewPingreqPacket()),
		NewVariablePacket(NewPingrespPacket()),
		NewVariablePacket(NewDisconnectPacket()),
	}

	for _, vp := range packets {
		t.Run(vp.Type.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, vp.Encode(&buf))

			decoded, err := Decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, vp.Type, decoded.Type)
			assert.Equal(t, vp.Packet(), decoded.Packet())
		})
	}
}

// The control type nibble is 4 bits wide and 1-14 are all assigned, so code
// 15 is the reserved high type. Decode reports it as VariablePacketErrReserved
// and, on a stream carrying more packets after the bad one, leaves the reader
// positioned so the next Decode call picks up cleanly.
func TestDecode_ReservedTypeSkipsAndContinues(t *testing.T) {
	stream := []byte{0xF0, 0x02, 0x11, 0x22, 0xC0, 0x00}
	r := bytes.NewReader(stream)

	_, err := Decode(r)
	var vpErr *VariablePacketError
	require.ErrorAs(t, err, &vpErr)
	assert.Equal(t, VariablePacketErrReserved, vpErr.Kind)
	assert.Equal(t, byte(15), vpErr.Code)
	assert.Equal(t, []byte{0x11, 0x22}, vpErr.Body)

	vp, err := Decode(r)
	require.NoError(t, err)
	assert.Equal(t, PINGREQ, vp.Type)
}

func TestDecode_ReservedType(t *testing.T) {
	stream := []byte{0x00, 0x02, 0xAA, 0xBB}
	_, err := Decode(bytes.NewReader(stream))
	var vpErr *VariablePacketError
	require.ErrorAs(t, err, &vpErr)
	assert.Equal(t, VariablePacketErrReserved, vpErr.Kind)
	assert.Equal(t, byte(0), vpErr.Code)
	assert.Equal(t, []byte{0xAA, 0xBB}, vpErr.Body)
}

func TestDecode_ReservedConnectFlagBitRejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "MQTT"))
	require.NoError(t, WriteU8(&buf, ProtocolLevel311))
	require.NoError(t, WriteU8(&buf, 0x03)) // clean_session set + reserved bit 0 set
	require.NoError(t, WriteU16(&buf, 0))
	require.NoError(t, WriteString(&buf, "abc"))

	var packet bytes.Buffer
	require.NoError(t, WriteU8(&packet, byte(CONNECT)<<4))
	require.NoError(t, WriteRemainingLength(&packet, uint32(buf.Len())))
	packet.Write(buf.Bytes())

	_, err := Decode(bytes.NewReader(packet.Bytes()))
	var vpErr *VariablePacketError
	require.ErrorAs(t, err, &vpErr)
	assert.ErrorIs(t, err, ErrInvalidReservedFlag)
}

func TestDecode_OverreadIsMalformed(t *testing.T) {
	// A PINGREQ must have remaining_length 0; claim 2 bytes of body instead.
	stream := []byte{0xC0, 0x02, 0x00, 0x00}
	_, err := Decode(bytes.NewReader(stream))
	var vpErr *VariablePacketError
	require.ErrorAs(t, err, &vpErr)
	assert.Equal(t, VariablePacketErrPacket, vpErr.Kind)
	assert.ErrorIs(t, err, ErrPacketOverread)
}

func TestDecode_ShortReadOnReservedBody(t *testing.T) {
	stream := []byte{0xF0, 0x04, 0x11}
	_, err := Decode(bytes.NewReader(stream))
	assert.Error(t, err)
}
