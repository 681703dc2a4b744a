package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_PublishFields(t *testing.T) {
	vp := NewVariablePacket(NewPublishPacket("a/b", QoS1, true, false, 4, []byte("hello")))
	snap := Trace(vp)

	assert.Equal(t, "PUBLISH", snap.Type)
	assert.Equal(t, "a/b", snap.Fields["topic"])
	assert.Equal(t, "QoS1", snap.Fields["qos"])
	assert.Equal(t, true, snap.Fields["dup"])
	assert.Equal(t, 5, snap.Fields["payload_len"])
}

func TestTrace_ConnectFields(t *testing.T) {
	vp := NewVariablePacket(NewConnectPacket("MQTT", "client-1"))
	snap := Trace(vp)

	assert.Equal(t, "CONNECT", snap.Type)
	assert.Equal(t, "client-1", snap.Fields["client_id"])
	assert.Equal(t, true, snap.Fields["clean_session"])
}

func TestEncodeDecodeTrace_RoundTrip(t *testing.T) {
	vp := NewVariablePacket(NewSubscribePacket(1, []Subscription{{TopicFilter: "x", QoS: QoS0}}))
	snap := Trace(vp)

	data, err := EncodeTrace(snap)
	require.NoError(t, err)

	decoded, err := DecodeTrace(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Type, decoded.Type)
	assert.Equal(t, snap.RemainingLength, decoded.RemainingLength)
}
