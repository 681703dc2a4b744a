package encoding

import "github.com/fxamacker/cbor/v2"

// TraceSnapshot is a debug-oriented, in-memory view of a decoded packet's
// structured fields. It is not the wire format: encoding a snapshot and
// decoding it back does not reconstruct a VariablePacket, and nothing here
// is written to disk. It exists so a caller can log or compare "what the
// codec actually parsed" without hand-walking every variant's fields.
type TraceSnapshot struct {
	Type            string `cbor:"type"`
	RemainingLength uint32 `cbor:"remaining_length"`
	Fields          map[string]any `cbor:"fields"`
}

// Trace builds a TraceSnapshot of vp's fixed header plus a handful of
// variant-specific fields useful for debugging (topic, packet id, return
// code, ...).
func Trace(vp VariablePacket) TraceSnapshot {
	fh := vp.Packet().FixedHeader()
	snap := TraceSnapshot{
		Type:            fh.Type.String(),
		RemainingLength: fh.RemainingLength,
		Fields:          map[string]any{},
	}

	switch vp.Type {
	case CONNECT:
		snap.Fields["client_id"] = vp.Connect.ClientID
		snap.Fields["clean_session"] = vp.Connect.Flags.CleanSession
		snap.Fields["keep_alive"] = vp.Connect.KeepAlive
	case CONNACK:
		snap.Fields["session_present"] = vp.Connack.SessionPresent
		snap.Fields["return_code"] = vp.Connack.ReturnCode.String()
	case PUBLISH:
		snap.Fields["topic"] = vp.Publish.TopicName
		snap.Fields["qos"] = fh.QoS.String()
		snap.Fields["dup"] = fh.DUP
		snap.Fields["retain"] = fh.Retain
		snap.Fields["payload_len"] = len(vp.Publish.Payload)
	case SUBSCRIBE:
		snap.Fields["packet_id"] = vp.Subscribe.PacketID
		snap.Fields["count"] = len(vp.Subscribe.Subscriptions)
	case UNSUBSCRIBE:
		snap.Fields["packet_id"] = vp.Unsubscribe.PacketID
		snap.Fields["count"] = len(vp.Unsubscribe.TopicFilters)
	}

	return snap
}

// EncodeTrace CBOR-encodes a TraceSnapshot for debug capture (a log sink, a
// diagnostics endpoint) — never for wire transmission.
func EncodeTrace(snap TraceSnapshot) ([]byte, error) {
	return cbor.Marshal(snap)
}

// DecodeTrace reverses EncodeTrace, for reading back a captured snapshot.
func DecodeTrace(data []byte) (TraceSnapshot, error) {
	var snap TraceSnapshot
	err := cbor.Unmarshal(data, &snap)
	return snap, err
}
