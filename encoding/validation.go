package encoding

import "strings"

// ValidatePacketID enforces the non-zero packet identifier rule that applies
// to QoS>0 PUBLISH and every ack-style packet (§4.4).
func ValidatePacketID(packetID uint16) error {
	if packetID == 0 {
		return ErrZeroPacketIdentifier
	}
	return nil
}

// ValidateTopicName validates a PUBLISH topic name: non-empty, no wildcard
// characters, no embedded NUL, valid UTF-8.
func ValidateTopicName(topic string) error {
	if topic == "" {
		return ErrTopicEmpty
	}
	if strings.ContainsAny(topic, "#+") {
		return ErrTopicContainsWildcard
	}
	if strings.IndexByte(topic, 0) >= 0 {
		return ErrTopicContainsNul
	}
	return ValidateUTF8String([]byte(topic))
}

// ValidateTopicFilter validates a SUBSCRIBE/UNSUBSCRIBE topic filter: '#'
// may only appear alone as the final level, '+' may only appear alone within
// a level, and no embedded NUL.
func ValidateTopicFilter(filter string) error {
	if filter == "" {
		return ErrTopicEmpty
	}
	if strings.IndexByte(filter, 0) >= 0 {
		return ErrTopicContainsNul
	}

	levels := strings.Split(filter, "/")
	for i, level := range levels {
		if strings.Contains(level, "#") && (level != "#" || i != len(levels)-1) {
			return ErrTopicFilterInvalid
		}
		if strings.Contains(level, "+") && level != "+" {
			return ErrTopicFilterInvalid
		}
	}

	return ValidateUTF8String([]byte(filter))
}

// ConnectFlags bit layout (§4.4): bit7 user_name, bit6 password, bit5
// will_retain, bits4-3 will_qos, bit2 will_flag, bit1 clean_session, bit0
// reserved (MUST be 0).
type ConnectFlags struct {
	UserName     bool
	Password     bool
	WillRetain   bool
	WillQoS      QoS
	WillFlag     bool
	CleanSession bool
}

// DecodeConnectFlags unpacks and validates a raw CONNECT flags byte.
func DecodeConnectFlags(b byte) (ConnectFlags, error) {
	if b&0x01 != 0 {
		return ConnectFlags{}, ErrInvalidReservedFlag
	}

	f := ConnectFlags{
		CleanSession: b&0x02 != 0,
		WillFlag:     b&0x04 != 0,
		WillQoS:      QoS((b & 0x18) >> 3),
		WillRetain:   b&0x20 != 0,
		Password:     b&0x40 != 0,
		UserName:     b&0x80 != 0,
	}

	if !f.WillQoS.IsValid() {
		return ConnectFlags{}, ErrInvalidQoS
	}
	if !f.WillFlag && (f.WillQoS != QoS0 || f.WillRetain) {
		return ConnectFlags{}, ErrInvalidReservedFlag
	}

	return f, nil
}

// Encode packs f into a raw CONNECT flags byte.
func (f ConnectFlags) Encode() (byte, error) {
	if !f.WillQoS.IsValid() {
		return 0, ErrInvalidQoS
	}

	var b byte
	if f.CleanSession {
		b |= 0x02
	}
	if f.WillFlag {
		b |= 0x04
		b |= byte(f.WillQoS) << 3
		if f.WillRetain {
			b |= 0x20
		}
	}
	if f.Password {
		b |= 0x40
	}
	if f.UserName {
		b |= 0x80
	}
	return b, nil
}

// DecodeConnackFlags unpacks and validates a raw CONNACK flags byte: only
// bit 0 (session present) is defined, every other bit MUST be 0.
func DecodeConnackFlags(b byte) (sessionPresent bool, err error) {
	if b&0xFE != 0 {
		return false, ErrInvalidReservedFlag
	}
	return b&0x01 != 0, nil
}

// EncodeConnackFlags packs sessionPresent into a raw CONNACK flags byte.
func EncodeConnackFlags(sessionPresent bool) byte {
	if sessionPresent {
		return 0x01
	}
	return 0x00
}

// ValidateSubscriptionQoS validates a SUBSCRIBE payload options byte: QoS
// occupies the low 2 bits, the upper 6 bits MUST be 0.
func ValidateSubscriptionQoS(options byte) (QoS, error) {
	if options&0xFC != 0 {
		return 0, ErrInvalidReservedFlag
	}
	qos := QoS(options & 0x03)
	if !qos.IsValid() {
		return 0, ErrInvalidQoS
	}
	return qos, nil
}

// ValidateRemainingLength checks length against the protocol maximum.
func ValidateRemainingLength(length uint32) error {
	if length > MaxRemainingLength {
		return ErrVariableByteIntegerTooLarge
	}
	return nil
}
