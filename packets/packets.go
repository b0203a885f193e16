// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// Protocol versions understood by the codec, keyed by the CONNECT protocol
// level byte.
const (
	Version311 byte = 4 // MQTT 3.1.1
	Version5   byte = 5 // MQTT 5.0
)

// All of the valid packet types and their packet identifier.
const (
	Reserved    byte = iota // 0 : invalid on the wire
	Connect                 // 1
	Connack                 // 2
	Publish                 // 3
	Puback                  // 4
	Pubrec                  // 5
	Pubrel                  // 6
	Pubcomp                 // 7
	Subscribe               // 8
	Suback                  // 9
	Unsubscribe             // 10
	Unsuback                // 11
	Pingreq                 // 12
	Pingresp                // 13
	Disconnect              // 14
	Auth                    // 15 : MQTT 5 only

	WillProperties byte = 99 // not a packet type; identifies the will properties set
)

// Names is a map that provides human-readable names for the different
// MQTT packet types based on their ids.
var Names = map[byte]string{
	0:  "RESERVED",
	1:  "CONNECT",
	2:  "CONNACK",
	3:  "PUBLISH",
	4:  "PUBACK",
	5:  "PUBREC",
	6:  "PUBREL",
	7:  "PUBCOMP",
	8:  "SUBSCRIBE",
	9:  "SUBACK",
	10: "UNSUBSCRIBE",
	11: "UNSUBACK",
	12: "PINGREQ",
	13: "PINGRESP",
	14: "DISCONNECT",
	15: "AUTH",
}

// Packet is the base interface implemented by all MQTT control packets.
type Packet interface {

	// Decode decodes a packet body (the bytes after the fixed header) into
	// the packet struct, validating every field. Decoded string and byte
	// slice fields reference the input buffer and must not outlive it.
	Decode(buf []byte) error

	// Size validates the packet values and returns the remaining length and
	// the total number of encoded bytes including the fixed header.
	Size() (remaining, total int, err error)

	// Encode writes the full packet into buf and returns the number of
	// bytes written. The buffer must hold at least the total from Size.
	Encode(buf []byte) (int, error)
}

// NewFixedHeader returns a fresh fixed header for a given packet type, with
// the mandatory flag bits pre-set for the types that require them.
func NewFixedHeader(packetType byte) FixedHeader {
	fh := FixedHeader{
		Type: packetType,
	}
	if packetType == Pubrel || packetType == Subscribe || packetType == Unsubscribe {
		fh.Qos = 1
	}

	return fh
}

// NewPacket returns an empty packet struct of the specified type and
// protocol version, with its fixed header pre-filled.
func NewPacket(packetType, version byte) Packet {
	fh := NewFixedHeader(packetType)
	switch packetType {
	case Connect:
		return &ConnectPacket{FixedHeader: fh}
	case Connack:
		return &ConnackPacket{FixedHeader: fh, ProtocolVersion: version}
	case Publish:
		return &PublishPacket{FixedHeader: fh, ProtocolVersion: version}
	case Puback:
		return &PubackPacket{FixedHeader: fh, ProtocolVersion: version}
	case Pubrec:
		return &PubrecPacket{FixedHeader: fh, ProtocolVersion: version}
	case Pubrel:
		return &PubrelPacket{FixedHeader: fh, ProtocolVersion: version}
	case Pubcomp:
		return &PubcompPacket{FixedHeader: fh, ProtocolVersion: version}
	case Subscribe:
		return &SubscribePacket{FixedHeader: fh, ProtocolVersion: version}
	case Suback:
		return &SubackPacket{FixedHeader: fh, ProtocolVersion: version}
	case Unsubscribe:
		return &UnsubscribePacket{FixedHeader: fh, ProtocolVersion: version}
	case Unsuback:
		return &UnsubackPacket{FixedHeader: fh, ProtocolVersion: version}
	case Pingreq:
		return &PingreqPacket{FixedHeader: fh}
	case Pingresp:
		return &PingrespPacket{FixedHeader: fh}
	case Disconnect:
		return &DisconnectPacket{FixedHeader: fh, ProtocolVersion: version}
	case Auth:
		return &AuthPacket{FixedHeader: fh}
	}

	return nil
}
