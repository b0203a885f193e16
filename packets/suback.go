// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// validSubackCodes lists the legal SUBACK result bytes per protocol version.
var validSubackCodes = map[byte]map[byte]byte{
	Version311: {0x00: 1, 0x01: 1, 0x02: 1, 0x80: 1},
	Version5:   {0x00: 1, 0x01: 1, 0x02: 1, 0x80: 1, 0x83: 1, 0x87: 1, 0x8F: 1, 0x91: 1, 0x97: 1, 0x9E: 1, 0xA1: 1, 0xA2: 1},
}

// SubackPacket contains the values of an MQTT SUBACK packet.
type SubackPacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	Properties      Properties // MQTT 5 only
	ReasonCodes     []byte
}

// Decode extracts the data values from the packet.
func (pk *SubackPacket) Decode(buf []byte) error {
	var offset int
	var err error

	pk.PacketID, offset, err = decodePacketID(buf, 0)
	if err != nil {
		return err
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Suback, buf, offset)
		if err != nil {
			return err
		}
	}

	// One result byte per subscription in the matching SUBSCRIBE; at least
	// one must be present. [MQTT-3.9.3-1] [MQTT-3.8.4-6]
	pk.ReasonCodes = buf[offset:]
	if len(pk.ReasonCodes) == 0 {
		return ErrProtocolViolationNoReasonCodes
	}
	for _, code := range pk.ReasonCodes {
		if validSubackCodes[pk.protocol()][code] == 0 {
			return ErrMalformedReasonCode
		}
	}

	return nil
}

// protocol normalises the version byte so unset defaults to v3.1.1.
func (pk *SubackPacket) protocol() byte {
	if pk.ProtocolVersion == Version5 {
		return Version5
	}
	return Version311
}

// Validate ensures the packet values can be legally encoded.
func (pk *SubackPacket) Validate() error {
	if pk.PacketID == 0 {
		return ErrProtocolViolationNoPacketID
	}
	if len(pk.ReasonCodes) == 0 {
		return ErrProtocolViolationNoReasonCodes
	}
	for _, code := range pk.ReasonCodes {
		if validSubackCodes[pk.protocol()][code] == 0 {
			return ErrMalformedReasonCode
		}
	}

	return pk.Properties.Validate(Suback)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *SubackPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := 2 + len(pk.ReasonCodes)
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Suback)
		remaining += lengthSize(n) + n
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *SubackPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Suback
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeUint16(buf, offset, pk.PacketID)

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Suback, buf, offset)
	}

	offset += copy(buf[offset:], pk.ReasonCodes)

	return offset, nil
}
