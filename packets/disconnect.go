// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// validDisconnectCodes lists the legal v5 DISCONNECT reason bytes from
// either end of the connection.
var validDisconnectCodes = map[byte]byte{
	0x00: 1, 0x04: 1, 0x80: 1, 0x81: 1, 0x82: 1, 0x83: 1, 0x87: 1, 0x89: 1,
	0x8B: 1, 0x8D: 1, 0x8E: 1, 0x8F: 1, 0x93: 1, 0x94: 1, 0x95: 1, 0x96: 1,
	0x97: 1, 0x98: 1, 0x99: 1, 0x9A: 1, 0x9B: 1, 0x9C: 1, 0x9D: 1, 0x9E: 1,
	0x9F: 1, 0xA0: 1, 0xA1: 1, 0xA2: 1,
}

// DisconnectPacket contains the values of an MQTT DISCONNECT packet. The
// v3.1.1 form has no body; the v5 form optionally carries a reason code and
// properties, where an empty body means a normal disconnection.
type DisconnectPacket struct {
	FixedHeader

	ProtocolVersion byte
	ReasonCode      byte       // MQTT 5 only
	Properties      Properties // MQTT 5 only
}

// Decode extracts the data values from the packet.
func (pk *DisconnectPacket) Decode(buf []byte) error {
	if pk.ProtocolVersion != Version5 || len(buf) == 0 {
		if len(buf) != 0 {
			return ErrMalformedPacketLength
		}
		return nil
	}

	var offset int
	var err error

	pk.ReasonCode, offset, err = decodeByte(buf, 0)
	if err != nil {
		return ErrMalformedReasonCode
	}
	if validDisconnectCodes[pk.ReasonCode] == 0 {
		return ErrProtocolViolationInvalidReason
	}

	if offset < len(buf) {
		offset, err = pk.Properties.Decode(Disconnect, buf, offset)
		if err != nil {
			return err
		}
	}

	if offset != len(buf) {
		return ErrMalformedPacketLength
	}

	return nil
}

// Validate ensures the packet values can be legally encoded.
func (pk *DisconnectPacket) Validate() error {
	if pk.ProtocolVersion == Version5 {
		if validDisconnectCodes[pk.ReasonCode] == 0 {
			return ErrProtocolViolationInvalidReason
		}
		return pk.Properties.Validate(Disconnect)
	}
	if pk.ReasonCode != 0 {
		return ErrProtocolViolationInvalidReason
	}
	return nil
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *DisconnectPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	var remaining int
	if pk.ProtocolVersion == Version5 {
		if n := pk.Properties.Size(Disconnect); n > 0 {
			remaining = 1 + lengthSize(n) + n
		} else if pk.ReasonCode != 0 {
			remaining = 1
		}
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *DisconnectPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Disconnect
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	if remaining > 0 {
		buf[offset] = pk.ReasonCode
		offset++
		if remaining > 1 {
			offset = pk.Properties.Encode(Disconnect, buf, offset)
		}
	}

	return offset, nil
}
