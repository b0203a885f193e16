// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// validUnsubackCodes lists the legal v5 UNSUBACK reason bytes.
var validUnsubackCodes = map[byte]byte{
	0x00: 1, 0x11: 1, 0x80: 1, 0x83: 1, 0x87: 1, 0x8F: 1, 0x91: 1,
}

// UnsubackPacket contains the values of an MQTT UNSUBACK packet. The v3.1.1
// form is a bare packet id; the v5 form adds properties and one reason code
// per filter of the matching UNSUBSCRIBE.
type UnsubackPacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	Properties      Properties // MQTT 5 only
	ReasonCodes     []byte     // MQTT 5 only
}

// Decode extracts the data values from the packet.
func (pk *UnsubackPacket) Decode(buf []byte) error {
	var offset int
	var err error

	pk.PacketID, offset, err = decodePacketID(buf, 0)
	if err != nil {
		return err
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Unsuback, buf, offset)
		if err != nil {
			return err
		}

		pk.ReasonCodes = buf[offset:]
		if len(pk.ReasonCodes) == 0 {
			return ErrProtocolViolationNoReasonCodes // [MQTT-3.11.3]
		}
		for _, code := range pk.ReasonCodes {
			if validUnsubackCodes[code] == 0 {
				return ErrMalformedReasonCode
			}
		}

		return nil
	}

	if offset != len(buf) {
		return ErrMalformedPacketLength
	}

	return nil
}

// Validate ensures the packet values can be legally encoded.
func (pk *UnsubackPacket) Validate() error {
	if pk.PacketID == 0 {
		return ErrProtocolViolationNoPacketID
	}

	if pk.ProtocolVersion == Version5 {
		if len(pk.ReasonCodes) == 0 {
			return ErrProtocolViolationNoReasonCodes
		}
		for _, code := range pk.ReasonCodes {
			if validUnsubackCodes[code] == 0 {
				return ErrMalformedReasonCode
			}
		}
		return pk.Properties.Validate(Unsuback)
	}

	if len(pk.ReasonCodes) > 0 {
		return ErrMalformedReasonCode
	}

	return nil
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *UnsubackPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := 2
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Unsuback)
		remaining += lengthSize(n) + n + len(pk.ReasonCodes)
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *UnsubackPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Unsuback
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeUint16(buf, offset, pk.PacketID)

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Unsuback, buf, offset)
		offset += copy(buf[offset:], pk.ReasonCodes)
	}

	return offset, nil
}
