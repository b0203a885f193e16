// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// ConnackPacket contains the values of an MQTT CONNACK packet. ReturnCode
// holds the v3.1.1 return code or the v5 reason code depending on
// ProtocolVersion.
type ConnackPacket struct {
	FixedHeader

	ProtocolVersion byte
	SessionPresent  bool
	ReturnCode      byte
	Properties      Properties // MQTT 5 only
}

// maxV3ReturnCode is the highest defined v3.1.1 connack return code
// (0x05, not authorised).
const maxV3ReturnCode = 0x05

// Decode extracts the data values from the packet.
func (pk *ConnackPacket) Decode(buf []byte) error {
	var offset int
	var err error

	// The acknowledge flags byte only uses bit 0; the rest are reserved.
	flags, offset, err := decodeByte(buf, offset)
	if err != nil {
		return ErrMalformedSessionPresent
	}
	if flags > 1 {
		return ErrMalformedSessionPresent // [MQTT-3.2.2-1]
	}
	pk.SessionPresent = flags == 1

	pk.ReturnCode, offset, err = decodeByte(buf, offset)
	if err != nil {
		return ErrMalformedReturnCode
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Connack, buf, offset)
		if err != nil {
			return err
		}
	} else {
		if pk.ReturnCode > maxV3ReturnCode {
			return ErrMalformedReturnCode
		}
		// A rejected connection cannot resume a session. [MQTT-3.2.2-4]
		if pk.SessionPresent && pk.ReturnCode != 0 {
			return ErrMalformedSessionPresent
		}
	}

	if offset != len(buf) {
		return ErrMalformedPacketLength
	}

	return nil
}

// Validate ensures the packet values can be legally encoded.
func (pk *ConnackPacket) Validate() error {
	if pk.ProtocolVersion != Version5 {
		if pk.ReturnCode > maxV3ReturnCode {
			return ErrMalformedReturnCode
		}
		if pk.SessionPresent && pk.ReturnCode != 0 {
			return ErrMalformedSessionPresent
		}
	}

	return pk.Properties.Validate(Connack)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *ConnackPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := 2
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Connack)
		remaining += lengthSize(n) + n
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *ConnackPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Connack
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	buf[offset] = encodeBool(pk.SessionPresent)
	buf[offset+1] = pk.ReturnCode
	offset += 2

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Connack, buf, offset)
	}

	return offset, nil
}
