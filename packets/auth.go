// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// validAuthCodes lists the legal AUTH reason bytes. [MQTT-3.15.2-1]
var validAuthCodes = map[byte]byte{
	0x00: 1, // success
	0x18: 1, // continue authentication
	0x19: 1, // re-authenticate
}

// AuthPacket contains the values of an MQTT 5 AUTH packet. The packet does
// not exist in v3.1.1; a v3.1.1 stream yields an error for type 15.
type AuthPacket struct {
	FixedHeader

	ReasonCode byte
	Properties Properties
}

// Decode extracts the data values from the packet.
func (pk *AuthPacket) Decode(buf []byte) error {
	// An empty body is shorthand for reason 0x00 (success).
	if len(buf) == 0 {
		return nil
	}

	var offset int
	var err error

	pk.ReasonCode, offset, err = decodeByte(buf, 0)
	if err != nil {
		return ErrMalformedReasonCode
	}
	if validAuthCodes[pk.ReasonCode] == 0 {
		return ErrProtocolViolationInvalidReason
	}

	if offset < len(buf) {
		offset, err = pk.Properties.Decode(Auth, buf, offset)
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
func (pk *AuthPacket) Validate() error {
	if validAuthCodes[pk.ReasonCode] == 0 {
		return ErrProtocolViolationInvalidReason
	}
	return pk.Properties.Validate(Auth)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *AuthPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	var remaining int
	if n := pk.Properties.Size(Auth); n > 0 {
		remaining = 1 + lengthSize(n) + n
	} else if pk.ReasonCode != 0 {
		remaining = 1
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *AuthPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Auth
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	if remaining > 0 {
		buf[offset] = pk.ReasonCode
		offset++
		if remaining > 1 {
			offset = pk.Properties.Encode(Auth, buf, offset)
		}
	}

	return offset, nil
}
