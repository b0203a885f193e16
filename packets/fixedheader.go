// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// FixedHeader contains the values of the fixed header portion of the MQTT packet.
type FixedHeader struct {

	// Type is the type of the packet (PUBLISH, SUBSCRIBE, etc) from bits 7 - 4 (byte 1).
	Type byte

	// Dup indicates if the packet is a duplicate.
	Dup bool

	// Qos byte indicates the quality of service expected.
	Qos byte

	// Retain indicates whether the message should be retained.
	Retain bool

	// Remaining is the number of remaining bytes in the payload.
	Remaining int
}

// Decode extracts the specification bits from the header byte.
func (fh *FixedHeader) Decode(headerByte byte) error {
	fh.Type = headerByte >> 4
	if fh.Type == Reserved {
		return ErrMalformedPacketType
	}

	// @SPEC [MQTT-2.2.2-1]
	// Where a flag bit is marked as "Reserved" it is reserved for future use
	// and MUST be set to the value listed in that table.
	switch fh.Type {
	case Publish:
		fh.Dup = (headerByte>>3)&0x01 > 0
		fh.Qos = (headerByte >> 1) & 0x03
		fh.Retain = headerByte&0x01 > 0
		if fh.Qos == 3 {
			return ErrProtocolViolationQosOutOfRange // [MQTT-3.3.1-4]
		}

	case Pubrel, Subscribe, Unsubscribe:
		// These types carry a fixed flag nibble of 0b0010.
		if headerByte&0x0F != 0x02 {
			return ErrMalformedFlags
		}
		fh.Qos = 1

	default:
		// [MQTT-2.2.2-2]
		// If invalid flags are received, the receiver MUST close the Network Connection.
		if headerByte&0x0F != 0 {
			return ErrMalformedFlags
		}
	}

	return nil
}

// Encode writes the fixed header byte and remaining length into buf at
// offset and returns the offset of the next unwritten byte.
func (fh *FixedHeader) Encode(buf []byte, offset int) int {
	buf[offset] = fh.Type<<4 | encodeBool(fh.Dup)<<3 | fh.Qos<<1 | encodeBool(fh.Retain)
	return encodeLength(buf, offset+1, fh.Remaining)
}

// Size returns the encoded size of the fixed header, which varies with the
// remaining length value.
func (fh *FixedHeader) Size() int {
	return 1 + lengthSize(fh.Remaining)
}

// ExpectRemaining asserts the remaining length announced by the header,
// for callers that know the exact size the next body must have.
func (fh *FixedHeader) ExpectRemaining(n int) error {
	if fh.Remaining != n {
		return ErrUnexpectedLength
	}
	return nil
}
