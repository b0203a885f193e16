// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// The PUBACK, PUBREC, PUBREL and PUBCOMP packets share one body shape: a
// packet id, and for v5 an optional reason code and property section. The
// helpers here hold that shape once; each packet file owns its type.

// validAckReasonCodes lists the legal v5 reason codes per acknowledgement
// packet type.
var validAckReasonCodes = map[byte]map[byte]byte{
	Puback:  {0x00: 1, 0x10: 1, 0x80: 1, 0x83: 1, 0x87: 1, 0x90: 1, 0x91: 1, 0x97: 1, 0x99: 1},
	Pubrec:  {0x00: 1, 0x10: 1, 0x80: 1, 0x83: 1, 0x87: 1, 0x90: 1, 0x91: 1, 0x97: 1, 0x99: 1},
	Pubrel:  {0x00: 1, 0x92: 1},
	Pubcomp: {0x00: 1, 0x92: 1},
}

// ackDetails is the shared decoded form of an acknowledgement body.
type ackDetails struct {
	PacketID   uint16
	ReasonCode byte
}

// decodeAck decodes an acknowledgement body for the given packet type. For
// v3.1.1 the body is exactly one packet id; for v5 the reason code and
// property section are each optional when everything after them is empty.
// [MQTT-3.4.2]
func decodeAck(pkt, version byte, buf []byte, props *Properties) (ackDetails, error) {
	var ack ackDetails
	var err error

	var offset int
	ack.PacketID, offset, err = decodePacketID(buf, 0)
	if err != nil {
		return ack, err
	}

	if version == Version5 && offset < len(buf) {
		ack.ReasonCode, offset, err = decodeByte(buf, offset)
		if err != nil {
			return ack, ErrMalformedReasonCode
		}
		if validAckReasonCodes[pkt][ack.ReasonCode] == 0 {
			return ack, ErrProtocolViolationInvalidReason
		}

		if offset < len(buf) {
			offset, err = props.Decode(pkt, buf, offset)
			if err != nil {
				return ack, err
			}
		}
	}

	if offset != len(buf) {
		return ack, ErrMalformedPacketLength
	}

	return ack, nil
}

// validateAck checks the encoder-side constraints of an acknowledgement.
func validateAck(pkt, version byte, ack ackDetails, props *Properties) error {
	if ack.PacketID == 0 {
		return ErrProtocolViolationNoPacketID
	}
	if version == Version5 {
		if validAckReasonCodes[pkt][ack.ReasonCode] == 0 {
			return ErrProtocolViolationInvalidReason
		}
		return props.Validate(pkt)
	}
	if ack.ReasonCode != 0 {
		return ErrProtocolViolationInvalidReason
	}
	return nil
}

// ackSize returns the remaining length of an acknowledgement body. A v5 ack
// with a zero reason code and no properties shrinks to the two-byte form.
func ackSize(pkt, version byte, ack ackDetails, props *Properties) int {
	remaining := 2
	if version == Version5 {
		if n := props.Size(pkt); n > 0 {
			remaining += 1 + lengthSize(n) + n
		} else if ack.ReasonCode != 0 {
			remaining++
		}
	}
	return remaining
}

// encodeAck writes an acknowledgement packet into buf and returns the
// number of bytes written.
func encodeAck(pkt, version byte, fh *FixedHeader, ack ackDetails, props *Properties, remaining int, buf []byte) int {
	fh.Type = pkt
	fh.Remaining = remaining

	offset := fh.Encode(buf, 0)
	offset = encodeUint16(buf, offset, ack.PacketID)

	if version == Version5 && remaining > 2 {
		buf[offset] = ack.ReasonCode
		offset++
		if remaining > 3 {
			offset = props.Encode(pkt, buf, offset)
		}
	}

	return offset
}
