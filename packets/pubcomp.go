// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// PubcompPacket contains the values of an MQTT PUBCOMP packet.
type PubcompPacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	ReasonCode      byte       // MQTT 5 only
	Properties      Properties // MQTT 5 only
}

// Decode extracts the data values from the packet.
func (pk *PubcompPacket) Decode(buf []byte) error {
	ack, err := decodeAck(Pubcomp, pk.ProtocolVersion, buf, &pk.Properties)
	if err != nil {
		return err
	}
	pk.PacketID = ack.PacketID
	pk.ReasonCode = ack.ReasonCode
	return nil
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *PubcompPacket) Size() (int, int, error) {
	ack := ackDetails{PacketID: pk.PacketID, ReasonCode: pk.ReasonCode}
	err := validateAck(Pubcomp, pk.ProtocolVersion, ack, &pk.Properties)
	if err != nil {
		return 0, 0, err
	}
	remaining := ackSize(Pubcomp, pk.ProtocolVersion, ack, &pk.Properties)
	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *PubcompPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	ack := ackDetails{PacketID: pk.PacketID, ReasonCode: pk.ReasonCode}
	return encodeAck(Pubcomp, pk.ProtocolVersion, &pk.FixedHeader, ack, &pk.Properties, remaining, buf), nil
}
