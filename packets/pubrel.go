// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// PubrelPacket contains the values of an MQTT PUBREL packet. Its fixed
// header carries the mandatory 0b0010 flag nibble. [MQTT-3.6.1-1]
type PubrelPacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	ReasonCode      byte       // MQTT 5 only
	Properties      Properties // MQTT 5 only
}

// Decode extracts the data values from the packet.
func (pk *PubrelPacket) Decode(buf []byte) error {
	ack, err := decodeAck(Pubrel, pk.ProtocolVersion, buf, &pk.Properties)
	if err != nil {
		return err
	}
	pk.PacketID = ack.PacketID
	pk.ReasonCode = ack.ReasonCode
	return nil
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *PubrelPacket) Size() (int, int, error) {
	ack := ackDetails{PacketID: pk.PacketID, ReasonCode: pk.ReasonCode}
	err := validateAck(Pubrel, pk.ProtocolVersion, ack, &pk.Properties)
	if err != nil {
		return 0, 0, err
	}
	remaining := ackSize(Pubrel, pk.ProtocolVersion, ack, &pk.Properties)
	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *PubrelPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Qos = 1
	ack := ackDetails{PacketID: pk.PacketID, ReasonCode: pk.ReasonCode}
	return encodeAck(Pubrel, pk.ProtocolVersion, &pk.FixedHeader, ack, &pk.Properties, remaining, buf), nil
}
