// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// PublishPacket contains the values of an MQTT PUBLISH packet. The payload
// is opaque bytes; it is never validated as UTF-8.
type PublishPacket struct {
	FixedHeader

	ProtocolVersion byte
	TopicName       string
	PacketID        uint16
	Properties      Properties // MQTT 5 only
	Payload         []byte
}

// Decode extracts the data values from the packet.
func (pk *PublishPacket) Decode(buf []byte) error {
	var offset int
	var err error

	pk.TopicName, offset, err = decodeString(buf, 0)
	if err != nil {
		return ErrMalformedTopic
	}
	err = ValidateTopic(pk.TopicName) // [MQTT-3.3.2-2]
	if err != nil {
		return err
	}

	// [MQTT-2.3.1-1] A QoS > 0 PUBLISH carries a non-zero packet id;
	// [MQTT-2.3.1-5] a QoS 0 PUBLISH carries none.
	if pk.Qos > 0 {
		pk.PacketID, offset, err = decodePacketID(buf, offset)
		if err != nil {
			return err
		}
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Publish, buf, offset)
		if err != nil {
			return err
		}
	}

	pk.Payload = buf[offset:]

	return nil
}

// Copy creates a new instance of PublishPacket with detached copies of the
// payload and topic, for callers that must outlive the decode buffer.
func (pk *PublishPacket) Copy() *PublishPacket {
	cc := &PublishPacket{
		FixedHeader:     NewFixedHeader(Publish),
		ProtocolVersion: pk.ProtocolVersion,
		TopicName:       string(append([]byte(nil), pk.TopicName...)),
	}
	if pk.Payload != nil {
		cc.Payload = append([]byte(nil), pk.Payload...)
	}

	return cc
}

// Validate ensures the packet values can be legally encoded.
func (pk *PublishPacket) Validate() error {
	if !validateQoS(pk.Qos) {
		return ErrProtocolViolationQosOutOfRange
	}

	// [MQTT-2.3.1-1]
	if pk.Qos > 0 && pk.PacketID == 0 {
		return ErrProtocolViolationNoPacketID
	}

	// [MQTT-2.3.1-5]
	if pk.Qos == 0 && pk.PacketID > 0 {
		return ErrProtocolViolationSurplusPacketID
	}

	err := validateString(pk.TopicName)
	if err != nil {
		return ErrMalformedTopic
	}
	err = ValidateTopic(pk.TopicName)
	if err != nil {
		return err
	}

	return pk.Properties.Validate(Publish)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *PublishPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := stringSize(len(pk.TopicName)) + len(pk.Payload)
	if pk.Qos > 0 {
		remaining += 2
	}
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Publish)
		remaining += lengthSize(n) + n
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *PublishPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Publish
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeString(buf, offset, pk.TopicName)

	if pk.Qos > 0 {
		offset = encodeUint16(buf, offset, pk.PacketID)
	}

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Publish, buf, offset)
	}

	offset += copy(buf[offset:], pk.Payload)

	return offset, nil
}
