// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// Subscription is a single topic filter and its requested options within a
// SUBSCRIBE packet. The options beyond Qos only exist in MQTT 5.
type Subscription struct {
	Filter            string
	Qos               byte
	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    byte
}

// SubscribePacket contains the values of an MQTT SUBSCRIBE packet. Its fixed
// header carries the mandatory 0b0010 flag nibble. [MQTT-3.8.1-1]
type SubscribePacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	Properties      Properties // MQTT 5 only
	Filters         []Subscription
}

// decodeSubOptions unpacks a subscription options byte.
func (pk *SubscribePacket) decodeSubOptions(b byte) (Subscription, error) {
	var sub Subscription
	sub.Qos = b & 0x03

	if pk.ProtocolVersion == Version5 {
		sub.NoLocal = b&0x04 > 0
		sub.RetainAsPublished = b&0x08 > 0
		sub.RetainHandling = (b >> 4) & 0x03
		if sub.RetainHandling == 3 {
			return sub, ErrMalformedFlags // [MQTT-3.8.3-5]
		}
		if b&0xC0 != 0 {
			return sub, ErrProtocolViolationReservedBit // [MQTT-3.8.3-5]
		}
	} else if b&0xFC != 0 {
		// v3.1.1 reserves everything above the QoS bits. [MQTT-3-8.3-4]
		return sub, ErrMalformedQos
	}

	if sub.Qos > 2 {
		return sub, ErrProtocolViolationQosOutOfRange
	}

	return sub, nil
}

// encodeSubOptions packs a subscription options byte.
func (pk *SubscribePacket) encodeSubOptions(sub Subscription) byte {
	b := sub.Qos
	if pk.ProtocolVersion == Version5 {
		b |= encodeBool(sub.NoLocal)<<2 |
			encodeBool(sub.RetainAsPublished)<<3 |
			sub.RetainHandling<<4
	}
	return b
}

// Decode extracts the data values from the packet.
func (pk *SubscribePacket) Decode(buf []byte) error {
	var offset int
	var err error

	pk.PacketID, offset, err = decodePacketID(buf, 0)
	if err != nil {
		return err
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Subscribe, buf, offset)
		if err != nil {
			return err
		}
	}

	// Keep decoding (filter, options) pairs until there's no space left.
	for offset < len(buf) {
		var filter string
		filter, offset, err = decodeString(buf, offset)
		if err != nil {
			return ErrMalformedTopic
		}
		err = ValidateFilter(filter)
		if err != nil {
			return err
		}

		var b byte
		b, offset, err = decodeByte(buf, offset)
		if err != nil {
			return ErrMalformedQos
		}
		sub, err := pk.decodeSubOptions(b)
		if err != nil {
			return err
		}
		sub.Filter = filter

		pk.Filters = append(pk.Filters, sub)
	}

	// [MQTT-3.8.3-3] A SUBSCRIBE packet must carry at least one filter.
	if len(pk.Filters) == 0 {
		return ErrProtocolViolationNoFilters
	}

	return nil
}

// Validate ensures the packet values can be legally encoded.
func (pk *SubscribePacket) Validate() error {
	if pk.PacketID == 0 {
		return ErrProtocolViolationNoPacketID // [MQTT-2.3.1-1]
	}
	if len(pk.Filters) == 0 {
		return ErrProtocolViolationNoFilters
	}

	for _, sub := range pk.Filters {
		if err := validateString(sub.Filter); err != nil {
			return ErrMalformedTopic
		}
		if err := ValidateFilter(sub.Filter); err != nil {
			return err
		}
		if !validateQoS(sub.Qos) {
			return ErrProtocolViolationQosOutOfRange
		}
		if sub.RetainHandling > 2 {
			return ErrMalformedFlags
		}
	}

	return pk.Properties.Validate(Subscribe)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *SubscribePacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := 2
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Subscribe)
		remaining += lengthSize(n) + n
	}
	for _, sub := range pk.Filters {
		remaining += stringSize(len(sub.Filter)) + 1
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *SubscribePacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Subscribe
	pk.FixedHeader.Qos = 1
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeUint16(buf, offset, pk.PacketID)

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Subscribe, buf, offset)
	}

	for _, sub := range pk.Filters {
		offset = encodeString(buf, offset, sub.Filter)
		buf[offset] = pk.encodeSubOptions(sub)
		offset++
	}

	return offset, nil
}
