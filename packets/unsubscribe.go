// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// UnsubscribePacket contains the values of an MQTT UNSUBSCRIBE packet. Its
// fixed header carries the mandatory 0b0010 flag nibble. [MQTT-3.10.1-1]
type UnsubscribePacket struct {
	FixedHeader

	ProtocolVersion byte
	PacketID        uint16
	Properties      Properties // MQTT 5 only
	Filters         []string
}

// Decode extracts the data values from the packet.
func (pk *UnsubscribePacket) Decode(buf []byte) error {
	var offset int
	var err error

	pk.PacketID, offset, err = decodePacketID(buf, 0)
	if err != nil {
		return err
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Unsubscribe, buf, offset)
		if err != nil {
			return err
		}
	}

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
		pk.Filters = append(pk.Filters, filter)
	}

	// [MQTT-3.10.3-2] An UNSUBSCRIBE packet must carry at least one filter.
	if len(pk.Filters) == 0 {
		return ErrProtocolViolationNoFilters
	}

	return nil
}

// Validate ensures the packet values can be legally encoded.
func (pk *UnsubscribePacket) Validate() error {
	if pk.PacketID == 0 {
		return ErrProtocolViolationNoPacketID
	}
	if len(pk.Filters) == 0 {
		return ErrProtocolViolationNoFilters
	}
	for _, filter := range pk.Filters {
		if err := validateString(filter); err != nil {
			return ErrMalformedTopic
		}
		if err := ValidateFilter(filter); err != nil {
			return err
		}
	}

	return pk.Properties.Validate(Unsubscribe)
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *UnsubscribePacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := 2
	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Unsubscribe)
		remaining += lengthSize(n) + n
	}
	for _, filter := range pk.Filters {
		remaining += stringSize(len(filter))
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *UnsubscribePacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Unsubscribe
	pk.FixedHeader.Qos = 1
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeUint16(buf, offset, pk.PacketID)

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Unsubscribe, buf, offset)
	}

	for _, filter := range pk.Filters {
		offset = encodeString(buf, offset, filter)
	}

	return offset, nil
}
