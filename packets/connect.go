// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// ConnectPacket contains the values of an MQTT CONNECT packet. The protocol
// version is read from the variable header during decode, so a single
// struct serves both protocol levels.
type ConnectPacket struct {
	FixedHeader

	ProtocolName     string
	ProtocolVersion  byte
	CleanSession     bool
	WillFlag         bool
	WillQos          byte
	WillRetain       bool
	UsernameFlag     bool
	PasswordFlag     bool
	Keepalive        uint16
	ClientIdentifier string
	WillProperties   Properties // MQTT 5 only
	WillTopic        string
	WillMessage      []byte
	Username         string
	Password         []byte // passwords are binary data, not utf-8 [MQTT-3.1.3-10]
	Properties       Properties // MQTT 5 only

	// StrictClientID enables the v3.1.1 restricted client identifier rules
	// (1-23 characters from [0-9A-Za-z]) during decode and encode.
	StrictClientID bool
}

// Decode extracts the data values from the packet.
func (pk *ConnectPacket) Decode(buf []byte) error {
	var offset int
	var err error

	// Unpack protocol name and version.
	pk.ProtocolName, offset, err = decodeString(buf, 0)
	if err != nil {
		return ErrMalformedProtocolName
	}
	if pk.ProtocolName != "MQTT" { // [MQTT-3.1.2-1]
		return ErrProtocolViolationProtocolName
	}

	pk.ProtocolVersion, offset, err = decodeByte(buf, offset)
	if err != nil {
		return ErrMalformedProtocolVersion
	}
	if pk.ProtocolVersion != Version311 && pk.ProtocolVersion != Version5 {
		return ErrUnsupportedProtocolVersion // [MQTT-3.1.2-2]
	}

	// Unpack and cross-check the flags byte.
	flags, offset, err := decodeByte(buf, offset)
	if err != nil {
		return ErrMalformedFlags
	}
	err = pk.decodeFlags(flags)
	if err != nil {
		return err
	}

	pk.Keepalive, offset, err = decodeUint16(buf, offset)
	if err != nil {
		return ErrMalformedKeepalive
	}

	if pk.ProtocolVersion == Version5 {
		offset, err = pk.Properties.Decode(Connect, buf, offset)
		if err != nil {
			return err
		}
	}

	pk.ClientIdentifier, offset, err = decodeString(buf, offset)
	if err != nil {
		return ErrMalformedClientID
	}
	if pk.StrictClientID {
		err = validateClientID(pk.ClientIdentifier)
		if err != nil {
			return err
		}
	}

	// Get Last Will and Testament topic and message if applicable.
	if pk.WillFlag { // [MQTT-3.1.2-9]
		if pk.ProtocolVersion == Version5 {
			offset, err = pk.WillProperties.Decode(WillProperties, buf, offset)
			if err != nil {
				return err
			}
		}

		pk.WillTopic, offset, err = decodeString(buf, offset)
		if err != nil {
			return ErrMalformedWillTopic
		}
		err = ValidateTopic(pk.WillTopic)
		if err != nil {
			return err
		}

		pk.WillMessage, offset, err = decodeBytes(buf, offset)
		if err != nil {
			return ErrMalformedWillPayload
		}
	}

	// Get username and password if applicable.
	if pk.UsernameFlag {
		pk.Username, offset, err = decodeString(buf, offset)
		if err != nil {
			return ErrMalformedUsername
		}
	}

	if pk.PasswordFlag {
		pk.Password, offset, err = decodeBytes(buf, offset)
		if err != nil {
			return ErrMalformedPassword
		}
	}

	if offset != len(buf) {
		return ErrMalformedPacketLength
	}

	return nil
}

// ExpectVersion asserts the protocol version a decoded CONNECT carries, for
// hosts that only speak one protocol level.
func (pk *ConnectPacket) ExpectVersion(version byte) error {
	if pk.ProtocolVersion != version {
		return ErrUnexpectedVersion
	}
	return nil
}

// decodeFlags unpacks the CONNECT flags byte and enforces its cross-field
// requirements.
func (pk *ConnectPacket) decodeFlags(flags byte) error {
	if flags&0x01 != 0 {
		return ErrProtocolViolationReservedBit // [MQTT-3.1.2-3]
	}

	pk.CleanSession = 1&(flags>>1) > 0
	pk.WillFlag = 1&(flags>>2) > 0
	pk.WillQos = 3 & (flags >> 3)
	pk.WillRetain = 1&(flags>>5) > 0
	pk.PasswordFlag = 1&(flags>>6) > 0
	pk.UsernameFlag = 1&(flags>>7) > 0

	if !pk.WillFlag {
		if pk.WillQos != 0 {
			return ErrProtocolViolationWillFlagSurplusQos // [MQTT-3.1.2-13]
		}
		if pk.WillRetain {
			return ErrProtocolViolationWillFlagSurplusRetain // [MQTT-3.1.2-15]
		}
	}
	if pk.WillQos > 2 {
		return ErrProtocolViolationQosOutOfRange // [MQTT-3.1.2-14]
	}

	if pk.PasswordFlag && !pk.UsernameFlag {
		return ErrProtocolViolationPasswordNoUsername // [MQTT-3.1.2-22]
	}

	return nil
}

// encodeFlags packs the CONNECT flags byte.
func (pk *ConnectPacket) encodeFlags() byte {
	return encodeBool(pk.CleanSession)<<1 |
		encodeBool(pk.WillFlag)<<2 |
		pk.WillQos<<3 |
		encodeBool(pk.WillRetain)<<5 |
		encodeBool(pk.PasswordFlag)<<6 |
		encodeBool(pk.UsernameFlag)<<7
}

// Validate ensures the packet values can be legally encoded.
func (pk *ConnectPacket) Validate() error {
	if pk.ProtocolName != "MQTT" {
		return ErrProtocolViolationProtocolName
	}
	if pk.ProtocolVersion != Version311 && pk.ProtocolVersion != Version5 {
		return ErrUnsupportedProtocolVersion
	}

	err := validateString(pk.ClientIdentifier)
	if err != nil {
		return ErrClientIdentifierNotValid
	}
	if pk.StrictClientID {
		err = validateClientID(pk.ClientIdentifier)
		if err != nil {
			return err
		}
	}

	if !pk.WillFlag && (pk.WillQos != 0 || pk.WillRetain || pk.WillTopic != "" || len(pk.WillMessage) > 0) {
		return ErrProtocolViolationWillFlagSurplusQos
	}
	if pk.WillFlag {
		if pk.WillQos > 2 {
			return ErrProtocolViolationQosOutOfRange
		}
		if err = validateString(pk.WillTopic); err != nil {
			return ErrMalformedWillTopic
		}
		if err = ValidateTopic(pk.WillTopic); err != nil {
			return err
		}
		if len(pk.WillMessage) > MaxStringLength {
			return ErrMalformedWillPayload
		}
	}

	if pk.PasswordFlag && !pk.UsernameFlag {
		return ErrProtocolViolationPasswordNoUsername
	}
	if pk.UsernameFlag {
		if err = validateString(pk.Username); err != nil {
			return ErrProtocolViolationUsernameTooLong
		}
	}
	if pk.PasswordFlag && len(pk.Password) > MaxStringLength {
		return ErrProtocolViolationPasswordTooLong
	}

	if pk.ProtocolVersion == Version5 {
		if err = pk.Properties.Validate(Connect); err != nil {
			return err
		}
		if pk.WillFlag {
			if err = pk.WillProperties.Validate(WillProperties); err != nil {
				return err
			}
		}
	}

	return nil
}

// Size validates the packet and returns the remaining length and total
// encoded size.
func (pk *ConnectPacket) Size() (int, int, error) {
	err := pk.Validate()
	if err != nil {
		return 0, 0, err
	}

	remaining := stringSize(len(pk.ProtocolName)) + 1 + 1 + 2 +
		stringSize(len(pk.ClientIdentifier))

	if pk.ProtocolVersion == Version5 {
		n := pk.Properties.Size(Connect)
		remaining += lengthSize(n) + n
	}

	if pk.WillFlag {
		if pk.ProtocolVersion == Version5 {
			n := pk.WillProperties.Size(WillProperties)
			remaining += lengthSize(n) + n
		}
		remaining += stringSize(len(pk.WillTopic)) + stringSize(len(pk.WillMessage))
	}

	if pk.UsernameFlag {
		remaining += stringSize(len(pk.Username))
	}
	if pk.PasswordFlag {
		remaining += stringSize(len(pk.Password))
	}

	if remaining > MaxRemainingLength {
		return 0, 0, ErrPacketTooLarge
	}

	return remaining, 1 + lengthSize(remaining) + remaining, nil
}

// Encode encodes and writes the packet data values to the buffer.
func (pk *ConnectPacket) Encode(buf []byte) (int, error) {
	remaining, total, err := pk.Size()
	if err != nil {
		return 0, err
	}
	if len(buf) < total {
		return 0, ErrInsufficientBuffer
	}

	pk.FixedHeader.Type = Connect
	pk.FixedHeader.Remaining = remaining

	offset := pk.FixedHeader.Encode(buf, 0)
	offset = encodeString(buf, offset, pk.ProtocolName)
	buf[offset] = pk.ProtocolVersion
	buf[offset+1] = pk.encodeFlags()
	offset = encodeUint16(buf, offset+2, pk.Keepalive)

	if pk.ProtocolVersion == Version5 {
		offset = pk.Properties.Encode(Connect, buf, offset)
	}

	offset = encodeString(buf, offset, pk.ClientIdentifier)

	if pk.WillFlag {
		if pk.ProtocolVersion == Version5 {
			offset = pk.WillProperties.Encode(WillProperties, buf, offset)
		}
		offset = encodeString(buf, offset, pk.WillTopic)
		offset = encodeBytes(buf, offset, pk.WillMessage)
	}

	if pk.UsernameFlag {
		offset = encodeString(buf, offset, pk.Username)
	}
	if pk.PasswordFlag {
		offset = encodeBytes(buf, offset, pk.Password)
	}

	return offset, nil
}
