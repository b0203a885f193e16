// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// Code contains a reason code and reason string for a response. Codes are
// also used as the codec's error values, so every decode failure carries the
// reason code a host would send before closing the connection.
type Code struct {
	Reason string
	Code   byte
}

// String returns the readable reason for a code.
func (c Code) String() string {
	return c.Reason
}

// Error returns the readable reason for a code.
func (c Code) Error() string {
	return c.Reason
}

var (
	// QosCodes indicates the reason codes for each Qos byte.
	QosCodes = map[byte]Code{
		0: CodeGrantedQos0,
		1: CodeGrantedQos1,
		2: CodeGrantedQos2,
	}

	CodeSuccess                = Code{Code: 0x00, Reason: "success"}
	CodeDisconnect             = Code{Code: 0x00, Reason: "disconnected"}
	CodeGrantedQos0            = Code{Code: 0x00, Reason: "granted qos 0"}
	CodeGrantedQos1            = Code{Code: 0x01, Reason: "granted qos 1"}
	CodeGrantedQos2            = Code{Code: 0x02, Reason: "granted qos 2"}
	CodeDisconnectWillMessage  = Code{Code: 0x04, Reason: "disconnect with will message"}
	CodeNoMatchingSubscribers  = Code{Code: 0x10, Reason: "no matching subscribers"}
	CodeNoSubscriptionExisted  = Code{Code: 0x11, Reason: "no subscription existed"}
	CodeContinueAuthentication = Code{Code: 0x18, Reason: "continue authentication"}
	CodeReAuthenticate         = Code{Code: 0x19, Reason: "re-authenticate"}

	// ErrIncompleteBuffer is not a protocol error: the streaming decoder
	// returns it when the buffer holds less than one whole packet, and the
	// caller should retry once more bytes have arrived.
	ErrIncompleteBuffer = Code{Code: 0x00, Reason: "incomplete buffer: awaiting more bytes"}

	// ErrInsufficientBuffer is returned by Encode when the output buffer is
	// smaller than the total reported by Size.
	ErrInsufficientBuffer = Code{Code: 0x00, Reason: "insufficient output buffer"}

	ErrUnspecifiedError                       = Code{Code: 0x80, Reason: "unspecified error"}
	ErrMalformedPacket                        = Code{Code: 0x81, Reason: "malformed packet"}
	ErrMalformedPacketType                    = Code{Code: 0x81, Reason: "malformed packet: packet type"}
	ErrMalformedPacketLength                  = Code{Code: 0x81, Reason: "malformed packet: packet length mismatch"}
	ErrMalformedProtocolName                  = Code{Code: 0x81, Reason: "malformed packet: protocol name"}
	ErrMalformedProtocolVersion               = Code{Code: 0x81, Reason: "malformed packet: protocol version"}
	ErrMalformedFlags                         = Code{Code: 0x81, Reason: "malformed packet: flags"}
	ErrMalformedKeepalive                     = Code{Code: 0x81, Reason: "malformed packet: keepalive"}
	ErrMalformedPacketID                      = Code{Code: 0x81, Reason: "malformed packet: packet identifier"}
	ErrMalformedTopic                         = Code{Code: 0x81, Reason: "malformed packet: topic"}
	ErrMalformedClientID                      = Code{Code: 0x81, Reason: "malformed packet: client id"}
	ErrMalformedWillTopic                     = Code{Code: 0x81, Reason: "malformed packet: will topic"}
	ErrMalformedWillPayload                   = Code{Code: 0x81, Reason: "malformed packet: will message"}
	ErrMalformedUsername                      = Code{Code: 0x81, Reason: "malformed packet: username"}
	ErrMalformedPassword                      = Code{Code: 0x81, Reason: "malformed packet: password"}
	ErrMalformedQos                           = Code{Code: 0x81, Reason: "malformed packet: qos"}
	ErrMalformedBool                          = Code{Code: 0x81, Reason: "malformed packet: boolean byte not 0 or 1"}
	ErrMalformedInvalidUTF8                   = Code{Code: 0x81, Reason: "malformed packet: invalid utf-8 string"}
	ErrMalformedStringLength                  = Code{Code: 0x81, Reason: "malformed packet: string exceeds 65535 bytes"}
	ErrMalformedVariableByteInteger           = Code{Code: 0x81, Reason: "malformed packet: variable byte integer out of range"}
	ErrMalformedBadProperty                   = Code{Code: 0x81, Reason: "malformed packet: unknown property"}
	ErrMalformedDuplicateProperty             = Code{Code: 0x81, Reason: "malformed packet: duplicate property"}
	ErrMalformedPropertyPayload               = Code{Code: 0x81, Reason: "malformed packet: property payload"}
	ErrMalformedProperties                    = Code{Code: 0x81, Reason: "malformed packet: properties"}
	ErrMalformedWillProperties                = Code{Code: 0x81, Reason: "malformed packet: will properties"}
	ErrMalformedSessionPresent                = Code{Code: 0x81, Reason: "malformed packet: session present"}
	ErrMalformedReturnCode                    = Code{Code: 0x81, Reason: "malformed packet: return code"}
	ErrMalformedReasonCode                    = Code{Code: 0x81, Reason: "malformed packet: reason code"}
	ErrProtocolViolation                      = Code{Code: 0x82, Reason: "protocol violation"}
	ErrProtocolViolationProtocolName          = Code{Code: 0x82, Reason: "protocol violation: protocol name"}
	ErrProtocolViolationReservedBit           = Code{Code: 0x82, Reason: "protocol violation: reserved bit not 0"}
	ErrProtocolViolationFlagNoUsername        = Code{Code: 0x82, Reason: "protocol violation: username flag set but no value"}
	ErrProtocolViolationFlagNoPassword        = Code{Code: 0x82, Reason: "protocol violation: password flag set but no value"}
	ErrProtocolViolationPasswordNoUsername    = Code{Code: 0x82, Reason: "protocol violation: password flag set without username flag"}
	ErrProtocolViolationUsernameTooLong       = Code{Code: 0x82, Reason: "protocol violation: username too long"}
	ErrProtocolViolationPasswordTooLong       = Code{Code: 0x82, Reason: "protocol violation: password too long"}
	ErrProtocolViolationNoPacketID            = Code{Code: 0x82, Reason: "protocol violation: missing packet id"}
	ErrProtocolViolationSurplusPacketID       = Code{Code: 0x82, Reason: "protocol violation: surplus packet id"}
	ErrProtocolViolationQosOutOfRange         = Code{Code: 0x82, Reason: "protocol violation: qos out of range"}
	ErrProtocolViolationWillFlagNoPayload     = Code{Code: 0x82, Reason: "protocol violation: will flag no payload"}
	ErrProtocolViolationWillFlagSurplusRetain = Code{Code: 0x82, Reason: "protocol violation: will flag surplus retain"}
	ErrProtocolViolationWillFlagSurplusQos    = Code{Code: 0x82, Reason: "protocol violation: will flag surplus qos"}
	ErrProtocolViolationSurplusWildcard       = Code{Code: 0x82, Reason: "protocol violation: topic contains wildcards"}
	ErrProtocolViolationEmptyFilter           = Code{Code: 0x82, Reason: "protocol violation: empty topic filter"}
	ErrProtocolViolationWildcardPosition      = Code{Code: 0x82, Reason: "protocol violation: misplaced wildcard in topic filter"}
	ErrProtocolViolationNoFilters             = Code{Code: 0x82, Reason: "protocol violation: must contain at least one filter"}
	ErrProtocolViolationNoReasonCodes         = Code{Code: 0x82, Reason: "protocol violation: must contain at least one reason code"}
	ErrProtocolViolationInvalidReason         = Code{Code: 0x82, Reason: "protocol violation: invalid reason"}
	ErrUnsupportedProtocolVersion             = Code{Code: 0x84, Reason: "unsupported protocol version"}
	ErrClientIdentifierNotValid               = Code{Code: 0x85, Reason: "client identifier not valid"}
	ErrClientIdentifierTooLong                = Code{Code: 0x85, Reason: "client identifier too long"}
	ErrPacketTooLarge                         = Code{Code: 0x95, Reason: "packet too large"}
	ErrPayloadFormatInvalid                   = Code{Code: 0x99, Reason: "payload format invalid"}

	// Caller-requested assertions; never produced by plain decoding.
	ErrUnexpectedMessageType = Code{Code: 0x82, Reason: "unexpected message type"}
	ErrUnexpectedVersion     = Code{Code: 0x82, Reason: "unexpected protocol version"}
	ErrUnexpectedLength      = Code{Code: 0x82, Reason: "unexpected remaining length"}

	// MQTTv3 specific connack return bytes.
	Err3UnsupportedProtocolVersion = Code{Code: 0x01}
	Err3ClientIdentifierNotValid   = Code{Code: 0x02}
	Err3ServerUnavailable          = Code{Code: 0x03}
	Err3BadUsernameOrPassword      = Code{Code: 0x04}
	Err3NotAuthorized              = Code{Code: 0x05}
)
