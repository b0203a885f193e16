// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

// TPacketCase contains data for cross-checking the encoding and decoding
// of packets and expected scenarios.
type TPacketCase struct {
	RawBytes  []byte // the bytes that make the packet
	Group     string // a group that should run the test, blank for all
	Desc      string // a description of the test
	FailFirst error  // expected decode fail result
	Packet    Packet // the packet that is expected
	Expect    error  // expected encode/size fail result
	Version   byte   // protocol version for decoding, when no packet is given
	Case      byte   // the identifying byte of the case
}

// TPacketCases is a slice of TPacketCase.
type TPacketCases []TPacketCase

// Get returns a case matching a given T byte.
func (f TPacketCases) Get(b byte) TPacketCase {
	for _, v := range f {
		if v.Case == b {
			return v
		}
	}

	return TPacketCase{}
}

const (
	TConnectMqtt311 byte = iota
	TConnectMqtt5
	TConnectUserPassLWT
	TConnectMalProtocolName
	TConnectInvalidProtocolName
	TConnectInvalidProtocolVersion
	TConnectInvalidReservedBit
	TConnectInvalidPasswordNoUsername
	TConnectInvalidWillSurplusRetain
	TConnackAcceptedNoSession
	TConnackAcceptedSessionExists
	TConnackMqtt5
	TConnackInvalidNoSession
	TConnackMalSessionPresent
	TConnackMalReturnCode
	TPublishBasic
	TPublishQos2
	TPublishMqtt5
	TPublishMalTopicWildcard
	TPublishMalPacketIDZero
	TPublishSpecSurplusPacketID
	TPuback
	TPubackMqtt5
	TPubackMqtt5Props
	TPubackMalPacketIDZero
	TPubrec
	TPubrecMqtt5InvalidReason
	TPubrel
	TPubrelMqtt5
	TPubcomp
	TSubscribe
	TSubscribeMqtt5
	TSubscribeInvalidQosOutOfRange
	TSubscribeInvalidFilter
	TSubscribeMalReservedOptions
	TSubscribeNoFilters
	TSuback
	TSubackMqtt5
	TSubackInvalidCode
	TSubackNoCodes
	TUnsubscribe
	TUnsubscribeMqtt5
	TUnsubscribeNoFilters
	TUnsuback
	TUnsubackMqtt5
	TUnsubackMqtt5NoCodes
	TPingreq
	TPingreqMalSurplus
	TPingresp
	TDisconnect
	TDisconnectMqtt5
	TDisconnectMqtt5LongForm
	TDisconnectMqtt5BadReason
	TAuth
	TAuthMqtt5Props
	TAuthInvalidReason
	TAuthMinimal
)

// TPacketData contains individual encoding and decoding scenarios for each
// packet type.
var TPacketData = map[byte]TPacketCases{
	Connect: {
		{
			Case: TConnectMqtt311,
			Desc: "mqtt v3.1.1",
			RawBytes: []byte{
				Connect << 4, 16, // fixed header
				0, 4, 'M', 'Q', 'T', 'T', // protocol name
				4,        // protocol version
				2,        // flags (clean session)
				0, 60, // keepalive
				0, 4, 'D', 'I', 'G', 'I', // client id
			},
			Packet: &ConnectPacket{
				FixedHeader:      FixedHeader{Type: Connect, Remaining: 16},
				ProtocolName:     "MQTT",
				ProtocolVersion:  4,
				CleanSession:     true,
				Keepalive:        60,
				ClientIdentifier: "DIGI",
			},
		},
		{
			Case: TConnectMqtt5,
			Desc: "mqtt v5",
			RawBytes: []byte{
				Connect << 4, 22, // fixed header
				0, 4, 'M', 'Q', 'T', 'T', // protocol name
				5,     // protocol version
				2,     // flags (clean start)
				0, 60, // keepalive
				5,                // properties length
				17, 0, 0, 0, 120, // session expiry interval
				0, 4, 'D', 'I', 'G', 'I', // client id
			},
			Packet: &ConnectPacket{
				FixedHeader:     FixedHeader{Type: Connect, Remaining: 22},
				ProtocolName:    "MQTT",
				ProtocolVersion: 5,
				CleanSession:    true,
				Keepalive:       60,
				Properties: Properties{
					SessionExpiryInterval:     120,
					SessionExpiryIntervalFlag: true,
				},
				ClientIdentifier: "DIGI",
			},
		},
		{
			Case: TConnectUserPassLWT,
			Desc: "mqtt v3.1.1 will, username, password",
			RawBytes: []byte{
				Connect << 4, 41, // fixed header
				0, 4, 'M', 'Q', 'T', 'T', // protocol name
				4,          // protocol version
				0xCE,       // flags (user, pass, will qos 1, will, clean)
				0, 60, // keepalive
				0, 4, 'D', 'I', 'G', 'I', // client id
				0, 3, 'a', '/', 'b', // will topic
				0, 5, 'h', 'e', 'l', 'l', 'o', // will message
				0, 5, 'a', 'd', 'm', 'i', 'n', // username
				0, 4, 'p', 'a', 's', 's', // password
			},
			Packet: &ConnectPacket{
				FixedHeader:      FixedHeader{Type: Connect, Remaining: 41},
				ProtocolName:     "MQTT",
				ProtocolVersion:  4,
				CleanSession:     true,
				WillFlag:         true,
				WillQos:          1,
				UsernameFlag:     true,
				PasswordFlag:     true,
				Keepalive:        60,
				ClientIdentifier: "DIGI",
				WillTopic:        "a/b",
				WillMessage:      []byte("hello"),
				Username:         "admin",
				Password:         []byte("pass"),
			},
		},
		{
			Case:  TConnectMalProtocolName,
			Desc:  "malformed protocol name",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 4,
				0, 6, 'M', 'Q', // truncated protocol name
			},
			FailFirst: ErrMalformedProtocolName,
		},
		{
			Case:  TConnectInvalidProtocolName,
			Desc:  "invalid protocol name",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 14,
				0, 6, 'M', 'Q', 'I', 's', 'd', 'p',
				3,
				2,
				0, 60,
				0, 0,
			},
			FailFirst: ErrProtocolViolationProtocolName,
		},
		{
			Case:  TConnectInvalidProtocolVersion,
			Desc:  "unsupported protocol version",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 12,
				0, 4, 'M', 'Q', 'T', 'T',
				3,
				2,
				0, 60,
				0, 0,
			},
			FailFirst: ErrUnsupportedProtocolVersion,
		},
		{
			Case:  TConnectInvalidReservedBit,
			Desc:  "reserved flag bit set",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 12,
				0, 4, 'M', 'Q', 'T', 'T',
				4,
				3, // reserved bit 0 is set
				0, 60,
				0, 0,
			},
			FailFirst: ErrProtocolViolationReservedBit,
		},
		{
			Case:  TConnectInvalidPasswordNoUsername,
			Desc:  "password flag without username flag",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 12,
				0, 4, 'M', 'Q', 'T', 'T',
				4,
				0x42, // password + clean
				0, 60,
				0, 0,
			},
			FailFirst: ErrProtocolViolationPasswordNoUsername,
		},
		{
			Case:  TConnectInvalidWillSurplusRetain,
			Desc:  "will retain set without will flag",
			Group: "decode",
			RawBytes: []byte{
				Connect << 4, 12,
				0, 4, 'M', 'Q', 'T', 'T',
				4,
				0x22, // will retain + clean
				0, 60,
				0, 0,
			},
			FailFirst: ErrProtocolViolationWillFlagSurplusRetain,
		},
	},
	Connack: {
		{
			Case: TConnackAcceptedNoSession,
			Desc: "accepted, no existing session",
			RawBytes: []byte{
				Connack << 4, 2,
				0, // no session present
				0, // accepted
			},
			Packet: &ConnackPacket{
				FixedHeader:     FixedHeader{Type: Connack, Remaining: 2},
				ProtocolVersion: 4,
			},
		},
		{
			Case: TConnackAcceptedSessionExists,
			Desc: "accepted, session present",
			RawBytes: []byte{
				Connack << 4, 2,
				1,
				0,
			},
			Packet: &ConnackPacket{
				FixedHeader:     FixedHeader{Type: Connack, Remaining: 2},
				ProtocolVersion: 4,
				SessionPresent:  true,
			},
		},
		{
			Case: TConnackMqtt5,
			Desc: "mqtt v5 with assigned client id",
			RawBytes: []byte{
				Connack << 4, 9,
				0,
				0,
				6, // properties length
				18, 0, 3, 'a', 'b', 'c', // assigned client id
			},
			Packet: &ConnackPacket{
				FixedHeader:     FixedHeader{Type: Connack, Remaining: 9},
				ProtocolVersion: 5,
				Properties: Properties{
					AssignedClientID: "abc",
				},
			},
		},
		{
			Case:  TConnackInvalidNoSession,
			Desc:  "rejected connection cannot resume a session",
			Group: "decode",
			RawBytes: []byte{
				Connack << 4, 2,
				1,
				2,
			},
			FailFirst: ErrMalformedSessionPresent,
		},
		{
			Case:  TConnackMalSessionPresent,
			Desc:  "session present byte out of range",
			Group: "decode",
			RawBytes: []byte{
				Connack << 4, 2,
				2,
				0,
			},
			FailFirst: ErrMalformedSessionPresent,
		},
		{
			Case:  TConnackMalReturnCode,
			Desc:  "v3 return code out of range",
			Group: "decode",
			RawBytes: []byte{
				Connack << 4, 2,
				0,
				6,
			},
			FailFirst: ErrMalformedReturnCode,
		},
	},
	Publish: {
		{
			Case: TPublishBasic,
			Desc: "qos 0",
			RawBytes: []byte{
				Publish << 4, 10,
				0, 4, 't', 'e', 's', 't',
				't', 'e', 's', 't',
			},
			Packet: &PublishPacket{
				FixedHeader:     FixedHeader{Type: Publish, Remaining: 10},
				ProtocolVersion: 4,
				TopicName:       "test",
				Payload:         []byte("test"),
			},
		},
		{
			Case: TPublishQos2,
			Desc: "qos 2 with packet id",
			RawBytes: []byte{
				Publish<<4 | 4, 20,
				0, 5, 'a', '/', 'b', '/', 'c',
				0, 1,
				'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
			},
			Packet: &PublishPacket{
				FixedHeader:     FixedHeader{Type: Publish, Qos: 2, Remaining: 20},
				ProtocolVersion: 4,
				TopicName:       "a/b/c",
				PacketID:        1,
				Payload:         []byte("hello world"),
			},
		},
		{
			Case: TPublishMqtt5,
			Desc: "mqtt v5 with payload format indicator",
			RawBytes: []byte{
				Publish << 4, 13,
				0, 4, 't', 'e', 's', 't',
				2,    // properties length
				1, 1, // payload format indicator
				't', 'e', 's', 't',
			},
			Packet: &PublishPacket{
				FixedHeader:     FixedHeader{Type: Publish, Remaining: 13},
				ProtocolVersion: 5,
				TopicName:       "test",
				Properties: Properties{
					PayloadFormat:     1,
					PayloadFormatFlag: true,
				},
				Payload: []byte("test"),
			},
		},
		{
			Case:  TPublishMalTopicWildcard,
			Desc:  "topic containing wildcard",
			Group: "decode",
			RawBytes: []byte{
				Publish << 4, 7,
				0, 3, 'a', '+', 'b',
				'h', 'i',
			},
			FailFirst: ErrProtocolViolationSurplusWildcard,
		},
		{
			Case:  TPublishMalPacketIDZero,
			Desc:  "qos 1 with zero packet id",
			Group: "decode",
			RawBytes: []byte{
				Publish<<4 | 2, 9,
				0, 3, 'a', '/', 'b',
				0, 0,
				'h', 'i',
			},
			FailFirst: ErrProtocolViolationNoPacketID,
		},
		{
			Case:  TPublishSpecSurplusPacketID,
			Desc:  "qos 0 must not carry a packet id",
			Group: "encode",
			Packet: &PublishPacket{
				FixedHeader:     FixedHeader{Type: Publish},
				ProtocolVersion: 4,
				TopicName:       "a/b",
				PacketID:        5,
			},
			Expect: ErrProtocolViolationSurplusPacketID,
		},
	},
	Puback: {
		{
			Case: TPuback,
			Desc: "puback",
			RawBytes: []byte{
				Puback << 4, 2,
				0, 11,
			},
			Packet: &PubackPacket{
				FixedHeader:     FixedHeader{Type: Puback, Remaining: 2},
				ProtocolVersion: 4,
				PacketID:        11,
			},
		},
		{
			Case: TPubackMqtt5,
			Desc: "mqtt v5 short form with reason code",
			RawBytes: []byte{
				Puback << 4, 3,
				0, 11,
				0x10, // no matching subscribers
			},
			Packet: &PubackPacket{
				FixedHeader:     FixedHeader{Type: Puback, Remaining: 3},
				ProtocolVersion: 5,
				PacketID:        11,
				ReasonCode:      0x10,
			},
		},
		{
			Case: TPubackMqtt5Props,
			Desc: "mqtt v5 with reason string",
			RawBytes: []byte{
				Puback << 4, 9,
				0, 11,
				0x10,
				5, // properties length
				31, 0, 2, 'o', 'k', // reason string
			},
			Packet: &PubackPacket{
				FixedHeader:     FixedHeader{Type: Puback, Remaining: 9},
				ProtocolVersion: 5,
				PacketID:        11,
				ReasonCode:      0x10,
				Properties: Properties{
					ReasonString: "ok",
				},
			},
		},
		{
			Case:  TPubackMalPacketIDZero,
			Desc:  "zero packet id",
			Group: "decode",
			RawBytes: []byte{
				Puback << 4, 2,
				0, 0,
			},
			FailFirst: ErrProtocolViolationNoPacketID,
		},
	},
	Pubrec: {
		{
			Case: TPubrec,
			Desc: "pubrec",
			RawBytes: []byte{
				Pubrec << 4, 2,
				0, 11,
			},
			Packet: &PubrecPacket{
				FixedHeader:     FixedHeader{Type: Pubrec, Remaining: 2},
				ProtocolVersion: 4,
				PacketID:        11,
			},
		},
		{
			Case:    TPubrecMqtt5InvalidReason,
			Desc:    "reason code not valid for pubrec",
			Group:   "decode",
			Version: 5,
			RawBytes: []byte{
				Pubrec << 4, 3,
				0, 11,
				0x92,
			},
			FailFirst: ErrProtocolViolationInvalidReason,
		},
	},
	Pubrel: {
		{
			Case: TPubrel,
			Desc: "pubrel",
			RawBytes: []byte{
				Pubrel<<4 | 2, 2,
				0, 11,
			},
			Packet: &PubrelPacket{
				FixedHeader:     FixedHeader{Type: Pubrel, Qos: 1, Remaining: 2},
				ProtocolVersion: 4,
				PacketID:        11,
			},
		},
		{
			Case: TPubrelMqtt5,
			Desc: "mqtt v5 packet id not found",
			RawBytes: []byte{
				Pubrel<<4 | 2, 3,
				0, 11,
				0x92,
			},
			Packet: &PubrelPacket{
				FixedHeader:     FixedHeader{Type: Pubrel, Qos: 1, Remaining: 3},
				ProtocolVersion: 5,
				PacketID:        11,
				ReasonCode:      0x92,
			},
		},
	},
	Pubcomp: {
		{
			Case: TPubcomp,
			Desc: "pubcomp",
			RawBytes: []byte{
				Pubcomp << 4, 2,
				0, 11,
			},
			Packet: &PubcompPacket{
				FixedHeader:     FixedHeader{Type: Pubcomp, Remaining: 2},
				ProtocolVersion: 4,
				PacketID:        11,
			},
		},
	},
	Subscribe: {
		{
			Case: TSubscribe,
			Desc: "subscribe",
			RawBytes: []byte{
				Subscribe<<4 | 2, 10,
				0, 15,
				0, 5, 'a', '/', 'b', '/', 'c',
				1,
			},
			Packet: &SubscribePacket{
				FixedHeader:     FixedHeader{Type: Subscribe, Qos: 1, Remaining: 10},
				ProtocolVersion: 4,
				PacketID:        15,
				Filters: []Subscription{
					{Filter: "a/b/c", Qos: 1},
				},
			},
		},
		{
			Case: TSubscribeMqtt5,
			Desc: "mqtt v5 with subscription identifier and options",
			RawBytes: []byte{
				Subscribe<<4 | 2, 13,
				0, 15,
				2,      // properties length
				11, 10, // subscription identifier
				0, 5, 'a', '/', 'b', '/', 'c',
				0x1E, // qos 2, no local, retain as published, retain handling 1
			},
			Packet: &SubscribePacket{
				FixedHeader:     FixedHeader{Type: Subscribe, Qos: 1, Remaining: 13},
				ProtocolVersion: 5,
				PacketID:        15,
				Properties: Properties{
					SubscriptionIdentifier: []int{10},
				},
				Filters: []Subscription{
					{
						Filter:            "a/b/c",
						Qos:               2,
						NoLocal:           true,
						RetainAsPublished: true,
						RetainHandling:    1,
					},
				},
			},
		},
		{
			Case:  TSubscribeInvalidQosOutOfRange,
			Desc:  "subscription qos out of range",
			Group: "decode",
			RawBytes: []byte{
				Subscribe<<4 | 2, 6,
				0, 15,
				0, 1, 'a',
				3,
			},
			FailFirst: ErrProtocolViolationQosOutOfRange,
		},
		{
			Case:  TSubscribeInvalidFilter,
			Desc:  "multi-level wildcard not at end",
			Group: "decode",
			RawBytes: []byte{
				Subscribe<<4 | 2, 10,
				0, 15,
				0, 5, 'a', '/', '#', '/', 'c',
				1,
			},
			FailFirst: ErrProtocolViolationWildcardPosition,
		},
		{
			Case:  TSubscribeMalReservedOptions,
			Desc:  "v3 options byte with reserved bits",
			Group: "decode",
			RawBytes: []byte{
				Subscribe<<4 | 2, 6,
				0, 15,
				0, 1, 'a',
				4,
			},
			FailFirst: ErrMalformedQos,
		},
		{
			Case:  TSubscribeNoFilters,
			Desc:  "no topic filters",
			Group: "decode",
			RawBytes: []byte{
				Subscribe<<4 | 2, 2,
				0, 15,
			},
			FailFirst: ErrProtocolViolationNoFilters,
		},
	},
	Suback: {
		{
			Case: TSuback,
			Desc: "suback",
			RawBytes: []byte{
				Suback << 4, 3,
				0, 15,
				0,
			},
			Packet: &SubackPacket{
				FixedHeader:     FixedHeader{Type: Suback, Remaining: 3},
				ProtocolVersion: 4,
				PacketID:        15,
				ReasonCodes:     []byte{0},
			},
		},
		{
			Case: TSubackMqtt5,
			Desc: "mqtt v5 mixed grants",
			RawBytes: []byte{
				Suback << 4, 5,
				0, 15,
				0, // properties length
				1, 0x80,
			},
			Packet: &SubackPacket{
				FixedHeader:     FixedHeader{Type: Suback, Remaining: 5},
				ProtocolVersion: 5,
				PacketID:        15,
				ReasonCodes:     []byte{1, 0x80},
			},
		},
		{
			Case:  TSubackInvalidCode,
			Desc:  "v3 grant byte out of range",
			Group: "decode",
			RawBytes: []byte{
				Suback << 4, 3,
				0, 15,
				3,
			},
			FailFirst: ErrMalformedReasonCode,
		},
		{
			Case:  TSubackNoCodes,
			Desc:  "no reason codes",
			Group: "decode",
			RawBytes: []byte{
				Suback << 4, 2,
				0, 15,
			},
			FailFirst: ErrProtocolViolationNoReasonCodes,
		},
	},
	Unsubscribe: {
		{
			Case: TUnsubscribe,
			Desc: "unsubscribe",
			RawBytes: []byte{
				Unsubscribe<<4 | 2, 7,
				0, 15,
				0, 3, 'a', '/', 'b',
			},
			Packet: &UnsubscribePacket{
				FixedHeader:     FixedHeader{Type: Unsubscribe, Qos: 1, Remaining: 7},
				ProtocolVersion: 4,
				PacketID:        15,
				Filters:         []string{"a/b"},
			},
		},
		{
			Case: TUnsubscribeMqtt5,
			Desc: "mqtt v5",
			RawBytes: []byte{
				Unsubscribe<<4 | 2, 8,
				0, 15,
				0, // properties length
				0, 3, 'a', '/', 'b',
			},
			Packet: &UnsubscribePacket{
				FixedHeader:     FixedHeader{Type: Unsubscribe, Qos: 1, Remaining: 8},
				ProtocolVersion: 5,
				PacketID:        15,
				Filters:         []string{"a/b"},
			},
		},
		{
			Case:  TUnsubscribeNoFilters,
			Desc:  "no topic filters",
			Group: "decode",
			RawBytes: []byte{
				Unsubscribe<<4 | 2, 2,
				0, 15,
			},
			FailFirst: ErrProtocolViolationNoFilters,
		},
	},
	Unsuback: {
		{
			Case: TUnsuback,
			Desc: "unsuback",
			RawBytes: []byte{
				Unsuback << 4, 2,
				0, 15,
			},
			Packet: &UnsubackPacket{
				FixedHeader:     FixedHeader{Type: Unsuback, Remaining: 2},
				ProtocolVersion: 4,
				PacketID:        15,
			},
		},
		{
			Case: TUnsubackMqtt5,
			Desc: "mqtt v5",
			RawBytes: []byte{
				Unsuback << 4, 4,
				0, 15,
				0, // properties length
				0,
			},
			Packet: &UnsubackPacket{
				FixedHeader:     FixedHeader{Type: Unsuback, Remaining: 4},
				ProtocolVersion: 5,
				PacketID:        15,
				ReasonCodes:     []byte{0},
			},
		},
		{
			Case:    TUnsubackMqtt5NoCodes,
			Desc:    "v5 without reason codes",
			Group:   "decode",
			Version: 5,
			RawBytes: []byte{
				Unsuback << 4, 3,
				0, 15,
				0, // properties length
			},
			FailFirst: ErrProtocolViolationNoReasonCodes,
		},
	},
	Pingreq: {
		{
			Case: TPingreq,
			Desc: "pingreq",
			RawBytes: []byte{
				Pingreq << 4, 0,
			},
			Packet: &PingreqPacket{
				FixedHeader: FixedHeader{Type: Pingreq},
			},
		},
		{
			Case:  TPingreqMalSurplus,
			Desc:  "pingreq with surplus body",
			Group: "decode",
			RawBytes: []byte{
				Pingreq << 4, 1,
				0,
			},
			FailFirst: ErrMalformedPacketLength,
		},
	},
	Pingresp: {
		{
			Case: TPingresp,
			Desc: "pingresp",
			RawBytes: []byte{
				Pingresp << 4, 0,
			},
			Packet: &PingrespPacket{
				FixedHeader: FixedHeader{Type: Pingresp},
			},
		},
	},
	Disconnect: {
		{
			Case: TDisconnect,
			Desc: "disconnect",
			RawBytes: []byte{
				Disconnect << 4, 0,
			},
			Packet: &DisconnectPacket{
				FixedHeader:     FixedHeader{Type: Disconnect},
				ProtocolVersion: 4,
			},
		},
		{
			Case: TDisconnectMqtt5,
			Desc: "mqtt v5 disconnect with will message",
			RawBytes: []byte{
				Disconnect << 4, 1,
				0x04,
			},
			Packet: &DisconnectPacket{
				FixedHeader:     FixedHeader{Type: Disconnect, Remaining: 1},
				ProtocolVersion: 5,
				ReasonCode:      0x04,
			},
		},
		{
			Case:  TDisconnectMqtt5LongForm,
			Desc:  "mqtt v5 disconnect with empty properties",
			Group: "decode",
			RawBytes: []byte{
				Disconnect << 4, 2,
				0x04,
				0, // properties length
			},
			Packet: &DisconnectPacket{
				FixedHeader:     FixedHeader{Type: Disconnect, Remaining: 2},
				ProtocolVersion: 5,
				ReasonCode:      0x04,
			},
		},
		{
			Case:    TDisconnectMqtt5BadReason,
			Desc:    "reason code not valid for disconnect",
			Group:   "decode",
			Version: 5,
			RawBytes: []byte{
				Disconnect << 4, 1,
				0x05,
			},
			FailFirst: ErrProtocolViolationInvalidReason,
		},
	},
	Auth: {
		{
			Case: TAuth,
			Desc: "continue authentication",
			RawBytes: []byte{
				Auth << 4, 1,
				0x18,
			},
			Packet: &AuthPacket{
				FixedHeader: FixedHeader{Type: Auth, Remaining: 1},
				ReasonCode:  0x18,
			},
		},
		{
			Case: TAuthMqtt5Props,
			Desc: "re-authenticate with method",
			RawBytes: []byte{
				Auth << 4, 10,
				0x19,
				8, // properties length
				21, 0, 5, 'S', 'C', 'R', 'A', 'M', // authentication method
			},
			Packet: &AuthPacket{
				FixedHeader: FixedHeader{Type: Auth, Remaining: 10},
				ReasonCode:  0x19,
				Properties: Properties{
					AuthenticationMethod: "SCRAM",
				},
			},
		},
		{
			Case:    TAuthInvalidReason,
			Desc:    "reason code not valid for auth",
			Group:   "decode",
			Version: 5,
			RawBytes: []byte{
				Auth << 4, 1,
				0x99,
			},
			FailFirst: ErrProtocolViolationInvalidReason,
		},
		{
			Case: TAuthMinimal,
			Desc: "empty body means success",
			RawBytes: []byte{
				Auth << 4, 0,
			},
			Packet: &AuthPacket{
				FixedHeader: FixedHeader{Type: Auth},
			},
		},
	},
}
