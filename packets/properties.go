// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"fmt"
)

// Property identifiers for MQTT 5 packets.
const (
	PropPayloadFormat          byte = 1
	PropMessageExpiryInterval  byte = 2
	PropContentType            byte = 3
	PropResponseTopic          byte = 8
	PropCorrelationData        byte = 9
	PropSubscriptionIdentifier byte = 11
	PropSessionExpiryInterval  byte = 17
	PropAssignedClientID       byte = 18
	PropServerKeepAlive        byte = 19
	PropAuthenticationMethod   byte = 21
	PropAuthenticationData     byte = 22
	PropRequestProblemInfo     byte = 23
	PropWillDelayInterval      byte = 24
	PropRequestResponseInfo    byte = 25
	PropResponseInfo           byte = 26
	PropServerReference        byte = 28
	PropReasonString           byte = 31
	PropReceiveMaximum         byte = 33
	PropTopicAliasMaximum      byte = 34
	PropTopicAlias             byte = 35
	PropMaximumQos             byte = 36
	PropRetainAvailable        byte = 37
	PropUser                   byte = 38
	PropMaximumPacketSize      byte = 39
	PropWildcardSubAvailable   byte = 40
	PropSubIDAvailable         byte = 41
	PropSharedSubAvailable     byte = 42
)

// validPacketProperties indicates which properties are valid for which packet types.
var validPacketProperties = map[byte]map[byte]byte{
	PropPayloadFormat:          {Publish: 1, WillProperties: 1},
	PropMessageExpiryInterval:  {Publish: 1, WillProperties: 1},
	PropContentType:            {Publish: 1, WillProperties: 1},
	PropResponseTopic:          {Publish: 1, WillProperties: 1},
	PropCorrelationData:        {Publish: 1, WillProperties: 1},
	PropSubscriptionIdentifier: {Publish: 1, Subscribe: 1},
	PropSessionExpiryInterval:  {Connect: 1, Connack: 1, Disconnect: 1},
	PropAssignedClientID:       {Connack: 1},
	PropServerKeepAlive:        {Connack: 1},
	PropAuthenticationMethod:   {Connect: 1, Connack: 1, Auth: 1},
	PropAuthenticationData:     {Connect: 1, Connack: 1, Auth: 1},
	PropRequestProblemInfo:     {Connect: 1},
	PropWillDelayInterval:      {WillProperties: 1},
	PropRequestResponseInfo:    {Connect: 1},
	PropResponseInfo:           {Connack: 1},
	PropServerReference:        {Connack: 1, Disconnect: 1},
	PropReasonString:           {Connack: 1, Puback: 1, Pubrec: 1, Pubrel: 1, Pubcomp: 1, Suback: 1, Unsuback: 1, Disconnect: 1, Auth: 1},
	PropReceiveMaximum:         {Connect: 1, Connack: 1},
	PropTopicAliasMaximum:      {Connect: 1, Connack: 1},
	PropTopicAlias:             {Publish: 1},
	PropMaximumQos:             {Connack: 1},
	PropRetainAvailable:        {Connack: 1},
	PropUser:                   {Connect: 1, Connack: 1, Publish: 1, Puback: 1, Pubrec: 1, Pubrel: 1, Pubcomp: 1, Subscribe: 1, Suback: 1, Unsubscribe: 1, Unsuback: 1, Disconnect: 1, Auth: 1, WillProperties: 1},
	PropMaximumPacketSize:      {Connect: 1, Connack: 1},
	PropWildcardSubAvailable:   {Connack: 1},
	PropSubIDAvailable:         {Connack: 1},
	PropSharedSubAvailable:     {Connack: 1},
}

// repeatableProperties are the only properties that may occur more than once
// in a packet; every other property is unique and a second occurrence is
// malformed. [MQTT-2.2.2.2]
var repeatableProperties = map[byte]byte{
	PropSubscriptionIdentifier: 1,
	PropUser:                   1,
}

// boolProperties carry a single byte whose only legal values are 0 and 1.
var boolProperties = map[byte]byte{
	PropPayloadFormat:        1,
	PropRequestProblemInfo:   1,
	PropRequestResponseInfo:  1,
	PropRetainAvailable:      1,
	PropWildcardSubAvailable: 1,
	PropSubIDAvailable:       1,
	PropSharedSubAvailable:   1,
}

// UserProperty is an arbitrary key-value pair for a packet user properties array.
type UserProperty struct { // [MQTT-1.5.7-1]
	Key string `json:"k"`
	Val string `json:"v"`
}

// Properties contains all mqtt v5 properties available for a packet.
// Some properties have valid values of 0 or not-present. In this case, we opt for
// property flags to indicate the usage of property.
// Refer to mqtt v5 2.2.2.2 Property spec for more information.
type Properties struct {
	CorrelationData           []byte         `json:"cd"`
	SubscriptionIdentifier    []int          `json:"si"`
	AuthenticationData        []byte         `json:"ad"`
	User                      []UserProperty `json:"user"`
	ContentType               string         `json:"ct"`
	ResponseTopic             string         `json:"rt"`
	AssignedClientID          string         `json:"aci"`
	AuthenticationMethod      string         `json:"am"`
	ResponseInfo              string         `json:"ri"`
	ServerReference           string         `json:"sr"`
	ReasonString              string         `json:"rs"`
	MessageExpiryInterval     uint32         `json:"me"`
	SessionExpiryInterval     uint32         `json:"sei"`
	WillDelayInterval         uint32         `json:"wdi"`
	MaximumPacketSize         uint32         `json:"mps"`
	ServerKeepAlive           uint16         `json:"ska"`
	ReceiveMaximum            uint16         `json:"rm"`
	TopicAliasMaximum         uint16         `json:"tam"`
	TopicAlias                uint16         `json:"ta"`
	PayloadFormat             byte           `json:"pf"`
	PayloadFormatFlag         bool           `json:"fpf"`
	SessionExpiryIntervalFlag bool           `json:"fsei"`
	ServerKeepAliveFlag       bool           `json:"fska"`
	RequestProblemInfo        byte           `json:"rpi"`
	RequestProblemInfoFlag    bool           `json:"frpi"`
	RequestResponseInfo       byte           `json:"rri"`
	TopicAliasFlag            bool           `json:"fta"`
	MaximumQos                byte           `json:"mqos"`
	MaximumQosFlag            bool           `json:"fmqos"`
	RetainAvailable           byte           `json:"ra"`
	RetainAvailableFlag       bool           `json:"fra"`
	WildcardSubAvailable      byte           `json:"wsa"`
	WildcardSubAvailableFlag  bool           `json:"fwsa"`
	SubIDAvailable            byte           `json:"sida"`
	SubIDAvailableFlag        bool           `json:"fsida"`
	SharedSubAvailable        byte           `json:"ssa"`
	SharedSubAvailableFlag    bool           `json:"fssa"`
}

// canEncode returns true if the property type is valid for the packet type.
func (p *Properties) canEncode(pkt byte, k byte) bool {
	return validPacketProperties[k][pkt] == 1
}

// Decode decodes a property section beginning at offset into the struct and
// returns the offset of the first byte after the section. The section is
// framed by a variable byte integer length; it must be filled exactly.
// Unique properties may appear at most once. [MQTT-2.2.2.2]
func (p *Properties) Decode(pkt byte, buf []byte, offset int) (int, error) {
	n, offset, err := decodeLength(buf, offset)
	if err != nil {
		if err == ErrIncompleteBuffer {
			return 0, ErrMalformedPacketLength
		}
		return 0, err
	}

	if offset+n > len(buf) {
		return 0, ErrMalformedPacketLength
	}

	// Bound the section so an over-running property payload cannot bleed
	// into the bytes that follow it.
	section := buf[:offset+n]

	var seen uint64
	var k byte
	for offset < len(section) {
		k, offset, err = decodeByte(section, offset)
		if err != nil {
			return 0, err
		}

		if _, ok := validPacketProperties[k][pkt]; !ok {
			return 0, fmt.Errorf("property %v not valid for %s packet: %w", k, Names[pkt], ErrMalformedBadProperty)
		}

		if repeatableProperties[k] == 0 {
			if seen&(1<<k) != 0 {
				return 0, fmt.Errorf("property %v: %w", k, ErrMalformedDuplicateProperty)
			}
			seen |= 1 << k
		}

		if boolProperties[k] == 1 && offset < len(section) && section[offset] > 1 {
			return 0, fmt.Errorf("property %v: %w", k, ErrMalformedPropertyPayload)
		}

		switch k {
		case PropPayloadFormat:
			p.PayloadFormat, offset, err = decodeByte(section, offset)
			p.PayloadFormatFlag = true
		case PropMessageExpiryInterval:
			p.MessageExpiryInterval, offset, err = decodeUint32(section, offset)
		case PropContentType:
			p.ContentType, offset, err = decodeString(section, offset)
		case PropResponseTopic:
			p.ResponseTopic, offset, err = decodeString(section, offset)
		case PropCorrelationData:
			p.CorrelationData, offset, err = decodeBytes(section, offset)
		case PropSubscriptionIdentifier:
			var id int
			id, offset, err = decodeLength(section, offset)
			if err == nil && id == 0 {
				return 0, fmt.Errorf("subscription identifier must be non-zero: %w", ErrMalformedPropertyPayload)
			}
			p.SubscriptionIdentifier = append(p.SubscriptionIdentifier, id)
		case PropSessionExpiryInterval:
			p.SessionExpiryInterval, offset, err = decodeUint32(section, offset)
			p.SessionExpiryIntervalFlag = true
		case PropAssignedClientID:
			p.AssignedClientID, offset, err = decodeString(section, offset)
		case PropServerKeepAlive:
			p.ServerKeepAlive, offset, err = decodeUint16(section, offset)
			p.ServerKeepAliveFlag = true
		case PropAuthenticationMethod:
			p.AuthenticationMethod, offset, err = decodeString(section, offset)
		case PropAuthenticationData:
			p.AuthenticationData, offset, err = decodeBytes(section, offset)
		case PropRequestProblemInfo:
			p.RequestProblemInfo, offset, err = decodeByte(section, offset)
			p.RequestProblemInfoFlag = true
		case PropWillDelayInterval:
			p.WillDelayInterval, offset, err = decodeUint32(section, offset)
		case PropRequestResponseInfo:
			p.RequestResponseInfo, offset, err = decodeByte(section, offset)
		case PropResponseInfo:
			p.ResponseInfo, offset, err = decodeString(section, offset)
		case PropServerReference:
			p.ServerReference, offset, err = decodeString(section, offset)
		case PropReasonString:
			p.ReasonString, offset, err = decodeString(section, offset)
		case PropReceiveMaximum:
			p.ReceiveMaximum, offset, err = decodeUint16(section, offset)
		case PropTopicAliasMaximum:
			p.TopicAliasMaximum, offset, err = decodeUint16(section, offset)
		case PropTopicAlias:
			p.TopicAlias, offset, err = decodeUint16(section, offset)
			p.TopicAliasFlag = true
		case PropMaximumQos:
			p.MaximumQos, offset, err = decodeByte(section, offset)
			p.MaximumQosFlag = true
			if err == nil && p.MaximumQos > 1 {
				return 0, fmt.Errorf("maximum qos: %w", ErrMalformedPropertyPayload)
			}
		case PropRetainAvailable:
			p.RetainAvailable, offset, err = decodeByte(section, offset)
			p.RetainAvailableFlag = true
		case PropUser:
			var key, val string
			key, offset, err = decodeString(section, offset)
			if err != nil {
				return 0, err
			}
			val, offset, err = decodeString(section, offset)
			p.User = append(p.User, UserProperty{Key: key, Val: val})
		case PropMaximumPacketSize:
			p.MaximumPacketSize, offset, err = decodeUint32(section, offset)
		case PropWildcardSubAvailable:
			p.WildcardSubAvailable, offset, err = decodeByte(section, offset)
			p.WildcardSubAvailableFlag = true
		case PropSubIDAvailable:
			p.SubIDAvailable, offset, err = decodeByte(section, offset)
			p.SubIDAvailableFlag = true
		case PropSharedSubAvailable:
			p.SharedSubAvailable, offset, err = decodeByte(section, offset)
			p.SharedSubAvailableFlag = true
		}

		if err != nil {
			if err == ErrIncompleteBuffer {
				err = ErrMalformedPacketLength
			}
			return 0, err
		}
	}

	return offset, nil
}

// Size returns the number of payload bytes the property section will occupy
// for a packet type, excluding the section's own length prefix. Properties
// that are not legal for the packet type are skipped, matching Encode.
func (p *Properties) Size(pkt byte) int {
	if p == nil {
		return 0
	}

	var n int
	if p.canEncode(pkt, PropPayloadFormat) && p.PayloadFormatFlag {
		n += 2
	}
	if p.canEncode(pkt, PropMessageExpiryInterval) && p.MessageExpiryInterval > 0 {
		n += 5
	}
	if p.canEncode(pkt, PropContentType) && p.ContentType != "" {
		n += 1 + stringSize(len(p.ContentType))
	}
	if p.canEncode(pkt, PropResponseTopic) && p.ResponseTopic != "" {
		n += 1 + stringSize(len(p.ResponseTopic))
	}
	if p.canEncode(pkt, PropCorrelationData) && len(p.CorrelationData) > 0 {
		n += 1 + stringSize(len(p.CorrelationData))
	}
	if p.canEncode(pkt, PropSubscriptionIdentifier) {
		for _, id := range p.SubscriptionIdentifier {
			if id > 0 {
				n += 1 + lengthSize(id)
			}
		}
	}
	if p.canEncode(pkt, PropSessionExpiryInterval) && p.SessionExpiryIntervalFlag {
		n += 5
	}
	if p.canEncode(pkt, PropAssignedClientID) && p.AssignedClientID != "" {
		n += 1 + stringSize(len(p.AssignedClientID))
	}
	if p.canEncode(pkt, PropServerKeepAlive) && p.ServerKeepAliveFlag {
		n += 3
	}
	if p.canEncode(pkt, PropAuthenticationMethod) && p.AuthenticationMethod != "" {
		n += 1 + stringSize(len(p.AuthenticationMethod))
	}
	if p.canEncode(pkt, PropAuthenticationData) && len(p.AuthenticationData) > 0 {
		n += 1 + stringSize(len(p.AuthenticationData))
	}
	if p.canEncode(pkt, PropRequestProblemInfo) && p.RequestProblemInfoFlag {
		n += 2
	}
	if p.canEncode(pkt, PropWillDelayInterval) && p.WillDelayInterval > 0 {
		n += 5
	}
	if p.canEncode(pkt, PropRequestResponseInfo) && p.RequestResponseInfo > 0 {
		n += 2
	}
	if p.canEncode(pkt, PropResponseInfo) && p.ResponseInfo != "" {
		n += 1 + stringSize(len(p.ResponseInfo))
	}
	if p.canEncode(pkt, PropServerReference) && p.ServerReference != "" {
		n += 1 + stringSize(len(p.ServerReference))
	}
	if p.canEncode(pkt, PropReasonString) && p.ReasonString != "" {
		n += 1 + stringSize(len(p.ReasonString))
	}
	if p.canEncode(pkt, PropReceiveMaximum) && p.ReceiveMaximum > 0 {
		n += 3
	}
	if p.canEncode(pkt, PropTopicAliasMaximum) && p.TopicAliasMaximum > 0 {
		n += 3
	}
	if p.canEncode(pkt, PropTopicAlias) && p.TopicAliasFlag && p.TopicAlias > 0 {
		n += 3
	}
	if p.canEncode(pkt, PropMaximumQos) && p.MaximumQosFlag && p.MaximumQos < 2 {
		n += 2
	}
	if p.canEncode(pkt, PropRetainAvailable) && p.RetainAvailableFlag {
		n += 2
	}
	if p.canEncode(pkt, PropUser) {
		for _, v := range p.User {
			n += 1 + stringSize(len(v.Key)) + stringSize(len(v.Val))
		}
	}
	if p.canEncode(pkt, PropMaximumPacketSize) && p.MaximumPacketSize > 0 {
		n += 5
	}
	if p.canEncode(pkt, PropWildcardSubAvailable) && p.WildcardSubAvailableFlag {
		n += 2
	}
	if p.canEncode(pkt, PropSubIDAvailable) && p.SubIDAvailableFlag {
		n += 2
	}
	if p.canEncode(pkt, PropSharedSubAvailable) && p.SharedSubAvailableFlag {
		n += 2
	}

	return n
}

// Validate checks the encoder-side constraints of every property that will
// be emitted for the packet type.
func (p *Properties) Validate(pkt byte) error {
	if p == nil {
		return nil
	}

	for _, s := range []string{
		p.ContentType, p.ResponseTopic, p.AssignedClientID, p.AuthenticationMethod,
		p.ResponseInfo, p.ServerReference, p.ReasonString,
	} {
		if err := validateString(s); err != nil {
			return fmt.Errorf("properties: %w", err)
		}
	}
	for _, v := range p.User {
		if err := validateString(v.Key); err != nil {
			return fmt.Errorf("user property key: %w", err)
		}
		if err := validateString(v.Val); err != nil {
			return fmt.Errorf("user property value: %w", err)
		}
	}
	if len(p.CorrelationData) > MaxStringLength || len(p.AuthenticationData) > MaxStringLength {
		return ErrMalformedStringLength
	}
	if p.PayloadFormatFlag && p.PayloadFormat > 1 {
		return ErrMalformedPropertyPayload
	}
	for _, id := range p.SubscriptionIdentifier {
		if id < 0 || id > MaxRemainingLength {
			return fmt.Errorf("subscription identifier: %w", ErrMalformedPropertyPayload)
		}
	}

	return nil
}

// Encode writes the property section, including its length prefix, into buf
// at offset and returns the offset of the next unwritten byte. The emitted
// bytes match Size(pkt) exactly.
func (p *Properties) Encode(pkt byte, buf []byte, offset int) int {
	n := p.Size(pkt)
	offset = encodeLength(buf, offset, n)
	if p == nil || n == 0 {
		return offset
	}

	if p.canEncode(pkt, PropPayloadFormat) && p.PayloadFormatFlag {
		buf[offset] = PropPayloadFormat
		buf[offset+1] = p.PayloadFormat
		offset += 2
	}
	if p.canEncode(pkt, PropMessageExpiryInterval) && p.MessageExpiryInterval > 0 {
		buf[offset] = PropMessageExpiryInterval
		offset = encodeUint32(buf, offset+1, p.MessageExpiryInterval)
	}
	if p.canEncode(pkt, PropContentType) && p.ContentType != "" {
		buf[offset] = PropContentType
		offset = encodeString(buf, offset+1, p.ContentType) // [MQTT-3.3.2-19]
	}
	if p.canEncode(pkt, PropResponseTopic) && p.ResponseTopic != "" {
		buf[offset] = PropResponseTopic
		offset = encodeString(buf, offset+1, p.ResponseTopic) // [MQTT-3.3.2-13]
	}
	if p.canEncode(pkt, PropCorrelationData) && len(p.CorrelationData) > 0 {
		buf[offset] = PropCorrelationData
		offset = encodeBytes(buf, offset+1, p.CorrelationData)
	}
	if p.canEncode(pkt, PropSubscriptionIdentifier) {
		for _, id := range p.SubscriptionIdentifier {
			if id > 0 {
				buf[offset] = PropSubscriptionIdentifier
				offset = encodeLength(buf, offset+1, id)
			}
		}
	}
	if p.canEncode(pkt, PropSessionExpiryInterval) && p.SessionExpiryIntervalFlag { // [MQTT-3.14.2-2]
		buf[offset] = PropSessionExpiryInterval
		offset = encodeUint32(buf, offset+1, p.SessionExpiryInterval)
	}
	if p.canEncode(pkt, PropAssignedClientID) && p.AssignedClientID != "" {
		buf[offset] = PropAssignedClientID
		offset = encodeString(buf, offset+1, p.AssignedClientID)
	}
	if p.canEncode(pkt, PropServerKeepAlive) && p.ServerKeepAliveFlag {
		buf[offset] = PropServerKeepAlive
		offset = encodeUint16(buf, offset+1, p.ServerKeepAlive)
	}
	if p.canEncode(pkt, PropAuthenticationMethod) && p.AuthenticationMethod != "" {
		buf[offset] = PropAuthenticationMethod
		offset = encodeString(buf, offset+1, p.AuthenticationMethod)
	}
	if p.canEncode(pkt, PropAuthenticationData) && len(p.AuthenticationData) > 0 {
		buf[offset] = PropAuthenticationData
		offset = encodeBytes(buf, offset+1, p.AuthenticationData)
	}
	if p.canEncode(pkt, PropRequestProblemInfo) && p.RequestProblemInfoFlag {
		buf[offset] = PropRequestProblemInfo
		buf[offset+1] = p.RequestProblemInfo
		offset += 2
	}
	if p.canEncode(pkt, PropWillDelayInterval) && p.WillDelayInterval > 0 {
		buf[offset] = PropWillDelayInterval
		offset = encodeUint32(buf, offset+1, p.WillDelayInterval)
	}
	if p.canEncode(pkt, PropRequestResponseInfo) && p.RequestResponseInfo > 0 {
		buf[offset] = PropRequestResponseInfo
		buf[offset+1] = p.RequestResponseInfo
		offset += 2
	}
	if p.canEncode(pkt, PropResponseInfo) && p.ResponseInfo != "" {
		buf[offset] = PropResponseInfo
		offset = encodeString(buf, offset+1, p.ResponseInfo)
	}
	if p.canEncode(pkt, PropServerReference) && p.ServerReference != "" {
		buf[offset] = PropServerReference
		offset = encodeString(buf, offset+1, p.ServerReference)
	}
	if p.canEncode(pkt, PropReasonString) && p.ReasonString != "" {
		buf[offset] = PropReasonString
		offset = encodeString(buf, offset+1, p.ReasonString)
	}
	if p.canEncode(pkt, PropReceiveMaximum) && p.ReceiveMaximum > 0 {
		buf[offset] = PropReceiveMaximum
		offset = encodeUint16(buf, offset+1, p.ReceiveMaximum)
	}
	if p.canEncode(pkt, PropTopicAliasMaximum) && p.TopicAliasMaximum > 0 {
		buf[offset] = PropTopicAliasMaximum
		offset = encodeUint16(buf, offset+1, p.TopicAliasMaximum)
	}
	if p.canEncode(pkt, PropTopicAlias) && p.TopicAliasFlag && p.TopicAlias > 0 { // [MQTT-3.3.2-8]
		buf[offset] = PropTopicAlias
		offset = encodeUint16(buf, offset+1, p.TopicAlias)
	}
	if p.canEncode(pkt, PropMaximumQos) && p.MaximumQosFlag && p.MaximumQos < 2 {
		buf[offset] = PropMaximumQos
		buf[offset+1] = p.MaximumQos
		offset += 2
	}
	if p.canEncode(pkt, PropRetainAvailable) && p.RetainAvailableFlag {
		buf[offset] = PropRetainAvailable
		buf[offset+1] = p.RetainAvailable
		offset += 2
	}
	if p.canEncode(pkt, PropUser) {
		for _, v := range p.User {
			buf[offset] = PropUser
			offset = encodeString(buf, offset+1, v.Key)
			offset = encodeString(buf, offset, v.Val)
		}
	}
	if p.canEncode(pkt, PropMaximumPacketSize) && p.MaximumPacketSize > 0 {
		buf[offset] = PropMaximumPacketSize
		offset = encodeUint32(buf, offset+1, p.MaximumPacketSize)
	}
	if p.canEncode(pkt, PropWildcardSubAvailable) && p.WildcardSubAvailableFlag {
		buf[offset] = PropWildcardSubAvailable
		buf[offset+1] = p.WildcardSubAvailable
		offset += 2
	}
	if p.canEncode(pkt, PropSubIDAvailable) && p.SubIDAvailableFlag {
		buf[offset] = PropSubIDAvailable
		buf[offset+1] = p.SubIDAvailable
		offset += 2
	}
	if p.canEncode(pkt, PropSharedSubAvailable) && p.SharedSubAvailableFlag {
		buf[offset] = PropSharedSubAvailable
		buf[offset+1] = p.SharedSubAvailable
		offset += 2
	}

	return offset
}
