// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertiesDecode(t *testing.T) {
	buf := []byte{
		24, // section length
		1, 1, // payload format indicator
		2, 0, 0, 0, 60, // message expiry interval
		3, 0, 4, 'j', 's', 'o', 'n', // content type
		35, 0, 5, // topic alias
		38, 0, 1, 'k', 0, 1, 'v', // user property
	}

	var p Properties
	next, err := p.Decode(Publish, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), next)

	require.True(t, p.PayloadFormatFlag)
	require.Equal(t, byte(1), p.PayloadFormat)
	require.Equal(t, uint32(60), p.MessageExpiryInterval)
	require.Equal(t, "json", p.ContentType)
	require.True(t, p.TopicAliasFlag)
	require.Equal(t, uint16(5), p.TopicAlias)
	require.Equal(t, []UserProperty{{Key: "k", Val: "v"}}, p.User)
}

func TestPropertiesDecodeEmpty(t *testing.T) {
	var p Properties
	next, err := p.Decode(Publish, []byte{0}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, next)
	require.Equal(t, Properties{}, p)
}

func TestPropertiesDecodeBadProperty(t *testing.T) {
	// Maximum qos is a CONNACK property; it cannot appear in a PUBLISH.
	buf := []byte{2, 36, 1}

	var p Properties
	_, err := p.Decode(Publish, buf, 0)
	require.ErrorIs(t, err, ErrMalformedBadProperty)
}

func TestPropertiesDecodeDuplicateUnique(t *testing.T) {
	buf := []byte{4, 1, 1, 1, 0}

	var p Properties
	_, err := p.Decode(Publish, buf, 0)
	require.ErrorIs(t, err, ErrMalformedDuplicateProperty)
}

func TestPropertiesDecodeRepeatableAllowed(t *testing.T) {
	// Two user properties and two subscription identifiers are legal.
	buf := []byte{
		19,
		11, 1, // subscription identifier 1
		11, 0x80, 0x01, // subscription identifier 128
		38, 0, 1, 'a', 0, 1, 'b', // user property
		38, 0, 1, 'c', 0, 1, 'd', // user property
	}

	var p Properties
	next, err := p.Decode(Publish, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), next)
	require.Equal(t, []int{1, 128}, p.SubscriptionIdentifier)
	require.Len(t, p.User, 2)
}

func TestPropertiesDecodeBadPayloads(t *testing.T) {
	for _, wanted := range []struct {
		buf  []byte
		desc string
	}{
		{[]byte{2, 1, 2}, "payload format indicator out of range"},
		{[]byte{2, 11, 0}, "zero subscription identifier"},
	} {
		var p Properties
		_, err := p.Decode(Publish, wanted.buf, 0)
		require.ErrorIs(t, err, ErrMalformedPropertyPayload, wanted.desc)
	}

	var p Properties
	_, err := p.Decode(Connack, []byte{2, 36, 2}, 0)
	require.ErrorIs(t, err, ErrMalformedPropertyPayload, "maximum qos out of range")
}

func TestPropertiesDecodeOverrun(t *testing.T) {
	// The section length cuts a uint32 payload short.
	buf := []byte{3, 2, 0, 0, 0, 60}

	var p Properties
	_, err := p.Decode(Publish, buf, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestPropertiesDecodeSectionExceedsBuffer(t *testing.T) {
	var p Properties
	_, err := p.Decode(Publish, []byte{10, 1, 1}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestPropertiesEncodeRoundTrip(t *testing.T) {
	props := Properties{
		PayloadFormat:         1,
		PayloadFormatFlag:     true,
		MessageExpiryInterval: 60,
		ContentType:           "json",
		ResponseTopic:         "replies/1",
		CorrelationData:       []byte{0x01, 0x02},
		TopicAlias:            5,
		TopicAliasFlag:        true,
		User: []UserProperty{
			{Key: "k1", Val: "v1"},
			{Key: "k2", Val: "v2"},
		},
		SubscriptionIdentifier: []int{321},
	}

	n := props.Size(Publish)
	require.Greater(t, n, 0)

	buf := make([]byte, lengthSize(n)+n)
	end := props.Encode(Publish, buf, 0)
	require.Equal(t, len(buf), end)

	var rt Properties
	next, err := rt.Decode(Publish, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), next)
	require.Equal(t, props, rt)
}

func TestPropertiesEncodeSkipsForeignProperties(t *testing.T) {
	// A connack-only property set on a publish is not emitted.
	props := Properties{
		MaximumQos:     1,
		MaximumQosFlag: true,
	}
	require.Equal(t, 0, props.Size(Publish))
	require.Equal(t, 2, props.Size(Connack))
}

func TestPropertiesValidate(t *testing.T) {
	require.NoError(t, (&Properties{ContentType: "json"}).Validate(Publish))

	require.ErrorIs(t, (&Properties{ContentType: "a\x00b"}).Validate(Publish), ErrMalformedInvalidUTF8)
	require.ErrorIs(t, (&Properties{PayloadFormat: 2, PayloadFormatFlag: true}).Validate(Publish), ErrMalformedPropertyPayload)
	require.ErrorIs(t, (&Properties{SubscriptionIdentifier: []int{MaxRemainingLength + 1}}).Validate(Subscribe), ErrMalformedPropertyPayload)
}

func TestPropertiesWillSubset(t *testing.T) {
	// Will delay interval belongs to will properties and nowhere else.
	buf := []byte{5, 24, 0, 0, 0, 30}

	var p Properties
	next, err := p.Decode(WillProperties, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), next)
	require.Equal(t, uint32(30), p.WillDelayInterval)

	var q Properties
	_, err = q.Decode(Publish, buf, 0)
	require.ErrorIs(t, err, ErrMalformedBadProperty)
}
