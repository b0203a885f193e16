// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"testing"

	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/require"
)

func encodeTestOK(wanted TPacketCase) bool {
	return wanted.Group == "" || wanted.Group == "encode"
}

func decodeTestOK(wanted TPacketCase) bool {
	return wanted.Group == "" || wanted.Group == "decode"
}

// caseVersion determines the protocol version a fixture should be decoded
// under.
func caseVersion(wanted TPacketCase) byte {
	if wanted.Version != 0 {
		return wanted.Version
	}

	switch pk := wanted.Packet.(type) {
	case *ConnectPacket:
		return pk.ProtocolVersion
	case *ConnackPacket:
		return pk.ProtocolVersion
	case *PublishPacket:
		return pk.ProtocolVersion
	case *PubackPacket:
		return pk.ProtocolVersion
	case *PubrecPacket:
		return pk.ProtocolVersion
	case *PubrelPacket:
		return pk.ProtocolVersion
	case *PubcompPacket:
		return pk.ProtocolVersion
	case *SubscribePacket:
		return pk.ProtocolVersion
	case *SubackPacket:
		return pk.ProtocolVersion
	case *UnsubscribePacket:
		return pk.ProtocolVersion
	case *UnsubackPacket:
		return pk.ProtocolVersion
	case *DisconnectPacket:
		return pk.ProtocolVersion
	case *AuthPacket:
		return Version5
	default:
		return Version311
	}
}

// copyPacket returns a fresh instance of a fixture packet so encoders can
// mutate headers without corrupting the shared table.
func copyPacket(t *testing.T, src Packet) Packet {
	t.Helper()

	var dst Packet
	switch src.(type) {
	case *ConnectPacket:
		dst = new(ConnectPacket)
	case *ConnackPacket:
		dst = new(ConnackPacket)
	case *PublishPacket:
		dst = new(PublishPacket)
	case *PubackPacket:
		dst = new(PubackPacket)
	case *PubrecPacket:
		dst = new(PubrecPacket)
	case *PubrelPacket:
		dst = new(PubrelPacket)
	case *PubcompPacket:
		dst = new(PubcompPacket)
	case *SubscribePacket:
		dst = new(SubscribePacket)
	case *SubackPacket:
		dst = new(SubackPacket)
	case *UnsubscribePacket:
		dst = new(UnsubscribePacket)
	case *UnsubackPacket:
		dst = new(UnsubackPacket)
	case *PingreqPacket:
		dst = new(PingreqPacket)
	case *PingrespPacket:
		dst = new(PingrespPacket)
	case *DisconnectPacket:
		dst = new(DisconnectPacket)
	case *AuthPacket:
		dst = new(AuthPacket)
	default:
		t.Fatalf("unknown packet type %T", src)
	}

	err := copier.Copy(dst, src)
	require.NoError(t, err)

	return dst
}

func TestDecodePackets(t *testing.T) {
	for packetType, cases := range TPacketData {
		for i, wanted := range cases {
			if !decodeTestOK(wanted) {
				continue
			}

			s := NewStream(wanted.RawBytes)
			pk, err := s.ReadPacket(caseVersion(wanted))
			if wanted.FailFirst != nil {
				require.Error(t, err, "Expected decode error [%s i:%d] %s", Names[packetType], i, wanted.Desc)
				require.ErrorIs(t, err, wanted.FailFirst, "Expected fail state [%s i:%d] %s", Names[packetType], i, wanted.Desc)
				continue
			}

			require.NoError(t, err, "Error decoding packet [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, wanted.Packet, pk, "Mismatched packet values [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, 0, s.Buffered(), "Expected fully consumed buffer [%s i:%d] %s", Names[packetType], i, wanted.Desc)
		}
	}
}

func TestEncodePackets(t *testing.T) {
	for packetType, cases := range TPacketData {
		for i, wanted := range cases {
			if !encodeTestOK(wanted) {
				continue
			}

			pk := copyPacket(t, wanted.Packet)
			remaining, total, err := pk.Size()
			if wanted.Expect != nil {
				require.Error(t, err, "Expected sizing error [%s i:%d] %s", Names[packetType], i, wanted.Desc)
				require.ErrorIs(t, err, wanted.Expect, "Expected fail state [%s i:%d] %s", Names[packetType], i, wanted.Desc)
				continue
			}

			require.NoError(t, err, "Error sizing packet [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, len(wanted.RawBytes), total, "Mismatched packet length [%s i:%d] %s", Names[packetType], i, wanted.Desc)

			buf := make([]byte, total)
			n, err := pk.Encode(buf)
			require.NoError(t, err, "Expected no error writing buffer [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, total, n, "Mismatched written length [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.EqualValues(t, wanted.RawBytes, buf, "Mismatched byte values [%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, total, 1+lengthSize(remaining)+remaining, "Mismatched total [%s i:%d] %s", Names[packetType], i, wanted.Desc)
		}
	}
}

func TestEncodeInsufficientBuffer(t *testing.T) {
	wanted := TPacketData[Publish].Get(TPublishBasic)
	pk := copyPacket(t, wanted.Packet)

	_, total, err := pk.Size()
	require.NoError(t, err)

	_, err = pk.Encode(make([]byte, total-1))
	require.ErrorIs(t, err, ErrInsufficientBuffer)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for packetType, cases := range TPacketData {
		for i, wanted := range cases {
			if wanted.Group != "" {
				continue
			}

			pk := copyPacket(t, wanted.Packet)
			_, total, err := pk.Size()
			require.NoError(t, err, "[%s i:%d] %s", Names[packetType], i, wanted.Desc)

			buf := make([]byte, total)
			_, err = pk.Encode(buf)
			require.NoError(t, err, "[%s i:%d] %s", Names[packetType], i, wanted.Desc)

			rt, err := NewStream(buf).ReadPacket(caseVersion(wanted))
			require.NoError(t, err, "[%s i:%d] %s", Names[packetType], i, wanted.Desc)
			require.Equal(t, wanted.Packet, rt, "Round trip mismatch [%s i:%d] %s", Names[packetType], i, wanted.Desc)
		}
	}
}

// TestDecodeTruncatedBodies feeds every fixture body to its decoder at every
// truncation point. A truncated body must produce an error or a shorter
// valid packet (types whose tail is opaque), never a panic.
func TestDecodeTruncatedBodies(t *testing.T) {
	for packetType, cases := range TPacketData {
		for i, wanted := range cases {
			if len(wanted.RawBytes) < 2 {
				continue
			}

			body := wanted.RawBytes[2:]
			for cut := 0; cut <= len(body); cut++ {
				pk := NewPacket(wanted.RawBytes[0]>>4, caseVersion(wanted))
				require.NotNil(t, pk, "[%s i:%d] %s", Names[packetType], i, wanted.Desc)

				if p, ok := pk.(*PublishPacket); ok {
					require.NoError(t, p.FixedHeader.Decode(wanted.RawBytes[0]))
				}

				_ = pk.Decode(body[:cut])
			}
		}
	}
}

func TestNewPacket(t *testing.T) {
	for packetType := Connect; packetType <= Auth; packetType++ {
		pk := NewPacket(packetType, Version5)
		require.NotNil(t, pk, "Expected packet for type %s", Names[packetType])
	}
	require.Nil(t, NewPacket(Reserved, Version5))
}

func TestNewFixedHeader(t *testing.T) {
	require.Equal(t, byte(1), NewFixedHeader(Subscribe).Qos)
	require.Equal(t, byte(1), NewFixedHeader(Unsubscribe).Qos)
	require.Equal(t, byte(1), NewFixedHeader(Pubrel).Qos)
	require.Equal(t, byte(0), NewFixedHeader(Publish).Qos)
}

func BenchmarkPublishDecode(b *testing.B) {
	raw := TPacketData[Publish].Get(TPublishBasic).RawBytes
	for n := 0; n < b.N; n++ {
		pk := &PublishPacket{FixedHeader: FixedHeader{Type: Publish, Remaining: len(raw) - 2}, ProtocolVersion: 4}
		if err := pk.Decode(raw[2:]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPublishEncode(b *testing.B) {
	wanted := TPacketData[Publish].Get(TPublishBasic)
	pk := &PublishPacket{ProtocolVersion: 4, TopicName: "test", Payload: []byte("test")}
	buf := make([]byte, len(wanted.RawBytes))
	for n := 0; n < b.N; n++ {
		if _, err := pk.Encode(buf); err != nil {
			b.Fatal(err)
		}
	}
}
