// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The corpus holds byte-level scenarios transcribed from the OASIS MQTT
// specifications; each case decodes a hex dump and checks the fields a
// conformant decoder must produce.

type corpusExpect struct {
	ClientID       string  `yaml:"client_id"`
	KeepAlive      *uint16 `yaml:"keep_alive"`
	CleanSession   *bool   `yaml:"clean_session"`
	SessionPresent *bool   `yaml:"session_present"`
	ReturnCode     *byte   `yaml:"return_code"`
	Topic          string  `yaml:"topic"`
	Qos            *byte   `yaml:"qos"`
	PacketID       *uint16 `yaml:"packet_id"`
	Payload        string  `yaml:"payload"`
	Filter         string  `yaml:"filter"`
	FilterQos      *byte   `yaml:"filter_qos"`
}

type corpusCase struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Version byte         `yaml:"version"`
	Hex     string       `yaml:"hex"`
	Error   string       `yaml:"error"`
	Expect  corpusExpect `yaml:"expect"`
}

type corpusFile struct {
	Packets []corpusCase `yaml:"packets"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()

	raw, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var corpus corpusFile
	require.NoError(t, yaml.Unmarshal(raw, &corpus))
	require.NotEmpty(t, corpus.Packets)

	return corpus.Packets
}

func TestSpecCorpus(t *testing.T) {
	for _, tcase := range loadCorpus(t) {
		t.Run(tcase.Name, func(t *testing.T) {
			raw, err := hex.DecodeString(strings.ReplaceAll(tcase.Hex, " ", ""))
			require.NoError(t, err)

			pk, err := NewStream(raw).ReadPacket(tcase.Version)
			if tcase.Error != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tcase.Error)
				return
			}
			require.NoError(t, err)

			want := tcase.Expect
			switch pk := pk.(type) {
			case *ConnectPacket:
				require.Equal(t, "CONNECT", tcase.Type)
				require.Equal(t, want.ClientID, pk.ClientIdentifier)
				if want.KeepAlive != nil {
					require.Equal(t, *want.KeepAlive, pk.Keepalive)
				}
				if want.CleanSession != nil {
					require.Equal(t, *want.CleanSession, pk.CleanSession)
				}
				require.Equal(t, tcase.Version, pk.ProtocolVersion)
			case *ConnackPacket:
				require.Equal(t, "CONNACK", tcase.Type)
				if want.SessionPresent != nil {
					require.Equal(t, *want.SessionPresent, pk.SessionPresent)
				}
				if want.ReturnCode != nil {
					require.Equal(t, *want.ReturnCode, pk.ReturnCode)
				}
			case *PublishPacket:
				require.Equal(t, "PUBLISH", tcase.Type)
				require.Equal(t, want.Topic, pk.TopicName)
				if want.Qos != nil {
					require.Equal(t, *want.Qos, pk.Qos)
				}
				if want.PacketID != nil {
					require.Equal(t, *want.PacketID, pk.PacketID)
				} else {
					require.Zero(t, pk.PacketID)
				}
				require.Equal(t, want.Payload, string(pk.Payload))
			case *SubscribePacket:
				require.Equal(t, "SUBSCRIBE", tcase.Type)
				if want.PacketID != nil {
					require.Equal(t, *want.PacketID, pk.PacketID)
				}
				require.Len(t, pk.Filters, 1)
				require.Equal(t, want.Filter, pk.Filters[0].Filter)
				if want.FilterQos != nil {
					require.Equal(t, *want.FilterQos, pk.Filters[0].Qos)
				}
			case *PingreqPacket:
				require.Equal(t, "PINGREQ", tcase.Type)
			default:
				t.Fatalf("unhandled packet type %T", pk)
			}
		})
	}
}

// TestSpecCorpusReEncode round-trips every valid corpus packet back to its
// original bytes.
func TestSpecCorpusReEncode(t *testing.T) {
	for _, tcase := range loadCorpus(t) {
		if tcase.Error != "" {
			continue
		}
		t.Run(tcase.Name, func(t *testing.T) {
			raw, err := hex.DecodeString(strings.ReplaceAll(tcase.Hex, " ", ""))
			require.NoError(t, err)

			pk, err := NewStream(raw).ReadPacket(tcase.Version)
			require.NoError(t, err)

			_, total, err := pk.Size()
			require.NoError(t, err)
			require.Equal(t, len(raw), total)

			buf := make([]byte, total)
			n, err := pk.Encode(buf)
			require.NoError(t, err)
			require.Equal(t, total, n)
			require.Equal(t, raw, buf)
		})
	}
}
