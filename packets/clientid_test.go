// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateClientID(t *testing.T) {
	for _, id := range []string{"a", "DIGI", "abc123XYZ", strings.Repeat("x", 23)} {
		require.NoError(t, validateClientID(id), id)
	}

	require.ErrorIs(t, validateClientID(""), ErrClientIdentifierNotValid)
	require.ErrorIs(t, validateClientID(strings.Repeat("x", 24)), ErrClientIdentifierTooLong)
	require.ErrorIs(t, validateClientID("has space"), ErrClientIdentifierNotValid)
	require.ErrorIs(t, validateClientID("has/slash"), ErrClientIdentifierNotValid)
	require.ErrorIs(t, validateClientID("ünïcode"), ErrClientIdentifierNotValid)
}

func TestNewClientID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewClientID()
		require.NoError(t, validateClientID(id), id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestConnectStrictClientID(t *testing.T) {
	wanted := TPacketData[Connect].Get(TConnectMqtt311)

	pk := &ConnectPacket{StrictClientID: true}
	err := pk.Decode(wanted.RawBytes[2:])
	require.NoError(t, err)
	require.Equal(t, "DIGI", pk.ClientIdentifier)

	// The same packet with a client id outside the restricted alphabet.
	raw := append([]byte{}, wanted.RawBytes[2:]...)
	raw[len(raw)-1] = '!'
	pk = &ConnectPacket{StrictClientID: true}
	require.ErrorIs(t, pk.Decode(raw), ErrClientIdentifierNotValid)

	// Lax mode accepts it.
	pk = &ConnectPacket{}
	require.NoError(t, pk.Decode(raw))
}
