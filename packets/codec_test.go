// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeLengthBoundaries(t *testing.T) {
	// Every boundary between encoded widths, both sides.
	for _, wanted := range []struct {
		value int
		size  int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x3FFF, 2},
		{0x4000, 3},
		{0x1FFFFF, 3},
		{0x200000, 4},
		{0x0FFFFFFF, 4},
	} {
		require.Equal(t, wanted.size, lengthSize(wanted.value), "size of %#x", wanted.value)

		buf := make([]byte, 4)
		end := encodeLength(buf, 0, wanted.value)
		require.Equal(t, wanted.size, end, "encoded width of %#x", wanted.value)

		value, next, err := decodeLength(buf[:end], 0)
		require.NoError(t, err, "decoding %#x", wanted.value)
		require.Equal(t, wanted.value, value)
		require.Equal(t, end, next)
	}
}

func TestDecodeLengthTwoByte(t *testing.T) {
	value, next, err := decodeLength([]byte{0xC1, 0x02}, 0)
	require.NoError(t, err)
	require.Equal(t, 321, value)
	require.Equal(t, 2, next)
}

func TestDecodeLengthNonCanonical(t *testing.T) {
	_, _, err := decodeLength([]byte{0x80, 0x00}, 0)
	require.ErrorIs(t, err, ErrMalformedVariableByteInteger)
}

func TestDecodeLengthUnterminated(t *testing.T) {
	_, _, err := decodeLength([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0)
	require.ErrorIs(t, err, ErrMalformedVariableByteInteger)
}

func TestDecodeLengthIncomplete(t *testing.T) {
	for _, buf := range [][]byte{{}, {0x80}, {0xFF, 0xFF}, {0x80, 0x80, 0x80}} {
		_, _, err := decodeLength(buf, 0)
		require.ErrorIs(t, err, ErrIncompleteBuffer, "%v", buf)
	}
}

func TestDecodeLengthOffset(t *testing.T) {
	value, next, err := decodeLength([]byte{0xFF, 0x7F}, 1)
	require.NoError(t, err)
	require.Equal(t, 0x7F, value)
	require.Equal(t, 2, next)
}

func TestDecodeUint16(t *testing.T) {
	value, next, err := decodeUint16([]byte{0x01, 0x90}, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(400), value)
	require.Equal(t, 2, next)

	_, _, err = decodeUint16([]byte{0x01}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestDecodeUint32(t *testing.T) {
	value, next, err := decodeUint32([]byte{0x00, 0x00, 0x01, 0x2C}, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(300), value)
	require.Equal(t, 4, next)

	_, _, err = decodeUint32([]byte{0x00, 0x00, 0x01}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestDecodeByteBool(t *testing.T) {
	value, next, err := decodeByteBool([]byte{0x01}, 0)
	require.NoError(t, err)
	require.True(t, value)
	require.Equal(t, 1, next)

	value, _, err = decodeByteBool([]byte{0x00}, 0)
	require.NoError(t, err)
	require.False(t, value)

	_, _, err = decodeByteBool([]byte{0x02}, 0)
	require.ErrorIs(t, err, ErrMalformedBool)

	_, _, err = decodeByteBool([]byte{}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestDecodeString(t *testing.T) {
	value, next, err := decodeString([]byte{0x00, 0x04, 'M', 'Q', 'T', 'T'}, 0)
	require.NoError(t, err)
	require.Equal(t, "MQTT", value)
	require.Equal(t, 6, next)
}

func TestDecodeStringZeroWidthNoBreakSpace(t *testing.T) {
	// [MQTT-1.5.4-3] U+FEFF must survive decoding intact.
	value, _, err := decodeString([]byte{0x00, 0x03, 0xEF, 0xBB, 0xBF}, 0)
	require.NoError(t, err)
	require.Equal(t, "\uFEFF", value)
}

func TestDecodeStringInvalidUTF8(t *testing.T) {
	for _, wanted := range [][]byte{
		{0x00, 0x03, 0xED, 0xA0, 0x80},       // surrogate U+D800
		{0x00, 0x03, 0xED, 0xBF, 0xBF},       // surrogate U+DFFF
		{0x00, 0x03, 'a', 0x00, 'b'},         // internal null
		{0x00, 0x02, 0xC0, 0x80},             // overlong encoding
		{0x00, 0x02, 0xC2},                   // truncated sequence counts as length mismatch
		{0x00, 0x04, 0xF7, 0xBF, 0xBF, 0xBF}, // above U+10FFFF
	} {
		_, _, err := decodeString(wanted, 0)
		require.Error(t, err, "%v", wanted)
	}
}

func TestDecodeBytes(t *testing.T) {
	value, next, err := decodeBytes([]byte{0x00, 0x02, 0xDE, 0xAD, 0xBE}, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD}, value)
	require.Equal(t, 4, next)

	_, _, err = decodeBytes([]byte{0x00, 0x04, 0xDE, 0xAD}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)

	_, _, err = decodeBytes([]byte{0x00}, 0)
	require.ErrorIs(t, err, ErrMalformedPacketLength)
}

func TestDecodeBytesZeroCopy(t *testing.T) {
	buf := []byte{0x00, 0x02, 0xDE, 0xAD}
	value, _, err := decodeBytes(buf, 0)
	require.NoError(t, err)
	require.Equal(t, &buf[2], &value[0], "decoded bytes should reference the input buffer")
}

func TestDecodePacketID(t *testing.T) {
	id, next, err := decodePacketID([]byte{0x00, 0x01}, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(1), id)
	require.Equal(t, 2, next)

	_, _, err = decodePacketID([]byte{0x00, 0x00}, 0)
	require.ErrorIs(t, err, ErrProtocolViolationNoPacketID)
}

func TestEncodeHelpers(t *testing.T) {
	buf := make([]byte, 16)

	offset := encodeUint16(buf, 0, 400)
	require.Equal(t, 2, offset)
	require.Equal(t, []byte{0x01, 0x90}, buf[:2])

	offset = encodeUint32(buf, 0, 300)
	require.Equal(t, 4, offset)
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x2C}, buf[:4])

	offset = encodeString(buf, 0, "MQTT")
	require.Equal(t, 6, offset)
	require.Equal(t, []byte{0x00, 0x04, 'M', 'Q', 'T', 'T'}, buf[:6])

	offset = encodeBytes(buf, 0, []byte{0xDE, 0xAD})
	require.Equal(t, 4, offset)
	require.Equal(t, []byte{0x00, 0x02, 0xDE, 0xAD}, buf[:4])

	require.Equal(t, byte(1), encodeBool(true))
	require.Equal(t, byte(0), encodeBool(false))
}

func TestValidateString(t *testing.T) {
	require.NoError(t, validateString("a/b/c"))
	require.ErrorIs(t, validateString("a\x00b"), ErrMalformedInvalidUTF8)
	require.ErrorIs(t, validateString(string([]byte{0xED, 0xA0, 0x80})), ErrMalformedInvalidUTF8)

	long := make([]byte, MaxStringLength+1)
	for i := range long {
		long[i] = 'a'
	}
	require.ErrorIs(t, validateString(string(long)), ErrMalformedStringLength)
}
