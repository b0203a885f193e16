// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTopic(t *testing.T) {
	for _, topic := range []string{"a", "a/b/c", "/", "a//b", "sensor temp"} {
		require.NoError(t, ValidateTopic(topic), topic)
	}

	for _, topic := range []string{"a/+", "#", "a/b/#", "+", "a+b"} {
		require.ErrorIs(t, ValidateTopic(topic), ErrProtocolViolationSurplusWildcard, topic)
	}
}

func TestValidateFilter(t *testing.T) {
	for _, filter := range []string{
		"#",
		"+",
		"a/+",
		"a/#",
		"+/+",
		"+/b/#",
		"a/b/c",
		"/",
		"+/",
	} {
		require.NoError(t, ValidateFilter(filter), filter)
	}
}

func TestValidateFilterEmpty(t *testing.T) {
	require.ErrorIs(t, ValidateFilter(""), ErrProtocolViolationEmptyFilter)
}

func TestValidateFilterMisplacedWildcards(t *testing.T) {
	for _, filter := range []string{
		"a+",
		"+a",
		"a/b+/c",
		"a/##",
		"a#",
		"#/a",
		"+/#/+",
		"a/#/c",
	} {
		require.ErrorIs(t, ValidateFilter(filter), ErrProtocolViolationWildcardPosition, filter)
	}
}
