// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import "strings"

// ValidateTopic checks a publish topic name. Topic names must not contain
// the subscription wildcard characters. [MQTT-3.3.2-2]
func ValidateTopic(topic string) error {
	if strings.ContainsAny(topic, "+#") {
		return ErrProtocolViolationSurplusWildcard
	}
	return nil
}

// ValidateFilter checks a subscription topic filter. Filters split on '/'
// into levels; '+' must stand alone in its level, and '#' must stand alone
// in the last level. [MQTT-4.7.1-2] [MQTT-4.7.1-3]
func ValidateFilter(filter string) error {
	if filter == "" {
		return ErrProtocolViolationEmptyFilter
	}

	for i := 0; i < len(filter); i++ {
		switch filter[i] {
		case '+':
			if (i > 0 && filter[i-1] != '/') || (i < len(filter)-1 && filter[i+1] != '/') {
				return ErrProtocolViolationWildcardPosition
			}
		case '#':
			if i != len(filter)-1 || (i > 0 && filter[i-1] != '/') {
				return ErrProtocolViolationWildcardPosition
			}
		}
	}

	return nil
}
