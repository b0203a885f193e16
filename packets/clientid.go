// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package packets

import "github.com/rs/xid"

// maxStrictClientIDLen is the longest client identifier a v3.1.1 server is
// required to accept. [MQTT-3.1.3-5]
const maxStrictClientIDLen = 23

// validateClientID checks a client identifier against the strict v3.1.1
// rules: 1 to 23 characters drawn from [0-9A-Za-z]. Servers may accept more;
// the strict mode exists for clients that must interoperate with ones that
// do not.
func validateClientID(id string) error {
	if len(id) == 0 {
		return ErrClientIdentifierNotValid
	}
	if len(id) > maxStrictClientIDLen {
		return ErrClientIdentifierTooLong
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return ErrClientIdentifierNotValid
		}
	}
	return nil
}

// NewClientID mints a random client identifier that passes strict v3.1.1
// validation. xid strings are 20 characters of lowercase base32, a subset of
// the strict alphabet.
func NewClientID() string {
	return xid.New().String()
}
