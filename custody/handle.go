// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/blockmint/fault"
)

// HandleLength - number of bytes in a handle
const HandleLength = 32

// Handle - opaque reference to a custody record
type Handle [HandleLength]byte

// HandleFromBytes - convert and validate a byte slice to a handle
func HandleFromBytes(handle *Handle, buffer []byte) error {
	if HandleLength != len(buffer) {
		return fault.InvalidHandleLength
	}
	copy(handle[:], buffer)
	return nil
}

// String - hex form
func (handle Handle) String() string {
	return hex.EncodeToString(handle[:])
}

// GoString - for %#v
func (handle Handle) GoString() string {
	return "<handle:" + hex.EncodeToString(handle[:]) + ">"
}

// MarshalText - convert handle to text
func (handle Handle) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(handle))
	buffer := make([]byte, size)
	hex.Encode(buffer, handle[:])
	return buffer, nil
}

// UnmarshalText - convert text to a handle
func (handle *Handle) UnmarshalText(s []byte) error {
	if hex.EncodedLen(HandleLength) != len(s) {
		return fault.InvalidHandleLength
	}
	if _, err := hex.Decode(handle[:], s); nil != err {
		return fmt.Errorf("custody handle: %s", err)
	}
	return nil
}
