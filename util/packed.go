// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/blockmint/fault"
)

// maximum length of any length-prefixed field
const maximumFieldLength = 8192

// AppendUint64 - append a Varint64 to buffer
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a byte field to buffer
//
// the field is prefixed by Varint64(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a string field to buffer
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// Unpacker - sequential reader over a packed record
//
// the first error stops all further reads, check Err() once at the end
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading at the beginning of a record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - read the next Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.TruncatedRecord
		return 0
	}
	u.n += count
	return value
}

// Bytes - read the next length prefixed field
//
// the result is a copy so it remains valid after the buffer is reused
func (u *Unpacker) Bytes() []byte {
	if nil != u.err {
		return nil
	}
	length, count := ClippedVarint64(u.buffer[u.n:], 0, maximumFieldLength)
	if 0 == count || u.n+count+length > len(u.buffer) {
		u.err = fault.TruncatedRecord
		return nil
	}
	u.n += count
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+length])
	u.n += length
	return data
}

// String - read the next length prefixed field as a string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Offset - number of bytes consumed so far
func (u *Unpacker) Offset() int {
	return u.n
}

// Err - the first error encountered, nil if all reads succeeded
func (u *Unpacker) Err() error {
	return u.err
}
