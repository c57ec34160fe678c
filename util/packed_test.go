// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/util"
)

func TestUnpackerReadsFieldsInOrder(t *testing.T) {
	buffer := util.AppendUint64(nil, 3)
	buffer = util.AppendString(buffer, "Log")
	buffer = util.AppendBytes(buffer, []byte{0xde, 0xad})
	buffer = util.AppendUint64(buffer, 300)

	u := util.NewUnpacker(buffer)
	assert.Equal(t, uint64(3), u.Uint64(), "wrong first value")
	assert.Equal(t, "Log", u.String(), "wrong string")
	assert.Equal(t, []byte{0xde, 0xad}, u.Bytes(), "wrong bytes")
	assert.Equal(t, uint64(300), u.Uint64(), "wrong last value")
	assert.Nil(t, u.Err(), "unexpected error")
	assert.Equal(t, len(buffer), u.Offset(), "not all bytes consumed")
}

func TestUnpackerTruncated(t *testing.T) {
	buffer := util.AppendString(nil, "Plank")

	u := util.NewUnpacker(buffer[:3])
	assert.Equal(t, "", u.String(), "truncated string returned data")
	assert.Equal(t, fault.TruncatedRecord, u.Err(), "wrong error")

	// error is sticky
	assert.Equal(t, uint64(0), u.Uint64(), "read after error returned data")
	assert.Equal(t, fault.TruncatedRecord, u.Err(), "error was cleared")
}

func TestUnpackerEmptyField(t *testing.T) {
	buffer := util.AppendBytes(nil, []byte{})
	u := util.NewUnpacker(buffer)
	assert.Equal(t, []byte{}, u.Bytes(), "empty field")
	assert.Nil(t, u.Err(), "unexpected error")
}

func TestUnpackerFieldTooLong(t *testing.T) {
	// length prefix of 8193 is over the field limit even with the data present
	buffer := util.ToVarint64(8193)
	buffer = append(buffer, make([]byte, 8193)...)

	u := util.NewUnpacker(buffer)
	assert.Nil(t, u.Bytes(), "over long field returned data")
	assert.Equal(t, fault.TruncatedRecord, u.Err(), "wrong error")
	assert.Equal(t, 0, u.Offset(), "bytes consumed after error")
}

func TestUnpackerFieldAtLimit(t *testing.T) {
	data := make([]byte, 8192)
	data[8191] = 0x5a
	u := util.NewUnpacker(util.AppendBytes(nil, data))
	assert.Equal(t, data, u.Bytes(), "field at limit")
	assert.Nil(t, u.Err(), "unexpected error")
}
