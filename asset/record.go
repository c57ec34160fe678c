// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/blockmint/custody"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/util"
)

// record tag of a packed asset
const assetTag = 1

// Asset - one live block
//
// the holder is not part of the record, it is found through Handle
type Asset struct {
	Id     uint64         `json:"id,string"`
	Type   kind.Type      `json:"type"`
	Count  uint64         `json:"count,string"`
	Handle custody.Handle `json:"handle"`
}

// Packed - binary form of an asset record
type Packed []byte

// Pack - tag ⧺ type ⧺ count ⧺ len(handle) ⧺ handle
func (a *Asset) Pack() (Packed, error) {
	if a.Count < 1 {
		return nil, fault.InvalidCount
	}
	buffer := util.AppendUint64(nil, assetTag)
	buffer = util.AppendUint64(buffer, uint64(a.Type))
	buffer = util.AppendUint64(buffer, a.Count)
	buffer = util.AppendBytes(buffer, a.Handle[:])
	return buffer, nil
}

// Unpack - decode a record, the id comes from the key
func (record Packed) Unpack(id uint64) (*Asset, error) {
	u := util.NewUnpacker(record)

	tag := u.Uint64()
	if nil == u.Err() && assetTag != tag {
		return nil, fault.UnknownRecordTag
	}

	a := &Asset{
		Id:    id,
		Type:  kind.Type(u.Uint64()),
		Count: u.Uint64(),
	}
	handle := u.Bytes()
	if err := u.Err(); nil != err {
		return nil, err
	}
	if err := custody.HandleFromBytes(&a.Handle, handle); nil != err {
		return nil, err
	}
	if a.Count < 1 {
		return nil, fault.InvalidCount
	}
	return a, nil
}
