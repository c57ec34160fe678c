// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"time"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/util"
)

// record tags
const (
	mintedTag  = 1
	burnedTag  = 2
	stackedTag = 3
)

// Event - a lifecycle event
type Event interface {
	Pack() (Packed, error)
	Name() string
}

// Packed - binary form of an event
type Packed []byte

// Minted - a block was created
type Minted struct {
	AssetId uint64           `json:"assetId,string"`
	Type    kind.Type        `json:"type"`
	Display string           `json:"name"`
	Creator *account.Account `json:"creator"`
	At      time.Time        `json:"at"`
}

// Burned - a block was destroyed
type Burned struct {
	AssetId uint64           `json:"assetId,string"`
	Type    kind.Type        `json:"type"`
	Display string           `json:"name"`
	Owner   *account.Account `json:"owner"`
	At      time.Time        `json:"at"`
}

// Stacked - one block was merged into another
//
// Count is the new count of the receiving block
type Stacked struct {
	IntoId     uint64           `json:"intoId,string"`
	ConsumedId uint64           `json:"consumedId,string"`
	Type       kind.Type        `json:"type"`
	Count      uint64           `json:"count,string"`
	Owner      *account.Account `json:"owner"`
	At         time.Time        `json:"at"`
}

// Name - event type names
func (e *Minted) Name() string  { return "minted" }
func (e *Burned) Name() string  { return "burned" }
func (e *Stacked) Name() string { return "stacked" }

// Pack - binary form of a minted event
func (e *Minted) Pack() (Packed, error) {
	if nil == e.Creator {
		return nil, fault.InvalidOwner
	}
	buffer := util.AppendUint64(nil, mintedTag)
	buffer = util.AppendUint64(buffer, e.AssetId)
	buffer = util.AppendUint64(buffer, uint64(e.Type))
	buffer = util.AppendString(buffer, e.Display)
	buffer = util.AppendBytes(buffer, e.Creator.Bytes())
	buffer = util.AppendUint64(buffer, uint64(e.At.UnixNano()))
	return buffer, nil
}

// Pack - binary form of a burned event
func (e *Burned) Pack() (Packed, error) {
	if nil == e.Owner {
		return nil, fault.InvalidOwner
	}
	buffer := util.AppendUint64(nil, burnedTag)
	buffer = util.AppendUint64(buffer, e.AssetId)
	buffer = util.AppendUint64(buffer, uint64(e.Type))
	buffer = util.AppendString(buffer, e.Display)
	buffer = util.AppendBytes(buffer, e.Owner.Bytes())
	buffer = util.AppendUint64(buffer, uint64(e.At.UnixNano()))
	return buffer, nil
}

// Pack - binary form of a stacked event
func (e *Stacked) Pack() (Packed, error) {
	if nil == e.Owner {
		return nil, fault.InvalidOwner
	}
	buffer := util.AppendUint64(nil, stackedTag)
	buffer = util.AppendUint64(buffer, e.IntoId)
	buffer = util.AppendUint64(buffer, e.ConsumedId)
	buffer = util.AppendUint64(buffer, uint64(e.Type))
	buffer = util.AppendUint64(buffer, e.Count)
	buffer = util.AppendBytes(buffer, e.Owner.Bytes())
	buffer = util.AppendUint64(buffer, uint64(e.At.UnixNano()))
	return buffer, nil
}

// Unpack - decode any event record
func (record Packed) Unpack() (Event, error) {
	u := util.NewUnpacker(record)

	tag := u.Uint64()
	if err := u.Err(); nil != err {
		return nil, err
	}

	switch tag {
	case mintedTag:
		m := &Minted{
			AssetId: u.Uint64(),
			Type:    kind.Type(u.Uint64()),
			Display: u.String(),
		}
		creator, at, err := ownerAndTime(u)
		if nil != err {
			return nil, err
		}
		m.Creator = creator
		m.At = at
		return m, nil

	case burnedTag:
		b := &Burned{
			AssetId: u.Uint64(),
			Type:    kind.Type(u.Uint64()),
			Display: u.String(),
		}
		owner, at, err := ownerAndTime(u)
		if nil != err {
			return nil, err
		}
		b.Owner = owner
		b.At = at
		return b, nil

	case stackedTag:
		s := &Stacked{
			IntoId:     u.Uint64(),
			ConsumedId: u.Uint64(),
			Type:       kind.Type(u.Uint64()),
			Count:      u.Uint64(),
		}
		owner, at, err := ownerAndTime(u)
		if nil != err {
			return nil, err
		}
		s.Owner = owner
		s.At = at
		return s, nil

	default:
		return nil, fault.UnknownRecordTag
	}
}

// the two trailing fields common to all events
func ownerAndTime(u *util.Unpacker) (*account.Account, time.Time, error) {
	ownerBytes := u.Bytes()
	n := u.Uint64()
	if err := u.Err(); nil != err {
		return nil, time.Time{}, err
	}

	owner, err := account.FromBytes(ownerBytes)
	if nil != err {
		return nil, time.Time{}, fault.CannotDecodeAccount
	}
	return owner, time.Unix(0, int64(n)).UTC(), nil
}
