// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/event"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/fixtures"
	"github.com/bitmark-inc/blockmint/kind"
)

var at = time.Date(2020, time.March, 1, 12, 0, 0, 500, time.UTC)

func TestMintedRoundTrip(t *testing.T) {
	m := &event.Minted{
		AssetId: 12,
		Type:    kind.Log,
		Display: "Log #12",
		Creator: fixtures.Alice.Account(),
		At:      at,
	}
	packed, err := m.Pack()
	assert.Nil(t, err, "pack error")

	e, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")

	u, ok := e.(*event.Minted)
	assert.True(t, ok, "wrong event type")
	assert.Equal(t, m.AssetId, u.AssetId, "wrong asset id")
	assert.Equal(t, m.Type, u.Type, "wrong type")
	assert.Equal(t, m.Display, u.Display, "wrong name")
	assert.True(t, m.Creator.Equal(u.Creator), "wrong creator")
	assert.True(t, m.At.Equal(u.At), "wrong time")
	assert.Equal(t, "minted", e.Name(), "wrong event name")
}

func TestBurnedRoundTrip(t *testing.T) {
	b := &event.Burned{
		AssetId: 7,
		Type:    kind.Torch,
		Display: "Torch #7",
		Owner:   fixtures.Bob.Account(),
		At:      at,
	}
	packed, err := b.Pack()
	assert.Nil(t, err, "pack error")

	e, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")

	u, ok := e.(*event.Burned)
	assert.True(t, ok, "wrong event type")
	assert.Equal(t, b.AssetId, u.AssetId, "wrong asset id")
	assert.Equal(t, b.Display, u.Display, "wrong name")
	assert.True(t, b.Owner.Equal(u.Owner), "wrong owner")
	assert.True(t, b.At.Equal(u.At), "wrong time")
}

func TestStackedRoundTrip(t *testing.T) {
	s := &event.Stacked{
		IntoId:     1,
		ConsumedId: 2,
		Type:       kind.Stone,
		Count:      2,
		Owner:      fixtures.Alice.Account(),
		At:         at,
	}
	packed, err := s.Pack()
	assert.Nil(t, err, "pack error")

	e, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")

	u, ok := e.(*event.Stacked)
	assert.True(t, ok, "wrong event type")
	assert.Equal(t, s.IntoId, u.IntoId, "wrong into id")
	assert.Equal(t, s.ConsumedId, u.ConsumedId, "wrong consumed id")
	assert.Equal(t, s.Count, u.Count, "wrong count")
	assert.Equal(t, "stacked", e.Name(), "wrong event name")
}

func TestUnpackErrors(t *testing.T) {
	_, err := event.Packed{}.Unpack()
	assert.Equal(t, fault.TruncatedRecord, err, "empty record accepted")

	_, err = event.Packed{0x09}.Unpack()
	assert.Equal(t, fault.UnknownRecordTag, err, "unknown tag accepted")

	_, err = event.Packed{0x01, 0x01, 0x01}.Unpack()
	assert.Equal(t, fault.TruncatedRecord, err, "short record accepted")

	// valid layout with a one byte account
	_, err = event.Packed{0x02, 0x01, 0x01, 0x00, 0x01, 0x00, 0x00}.Unpack()
	assert.Equal(t, fault.CannotDecodeAccount, err, "bad account accepted")

	_, err = (&event.Minted{}).Pack()
	assert.Equal(t, fault.InvalidOwner, err, "missing creator accepted")
}
