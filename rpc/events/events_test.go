// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/event"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/fixtures"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/lifecycle/mocks"
	"github.com/bitmark-inc/blockmint/rpc/events"
	"github.com/bitmark-inc/logger"
)

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockManager(ctl)
	e := events.New(logger.New(fixtures.LogCategory), m)

	clock := fixtures.NewClock()
	records := []event.Record{
		{
			Sequence: 1,
			Type:     "minted",
			Event: &event.Minted{
				AssetId: 1,
				Type:    kind.Log,
				Display: "Log #1",
				Creator: fixtures.Alice.Account(),
				At:      clock.Now(),
			},
		},
	}

	m.EXPECT().Events(uint64(1), 10).Return(records, uint64(2), nil).Times(1)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Start: 1, Count: 10}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, records, reply.Events, "wrong events")
	assert.Equal(t, uint64(2), reply.NextStart, "wrong next start")
}

func TestListInvalidCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockManager(ctl)
	e := events.New(logger.New(fixtures.LogCategory), m)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Start: 1, Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")

	err = e.List(&events.ListArguments{Start: 1, Count: event.MaximumListCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized count accepted")
}
