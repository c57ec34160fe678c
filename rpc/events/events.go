// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/blockmint/event"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 1000
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Manager lifecycle.Manager
}

// New - create the Events RPC service
func New(log *logger.L, manager lifecycle.Manager) *Events {
	return &Events{
		Log:     log,
		Limiter: ratelimit.New(rateLimitEvents, rateBurstEvents),
		Manager: manager,
	}
}

// ListArguments - page through the audit trail
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - one page of events
type ListReply struct {
	Events    []event.Record `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - committed lifecycle events in sequence order
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(events.Limiter, arguments.Count, event.MaximumListCount); nil != err {
		return err
	}

	records, next, err := events.Manager.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	events.Log.Debugf("list: start: %d  count: %d  returned: %d", arguments.Start, arguments.Count, len(records))

	reply.Events = records
	reply.NextStart = next
	return nil
}
