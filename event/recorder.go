// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/storage"
	"github.com/bitmark-inc/logger"
)

// maximum records returned by one List
const MaximumListCount = 100

// the first sequence number
const firstSequence = 1

// key in the counters pool
var sequenceKey = []byte{0x01}

// Sink - where the lifecycle appends its events
//
// an error must abort the enclosing transaction
type Sink interface {
	Append(storage.Transaction, Event) error
}

// Record - a committed event with its position in the trail
type Record struct {
	Sequence uint64 `json:"sequence,string"`
	Type     string `json:"type"`
	Event    Event  `json:"event"`
}

// Recorder - events kept in the block database
type Recorder struct {
	log      *logger.L
	counters *storage.PoolHandle
	events   *storage.PoolHandle
}

// New - recorder over an open store
func New(s *storage.Store) *Recorder {
	return &Recorder{
		log:      logger.New("event"),
		counters: s.Pool.Counters,
		events:   s.Pool.Events,
	}
}

// Append - write an event under the next sequence number
func (r *Recorder) Append(trx storage.Transaction, e Event) error {
	if nil == e {
		return fault.MissingParameters
	}

	packed, err := e.Pack()
	if nil != err {
		return err
	}

	n, found := trx.GetN(r.counters, sequenceKey)
	if !found {
		n = firstSequence
	}

	trx.Put(r.events, sequenceBytes(n), packed)
	trx.PutN(r.counters, sequenceKey, n+1)

	r.log.Debugf("append: %d  %s", n, e.Name())
	return nil
}

// List - committed events starting at a sequence number
//
// also returns the sequence to continue from
func (r *Recorder) List(start uint64, count int) ([]Record, uint64, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, start, fault.InvalidCount
	}
	if start < firstSequence {
		start = firstSequence
	}

	cursor := r.events.NewFetchCursor().Seek(sequenceBytes(start))
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	records := make([]Record, 0, len(items))
	next := start
	for _, item := range items {
		if 8 != len(item.Key) {
			r.log.Criticalf("invalid event key: %x", item.Key)
			return nil, start, fault.InvalidCursor
		}
		n := binary.BigEndian.Uint64(item.Key)

		e, err := Packed(item.Value).Unpack()
		if nil != err {
			r.log.Criticalf("event: %d  record: %x  error: %s", n, item.Value, err)
			return nil, start, err
		}

		records = append(records, Record{
			Sequence: n,
			Type:     e.Name(),
			Event:    e,
		})
		next = n + 1
	}
	return records, next, nil
}

// Last - sequence number of the most recent committed event, zero if none
func (r *Recorder) Last() uint64 {
	element, found := r.events.LastElement()
	if !found || 8 != len(element.Key) {
		return 0
	}
	return binary.BigEndian.Uint64(element.Key)
}

func sequenceBytes(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
