// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - one item on a queue
type Message struct {
	Command string
	Item    interface{}
}

// BroadcastQueue - every listener receives every message sent after it
// started listening
//
// a listener whose queue is full misses messages rather than blocking
// the sender
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	dropped   uint64
}

// BusType - the available queues
type BusType struct {
	Events BroadcastQueue // committed lifecycle events
}

// Bus - the process-wide queues
var Bus BusType

// Send - queue a message to all current listeners
func (queue *BroadcastQueue) Send(command string, item interface{}) {
	m := Message{
		Command: command,
		Item:    item,
	}

	queue.RLock()
	dropped := uint64(0)
	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			dropped += 1
		}
	}
	queue.RUnlock()

	if dropped > 0 {
		queue.Lock()
		queue.dropped += dropped
		queue.Unlock()
	}
}

// Chan - start listening, size is the queue length
//
// zero or negative size gives the default queue length
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - stop listening and close the channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, listener := range queue.listeners {
		if (<-chan Message)(listener) == c {
			close(listener)
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			return
		}
	}
}

// Dropped - count of messages lost to full listener queues
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.RLock()
	defer queue.RUnlock()
	return queue.dropped
}
