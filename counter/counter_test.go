// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/blockmint/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Uint64())
	}
}

func TestRaiseNeverLowers(t *testing.T) {
	var c counter.Counter

	if 10 != c.Raise(10) {
		t.Errorf("raise to 10 failed: %d", c.Uint64())
	}
	if 10 != c.Raise(3) {
		t.Errorf("raise lowered the counter: %d", c.Uint64())
	}
	if 11 != c.Increment() {
		t.Errorf("increment after raise: %d", c.Uint64())
	}
}

func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const each = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	if workers*each != c.Uint64() {
		t.Errorf("lost increments: %d", c.Uint64())
	}
}
