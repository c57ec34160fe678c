// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/blockmint/background"
)

type drain struct {
	queue chan string
	done  chan int
}

func Example() {

	d := &drain{
		queue: make(chan string, 3),
		done:  make(chan int, 1),
	}
	d.queue <- "minted"
	d.queue <- "stacked"
	d.queue <- "burned"

	// list of background processes to start
	processes := background.Processes{
		d,
	}

	p := background.Start(processes, nil)
	n := <-d.done
	p.Stop()

	fmt.Printf("drained: %d\n", n)
	// Output:
	// minted
	// stacked
	// burned
	// drained: 3
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {

	n := 0
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-d.queue:
			fmt.Println(item)
			n += 1
			if 3 == n {
				d.done <- n
			}
		}
	}
}
