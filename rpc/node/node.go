// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/messagebus"
	"github.com/bitmark-inc/blockmint/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Manager lifecycle.Manager
	counter *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, manager lifecycle.Manager, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Manager: manager,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string `json:"chain"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	NextAssetId   uint64 `json:"nextAssetId,string"`
	RPCs          uint64 `json:"rpcs"`
	DroppedEvents uint64 `json:"droppedEvents"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Manager {
		return fault.NotInitialised
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.NextAssetId = node.Manager.NextID()
	reply.RPCs = node.counter.Uint64()
	reply.DroppedEvents = messagebus.Bus.Events.Dropped()
	return nil
}
