// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/blockmint/chain"
	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/rpc/blocks"
	"github.com/bitmark-inc/blockmint/rpc/events"
	"github.com/bitmark-inc/blockmint/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chainName string, manager lifecycle.Manager, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(blocks.New(log, manager, chain.IsTesting(chainName)))
	_ = server.Register(events.New(log, manager))
	_ = server.Register(node.New(log, manager, start, version, chainName, rpcCount))

	return server
}
