// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/rpc/certificate"
	"github.com/bitmark-inc/blockmint/rpc/listeners"
	"github.com/bitmark-inc/blockmint/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of currently open client connections
var connectionCountRPC counter.Counter

// Initialise - start the JSON RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, manager lifecycle.Manager, chainName string, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, chainName, manager, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Connections - number of open client connections
func Connections() uint64 {
	return connectionCountRPC.Uint64()
}
