// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - deliver committed lifecycle events to ZeroMQ
// subscribers
package publish

import (
	"sync"

	"github.com/bitmark-inc/blockmint/background"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/messagebus"
	"github.com/bitmark-inc/blockmint/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the publisher sockets and start broadcasting
//
// no keys configured gives unencrypted sockets
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Warn("no broadcast addresses, events will not be published")
		globalData.initialised = true
		return nil
	}

	privateKey := []byte(nil)
	publicKey := []byte(nil)
	if "" != configuration.PrivateKey || "" != configuration.PublicKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key:  %x", publicKey)
	}

	err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, version, &messagebus.Bus.Events)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

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

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
