// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/blockmint/event"
	"github.com/bitmark-inc/blockmint/messagebus"
	"github.com/bitmark-inc/blockmint/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 60 * time.Second
	queueSize         = 1000
	zapDomain         = "publish"
)

// the message sent for each event
type message struct {
	Type  string      `json:"type"`
	Event event.Event `json:"event"`
}

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	version string
	bus     *messagebus.BroadcastQueue
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, version string, bus *messagebus.BroadcastQueue) error {

	log := logger.New("broadcaster")
	brdc.log = log
	brdc.version = version
	brdc.bus = bus

	log.Info("initialising…")

	if nil != privateKey {
		if err := zmqutil.StartAuthentication(); nil != err {
			log.Errorf("zmq authentication error: %s", err)
			return err
		}
	}

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	// listen before the first event can be committed
	brdc.queue = bus.Chan(queueSize)
	return nil
}

// Run - background process interface
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	delay := time.After(heartbeatInterval)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			brdc.process(item)
		case <-delay:
			delay = time.After(heartbeatInterval)
			brdc.heartbeat()
		}
	}

	brdc.bus.Release(brdc.queue)

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// process a queue item
func (brdc *broadcaster) process(item messagebus.Message) {
	ev, ok := item.Item.(event.Event)
	if !ok {
		brdc.log.Errorf("unexpected item: %#v", item)
		return
	}

	data, err := encode(ev)
	if nil != err {
		brdc.log.Errorf("encode: %s  error: %s", ev.Name(), err)
		return
	}

	brdc.log.Debugf("publish: %s", data)
	brdc.send(item.Command, data)
}

func (brdc *broadcaster) heartbeat() {
	beat := []byte(time.Now().UTC().Format(time.RFC3339))
	brdc.send("heart", beat)
}

func (brdc *broadcaster) send(command string, data []byte) {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if err := sendTo(socket, command, data); nil != err {
			brdc.log.Errorf("send: %s  error: %s", command, err)
		}
	}
}

// two part message: command then data
func sendTo(socket *zmq.Socket, command string, data []byte) error {
	_, err := socket.Send(command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		return err
	}
	_, err = socket.SendBytes(data, zmq.DONTWAIT)
	return err
}

// JSON form of an event
func encode(ev event.Event) ([]byte, error) {
	return json.Marshal(message{
		Type:  ev.Name(),
		Event: ev,
	})
}
