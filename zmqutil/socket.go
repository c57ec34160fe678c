// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strconv"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// CanonicalAddress - convert "host:port" to a zmq tcp endpoint
//
// second result is true for an IPv6 address
func CanonicalAddress(address string) (string, bool, error) {
	host, port, err := net.SplitHostPort(address)
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}
	if "*" == host {
		host = "0.0.0.0"
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIpAddress
	}
	n, err := strconv.Atoi(port)
	if nil != err || n < 1 || n > 65535 {
		return "", false, fault.InvalidIpAddress
	}

	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + port, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + port, true, nil
}

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := CanonicalAddress(address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - create a socket suitable for a server side connection
//
// a nil private key gives a plain socket without CURVE encryption
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	if nil != privateKey {
		// allow any client to connect
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

		// domain is servers public key
		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
		socket.SetZapDomain(zapDomain)
		socket.SetIdentity(string(publicKey)) // just use public key for identity
	}

	socket.SetIpv6(v6) // conditionally set IPv6 state
	socket.SetLinger(0)

	// heartbeat
	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
