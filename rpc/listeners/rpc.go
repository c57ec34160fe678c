// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started set of accept loops
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	wg              sync.WaitGroup
	stopping        bool
}

// NewRPC - validate the configuration and create a JSON RPC listener
//
// a nil tlsConfig serves plain TCP
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: make([]string, len(configuration.Listen)),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}
	copy(r.listenIPAndPort, configuration.Listen)

	if nil != tlsConfig {
		log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)
	}

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - start one accept loop per listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.ipType[i], listen)
		} else {
			l, err = tls.Listen(r.ipType[i], listen, r.tlsConfig)
		}
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		r.wg.Add(1)
		go r.doServeRPC(l)
	}
	return nil
}

// Addresses - the bound addresses, valid after Serve
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr()
	}
	return addresses
}

// Stop - close every listener and wait for the accept loops
func (r *rpcListener) Stop() {
	r.Lock()
	r.stopping = true
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.Unlock()

	r.wg.Wait()
}

func (r *rpcListener) isStopping() bool {
	r.Lock()
	defer r.Unlock()
	return r.stopping
}

func (r *rpcListener) doServeRPC(listen net.Listener) {
	defer r.wg.Done()

	for {
		conn, err := listen.Accept()
		if err != nil {
			if !r.isStopping() {
				r.log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if r.count.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				r.count.Decrement()
			}()
		} else {
			r.count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
	r.log.Info("RPC accept terminated")
}

// "*:PORT" listens on tcp4 and tcp6, "[IPv6]:PORT" and "IPv4:PORT"
// are restricted to that family
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}

		if '*' == listen[0] {
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
