// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/fixtures"
	"github.com/bitmark-inc/blockmint/rpc/certificate"
	"github.com/bitmark-inc/blockmint/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}
	return s
}

func callAdd(t *testing.T, conn net.Conn) {
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int
	err := client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		newServer(t),
		nil,
		[32]byte{},
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	addresses := l.Addresses()
	assert.Equal(t, 1, len(addresses), "wrong address count")

	c, err := net.Dial("tcp", addresses[0].String())
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}
	callAdd(t, c)
}

func TestRpcListenerServeTLS(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "listeners")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	err = certificate.MakeSelfSigned("test", cer, key, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, fin, err := certificate.Load(log, "test", cer, key)
	assert.Nil(t, err, "load certificate")

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, log, &count, newServer(t), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	c, err := tls.Dial("tcp", l.Addresses()[0].String(), &tls.Config{
		InsecureSkipVerify: true,
	})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}
	callAdd(t, c)
}

func TestRpcListenerStopIsClean(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0", "127.0.0.1:0"},
	}

	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), nil, [32]byte{})
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	addresses := l.Addresses()
	assert.Equal(t, 2, len(addresses), "wrong address count")

	l.Stop()

	_, err = net.Dial("tcp", addresses[0].String())
	assert.NotNil(t, err, "listener still accepting")
}

func TestRpcListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)
	s := rpc.NewServer()

	tests := []struct {
		con listeners.RPCConfiguration
		err error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"1"}}, fault.InvalidIpAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:2130"}}, fault.InvalidIpAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{""}}, fault.InvalidIpAddress},
	}

	for i, item := range tests {
		_, err := listeners.NewRPC(&item.con, log, &count, s, nil, [32]byte{})
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestRpcListenerAddressForms(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)
	s := rpc.NewServer()

	for _, listen := range []string{"*:2130", "[::1]:2130", "[1:2:3:4:5:6:7:8]:2130", "10.0.0.1:2130"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{listen},
		}
		_, err := listeners.NewRPC(&con, log, &count, s, nil, [32]byte{})
		assert.Nil(t, err, "listen: %q", listen)
	}
}
