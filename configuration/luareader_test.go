// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/configuration"
	"github.com/bitmark-inc/blockmint/fault"
)

type listenType struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	PidFile       string            `gluamapper:"pidfile"`
	RPC           listenType        `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testChunk = `
local M = {}

M.data_directory = "."
M.chain = "testing"

M.client_rpc = {
    maximum_connections = 7,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
}

M.levels = {
    main = "debug",
    lifecycle = "info",
}

return M
`

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "blockmintd.conf")
	err = ioutil.WriteFile(fileName, []byte(testChunk), 0600)
	assert.Nil(t, err, "write configuration")

	config := &testConfiguration{
		PidFile: "blockmintd.pid",
	}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, "testing", config.Chain, "chain")
	assert.Equal(t, "blockmintd.pid", config.PidFile, "default was overwritten")
	assert.Equal(t, 7, config.RPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.RPC.Listen, "listen")
	assert.Equal(t, "debug", config.Levels["main"], "main level")
	assert.Equal(t, "info", config.Levels["lifecycle"], "lifecycle level")
}

func TestParseFileUsesArg(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString("/etc/blockmintd.conf", `return { data_directory = arg[0] }`, config)
	assert.Nil(t, err, "parse")
	assert.Equal(t, "/etc/blockmintd.conf", config.DataDirectory, "arg[0]")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/no/such/directory/blockmintd.conf", config)
	assert.Equal(t, fault.ConfigurationFileMissing, err, "missing file")
}

func TestParseNotATable(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString("number", `return 42`, config)
	assert.NotNil(t, err, "non-table result accepted")

	err = configuration.ParseConfigurationString("syntax", `return {`, config)
	assert.NotNil(t, err, "syntax error accepted")
}
