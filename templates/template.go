// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text of generated files
package templates

import (
	"io"
	"text/template"
)

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- blockmintd.conf  -*- mode: lua -*-

local M = {}

-- "." is the directory holding this file
M.data_directory = "{{.DataDirectory}}"

-- blockmint, testing or local
M.chain = "{{.Chain}}"

-- optional pid file if not running under a supervisor
M.pidfile = ""

M.database = {
    directory = "data",
    name = "{{.Chain}}",
}

M.client_rpc = {
    maximum_connections = {{.MaximumConnections}},
    listen = {
{{- range .Listen}}
        "{{.}}",
{{- end}}
    },
    -- blank both to serve plain TCP
    certificate = "rpc.crt",
    private_key = "rpc.key",
}

M.publishing = {
    broadcast = {
{{- range .Broadcast}}
        "{{.}}",
{{- end}}
    },
    -- blank both for unencrypted sockets
    private_key = "publish.private",
    public_key = "publish.public",
}

M.logging = {
    size = 1048576,
    count = 10,
    directory = "log",
    file = "blockmintd.log",
    console = false,
    levels = {
        DEFAULT = "error",
        main = "info",
        lifecycle = "info",
        publish = "info",
        rpc = "info",
    },
}

return M
`
)

// ConfigurationData - values substituted into ConfigurationTemplate
type ConfigurationData struct {
	DataDirectory      string
	Chain              string
	MaximumConnections int
	Listen             []string
	Broadcast          []string
}

var configuration = template.Must(template.New("configuration").Parse(ConfigurationTemplate))

// WriteConfiguration - render a configuration file
func WriteConfiguration(w io.Writer, data *ConfigurationData) error {
	return configuration.Execute(w, data)
}
