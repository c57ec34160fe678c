// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/blockmint/fault"
)

// TagName - struct tag used to match Lua table keys to fields
const TagName = "gluamapper"

// ParseConfigurationFile - read and execute a Lua file and assign
// the resulting table to a configuration structure
//
// fields not mentioned in the returned table keep the values they
// held before the call, so defaults can be set in Go first
func ParseConfigurationFile(fileName string, config interface{}) error {
	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ConfigurationFileMissing
		}
		return err
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	return mapTop(L, fileName, config)
}

// ParseConfigurationString - as ParseConfigurationFile but execute a
// Lua chunk held in memory, arg[0] is set to name
func ParseConfigurationString(name string, chunk string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(name))
	L.SetGlobal("arg", arg)

	if err := L.DoString(chunk); err != nil {
		return err
	}

	return mapTop(L, name, config)
}

// the chunk must leave a table as its last return value
func mapTop(L *lua.LState, name string, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", name)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: TagName,
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
