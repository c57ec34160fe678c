// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk which must return a table; the
// table is then mapped onto a Go structure using "gluamapper" tags.
// Most of base Lua is available so a file can read environment
// variables with os.getenv or derive values from arg[0], the name of
// the file itself.
package configuration
