// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kind - compiled-in registry of block kinds
//
// Each kind is one row of the table in registry.go; the row carries
// all display metadata and the mint/stack eligibility flags so adding
// a kind never requires changes outside this package.
package kind
