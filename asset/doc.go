// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the live blocks
//
// every block has a unique identifier issued in strictly increasing
// order, never reused, a kind and a count of at least one
//
// pools used:
//
//	N: 0x00          - next identifier to issue (shared counters pool)
//	A: id(8 bytes)   - packed asset record
//	I: handle        - id(8 bytes), locates a block from its custody handle
package asset
