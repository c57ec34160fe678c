// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - the audit trail of block lifecycle transitions
//
// events are appended in the same transaction as the transition they
// describe and are never modified afterwards
//
// packed formats (all integers are Varint64):
//
//	minted:  1 ⧺ asset id ⧺ type ⧺ name ⧺ creator ⧺ at
//	burned:  2 ⧺ asset id ⧺ type ⧺ name ⧺ owner ⧺ at
//	stacked: 3 ⧺ into id ⧺ consumed id ⧺ type ⧺ count ⧺ owner ⧺ at
//
// name and accounts are length prefixed, at is unix nanoseconds
package event
