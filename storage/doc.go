// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: they are collected in a single
// LevelDB batch and only reach the database on Commit.  Reads made
// through the open transaction see its own pending writes.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = big endian uint64 (8 bytes)
// 4. handle       = custody handle, 32 byte SHA3-256 digest
// 5. owner        = packed account (variant ++ 32 byte public key)
// 6. sequence     = big endian uint64 (8 bytes)
//
// Counters:
//
//	N ++ 0x00                  - next asset id to issue
//	                             data: big endian uint64
//	N ++ 0x01                  - next event sequence number
//	                             data: big endian uint64
//
// Assets:
//
//	A ++ asset id              - live asset record
//	                             data: packed asset (tag ++ type ++ count ++ handle)
//	I ++ handle                - asset holding a custody handle
//	                             data: asset id
//
// Custody:
//
//	S ++ 0x00                  - next handle sequence number
//	                             data: big endian uint64
//	H ++ handle                - current holder of a handle
//	                             data: owner
//	W ++ owner ++ handle       - handles held by an owner
//	                             data: empty
//
// Events:
//
//	E ++ sequence              - lifecycle event
//	                             data: packed event
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
