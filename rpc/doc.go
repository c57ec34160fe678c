// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup and handle all of the incoming JSON RPC requests
// from clients requiring blockmintd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Blocks.Mint      Blocks.Burn   Blocks.Stack   Blocks.Transfer
//	Blocks.Get       Blocks.Holdings              Blocks.Kinds
//	Events.List
//	Node.Info
//
// requests that change state carry an ed25519 signature by the caller
// over the packed request
package rpc
