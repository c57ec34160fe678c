// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lifecycle - mint, burn and stack blocks
//
// the Engine is the only writer of block state; each operation holds
// the engine lock and runs inside one storage transaction, so it either
// commits completely or leaves nothing behind
//
// events recorded by an operation are sent on messagebus.Bus.Events
// only after its transaction has committed
package lifecycle
