// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process queues between the lifecycle and
// the components that deliver its events outside the process
//
// only committed events are ever sent
package messagebus
