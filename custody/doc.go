// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - who holds each block
//
// a block refers to its holder only through an opaque custody handle;
// exactly one account holds a handle at any time
//
// pools used:
//
//	S: sequence        - next handle sequence number
//	H: handle          - owner account bytes
//	W: owner ⧺ handle  - (empty), the holdings index
package custody
