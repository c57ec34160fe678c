// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities of the callers that hold blocks
//
// An account is an ed25519 public key prefixed by a key variant byte:
//
//	variant = algorithm << 4 | test flag << 1 | public key flag
//
// The text form is Base58(variant ++ public key ++ checksum) where the
// checksum is the first four bytes of SHA3-256(variant ++ public key).
package account
