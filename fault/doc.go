// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - the errors returned by blockmint packages
//
// every error is a single typed instance so callers compare with ==
// and classify with the IsErrXxx functions, for example an unknown
// kind and a missing asset are both IsErrNotFound while an attempt to
// burn another account's block is IsErrInvalid
package fault
