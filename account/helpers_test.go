// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"
)

func encode(b []byte) string {
	return base58.Encode(b)
}
