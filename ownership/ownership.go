// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the gate every owner-only operation passes through
package ownership

import (
	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/asset"
	"github.com/bitmark-inc/blockmint/custody"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/storage"
)

// Gate - checks a caller holds a live asset
type Gate struct {
	assets  *asset.Store
	custody custody.Custody
}

// New - create a gate
func New(assets *asset.Store, c custody.Custody) *Gate {
	return &Gate{
		assets:  assets,
		custody: c,
	}
}

// RequireOwner - the asset and its handle if caller holds it now
//
// custody is read on every call, nothing is cached
func (g *Gate) RequireOwner(trx storage.Transaction, caller *account.Account, assetId uint64) (*asset.Asset, custody.Handle, error) {
	if nil == caller {
		return nil, custody.Handle{}, fault.InvalidOwner
	}

	a, err := g.assets.Get(trx, assetId)
	if nil != err {
		return nil, custody.Handle{}, err
	}

	holder, err := g.custody.CurrentOwner(trx, a.Handle)
	if nil != err {
		return nil, custody.Handle{}, err
	}

	if !holder.Equal(caller) {
		return nil, custody.Handle{}, fault.NotOwner
	}

	return a, a.Handle, nil
}
