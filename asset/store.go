// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/blockmint/counter"
	"github.com/bitmark-inc/blockmint/custody"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/storage"
	"github.com/bitmark-inc/logger"
)

// the first identifier ever issued
const firstAssetId = 1

var nextIdKey = []byte{0x00}

// Store - asset records and the identifier counter
//
// a nil transaction reads committed data
type Store struct {
	log     *logger.L
	nextId  *storage.PoolHandle
	assets  *storage.PoolHandle
	handles *storage.PoolHandle

	// never decreases, so an identifier given to an aborted
	// operation is not issued again
	highWater counter.Counter
}

// New - asset store over an open database
func New(s *storage.Store) *Store {
	st := &Store{
		log:     logger.New("asset"),
		nextId:  s.Pool.Counters,
		assets:  s.Pool.Assets,
		handles: s.Pool.HandleIndex,
	}

	n, found := st.nextId.GetN(nextIdKey)
	if !found {
		n = firstAssetId
	}
	st.highWater.Raise(n)

	st.log.Infof("next asset id: %d", st.highWater.Uint64())
	return st
}

// NextID - the identifier the next mint would receive
func (s *Store) NextID() uint64 {
	return s.highWater.Uint64()
}

// AllocateID - issue the next identifier
//
// the persisted counter is updated in trx
func (s *Store) AllocateID(trx storage.Transaction) (uint64, error) {
	persisted, found := trx.GetN(s.nextId, nextIdKey)
	if !found {
		persisted = firstAssetId
	}

	id := s.highWater.Raise(persisted)
	if math.MaxUint64 == id {
		return 0, fault.IdentifiersExhausted
	}

	s.highWater.Raise(id + 1)
	trx.PutN(s.nextId, nextIdKey, id+1)
	return id, nil
}

// Insert - add a new asset
func (s *Store) Insert(trx storage.Transaction, a *Asset) error {
	if 0 == a.Id {
		return fault.InvalidAssetId
	}

	key := idKey(a.Id)
	if trx.Has(s.assets, key) {
		return fault.DuplicateAssetId
	}

	packed, err := a.Pack()
	if nil != err {
		return err
	}

	trx.Put(s.assets, key, packed)
	trx.Put(s.handles, a.Handle[:], key)
	return nil
}

// Get - fetch a live asset
func (s *Store) Get(trx storage.Transaction, id uint64) (*Asset, error) {
	key := idKey(id)

	var packed []byte
	if nil == trx {
		packed = s.assets.Get(key)
	} else {
		packed = trx.Get(s.assets, key)
	}
	if nil == packed {
		return nil, fault.AssetNotFound
	}

	a, err := Packed(packed).Unpack(id)
	if nil != err {
		s.log.Criticalf("asset id: %d  record: %x  error: %s", id, packed, err)
		return nil, err
	}
	return a, nil
}

// UpdateCount - replace the count of a live asset
func (s *Store) UpdateCount(trx storage.Transaction, id uint64, count uint64) error {
	a, err := s.Get(trx, id)
	if nil != err {
		return err
	}

	a.Count = count
	packed, err := a.Pack()
	if nil != err {
		return err
	}

	trx.Put(s.assets, idKey(id), packed)
	return nil
}

// Remove - delete a live asset, returning its final state
func (s *Store) Remove(trx storage.Transaction, id uint64) (*Asset, error) {
	a, err := s.Get(trx, id)
	if nil != err {
		return nil, err
	}

	trx.Delete(s.assets, idKey(id))
	trx.Delete(s.handles, a.Handle[:])
	return a, nil
}

// IDForHandle - the asset referred to by a custody handle
func (s *Store) IDForHandle(trx storage.Transaction, handle custody.Handle) (uint64, error) {
	var n uint64
	var found bool
	if nil == trx {
		n, found = s.handles.GetN(handle[:])
	} else {
		n, found = trx.GetN(s.handles, handle[:])
	}
	if !found {
		return 0, fault.AssetNotFound
	}
	return n, nil
}

// big endian so records iterate in identifier order
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
