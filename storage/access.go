// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// Access - batched access to the database
type Access interface {
	Abort()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Put([]byte, []byte)
}

// AccessData - a LevelDB batch with a cache of its pending writes
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newAccess(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) Put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	d.cache.Set(dbPut, string(key), stored)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically then start an empty one
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard every pending write
func (d *AccessData) Abort() {
	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

// Get - pending value if any, otherwise the committed value
//
// returns leveldb.ErrNotFound for a missing or pending-deleted key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}
