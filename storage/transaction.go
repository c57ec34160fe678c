// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - the single unit of work against the database
//
// nothing written through a transaction is visible to pool reads
// until Commit; Abort discards everything
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	store  *Store
	access Access
	inUse  bool
}

func newTransaction(store *Store, access Access) *transaction {
	return &transaction{
		store:  store,
		access: access,
		inUse:  false,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) mustBeOpen(operation string) {
	if !t.inUse {
		logger.Panicf("storage.%s: no transaction in progress", operation)
	}
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeOpen("Put")
	t.access.Put(p.prefixKey(key), value)
}

// PutN - store value as 8 byte big endian
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeOpen("Delete")
	t.access.Delete(p.prefixKey(key))
}

// Get - read through the pending writes
//
// nil if not found
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()
	t.mustBeOpen("Get")

	t.store.RLock()
	defer t.store.RUnlock()

	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	defer t.Unlock()
	t.mustBeOpen("Has")

	t.store.RLock()
	defer t.store.RUnlock()

	found, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write all pending data atomically and end the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}

	t.store.RLock()
	defer t.store.RUnlock()

	t.inUse = false
	return t.access.Commit()
}

// Abort - discard all pending data and end the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.access.Abort()
	t.inUse = false
}
