// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/storage"
	"github.com/bitmark-inc/logger"
)

// Custody - the operations the lifecycle needs from a custody service
type Custody interface {
	CurrentOwner(storage.Transaction, Handle) (*account.Account, error)
	Create(storage.Transaction, *account.Account) (Handle, error)
	Destroy(storage.Transaction, Handle) error
	Transfer(storage.Transaction, Handle, *account.Account) error
	HeldBy(*account.Account, int) ([]Handle, error)
}

// key of the single sequence record
var sequenceKey = []byte{0x00}

// Ledger - custody records kept in the block database
type Ledger struct {
	log      *logger.L
	sequence *storage.PoolHandle
	handles  *storage.PoolHandle
	owners   *storage.PoolHandle
}

// New - custody ledger over an open store
func New(s *storage.Store) *Ledger {
	return &Ledger{
		log:      logger.New("custody"),
		sequence: s.Pool.CustodySequence,
		handles:  s.Pool.Custody,
		owners:   s.Pool.CustodyOwner,
	}
}

// CurrentOwner - the account holding a handle now
func (l *Ledger) CurrentOwner(trx storage.Transaction, handle Handle) (*account.Account, error) {
	ownerBytes := trx.Get(l.handles, handle[:])
	if nil == ownerBytes {
		return nil, fault.CustodyNotFound
	}
	owner, err := account.FromBytes(ownerBytes)
	if nil != err {
		l.log.Criticalf("handle: %s  undecodable owner: %x  error: %s", handle, ownerBytes, err)
		return nil, err
	}
	return owner, nil
}

// Create - issue a new handle held by owner
func (l *Ledger) Create(trx storage.Transaction, owner *account.Account) (Handle, error) {
	if nil == owner {
		return Handle{}, fault.InvalidOwner
	}

	n, _ := trx.GetN(l.sequence, sequenceKey)
	n += 1
	trx.PutN(l.sequence, sequenceKey, n)

	ownerBytes := owner.Bytes()

	seed := make([]byte, len(ownerBytes)+8)
	copy(seed, ownerBytes)
	binary.BigEndian.PutUint64(seed[len(ownerBytes):], n)
	handle := Handle(sha3.Sum256(seed))

	if trx.Has(l.handles, handle[:]) {
		return Handle{}, fault.DuplicateCustody
	}

	trx.Put(l.handles, handle[:], ownerBytes)
	trx.Put(l.owners, ownerKey(ownerBytes, handle), []byte{})

	l.log.Debugf("create: %s  owner: %s", handle, owner)
	return handle, nil
}

// Destroy - remove a handle and its holdings entry
func (l *Ledger) Destroy(trx storage.Transaction, handle Handle) error {
	ownerBytes := trx.Get(l.handles, handle[:])
	if nil == ownerBytes {
		return fault.CustodyNotFound
	}

	trx.Delete(l.handles, handle[:])
	trx.Delete(l.owners, ownerKey(ownerBytes, handle))

	l.log.Debugf("destroy: %s", handle)
	return nil
}

// Transfer - give a handle to another account
func (l *Ledger) Transfer(trx storage.Transaction, handle Handle, newOwner *account.Account) error {
	if nil == newOwner {
		return fault.InvalidOwner
	}

	ownerBytes := trx.Get(l.handles, handle[:])
	if nil == ownerBytes {
		return fault.CustodyNotFound
	}

	newOwnerBytes := newOwner.Bytes()
	if bytes.Equal(ownerBytes, newOwnerBytes) {
		return nil
	}

	trx.Delete(l.owners, ownerKey(ownerBytes, handle))
	trx.Put(l.handles, handle[:], newOwnerBytes)
	trx.Put(l.owners, ownerKey(newOwnerBytes, handle), []byte{})

	l.log.Debugf("transfer: %s  to: %s", handle, newOwner)
	return nil
}

// HeldBy - committed handles held by owner, at most count of them
func (l *Ledger) HeldBy(owner *account.Account, count int) ([]Handle, error) {
	if nil == owner {
		return nil, fault.InvalidOwner
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	ownerBytes := owner.Bytes()
	cursor := l.owners.NewFetchCursor().Seek(ownerBytes)

	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	handles := make([]Handle, 0, len(items))
loop:
	for _, item := range items {
		split := len(item.Key) - HandleLength
		if split <= 0 || !bytes.Equal(ownerBytes, item.Key[:split]) {
			break loop
		}
		var handle Handle
		copy(handle[:], item.Key[split:])
		handles = append(handles, handle)
	}
	return handles, nil
}

// owner ⧺ handle
func ownerKey(ownerBytes []byte, handle Handle) []byte {
	key := make([]byte, 0, len(ownerBytes)+HandleLength)
	key = append(key, ownerBytes...)
	return append(key, handle[:]...)
}
