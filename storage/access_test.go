// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/fault"
)

func setupMockTransaction(t *testing.T) (*transaction, *MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := NewMockAccess(ctl)
	s := &Store{}
	trx := newTransaction(s, mock)
	return trx, mock, ctl
}

func TestTransactionPrefixesKeys(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	p := &PoolHandle{prefix: 'A', limit: []byte{'B'}}

	mock.EXPECT().Put([]byte{'A', 1, 2}, []byte("value")).Times(1)
	mock.EXPECT().Delete([]byte{'A', 3}).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	assert.Nil(t, trx.begin(), "begin error")
	trx.Put(p, []byte{1, 2}, []byte("value"))
	trx.Delete(p, []byte{3})
	assert.Nil(t, trx.Commit(), "commit error")
}

func TestTransactionAbortCallsAccess(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Abort().Times(1)

	assert.Nil(t, trx.begin(), "begin error")
	assert.Equal(t, fault.TransactionInUse, trx.begin(), "wrong error on second begin")
	trx.Abort()
	assert.False(t, trx.InUse(), "transaction in use after abort")
}

func TestCacheDeleteReadsAsAbsent(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "k", []byte("v"))
	value, op, found := c.Get("k")
	assert.True(t, found, "put not found")
	assert.Equal(t, dbPut, op, "wrong operation")
	assert.Equal(t, []byte("v"), value, "wrong value")

	c.Set(dbDelete, "k", nil)
	_, op, found = c.Get("k")
	assert.True(t, found, "delete not recorded")
	assert.Equal(t, dbDelete, op, "wrong operation after delete")

	c.Clear()
	_, _, found = c.Get("k")
	assert.False(t, found, "entry survived clear")
}
