// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open transaction
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	cleanupInterval = 1 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Get - the pending operation for a key
//
// third result is false if the key has no pending operation
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

// Set - record a pending operation, entries live until Clear
func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
