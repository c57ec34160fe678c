// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Counters        *PoolHandle `prefix:"N"`
	Assets          *PoolHandle `prefix:"A"`
	HandleIndex     *PoolHandle `prefix:"I"`
	CustodySequence *PoolHandle `prefix:"S"`
	Custody         *PoolHandle `prefix:"H"`
	CustodyOwner    *PoolHandle `prefix:"W"`
	Events          *PoolHandle `prefix:"E"`
	TestData        *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its pools
type Store struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	trx      *transaction
	readOnly bool

	Pool pools
}

// Open - open up the database connection
//
// this must be called before any pool is accessed
func Open(database string, readOnly bool) (*Store, error) {

	log := logger.New("storage")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	name := database + ".leveldb"
	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseIsNewer
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database: %q is empty and cannot be initialised read only", name)
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
		log.Infof("initialised new database: %q", name)
	}

	s := &Store{
		log:      log,
		db:       db,
		readOnly: readOnly,
	}
	s.trx = newTransaction(s, newAccess(db, newCache()))

	if err := s.setupPools(); nil != err {
		return nil, err
	}

	log.Infof("opened database: %q  version: %d  read only: %v", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pools struct and attach a handle
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
	}
}

// IsReadOnly - true if opened in read only mode
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// Begin - start the single write transaction
//
// fails if a transaction is already open
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fmt.Errorf("database is read only")
	}
	err := s.trx.begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// return:
//
//	database handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
