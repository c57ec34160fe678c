// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test accounts
var (
	Alice = keyFromSeed(0x41)
	Bob   = keyFromSeed(0x42)
	Carol = keyFromSeed(0x43)
)

func keyFromSeed(fill byte) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = fill
	}
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// TestStore - an open database in a temporary directory
type TestStore struct {
	*storage.Store
	Directory string
}

// NewTestStore - open a fresh database, logger must already be set up
func NewTestStore(t *testing.T) *TestStore {
	directory, err := ioutil.TempDir("", "blockmint-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	s, err := storage.Open(filepath.Join(directory, "blocks"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("open database error: %s", err)
	}
	return &TestStore{
		Store:     s,
		Directory: directory,
	}
}

// Reopen - close and open the same database again
func (ts *TestStore) Reopen(t *testing.T) {
	ts.Store.Close()
	s, err := storage.Open(filepath.Join(ts.Directory, "blocks"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("reopen database error: %s", err)
	}
	ts.Store = s
}

// Remove - close the database and delete its files
func (ts *TestStore) Remove() {
	ts.Store.Close()
	os.RemoveAll(ts.Directory)
}

// Clock - a settable time source
type Clock struct {
	sync.Mutex
	now time.Time
}

// NewClock - a clock stopped at a fixed instant
func NewClock() *Clock {
	return &Clock{
		now: time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Now - current setting
func (c *Clock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

// Advance - move the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.Lock()
	c.now = c.now.Add(d)
	c.Unlock()
}
