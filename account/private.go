// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blockmint/fault"
)

// PrivateKey - signing half of an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair from the system random source
func NewPrivateKey(test bool) (*PrivateKey, error) {
	return newPrivateKey(test, rand.Reader)
}

func newPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBase58 - decode the text form written by String
func PrivateKeyFromBase58(s string, test bool) (*PrivateKey, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return nil, fault.CannotDecodeAccount
	}
	if ed25519.PrivateKeySize != len(b) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.PrivateKey(b),
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	account := &Account{
		Test:      privateKey.Test,
		PublicKey: make([]byte, ed25519.PublicKeySize),
	}
	copy(account.PublicKey, publicKey)
	return account
}

// Sign - sign a packed message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// String - base58 of the raw private key
func (privateKey *PrivateKey) String() string {
	return base58.Encode(privateKey.PrivateKey)
}
