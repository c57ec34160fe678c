// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/util"
)

// enumeration of supported key algorithms
const (
	Nothing = iota // zero keytype **Just for Testing**
	ED25519
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key with its network flag
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - decode the text form of an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - decode the packed binary form of an account
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// only ed25519 keys can hold blocks
	if keyAlgorithm := keyVariant >> algorithmShift; ED25519 != keyAlgorithm {
		return nil, fault.InvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}

	account := &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: make([]byte, ed25519.PublicKeySize),
	}
	copy(account.PublicKey, publicKey)
	return account, nil
}

// Bytes - packed binary form: variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of the packed key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsTesting - whether the public key is for a test chain
func (account *Account) IsTesting() bool {
	return account.Test
}

// Equal - same key on the same network
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
