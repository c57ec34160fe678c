// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/fault"
)

// deterministic key source
func testKey(t *testing.T, fill byte, test bool) *PrivateKey {
	seed := bytes.Repeat([]byte{fill}, 64)
	key, err := newPrivateKey(test, bytes.NewReader(seed))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func TestBase58RoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		a := testKey(t, 0x42, test).Account()

		s := a.String()
		b, err := FromBase58(s)
		assert.Nil(t, err, "decode error")
		assert.True(t, a.Equal(b), "decoded account differs")
		assert.Equal(t, test, b.IsTesting(), "wrong network flag")
	}
}

func TestTestFlagChangesText(t *testing.T) {
	live := testKey(t, 0x11, false).Account()
	test := testKey(t, 0x11, true).Account()

	assert.NotEqual(t, live.String(), test.String(), "network flag not encoded")
	assert.False(t, live.Equal(test), "accounts on different networks are equal")
}

func TestChecksumMismatch(t *testing.T) {
	a := testKey(t, 0x21, true).Account()
	b := a.Bytes()
	b = append(b, 0, 0, 0, 0)

	_, err := FromBase58(encode(b))
	assert.Equal(t, fault.ChecksumMismatch, err, "checksum not verified")
}

func TestFromBytesRejectsShortKey(t *testing.T) {
	a := testKey(t, 0x31, false).Account()
	b := a.Bytes()

	_, err := FromBytes(b[:len(b)-1])
	assert.Equal(t, fault.InvalidKeyLength, err, "short key accepted")

	_, err = FromBytes([]byte{0x10})
	assert.Equal(t, fault.NotPublicKey, err, "private key flag accepted")
}

func TestSignature(t *testing.T) {
	key := testKey(t, 0x55, true)
	a := key.Account()

	message := []byte("mint LOG")
	signature := key.Sign(message)

	assert.Nil(t, a.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, a.CheckSignature([]byte("mint PLANK"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, a.CheckSignature(message, signature[1:]), "short signature accepted")
}

func TestJSON(t *testing.T) {
	a := testKey(t, 0x66, true).Account()

	data, err := json.Marshal(struct {
		Owner *Account `json:"owner"`
	}{a})
	assert.Nil(t, err, "marshal error")

	var reply struct {
		Owner *Account `json:"owner"`
	}
	err = json.Unmarshal(data, &reply)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, a.Equal(reply.Owner), "JSON round trip changed the account")
}

func TestPrivateKeyText(t *testing.T) {
	key := testKey(t, 0x77, false)

	decoded, err := PrivateKeyFromBase58(key.String(), false)
	assert.Nil(t, err, "decode error")
	assert.True(t, key.Account().Equal(decoded.Account()), "wrong account from decoded key")
}
