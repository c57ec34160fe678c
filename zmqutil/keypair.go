// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - create a new CURVE key pair and write each half to a file
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// keys are encoded in in Z85 (ZeroMQ Base-85 Encoding) see: http://rfc.zeromq.org/spec:32
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicKey), 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateKey), 0600); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// ReadPublicKeyFile - read a public key file returning 32 bytes
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return key, nil
}

// ReadPrivateKeyFile - read a private key file returning 32 bytes
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return key, nil
}

// ParseKey - decode a tagged key, second result is true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	if strings.HasPrefix(s, taggedPrivate) {
		h, err := hex.DecodeString(s[len(taggedPrivate):])
		if nil != err {
			return nil, false, err
		}
		if privateLength != len(h) {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return h, true, nil
	} else if strings.HasPrefix(s, taggedPublic) {
		h, err := hex.DecodeString(s[len(taggedPublic):])
		if nil != err {
			return nil, false, err
		}
		if publicLength != len(h) {
			return nil, false, fault.InvalidPublicKeyFile
		}
		return h, false, nil
	}

	return nil, false, fault.InvalidPublicKeyFile
}
