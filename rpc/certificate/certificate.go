// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/util"
	"github.com/bitmark-inc/logger"
)

// self signed certificates are valid for this long
const validity = 10 * 365 * 24 * time.Hour

// Get - build a TLS configuration from PEM encoded certificate and key
// and return it with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - as Get but read the PEM data from files
//
// both names blank disables TLS and returns a nil configuration
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if "" == certificateFileName && "" == keyFileName {
		log.Warnf("%s: TLS disabled", name)
		return nil, fin, nil
	}

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFileName, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s: read key: %q  error: %s", name, keyFileName, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in blockmintd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - create a self-signed certificate and key pair
// and write them as PEM files, neither file may already exist
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) || util.EnsureFileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	organisation := "blockmintd self signed cert for: " + name
	override := 0 != len(extraHosts)
	cert, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(validity), override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0644); err != nil {
		return err
	}

	if err = ioutil.WriteFile(keyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}
