// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	AssetNotFound            = NotFoundError("asset not found")
	CannotDecodeAccount      = RecordError("cannot decode account")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ConfigurationFileMissing = NotFoundError("configuration file not found")
	CountOverflow            = ProcessError("count overflow")
	CustodyNotFound          = NotFoundError("custody handle not found")
	DatabaseIsNewer          = ProcessError("database version is newer than this program")
	DuplicateAssetId         = ExistsError("duplicate asset id")
	DuplicateCustody         = ExistsError("duplicate custody handle")
	FileAlreadyExists        = ExistsError("file already exists")
	IdentifiersExhausted     = ProcessError("asset identifiers exhausted")
	InvalidAssetId           = InvalidError("invalid asset id")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidHandleLength      = LengthError("invalid custody handle length")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKeyLength         = LengthError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidLoggerChannel     = InvalidError("invalid logger channel")
	InvalidOwner             = InvalidError("invalid owner")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidSignature         = InvalidError("invalid signature")
	KeyFileAlreadyExists     = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	NotInitialised           = NotFoundError("not initialised")
	NotOwner                 = InvalidError("caller is not the owner")
	NotPublicKey             = InvalidError("not a public key")
	NotStackable             = InvalidError("asset type is not stackable")
	RateLimiting             = ProcessError("rate limiting")
	RequestReplayed          = ExistsError("request already processed")
	SameAsset                = InvalidError("cannot stack an asset onto itself")
	TransactionInUse         = ProcessError("transaction already in use")
	TransactionNotStarted    = ProcessError("transaction not started")
	TruncatedRecord          = RecordError("record is truncated")
	TypeMismatch             = InvalidError("asset types do not match")
	TypeNotMintable          = InvalidError("asset type is not mintable")
	UnknownAssetType         = NotFoundError("unknown asset type")
	UnknownRecordTag         = RecordError("unknown record tag")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
