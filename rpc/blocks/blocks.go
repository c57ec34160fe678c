// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/rpc/ratelimit"
	"github.com/bitmark-inc/blockmint/util"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBlocks = 200
	rateBurstBlocks = 100

	// signed requests are remembered this long to refuse replays
	replayWindow = 30 * time.Minute
)

// tags prefixed to each signed request
const (
	mintTag     = 1
	burnTag     = 2
	stackTag    = 3
	transferTag = 4
)

// Blocks - type for RPC calls
type Blocks struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Manager   lifecycle.Manager
	IsTesting bool
	seen      *cache.Cache
}

// New - create the Blocks RPC service
func New(log *logger.L, manager lifecycle.Manager, isTesting bool) *Blocks {
	return &Blocks{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitBlocks, rateBurstBlocks),
		Manager:   manager,
		IsTesting: isTesting,
		seen:      cache.New(replayWindow, 2*replayWindow),
	}
}

// ---

// MintArguments - mint a new block of a kind
type MintArguments struct {
	Caller    *account.Account  `json:"caller"`
	Kind      string            `json:"kind"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// MintReply - identifier of the new block
type MintReply struct {
	Id   uint64 `json:"id,string"`
	Name string `json:"name"`
}

// Pack - the bytes covered by the signature
func (arguments *MintArguments) Pack() []byte {
	buffer := util.ToVarint64(mintTag)
	buffer = util.AppendBytes(buffer, arguments.Caller.Bytes())
	buffer = util.AppendString(buffer, arguments.Kind)
	return util.AppendUint64(buffer, arguments.Nonce)
}

// Mint - create a block owned by the caller
func (blocks *Blocks) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	k, err := kind.FromCode(arguments.Kind)
	if nil != err {
		return err
	}

	if err := blocks.verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		return err
	}

	blocks.Log.Infof("mint: %s  caller: %s", k.Code, arguments.Caller)

	id, err := blocks.Manager.Mint(arguments.Caller, k.Id)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Name = k.DisplayName(id)
	return nil
}

// ---

// BurnArguments - destroy a block
type BurnArguments struct {
	Caller    *account.Account  `json:"caller"`
	Id        uint64            `json:"id,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Pack - the bytes covered by the signature
func (arguments *BurnArguments) Pack() []byte {
	buffer := util.ToVarint64(burnTag)
	buffer = util.AppendBytes(buffer, arguments.Caller.Bytes())
	buffer = util.AppendUint64(buffer, arguments.Id)
	return util.AppendUint64(buffer, arguments.Nonce)
}

// Burn - destroy a block held by the caller
func (blocks *Blocks) Burn(arguments *BurnArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := blocks.verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		return err
	}

	blocks.Log.Infof("burn: %d  caller: %s", arguments.Id, arguments.Caller)

	if err := blocks.Manager.Burn(arguments.Caller, arguments.Id); nil != err {
		return err
	}
	reply.Result = "ok"
	return nil
}

// ---

// StackArguments - merge source into target
type StackArguments struct {
	Caller    *account.Account  `json:"caller"`
	Target    uint64            `json:"target,string"`
	Source    uint64            `json:"source,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Pack - the bytes covered by the signature
func (arguments *StackArguments) Pack() []byte {
	buffer := util.ToVarint64(stackTag)
	buffer = util.AppendBytes(buffer, arguments.Caller.Bytes())
	buffer = util.AppendUint64(buffer, arguments.Target)
	buffer = util.AppendUint64(buffer, arguments.Source)
	return util.AppendUint64(buffer, arguments.Nonce)
}

// Stack - merge two blocks of the same kind held by the caller
func (blocks *Blocks) Stack(arguments *StackArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	if err := blocks.verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		return err
	}

	blocks.Log.Infof("stack: %d into: %d  caller: %s", arguments.Source, arguments.Target, arguments.Caller)

	if err := blocks.Manager.Stack(arguments.Caller, arguments.Target, arguments.Source); nil != err {
		return err
	}
	reply.Result = "ok"
	return nil
}

// ---

// TransferArguments - give a block to another account
type TransferArguments struct {
	Caller    *account.Account  `json:"caller"`
	Id        uint64            `json:"id,string"`
	Owner     *account.Account  `json:"owner"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Pack - the bytes covered by the signature
func (arguments *TransferArguments) Pack() []byte {
	buffer := util.ToVarint64(transferTag)
	buffer = util.AppendBytes(buffer, arguments.Caller.Bytes())
	buffer = util.AppendUint64(buffer, arguments.Id)
	buffer = util.AppendBytes(buffer, arguments.Owner.Bytes())
	return util.AppendUint64(buffer, arguments.Nonce)
}

// Transfer - change the holder of a block
func (blocks *Blocks) Transfer(arguments *TransferArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if arguments.Owner.IsTesting() != blocks.IsTesting {
		return fault.WrongNetworkForPublicKey
	}

	if err := blocks.verify(arguments.Caller, arguments.Pack(), arguments.Signature); nil != err {
		return err
	}

	blocks.Log.Infof("transfer: %d  caller: %s  to: %s", arguments.Id, arguments.Caller, arguments.Owner)

	if err := blocks.Manager.Transfer(arguments.Caller, arguments.Id, arguments.Owner); nil != err {
		return err
	}
	reply.Result = "ok"
	return nil
}

// ResultReply - result of a state changing request
type ResultReply struct {
	Result string `json:"result"`
}

// ---

// GetArguments - block to look up
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// Get - the public view of a single block
func (blocks *Blocks) Get(arguments *GetArguments, reply *lifecycle.Info) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	info, err := blocks.Manager.GetAsset(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// ---

// HoldingsArguments - account to list
type HoldingsArguments struct {
	Owner *account.Account `json:"owner"`
}

// HoldingsReply - blocks held by an account in identifier order
type HoldingsReply struct {
	Blocks []lifecycle.Info `json:"blocks"`
}

// Holdings - list the blocks an account holds
func (blocks *Blocks) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if arguments.Owner.IsTesting() != blocks.IsTesting {
		return fault.WrongNetworkForPublicKey
	}

	held, err := blocks.Manager.Holdings(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Blocks = held
	return nil
}

// ---

// KindsArguments - empty arguments for the registry listing
type KindsArguments struct{}

// KindsReply - the compiled in registry
type KindsReply struct {
	Kinds []kind.Kind `json:"kinds"`
}

// Kinds - list every registered kind
func (blocks *Blocks) Kinds(_ *KindsArguments, reply *KindsReply) error {
	if err := ratelimit.Limit(blocks.Limiter); nil != err {
		return err
	}
	reply.Kinds = kind.All()
	return nil
}

// ---

// check chain, signature and replay for a signed request
func (blocks *Blocks) verify(caller *account.Account, message []byte, signature account.Signature) error {
	if caller.IsTesting() != blocks.IsTesting {
		return fault.WrongNetworkForPublicKey
	}

	if err := caller.CheckSignature(message, signature); nil != err {
		blocks.Log.Debugf("signature check failed for: %s", caller)
		return err
	}

	key := hex.EncodeToString(signature)
	if err := blocks.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		return fault.RequestReplayed
	}
	return nil
}
