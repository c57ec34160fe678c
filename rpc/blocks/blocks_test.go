// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/fixtures"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/lifecycle/mocks"
	"github.com/bitmark-inc/blockmint/rpc/blocks"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T, isTesting bool) (*blocks.Blocks, *mocks.MockManager, *gomock.Controller) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	m := mocks.NewMockManager(ctl)
	return blocks.New(logger.New(fixtures.LogCategory), m, isTesting), m, ctl
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestMint(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	caller := fixtures.Alice.Account()
	arg := blocks.MintArguments{
		Caller: caller,
		Kind:   "log",
		Nonce:  1,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	m.EXPECT().Mint(caller, kind.Log).Return(uint64(12), nil).Times(1)

	var reply blocks.MintReply
	err := b.Mint(&arg, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, uint64(12), reply.Id, "wrong id")
	assert.Equal(t, "Log #12", reply.Name, "wrong name")
}

func TestMintUnknownKind(t *testing.T) {
	b, _, ctl := setup(t, true)
	defer teardown(ctl)

	arg := blocks.MintArguments{
		Caller: fixtures.Alice.Account(),
		Kind:   "DIAMOND",
		Nonce:  1,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	var reply blocks.MintReply
	err := b.Mint(&arg, &reply)
	assert.Equal(t, fault.UnknownAssetType, err, "wrong error")
}

func TestMintBadSignature(t *testing.T) {
	b, _, ctl := setup(t, true)
	defer teardown(ctl)

	arg := blocks.MintArguments{
		Caller: fixtures.Alice.Account(),
		Kind:   "STONE",
		Nonce:  1,
	}
	// signed by the wrong key
	arg.Signature = fixtures.Bob.Sign(arg.Pack())

	var reply blocks.MintReply
	err := b.Mint(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")

	// signature over different nonce
	arg.Signature = fixtures.Alice.Sign(arg.Pack())
	arg.Nonce = 2
	err = b.Mint(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestMintWrongNetwork(t *testing.T) {
	b, _, ctl := setup(t, false)
	defer teardown(ctl)

	arg := blocks.MintArguments{
		Caller: fixtures.Alice.Account(),
		Kind:   "LOG",
		Nonce:  1,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	var reply blocks.MintReply
	err := b.Mint(&arg, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong error")
}

func TestReplayRejected(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	caller := fixtures.Alice.Account()
	arg := blocks.BurnArguments{
		Caller: caller,
		Id:     3,
		Nonce:  99,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	m.EXPECT().Burn(caller, uint64(3)).Return(nil).Times(1)

	var reply blocks.ResultReply
	err := b.Burn(&arg, &reply)
	assert.Nil(t, err, "wrong Burn")
	assert.Equal(t, "ok", reply.Result, "wrong result")

	err = b.Burn(&arg, &reply)
	assert.Equal(t, fault.RequestReplayed, err, "replay accepted")
}

func TestBurnPassesEngineError(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	caller := fixtures.Bob.Account()
	arg := blocks.BurnArguments{
		Caller: caller,
		Id:     7,
		Nonce:  1,
	}
	arg.Signature = fixtures.Bob.Sign(arg.Pack())

	m.EXPECT().Burn(caller, uint64(7)).Return(fault.NotOwner).Times(1)

	var reply blocks.ResultReply
	err := b.Burn(&arg, &reply)
	assert.Equal(t, fault.NotOwner, err, "wrong error")
	assert.Equal(t, "", reply.Result, "result set on failure")
}

func TestStack(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	caller := fixtures.Alice.Account()
	arg := blocks.StackArguments{
		Caller: caller,
		Target: 1,
		Source: 2,
		Nonce:  5,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	m.EXPECT().Stack(caller, uint64(1), uint64(2)).Return(nil).Times(1)

	var reply blocks.ResultReply
	err := b.Stack(&arg, &reply)
	assert.Nil(t, err, "wrong Stack")
	assert.Equal(t, "ok", reply.Result, "wrong result")
}

func TestTransfer(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	caller := fixtures.Alice.Account()
	owner := fixtures.Carol.Account()
	arg := blocks.TransferArguments{
		Caller: caller,
		Id:     4,
		Owner:  owner,
		Nonce:  1,
	}
	arg.Signature = fixtures.Alice.Sign(arg.Pack())

	m.EXPECT().Transfer(caller, uint64(4), owner).Return(nil).Times(1)

	var reply blocks.ResultReply
	err := b.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")

	err = b.Transfer(&blocks.TransferArguments{Caller: caller, Id: 4}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing owner accepted")
}

func TestGet(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	info := &lifecycle.Info{
		Id:        9,
		Name:      "Torch #9",
		Type:      kind.Torch,
		Count:     1,
		Stackable: false,
	}
	m.EXPECT().GetAsset(uint64(9)).Return(info, nil).Times(1)
	m.EXPECT().GetAsset(uint64(10)).Return(nil, fault.AssetNotFound).Times(1)

	var reply lifecycle.Info
	err := b.Get(&blocks.GetArguments{Id: 9}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *info, reply, "wrong info")

	err = b.Get(&blocks.GetArguments{Id: 10}, &reply)
	assert.Equal(t, fault.AssetNotFound, err, "wrong error")
}

func TestHoldings(t *testing.T) {
	b, m, ctl := setup(t, true)
	defer teardown(ctl)

	owner := fixtures.Bob.Account()
	held := []lifecycle.Info{
		{Id: 1, Name: "Log #1", Type: kind.Log, Count: 3, Stackable: true},
		{Id: 4, Name: "Stone #4", Type: kind.Stone, Count: 1, Stackable: true},
	}
	m.EXPECT().Holdings(owner).Return(held, nil).Times(1)

	var reply blocks.HoldingsReply
	err := b.Holdings(&blocks.HoldingsArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Holdings")
	assert.Equal(t, held, reply.Blocks, "wrong holdings")

	err = b.Holdings(&blocks.HoldingsArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing owner accepted")

	live := &account.Account{
		Test:      false,
		PublicKey: owner.PublicKey,
	}
	err = b.Holdings(&blocks.HoldingsArguments{Owner: live}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network accepted")
}

func TestKinds(t *testing.T) {
	b, _, ctl := setup(t, true)
	defer teardown(ctl)

	var reply blocks.KindsReply
	err := b.Kinds(&blocks.KindsArguments{}, &reply)
	assert.Nil(t, err, "wrong Kinds")
	assert.Equal(t, kind.All(), reply.Kinds, "wrong kinds")
}
