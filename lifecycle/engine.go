// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/asset"
	"github.com/bitmark-inc/blockmint/custody"
	"github.com/bitmark-inc/blockmint/event"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/messagebus"
	"github.com/bitmark-inc/blockmint/ownership"
	"github.com/bitmark-inc/blockmint/storage"
	"github.com/bitmark-inc/logger"
)

// maximum number of blocks returned by Holdings, an account holding
// more gets a subset taken in custody handle order, not the lowest ids
const MaximumHoldings = 1000

// Clock - source of event timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock - wall clock time in UTC
type SystemClock struct{}

// Now - current time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Lister - a sink that can also read back committed events
type Lister interface {
	List(uint64, int) ([]event.Record, uint64, error)
}

// Info - the public view of one block
type Info struct {
	Id        uint64    `json:"id,string"`
	Name      string    `json:"name"`
	Type      kind.Type `json:"type"`
	Count     uint64    `json:"count,string"`
	Stackable bool      `json:"stackable"`
}

// Manager - the operations offered to outer surfaces
type Manager interface {
	Mint(*account.Account, kind.Type) (uint64, error)
	Burn(*account.Account, uint64) error
	Stack(*account.Account, uint64, uint64) error
	Transfer(*account.Account, uint64, *account.Account) error
	GetAsset(uint64) (*Info, error)
	Holdings(*account.Account) ([]Info, error)
	Events(uint64, int) ([]event.Record, uint64, error)
	NextID() uint64
}

// Engine - the serializing access point to block state
type Engine struct {
	sync.Mutex

	log      *logger.L
	store    *storage.Store
	registry kind.Registry
	custody  custody.Custody
	sink     event.Sink
	clock    Clock
	assets   *asset.Store
	gate     *ownership.Gate
	bus      *messagebus.BroadcastQueue
}

// New - create an engine over an open store
func New(
	store *storage.Store,
	registry kind.Registry,
	c custody.Custody,
	sink event.Sink,
	clock Clock,
	log *logger.L,
) *Engine {
	if nil == log {
		logger.Panic("lifecycle: nil logger")
	}

	assets := asset.New(store)

	return &Engine{
		log:      log,
		store:    store,
		registry: registry,
		custody:  c,
		sink:     sink,
		clock:    clock,
		assets:   assets,
		gate:     ownership.New(assets, c),
		bus:      &messagebus.Bus.Events,
	}
}

// NextID - the identifier the next mint would receive
func (e *Engine) NextID() uint64 {
	return e.assets.NextID()
}

// state of one operation
type operation struct {
	trx    storage.Transaction
	sink   event.Sink
	events []event.Event
}

// record an event in the operation's transaction
func (op *operation) emit(ev event.Event) error {
	err := op.sink.Append(op.trx, ev)
	if nil != err {
		return err
	}
	op.events = append(op.events, ev)
	return nil
}

// run f in a new transaction: commit on success, abort on any error
//
// caller must hold the engine lock
func (e *Engine) transact(name string, f func(op *operation) error) error {
	trx, err := e.store.Begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", name, err)
		return err
	}

	op := &operation{
		trx:  trx,
		sink: e.sink,
	}

	err = f(op)
	if nil != err {
		trx.Abort()
		e.log.Debugf("%s: aborted: %s", name, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Criticalf("%s: commit error: %s", name, err)
		return err
	}

	for _, ev := range op.events {
		e.bus.Send("event", ev)
	}
	return nil
}

// Mint - create a block of a kind held by caller
func (e *Engine) Mint(caller *account.Account, typeId kind.Type) (uint64, error) {
	if nil == caller {
		return 0, fault.InvalidOwner
	}

	k, err := e.registry.Get(typeId)
	if nil != err {
		return 0, err
	}
	if !k.Mintable {
		return 0, fault.TypeNotMintable
	}

	e.Lock()
	defer e.Unlock()

	id := uint64(0)
	err = e.transact("mint", func(op *operation) error {
		assetId, err := e.assets.AllocateID(op.trx)
		if nil != err {
			return err
		}

		handle, err := e.custody.Create(op.trx, caller)
		if nil != err {
			return err
		}

		a := &asset.Asset{
			Id:     assetId,
			Type:   typeId,
			Count:  1,
			Handle: handle,
		}
		err = e.assets.Insert(op.trx, a)
		if nil != err {
			return err
		}

		id = assetId
		return op.emit(&event.Minted{
			AssetId: assetId,
			Type:    typeId,
			Display: k.DisplayName(assetId),
			Creator: caller,
			At:      e.clock.Now(),
		})
	})
	if nil != err {
		return 0, err
	}

	e.log.Infof("mint: %s  owner: %s", k.DisplayName(id), caller)
	return id, nil
}

// Burn - destroy a block held by caller
func (e *Engine) Burn(caller *account.Account, assetId uint64) error {
	e.Lock()
	defer e.Unlock()

	err := e.transact("burn", func(op *operation) error {
		return e.burn(op, caller, assetId)
	})
	if nil != err {
		return err
	}

	e.log.Infof("burn: %d  owner: %s", assetId, caller)
	return nil
}

// shared by Burn and Stack
func (e *Engine) burn(op *operation, caller *account.Account, assetId uint64) error {
	a, handle, err := e.gate.RequireOwner(op.trx, caller, assetId)
	if nil != err {
		return err
	}

	k, err := e.registry.Get(a.Type)
	if nil != err {
		e.log.Criticalf("burn: asset: %d  has unregistered type: %d", a.Id, a.Type)
		return err
	}
	name := k.DisplayName(a.Id)

	_, err = e.assets.Remove(op.trx, assetId)
	if nil != err {
		return err
	}

	err = e.custody.Destroy(op.trx, handle)
	if nil != err {
		return err
	}

	return op.emit(&event.Burned{
		AssetId: a.Id,
		Type:    a.Type,
		Display: name,
		Owner:   caller,
		At:      e.clock.Now(),
	})
}

// Stack - merge source into target, both held by caller
//
// target's count becomes the sum and source is burned, all in one
// transaction
func (e *Engine) Stack(caller *account.Account, targetId uint64, sourceId uint64) error {
	if targetId == sourceId {
		return fault.SameAsset
	}

	e.Lock()
	defer e.Unlock()

	count := uint64(0)
	err := e.transact("stack", func(op *operation) error {
		target, _, err := e.gate.RequireOwner(op.trx, caller, targetId)
		if nil != err {
			return err
		}
		source, _, err := e.gate.RequireOwner(op.trx, caller, sourceId)
		if nil != err {
			return err
		}

		targetKind, err := e.registry.Get(target.Type)
		if nil != err {
			return err
		}
		sourceKind, err := e.registry.Get(source.Type)
		if nil != err {
			return err
		}
		if !targetKind.Stackable || !sourceKind.Stackable {
			return fault.NotStackable
		}
		if target.Type != source.Type {
			return fault.TypeMismatch
		}

		sum := target.Count + source.Count
		if sum < target.Count {
			return fault.CountOverflow
		}

		err = e.assets.UpdateCount(op.trx, targetId, sum)
		if nil != err {
			return err
		}

		err = op.emit(&event.Stacked{
			IntoId:     targetId,
			ConsumedId: sourceId,
			Type:       target.Type,
			Count:      sum,
			Owner:      caller,
			At:         e.clock.Now(),
		})
		if nil != err {
			return err
		}

		count = sum
		return e.burn(op, caller, sourceId)
	})
	if nil != err {
		return err
	}

	e.log.Infof("stack: %d into: %d  count: %d  owner: %s", sourceId, targetId, count, caller)
	return nil
}

// Transfer - give a block held by caller to another account
//
// not a lifecycle transition so no event is recorded
func (e *Engine) Transfer(caller *account.Account, assetId uint64, newOwner *account.Account) error {
	if nil == newOwner {
		return fault.InvalidOwner
	}

	e.Lock()
	defer e.Unlock()

	err := e.transact("transfer", func(op *operation) error {
		_, handle, err := e.gate.RequireOwner(op.trx, caller, assetId)
		if nil != err {
			return err
		}
		return e.custody.Transfer(op.trx, handle, newOwner)
	})
	if nil != err {
		return err
	}

	e.log.Infof("transfer: %d  from: %s  to: %s", assetId, caller, newOwner)
	return nil
}

// GetAsset - the committed state of a block, no ownership check
func (e *Engine) GetAsset(assetId uint64) (*Info, error) {
	a, err := e.assets.Get(nil, assetId)
	if nil != err {
		return nil, err
	}
	return e.info(a)
}

func (e *Engine) info(a *asset.Asset) (*Info, error) {
	k, err := e.registry.Get(a.Type)
	if nil != err {
		return nil, err
	}
	return &Info{
		Id:        a.Id,
		Name:      k.DisplayName(a.Id),
		Type:      a.Type,
		Count:     a.Count,
		Stackable: k.Stackable,
	}, nil
}

// Holdings - the blocks an account holds now, sorted by id
//
// at most MaximumHoldings are returned
func (e *Engine) Holdings(owner *account.Account) ([]Info, error) {
	e.Lock()
	defer e.Unlock()

	handles, err := e.custody.HeldBy(owner, MaximumHoldings)
	if nil != err {
		return nil, err
	}

	holdings := make([]Info, 0, len(handles))
	for _, handle := range handles {
		id, err := e.assets.IDForHandle(nil, handle)
		if nil != err {
			e.log.Criticalf("holdings: handle: %s  has no asset: %s", handle, err)
			return nil, err
		}
		a, err := e.assets.Get(nil, id)
		if nil != err {
			return nil, err
		}
		info, err := e.info(a)
		if nil != err {
			return nil, err
		}
		holdings = append(holdings, *info)
	}
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Id < holdings[j].Id
	})
	return holdings, nil
}

// Events - committed lifecycle events from a sequence number
func (e *Engine) Events(start uint64, count int) ([]event.Record, uint64, error) {
	lister, ok := e.sink.(Lister)
	if !ok {
		return nil, start, fault.NotInitialised
	}
	return lister.List(start, count)
}
