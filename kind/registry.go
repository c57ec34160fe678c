// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bitmark-inc/blockmint/fault"
)

// Type - numeric identifier of a kind
type Type uint64

// registered kind identifiers
const (
	Log   Type = 1
	Plank Type = 2
	Stone Type = 3
	Torch Type = 4
)

// Kind - immutable metadata of one block kind
type Kind struct {
	Id          Type   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DisplayURI  string `json:"displayURI"`
	Mintable    bool   `json:"mintable"`
	Stackable   bool   `json:"stackable"`
}

// the registry: one row per kind
var table = map[Type]Kind{
	Log: {
		Id:          Log,
		Code:        "LOG",
		Name:        "Log",
		Description: "A length of rough timber, the raw material for planks",
		DisplayURI:  "/images/kind/log.png",
		Mintable:    true,
		Stackable:   true,
	},
	Plank: {
		Id:          Plank,
		Code:        "PLANK",
		Name:        "Plank",
		Description: "A sawn wooden board used for building",
		DisplayURI:  "/images/kind/plank.png",
		Mintable:    true,
		Stackable:   true,
	},
	Stone: {
		Id:          Stone,
		Code:        "STONE",
		Name:        "Stone",
		Description: "A rough block of quarried stone",
		DisplayURI:  "/images/kind/stone.png",
		Mintable:    true,
		Stackable:   true,
	},
	Torch: {
		Id:          Torch,
		Code:        "TORCH",
		Name:        "Torch",
		Description: "A single lit torch, each one is unique",
		DisplayURI:  "/images/kind/torch.png",
		Mintable:    true,
		Stackable:   false,
	},
}

// Get - metadata for a kind
func Get(id Type) (*Kind, error) {
	k, ok := table[id]
	if !ok {
		return nil, fault.UnknownAssetType
	}
	return &k, nil
}

// FromCode - look up a kind by its code, case insensitive
func FromCode(code string) (*Kind, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, k := range table {
		if code == k.Code {
			k := k
			return &k, nil
		}
	}
	return nil, fault.UnknownAssetType
}

// All - every registered kind in identifier order
func All() []Kind {
	kinds := make([]Kind, 0, len(table))
	for _, k := range table {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].Id < kinds[j].Id
	})
	return kinds
}

// Name - human readable name of a kind
func Name(id Type) (string, error) {
	k, err := Get(id)
	if nil != err {
		return "", err
	}
	return k.Name, nil
}

// Description - descriptive text of a kind
func Description(id Type) (string, error) {
	k, err := Get(id)
	if nil != err {
		return "", err
	}
	return k.Description, nil
}

// DisplayURI - locator of the display resource of a kind
func DisplayURI(id Type) (string, error) {
	k, err := Get(id)
	if nil != err {
		return "", err
	}
	return k.DisplayURI, nil
}

// IsMintable - whether new blocks of a kind may be minted
func IsMintable(id Type) (bool, error) {
	k, err := Get(id)
	if nil != err {
		return false, err
	}
	return k.Mintable, nil
}

// IsStackable - whether blocks of a kind may be merged
func IsStackable(id Type) (bool, error) {
	k, err := Get(id)
	if nil != err {
		return false, err
	}
	return k.Stackable, nil
}

// DisplayName - the name shown for a single block: "Log #12"
func (k *Kind) DisplayName(assetId uint64) string {
	return fmt.Sprintf("%s #%d", k.Name, assetId)
}

// String - the kind code
func (id Type) String() string {
	if k, ok := table[id]; ok {
		return k.Code
	}
	return fmt.Sprintf("kind(%d)", uint64(id))
}

// Registry - lookup of kind metadata
type Registry interface {
	Get(Type) (*Kind, error)
}

type compiled struct{}

// Compiled - the registry of the compiled-in kind table
var Compiled Registry = compiled{}

func (compiled) Get(id Type) (*Kind, error) {
	return Get(id)
}
