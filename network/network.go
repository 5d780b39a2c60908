// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - selection of the network whose identity is mixed
// into every signature base
//
// The selection is process wide and must be established before any
// signing operation.  Callers are expected to initialise once at
// startup; the identity is read-only afterwards.
package network

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/astrum-ledger/astrum-sdk/chain"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/bitmark-inc/logger"
)

// IDLength - bytes in a network identity
const IDLength = 32

// passphrases hashed into the per-chain network identity
var passphrases = map[string]string{
	chain.Astrum:  "astrum mainnet ; march 2021",
	chain.Testing: "astrum testnet ; march 2021",
	chain.Local:   "astrum standalone network ; arbitrary",
}

var globalData struct {
	sync.RWMutex
	log     *logger.L
	id      [IDLength]byte
	testing bool
	chain   string

	// set once during initialise
	initialised bool
}

// Initialise - select the network
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("network")
	globalData.log.Info("starting…")

	passphrase, ok := passphrases[chainName]
	if !ok {
		globalData.log.Criticalf("no identity for chain: '%s'", chainName)
		return fault.ErrInvalidChain
	}

	globalData.chain = chainName
	globalData.testing = chainName != chain.Astrum
	globalData.id = sha3.Sum256([]byte(passphrase))

	// all data initialised
	globalData.initialised = true

	globalData.log.Infof("selected chain: %s", chainName)
	return nil
}

// Finalise - deselect the network
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	globalData.id = [IDLength]byte{}
	globalData.chain = ""
	globalData.testing = false

	return nil
}

// ID - hash identifying the selected network
//
// fails before any buffer is touched if no network is selected
func ID() ([IDLength]byte, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return [IDLength]byte{}, fault.ErrNoNetworkSelected
	}
	return globalData.id, nil
}

// IsTesting - whether a non-live chain is selected
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}
