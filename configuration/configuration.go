// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration file for the command line client
//
// The file is a Lua program whose returned table names the chain to
// connect to and the identities available for signing.  An identity
// either carries a seed, making it usable as a signer, or just an
// account for receive-only use.
package configuration

import (
	"path/filepath"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/chain"
	"github.com/astrum-ledger/astrum-sdk/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	Network         string              `gluamapper:"network" json:"network"`
	DefaultIdentity string              `gluamapper:"default_identity" json:"default_identity"`
	Identities      map[string]Identity `gluamapper:"identities" json:"identities"`
}

// Identity - a named signer or receive-only account
type Identity struct {
	Description string `gluamapper:"description" json:"description"`
	Account     string `gluamapper:"account" json:"account"`
	Seed        string `gluamapper:"seed" json:"seed,omitempty"`
}

// Load - read and validate a configuration file
func Load(fileName string) (*Configuration, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	config := &Configuration{}
	err = ParseConfigurationFile(fileName, config)
	if nil != err {
		return nil, err
	}

	if !chain.Valid(config.Network) {
		return nil, fault.ErrInvalidChain
	}

	// every identity must resolve to a decodable account and any
	// seed must derive exactly that account
	for _, id := range config.Identities {
		acc, err := account.AccountFromBase58(id.Account)
		if nil != err {
			return nil, err
		}
		if "" != id.Seed {
			privateKey, err := account.PrivateKeyFromBase58Seed(id.Seed)
			if nil != err {
				return nil, err
			}
			if privateKey.Account().String() != acc.String() {
				return nil, fault.ErrWrongAccountForSeed
			}
		}
	}

	return config, nil
}

// Identity - find the identity for a name, empty name selects the default
func (config *Configuration) Identity(name string) (*Identity, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - find the identity for a name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromBase58(id.Account)
}

// PrivateKey - derive the private key of a named identity
//
// receive-only identities have no seed and cannot sign
func (config *Configuration) PrivateKey(name string) (*account.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	if "" == id.Seed {
		return nil, fault.ErrNoPrivateKey
	}
	return account.PrivateKeyFromBase58Seed(id.Seed)
}
