// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/network"
)

type seedResult struct {
	Seed      string `json:"seed"`
	Account   string `json:"account"`
	PublicKey string `json:"public_key"`
	Testnet   bool   `json:"testnet"`
}

// show the key pair hidden behind a seed
func runSeed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed := c.String("seed")
	if "" == seed {
		id, err := m.config.Identity(m.identity)
		if nil != err {
			return err
		}
		seed = id.Seed
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "chain: %s\n", network.ChainName())
	}

	result := seedResult{
		Seed:      seed,
		Account:   privateKey.Account().String(),
		PublicKey: hex.EncodeToString(privateKey.Account().PublicKeyBytes()),
		Testnet:   privateKey.IsTesting(),
	}

	printJson(m.w, result)
	return nil
}
