// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/astrum-ledger/astrum-sdk/network"
	"github.com/astrum-ledger/astrum-sdk/transaction"
	"github.com/astrum-ledger/astrum-sdk/wire"
)

type decodeResult struct {
	Hash     string                    `json:"hash"`
	Envelope *wire.TransactionEnvelope `json:"envelope"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	encoded := c.String("envelope")
	if "" == encoded {
		return fmt.Errorf("envelope is required")
	}

	env, err := wire.EnvelopeFromBase64(encoded, network.IsTesting())
	if nil != err {
		return err
	}

	hash, err := transaction.FromEnvelope(env).Hash()
	if nil != err {
		return err
	}

	result := decodeResult{
		Hash:     hash.String(),
		Envelope: env,
	}

	printJson(m.w, result)
	return nil
}
