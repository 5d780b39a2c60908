// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/network"
	"github.com/astrum-ledger/astrum-sdk/transaction"
	"github.com/astrum-ledger/astrum-sdk/wire"
)

type paymentResult struct {
	SequenceNumber uint64 `json:"sequence_number,string"`
	Fee            uint32 `json:"fee"`
	Hash           string `json:"hash"`
	Envelope       string `json:"envelope"`
}

func runPayment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Int64("amount")
	if amount <= 0 {
		return fmt.Errorf("amount: %d must be greater than zero", amount)
	}

	receiver, err := resolveAccount(m, c.String("receiver"))
	if nil != err {
		return err
	}
	if receiver.IsTesting() != network.IsTesting() {
		return fault.ErrWrongNetworkForAccount
	}

	privateKey, err := m.config.PrivateKey(m.identity)
	if nil != err {
		return err
	}

	source := transaction.NewSourceAccount(privateKey.Account(), c.Uint64("sequence"))
	builder := transaction.NewBuilder(source)

	err = builder.AddOperation(wire.Operation{
		Body: wire.Payment{
			Destination: receiver,
			Asset:       wire.AssetNative{},
			Amount:      amount,
		},
	})
	if nil != err {
		return err
	}

	if memo := c.String("memo"); "" != memo {
		if err := builder.SetMemo(wire.MemoText{Text: memo}); nil != err {
			return err
		}
	}

	maxTime := c.Uint64("max-time")
	if 0 != maxTime {
		if err := builder.SetTimeBounds(c.Uint64("min-time"), maxTime); nil != err {
			return err
		}
	}

	tx, err := builder.Build()
	if nil != err {
		return err
	}

	if err := tx.Sign(privateKey); nil != err {
		return err
	}

	hash, err := tx.Hash()
	if nil != err {
		return err
	}
	envelope, err := tx.ToEnvelopeBase64()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "source: %s\n", privateKey.Account())
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	result := paymentResult{
		SequenceNumber: tx.SequenceNumber(),
		Fee:            tx.Fee(),
		Hash:           hash.String(),
		Envelope:       envelope,
	}

	printJson(m.w, result)
	return nil
}

// a receiver is either an identity name from the configuration or a
// base58 account
func resolveAccount(m *metadata, name string) (*account.Account, error) {
	if "" == name {
		return nil, fmt.Errorf("receiver is required")
	}
	acc, err := m.config.Account(name)
	if fault.ErrIdentityNameNotFound == err {
		return account.AccountFromBase58(name)
	}
	return acc, err
}
