// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"sync"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/wire"
)

// BaseFee - fee units charged per operation
const BaseFee = 100

// SourceAccount - an account together with its sequence number
//
// the sequence number is owned here so that several builders can
// share one source without producing duplicate sequence numbers
type SourceAccount struct {
	sync.Mutex
	account        *account.Account
	sequenceNumber uint64
}

// NewSourceAccount - wrap an account with its last used sequence number
func NewSourceAccount(acc *account.Account, sequenceNumber uint64) *SourceAccount {
	return &SourceAccount{
		account:        acc,
		sequenceNumber: sequenceNumber,
	}
}

// Account - the underlying account
func (source *SourceAccount) Account() *account.Account {
	return source.account
}

// SequenceNumber - the last consumed sequence number
func (source *SourceAccount) SequenceNumber() uint64 {
	source.Lock()
	defer source.Unlock()
	return source.sequenceNumber
}

// consume the next sequence number
func (source *SourceAccount) nextSequenceNumber() uint64 {
	source.Lock()
	defer source.Unlock()
	source.sequenceNumber += 1
	return source.sequenceNumber
}

// Builder - accumulates the parts of a transaction
//
// a builder is single use: Build consumes a sequence number from the
// source and returns the finished transaction
type Builder struct {
	source     *SourceAccount
	operations []wire.Operation
	memo       wire.Memo
	timeBounds *wire.TimeBounds
}

// NewBuilder - start a transaction for a source account
func NewBuilder(source *SourceAccount) *Builder {
	return &Builder{
		source: source,
	}
}

// AddOperation - append one operation
func (b *Builder) AddOperation(op wire.Operation) error {
	if len(b.operations) >= wire.OperationsMaxCount {
		return fault.ErrTooManyOperations
	}
	b.operations = append(b.operations, op)
	return nil
}

// SetMemo - attach the memo, at most once
func (b *Builder) SetMemo(memo wire.Memo) error {
	if nil != b.memo {
		return fault.ErrMemoAlreadySet
	}
	if nil == memo {
		memo = wire.MemoNone{}
	}
	b.memo = memo
	return nil
}

// SetTimeBounds - attach the validity window, at most once
func (b *Builder) SetTimeBounds(minTime uint64, maxTime uint64) error {
	if nil != b.timeBounds {
		return fault.ErrTimeBoundsAlreadySet
	}
	b.timeBounds = &wire.TimeBounds{
		MinTime: minTime,
		MaxTime: maxTime,
	}
	return nil
}

// Build - produce the transaction
//
// the fee is operations × BaseFee and the source sequence number is
// incremented, but only after all checks have passed
func (b *Builder) Build() (*Transaction, error) {
	if 0 == len(b.operations) {
		return nil, fault.ErrNoOperations
	}

	memo := b.memo
	if nil == memo {
		memo = wire.MemoNone{}
	}

	operations := make([]wire.Operation, len(b.operations))
	copy(operations, b.operations)

	return &Transaction{
		source:         b.source.Account(),
		sequenceNumber: b.source.nextSequenceNumber(),
		fee:            uint32(len(operations)) * BaseFee,
		memo:           memo,
		timeBounds:     b.timeBounds,
		operations:     operations,
	}, nil
}
