// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/network"
	"github.com/astrum-ledger/astrum-sdk/wire"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// Transaction - a built transaction accumulating signatures
//
// the core fields never change after Build; only the signature list
// grows, so the signature base is the same for every signer no
// matter how many have already signed
type Transaction struct {
	source         *account.Account
	sequenceNumber uint64
	fee            uint32
	memo           wire.Memo
	timeBounds     *wire.TimeBounds
	operations     []wire.Operation
	ext            uint32

	mu         sync.Mutex // guards signatures
	signatures []wire.DecoratedSignature
}

// FromEnvelope - reconstruct a transaction from its wire envelope
//
// the extension discriminant is carried over so that projecting back
// to the wire reproduces the original bytes
func FromEnvelope(env *wire.TransactionEnvelope) *Transaction {
	signatures := make([]wire.DecoratedSignature, len(env.Signatures))
	copy(signatures, env.Signatures)

	operations := make([]wire.Operation, len(env.Tx.Operations))
	copy(operations, env.Tx.Operations)

	return &Transaction{
		source:         env.Tx.SourceAccount,
		sequenceNumber: env.Tx.SequenceNumber,
		fee:            env.Tx.Fee,
		memo:           env.Tx.Memo,
		timeBounds:     env.Tx.TimeBounds,
		operations:     operations,
		ext:            env.Tx.Ext,
		signatures:     signatures,
	}
}

// ToWire - project the core fields to their wire form
func (tx *Transaction) ToWire() wire.Transaction {
	operations := make([]wire.Operation, len(tx.operations))
	copy(operations, tx.operations)

	return wire.Transaction{
		Fee:            tx.fee,
		SequenceNumber: tx.sequenceNumber,
		SourceAccount:  tx.source,
		Operations:     operations,
		Memo:           tx.memo,
		TimeBounds:     tx.timeBounds,
		Ext:            tx.ext,
	}
}

// SignatureBase - the bytes every signature covers
//
// network identity first, so the absence of a selected network fails
// the operation before any transaction byte is written
func (tx *Transaction) SignatureBase() (xdr.Packed, error) {
	id, err := network.ID()
	if nil != err {
		return nil, err
	}

	buffer := xdr.AppendFixedBytes(xdr.Packed{}, id[:])
	buffer = xdr.AppendUint32(buffer, uint32(wire.EnvelopeTypeTx))

	w := tx.ToWire()
	return w.Pack(buffer)
}

// Hash - hash of the signature base
func (tx *Transaction) Hash() (wire.Hash, error) {
	base, err := tx.SignatureBase()
	if nil != err {
		return wire.Hash{}, err
	}
	return wire.Hash(sha3.Sum256(base)), nil
}

// Sign - sign the transaction hash and append the decorated signature
//
// the hint is taken from the signer's public key so a validator can
// narrow down which signer produced which signature
func (tx *Transaction) Sign(privateKey *account.PrivateKey) error {
	hash, err := tx.Hash()
	if nil != err {
		return err
	}
	if privateKey.IsTesting() != network.IsTesting() {
		return fault.ErrWrongNetworkForAccount
	}

	signature := privateKey.Sign(hash[:])
	hint := privateKey.Account().SignatureHint()

	tx.appendSignature(wire.DecoratedSignature{
		Hint:      wire.SignatureHint(hint),
		Signature: signature,
	})
	return nil
}

// SignForPreimage - authorise with a hash lock preimage
//
// the signature bytes are the preimage itself; the hint is the last
// four bytes of the hash of the hash of the preimage, matching what a
// validator holding only the lock hash can compute
func (tx *Transaction) SignForPreimage(preimage []byte) error {
	if len(preimage) > wire.SignatureMaxLength {
		return fault.ErrSignatureTooLong
	}

	inner := sha3.Sum256(preimage)
	outer := sha3.Sum256(inner[:])

	var hint wire.SignatureHint
	copy(hint[:], outer[len(outer)-account.HintLength:])

	tx.appendSignature(wire.DecoratedSignature{
		Hint:      hint,
		Signature: append(account.Signature{}, preimage...),
	})
	return nil
}

func (tx *Transaction) appendSignature(ds wire.DecoratedSignature) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.signatures = append(tx.signatures, ds)
}

// ToEnvelope - project to the wire envelope
//
// at least one signature must be attached; signature order is
// preserved
func (tx *Transaction) ToEnvelope() (*wire.TransactionEnvelope, error) {
	signatures := tx.Signatures()
	if 0 == len(signatures) {
		return nil, fault.ErrNotEnoughSignatures
	}
	return &wire.TransactionEnvelope{
		Tx:         tx.ToWire(),
		Signatures: signatures,
	}, nil
}

// ToEnvelopeBase64 - envelope in its textual transport form
func (tx *Transaction) ToEnvelopeBase64() (string, error) {
	env, err := tx.ToEnvelope()
	if nil != err {
		return "", err
	}
	return env.Base64()
}

// SourceAccount - the account paying for and sequencing the transaction
func (tx *Transaction) SourceAccount() *account.Account {
	return tx.source
}

// SequenceNumber - the consumed sequence number
func (tx *Transaction) SequenceNumber() uint64 {
	return tx.sequenceNumber
}

// Fee - total fee in fee units
func (tx *Transaction) Fee() uint32 {
	return tx.fee
}

// Memo - the attached memo
func (tx *Transaction) Memo() wire.Memo {
	return tx.memo
}

// TimeBounds - the validity window, nil when unbounded
func (tx *Transaction) TimeBounds() *wire.TimeBounds {
	return tx.timeBounds
}

// Operations - copy of the operation list
func (tx *Transaction) Operations() []wire.Operation {
	operations := make([]wire.Operation, len(tx.operations))
	copy(operations, tx.operations)
	return operations
}

// Signatures - copy of the signatures attached so far
func (tx *Transaction) Signatures() []wire.DecoratedSignature {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	signatures := make([]wire.DecoratedSignature, len(tx.signatures))
	copy(signatures, tx.signatures)
	return signatures
}
