// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/base64"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// Transaction - canonical wire form of a transaction
//
// field order is the wire contract: fee, sequence number, source
// account, operations, memo, optional time bounds, extension
//
// Ext is the trailing extension discriminant reserved for future
// protocol versions: always zero when built here, but a nonzero
// value read from a peer is preserved so that re-encoding
// reproduces the original bytes
type Transaction struct {
	Fee            uint32           `json:"fee"`
	SequenceNumber uint64           `json:"sequenceNumber,string"`
	SourceAccount  *account.Account `json:"sourceAccount"`
	Operations     []Operation      `json:"operations"`
	Memo           Memo             `json:"memo"`
	TimeBounds     *TimeBounds      `json:"timeBounds,omitempty"`
	Ext            uint32           `json:"-"`
}

// Pack - append the wire form of a transaction
func (tx *Transaction) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if 0 == len(tx.Operations) {
		return nil, fault.ErrNoOperations
	}
	if len(tx.Operations) > OperationsMaxCount {
		return nil, fault.ErrTooManyOperations
	}

	buffer = xdr.AppendUint32(buffer, tx.Fee)
	buffer = xdr.AppendUint64(buffer, tx.SequenceNumber)

	buffer, err := PackAccount(buffer, tx.SourceAccount)
	if nil != err {
		return nil, err
	}

	buffer = xdr.AppendUint32(buffer, uint32(len(tx.Operations)))
	for i := range tx.Operations {
		buffer, err = tx.Operations[i].Pack(buffer)
		if nil != err {
			return nil, err
		}
	}

	buffer, err = PackMemo(buffer, tx.Memo)
	if nil != err {
		return nil, err
	}

	buffer = xdr.AppendFlag(buffer, nil != tx.TimeBounds)
	if nil != tx.TimeBounds {
		buffer, err = tx.TimeBounds.Pack(buffer)
		if nil != err {
			return nil, err
		}
	}

	return xdr.AppendUint32(buffer, tx.Ext), nil
}

func decodeTransaction(d *xdr.Decoder, testnet bool) (*Transaction, error) {
	tx := &Transaction{}
	var err error

	tx.Fee, err = d.Uint32()
	if nil != err {
		return nil, err
	}
	tx.SequenceNumber, err = d.Uint64()
	if nil != err {
		return nil, err
	}
	tx.SourceAccount, err = decodeAccount(d, testnet)
	if nil != err {
		return nil, err
	}

	count, err := d.Count(OperationsMaxCount)
	if nil != err {
		return nil, err
	}
	if 0 == count {
		return nil, fault.ErrInvalidCount
	}
	tx.Operations = make([]Operation, count)
	for i := 0; i < count; i += 1 {
		tx.Operations[i], err = decodeOperation(d, testnet)
		if nil != err {
			return nil, err
		}
	}

	tx.Memo, err = decodeMemo(d)
	if nil != err {
		return nil, err
	}

	present, err := d.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		tx.TimeBounds, err = decodeTimeBounds(d)
		if nil != err {
			return nil, err
		}
	}

	// forward compatible: nonzero values pass through unchanged
	tx.Ext, err = d.Uint32()
	if nil != err {
		return nil, err
	}

	return tx, nil
}

// DecodeTransaction - decode a stand alone transaction, requiring full consumption
func DecodeTransaction(buffer xdr.Packed, testnet bool) (*Transaction, error) {
	d := xdr.NewDecoder(buffer)
	tx, err := decodeTransaction(d, testnet)
	if nil != err {
		return nil, err
	}
	if err := d.Done(); nil != err {
		return nil, err
	}
	return tx, nil
}

// TransactionEnvelope - a transaction plus its detached signatures
//
// signature order is preserved on the wire but carries no meaning
type TransactionEnvelope struct {
	Tx         Transaction          `json:"tx"`
	Signatures []DecoratedSignature `json:"signatures"`
}

// Pack - append the wire form of an envelope
//
// an envelope is only signable for transmission once it holds at
// least one signature
func (env *TransactionEnvelope) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if 0 == len(env.Signatures) {
		return nil, fault.ErrNotEnoughSignatures
	}
	if len(env.Signatures) > SignaturesMaxCount {
		return nil, fault.ErrTooManySignatures
	}

	buffer, err := env.Tx.Pack(buffer)
	if nil != err {
		return nil, err
	}

	buffer = xdr.AppendUint32(buffer, uint32(len(env.Signatures)))
	for i := range env.Signatures {
		buffer, err = env.Signatures[i].Pack(buffer)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// DecodeEnvelope - decode an envelope, requiring full consumption
func DecodeEnvelope(buffer xdr.Packed, testnet bool) (*TransactionEnvelope, error) {
	d := xdr.NewDecoder(buffer)

	tx, err := decodeTransaction(d, testnet)
	if nil != err {
		return nil, err
	}
	env := &TransactionEnvelope{Tx: *tx}

	count, err := d.Count(SignaturesMaxCount)
	if nil != err {
		return nil, err
	}
	if 0 == count {
		return nil, fault.ErrInvalidCount
	}
	env.Signatures = make([]DecoratedSignature, count)
	for i := 0; i < count; i += 1 {
		env.Signatures[i], err = decodeDecoratedSignature(d)
		if nil != err {
			return nil, err
		}
	}

	if err := d.Done(); nil != err {
		return nil, err
	}
	return env, nil
}

// Base64 - pack and encode for textual transports
func (env *TransactionEnvelope) Base64() (string, error) {
	packed, err := env.Pack(xdr.Packed{})
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(packed), nil
}

// EnvelopeFromBase64 - strict decode of the textual transport form
//
// characters outside the standard alphabet are rejected
func EnvelopeFromBase64(encoded string, testnet bool) (*TransactionEnvelope, error) {
	packed, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if nil != err {
		return nil, fault.ErrInvalidBase64
	}
	return DecodeEnvelope(packed, testnet)
}
