// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// OperationType - discriminant for the operation body union
type OperationType uint32

// all operation variants
const (
	OperationTypeCreateAccount OperationType = iota
	OperationTypePayment
)

// OperationBody - what the operation does: exactly one variant at a time
type OperationBody interface {
	OperationType() OperationType
	packPayload(buffer xdr.Packed) (xdr.Packed, error)
}

// CreateAccount - fund a new account with a starting balance
type CreateAccount struct {
	Destination     *account.Account `json:"destination"`
	StartingBalance int64            `json:"startingBalance,string"`
}

// Payment - move an amount of some asset to a destination account
type Payment struct {
	Destination *account.Account `json:"destination"`
	Asset       Asset            `json:"asset"`
	Amount      int64            `json:"amount,string"`
}

func (CreateAccount) OperationType() OperationType { return OperationTypeCreateAccount }
func (Payment) OperationType() OperationType       { return OperationTypePayment }

func (op CreateAccount) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer, err := PackAccount(buffer, op.Destination)
	if nil != err {
		return nil, err
	}
	return xdr.AppendInt64(buffer, op.StartingBalance), nil
}

func (op Payment) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer, err := PackAccount(buffer, op.Destination)
	if nil != err {
		return nil, err
	}
	buffer, err = PackAsset(buffer, op.Asset)
	if nil != err {
		return nil, err
	}
	return xdr.AppendInt64(buffer, op.Amount), nil
}

// Operation - an optional overriding source account plus the body union
type Operation struct {
	SourceAccount *account.Account `json:"sourceAccount,omitempty"`
	Body          OperationBody    `json:"body"`
}

// Pack - append the wire form of an operation
func (op *Operation) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == op.Body {
		return nil, fault.ErrInvalidDiscriminant
	}

	buffer = xdr.AppendFlag(buffer, nil != op.SourceAccount)
	if nil != op.SourceAccount {
		var err error
		buffer, err = PackAccount(buffer, op.SourceAccount)
		if nil != err {
			return nil, err
		}
	}

	buffer = xdr.AppendUint32(buffer, uint32(op.Body.OperationType()))
	return op.Body.packPayload(buffer)
}

func decodeOperation(d *xdr.Decoder, testnet bool) (Operation, error) {
	op := Operation{}

	present, err := d.Flag()
	if nil != err {
		return op, err
	}
	if present {
		op.SourceAccount, err = decodeAccount(d, testnet)
		if nil != err {
			return op, err
		}
	}

	discriminant, err := d.Uint32()
	if nil != err {
		return op, err
	}

	switch OperationType(discriminant) {
	case OperationTypeCreateAccount:
		body := CreateAccount{}
		body.Destination, err = decodeAccount(d, testnet)
		if nil != err {
			return op, err
		}
		body.StartingBalance, err = d.Int64()
		if nil != err {
			return op, err
		}
		op.Body = body
		return op, nil

	case OperationTypePayment:
		body := Payment{}
		body.Destination, err = decodeAccount(d, testnet)
		if nil != err {
			return op, err
		}
		body.Asset, err = decodeAsset(d, testnet)
		if nil != err {
			return op, err
		}
		body.Amount, err = d.Int64()
		if nil != err {
			return op, err
		}
		op.Body = body
		return op, nil

	default:
		return op, fault.ErrInvalidDiscriminant
	}
}

// DecodeOperation - decode a stand alone operation, requiring full consumption
func DecodeOperation(buffer xdr.Packed, testnet bool) (Operation, error) {
	d := xdr.NewDecoder(buffer)
	op, err := decodeOperation(d, testnet)
	if nil != err {
		return Operation{}, err
	}
	if err := d.Done(); nil != err {
		return Operation{}, err
	}
	return op, nil
}
