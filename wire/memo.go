// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// MemoType - discriminant for the memo union
type MemoType uint32

// all memo variants
const (
	MemoTypeNone MemoType = iota
	MemoTypeText
	MemoTypeID
	MemoTypeHash
	MemoTypeReturn
)

// Memo - attached note union: exactly one variant at a time
type Memo interface {
	MemoType() MemoType
	packPayload(buffer xdr.Packed) (xdr.Packed, error)
}

// MemoNone - no memo
type MemoNone struct{}

// MemoText - short UTF-8 note
type MemoText struct {
	Text string `json:"text"`
}

// MemoID - numeric identifier, e.g. a customer reference
type MemoID struct {
	ID uint64 `json:"id"`
}

// MemoHash - hash of some external document
type MemoHash struct {
	Hash Hash `json:"hash"`
}

// MemoReturn - hash of the transaction being refunded
type MemoReturn struct {
	Hash Hash `json:"hash"`
}

func (MemoNone) MemoType() MemoType   { return MemoTypeNone }
func (MemoText) MemoType() MemoType   { return MemoTypeText }
func (MemoID) MemoType() MemoType     { return MemoTypeID }
func (MemoHash) MemoType() MemoType   { return MemoTypeHash }
func (MemoReturn) MemoType() MemoType { return MemoTypeReturn }

func (MemoNone) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return buffer, nil
}

func (m MemoText) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	if len(m.Text) > MemoTextMaxLength {
		return nil, fault.ErrMemoTextTooLong
	}
	return xdr.AppendString(buffer, m.Text), nil
}

func (m MemoID) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return xdr.AppendUint64(buffer, m.ID), nil
}

func (m MemoHash) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return packHash(buffer, m.Hash), nil
}

func (m MemoReturn) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return packHash(buffer, m.Hash), nil
}

// PackMemo - append the discriminant then the active variant's payload
func PackMemo(buffer xdr.Packed, memo Memo) (xdr.Packed, error) {
	if nil == memo {
		memo = MemoNone{}
	}
	buffer = xdr.AppendUint32(buffer, uint32(memo.MemoType()))
	return memo.packPayload(buffer)
}

func decodeMemo(d *xdr.Decoder) (Memo, error) {
	discriminant, err := d.Uint32()
	if nil != err {
		return nil, err
	}

	switch MemoType(discriminant) {
	case MemoTypeNone:
		return MemoNone{}, nil

	case MemoTypeText:
		text, err := d.String(MemoTextMaxLength)
		if nil != err {
			return nil, err
		}
		return MemoText{Text: text}, nil

	case MemoTypeID:
		id, err := d.Uint64()
		if nil != err {
			return nil, err
		}
		return MemoID{ID: id}, nil

	case MemoTypeHash:
		h, err := decodeHash(d)
		if nil != err {
			return nil, err
		}
		return MemoHash{Hash: h}, nil

	case MemoTypeReturn:
		h, err := decodeHash(d)
		if nil != err {
			return nil, err
		}
		return MemoReturn{Hash: h}, nil

	default:
		return nil, fault.ErrInvalidDiscriminant
	}
}

// DecodeMemo - decode a stand alone memo, requiring full consumption
func DecodeMemo(buffer xdr.Packed) (Memo, error) {
	d := xdr.NewDecoder(buffer)
	memo, err := decodeMemo(d)
	if nil != err {
		return nil, err
	}
	if err := d.Done(); nil != err {
		return nil, err
	}
	return memo, nil
}
