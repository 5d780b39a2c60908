// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// HashLength - bytes in a ledger hash
const HashLength = 32

// declared maxima for variable length fields
const (
	MemoTextMaxLength  = 28
	SignatureMaxLength = 64
	ValueMaxLength     = 1024

	OperationsMaxCount = 100
	SignaturesMaxCount = 20
	ScpValuesMaxCount  = 100
)

// EnvelopeType - protocol constant mixed into every signature base
type EnvelopeType uint32

// envelope types
const (
	EnvelopeTypeTx  EnvelopeType = 1
	EnvelopeTypeScp EnvelopeType = 2
)

// Hash - fixed length ledger hash
type Hash [HashLength]byte

// HashFromBytes - copy a byte slice into a hash
func HashFromBytes(data []byte) (Hash, error) {
	var h Hash
	if HashLength != len(data) {
		return h, fault.ErrInvalidFixedLength
	}
	copy(h[:], data)
	return h, nil
}

// String - convert a hash to hex string for use by the fmt package (for %s)
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - convert a hash to hex text
func (h Hash) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(b, h[:])
	return b, nil
}

// UnmarshalText - convert hex text into a hash
func (h *Hash) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if HashLength != byteCount {
		return fault.ErrInvalidFixedLength
	}
	copy(h[:], buffer)
	return nil
}

func packHash(buffer xdr.Packed, h Hash) xdr.Packed {
	return xdr.AppendFixedBytes(buffer, h[:])
}

func decodeHash(d *xdr.Decoder) (Hash, error) {
	data, err := d.FixedBytes(HashLength)
	if nil != err {
		return Hash{}, err
	}
	return HashFromBytes(data)
}

// SignatureHint - short signer lookup fragment
type SignatureHint [account.HintLength]byte

// DecoratedSignature - a hint plus opaque signature bytes
//
// for a key signature the bytes are a real cryptographic signature;
// for hash-lock authorisation they are the revealed preimage itself
type DecoratedSignature struct {
	Hint      SignatureHint     `json:"hint"`
	Signature account.Signature `json:"signature"`
}

// Pack - append the wire form of a decorated signature
func (ds *DecoratedSignature) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if len(ds.Signature) > SignatureMaxLength {
		return nil, fault.ErrSignatureTooLong
	}
	buffer = xdr.AppendFixedBytes(buffer, ds.Hint[:])
	return xdr.AppendVarBytes(buffer, ds.Signature), nil
}

func decodeDecoratedSignature(d *xdr.Decoder) (DecoratedSignature, error) {
	ds := DecoratedSignature{}

	hint, err := d.FixedBytes(account.HintLength)
	if nil != err {
		return ds, err
	}
	copy(ds.Hint[:], hint)

	signature, err := d.VarBytes(SignatureMaxLength)
	if nil != err {
		return ds, err
	}
	ds.Signature = account.Signature(signature)
	return ds, nil
}
