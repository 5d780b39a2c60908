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

// AssetType - discriminant for the asset union
type AssetType uint32

// all asset variants
const (
	AssetTypeNative AssetType = iota
	AssetTypeCreditAlphanum4
	AssetTypeCreditAlphanum12
)

// Asset - what is being paid: the chain's native unit or an
// issuer-backed credit with a short or long code
type Asset interface {
	AssetType() AssetType
	packPayload(buffer xdr.Packed) (xdr.Packed, error)
}

// AssetNative - the chain's native unit; no payload
type AssetNative struct{}

// AssetAlphanum4 - credit with a code of up to four characters
type AssetAlphanum4 struct {
	Code   [4]byte
	Issuer *account.Account
}

// AssetAlphanum12 - credit with a code of up to twelve characters
type AssetAlphanum12 struct {
	Code   [12]byte
	Issuer *account.Account
}

func (AssetNative) AssetType() AssetType     { return AssetTypeNative }
func (AssetAlphanum4) AssetType() AssetType  { return AssetTypeCreditAlphanum4 }
func (AssetAlphanum12) AssetType() AssetType { return AssetTypeCreditAlphanum12 }

func (AssetNative) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return buffer, nil
}

func (a AssetAlphanum4) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendFixedBytes(buffer, a.Code[:])
	return PackAccount(buffer, a.Issuer)
}

func (a AssetAlphanum12) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendFixedBytes(buffer, a.Code[:])
	return PackAccount(buffer, a.Issuer)
}

// PackAsset - append the discriminant then the active variant's payload
func PackAsset(buffer xdr.Packed, asset Asset) (xdr.Packed, error) {
	if nil == asset {
		asset = AssetNative{}
	}
	buffer = xdr.AppendUint32(buffer, uint32(asset.AssetType()))
	return asset.packPayload(buffer)
}

func decodeAsset(d *xdr.Decoder, testnet bool) (Asset, error) {
	discriminant, err := d.Uint32()
	if nil != err {
		return nil, err
	}

	switch AssetType(discriminant) {
	case AssetTypeNative:
		return AssetNative{}, nil

	case AssetTypeCreditAlphanum4:
		a := AssetAlphanum4{}
		code, err := d.FixedBytes(len(a.Code))
		if nil != err {
			return nil, err
		}
		copy(a.Code[:], code)
		a.Issuer, err = decodeAccount(d, testnet)
		if nil != err {
			return nil, err
		}
		return a, nil

	case AssetTypeCreditAlphanum12:
		a := AssetAlphanum12{}
		code, err := d.FixedBytes(len(a.Code))
		if nil != err {
			return nil, err
		}
		copy(a.Code[:], code)
		a.Issuer, err = decodeAccount(d, testnet)
		if nil != err {
			return nil, err
		}
		return a, nil

	default:
		return nil, fault.ErrInvalidDiscriminant
	}
}
