// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"golang.org/x/crypto/ed25519"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// account identity on the wire: a key algorithm discriminant
// followed by the fixed length raw public key
//
// the test/live flag is not part of the wire form; it is scoped by
// the network identity in the signature base, so decode is told
// which network the bytes came from

// PackAccount - append the wire form of an account identity
func PackAccount(buffer xdr.Packed, acc *account.Account) (xdr.Packed, error) {
	if nil == acc || nil == acc.AccountInterface {
		return nil, fault.ErrInvalidSourceAccount
	}
	publicKey := acc.PublicKeyBytes()
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	buffer = xdr.AppendUint32(buffer, uint32(acc.KeyType()))
	return xdr.AppendFixedBytes(buffer, publicKey), nil
}

func decodeAccount(d *xdr.Decoder, testnet bool) (*account.Account, error) {
	algorithm, err := d.Uint32()
	if nil != err {
		return nil, err
	}
	switch algorithm {
	case account.ED25519:
		publicKey, err := d.FixedBytes(ed25519.PublicKeySize)
		if nil != err {
			return nil, err
		}
		return &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      testnet,
				PublicKey: publicKey,
			},
		}, nil
	default:
		return nil, fault.ErrInvalidDiscriminant
	}
}
