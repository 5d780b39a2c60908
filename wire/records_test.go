// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"testing"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/wire"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// fixed test keys so expected byte arrays stay stable
var (
	ownerOnePublicKey = []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	}
	ownerTwoPublicKey = []byte{
		0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
		0x88, 0x89, 0x8a, 0x8b, 0x8c, 0x8d, 0x8e, 0x8f,
		0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97,
		0x98, 0x99, 0x9a, 0x9b, 0x9c, 0x9d, 0x9e, 0x9f,
	}
)

func makeAccount(publicKey []byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// wire form of an account used by the expected arrays below:
// algorithm discriminant zero then the raw key
func accountBytes(publicKey []byte) []byte {
	return append([]byte{0x00, 0x00, 0x00, 0x00}, publicKey...)
}

// each memo variant must encode to its exact wire form and decode
// back to the same variant
func TestPackMemo(t *testing.T) {
	hash := wire.Hash{}
	for i := 0; i < len(hash); i += 1 {
		hash[i] = byte(0x40 + i)
	}

	items := []struct {
		memo     wire.Memo
		expected []byte
	}{
		{
			memo:     wire.MemoNone{},
			expected: []byte{0x00, 0x00, 0x00, 0x00},
		},
		{
			memo: wire.MemoText{Text: "hello"},
			expected: []byte{
				0x00, 0x00, 0x00, 0x01,
				0x00, 0x00, 0x00, 0x05,
				'h', 'e', 'l', 'l', 'o', 0x00, 0x00, 0x00,
			},
		},
		{
			memo: wire.MemoID{ID: 257},
			expected: []byte{
				0x00, 0x00, 0x00, 0x02,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
			},
		},
		{
			memo:     wire.MemoHash{Hash: hash},
			expected: append([]byte{0x00, 0x00, 0x00, 0x03}, hash[:]...),
		},
		{
			memo:     wire.MemoReturn{Hash: hash},
			expected: append([]byte{0x00, 0x00, 0x00, 0x04}, hash[:]...),
		},
	}

	for i, item := range items {
		packed, err := wire.PackMemo(xdr.Packed{}, item.memo)
		if nil != err {
			t.Errorf("%d: pack error: %s", i, err)
			continue
		}
		if !bytes.Equal(packed, item.expected) {
			t.Errorf("%d: packed: %x  expected: %x", i, []byte(packed), item.expected)
			continue
		}

		memo, err := wire.DecodeMemo(packed)
		if nil != err {
			t.Errorf("%d: decode error: %s", i, err)
			continue
		}
		if memo.MemoType() != item.memo.MemoType() {
			t.Errorf("%d: decoded type: %d  expected: %d", i, memo.MemoType(), item.memo.MemoType())
		}
	}
}

// a memo with an unknown discriminant must fail to decode
func TestMemoBadDiscriminant(t *testing.T) {
	packed := xdr.AppendUint32(xdr.Packed{}, 5)
	_, err := wire.DecodeMemo(packed)
	if fault.ErrInvalidDiscriminant != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrInvalidDiscriminant)
	}
}

// memo text over the declared maximum must fail to encode
func TestMemoTextTooLong(t *testing.T) {
	memo := wire.MemoText{Text: "this memo text is way past the twenty-eight byte limit"}
	_, err := wire.PackMemo(xdr.Packed{}, memo)
	if fault.ErrMemoTextTooLong != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrMemoTextTooLong)
	}
}

// payment operation: optional source absent, nested asset union
func TestPackPaymentOperation(t *testing.T) {
	op := wire.Operation{
		Body: wire.Payment{
			Destination: makeAccount(ownerTwoPublicKey),
			Asset:       wire.AssetNative{},
			Amount:      1000,
		},
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, // no source account
		0x00, 0x00, 0x00, 0x01, // payment
	}
	expected = append(expected, accountBytes(ownerTwoPublicKey)...)
	expected = append(expected,
		0x00, 0x00, 0x00, 0x00, // native asset
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8, // amount
	)

	packed, err := op.Pack(xdr.Packed{})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("packed: %x  expected: %x", []byte(packed), expected)
	}

	unpacked, err := wire.DecodeOperation(packed, true)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if nil != unpacked.SourceAccount {
		t.Error("unexpected source account")
	}
	payment, ok := unpacked.Body.(wire.Payment)
	if !ok {
		t.Fatalf("did not decode to Payment: %T", unpacked.Body)
	}
	if 1000 != payment.Amount {
		t.Errorf("amount: %d  expected: 1000", payment.Amount)
	}
	if !bytes.Equal(payment.Destination.PublicKeyBytes(), ownerTwoPublicKey) {
		t.Errorf("destination: %x", payment.Destination.PublicKeyBytes())
	}
	if _, ok := payment.Asset.(wire.AssetNative); !ok {
		t.Errorf("asset: %T  expected: AssetNative", payment.Asset)
	}
}

// create-account operation with an overriding source account
func TestPackCreateAccountOperation(t *testing.T) {
	op := wire.Operation{
		SourceAccount: makeAccount(ownerOnePublicKey),
		Body: wire.CreateAccount{
			Destination:     makeAccount(ownerTwoPublicKey),
			StartingBalance: 5000000,
		},
	}

	expected := []byte{0x00, 0x00, 0x00, 0x01} // source account present
	expected = append(expected, accountBytes(ownerOnePublicKey)...)
	expected = append(expected, 0x00, 0x00, 0x00, 0x00) // create account
	expected = append(expected, accountBytes(ownerTwoPublicKey)...)
	expected = append(expected, 0x00, 0x00, 0x00, 0x00, 0x00, 0x4c, 0x4b, 0x40)

	packed, err := op.Pack(xdr.Packed{})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("packed: %x  expected: %x", []byte(packed), expected)
	}

	unpacked, err := wire.DecodeOperation(packed, true)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if nil == unpacked.SourceAccount {
		t.Fatal("missing source account")
	}
	body, ok := unpacked.Body.(wire.CreateAccount)
	if !ok {
		t.Fatalf("did not decode to CreateAccount: %T", unpacked.Body)
	}
	if 5000000 != body.StartingBalance {
		t.Errorf("starting balance: %d", body.StartingBalance)
	}
}

// an operation with an unknown discriminant must fail to decode
func TestOperationBadDiscriminant(t *testing.T) {
	packed := xdr.AppendFlag(xdr.Packed{}, false)
	packed = xdr.AppendUint32(packed, 99)
	_, err := wire.DecodeOperation(packed, true)
	if fault.ErrInvalidDiscriminant != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrInvalidDiscriminant)
	}
}

// issued asset codes round trip through the union
func TestPackAsset(t *testing.T) {
	issuer := makeAccount(ownerOnePublicKey)

	a4 := wire.AssetAlphanum4{Issuer: issuer}
	copy(a4.Code[:], "USD\x00")

	packed, err := wire.PackAsset(xdr.Packed{}, a4)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	expected := []byte{0x00, 0x00, 0x00, 0x01, 'U', 'S', 'D', 0x00}
	expected = append(expected, accountBytes(ownerOnePublicKey)...)
	if !bytes.Equal(packed, expected) {
		t.Fatalf("packed: %x  expected: %x", []byte(packed), expected)
	}

	// a corrupted asset discriminant must be rejected
	op := wire.Operation{
		Body: wire.Payment{
			Destination: makeAccount(ownerTwoPublicKey),
			Asset:       a4,
			Amount:      1,
		},
	}
	opPacked, err := op.Pack(xdr.Packed{})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	// last byte of the asset discriminant follows flag, type and destination
	opPacked[8+len(accountBytes(ownerTwoPublicKey))+3] = 0x07
	_, err = wire.DecodeOperation(opPacked, true)
	if fault.ErrInvalidDiscriminant != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrInvalidDiscriminant)
	}
}
