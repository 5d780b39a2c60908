// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/chain"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/network"
	"github.com/astrum-ledger/astrum-sdk/transaction"
	"github.com/astrum-ledger/astrum-sdk/util"
	"github.com/astrum-ledger/astrum-sdk/wire"
	"github.com/astrum-ledger/astrum-sdk/xdr"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	curPath := os.Getenv("PWD")
	logConfig := logger.Configuration{
		Directory: curPath,
		File:      "transaction.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	if err := network.Initialise(chain.Testing); err != nil {
		panic(fmt.Sprintf("network initialization failed: %s", err))
	}
	rc := m.Run()
	network.Finalise()
	logger.Finalise()
	os.Remove(filepath.Join(curPath, "transaction.log"))
	os.Exit(rc)
}

// deterministic seed so signing output is reproducible
func makeSeed(t *testing.T, test bool, fill byte) string {
	t.Helper()
	packedSeed := []byte{0xa5, 0x7e, 0x01}
	if test {
		packedSeed = append(packedSeed, 0x01)
	} else {
		packedSeed = append(packedSeed, 0x00)
	}
	for i := 0; i < 32; i += 1 {
		packedSeed = append(packedSeed, fill)
	}
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:4]...)
	return util.ToBase58(packedSeed)
}

func makeSigner(t *testing.T, fill byte) *account.PrivateKey {
	t.Helper()
	privateKey, err := account.PrivateKeyFromBase58Seed(makeSeed(t, true, fill))
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	return privateKey
}

func makePaymentOperation(destination *account.Account, amount int64) wire.Operation {
	return wire.Operation{
		Body: wire.Payment{
			Destination: destination,
			Asset:       wire.AssetNative{},
			Amount:      amount,
		},
	}
}

// fee is always operations times the base fee
func TestBuildFee(t *testing.T) {
	signer := makeSigner(t, 0x11)
	destination := makeSigner(t, 0x22).Account()
	source := transaction.NewSourceAccount(signer.Account(), 0)

	for _, n := range []int{1, 3, 7} {
		builder := transaction.NewBuilder(source)
		for i := 0; i < n; i += 1 {
			if err := builder.AddOperation(makePaymentOperation(destination, int64(i+1))); nil != err {
				t.Fatalf("add operation error: %s", err)
			}
		}
		tx, err := builder.Build()
		if nil != err {
			t.Fatalf("build error: %s", err)
		}
		if uint32(n)*transaction.BaseFee != tx.Fee() {
			t.Errorf("fee: %d  expected: %d", tx.Fee(), uint32(n)*transaction.BaseFee)
		}
	}
}

// a build without operations fails and must not consume a sequence number
func TestBuildNoOperations(t *testing.T) {
	signer := makeSigner(t, 0x11)
	source := transaction.NewSourceAccount(signer.Account(), 41)

	_, err := transaction.NewBuilder(source).Build()
	if fault.ErrNoOperations != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNoOperations)
	}
	if 41 != source.SequenceNumber() {
		t.Errorf("sequence number consumed by failed build: %d", source.SequenceNumber())
	}

	builder := transaction.NewBuilder(source)
	if err := builder.AddOperation(makePaymentOperation(signer.Account(), 1)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	if 42 != tx.SequenceNumber() {
		t.Errorf("sequence number: %d  expected: 42", tx.SequenceNumber())
	}
	if 42 != source.SequenceNumber() {
		t.Errorf("source sequence number: %d  expected: 42", source.SequenceNumber())
	}
}

// memo and time bounds are settable at most once
func TestBuildDuplicateParts(t *testing.T) {
	signer := makeSigner(t, 0x11)
	builder := transaction.NewBuilder(transaction.NewSourceAccount(signer.Account(), 0))

	if err := builder.SetMemo(wire.MemoID{ID: 7}); nil != err {
		t.Fatalf("set memo error: %s", err)
	}
	if err := builder.SetMemo(wire.MemoText{Text: "again"}); fault.ErrMemoAlreadySet != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrMemoAlreadySet)
	}

	if err := builder.SetTimeBounds(100, 200); nil != err {
		t.Fatalf("set time bounds error: %s", err)
	}
	if err := builder.SetTimeBounds(300, 400); fault.ErrTimeBoundsAlreadySet != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrTimeBoundsAlreadySet)
	}
}

// the signature base covers network identity, envelope type tag and
// the packed transaction, and is unchanged by prior signatures
func TestSignatureBase(t *testing.T) {
	signer := makeSigner(t, 0x11)
	source := transaction.NewSourceAccount(signer.Account(), 0)
	builder := transaction.NewBuilder(source)
	if err := builder.AddOperation(makePaymentOperation(signer.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	base, err := tx.SignatureBase()
	if nil != err {
		t.Fatalf("signature base error: %s", err)
	}

	id, err := network.ID()
	if nil != err {
		t.Fatalf("network id error: %s", err)
	}
	expected := xdr.AppendFixedBytes(xdr.Packed{}, id[:])
	expected = xdr.AppendUint32(expected, uint32(wire.EnvelopeTypeTx))
	w := tx.ToWire()
	expected, err = w.Pack(expected)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(base, expected) {
		t.Fatalf("base: %x  expected: %x", []byte(base), []byte(expected))
	}

	// signing must not change the base seen by the next signer
	if err := tx.Sign(signer); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	baseAfter, err := tx.SignatureBase()
	if nil != err {
		t.Fatalf("signature base error: %s", err)
	}
	if !bytes.Equal(base, baseAfter) {
		t.Fatal("signature base changed after signing")
	}
}

// no selected network must fail before any transaction byte is written
func TestSignatureBaseNoNetwork(t *testing.T) {
	signer := makeSigner(t, 0x11)
	builder := transaction.NewBuilder(transaction.NewSourceAccount(signer.Account(), 0))
	if err := builder.AddOperation(makePaymentOperation(signer.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	if err := network.Finalise(); nil != err {
		t.Fatalf("finalise error: %s", err)
	}
	defer func() {
		if err := network.Initialise(chain.Testing); nil != err {
			t.Fatalf("initialise error: %s", err)
		}
	}()

	_, err = tx.SignatureBase()
	if fault.ErrNoNetworkSelected != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNoNetworkSelected)
	}
	err = tx.Sign(signer)
	if fault.ErrNoNetworkSelected != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNoNetworkSelected)
	}
}

// each signature must verify against the transaction hash and carry
// the signer's public key hint
func TestSign(t *testing.T) {
	signerOne := makeSigner(t, 0x11)
	signerTwo := makeSigner(t, 0x22)
	source := transaction.NewSourceAccount(signerOne.Account(), 0)
	builder := transaction.NewBuilder(source)
	if err := builder.AddOperation(makePaymentOperation(signerTwo.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	if err := tx.Sign(signerOne); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if err := tx.Sign(signerTwo); nil != err {
		t.Fatalf("sign error: %s", err)
	}

	hash, err := tx.Hash()
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	signatures := tx.Signatures()
	if 2 != len(signatures) {
		t.Fatalf("signatures: %d  expected: 2", len(signatures))
	}
	for i, signer := range []*account.PrivateKey{signerOne, signerTwo} {
		if err := signer.Account().CheckSignature(hash[:], signatures[i].Signature); nil != err {
			t.Errorf("%d: signature check error: %s", i, err)
		}
		expectedHint := signer.Account().SignatureHint()
		if wire.SignatureHint(expectedHint) != signatures[i].Hint {
			t.Errorf("%d: hint: %x  expected: %x", i, signatures[i].Hint, expectedHint)
		}
	}
}

// a live network key must not sign a test network transaction
func TestSignWrongNetwork(t *testing.T) {
	liveSigner, err := account.PrivateKeyFromBase58Seed(makeSeed(t, false, 0x33))
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	testSigner := makeSigner(t, 0x11)

	builder := transaction.NewBuilder(transaction.NewSourceAccount(testSigner.Account(), 0))
	if err := builder.AddOperation(makePaymentOperation(testSigner.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	err = tx.Sign(liveSigner)
	if fault.ErrWrongNetworkForAccount != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrWrongNetworkForAccount)
	}
}

// preimage authorisation: signature bytes are the preimage, hint is
// the tail of the double hash
func TestSignForPreimage(t *testing.T) {
	signer := makeSigner(t, 0x11)
	builder := transaction.NewBuilder(transaction.NewSourceAccount(signer.Account(), 0))
	if err := builder.AddOperation(makePaymentOperation(signer.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	preimage := []byte("open sesame")
	if err := tx.SignForPreimage(preimage); nil != err {
		t.Fatalf("preimage sign error: %s", err)
	}

	signatures := tx.Signatures()
	if 1 != len(signatures) {
		t.Fatalf("signatures: %d  expected: 1", len(signatures))
	}
	if !bytes.Equal(preimage, signatures[0].Signature) {
		t.Errorf("signature: %x  expected the preimage", []byte(signatures[0].Signature))
	}

	inner := sha3.Sum256(preimage)
	outer := sha3.Sum256(inner[:])
	var expectedHint wire.SignatureHint
	copy(expectedHint[:], outer[len(outer)-4:])
	if expectedHint != signatures[0].Hint {
		t.Errorf("hint: %x  expected: %x", signatures[0].Hint, expectedHint)
	}

	// over-length preimages cannot ride in the signature slot
	tooLong := make([]byte, wire.SignatureMaxLength+1)
	err = tx.SignForPreimage(tooLong)
	if fault.ErrSignatureTooLong != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrSignatureTooLong)
	}
}

// an unsigned transaction cannot become an envelope
func TestToEnvelopeUnsigned(t *testing.T) {
	signer := makeSigner(t, 0x11)
	builder := transaction.NewBuilder(transaction.NewSourceAccount(signer.Account(), 0))
	if err := builder.AddOperation(makePaymentOperation(signer.Account(), 5)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	_, err = tx.ToEnvelope()
	if fault.ErrNotEnoughSignatures != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNotEnoughSignatures)
	}
	_, err = tx.ToEnvelopeBase64()
	if fault.ErrNotEnoughSignatures != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNotEnoughSignatures)
	}
}

// full pipeline: build at sequence five, sign once, ship as base64,
// reconstruct on the other side and verify
func TestEndToEnd(t *testing.T) {
	signer := makeSigner(t, 0x11)
	destination := makeSigner(t, 0x22).Account()

	source := transaction.NewSourceAccount(signer.Account(), 4)
	builder := transaction.NewBuilder(source)
	if err := builder.AddOperation(makePaymentOperation(destination, 1000)); nil != err {
		t.Fatalf("add operation error: %s", err)
	}
	tx, err := builder.Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	if 5 != tx.SequenceNumber() {
		t.Fatalf("sequence number: %d  expected: 5", tx.SequenceNumber())
	}
	if transaction.BaseFee != tx.Fee() {
		t.Fatalf("fee: %d  expected: %d", tx.Fee(), transaction.BaseFee)
	}
	if _, ok := tx.Memo().(wire.MemoNone); !ok {
		t.Fatalf("memo: %T  expected: MemoNone", tx.Memo())
	}

	if err := tx.Sign(signer); nil != err {
		t.Fatalf("sign error: %s", err)
	}

	encoded, err := tx.ToEnvelopeBase64()
	if nil != err {
		t.Fatalf("base64 error: %s", err)
	}

	// receiving side
	env, err := wire.EnvelopeFromBase64(encoded, network.IsTesting())
	if nil != err {
		t.Fatalf("envelope decode error: %s", err)
	}
	if 1 != len(env.Signatures) {
		t.Fatalf("signatures: %d  expected: 1", len(env.Signatures))
	}

	received := transaction.FromEnvelope(env)
	if received.SequenceNumber() != tx.SequenceNumber() {
		t.Errorf("sequence number: %d  expected: %d", received.SequenceNumber(), tx.SequenceNumber())
	}

	hash, err := received.Hash()
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	signatures := received.Signatures()
	if err := signer.Account().CheckSignature(hash[:], signatures[0].Signature); nil != err {
		t.Errorf("signature check error: %s", err)
	}
	expectedHint := signer.Account().SignatureHint()
	if wire.SignatureHint(expectedHint) != signatures[0].Hint {
		t.Errorf("hint: %x  expected: %x", signatures[0].Hint, expectedHint)
	}

	// the reconstruction must reproduce the transmitted bytes
	reEncoded, err := received.ToEnvelopeBase64()
	if nil != err {
		t.Fatalf("base64 error: %s", err)
	}
	if encoded != reEncoded {
		t.Fatalf("round trip mismatch:\nsent:     %s\nreceived: %s", encoded, reEncoded)
	}
}
