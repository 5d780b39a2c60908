// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/util"
)

// PrivateKey - base type for private keys
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - interface type for private key methods
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	Sign(message []byte) Signature
	PrivateKeyBytes() []byte
	Bytes() []byte
	String() string
	IsTesting() bool
	MarshalText() ([]byte, error)
}

// ED25519PrivateKey - for ed25519 keys
type ED25519PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// seed parameters
var (
	seedHeader       = []byte{0xa5, 0x7e, 0x01}
	seedHeaderLength = len(seedHeader)
)

const (
	seedPrefixLength   = 1
	seedKeyLength      = 32
	seedChecksumLength = 4
)

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	seedCore := make([]byte, seedKeyLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if seedKeyLength != n {
		panic("too few random bytes")
	}
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := append([]byte{}, seedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return util.ToBase58(packedSeed), nil
}

// PrivateKeyFromBase58Seed - this converts a Base58 encoded seed string and returns a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.ErrCannotDecodeSeed
	}

	keyLength := len(seed) - seedHeaderLength - seedChecksumLength
	if seedKeyLength+seedPrefixLength != keyLength {
		return nil, fault.ErrInvalidSeedLength
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	checksumStart := len(seed) - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	// first byte of prefix is test/live indication
	isTest := seed[seedHeaderLength] == 0x01

	secretKey := seed[seedHeaderLength+seedPrefixLength : checksumStart]
	priv := ed25519.NewKeyFromSeed(secretKey)

	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       isTest,
			PrivateKey: priv,
		},
	}
	return privateKey, nil
}

// PrivateKeyFromBytes - decode a one byte key variant followed by the raw private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	if 0 == len(privateKeyBytes) {
		return nil, fault.ErrInvalidKeyLength
	}

	keyVariant := privateKeyBytes[0]
	keyAlgorithm := int(keyVariant >> algorithmShift)
	if keyAlgorithm < 0 || keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}
	isTest := 0 != keyVariant&testKeyCode

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PrivateKeySize != len(privateKeyBytes)-1 {
			return nil, fault.ErrInvalidKeyLength
		}
		priv := make([]byte, ed25519.PrivateKeySize)
		copy(priv, privateKeyBytes[1:])
		privateKey := &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				Test:       isTest,
				PrivateKey: priv,
			},
		}
		return privateKey, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// UnmarshalText - convert base58 text into a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	decoded := util.FromBase58(string(s))
	if 0 == len(decoded) {
		return fault.ErrCannotDecodeAccount
	}
	k, err := PrivateKeyFromBytes(decoded)
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = k.PrivateKeyInterface
	return nil
}

// ED25519
// -------

// IsTesting - return whether the private key is in test mode or not
func (privateKey *ED25519PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration above)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// Account - the public account corresponding to this key
func (privateKey *ED25519PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: publicKey,
		},
	}
}

// Sign - produce a detached signature over a message
func (privateKey *ED25519PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.PrivateKey, message))
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Bytes - byte slice for encoded key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey[:]...)
}

// String - base58 encoding of encoded key
func (privateKey *ED25519PrivateKey) String() string {
	return util.ToBase58(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
