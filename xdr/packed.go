// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/hex"
)

// Packed - packed records are just a byte slice
type Packed []byte

// String - convert a packed record to hex string for use by the fmt package (for %s)
func (p Packed) String() string {
	return hex.EncodeToString(p)
}

// GoString - convert a packed record to hex string for use by the fmt package (for %#v)
func (p Packed) GoString() string {
	return "<packed:" + hex.EncodeToString(p) + ">"
}

// MarshalText - convert a packed record to hex text
func (p Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(p))
	b := make([]byte, size)
	hex.Encode(b, p)
	return b, nil
}

// UnmarshalText - convert hex text into a packed record
func (p *Packed) UnmarshalText(s []byte) error {
	data := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(data, s)
	if nil != err {
		return err
	}
	*p = data[:byteCount]
	return nil
}
