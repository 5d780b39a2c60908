// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xdr - primitive External Data Representation codec
//
// Every encoded unit occupies a multiple of four bytes on the wire.
// Integers are big-endian.  Opaque data is zero padded up to the next
// four byte boundary and the padding must be zero on decode.
//
// The encode side appends to a byte slice and cannot fail; any length
// limits are checked by the record owning the data before packing.
// The decode side reads from an immutable buffer and fails on
// truncation, bad padding, bad flags and over-length counts.
package xdr
