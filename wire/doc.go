// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - ledger record schemas over the xdr codec
//
// Records pack their fields in declared order with no separators;
// the field order is part of the wire contract.  Discriminated
// unions are sealed interfaces with one concrete struct per variant
// so a value can only ever hold one variant at a time.  Decoding an
// unknown discriminant fails; it is never repaired or defaulted.
//
// Pack appends to a caller supplied buffer and validates declared
// maxima before any byte is appended.  The exported Decode entry
// points require the whole buffer to be consumed.
package wire
