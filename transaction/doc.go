// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - build and sign ledger transactions
//
// A Builder collects operations against a SourceAccount and produces
// an immutable Transaction; the source's sequence number is consumed
// only when the build succeeds.  Signatures are appended afterwards,
// each one covering the hash of the signature base:
//
//	network identity ‖ envelope type tag ‖ packed transaction
//
// so a signature made for one network can never validate on another.
// A signed transaction projects to a wire.TransactionEnvelope for
// transmission.
package transaction
