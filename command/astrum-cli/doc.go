// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command-line access to the transaction pipeline
//
// Keys and identities come from a Lua configuration file; the chain
// named there selects the network identity mixed into every
// signature.  Output is JSON so results can feed other tools.
package main
