// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Astrum  = "astrum"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Astrum, Testing, Local:
		return true
	default:
		return false
	}
}
