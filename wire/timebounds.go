// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// TimeBounds - validity window as UNIX timestamps
//
// MaxTime of zero means no upper bound
type TimeBounds struct {
	MinTime uint64 `json:"minTime"`
	MaxTime uint64 `json:"maxTime"`
}

// Pack - append the wire form of a validity window
func (tb *TimeBounds) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendUint64(buffer, tb.MinTime)
	return xdr.AppendUint64(buffer, tb.MaxTime), nil
}

func decodeTimeBounds(d *xdr.Decoder) (*TimeBounds, error) {
	tb := &TimeBounds{}
	var err error

	tb.MinTime, err = d.Uint64()
	if nil != err {
		return nil, err
	}
	tb.MaxTime, err = d.Uint64()
	if nil != err {
		return nil, err
	}
	return tb, nil
}
