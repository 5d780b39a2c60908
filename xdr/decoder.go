// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"github.com/astrum-ledger/astrum-sdk/fault"
)

// Decoder - sequential reader over an immutable packed buffer
//
// all reads advance an internal offset; a failed read leaves the
// offset where the failure was detected and the caller must discard
// any partially decoded record
type Decoder struct {
	buffer Packed
	offset int
}

// NewDecoder - create a decoder positioned at the start of a buffer
func NewDecoder(buffer Packed) *Decoder {
	return &Decoder{
		buffer: buffer,
		offset: 0,
	}
}

// Offset - number of bytes consumed so far
func (d *Decoder) Offset() int {
	return d.offset
}

// Remaining - number of bytes not yet consumed
func (d *Decoder) Remaining() int {
	return len(d.buffer) - d.offset
}

// Done - ensure the whole buffer was consumed
func (d *Decoder) Done() error {
	if d.offset != len(d.buffer) {
		return fault.ErrExcessDataAfterRecord
	}
	return nil
}

// take a raw run of n bytes, checking for truncation
func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.offset+n > len(d.buffer) {
		return nil, fault.ErrTruncatedBuffer
	}
	data := d.buffer[d.offset : d.offset+n]
	d.offset += n
	return data, nil
}

// consume and verify the zero padding after length content bytes
func (d *Decoder) pad(length int) error {
	padding, err := d.take(paddingOf(length))
	if nil != err {
		return err
	}
	for _, b := range padding {
		if 0 != b {
			return fault.ErrNonZeroPadding
		}
	}
	return nil
}

// Uint32 - read a big-endian 32 bit unsigned integer
func (d *Decoder) Uint32() (uint32, error) {
	data, err := d.take(UnitSize)
	if nil != err {
		return 0, err
	}
	value := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	return value, nil
}

// Int32 - read a big-endian 32 bit signed integer
func (d *Decoder) Int32() (int32, error) {
	value, err := d.Uint32()
	return int32(value), err
}

// Uint64 - read a big-endian 64 bit unsigned integer
func (d *Decoder) Uint64() (uint64, error) {
	high, err := d.Uint32()
	if nil != err {
		return 0, err
	}
	low, err := d.Uint32()
	if nil != err {
		return 0, err
	}
	return uint64(high)<<32 | uint64(low), nil
}

// Int64 - read a big-endian 64 bit signed integer
func (d *Decoder) Int64() (int64, error) {
	value, err := d.Uint64()
	return int64(value), err
}

// Bool - read a boolean; only 0 and 1 are acceptable
func (d *Decoder) Bool() (bool, error) {
	value, err := d.Uint32()
	if nil != err {
		return false, err
	}
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidBoolean
	}
}

// Flag - read an optional-field presence flag; only 0 and 1 are acceptable
func (d *Decoder) Flag() (bool, error) {
	value, err := d.Uint32()
	if nil != err {
		return false, err
	}
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidPresenceFlag
	}
}

// FixedBytes - read opaque data of a declared fixed length
//
// consumes exactly size plus padding bytes and verifies the padding
// is zero; the returned slice is a copy
func (d *Decoder) FixedBytes(size int) ([]byte, error) {
	content, err := d.take(size)
	if nil != err {
		return nil, err
	}
	err = d.pad(size)
	if nil != err {
		return nil, err
	}
	data := make([]byte, size)
	copy(data, content)
	return data, nil
}

// VarBytes - read variable length opaque data
//
// the count must not exceed the declared maximum for the field
func (d *Decoder) VarBytes(maximum uint32) ([]byte, error) {
	count, err := d.Uint32()
	if nil != err {
		return nil, err
	}
	if count > maximum {
		return nil, fault.ErrLengthExceedsMaximum
	}
	return d.FixedBytes(int(count))
}

// String - read a UTF-8 string under the variable length rule
func (d *Decoder) String(maximum uint32) (string, error) {
	data, err := d.VarBytes(maximum)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// Count - read a sequence length prefix
//
// the count must not exceed the declared maximum number of elements
func (d *Decoder) Count(maximum uint32) (int, error) {
	count, err := d.Uint32()
	if nil != err {
		return 0, err
	}
	if count > maximum {
		return 0, fault.ErrLengthExceedsMaximum
	}
	return int(count), nil
}
