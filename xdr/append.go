// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

// UnitSize - all encoded items occupy a multiple of this many bytes
const UnitSize = 4

// number of zero bytes needed after length content bytes
func paddingOf(length int) int {
	return (UnitSize - length%UnitSize) % UnitSize
}

// AppendUint32 - append a big-endian 32 bit unsigned integer
func AppendUint32(buffer Packed, value uint32) Packed {
	return append(buffer,
		byte(value>>24),
		byte(value>>16),
		byte(value>>8),
		byte(value),
	)
}

// AppendInt32 - append a big-endian 32 bit signed integer
//
// two's complement, same bytes as the unsigned form
func AppendInt32(buffer Packed, value int32) Packed {
	return AppendUint32(buffer, uint32(value))
}

// AppendUint64 - append a big-endian 64 bit unsigned integer
func AppendUint64(buffer Packed, value uint64) Packed {
	buffer = AppendUint32(buffer, uint32(value>>32))
	return AppendUint32(buffer, uint32(value))
}

// AppendInt64 - append a big-endian 64 bit signed integer
func AppendInt64(buffer Packed, value int64) Packed {
	return AppendUint64(buffer, uint64(value))
}

// AppendBool - append a boolean as a 32 bit 0/1 value
func AppendBool(buffer Packed, value bool) Packed {
	if value {
		return AppendUint32(buffer, 1)
	}
	return AppendUint32(buffer, 0)
}

// AppendFlag - append an optional-field presence flag
//
// same wire form as a boolean
func AppendFlag(buffer Packed, present bool) Packed {
	return AppendBool(buffer, present)
}

// AppendFixedBytes - append opaque data of a declared fixed length
//
// the declared length is len(data); only the zero padding up to the
// next four byte boundary is added
func AppendFixedBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, data...)
	for i := paddingOf(len(data)); i > 0; i -= 1 {
		buffer = append(buffer, 0)
	}
	return buffer
}

// AppendVarBytes - append variable length opaque data
//
// a 32 bit count followed by padded content
func AppendVarBytes(buffer Packed, data []byte) Packed {
	buffer = AppendUint32(buffer, uint32(len(data)))
	return AppendFixedBytes(buffer, data)
}

// AppendString - append a UTF-8 string under the variable length rule
func AppendString(buffer Packed, s string) Packed {
	return AppendVarBytes(buffer, []byte(s))
}
