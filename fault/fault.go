// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ConfigurationError GenericError
	InvalidError       GenericError
	LengthError        GenericError
	NotFoundError      GenericError
	ProcessError       GenericError
	RecordError        GenericError
	UsageError         GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrCannotDecodeAccount    = RecordError("cannot decode account")
	ErrCannotDecodeSeed       = RecordError("cannot decode seed")
	ErrChecksumMismatch       = ProcessError("checksum mismatch")
	ErrExcessDataAfterRecord  = RecordError("excess data after record")
	ErrIdentityNameNotFound   = NotFoundError("identity name not found")
	ErrInvalidBase64          = RecordError("invalid base64 data")
	ErrInvalidBoolean         = RecordError("invalid boolean value")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCount           = RecordError("invalid count")
	ErrInvalidDiscriminant    = RecordError("invalid union discriminant")
	ErrInvalidFixedLength     = RecordError("invalid fixed field length")
	ErrInvalidKeyLength       = InvalidError("key length is invalid")
	ErrInvalidKeyType         = InvalidError("key type is invalid")
	ErrInvalidPresenceFlag    = RecordError("invalid optional presence flag")
	ErrInvalidSeedHeader      = InvalidError("invalid seed header")
	ErrInvalidSeedLength      = InvalidError("invalid seed length")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidSourceAccount   = InvalidError("invalid source account")
	ErrLengthExceedsMaximum   = RecordError("length exceeds maximum")
	ErrMemoAlreadySet         = UsageError("memo has already been set")
	ErrMemoTextTooLong        = LengthError("memo text is too long")
	ErrNoNetworkSelected      = ConfigurationError("no network selected")
	ErrNoOperations           = UsageError("at least one operation is required")
	ErrNoPrivateKey           = NotFoundError("identity has no private key")
	ErrNonZeroPadding         = RecordError("non-zero padding")
	ErrNotEnoughSignatures    = UsageError("transaction must be signed by at least one signer")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotPublicKey           = RecordError("not a public key")
	ErrSignatureTooLong       = LengthError("signature is too long")
	ErrTimeBoundsAlreadySet   = UsageError("time bounds have already been set")
	ErrTooManyOperations      = LengthError("too many operations")
	ErrTooManySignatures      = LengthError("too many signatures")
	ErrTooManyValues          = LengthError("too many values")
	ErrTruncatedBuffer        = RecordError("truncated buffer")
	ErrValueTooLong           = LengthError("value is too long")
	ErrWrongAccountForSeed    = InvalidError("seed does not match the account")
	ErrWrongNetworkForAccount = InvalidError("account is for a different network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e UsageError) Error() string         { return string(e) }

// determine the class of an error
func IsErrConfiguration(e error) bool { _, ok := e.(ConfigurationError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrUsage(e error) bool         { _, ok := e.(UsageError); return ok }
