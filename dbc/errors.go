// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"errors"
	"fmt"
)

// ErrTruncated reports that a buffer held fewer bytes than its header's
// declared record/string-block layout requires. NewIOError wraps it at
// every boundary that slices a fixed-size region out of caller-supplied
// data, so a short or maliciously truncated file yields KindIO instead
// of a slice-bounds panic.
var ErrTruncated = errors.New("dbc: truncated table data")

// Kind identifies which member of the error taxonomy an Error carries.
type Kind int

const (
	// KindIO wraps an underlying reader/writer failure, including short reads.
	KindIO Kind = iota
	// KindMagicMismatch means the header's first four bytes were not "WDBC".
	KindMagicMismatch
	// KindInvalidHeader means a schema-derived constant disagreed with the file.
	KindInvalidHeader
	// KindInvalidUTF8 means a string-block byte run was not valid UTF-8.
	KindInvalidUTF8
	// KindCorruptString means a string offset pointed outside the string block.
	KindCorruptString
	// KindInvalidEnum means an enum-typed field held an undeclared discriminant.
	KindInvalidEnum
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindMagicMismatch:
		return "magic mismatch"
	case KindInvalidHeader:
		return "invalid header"
	case KindInvalidUTF8:
		return "invalid utf8"
	case KindCorruptString:
		return "corrupt string"
	case KindInvalidEnum:
		return "invalid enum"
	default:
		return "unknown"
	}
}

// HeaderField names which header count an InvalidHeader error disagreed on.
type HeaderField int

const (
	// HeaderFieldRecordSize is the header's record_size count.
	HeaderFieldRecordSize HeaderField = iota
	// HeaderFieldFieldCount is the header's field_count count.
	HeaderFieldFieldCount
)

func (f HeaderField) String() string {
	if f == HeaderFieldFieldCount {
		return "field_count"
	}
	return "record_size"
}

// Error is the single sum type surfaced at every public read/write
// boundary. Callers branch on Kind, or use errors.As against this type.
type Error struct {
	Kind Kind

	// Populated when Kind == KindInvalidHeader.
	HeaderField HeaderField
	Expected    uint32
	Actual      uint32

	// Populated when Kind == KindInvalidEnum.
	EnumName  string
	EnumValue int64

	// Err is the wrapped cause, populated for KindIO and KindInvalidUTF8.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("dbc: io: %v", e.Err)
	case KindMagicMismatch:
		return "dbc: magic mismatch: expected \"WDBC\""
	case KindInvalidHeader:
		return fmt.Sprintf("dbc: invalid header: %s expected %d, got %d",
			e.HeaderField, e.Expected, e.Actual)
	case KindInvalidUTF8:
		return fmt.Sprintf("dbc: invalid utf8 in string block: %v", e.Err)
	case KindCorruptString:
		return "dbc: corrupt string: offset outside string block or missing terminator"
	case KindInvalidEnum:
		return fmt.Sprintf("dbc: invalid enum %s: value %d has no matching variant", e.EnumName, e.EnumValue)
	default:
		return "dbc: unknown error"
	}
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// NewIOError wraps an underlying reader/writer failure.
func NewIOError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// NewMagicMismatch reports that the header's magic bytes did not match "WDBC".
func NewMagicMismatch() *Error {
	return &Error{Kind: KindMagicMismatch}
}

// NewInvalidHeader reports a schema constant disagreeing with the file's header.
func NewInvalidHeader(field HeaderField, expected, actual uint32) *Error {
	return &Error{Kind: KindInvalidHeader, HeaderField: field, Expected: expected, Actual: actual}
}

// NewInvalidUTF8 reports a non-UTF-8 string-block byte run.
func NewInvalidUTF8(err error) *Error {
	return &Error{Kind: KindInvalidUTF8, Err: err}
}

// NewCorruptString reports a string offset pointing outside the string block.
func NewCorruptString() *Error {
	return &Error{Kind: KindCorruptString}
}

// NewInvalidEnum reports an enum-typed field holding an undeclared discriminant.
func NewInvalidEnum(name string, value int64) *Error {
	return &Error{Kind: KindInvalidEnum, EnumName: name, EnumValue: value}
}
