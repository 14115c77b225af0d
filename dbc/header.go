// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "encoding/binary"

// HeaderSize is the fixed byte size of a DBC header.
const HeaderSize = 20

// Magic is the four-byte signature every DBC file begins with.
var Magic = [4]byte{'W', 'D', 'B', 'C'}

// Header is the fixed 20-byte header at the start of every DBC file.
type Header struct {
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32
}

// ParseHeader parses the first HeaderSize bytes of a DBC file.
//
// b must be at least HeaderSize bytes; callers read exactly HeaderSize
// bytes before calling this, so a short slice is a programmer error, not
// a *Error.
func ParseHeader(b []byte) (Header, error) {
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] || b[3] != Magic[3] {
		return Header{}, NewMagicMismatch()
	}

	return Header{
		RecordCount:     binary.LittleEndian.Uint32(b[4:8]),
		FieldCount:      binary.LittleEndian.Uint32(b[8:12]),
		RecordSize:      binary.LittleEndian.Uint32(b[12:16]),
		StringBlockSize: binary.LittleEndian.Uint32(b[16:20]),
	}, nil
}

// Marshal serializes the header to its on-disk 20-byte form.
func (h Header) Marshal() [HeaderSize]byte {
	var out [HeaderSize]byte
	copy(out[0:4], Magic[:])
	binary.LittleEndian.PutUint32(out[4:8], h.RecordCount)
	binary.LittleEndian.PutUint32(out[8:12], h.FieldCount)
	binary.LittleEndian.PutUint32(out[12:16], h.RecordSize)
	binary.LittleEndian.PutUint32(out[16:20], h.StringBlockSize)
	return out
}

// CheckRecordSize compares the header's record_size against the schema
// constant for the table being read.
func CheckRecordSize(h Header, expected uint32) error {
	if h.RecordSize != expected {
		return NewInvalidHeader(HeaderFieldRecordSize, expected, h.RecordSize)
	}
	return nil
}

// CheckFieldCount compares the header's field_count against the schema
// constant for the table being read.
func CheckFieldCount(h Header, expected uint32) error {
	if h.FieldCount != expected {
		return NewInvalidHeader(HeaderFieldFieldCount, expected, h.FieldCount)
	}
	return nil
}
