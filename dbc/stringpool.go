// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "unicode/utf8"

// StringPool deduplicates strings during write and produces the trailing
// string block. The pool always starts with a single sentinel zero byte
// at offset 0, so an empty string always resolves to offset 0.
type StringPool struct {
	buf     []byte
	offsets map[string]uint32
}

// NewStringPool returns an empty pool, already containing the sentinel byte.
func NewStringPool() *StringPool {
	return &StringPool{
		buf:     []byte{0},
		offsets: make(map[string]uint32),
	}
}

// Intern returns the byte offset of s within the pool, appending s
// (followed by a NUL terminator) the first time it is seen. An empty s
// always returns 0 without touching the pool.
func (p *StringPool) Intern(s string) uint32 {
	if s == "" {
		return 0
	}
	if off, ok := p.offsets[s]; ok {
		return off
	}

	off := uint32(len(p.buf))
	p.buf = append(p.buf, s...)
	p.buf = append(p.buf, 0)
	p.offsets[s] = off
	return off
}

// Size reports the current pool length, including the sentinel byte.
func (p *StringPool) Size() uint32 { return uint32(len(p.buf)) }

// Bytes exposes the raw pool contents for appending to an output stream.
func (p *StringPool) Bytes() []byte { return p.buf }

// ResolveString decodes the NUL-terminated UTF-8 string starting at offset
// within block. Offset 0 (or any offset at a zero byte) is the empty
// string.
func ResolveString(block []byte, offset uint32) (string, error) {
	if offset == 0 {
		return "", nil
	}
	if int(offset) >= len(block) {
		return "", NewCorruptString()
	}

	end := int(offset)
	for end < len(block) && block[end] != 0 {
		end++
	}
	if end >= len(block) {
		return "", NewCorruptString()
	}

	s := block[offset:end]
	if !utf8.Valid(s) {
		return "", NewInvalidUTF8(errInvalidUTF8Bytes)
	}
	return string(s), nil
}

var errInvalidUTF8Bytes = invalidUTF8Error{}

type invalidUTF8Error struct{}

func (invalidUTF8Error) Error() string { return "invalid UTF-8 byte sequence" }
