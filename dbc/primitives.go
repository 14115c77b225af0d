// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"encoding/binary"
	"math"
)

// Cursor reads little-endian primitives out of a fixed-size record chunk,
// advancing past each value read. Generated Read methods hold one Cursor
// per row.
type Cursor struct {
	b []byte
}

// NewCursor wraps a record-sized byte chunk for sequential decoding.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Remaining reports how many bytes are left unread.
func (c *Cursor) Remaining() int { return len(c.b) }

func (c *Cursor) advance(n int) []byte {
	v := c.b[:n]
	c.b = c.b[n:]
	return v
}

// I8 reads one signed 8-bit integer.
func (c *Cursor) I8() int8 { return int8(c.advance(1)[0]) }

// U8 reads one unsigned 8-bit integer.
func (c *Cursor) U8() uint8 { return c.advance(1)[0] }

// I16 reads one little-endian signed 16-bit integer.
func (c *Cursor) I16() int16 { return int16(binary.LittleEndian.Uint16(c.advance(2))) }

// U16 reads one little-endian unsigned 16-bit integer.
func (c *Cursor) U16() uint16 { return binary.LittleEndian.Uint16(c.advance(2)) }

// I32 reads one little-endian signed 32-bit integer.
func (c *Cursor) I32() int32 { return int32(binary.LittleEndian.Uint32(c.advance(4))) }

// U32 reads one little-endian unsigned 32-bit integer.
func (c *Cursor) U32() uint32 { return binary.LittleEndian.Uint32(c.advance(4)) }

// Float32 reads one little-endian IEEE-754 32-bit float.
func (c *Cursor) Float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c.advance(4)))
}

// Bool reads a U8 and reports whether it is nonzero.
func (c *Cursor) Bool() bool { return c.U8() != 0 }

// Bool32 reads a U32 and reports whether it is nonzero.
func (c *Cursor) Bool32() bool { return c.U32() != 0 }

// ArrayI32 reads n consecutive little-endian int32 values. This is the
// specialized vectorized reader for numeric array element types.
func (c *Cursor) ArrayI32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = c.I32()
	}
	return out
}

// ArrayU32 reads n consecutive little-endian uint32 values.
func (c *Cursor) ArrayU32(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = c.U32()
	}
	return out
}

// ArrayFloat32 reads n consecutive little-endian float32 values.
func (c *Cursor) ArrayFloat32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = c.Float32()
	}
	return out
}

// PutI8 appends one signed 8-bit integer.
func PutI8(buf []byte, v int8) []byte { return append(buf, byte(v)) }

// PutU8 appends one unsigned 8-bit integer.
func PutU8(buf []byte, v uint8) []byte { return append(buf, v) }

// PutI16 appends one little-endian signed 16-bit integer.
func PutI16(buf []byte, v int16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(v))
	return append(buf, tmp[:]...)
}

// PutU16 appends one little-endian unsigned 16-bit integer.
func PutU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutI32 appends one little-endian signed 32-bit integer.
func PutI32(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

// PutU32 appends one little-endian unsigned 32-bit integer.
func PutU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutFloat32 appends one little-endian IEEE-754 32-bit float.
func PutFloat32(buf []byte, v float32) []byte {
	return PutU32(buf, math.Float32bits(v))
}

// PutBool appends a U8 widened from a bool (0 or 1).
func PutBool(buf []byte, v bool) []byte {
	if v {
		return PutU8(buf, 1)
	}
	return PutU8(buf, 0)
}

// PutBool32 appends a U32 widened from a bool (0 or 1).
func PutBool32(buf []byte, v bool) []byte {
	if v {
		return PutU32(buf, 1)
	}
	return PutU32(buf, 0)
}
