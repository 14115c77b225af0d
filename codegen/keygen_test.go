// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/wdbctools/wdbc/schema"
)

// TestInfallibleSourceU32Backed pins the ChrRacesKey matrix: a u32-backed
// key takes u8/u16/u32 infallibly and everything else — every signed
// width plus u64/uint — fallibly.
func TestInfallibleSourceU32Backed(t *testing.T) {
	width, signed := backingWidthSigned(schema.KindU32)
	want := map[string]bool{
		"uint8": true, "uint16": true, "uint32": true,
		"uint64": false, "uint": false,
		"int8": false, "int16": false, "int32": false, "int64": false, "int": false,
	}
	for _, src := range keySourceTypes {
		if got := infallibleSource(src, width, signed); got != want[src.goType] {
			t.Errorf("infallibleSource(%s, u32 backing) = %v, want %v", src.goType, got, want[src.goType])
		}
	}
}

// TestInfallibleSourceI32Backed pins the MapKey/AreaTableKey matrix: an
// i32-backed key takes u8/u16/i8/i16/i32 infallibly — every one of those
// always fits int32 — and u32/u64/uint/i64/int fallibly.
func TestInfallibleSourceI32Backed(t *testing.T) {
	width, signed := backingWidthSigned(schema.KindI32)
	want := map[string]bool{
		"uint8": true, "uint16": true, "int8": true, "int16": true, "int32": true,
		"uint32": false, "uint64": false, "uint": false, "int64": false, "int": false,
	}
	for _, src := range keySourceTypes {
		if got := infallibleSource(src, width, signed); got != want[src.goType] {
			t.Errorf("infallibleSource(%s, i32 backing) = %v, want %v", src.goType, got, want[src.goType])
		}
	}
}

func TestWriteKeyTypeU32Backed(t *testing.T) {
	b := newBuilder()
	writeKeyType(b, "ChrRaces", schema.KindU32)
	src := string(b.bytes())

	for _, want := range []string{
		"type ChrRacesKey struct",
		"Value uint32",
		"func ChrRacesKeyFromUint8(v uint8) ChrRacesKey",
		"func ChrRacesKeyFromUint16(v uint16) ChrRacesKey",
		"func ChrRacesKeyFromUint32(v uint32) ChrRacesKey",
		"func ChrRacesKeyFromUint64(v uint64) (ChrRacesKey, bool)",
		"func ChrRacesKeyFromInt32(v int32) (ChrRacesKey, bool)",
		"func ChrRacesKeyFromUint64Checked(v uint64) (ChrRacesKey, error)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	// u32 backing's own width is always infallible; it must not get a
	// bool-returning or Checked sibling.
	if strings.Contains(src, "ChrRacesKeyFromUint32(v uint32) (ChrRacesKey, bool)") {
		t.Error("ChrRacesKeyFromUint32 should be infallible, not bool-returning")
	}
	if strings.Contains(src, "ChrRacesKeyFromUint32Checked") {
		t.Error("native-width ChrRacesKeyFromUint32 should have no Checked sibling")
	}
}

func TestWriteKeyTypeI32Backed(t *testing.T) {
	b := newBuilder()
	writeKeyType(b, "Map", schema.KindI32)
	src := string(b.bytes())

	for _, want := range []string{
		"type MapKey struct",
		"Value int32",
		"func MapKeyFromUint8(v uint8) MapKey",
		"func MapKeyFromInt16(v int16) MapKey",
		"func MapKeyFromInt32(v int32) MapKey",
		"func MapKeyFromUint32(v uint32) (MapKey, bool)",
		"func MapKeyFromInt64(v int64) (MapKey, bool)",
		"func MapKeyFromUint32Checked(v uint32) (MapKey, error)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestKeyDecodeCallMatchesBackingWidth(t *testing.T) {
	got := keyDecodeCall("Map", schema.KindI32, schema.KindI32, "c.I32()")
	want := "MapKeyFromInt32(c.I32())"
	if got != want {
		t.Errorf("keyDecodeCall() = %q, want %q", got, want)
	}

	got = keyDecodeCall("ChrRaces", schema.KindU32, schema.KindU32, "c.U32()")
	want = "ChrRacesKeyFromUint32(c.U32())"
	if got != want {
		t.Errorf("keyDecodeCall() = %q, want %q", got, want)
	}
}

func TestKeyDecodeCallWidensMismatchedForeignKey(t *testing.T) {
	got := keyDecodeCall("Map", schema.KindI32, schema.KindU16, "c.U16()")
	want := "MapKeyFromInt32(int32(c.U16()))"
	if got != want {
		t.Errorf("keyDecodeCall() = %q, want %q", got, want)
	}
}
