// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/wdbctools/wdbc/schema"
)

func testBundle(t *testing.T) *schema.Bundle {
	t.Helper()
	creatureDisplayInfo := schema.MustNewTable("CreatureDisplayInfo",
		schema.Field{Name: "id", Type: schema.PrimaryKey("CreatureDisplayInfo", schema.KindU32)},
	)
	chrRaces := schema.MustNewTable("ChrRaces",
		schema.Field{Name: "id", Type: schema.PrimaryKey("ChrRaces", schema.KindU32)},
		schema.Field{Name: "male_display", Type: schema.ForeignKey("CreatureDisplayInfo", schema.KindU32)},
		schema.Field{Name: "faction", Type: schema.ForeignKey("FactionTemplate", schema.KindU32)},
	)
	return schema.NewBundle(schema.DialectV1, "v1.0.0", chrRaces, creatureDisplayInfo)
}

func TestWriteDecodePrimaryKeyUsesExactMatchConstructor(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	b := newBuilder()
	writeDecode(b, tbl.Fields[0], bundle, "Row{}")
	src := string(b.bytes())

	want := "row.Id = ChrRacesKeyFromUint32(c.U32())"
	if !strings.Contains(src, want) {
		t.Errorf("decode source = %q, want substring %q", src, want)
	}
}

func TestWriteDecodeForeignKeyPresentTableStaysTyped(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	b := newBuilder()
	writeDecode(b, tbl.Fields[1], bundle, "Row{}")
	src := string(b.bytes())

	want := "row.MaleDisplay = CreatureDisplayInfoKeyFromUint32(c.U32())"
	if !strings.Contains(src, want) {
		t.Errorf("decode source = %q, want substring %q", src, want)
	}
}

func TestWriteDecodeForeignKeyAbsentTableDegradesToRawInt(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	b := newBuilder()
	writeDecode(b, tbl.Fields[2], bundle, "Row{}")
	src := string(b.bytes())

	want := "row.Faction = c.U32()"
	if !strings.Contains(src, want) {
		t.Errorf("decode source = %q, want substring %q", src, want)
	}
	if strings.Contains(src, "KeyFrom") {
		t.Errorf("degraded foreign key must not reference a key constructor: %q", src)
	}
}

func TestWriteEncodePrimaryKeyUsesValueField(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	b := newBuilder()
	writeEncode(b, tbl.Fields[0], bundle)
	src := string(b.bytes())

	want := "buf = dbc.PutU32(buf, row.Id.Value)"
	if !strings.Contains(src, want) {
		t.Errorf("encode source = %q, want substring %q", src, want)
	}
}

func TestWriteEncodeForeignKeyAbsentTableWritesRawInt(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	b := newBuilder()
	writeEncode(b, tbl.Fields[2], bundle)
	src := string(b.bytes())

	want := "buf = dbc.PutU32(buf, row.Faction)"
	if !strings.Contains(src, want) {
		t.Errorf("encode source = %q, want substring %q", src, want)
	}
}

func TestWriteDecodeForeignKeyWidensToReferencedBacking(t *testing.T) {
	areaTable := schema.MustNewTable("AreaTable",
		schema.Field{Name: "id", Type: schema.PrimaryKey("AreaTable", schema.KindI32)},
	)
	zone := schema.MustNewTable("Zone",
		schema.Field{Name: "id", Type: schema.PrimaryKey("Zone", schema.KindU32)},
		schema.Field{Name: "area", Type: schema.ForeignKey("AreaTable", schema.KindU16)},
	)
	bundle := schema.NewBundle(schema.DialectV1, "v1.0.0", zone, areaTable)
	tbl, _ := bundle.Table("Zone")

	b := newBuilder()
	writeDecode(b, tbl.Fields[1], bundle, "Row{}")
	src := string(b.bytes())

	want := "row.Area = AreaTableKeyFromInt32(int32(c.U16()))"
	if !strings.Contains(src, want) {
		t.Errorf("decode source = %q, want substring %q", src, want)
	}

	b = newBuilder()
	writeEncode(b, tbl.Fields[1], bundle)
	src = string(b.bytes())

	want = "buf = dbc.PutU16(buf, uint16(row.Area.Value))"
	if !strings.Contains(src, want) {
		t.Errorf("encode source = %q, want substring %q", src, want)
	}
}

func TestGoFieldTypeForeignKeyDegrade(t *testing.T) {
	bundle := testBundle(t)
	tbl, _ := bundle.Table("ChrRaces")

	if got, want := goFieldType(tbl.Fields[1].Type, bundle), "CreatureDisplayInfoKey"; got != want {
		t.Errorf("goFieldType(present FK) = %q, want %q", got, want)
	}
	if got, want := goFieldType(tbl.Fields[2].Type, bundle), "uint32"; got != want {
		t.Errorf("goFieldType(absent FK) = %q, want %q", got, want)
	}
}
