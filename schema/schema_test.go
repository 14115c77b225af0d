// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable("Widget",
		Field{Name: "id", Type: PrimaryKey("Widget", KindU32)},
		Field{Name: "owner", Type: ForeignKey("Owner", KindU32)},
		Field{Name: "name", Type: StringRef},
		Field{Name: "size", Type: EnumOf(SizeClass)},
		Field{Name: "tags", Type: Array(StringRef, 2)},
		Field{Name: "label", Type: StringRefLoc},
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestTableRowSizeAndFieldCount(t *testing.T) {
	tbl := sampleTable(t)

	// id(4) + owner(4) + name(4) + size(4) + tags(2*4=8) + label(36) = 60
	if got, want := tbl.RowSize(), uint32(60); got != want {
		t.Errorf("RowSize() = %d, want %d", got, want)
	}

	// id(1) + owner(1) + name(1) + size(1) + tags(2) + label(9) = 15
	if got, want := tbl.FieldCount(), uint32(15); got != want {
		t.Errorf("FieldCount() = %d, want %d", got, want)
	}
}

func TestTablePrimaryKey(t *testing.T) {
	tbl := sampleTable(t)
	pk, ok := tbl.PrimaryKey()
	if !ok {
		t.Fatal("expected primary key")
	}
	if pk.Name != "id" {
		t.Errorf("PrimaryKey().Name = %q, want %q", pk.Name, "id")
	}
}

func TestTableForeignKeyTables(t *testing.T) {
	tbl := sampleTable(t)
	got := tbl.ForeignKeyTables()
	if len(got) != 1 || got[0] != "Owner" {
		t.Errorf("ForeignKeyTables() = %v, want [Owner]", got)
	}
}

func TestTableContainsString(t *testing.T) {
	tbl := sampleTable(t)
	if !tbl.ContainsString() {
		t.Error("ContainsString() = false, want true")
	}
	if !tbl.ContainsLocalizedString() {
		t.Error("ContainsLocalizedString() = false, want true")
	}
	if tbl.ContainsExtendedLocalizedString() {
		t.Error("ContainsExtendedLocalizedString() = true, want false")
	}
}

func TestTableUsesSharedEnum(t *testing.T) {
	tbl := sampleTable(t)
	if !tbl.UsesSharedEnum("SizeClass") {
		t.Error("UsesSharedEnum(SizeClass) = false, want true")
	}
	if tbl.UsesSharedEnum("Gender") {
		t.Error("UsesSharedEnum(Gender) = true, want false")
	}
}

func TestNewTableRejectsDuplicateFieldNames(t *testing.T) {
	_, err := NewTable("Bad",
		Field{Name: "id", Type: PrimaryKey("Bad", KindU32)},
		Field{Name: "id", Type: U32},
	)
	if !errors.Is(err, ErrDuplicateField) {
		t.Errorf("expected ErrDuplicateField, got %v", err)
	}
}

func TestNewTableRejectsMultiplePrimaryKeys(t *testing.T) {
	_, err := NewTable("Bad",
		Field{Name: "a", Type: PrimaryKey("Bad", KindU32)},
		Field{Name: "b", Type: PrimaryKey("Bad", KindU32)},
	)
	if !errors.Is(err, ErrMultiplePrimaryKeys) {
		t.Errorf("expected ErrMultiplePrimaryKeys, got %v", err)
	}
}
