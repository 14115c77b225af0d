// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import "testing"

func TestTypeSize(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want uint32
	}{
		{"i8", I8, 1},
		{"bool", Bool, 1},
		{"i16", I16, 2},
		{"u32", U32, 4},
		{"float", Float, 4},
		{"string_ref", StringRef, 4},
		{"string_ref_loc", StringRefLoc, 36},
		{"extended_string_ref_loc", ExtendedStringRefLoc, 68},
		{"primary_key", PrimaryKey("Map", KindU32), 4},
		{"foreign_key", ForeignKey("Map", KindI32), 4},
		{"array", Array(I32, 4), 16},
		{"enum", EnumOf(&Definer{Backing: KindU8}), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.typ.Size(); got != c.want {
				t.Errorf("Size() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestTypeFieldCount(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want uint32
	}{
		{"scalar", U32, 1},
		{"string_ref_loc", StringRefLoc, 9},
		{"extended_string_ref_loc", ExtendedStringRefLoc, 17},
		{"array", Array(StringRef, 3), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.typ.FieldCount(); got != c.want {
				t.Errorf("FieldCount() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestTypeValidateRejectsNonIntegerInner(t *testing.T) {
	bad := Type{Kind: KindForeignKey, Table: "Map", Elem: &Float}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for non-integer foreign key inner type")
	}
}

func TestTypeValidateRejectsNestedArray(t *testing.T) {
	bad := Array(Array(I32, 2), 3)
	if err := bad.Validate(); err == nil {
		t.Error("expected error for array of array")
	}
}

func TestTypeValidateRejectsArrayOfLocalizedString(t *testing.T) {
	bad := Array(StringRefLoc, 2)
	if err := bad.Validate(); err == nil {
		t.Error("expected error for array of localized string")
	}
}
