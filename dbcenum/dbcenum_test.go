// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbcenum

import (
	"errors"
	"testing"

	"github.com/wdbctools/wdbc/dbc"
)

func TestReadGenderValid(t *testing.T) {
	for v, want := range map[uint32]Gender{0: GenderMale, 1: GenderFemale} {
		got, err := ReadGender(v)
		if err != nil {
			t.Fatalf("ReadGender(%d): %v", v, err)
		}
		if got != want {
			t.Errorf("ReadGender(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestReadGenderInvalid(t *testing.T) {
	_, err := ReadGender(2)
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) {
		t.Fatalf("ReadGender(2): got %v, want *dbc.Error", err)
	}
	if dbcErr.Kind != dbc.KindInvalidEnum {
		t.Errorf("Kind = %v, want KindInvalidEnum", dbcErr.Kind)
	}
}

func TestReadSizeClassValid(t *testing.T) {
	for v, want := range map[int32]SizeClass{
		-1: SizeClassNone, 0: SizeClassSmall, 1: SizeClassMedium,
		2: SizeClassLarge, 3: SizeClassGiant, 4: SizeClassColossal,
	} {
		got, err := ReadSizeClass(v)
		if err != nil {
			t.Fatalf("ReadSizeClass(%d): %v", v, err)
		}
		if got != want {
			t.Errorf("ReadSizeClass(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestReadSizeClassInvalid(t *testing.T) {
	_, err := ReadSizeClass(5)
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) {
		t.Fatalf("ReadSizeClass(5): got %v, want *dbc.Error", err)
	}
	if dbcErr.Kind != dbc.KindInvalidEnum {
		t.Errorf("Kind = %v, want KindInvalidEnum", dbcErr.Kind)
	}
}

func TestGenderString(t *testing.T) {
	if got, want := GenderMale.String(), "Male"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSizeClassString(t *testing.T) {
	if got, want := SizeClassNone.String(), "None"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
