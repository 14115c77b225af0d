// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"testing"

	"github.com/wdbctools/wdbc/schema"
)

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"id":                "Id",
		"male_display":      "MaleDisplay",
		"area_name_lang":    "AreaNameLang",
		"p_v_p":             "PVP",
		"exploration_sound": "ExplorationSound",
		"client_file_path":  "ClientFilePath",
	}
	// p_v_p is a degenerate acronym case pascalCase does not special-case;
	// it produces "PVP" only by coincidence of single-letter parts.
	for in, want := range cases {
		if got := pascalCase(in); got != want {
			t.Errorf("pascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGoIntType(t *testing.T) {
	cases := map[schema.Kind]string{
		schema.KindI8: "int8", schema.KindI16: "int16", schema.KindI32: "int32",
		schema.KindU8: "uint8", schema.KindU16: "uint16", schema.KindU32: "uint32",
	}
	for k, want := range cases {
		if got := goIntType(k); got != want {
			t.Errorf("goIntType(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestCursorReadMethod(t *testing.T) {
	cases := map[schema.Kind]string{
		schema.KindI8: "I8", schema.KindI16: "I16", schema.KindI32: "I32",
		schema.KindU8: "U8", schema.KindU16: "U16", schema.KindU32: "U32",
	}
	for k, want := range cases {
		if got := cursorReadMethod(k); got != want {
			t.Errorf("cursorReadMethod(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestPutFunc(t *testing.T) {
	if got, want := putFunc(schema.KindU32), "dbc.PutU32"; got != want {
		t.Errorf("putFunc(KindU32) = %q, want %q", got, want)
	}
	if got, want := putFunc(schema.KindI8), "dbc.PutI8"; got != want {
		t.Errorf("putFunc(KindI8) = %q, want %q", got, want)
	}
}

func TestKeyCtorSuffix(t *testing.T) {
	cases := map[schema.Kind]string{
		schema.KindI8: "Int8", schema.KindI16: "Int16", schema.KindI32: "Int32",
		schema.KindU8: "Uint8", schema.KindU16: "Uint16", schema.KindU32: "Uint32",
	}
	for k, want := range cases {
		if got := keyCtorSuffix(k); got != want {
			t.Errorf("keyCtorSuffix(%v) = %q, want %q", k, got, want)
		}
	}
}
