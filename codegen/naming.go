// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"

	"github.com/wdbctools/wdbc/schema"
)

// pascalCase converts a snake_case schema field name into the Go
// exported-identifier form the generator emits for struct fields.
func pascalCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// goIntType maps an integer Kind to its Go primitive spelling.
func goIntType(k schema.Kind) string {
	switch k {
	case schema.KindI8:
		return "int8"
	case schema.KindI16:
		return "int16"
	case schema.KindI32:
		return "int32"
	case schema.KindU8:
		return "uint8"
	case schema.KindU16:
		return "uint16"
	case schema.KindU32:
		return "uint32"
	default:
		return "int32"
	}
}

// cursorReadMethod maps an integer Kind to the dbc.Cursor method that
// reads it.
func cursorReadMethod(k schema.Kind) string {
	switch k {
	case schema.KindI8:
		return "I8"
	case schema.KindI16:
		return "I16"
	case schema.KindI32:
		return "I32"
	case schema.KindU8:
		return "U8"
	case schema.KindU16:
		return "U16"
	case schema.KindU32:
		return "U32"
	default:
		return "I32"
	}
}

// keyCtorSuffix maps an integer Kind to the suffix used in a key type's
// infallible same-width constructor name, e.g. "Uint32" in
// "ChrRacesKeyFromUint32".
func keyCtorSuffix(k schema.Kind) string {
	switch k {
	case schema.KindI8:
		return "Int8"
	case schema.KindI16:
		return "Int16"
	case schema.KindI32:
		return "Int32"
	case schema.KindU8:
		return "Uint8"
	case schema.KindU16:
		return "Uint16"
	case schema.KindU32:
		return "Uint32"
	default:
		return "Int32"
	}
}

// putFunc maps an integer Kind to the dbc.PutXxx encode helper.
func putFunc(k schema.Kind) string {
	switch k {
	case schema.KindI8:
		return "dbc.PutI8"
	case schema.KindI16:
		return "dbc.PutI16"
	case schema.KindI32:
		return "dbc.PutI32"
	case schema.KindU8:
		return "dbc.PutU8"
	case schema.KindU16:
		return "dbc.PutU16"
	case schema.KindU32:
		return "dbc.PutU32"
	default:
		return "dbc.PutI32"
	}
}
