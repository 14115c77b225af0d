// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wdbctools/wdbc/schema"
)

// primitiveFieldTypeCase mirrors one entry of
// testdata/primitive_field_types.yaml.
type primitiveFieldTypeCase struct {
	Kind   string `yaml:"kind"`
	GoType string `yaml:"goType"`
}

var primitiveTypeByName = map[string]schema.Type{
	"I8":        schema.I8,
	"I16":       schema.I16,
	"I32":       schema.I32,
	"U8":        schema.U8,
	"U16":       schema.U16,
	"U32":       schema.U32,
	"Float":     schema.Float,
	"Bool":      schema.Bool,
	"Bool32":    schema.Bool32,
	"StringRef": schema.StringRef,
}

// TestGoFieldTypeGolden drives goFieldType off a declarative fixture
// rather than a hand-written table. Only the kinds the fixture lists are
// checked: a fixture row naming a kind missing from primitiveTypeByName
// fails, while a scalar Kind with no fixture row is not exercised.
func TestGoFieldTypeGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/primitive_field_types.yaml")
	require.NoError(t, err)

	var cases []primitiveFieldTypeCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	bundle := &schema.Bundle{Tables: map[string]*schema.Table{}}

	for _, c := range cases {
		typ, ok := primitiveTypeByName[c.Kind]
		require.Truef(t, ok, "fixture references unknown kind %q", c.Kind)

		got := goFieldType(typ, bundle)
		require.Equalf(t, c.GoType, got, "goFieldType(%s)", c.Kind)
	}
}
