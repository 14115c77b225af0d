// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"sort"
)

// Field is a named slot inside a table's record, typed by one member of
// the Type algebra.
type Field struct {
	Name string
	Type Type
}

// Table describes one DBC table: its ordered fields, whose Enum and Flag
// types carry the definers they reference. It says nothing about a target game
// version — the same Table value is reused across a Bundle only when the
// on-disk layout is identical between dialects, which in practice means
// per-dialect fixtures each build their own Table.
type Table struct {
	Name   string
	Fields []Field
}

// NewTable validates and constructs a Table. It rejects duplicate field
// names and more than one primary-key field, mirroring the invariants
// §3 places on a table description.
func NewTable(name string, fields ...Field) (*Table, error) {
	seen := make(map[string]bool, len(fields))
	pkCount := 0
	for _, f := range fields {
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, name, f.Name)
		}
		seen[f.Name] = true

		if err := f.Type.Validate(); err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", name, f.Name, err)
		}
		if f.Type.Kind == KindPrimaryKey {
			pkCount++
		}
	}
	if pkCount > 1 {
		return nil, fmt.Errorf("%w: %s", ErrMultiplePrimaryKeys, name)
	}

	return &Table{Name: name, Fields: fields}, nil
}

// MustNewTable is NewTable but panics on error; used by fixture
// construction where the schema is a compile-time literal and any
// validation failure is a programmer error.
func MustNewTable(name string, fields ...Field) *Table {
	t, err := NewTable(name, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// RowSize sums each field's on-disk byte size.
func (t *Table) RowSize() uint32 {
	var sum uint32
	for _, f := range t.Fields {
		sum += f.Type.Size()
	}
	return sum
}

// FieldCount sums each field's field-count contribution (arrays and
// localized strings expand into multiple fields).
func (t *Table) FieldCount() uint32 {
	var sum uint32
	for _, f := range t.Fields {
		sum += f.Type.FieldCount()
	}
	return sum
}

// PrimaryKey returns the table's single primary-key field, if declared.
func (t *Table) PrimaryKey() (Field, bool) {
	for _, f := range t.Fields {
		if f.Type.Kind == KindPrimaryKey {
			return f, true
		}
	}
	return Field{}, false
}

// ForeignKeyTables returns the sorted, deduplicated set of table names
// referenced by this table's foreign-key fields.
func (t *Table) ForeignKeyTables() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range t.Fields {
		if f.Type.Kind == KindForeignKey && !seen[f.Type.Table] {
			seen[f.Type.Table] = true
			out = append(out, f.Type.Table)
		}
	}
	sort.Strings(out)
	return out
}

// ContainsString reports whether any field (or array of fields) carries
// string data in any of the three string-bearing shapes.
func (t *Table) ContainsString() bool {
	for _, f := range t.Fields {
		ty := f.Type
		if ty.Kind == KindArray {
			ty = *ty.Elem
		}
		if ty.IsString() {
			return true
		}
	}
	return false
}

// ContainsLocalizedString reports whether any field is (or is an array
// of) the V1 8-slot localized string.
func (t *Table) ContainsLocalizedString() bool {
	return t.containsKind(KindStringRefLoc)
}

// ContainsExtendedLocalizedString reports whether any field is (or is
// an array of) the V2/V3 16-slot localized string.
func (t *Table) ContainsExtendedLocalizedString() bool {
	return t.containsKind(KindExtendedStringRefLoc)
}

func (t *Table) containsKind(k Kind) bool {
	for _, f := range t.Fields {
		ty := f.Type
		if ty.Kind == KindArray {
			ty = *ty.Elem
		}
		if ty.Kind == k {
			return true
		}
	}
	return false
}

// UsesSharedEnum reports whether this table has an Enum field backed by
// the shared Definer with the given name (e.g. "Gender", "SizeClass").
// codegen does not call it: the generator recognises the shared
// definers by their names when it picks the dbcenum type.
func (t *Table) UsesSharedEnum(name string) bool {
	for _, f := range t.Fields {
		if f.Type.Kind == KindEnum && f.Type.Definer.Name == name {
			return true
		}
	}
	return false
}
