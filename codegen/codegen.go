// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package codegen turns a schema.Bundle into Go source: one row struct,
// one key newtype, and one Read/WriteTo pair per table, all emitted into
// a single package per dialect so sibling tables' key types need no
// cross-package import.
package codegen

import (
	"fmt"
	"sort"

	"github.com/wdbctools/wdbc/schema"
)

// EmitPackage generates the full source for one dialect's table package:
// every table in bundle, in a stable (name-sorted) order so repeated runs
// produce byte-identical output.
func EmitPackage(bundle *schema.Bundle, packageName string) ([]byte, error) {
	names := make([]string, 0, len(bundle.Tables))
	for name := range bundle.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	b := newBuilder()
	b.line("// Code generated by wdbc/codegen. DO NOT EDIT.")
	b.blank()
	b.line("package %s", packageName)
	b.blank()
	b.line("import (")
	b.indentBlock(func() {
		b.line("\"fmt\"")
		b.line("\"io\"")
		b.line("\"math\"")
		b.blank()
		b.line("\"github.com/wdbctools/wdbc/dbc\"")
		b.line("\"github.com/wdbctools/wdbc/dbcenum\"")
		b.line("\"github.com/wdbctools/wdbc/schema\"")
	})
	b.line(")")
	b.blank()

	for _, name := range names {
		table := bundle.Tables[name]
		if err := emitTable(b, bundle, table); err != nil {
			return nil, fmt.Errorf("codegen: table %s: %w", name, err)
		}
	}

	return b.bytes(), nil
}

// emitTable writes one table's row struct, decoder/encoder-backed
// definers, key type, Read function, WriteTo method, and keyed lookup.
func emitTable(b *builder, bundle *schema.Bundle, table *schema.Table) error {
	pk, hasPK := table.PrimaryKey()

	emitDefiners(b, table)

	emitRowStruct(b, bundle, table)
	b.blank()

	emitReadFunc(b, bundle, table)
	b.blank()

	emitWriteTo(b, bundle, table)
	b.blank()

	if hasPK {
		writeKeyType(b, table.Name, pk.Type.Elem.Kind)
	}

	emitTableContainer(b, table, hasPK)

	return nil
}

// emitDefiners writes the table-local Definer-backed enum/flag types:
// the shared Gender/SizeClass definers live in dbcenum and are never
// emitted here.
func emitDefiners(b *builder, table *schema.Table) {
	seen := map[string]bool{}
	for _, f := range table.Fields {
		if f.Type.Kind != schema.KindEnum && f.Type.Kind != schema.KindFlag {
			continue
		}
		d := f.Type.Definer
		if d.Name == "Gender" || d.Name == "SizeClass" || seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		if f.Type.Kind == schema.KindFlag {
			emitFlagType(b, d)
		} else {
			emitEnumType(b, d)
		}
		b.blank()
	}
}

func emitEnumType(b *builder, d *schema.Definer) {
	goType := goIntType(d.Backing)
	b.line("// %s is a closed discriminant decoded from a %s column.", d.Name, goType)
	b.line("type %s %s", d.Name, goType)
	b.blank()
	b.line("const (")
	b.indentBlock(func() {
		for _, e := range d.Enumerators {
			b.line("%s%s %s = %d", d.Name, e.Name, d.Name, e.Value)
		}
	})
	b.line(")")
	b.blank()
	b.line("// Read%s decodes v, reporting schema.ErrKeyOutOfRange's sibling", d.Name)
	b.line("// dbc.InvalidEnum error for a discriminant outside the closed set.")
	b.block(fmt.Sprintf("func Read%s(v %s) (%s, error)", d.Name, goType, d.Name), func() {
		b.line("switch %s(v) {", d.Name)
		b.indentBlock(func() {
			b.line("case %s:", enumCaseList(d))
			b.indentBlock(func() {
				b.line("return %s(v), nil", d.Name)
			})
		})
		b.line("}")
		b.line("return 0, dbc.NewInvalidEnum(%q, int64(v))", d.Name)
	})
}

func enumCaseList(d *schema.Definer) string {
	out := ""
	for i, e := range d.Enumerators {
		if i > 0 {
			out += ", "
		}
		out += d.Name + e.Name
	}
	return out
}

func emitFlagType(b *builder, d *schema.Definer) {
	goType := goIntType(d.Backing)
	b.line("// %s is an open bitset decoded from a %s column.", d.Name, goType)
	b.line("type %s %s", d.Name, goType)
	b.blank()
	b.line("// New%s wraps a raw bit pattern with no validation: unlike an", d.Name)
	b.line("// enum, any bit combination is a legal flag value.")
	b.block(fmt.Sprintf("func New%s(v %s) %s", d.Name, goType, d.Name), func() {
		b.line("return %s(v)", d.Name)
	})
	b.blank()
	b.block(fmt.Sprintf("func (f %s) Has(bit %s) bool", d.Name, goType), func() {
		b.line("return f&%s(bit) != 0", d.Name)
	})
	b.blank()
	b.block(fmt.Sprintf("func (f %s) As%s() %s", d.Name, exportedGoType(goType), goType), func() {
		b.line("return %s(f)", goType)
	})
}

func exportedGoType(goType string) string {
	switch goType {
	case "uint32":
		return "Uint32"
	case "uint16":
		return "Uint16"
	case "uint8":
		return "Uint8"
	default:
		return "Uint32"
	}
}

func emitRowStruct(b *builder, bundle *schema.Bundle, table *schema.Table) {
	b.line("// %s is one decoded row of the %s table.", table.Name, table.Name)
	b.block(fmt.Sprintf("type %s struct", table.Name), func() {
		for _, f := range table.Fields {
			b.line("%s %s", pascalCase(f.Name), goFieldType(f.Type, bundle))
		}
	})
}

func emitReadFunc(b *builder, bundle *schema.Bundle, table *schema.Table) {
	emptyRow := table.Name + "{}"
	b.line("// Read%s decodes one %s row from a record-sized chunk plus the", table.Name, table.Name)
	b.line("// table's shared string block.")
	b.block(fmt.Sprintf("func Read%s(record []byte, block []byte) (%s, error)", table.Name, table.Name), func() {
		b.line("c := dbc.NewCursor(record)")
		b.line("row := %s", emptyRow)
		for _, f := range table.Fields {
			writeDecode(b, f, bundle, emptyRow)
		}
		b.line("return row, nil")
	})
}

func emitWriteTo(b *builder, bundle *schema.Bundle, table *schema.Table) {
	b.line("// encode%s appends row's wire form to buf, interning any string", table.Name)
	b.line("// fields into pool.")
	b.block(fmt.Sprintf("func encode%s(buf []byte, row %s, pool *dbc.StringPool) []byte", table.Name, table.Name), func() {
		for _, f := range table.Fields {
			writeEncode(b, f, bundle)
		}
		b.line("return buf")
	})
}

func emitTableContainer(b *builder, table *schema.Table, hasPK bool) {
	containerName := table.Name + "Table"
	b.blank()
	b.line("// %sFilename is the table's conventional DBC file basename.", table.Name)
	b.line("const %sFilename = %q", table.Name, table.Name+".dbc")
	b.blank()
	b.line("// %sFieldCount is the schema's declared column count.", table.Name)
	b.line("const %sFieldCount = %d", table.Name, table.FieldCount())
	b.blank()
	b.line("// %sRowSize is the fixed per-record byte size.", table.Name)
	b.line("const %sRowSize = %d", table.Name, table.RowSize())
	b.blank()

	b.line("// %s holds every decoded row of the %s table, keyed by primary key", containerName, table.Name)
	b.line("// when the table declares one.")
	b.block(fmt.Sprintf("type %s struct", containerName), func() {
		b.line("Rows []%s", table.Name)
		if hasPK {
			b.line("byKey map[%sKey]int", table.Name)
		}
	})
	b.blank()

	b.line("// Filename implements dbc.TableMeta.")
	b.block(fmt.Sprintf("func (t %s) Filename() string", containerName), func() {
		b.line("return %sFilename", table.Name)
	})
	b.blank()
	b.line("// FieldCount implements dbc.TableMeta.")
	b.block(fmt.Sprintf("func (t %s) FieldCount() int", containerName), func() {
		b.line("return %sFieldCount", table.Name)
	})
	b.blank()
	b.line("// RowSize implements dbc.TableMeta.")
	b.block(fmt.Sprintf("func (t %s) RowSize() int", containerName), func() {
		b.line("return %sRowSize", table.Name)
	})
	b.blank()

	b.line("// Read%s parses a complete DBC file: the 20-byte header, every", containerName)
	b.line("// fixed-size record, then the trailing string block each record's")
	b.line("// string-bearing fields resolve against.")
	b.block(fmt.Sprintf("func Read%s(data []byte) (%s, error)", containerName, containerName), func() {
		b.line("if len(data) < dbc.HeaderSize {")
		b.indentBlock(func() { b.line("return %s{}, dbc.NewIOError(dbc.ErrTruncated)", containerName) })
		b.line("}")
		b.line("header, err := dbc.ParseHeader(data[:dbc.HeaderSize])")
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return %s{}, err", containerName) })
		b.line("}")
		b.line("if err := dbc.CheckRecordSize(header, %sRowSize); err != nil {", table.Name)
		b.indentBlock(func() { b.line("return %s{}, err", containerName) })
		b.line("}")
		b.line("if err := dbc.CheckFieldCount(header, %sFieldCount); err != nil {", table.Name)
		b.indentBlock(func() { b.line("return %s{}, err", containerName) })
		b.line("}")
		b.blank()
		b.line("recordsEnd := dbc.HeaderSize + int(header.RecordCount)*int(header.RecordSize)")
		b.line("want := recordsEnd + int(header.StringBlockSize)")
		b.line("if len(data) < want {")
		b.indentBlock(func() { b.line("return %s{}, dbc.NewIOError(dbc.ErrTruncated)", containerName) })
		b.line("}")
		b.line("block := data[recordsEnd:want]")
		b.blank()
		b.line("rows := make([]%s, 0, header.RecordCount)", table.Name)
		b.line("for i := uint32(0); i < header.RecordCount; i++ {")
		b.indentBlock(func() {
			b.line("start := dbc.HeaderSize + int(i)*int(header.RecordSize)")
			b.line("row, err := Read%s(data[start:start+int(header.RecordSize)], block)", table.Name)
			b.line("if err != nil {")
			b.indentBlock(func() { b.line("return %s{}, err", containerName) })
			b.line("}")
			b.line("rows = append(rows, row)")
		})
		b.line("}")
		b.blank()
		b.line("t := %s{Rows: rows}", containerName)
		if hasPK {
			b.line("t.index()")
		}
		b.line("return t, nil")
	})
	b.blank()

	b.line("// WriteTo implements io.WriterTo, re-encoding every row with a")
	b.line("// freshly built, deduplicated string pool.")
	b.block(fmt.Sprintf("func (t %s) WriteTo(w io.Writer) (int64, error)", containerName), func() {
		b.line("pool := dbc.NewStringPool()")
		b.line("var records []byte")
		b.line("for _, row := range t.Rows {")
		b.indentBlock(func() {
			b.line("records = encode%s(records, row, pool)", table.Name)
		})
		b.line("}")
		b.blank()
		b.line("header := dbc.Header{")
		b.indentBlock(func() {
			b.line("RecordCount:     uint32(len(t.Rows)),")
			b.line("FieldCount:      %sFieldCount,", table.Name)
			b.line("RecordSize:      %sRowSize,", table.Name)
			b.line("StringBlockSize: pool.Size(),")
		})
		b.line("}")
		b.blank()
		b.line("headerBytes := header.Marshal()")
		b.line("n, err := w.Write(headerBytes[:])")
		b.line("total := int64(n)")
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return total, err") })
		b.line("}")
		b.line("n, err = w.Write(records)")
		b.line("total += int64(n)")
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return total, err") })
		b.line("}")
		b.line("n, err = w.Write(pool.Bytes())")
		b.line("total += int64(n)")
		b.line("return total, err")
	})
	b.blank()

	if hasPK {
		pk, _ := table.PrimaryKey()
		pkField := pascalCase(pk.Name)
		b.line("// index builds the byKey lookup; callers populate Rows and then")
		b.line("// call index once before using Get. The first row holding a given")
		b.line("// key wins, matching a linear scan over duplicate keys.")
		b.block(fmt.Sprintf("func (t *%s) index()", containerName), func() {
			b.line("t.byKey = make(map[%sKey]int, len(t.Rows))", table.Name)
			b.line("for i, row := range t.Rows {")
			b.indentBlock(func() {
				b.line("if _, exists := t.byKey[row.%s]; exists {", pkField)
				b.indentBlock(func() { b.line("continue") })
				b.line("}")
				b.line("t.byKey[row.%s] = i", pkField)
			})
			b.line("}")
		})
		b.blank()
		b.line("// Get looks up a row by its primary key, returning (zero, false) if")
		b.line("// no row carries it.")
		b.block(fmt.Sprintf("func (t *%s) Get(key %sKey) (*%s, bool)", containerName, table.Name, table.Name), func() {
			b.line("if t.byKey == nil {")
			b.indentBlock(func() { b.line("t.index()") })
			b.line("}")
			b.line("i, ok := t.byKey[key]")
			b.line("if !ok {")
			b.indentBlock(func() { b.line("return nil, false") })
			b.line("}")
			b.line("return &t.Rows[i], true")
		})
	}
}
