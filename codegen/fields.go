// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"github.com/wdbctools/wdbc/schema"
)

// goFieldType returns the Go type a struct field of type t gets, for a
// table being generated into a package that also holds every other
// table in the same dialect bundle (so sibling-table key types need no
// import).
func goFieldType(t schema.Type, bundle *schema.Bundle) string {
	switch t.Kind {
	case schema.KindI8, schema.KindI16, schema.KindI32, schema.KindU8, schema.KindU16, schema.KindU32:
		return goIntType(t.Kind)
	case schema.KindFloat:
		return "float32"
	case schema.KindBool, schema.KindBool32:
		return "bool"
	case schema.KindStringRef:
		return "string"
	case schema.KindStringRefLoc:
		return "dbc.LocalizedString"
	case schema.KindExtendedStringRefLoc:
		return "dbc.ExtendedLocalizedString"
	case schema.KindArray:
		return fmt.Sprintf("[%d]%s", t.Len, goFieldType(*t.Elem, bundle))
	case schema.KindPrimaryKey:
		return t.Table + "Key"
	case schema.KindForeignKey:
		if bundle.TableExists(t.Table) {
			return t.Table + "Key"
		}
		return goIntType(t.Elem.Kind)
	case schema.KindEnum, schema.KindFlag:
		return sharedEnumGoType(t.Definer)
	default:
		panic(fmt.Sprintf("codegen: unhandled kind %v", t.Kind))
	}
}

// sharedEnumGoType returns the Go type name for an Enum/Flag definer:
// the dbcenum package's exported type for the two cross-table shared
// enums, or the definer's own name for a table-local one (emitted
// alongside the table in the same file).
func sharedEnumGoType(d *schema.Definer) string {
	switch d.Name {
	case "Gender", "SizeClass":
		return "dbcenum." + d.Name
	default:
		return d.Name
	}
}

// referencedKeyBacking returns the backing Kind of tableName's primary
// key, for a ForeignKey field whose own wire Kind may be narrower or
// wider than the table it points to.
func referencedKeyBacking(bundle *schema.Bundle, tableName string) schema.Kind {
	refTable, err := bundle.Table(tableName)
	if err != nil {
		panic(fmt.Sprintf("codegen: foreign key references unknown table %q", tableName))
	}
	pk, ok := refTable.PrimaryKey()
	if !ok {
		panic(fmt.Sprintf("codegen: table %q has no primary key", tableName))
	}
	return pk.Type.Elem.Kind
}

// writeFieldComment emits the one-line wire-shape comment the generator
// places directly above a field's decode/encode statement.
func writeFieldComment(b *builder, f schema.Field) {
	b.line("// %s: %s", f.Name, f.Type.Describe())
}

// writeDecode emits the statement(s) that read field f from cursor c
// into row.<Pascal>, resolving strings against block. Fields whose
// decode can fail (StringRef, StringRefLoc/Extended, Enum) emit their
// own "if err != nil { return ..., err }" guard; emptyRow is the
// zero-value row expression to return alongside the error.
func writeDecode(b *builder, f schema.Field, bundle *schema.Bundle, emptyRow string) {
	writeFieldComment(b, f)
	name := pascalCase(f.Name)
	writeDecodeValue(b, "row."+name, f.Type, bundle, emptyRow)
}

func writeDecodeValue(b *builder, dst string, t schema.Type, bundle *schema.Bundle, emptyRow string) {
	switch t.Kind {
	case schema.KindI8, schema.KindI16, schema.KindI32, schema.KindU8, schema.KindU16, schema.KindU32:
		b.line("%s = c.%s()", dst, cursorReadMethod(t.Kind))
	case schema.KindFloat:
		b.line("%s = c.Float32()", dst)
	case schema.KindBool:
		b.line("%s = c.Bool()", dst)
	case schema.KindBool32:
		b.line("%s = c.Bool32()", dst)
	case schema.KindStringRef:
		b.line("%sVal, err := dbc.ResolveString(block, c.U32())", tmpPrefix(dst))
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return %s, err", emptyRow) })
		b.line("}")
		b.line("%s = %sVal", dst, tmpPrefix(dst))
	case schema.KindStringRefLoc:
		b.line("%sVal, err := dbc.ReadLocalizedString(c, block)", tmpPrefix(dst))
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return %s, err", emptyRow) })
		b.line("}")
		b.line("%s = %sVal", dst, tmpPrefix(dst))
	case schema.KindExtendedStringRefLoc:
		b.line("%sVal, err := dbc.ReadExtendedLocalizedString(c, block)", tmpPrefix(dst))
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return %s, err", emptyRow) })
		b.line("}")
		b.line("%s = %sVal", dst, tmpPrefix(dst))
	case schema.KindPrimaryKey:
		b.line("%s = %s", dst, keyDecodeCall(t.Table, t.Elem.Kind, t.Elem.Kind, "c."+cursorReadMethod(t.Elem.Kind)+"()"))
	case schema.KindForeignKey:
		if bundle.TableExists(t.Table) {
			backing := referencedKeyBacking(bundle, t.Table)
			b.line("%s = %s", dst, keyDecodeCall(t.Table, backing, t.Elem.Kind, "c."+cursorReadMethod(t.Elem.Kind)+"()"))
		} else {
			b.line("%s = c.%s()", dst, cursorReadMethod(t.Elem.Kind))
		}
	case schema.KindEnum:
		b.line("%sVal, err := %s(c.%s())", tmpPrefix(dst), readEnumFunc(t.Definer), cursorReadMethod(t.Definer.Backing))
		b.line("if err != nil {")
		b.indentBlock(func() { b.line("return %s, err", emptyRow) })
		b.line("}")
		b.line("%s = %sVal", dst, tmpPrefix(dst))
	case schema.KindFlag:
		b.line("%s = New%s(%s(c.%s()))", dst, t.Definer.Name, goIntType(t.Definer.Backing), cursorReadMethod(t.Definer.Backing))
	case schema.KindArray:
		b.line("for i := range %s {", dst)
		b.indentBlock(func() {
			writeDecodeValue(b, dst+"[i]", *t.Elem, bundle, emptyRow)
		})
		b.line("}")
	default:
		panic(fmt.Sprintf("codegen: unhandled decode kind %v", t.Kind))
	}
}

// writeEncode emits the statement(s) that append field f's wire form to
// buf, interning strings into pool.
func writeEncode(b *builder, f schema.Field, bundle *schema.Bundle) {
	writeFieldComment(b, f)
	name := "row." + pascalCase(f.Name)
	writeEncodeValue(b, name, f.Type, bundle)
}

func writeEncodeValue(b *builder, src string, t schema.Type, bundle *schema.Bundle) {
	switch t.Kind {
	case schema.KindI8, schema.KindI16, schema.KindI32, schema.KindU8, schema.KindU16, schema.KindU32:
		b.line("buf = %s(buf, %s)", putFunc(t.Kind), src)
	case schema.KindFloat:
		b.line("buf = dbc.PutFloat32(buf, %s)", src)
	case schema.KindBool:
		b.line("buf = dbc.PutBool(buf, %s)", src)
	case schema.KindBool32:
		b.line("buf = dbc.PutBool32(buf, %s)", src)
	case schema.KindStringRef:
		b.line("buf = dbc.PutU32(buf, pool.Intern(%s))", src)
	case schema.KindStringRefLoc, schema.KindExtendedStringRefLoc:
		b.line("{")
		b.indentBlock(func() {
			b.line("wire := %s.Encode(pool)", src)
			b.line("buf = append(buf, wire[:]...)")
		})
		b.line("}")
	case schema.KindPrimaryKey:
		b.line("buf = %s(buf, %s.Value)", putFunc(t.Elem.Kind), src)
	case schema.KindForeignKey:
		if bundle.TableExists(t.Table) {
			backing := referencedKeyBacking(bundle, t.Table)
			if t.Elem.Kind == backing {
				b.line("buf = %s(buf, %s.Value)", putFunc(t.Elem.Kind), src)
			} else {
				b.line("buf = %s(buf, %s(%s.Value))", putFunc(t.Elem.Kind), goIntType(t.Elem.Kind), src)
			}
		} else {
			b.line("buf = %s(buf, %s)", putFunc(t.Elem.Kind), src)
		}
	case schema.KindFlag:
		b.line("buf = %s(buf, %s)", putFunc(t.Definer.Backing), asIntExpr(src, t))
	case schema.KindEnum:
		b.line("buf = %s(buf, %s(%s))", putFunc(t.Definer.Backing), goIntType(t.Definer.Backing), asIntExpr(src, t))
	case schema.KindArray:
		b.line("for i := range %s {", src)
		b.indentBlock(func() {
			writeEncodeValue(b, src+"[i]", *t.Elem, bundle)
		})
		b.line("}")
	default:
		panic(fmt.Sprintf("codegen: unhandled encode kind %v", t.Kind))
	}
}

// asIntExpr returns the expression writeEncodeValue hands to putFunc for
// a Flag or Enum field. A Flag exposes its bits through its AsXxx
// accessor, which writeEncodeValue passes on without a cast; an Enum
// value is returned unchanged and writeEncodeValue wraps it in a
// goIntType(Definer.Backing) cast.
func asIntExpr(src string, t schema.Type) string {
	if t.Kind == schema.KindFlag {
		return src + ".As" + exportedGoType(goIntType(t.Definer.Backing)) + "()"
	}
	return src
}

// readEnumFunc returns the decode function for a definer: the shared
// dbcenum package's ReadXxx for Gender/SizeClass, or a table-local
// ReadXxx emitted alongside the generated table.
func readEnumFunc(d *schema.Definer) string {
	switch d.Name {
	case "Gender", "SizeClass":
		return "dbcenum.Read" + d.Name
	default:
		return "Read" + d.Name
	}
}

// tmpPrefix derives a short, collision-resistant local variable name
// from a "row.Field" or "row.Field[i]" destination expression.
func tmpPrefix(dst string) string {
	out := make([]rune, 0, len(dst))
	for _, r := range dst {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}

// indentBlock runs body at one deeper indentation level without
// emitting surrounding braces — callers write their own "{"/"}" lines
// so multi-statement bodies stay readable.
func (b *builder) indentBlock(body func()) {
	b.indent++
	body()
	b.indent--
}
