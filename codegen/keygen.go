// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"github.com/wdbctools/wdbc/schema"
)

// keySourceType is one candidate Go integer type a key's From/TryFrom
// surface is generated for.
type keySourceType struct {
	goType string // "uint8", "int", ...
	ctor   string // "Uint8", "Int", ... used in the generated function name
	width  int    // bit width; platform-width int/uint count as 64
	signed bool
}

var keySourceTypes = []keySourceType{
	{"uint8", "Uint8", 8, false},
	{"int8", "Int8", 8, true},
	{"uint16", "Uint16", 16, false},
	{"int16", "Int16", 16, true},
	{"uint32", "Uint32", 32, false},
	{"int32", "Int32", 32, true},
	{"uint64", "Uint64", 64, false},
	{"int64", "Int64", 64, true},
	{"uint", "Uint", 64, false},
	{"int", "Int", 64, true},
}

func backingWidthSigned(k schema.Kind) (int, bool) {
	switch k {
	case schema.KindU8:
		return 8, false
	case schema.KindI8:
		return 8, true
	case schema.KindU16:
		return 16, false
	case schema.KindI16:
		return 16, true
	case schema.KindU32:
		return 32, false
	case schema.KindI32:
		return 32, true
	default:
		panic(fmt.Sprintf("codegen: key backing must be a primitive integer, got %v", k))
	}
}

// infallibleSource reports whether every value of a source type of the
// given width/signedness is guaranteed to fit in a key backed by
// (backingWidth, backingSigned). This is the same rule the original
// table definitions encode as From (always succeeds) vs TryFrom (can
// fail): an unsigned source only ever fits a narrower-or-equal-width
// target (strictly narrower if the target is signed, since the target's
// top bit is then unavailable for magnitude); a signed source only ever
// fits a same-width-or-narrower signed target, and never fits an
// unsigned target unconditionally.
func infallibleSource(src keySourceType, backingWidth int, backingSigned bool) bool {
	if src.signed {
		return backingSigned && src.width <= backingWidth
	}
	if backingSigned {
		return src.width < backingWidth
	}
	return src.width <= backingWidth
}

// keyRangeExprs returns the backing Kind's [min, max] as math package
// constant expressions (or literal "0"), used to bounds-check a wider
// candidate source value.
func keyRangeExprs(backing schema.Kind) (string, string) {
	switch backing {
	case schema.KindU8:
		return "0", "math.MaxUint8"
	case schema.KindI8:
		return "math.MinInt8", "math.MaxInt8"
	case schema.KindU16:
		return "0", "math.MaxUint16"
	case schema.KindI16:
		return "math.MinInt16", "math.MaxInt16"
	case schema.KindU32:
		return "0", "math.MaxUint32"
	case schema.KindI32:
		return "math.MinInt32", "math.MaxInt32"
	default:
		panic(fmt.Sprintf("codegen: key backing must be a primitive integer, got %v", backing))
	}
}

// writeBoundsCheck emits the "if out of range" guard for a fallible
// constructor. uint64/uint sources are never negative so only need an
// upper bound; int64/int sources need both; every narrower source
// widens losslessly to int64 for a uniform two-sided check.
func writeBoundsCheck(b *builder, src keySourceType, minExpr, maxExpr string) {
	switch src.goType {
	case "uint64", "uint":
		b.line("if v > %s(%s) {", src.goType, maxExpr)
	case "int64", "int":
		b.line("if v < %s(%s) || v > %s(%s) {", src.goType, minExpr, src.goType, maxExpr)
	default:
		b.line("if int64(v) < int64(%s) || int64(v) > int64(%s) {", minExpr, maxExpr)
	}
}

// writeKeyType emits the full generated surface for one table's key
// newtype: the struct, every infallible From constructor, every
// fallible TryFrom-style constructor (returning ok bool), and for each
// fallible constructor a Checked sibling returning schema.ErrKeyOutOfRange
// in place of the bool.
func writeKeyType(b *builder, tableName string, backing schema.Kind) {
	width, signed := backingWidthSigned(backing)
	goType := goIntType(backing)
	typeName := tableName + "Key"
	minExpr, maxExpr := keyRangeExprs(backing)

	b.line("// %s is the newtype wrapping %s's primary key column.", typeName, tableName)
	b.block(fmt.Sprintf("type %s struct", typeName), func() {
		b.line("Value %s", goType)
	})
	b.blank()

	for _, src := range keySourceTypes {
		fnName := fmt.Sprintf("%sFrom%s", typeName, src.ctor)
		if infallibleSource(src, width, signed) {
			b.line("// %s converts a %s known to fit %s's range.", fnName, src.goType, goType)
			b.block(fmt.Sprintf("func %s(v %s) %s", fnName, src.goType, typeName), func() {
				b.line("return %s{Value: %s(v)}", typeName, goType)
			})
		} else {
			b.line("// %s converts a %s that may exceed %s's range; ok is false if it does.", fnName, src.goType, goType)
			b.block(fmt.Sprintf("func %s(v %s) (%s, bool)", fnName, src.goType, typeName), func() {
				writeBoundsCheck(b, src, minExpr, maxExpr)
				b.indentBlock(func() {
					b.line("return %s{}, false", typeName)
				})
				b.line("}")
				b.line("return %s{Value: %s(v)}, true", typeName, goType)
			})
			b.blank()

			checkedName := fnName + "Checked"
			b.line("// %s is %s reporting an out-of-range value as schema.ErrKeyOutOfRange.", checkedName, fnName)
			b.block(fmt.Sprintf("func %s(v %s) (%s, error)", checkedName, src.goType, typeName), func() {
				b.line("k, ok := %s(v)", fnName)
				b.line("if !ok {")
				b.indentBlock(func() {
					b.line("return %s{}, fmt.Errorf(\"%%w: %%v out of range for %s\", schema.ErrKeyOutOfRange, v)", typeName, typeName)
				})
				b.line("}")
				b.line("return k, nil")
			})
		}
		b.blank()
	}
}

// keyDecodeCall returns the constructor call a table's own Read uses to
// build a PrimaryKey/ForeignKey field's key value. readExpr yields a
// value of the field's wire (inner) Kind, which for a ForeignKey need
// not match the referenced table's key backing Kind. Widening readExpr
// to backing first, then calling backing's own exact-match constructor,
// keeps this call always infallible: a value is trivially in range for
// the Kind it's already declared to be.
func keyDecodeCall(tableName string, backing, inner schema.Kind, readExpr string) string {
	if inner != backing {
		readExpr = fmt.Sprintf("%s(%s)", goIntType(backing), readExpr)
	}
	return fmt.Sprintf("%sKeyFrom%s(%s)", tableName, keyCtorSuffix(backing), readExpr)
}
