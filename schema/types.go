// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package schema describes the type algebra and table model the code
// generator consumes: the sum of primitive/array/key/enum/flag field
// types, and the table-level aggregates (record size, field count,
// foreign-key set) computed over them.
package schema

import "fmt"

// Kind identifies one variant of the field type algebra.
type Kind int

const (
	KindI8 Kind = iota
	KindI16
	KindI32
	KindU8
	KindU16
	KindU32
	KindFloat
	KindBool
	KindBool32
	KindStringRef
	KindStringRefLoc
	KindExtendedStringRefLoc
	KindArray
	KindPrimaryKey
	KindForeignKey
	KindEnum
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindBool32:
		return "bool32"
	case KindStringRef:
		return "string_ref"
	case KindStringRefLoc:
		return "string_ref_loc"
	case KindExtendedStringRefLoc:
		return "string_ref_loc (extended)"
	case KindArray:
		return "array"
	case KindPrimaryKey:
		return "primary_key"
	case KindForeignKey:
		return "foreign_key"
	case KindEnum:
		return "enum"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// isIntegerKind reports whether k is a bare integer primitive, the only
// valid backing kind for Enum/Flag and inner kind for PrimaryKey/ForeignKey.
func isIntegerKind(k Kind) bool {
	switch k {
	case KindI8, KindI16, KindI32, KindU8, KindU16, KindU32:
		return true
	default:
		return false
	}
}

// Enumerator is one named discriminant of a Definer.
type Enumerator struct {
	Name  string
	Value int64
}

// Definer declares an enum (closed discriminant set) or a flag (open
// bitset), each backed by a primitive integer width.
type Definer struct {
	Name        string
	Backing     Kind
	IsFlag      bool
	Enumerators []Enumerator
}

// Type is the field type algebra's sum type. Only the fields relevant to
// Kind are populated; see the per-Kind comments below.
type Type struct {
	Kind Kind

	// Elem is the element type for KindArray, and the inner primitive
	// type for KindPrimaryKey/KindForeignKey.
	Elem *Type

	// Len is the element count for KindArray.
	Len int

	// Table names the owning table (KindPrimaryKey) or referenced table
	// (KindForeignKey).
	Table string

	// Definer backs KindEnum/KindFlag.
	Definer *Definer
}

// Size returns the type's on-disk byte size (§3's size table).
func (t Type) Size() uint32 {
	switch t.Kind {
	case KindI8, KindU8, KindBool:
		return 1
	case KindI16, KindU16:
		return 2
	case KindI32, KindU32, KindFloat, KindBool32, KindStringRef:
		return 4
	case KindStringRefLoc:
		return 36
	case KindExtendedStringRefLoc:
		return 68
	case KindPrimaryKey, KindForeignKey:
		return t.Elem.Size()
	case KindEnum, KindFlag:
		return Type{Kind: t.Definer.Backing}.Size()
	case KindArray:
		return uint32(t.Len) * t.Elem.Size()
	default:
		panic(fmt.Sprintf("schema: Size: unhandled kind %v", t.Kind))
	}
}

// FieldCount returns the type's contribution to a table's declared
// field count (§3's field-count column).
func (t Type) FieldCount() uint32 {
	switch t.Kind {
	case KindStringRefLoc:
		return 9
	case KindExtendedStringRefLoc:
		return 17
	case KindArray:
		return uint32(t.Len)
	default:
		return 1
	}
}

// Describe renders the type the way the generator documents it above a
// field's decode/encode statement, e.g. "foreign_key (FactionTemplate)
// u32" or "u32[4]".
func (t Type) Describe() string {
	switch t.Kind {
	case KindPrimaryKey:
		return fmt.Sprintf("primary_key (%s) %s", t.Table, t.Elem.Kind)
	case KindForeignKey:
		return fmt.Sprintf("foreign_key (%s) %s", t.Table, t.Elem.Kind)
	case KindEnum, KindFlag:
		return t.Definer.Name
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Elem.Describe(), t.Len)
	default:
		return t.Kind.String()
	}
}

// IsString reports whether t is one of the three string-bearing kinds.
func (t Type) IsString() bool {
	switch t.Kind {
	case KindStringRef, KindStringRefLoc, KindExtendedStringRefLoc:
		return true
	default:
		return false
	}
}

// Validate checks the structural invariants a Type must hold regardless
// of which table declares it (inner/backing kinds are primitive
// integers, arrays don't nest arrays or localized strings).
func (t Type) Validate() error {
	switch t.Kind {
	case KindPrimaryKey, KindForeignKey:
		if t.Elem == nil || !isIntegerKind(t.Elem.Kind) {
			return fmt.Errorf("schema: %s inner type must be a primitive integer", t.Kind)
		}
	case KindEnum, KindFlag:
		if t.Definer == nil || !isIntegerKind(t.Definer.Backing) {
			return fmt.Errorf("schema: %s backing type must be a primitive integer", t.Kind)
		}
	case KindArray:
		if t.Elem == nil {
			return fmt.Errorf("schema: array element type missing")
		}
		switch t.Elem.Kind {
		case KindArray, KindStringRefLoc, KindExtendedStringRefLoc:
			return fmt.Errorf("schema: array of %s is not supported", t.Elem.Kind)
		}
	}
	return nil
}

// PrimaryKey builds a PrimaryKey{table, inner} type.
func PrimaryKey(table string, inner Kind) Type {
	return Type{Kind: KindPrimaryKey, Table: table, Elem: &Type{Kind: inner}}
}

// ForeignKey builds a ForeignKey{table, inner} type.
func ForeignKey(table string, inner Kind) Type {
	return Type{Kind: KindForeignKey, Table: table, Elem: &Type{Kind: inner}}
}

// Array builds an Array{elem, n} type.
func Array(elem Type, n int) Type {
	return Type{Kind: KindArray, Elem: &elem, Len: n}
}

// EnumOf builds an Enum{definer} type.
func EnumOf(d *Definer) Type {
	return Type{Kind: KindEnum, Definer: d}
}

// FlagOf builds a Flag{definer} type.
func FlagOf(d *Definer) Type {
	return Type{Kind: KindFlag, Definer: d}
}

// Simple, argument-free constructors for the primitive kinds.
var (
	I8                   = Type{Kind: KindI8}
	I16                  = Type{Kind: KindI16}
	I32                  = Type{Kind: KindI32}
	U8                   = Type{Kind: KindU8}
	U16                  = Type{Kind: KindU16}
	U32                  = Type{Kind: KindU32}
	Float                = Type{Kind: KindFloat}
	Bool                 = Type{Kind: KindBool}
	Bool32               = Type{Kind: KindBool32}
	StringRef            = Type{Kind: KindStringRef}
	StringRefLoc         = Type{Kind: KindStringRefLoc}
	ExtendedStringRefLoc = Type{Kind: KindExtendedStringRefLoc}
)
