// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Dialect names one of the three client-version schema families.
type Dialect int

const (
	// DialectV1 is the vanilla client layout: 8-slot localized strings.
	DialectV1 Dialect = iota
	// DialectV2 is the Burning Crusade layout: 16-slot localized strings.
	DialectV2
	// DialectV3 is the Wrath of the Lich King layout, identical on-disk
	// shape to V2 but its own schema bundle since field sets diverge per
	// table across the two expansions.
	DialectV3
)

func (d Dialect) String() string {
	switch d {
	case DialectV1:
		return "v1"
	case DialectV2:
		return "v2"
	case DialectV3:
		return "v3"
	default:
		return "unknown"
	}
}

// minSchemaVersion is the oldest schema-bundle version this toolkit's
// generator accepts per dialect, expressed as a semver tag.
var minSchemaVersion = map[Dialect]string{
	DialectV1: "v1.0.0",
	DialectV2: "v1.0.0",
	DialectV3: "v1.1.0",
}

// Bundle groups every Table belonging to one dialect, plus the bundle's
// own schema version (set by whatever produced it — a schema loader, or
// a fixture file in this repository).
type Bundle struct {
	Dialect       Dialect
	SchemaVersion string
	Tables        map[string]*Table
}

// NewBundle constructs a Bundle from a dialect, a schema version tag,
// and the tables it contains.
func NewBundle(dialect Dialect, schemaVersion string, tables ...*Table) *Bundle {
	m := make(map[string]*Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return &Bundle{Dialect: dialect, SchemaVersion: schemaVersion, Tables: m}
}

// TableExists reports whether name is present in the bundle. The
// generator calls this to decide whether a foreign key degrades to a
// raw integer (§4.6/§4.8).
func (b *Bundle) TableExists(name string) bool {
	_, ok := b.Tables[name]
	return ok
}

// Table looks up a table by name.
func (b *Bundle) Table(name string) (*Table, error) {
	t, ok := b.Tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return t, nil
}

// CheckVersion reports an error if the bundle's SchemaVersion is older
// than the dialect's configured minimum. A malformed SchemaVersion (not
// a valid semver tag) is treated as satisfying the check — the version
// gate is advisory, not a schema validator.
func (b *Bundle) CheckVersion() error {
	min, ok := minSchemaVersion[b.Dialect]
	if !ok || !semver.IsValid(b.SchemaVersion) {
		return nil
	}
	if semver.Compare(b.SchemaVersion, min) < 0 {
		return fmt.Errorf("%w: bundle %s is below %s for dialect %s",
			ErrUnsupportedVersion, b.SchemaVersion, min, b.Dialect)
	}
	return nil
}
