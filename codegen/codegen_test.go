// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/wdbctools/wdbc/schema"
	"github.com/wdbctools/wdbc/schema/fixtures"
)

func TestEmitPackageVanilla(t *testing.T) {
	bundle := fixtures.Vanilla()
	src, err := EmitPackage(bundle, "vanilla")
	if err != nil {
		t.Fatalf("EmitPackage: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"package vanilla",
		"type ChrRaces struct",
		"type CreatureDisplayInfo struct",
		"type ChrRacesKey struct",
		"type CreatureDisplayInfoKey struct",
		"func ReadChrRaces(record []byte, block []byte) (ChrRaces, error)",
		"func ReadCreatureDisplayInfo(record []byte, block []byte) (CreatureDisplayInfo, error)",
		"func ReadChrRacesTable(data []byte) (ChrRacesTable, error)",
		"func (t ChrRacesTable) WriteTo(w io.Writer) (int64, error)",
		"func (t *ChrRacesTable) Get(key ChrRacesKey) (*ChrRaces, bool)",
		// male_display/female_display reference CreatureDisplayInfo, present
		// in this bundle, so they must stay typed rather than degrade.
		"CreatureDisplayInfoKeyFromUint32(c.U32())",
		// flags exercises the Flag wrapper type, not a validated enum.
		"type CharacterRaceFlags uint32",
		"func NewCharacterRaceFlags(v uint32) CharacterRaceFlags",
		"func (f CharacterRaceFlags) Has(bit uint32) bool",
		"Flags CharacterRaceFlags",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated vanilla package missing %q", want)
		}
	}

	// faction/exploration_sound/login_effect/... reference tables absent
	// from this bundle and must degrade to a raw integer, never a key type.
	if strings.Contains(out, "FactionTemplateKey") {
		t.Error("FactionTemplate is absent from the bundle; must not get a key type reference")
	}
}

func TestEmitPackageTBCSelfReferencingForeignKey(t *testing.T) {
	bundle := fixtures.TBC()
	src, err := EmitPackage(bundle, "tbc")
	if err != nil {
		t.Fatalf("EmitPackage: %v", err)
	}
	out := string(src)

	if !strings.Contains(out, "type AreaTableKey struct") {
		t.Error("expected AreaTableKey to be generated")
	}
	// parent_area_id self-references AreaTable, present in its own bundle.
	if !strings.Contains(out, "AreaTableKeyFromInt32(c.I32())") {
		t.Error("expected parent_area_id to decode via the typed AreaTableKey constructor")
	}
}

func TestEmitPackageWrathExtendedLocalizedString(t *testing.T) {
	bundle := fixtures.Wrath()
	src, err := EmitPackage(bundle, "wrath")
	if err != nil {
		t.Fatalf("EmitPackage: %v", err)
	}
	out := string(src)

	if !strings.Contains(out, "MapNameLang dbc.ExtendedLocalizedString") {
		t.Error("expected MapNameLang field typed as dbc.ExtendedLocalizedString")
	}
	if !strings.Contains(out, "type MapKey struct") {
		t.Error("expected MapKey to be generated")
	}
}

func TestEmitDefinersSkipsSharedEnums(t *testing.T) {
	b := newBuilder()
	table := schema.MustNewTable("Widget",
		schema.Field{Name: "id", Type: schema.PrimaryKey("Widget", schema.KindU32)},
		schema.Field{Name: "size", Type: schema.EnumOf(schema.SizeClass)},
	)
	emitDefiners(b, table)
	out := string(b.bytes())
	if strings.Contains(out, "type SizeClass") {
		t.Error("shared SizeClass definer must not be locally emitted; it lives in dbcenum")
	}
}

func TestEmitDefinersEmitsTableLocalEnum(t *testing.T) {
	localDefiner := &schema.Definer{
		Name:    "Language",
		Backing: schema.KindU32,
		Enumerators: []schema.Enumerator{
			{Name: "Unknown0", Value: 0},
			{Name: "Unknown1", Value: 1},
		},
	}
	table := schema.MustNewTable("ChrRaces",
		schema.Field{Name: "id", Type: schema.PrimaryKey("ChrRaces", schema.KindU32)},
		schema.Field{Name: "base_lang", Type: schema.EnumOf(localDefiner)},
	)
	b := newBuilder()
	emitDefiners(b, table)
	out := string(b.bytes())

	for _, want := range []string{
		"type Language uint32",
		"LanguageUnknown0 Language = 0",
		"LanguageUnknown1 Language = 1",
		"func ReadLanguage(v uint32) (Language, error)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated local enum missing %q", want)
		}
	}
}
