// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package fixtures holds concrete schema bundles, one function per
// dialect, standing in for what a real deployment would load from a
// directory of XML schema descriptions. Each bundle here only declares
// the tables this repository ships generated code for; a foreign key
// pointing outside that set is expected to, and does, degrade to a raw
// integer per the generator's foreign-key rule.
package fixtures

import "github.com/wdbctools/wdbc/schema"

// Vanilla returns the V1 schema bundle: ChrRaces and CreatureDisplayInfo.
// ChrRaces.male_display/female_display are typed CreatureDisplayInfoKey
// because CreatureDisplayInfo is present in this bundle; every other
// foreign key on both tables (FactionTemplate, SoundEntries, Spell,
// CreatureType, CinematicSequences, CreatureModelData, CreatureSoundData,
// CreatureDisplayInfoExtra, UnitBlood, NPCSounds) degrades to a raw
// uint32, since none of those tables are declared here.
func Vanilla() *schema.Bundle {
	chrRaces := schema.MustNewTable("ChrRaces",
		schema.Field{Name: "id", Type: schema.PrimaryKey("ChrRaces", schema.KindU32)},
		schema.Field{Name: "flags", Type: schema.FlagOf(characterRaceFlags)},
		schema.Field{Name: "faction", Type: schema.ForeignKey("FactionTemplate", schema.KindU32)},
		schema.Field{Name: "exploration_sound", Type: schema.ForeignKey("SoundEntries", schema.KindU32)},
		schema.Field{Name: "male_display", Type: schema.ForeignKey("CreatureDisplayInfo", schema.KindU32)},
		schema.Field{Name: "female_display", Type: schema.ForeignKey("CreatureDisplayInfo", schema.KindU32)},
		schema.Field{Name: "client_prefix", Type: schema.StringRef},
		schema.Field{Name: "speed_modifier", Type: schema.Float},
		schema.Field{Name: "base_lang", Type: schema.EnumOf(baseLanguage)},
		schema.Field{Name: "creature_type", Type: schema.ForeignKey("CreatureType", schema.KindU32)},
		schema.Field{Name: "login_effect", Type: schema.ForeignKey("Spell", schema.KindU32)},
		schema.Field{Name: "unknown1", Type: schema.I32},
		schema.Field{Name: "res_sickness_spell", Type: schema.ForeignKey("Spell", schema.KindU32)},
		schema.Field{Name: "splash_sound_entry", Type: schema.ForeignKey("SoundEntries", schema.KindU32)},
		schema.Field{Name: "unknown2", Type: schema.I32},
		schema.Field{Name: "client_file_path", Type: schema.StringRef},
		schema.Field{Name: "cinematic_sequence", Type: schema.ForeignKey("CinematicSequences", schema.KindU32)},
		schema.Field{Name: "name", Type: schema.StringRefLoc},
		schema.Field{Name: "facial_hair_customisation", Type: schema.Array(schema.StringRef, 2)},
		schema.Field{Name: "hair_customisation", Type: schema.StringRef},
	)

	creatureDisplayInfo := schema.MustNewTable("CreatureDisplayInfo",
		schema.Field{Name: "id", Type: schema.PrimaryKey("CreatureDisplayInfo", schema.KindU32)},
		schema.Field{Name: "model", Type: schema.ForeignKey("CreatureModelData", schema.KindU32)},
		schema.Field{Name: "sound", Type: schema.ForeignKey("CreatureSoundData", schema.KindU32)},
		schema.Field{Name: "extended_display_info", Type: schema.ForeignKey("CreatureDisplayInfoExtra", schema.KindU32)},
		schema.Field{Name: "creature_model_scale", Type: schema.Float},
		schema.Field{Name: "creature_model_alpha", Type: schema.I32},
		schema.Field{Name: "texture_variation", Type: schema.Array(schema.StringRef, 3)},
		schema.Field{Name: "size", Type: schema.EnumOf(schema.SizeClass)},
		schema.Field{Name: "blood", Type: schema.ForeignKey("UnitBlood", schema.KindU32)},
		schema.Field{Name: "npc_sound", Type: schema.ForeignKey("NPCSounds", schema.KindU32)},
	)

	return schema.NewBundle(schema.DialectV1, "v1.0.0", chrRaces, creatureDisplayInfo)
}

// baseLanguage is ChrRaces.base_lang's definer; it isn't one of the
// cross-table shared enums, so it lives alongside this fixture rather
// than in schema's shared definers.
var baseLanguage = &schema.Definer{
	Name:    "Language",
	Backing: schema.KindU32,
	Enumerators: []schema.Enumerator{
		{Name: "Unknown0", Value: 0},
		{Name: "Unknown1", Value: 1},
		{Name: "Unknown2", Value: 2},
	},
}

// characterRaceFlags is ChrRaces.flags's definer: an open bitset, not a
// closed enum. The field that uses it is declared with schema.FlagOf,
// and that Flag kind is what gives it the generator's Flag wrapper type
// instead of a validated Read function; codegen does not read IsFlag.
var characterRaceFlags = &schema.Definer{
	Name:    "CharacterRaceFlags",
	Backing: schema.KindU32,
	IsFlag:  true,
}
