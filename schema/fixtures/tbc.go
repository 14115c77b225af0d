// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fixtures

import "github.com/wdbctools/wdbc/schema"

// TBC returns the V2 schema bundle: AreaTable only. parent_area_id is a
// typed self-reference (AreaTable is present in this bundle); every
// other foreign key (Map, SoundProviderPreferences, SoundAmbience,
// ZoneMusic, ZoneIntroMusicTable) degrades to a raw integer.
func TBC() *schema.Bundle {
	areaTable := schema.MustNewTable("AreaTable",
		schema.Field{Name: "id", Type: schema.PrimaryKey("AreaTable", schema.KindI32)},
		schema.Field{Name: "continent_id", Type: schema.ForeignKey("Map", schema.KindI32)},
		schema.Field{Name: "parent_area_id", Type: schema.ForeignKey("AreaTable", schema.KindI32)},
		schema.Field{Name: "area_bit", Type: schema.I32},
		schema.Field{Name: "flags", Type: schema.I32},
		schema.Field{Name: "sound_provider_pref", Type: schema.ForeignKey("SoundProviderPreferences", schema.KindI32)},
		schema.Field{Name: "sound_provider_pref_underwater", Type: schema.ForeignKey("SoundProviderPreferences", schema.KindI32)},
		schema.Field{Name: "ambience_id", Type: schema.ForeignKey("SoundAmbience", schema.KindI32)},
		schema.Field{Name: "zone_music", Type: schema.ForeignKey("ZoneMusic", schema.KindI32)},
		schema.Field{Name: "intro_sound", Type: schema.ForeignKey("ZoneIntroMusicTable", schema.KindI32)},
		schema.Field{Name: "exploration_level", Type: schema.I32},
		schema.Field{Name: "area_name_lang", Type: schema.ExtendedStringRefLoc},
		schema.Field{Name: "faction_group_mask", Type: schema.I32},
		schema.Field{Name: "liquid_type_id", Type: schema.Array(schema.I32, 4)},
		schema.Field{Name: "min_elevation", Type: schema.Float},
		schema.Field{Name: "ambient_multiplier", Type: schema.Float},
	)

	return schema.NewBundle(schema.DialectV2, "v1.0.0", areaTable)
}
