// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fixtures

import "github.com/wdbctools/wdbc/schema"

// Wrath returns the V3 schema bundle: Map only. corpse_map_id is a typed
// self-reference (Map is present in this bundle); area_table_id and
// loading_screen_id (AreaTable, LoadingScreens) degrade to raw integers
// since neither is declared in this bundle.
func Wrath() *schema.Bundle {
	mapTable := schema.MustNewTable("Map",
		schema.Field{Name: "id", Type: schema.PrimaryKey("Map", schema.KindI32)},
		schema.Field{Name: "directory", Type: schema.StringRef},
		schema.Field{Name: "instance_type", Type: schema.I32},
		schema.Field{Name: "flags", Type: schema.I32},
		schema.Field{Name: "p_v_p", Type: schema.I32},
		schema.Field{Name: "map_name_lang", Type: schema.ExtendedStringRefLoc},
		schema.Field{Name: "area_table_id", Type: schema.ForeignKey("AreaTable", schema.KindI32)},
		schema.Field{Name: "map_description0_lang", Type: schema.ExtendedStringRefLoc},
		schema.Field{Name: "map_description1_lang", Type: schema.ExtendedStringRefLoc},
		schema.Field{Name: "loading_screen_id", Type: schema.ForeignKey("LoadingScreens", schema.KindI32)},
		schema.Field{Name: "minimap_icon_scale", Type: schema.Float},
		schema.Field{Name: "corpse_map_id", Type: schema.ForeignKey("Map", schema.KindI32)},
		schema.Field{Name: "corpse", Type: schema.Array(schema.Float, 2)},
		schema.Field{Name: "time_of_day_override", Type: schema.I32},
		schema.Field{Name: "expansion_id", Type: schema.I32},
		schema.Field{Name: "raid_offset", Type: schema.I32},
		schema.Field{Name: "max_players", Type: schema.I32},
	)

	return schema.NewBundle(schema.DialectV3, "v1.1.0", mapTable)
}
