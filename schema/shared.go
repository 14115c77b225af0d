// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

// Gender and SizeClass are hoisted out of any single table because many
// tables across all three dialects reference them; a fixture declares
// a field against one of these instead of redeclaring an identical
// per-table Definer. The generator recognises them by name and imports
// the shared dbcenum type rather than emit a table-local one;
// UsesSharedEnum reports whether a table references one of them.
var (
	Gender = &Definer{
		Name:    "Gender",
		Backing: KindU32,
		Enumerators: []Enumerator{
			{Name: "Male", Value: 0},
			{Name: "Female", Value: 1},
		},
	}

	SizeClass = &Definer{
		Name:    "SizeClass",
		Backing: KindI32,
		Enumerators: []Enumerator{
			{Name: "None", Value: -1},
			{Name: "Small", Value: 0},
			{Name: "Medium", Value: 1},
			{Name: "Large", Value: 2},
			{Name: "Giant", Value: 3},
			{Name: "Colossal", Value: 4},
		},
	}
)
