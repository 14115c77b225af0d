// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package dbcenum holds the runtime Go types for the closed discriminant
// sets shared across more than one table (Gender, SizeClass). These are
// distinct from schema.Gender/schema.SizeClass, which describe the same
// enums for the schema model the code generator consumes — dbcenum is
// what generated table code actually decodes into. A table-local enum
// (one used by only a single table) gets its own type generated
// alongside that table instead of living here.
package dbcenum
