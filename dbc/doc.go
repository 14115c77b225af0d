// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package dbc implements the runtime codec for World of Warcraft DBC
// client database files: the 20-byte header, fixed-size record decoding
// primitives, the trailing deduplicated string pool, and the localized
// string layouts used across the three client eras.
//
// Generated table packages (see the tables subpackages) build on top of
// this package; dbc itself knows nothing about any particular table's
// schema.
package dbc
