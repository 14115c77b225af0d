// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package wrath holds the generated row types, key newtypes, and
// table readers for the Wrath of the Lich King client's DBC dialect.
// It shares tbc's 16-slot ExtendedLocalizedString layout but targets
// a distinct minimum schema version. Each file here is a hand
// transcription of what wdbc/codegen emits for the wrath schema bundle,
// split per table; the statement-level code and comments do not match
// the generator's output line for line. See
// dbc.MappedFile and dbc.TableMeta for the underlying wire format
// and file-handling these readers build on.
package wrath
