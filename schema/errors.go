// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import "errors"

// ErrTableNotFound is returned when a bundle is asked for a table it
// does not declare.
var ErrTableNotFound = errors.New("schema: table not found")

// ErrKeyOutOfRange is returned by a generated key type's checked
// conversion when the source integer does not fit the key's backing width.
var ErrKeyOutOfRange = errors.New("schema: key value out of range")

// ErrDuplicateField is returned when a table declares two fields with
// the same name.
var ErrDuplicateField = errors.New("schema: duplicate field name")

// ErrMultiplePrimaryKeys is returned when a table declares more than one
// primary-key field.
var ErrMultiplePrimaryKeys = errors.New("schema: table declares more than one primary key")

// ErrUnsupportedVersion is returned by Bundle.CheckVersion when the
// bundle's declared schema version is older than the dialect's minimum.
var ErrUnsupportedVersion = errors.New("schema: schema version below dialect minimum")
