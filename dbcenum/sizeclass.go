// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbcenum

import "github.com/wdbctools/wdbc/dbc"

// SizeClass buckets a creature's collision/visual scale, shared by every
// creature-display-adjacent table. -1 ("None") means the display has no
// size classification rather than an unset zero value.
type SizeClass int32

const (
	SizeClassNone     SizeClass = -1
	SizeClassSmall    SizeClass = 0
	SizeClassMedium   SizeClass = 1
	SizeClassLarge    SizeClass = 2
	SizeClassGiant    SizeClass = 3
	SizeClassColossal SizeClass = 4
)

func (s SizeClass) String() string {
	switch s {
	case SizeClassNone:
		return "None"
	case SizeClassSmall:
		return "Small"
	case SizeClassMedium:
		return "Medium"
	case SizeClassLarge:
		return "Large"
	case SizeClassGiant:
		return "Giant"
	case SizeClassColossal:
		return "Colossal"
	default:
		return "SizeClass(unknown)"
	}
}

// ReadSizeClass decodes a raw i32 column value, reporting a *dbc.Error
// of kind InvalidEnum for any discriminant outside {-1 ... 4}.
func ReadSizeClass(v int32) (SizeClass, error) {
	switch SizeClass(v) {
	case SizeClassNone, SizeClassSmall, SizeClassMedium, SizeClassLarge, SizeClassGiant, SizeClassColossal:
		return SizeClass(v), nil
	}
	return 0, dbc.NewInvalidEnum("SizeClass", int64(v))
}
