// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbcenum

import "github.com/wdbctools/wdbc/dbc"

// Gender is the two-valued discriminant shared by every table with a
// character/creature gender column.
type Gender uint32

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Gender(unknown)"
	}
}

// ReadGender decodes a raw u32 column value, reporting a *dbc.Error of
// kind InvalidEnum for any discriminant outside {0, 1}.
func ReadGender(v uint32) (Gender, error) {
	switch Gender(v) {
	case GenderMale, GenderFemale:
		return Gender(v), nil
	}
	return 0, dbc.NewInvalidEnum("Gender", int64(v))
}
