// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// FormatSource runs goimports over generated source, fixing indentation
// and pruning the import block down to what the file actually
// references — builder emits every table's import set up front, but not
// every table uses math (fallible key conversions) or dbcenum (a shared
// enum field).
func FormatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting %s: %w", filename, err)
	}
	return out, nil
}
