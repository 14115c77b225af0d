// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/wdbctools/wdbc/schema"
)

// WriteFiles emits one Go source file per dialect in bundles into dir,
// named <dialect>.go, each written via a rename-after-write so a crash
// mid-generation never leaves a half-written source file next to the
// previous run's output. runGoimports controls whether FormatSource
// runs over the emitted source before it's written; skipping it is
// useful when golang.org/x/tools/imports isn't available in the build
// environment doing the generation.
func WriteFiles(dir string, bundles map[string]*schema.Bundle, runGoimports bool) error {
	for packageName, bundle := range bundles {
		src, err := EmitPackage(bundle, packageName)
		if err != nil {
			return fmt.Errorf("codegen: emit %s: %w", packageName, err)
		}

		path := filepath.Join(dir, packageName+".go")

		if runGoimports {
			formatted, err := FormatSource(path, src)
			if err != nil {
				return err
			}
			src = formatted
		}

		if err := atomic.WriteFile(path, bytes.NewReader(src)); err != nil {
			return fmt.Errorf("codegen: write %s: %w", path, err)
		}
	}
	return nil
}
