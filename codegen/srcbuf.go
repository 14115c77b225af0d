// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"bytes"
	"fmt"
)

// builder accumulates generated Go source text line by line, tracking
// indentation depth so callers don't have to. It deliberately emits
// unformatted (but syntactically valid) source — FormatSource runs
// goimports over the result before it's written to disk.
type builder struct {
	buf    bytes.Buffer
	indent int
}

func newBuilder() *builder { return &builder{} }

func (b *builder) line(format string, args ...interface{}) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("\t")
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteString("\n")
}

func (b *builder) blank() { b.buf.WriteString("\n") }

// block opens header followed by " {", runs body at one deeper
// indentation level, then closes with "}".
func (b *builder) block(header string, body func()) {
	b.line("%s {", header)
	b.indent++
	body()
	b.indent--
	b.line("}")
}

func (b *builder) bytes() []byte { return b.buf.Bytes() }
