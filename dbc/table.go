// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"bytes"
	"hash/crc32"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/natefinch/atomic"
	"github.com/stephens2424/writerset"

	"github.com/wdbctools/wdbc/internal/xlog"
)

// TableMeta is implemented by every generated table type. It exposes the
// three schema-derived constants a read/write pair is checked against.
type TableMeta interface {
	Filename() string
	FieldCount() int
	RowSize() int
}

// Options holds read-path settings. A nil *Options is equivalent to the
// zero value: no logger, strict mode. The ReadXxxTable functions in
// tables/{vanilla,tbc,wrath} take no Options.
type Options struct {
	// Logger is the diagnostic sink; nil means silent.
	Logger xlog.Logger

	// Fast skips anomaly-style diagnostic logging of the row loop. It
	// never changes what Read accepts or rejects.
	Fast bool
}

func (o *Options) logger() *xlog.Helper {
	if o == nil {
		return xlog.NewHelper(nil)
	}
	return xlog.NewHelper(o.Logger)
}

// MappedFile is a read-only memory-mapped DBC file. Opening large tables
// this way avoids copying the whole file into the Go heap before decoding
// it, the same tradeoff the teacher library makes for PE images.
type MappedFile struct {
	data mmap.MMap
	f    *os.File
}

// Open memory-maps path read-only.
func Open(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &MappedFile{data: data, f: f}, nil
}

// Bytes exposes the mapped contents. The slice is only valid until Close.
func (m *MappedFile) Bytes() []byte { return m.data }

// Close unmaps the file and closes the underlying descriptor.
func (m *MappedFile) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.f.Close()
		return err
	}
	return m.f.Close()
}

// WriteFile serializes w and writes it to path atomically: the full
// contents land in a temporary file first, which is then renamed over
// path, so a crash mid-write never leaves a truncated table on disk.
func WriteFile(path string, w io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

// WriteTee serializes w to dst while computing a CRC-32 checksum of the
// same bytes in one pass, fanning the write out to both destinations
// through a writerset.WriterSet instead of buffering twice.
func WriteTee(dst io.Writer, w io.WriterTo) (checksum uint32, n int64, err error) {
	sum := crc32.NewIEEE()

	set := writerset.New()
	set.Add(dst)
	set.Add(sum)

	n, err = w.WriteTo(set)
	if err != nil {
		return 0, n, err
	}
	return sum.Sum32(), n, nil
}
