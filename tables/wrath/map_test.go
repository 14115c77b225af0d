// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wrath

import (
	"errors"
	"testing"

	"github.com/wdbctools/wdbc/dbc"
)

func TestReadMapTableShortHeaderReturnsIOError(t *testing.T) {
	_, err := ReadMapTable([]byte("WDBC"))
	if err == nil {
		t.Fatal("ReadMapTable(short header) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadMapTableTruncatedRecordsReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     1,
		FieldCount:      MapFieldCount,
		RecordSize:      MapRowSize,
		StringBlockSize: 0,
	}
	wire := header.Marshal()

	_, err := ReadMapTable(wire[:])
	if err == nil {
		t.Fatal("ReadMapTable(truncated records) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadMapTableTruncatedStringBlockReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     0,
		FieldCount:      MapFieldCount,
		RecordSize:      MapRowSize,
		StringBlockSize: 64,
	}
	wire := header.Marshal()

	_, err := ReadMapTable(wire[:])
	if err == nil {
		t.Fatal("ReadMapTable(truncated string block) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}
