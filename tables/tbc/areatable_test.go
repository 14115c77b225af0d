// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package tbc

import (
	"errors"
	"testing"

	"github.com/wdbctools/wdbc/dbc"
)

func TestReadAreaTableTableShortHeaderReturnsIOError(t *testing.T) {
	_, err := ReadAreaTableTable([]byte("WDBC"))
	if err == nil {
		t.Fatal("ReadAreaTableTable(short header) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadAreaTableTableTruncatedRecordsReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     1,
		FieldCount:      AreaTableFieldCount,
		RecordSize:      AreaTableRowSize,
		StringBlockSize: 0,
	}
	wire := header.Marshal()

	_, err := ReadAreaTableTable(wire[:])
	if err == nil {
		t.Fatal("ReadAreaTableTable(truncated records) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadAreaTableTableTruncatedStringBlockReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     0,
		FieldCount:      AreaTableFieldCount,
		RecordSize:      AreaTableRowSize,
		StringBlockSize: 64,
	}
	wire := header.Marshal()

	_, err := ReadAreaTableTable(wire[:])
	if err == nil {
		t.Fatal("ReadAreaTableTable(truncated string block) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}
