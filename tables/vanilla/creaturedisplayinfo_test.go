// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vanilla

import (
	"errors"
	"testing"

	"github.com/wdbctools/wdbc/dbc"
)

func TestReadCreatureDisplayInfoTableShortHeaderReturnsIOError(t *testing.T) {
	_, err := ReadCreatureDisplayInfoTable([]byte("WDBC"))
	if err == nil {
		t.Fatal("ReadCreatureDisplayInfoTable(short header) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadCreatureDisplayInfoTableTruncatedRecordsReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     1,
		FieldCount:      CreatureDisplayInfoFieldCount,
		RecordSize:      CreatureDisplayInfoRowSize,
		StringBlockSize: 0,
	}
	wire := header.Marshal()

	_, err := ReadCreatureDisplayInfoTable(wire[:])
	if err == nil {
		t.Fatal("ReadCreatureDisplayInfoTable(truncated records) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}

func TestReadCreatureDisplayInfoTableTruncatedStringBlockReturnsIOError(t *testing.T) {
	header := dbc.Header{
		RecordCount:     0,
		FieldCount:      CreatureDisplayInfoFieldCount,
		RecordSize:      CreatureDisplayInfoRowSize,
		StringBlockSize: 64,
	}
	wire := header.Marshal()

	_, err := ReadCreatureDisplayInfoTable(wire[:])
	if err == nil {
		t.Fatal("ReadCreatureDisplayInfoTable(truncated string block) returned nil error")
	}
	var dbcErr *dbc.Error
	if !errors.As(err, &dbcErr) || dbcErr.Kind != dbc.KindIO {
		t.Errorf("err = %v, want KindIO", err)
	}
}
