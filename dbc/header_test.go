// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHeaderRoundTrip(t *testing.T) {
	h := Header{
		RecordCount:     3,
		FieldCount:      5,
		RecordSize:      20,
		StringBlockSize: 12,
	}

	wire := h.Marshal()
	got, err := ParseHeader(wire[:])
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if diff := cmp.Diff(h, got); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderMagicMismatch(t *testing.T) {
	wire := Header{}.Marshal()
	wire[0] = 'X'

	_, err := ParseHeader(wire[:])
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dbcErr *Error
	if !errors.As(err, &dbcErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if dbcErr.Kind != KindMagicMismatch {
		t.Errorf("Kind = %v, want KindMagicMismatch", dbcErr.Kind)
	}
}

func TestCheckRecordSizeMismatch(t *testing.T) {
	h := Header{RecordSize: 20}
	err := CheckRecordSize(h, 24)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dbcErr *Error
	if !errors.As(err, &dbcErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if dbcErr.Kind != KindInvalidHeader || dbcErr.HeaderField != HeaderFieldRecordSize {
		t.Errorf("got Kind=%v HeaderField=%v, want InvalidHeader/RecordSize", dbcErr.Kind, dbcErr.HeaderField)
	}
	if dbcErr.Expected != 24 || dbcErr.Actual != 20 {
		t.Errorf("Expected/Actual = %d/%d, want 24/20", dbcErr.Expected, dbcErr.Actual)
	}
}

func TestCheckFieldCountMismatch(t *testing.T) {
	h := Header{FieldCount: 5}
	err := CheckFieldCount(h, 6)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dbcErr *Error
	if !errors.As(err, &dbcErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if dbcErr.HeaderField != HeaderFieldFieldCount {
		t.Errorf("HeaderField = %v, want HeaderFieldFieldCount", dbcErr.HeaderField)
	}
}

func TestCheckRecordSizeOK(t *testing.T) {
	h := Header{RecordSize: 20}
	if err := CheckRecordSize(h, 20); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
