// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocalizedStringRoundTrip(t *testing.T) {
	want := LocalizedString{
		EnGB:  "Stormwind",
		FrFR:  "Hurlevent",
		Flags: 0xff,
	}

	pool := NewStringPool()
	wire := want.Encode(pool)

	c := NewCursor(wire[:])
	got, err := ReadLocalizedString(c, pool.Bytes())
	if err != nil {
		t.Fatalf("ReadLocalizedString: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LocalizedString mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedLocalizedStringRoundTrip(t *testing.T) {
	want := ExtendedLocalizedString{
		EnGB:  "Northshire",
		RuRU:  "Nordbury",
		ItIT:  "NordBrughiera",
		Flags: 1,
	}

	pool := NewStringPool()
	wire := want.Encode(pool)

	c := NewCursor(wire[:])
	got, err := ReadExtendedLocalizedString(c, pool.Bytes())
	if err != nil {
		t.Fatalf("ReadExtendedLocalizedString: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtendedLocalizedString mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalizedStringWireSize(t *testing.T) {
	var l LocalizedString
	wire := l.Encode(NewStringPool())
	if len(wire) != 36 {
		t.Errorf("len(wire) = %d, want 36", len(wire))
	}

	var el ExtendedLocalizedString
	ewire := el.Encode(NewStringPool())
	if len(ewire) != 68 {
		t.Errorf("len(ewire) = %d, want 68", len(ewire))
	}
}
