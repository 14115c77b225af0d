// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"testing"
)

func TestBundleTableExists(t *testing.T) {
	widget := MustNewTable("Widget", Field{Name: "id", Type: PrimaryKey("Widget", KindU32)})
	b := NewBundle(DialectV1, "v1.0.0", widget)

	if !b.TableExists("Widget") {
		t.Error("TableExists(Widget) = false, want true")
	}
	if b.TableExists("Gadget") {
		t.Error("TableExists(Gadget) = true, want false")
	}
}

func TestBundleTableNotFound(t *testing.T) {
	b := NewBundle(DialectV1, "v1.0.0")
	_, err := b.Table("Missing")
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestBundleCheckVersion(t *testing.T) {
	b := NewBundle(DialectV3, "v1.0.0")
	if err := b.CheckVersion(); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}

	ok := NewBundle(DialectV3, "v1.2.0")
	if err := ok.CheckVersion(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDialectString(t *testing.T) {
	cases := map[Dialect]string{DialectV1: "v1", DialectV2: "v2", DialectV3: "v3"}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("Dialect(%d).String() = %q, want %q", d, got, want)
		}
	}
}
