// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("disk gone")
	err := NewIOError(inner)

	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(err, inner) = false, want true")
	}
}

func TestErrTruncatedWrapped(t *testing.T) {
	err := NewIOError(ErrTruncated)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("errors.Is(err, ErrTruncated) = false, want true")
	}
	if err.Kind != KindIO {
		t.Errorf("Kind = %v, want KindIO", err.Kind)
	}
}

func TestInvalidEnumMessage(t *testing.T) {
	err := NewInvalidEnum("BaseLanguage", 3)
	if err.Kind != KindInvalidEnum {
		t.Errorf("Kind = %v, want KindInvalidEnum", err.Kind)
	}
	if err.EnumName != "BaseLanguage" || err.EnumValue != 3 {
		t.Errorf("EnumName/EnumValue = %s/%d, want BaseLanguage/3", err.EnumName, err.EnumValue)
	}
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindIO:            "io",
		KindMagicMismatch: "magic mismatch",
		KindInvalidHeader: "invalid header",
		KindInvalidUTF8:   "invalid utf8",
		KindCorruptString: "corrupt string",
		KindInvalidEnum:   "invalid enum",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
