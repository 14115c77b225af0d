// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// LocalizedString is the V1 (vanilla) localized-string value: eight
// language slots plus a flag word, stored on disk as nine consecutive
// 32-bit offsets into the string block.
type LocalizedString struct {
	EnGB  string
	KoKR  string
	FrFR  string
	DeDE  string
	EnCN  string
	EnTW  string
	EsES  string
	EsMX  string
	Flags uint32
}

func (l LocalizedString) slots() [8]string {
	return [8]string{l.EnGB, l.KoKR, l.FrFR, l.DeDE, l.EnCN, l.EnTW, l.EsES, l.EsMX}
}

// ReadLocalizedString reads nine consecutive 32-bit offsets from c and
// resolves the first eight against block; the ninth word is the flags.
func ReadLocalizedString(c *Cursor, block []byte) (LocalizedString, error) {
	var offsets [8]uint32
	for i := range offsets {
		offsets[i] = c.U32()
	}
	flags := c.U32()

	var out LocalizedString
	slots := [8]*string{&out.EnGB, &out.KoKR, &out.FrFR, &out.DeDE, &out.EnCN, &out.EnTW, &out.EsES, &out.EsMX}
	for i, off := range offsets {
		s, err := ResolveString(block, off)
		if err != nil {
			return LocalizedString{}, err
		}
		*slots[i] = s
	}
	out.Flags = flags
	return out, nil
}

// Encode interns each non-empty slot in pool and returns the 36-byte wire
// form (eight 32-bit offsets followed by the flag word).
func (l LocalizedString) Encode(pool *StringPool) [36]byte {
	var out [36]byte
	slots := l.slots()
	for i, s := range slots {
		off := pool.Intern(s)
		b := PutU32(nil, off)
		copy(out[i*4:i*4+4], b)
	}
	b := PutU32(nil, l.Flags)
	copy(out[32:36], b)
	return out
}

// ExtendedLocalizedString is the V2/V3 (tbc/wrath) localized-string value:
// sixteen language slots plus a flag word, stored on disk as seventeen
// consecutive 32-bit offsets.
type ExtendedLocalizedString struct {
	EnGB      string
	KoKR      string
	FrFR      string
	DeDE      string
	EnCN      string
	EnTW      string
	EsES      string
	EsMX      string
	RuRU      string
	JaJP      string
	PtPT      string
	ItIT      string
	Unknown12 string
	Unknown13 string
	Unknown14 string
	Unknown15 string
	Flags     uint32
}

func (l ExtendedLocalizedString) slots() [16]string {
	return [16]string{
		l.EnGB, l.KoKR, l.FrFR, l.DeDE, l.EnCN, l.EnTW, l.EsES, l.EsMX,
		l.RuRU, l.JaJP, l.PtPT, l.ItIT, l.Unknown12, l.Unknown13, l.Unknown14, l.Unknown15,
	}
}

// ReadExtendedLocalizedString reads seventeen consecutive 32-bit offsets
// from c and resolves the first sixteen against block; the seventeenth
// word is the flags.
func ReadExtendedLocalizedString(c *Cursor, block []byte) (ExtendedLocalizedString, error) {
	var offsets [16]uint32
	for i := range offsets {
		offsets[i] = c.U32()
	}
	flags := c.U32()

	var out ExtendedLocalizedString
	slots := [16]*string{
		&out.EnGB, &out.KoKR, &out.FrFR, &out.DeDE, &out.EnCN, &out.EnTW, &out.EsES, &out.EsMX,
		&out.RuRU, &out.JaJP, &out.PtPT, &out.ItIT, &out.Unknown12, &out.Unknown13, &out.Unknown14, &out.Unknown15,
	}
	for i, off := range offsets {
		s, err := ResolveString(block, off)
		if err != nil {
			return ExtendedLocalizedString{}, err
		}
		*slots[i] = s
	}
	out.Flags = flags
	return out, nil
}

// Encode interns each non-empty slot in pool and returns the 68-byte wire
// form (sixteen 32-bit offsets followed by the flag word).
func (l ExtendedLocalizedString) Encode(pool *StringPool) [68]byte {
	var out [68]byte
	slots := l.slots()
	for i, s := range slots {
		off := pool.Intern(s)
		b := PutU32(nil, off)
		copy(out[i*4:i*4+4], b)
	}
	b := PutU32(nil, l.Flags)
	copy(out[64:68], b)
	return out
}
