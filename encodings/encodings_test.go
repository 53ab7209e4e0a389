package encodings

import (
	"bytes"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "UTF8", "UTF8"},
		{"dashed", "utf-8", "UTF8"},
		{"underscored", "utf_8", "UTF8"},
		{"alias unicode", "UNICODE", "UTF8"},
		{"alias koi8", "koi8", "KOI8R"},
		{"koi8-r", "koi8-r", "KOI8R"},
		{"latin dashed", "latin-1", "LATIN1"},
		{"iso alias", "ISO-8859-15", "LATIN9"},
		{"iso underscore", "iso_8859_1", "LATIN1"},
		{"alt", "alt", "WIN866"},
		{"tcvn", "TCVN", "WIN1258"},
		{"shift jis", "Shift_JIS", "SJIS"},
		{"win bare", "win", "WIN1251"},
		{"sql ascii", "sql_ascii", "SQL_ASCII"},
		{"euc jp", "euc-jp", "EUC_JP"},
		{"unknown stays squeezed", "martian-5", "MARTIAN5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	_, err := Lookup("martian-5")
	var ue *UnsupportedEncodingError
	if !errors.As(err, &ue) {
		t.Fatalf("Lookup(martian-5) error = %v, want *UnsupportedEncodingError", err)
	}
	if ue.Name != "martian-5" {
		t.Errorf("error carries name %q, want %q", ue.Name, "martian-5")
	}
}

func TestLookupDescriptors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input     string
		wantName  string
		passThru  bool
		safeASCII bool
	}{
		{"utf-8", "UTF8", true, true},
		{"SQL_ASCII", "SQL_ASCII", true, true},
		{"latin1", "LATIN1", false, true},
		{"latin9", "LATIN9", false, true},
		{"koi8", "KOI8R", false, true},
		{"euc_jp", "EUC_JP", false, true},
		{"sjis", "SJIS", false, false},
		{"big5", "BIG5", false, false},
		{"gb18030", "GB18030", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Lookup(tt.input)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.input, err)
			}
			if d.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", d.Name, tt.wantName)
			}
			if (d.Codec == nil) != tt.passThru {
				t.Errorf("Codec == nil is %v, want %v", d.Codec == nil, tt.passThru)
			}
			if d.SafeASCII != tt.safeASCII {
				t.Errorf("SafeASCII = %v, want %v", d.SafeASCII, tt.safeASCII)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		encoding string
		input    string
		want     []byte
	}{
		{"utf8 passthrough", "UTF8", "☃", []byte{0xe2, 0x98, 0x83}},
		{"latin1 ascii", "LATIN1", "hello", []byte("hello")},
		{"latin1 e acute", "LATIN1", "café", []byte{'c', 'a', 'f', 0xe9}},
		{"latin9 euro", "LATIN9", "€", []byte{0xa4}},
		{"koi8r cyrillic", "KOI8R", "Привет",
			[]byte{0xf0, 0xd2, 0xc9, 0xd7, 0xc5, 0xd4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.encoding)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			got, err := d.Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q) = % x, want % x", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	t.Parallel()
	d, err := Lookup("LATIN1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	_, err = d.Encode("abc☃def")
	var ee *EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("Encode error = %v, want *EncodingError", err)
	}
	if ee.Rune != '☃' {
		t.Errorf("offending rune = %q, want %q", ee.Rune, '☃')
	}
	if ee.Pos != 3 {
		t.Errorf("offending position = %d, want 3", ee.Pos)
	}
	if ee.Encoding != "LATIN1" {
		t.Errorf("encoding = %q, want LATIN1", ee.Encoding)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		encoding string
		text     string
	}{
		{"LATIN1", "café au lait"},
		{"KOI8R", "Привет, мир"},
		{"SJIS", "日本語"},
		{"GB18030", "中文"},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			d, err := Lookup(tt.encoding)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			raw, err := d.Encode(tt.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, err := d.Decode(raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if back != tt.text {
				t.Errorf("round trip = %q, want %q", back, tt.text)
			}
		})
	}
}
