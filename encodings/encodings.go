// Package encodings maps PostgreSQL client encoding names to the codec and
// escaping rules needed to render values in that encoding.
package encodings

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Descriptor holds the rules needed to encode and escape text for one
// client encoding.
type Descriptor struct {
	// Name is the canonical PostgreSQL encoding name, e.g. "LATIN1".
	Name string

	// Codec converts between UTF-8 and the client encoding. It is nil for
	// encodings where Go strings pass through unchanged (UTF8, SQL_ASCII).
	Codec encoding.Encoding

	// SafeASCII reports whether bytes below 0x80 never occur inside a
	// multi-byte character. When false (SJIS, BIG5, GBK, GB18030, UHC),
	// byte-level escaping is unsafe: a trailing byte can coincide with
	// quote or backslash.
	SafeASCII bool
}

// UnsupportedEncodingError is returned when an encoding name does not
// resolve to a registered client encoding.
type UnsupportedEncodingError struct {
	Name string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported client encoding: %q", e.Name)
}

// EncodingError is returned when a character cannot be represented in the
// target client encoding.
type EncodingError struct {
	// Encoding is the canonical name of the target encoding.
	Encoding string

	// Rune is the offending character, 0 if it could not be pinpointed.
	Rune rune

	// Pos is the byte offset of Rune in the source text, -1 if unknown.
	Pos int
}

func (e *EncodingError) Error() string {
	if e.Rune != 0 {
		return fmt.Sprintf("cannot encode %q at byte %d in client encoding %s", e.Rune, e.Pos, e.Encoding)
	}
	return fmt.Sprintf("cannot encode text in client encoding %s", e.Encoding)
}

// registry maps canonical encoding names to descriptors. Populated once in
// init and read-only afterwards, so unsynchronised concurrent reads are safe.
var registry = map[string]*Descriptor{}

// aliases maps a squeezed (uppercased, separator-free) name to the
// canonical name it resolves to.
var aliases = map[string]string{}

func init() {
	passthrough := []string{"UTF8", "SQL_ASCII"}
	for _, name := range passthrough {
		register(&Descriptor{Name: name, SafeASCII: true})
	}

	singleByte := map[string]encoding.Encoding{
		"LATIN1":     charmap.ISO8859_1,
		"LATIN2":     charmap.ISO8859_2,
		"LATIN3":     charmap.ISO8859_3,
		"LATIN4":     charmap.ISO8859_4,
		"LATIN5":     charmap.ISO8859_9,
		"LATIN6":     charmap.ISO8859_10,
		"LATIN7":     charmap.ISO8859_13,
		"LATIN8":     charmap.ISO8859_14,
		"LATIN9":     charmap.ISO8859_15,
		"LATIN10":    charmap.ISO8859_16,
		"ISO_8859_5": charmap.ISO8859_5,
		"ISO_8859_6": charmap.ISO8859_6,
		"ISO_8859_7": charmap.ISO8859_7,
		"ISO_8859_8": charmap.ISO8859_8,
		"KOI8R":      charmap.KOI8R,
		"KOI8U":      charmap.KOI8U,
		"WIN866":     charmap.CodePage866,
		"WIN874":     charmap.Windows874,
		"WIN1250":    charmap.Windows1250,
		"WIN1251":    charmap.Windows1251,
		"WIN1252":    charmap.Windows1252,
		"WIN1253":    charmap.Windows1253,
		"WIN1254":    charmap.Windows1254,
		"WIN1255":    charmap.Windows1255,
		"WIN1256":    charmap.Windows1256,
		"WIN1257":    charmap.Windows1257,
		"WIN1258":    charmap.Windows1258,
	}
	for name, codec := range singleByte {
		register(&Descriptor{Name: name, Codec: codec, SafeASCII: true})
	}

	multiByteSafe := map[string]encoding.Encoding{
		"EUC_JP": japanese.EUCJP,
		"EUC_KR": korean.EUCKR,
	}
	for name, codec := range multiByteSafe {
		register(&Descriptor{Name: name, Codec: codec, SafeASCII: true})
	}

	// Client-only encodings where the second byte of a character can
	// collide with ASCII backslash or quote.
	multiByteUnsafe := map[string]encoding.Encoding{
		"SJIS":    japanese.ShiftJIS,
		"BIG5":    traditionalchinese.Big5,
		"GBK":     simplifiedchinese.GBK,
		"GB18030": simplifiedchinese.GB18030,
		"UHC":     korean.EUCKR,
	}
	for name, codec := range multiByteUnsafe {
		register(&Descriptor{Name: name, Codec: codec})
	}

	alias("UNICODE", "UTF8")
	alias("KOI8", "KOI8R")
	alias("ALT", "WIN866")
	alias("WIN", "WIN1251")
	alias("TCVN", "WIN1258")
	alias("SHIFTJIS", "SJIS")
	alias("ISO88591", "LATIN1")
	alias("ISO88592", "LATIN2")
	alias("ISO88593", "LATIN3")
	alias("ISO88594", "LATIN4")
	alias("ISO88599", "LATIN5")
	alias("ISO885910", "LATIN6")
	alias("ISO885913", "LATIN7")
	alias("ISO885914", "LATIN8")
	alias("ISO885915", "LATIN9")
	alias("ISO885916", "LATIN10")
}

func register(d *Descriptor) {
	registry[d.Name] = d
	aliases[squeeze(d.Name)] = d.Name
}

func alias(from, to string) {
	aliases[from] = to
}

// squeeze uppercases a name and strips the separators that vary between
// spellings of the same encoding ("utf-8", "utf_8", "UTF8").
func squeeze(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == '_' || c == ' ' {
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Normalize resolves an encoding name to its canonical PostgreSQL form.
// Unknown names are returned squeezed but otherwise unchanged.
func Normalize(name string) string {
	key := squeeze(name)
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// Lookup returns the descriptor for an encoding name in any of its
// spellings. Unknown names fail with *UnsupportedEncodingError.
func Lookup(name string) (*Descriptor, error) {
	if d, ok := registry[Normalize(name)]; ok {
		return d, nil
	}
	return nil, &UnsupportedEncodingError{Name: name}
}

// Encode converts UTF-8 text to the client encoding. A character without a
// representation in the target encoding fails with *EncodingError.
func (d *Descriptor) Encode(text string) ([]byte, error) {
	if d.Codec == nil {
		return []byte(text), nil
	}
	out, err := d.Codec.NewEncoder().Bytes([]byte(text))
	if err == nil {
		return out, nil
	}
	// Re-scan one rune at a time to report the offending character.
	for i, r := range text {
		if _, err := d.Codec.NewEncoder().Bytes([]byte(string(r))); err != nil {
			return nil, &EncodingError{Encoding: d.Name, Rune: r, Pos: i}
		}
	}
	return nil, &EncodingError{Encoding: d.Name, Pos: -1}
}

// Decode converts bytes in the client encoding to a UTF-8 string.
func (d *Descriptor) Decode(raw []byte) (string, error) {
	if d.Codec == nil {
		return string(raw), nil
	}
	out, err := d.Codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", d.Name, err)
	}
	return string(out), nil
}
