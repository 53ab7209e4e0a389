// Package escaping renders values as PostgreSQL literals and quoted
// identifiers, byte-exact for the target client encoding.
package escaping

import (
	"bytes"
	"strings"

	"github.com/bawdo/pgquote/encodings"
)

// NulByteError reports an embedded zero byte in a string value. A NUL
// silently truncates C strings downstream, so it is rejected before any
// quoting happens.
type NulByteError struct {
	// Pos is the byte offset of the first NUL.
	Pos int
}

func (e *NulByteError) Error() string {
	return "A string literal cannot contain NUL (0x00) characters."
}

// Options carries the server settings that change how a literal must be
// written.
type Options struct {
	// StandardConformingStrings mirrors the server setting of the same
	// name. When false (the conservative default), any backslash in the
	// value forces the E'' form, which parses identically under either
	// server setting.
	StandardConformingStrings bool
}

// CheckNoNul fails with *NulByteError at the first zero byte.
func CheckNoNul(raw []byte) error {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		return &NulByteError{Pos: i}
	}
	return nil
}

// Literal renders text as a quoted SQL literal in the given client
// encoding. The output is 'text' with quotes doubled, or E'text' with
// quotes and backslashes doubled when backslashes need escaping.
func Literal(text string, desc *encodings.Descriptor, opts Options) ([]byte, error) {
	if desc.SafeASCII {
		raw, err := desc.Encode(text)
		if err != nil {
			return nil, err
		}
		if err := CheckNoNul(raw); err != nil {
			return nil, err
		}
		return quoteRaw(raw, opts), nil
	}

	// Multi-byte encodings where a trailing byte can coincide with ' or \
	// are escaped at the character level, then encoded. The escape
	// characters themselves are ASCII and encode to the same bytes.
	if i := strings.IndexByte(text, 0); i >= 0 {
		return nil, &NulByteError{Pos: i}
	}
	escape := !opts.StandardConformingStrings && strings.ContainsRune(text, '\\')
	body := escapeText(text, escape)
	raw, err := desc.Encode(body)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(raw)+3)
	if escape {
		out = append(out, 'E')
	}
	out = append(out, '\'')
	out = append(out, raw...)
	return append(out, '\''), nil
}

// LiteralBytes renders text that is already encoded in the client encoding.
func LiteralBytes(raw []byte, desc *encodings.Descriptor, opts Options) ([]byte, error) {
	if err := CheckNoNul(raw); err != nil {
		return nil, err
	}
	if !desc.SafeASCII {
		text, err := desc.Decode(raw)
		if err != nil {
			return nil, err
		}
		return Literal(text, desc, opts)
	}
	return quoteRaw(raw, opts), nil
}

var standardReplacer = strings.NewReplacer(`'`, `''`)

var escapeReplacer = strings.NewReplacer(`'`, `''`, `\`, `\\`)

func escapeText(text string, escape bool) string {
	if escape {
		return escapeReplacer.Replace(text)
	}
	return standardReplacer.Replace(text)
}

// quoteRaw quotes bytes of an ASCII-safe encoding. Every byte except the
// two syntax characters is emitted literally, so the round trip through
// the server reproduces the input exactly.
func quoteRaw(raw []byte, opts Options) []byte {
	escape := !opts.StandardConformingStrings && bytes.IndexByte(raw, '\\') >= 0
	out := make([]byte, 0, len(raw)+len(raw)/8+3)
	if escape {
		out = append(out, 'E')
	}
	out = append(out, '\'')
	for _, c := range raw {
		switch c {
		case '\'':
			out = append(out, '\'', '\'')
		case '\\':
			if escape {
				out = append(out, '\\', '\\')
			} else {
				out = append(out, '\\')
			}
		default:
			out = append(out, c)
		}
	}
	return append(out, '\'')
}
