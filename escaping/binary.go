package escaping

const hexDigits = "0123456789abcdef"

// BinaryHex renders a bytea literal in hex format, e.g. '\x6121' for
// []byte("a!"). Servers from 9.0 on parse this form.
func BinaryHex(data []byte, opts Options) []byte {
	out := make([]byte, 0, 2*len(data)+6)
	if opts.StandardConformingStrings {
		out = append(out, '\'', '\\', 'x')
	} else {
		out = append(out, 'E', '\'', '\\', '\\', 'x')
	}
	for _, c := range data {
		out = append(out, hexDigits[c>>4], hexDigits[c&0xf])
	}
	return append(out, '\'')
}

// BinaryEscape renders a bytea literal in the legacy escape format: every
// byte outside printable ASCII, plus quote and backslash, becomes an octal
// \ooo sequence. Needed for servers older than 9.0.
func BinaryEscape(data []byte, opts Options) []byte {
	escape := !opts.StandardConformingStrings
	out := make([]byte, 0, 2*len(data)+3)
	if escape {
		out = append(out, 'E')
	}
	out = append(out, '\'')
	for _, c := range data {
		if c < 0x20 || c > 0x7e || c == '\'' || c == '\\' {
			// The bytea parser consumes one backslash; the string
			// literal parser consumes another in E'' mode.
			if escape {
				out = append(out, '\\')
			}
			out = append(out, '\\', '0'+c>>6, '0'+(c>>3)&7, '0'+c&7)
		} else {
			out = append(out, c)
		}
	}
	return append(out, '\'')
}
