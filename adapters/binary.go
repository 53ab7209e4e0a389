package adapters

import "github.com/bawdo/pgquote/escaping"

// hexFormatVersion is the first server version whose bytea input parser
// understands the hex format.
const hexFormatVersion = 90000

// Binary adapts a byte buffer into a bytea literal. The payload is the
// server's binary-string encoding (hex or legacy octal escape), not raw
// bytes, so the client encoding plays no part.
type Binary struct {
	data          []byte
	prepared      bool
	scs           bool
	serverVersion int
}

// NewBinary captures a binary buffer.
func NewBinary(data []byte) *Binary {
	return &Binary{data: data}
}

// Prepare captures the server settings that choose the bytea format.
func (b *Binary) Prepare(conn Conn) {
	b.scs = conn.StandardConformingStrings()
	b.serverVersion = conn.ServerVersion()
	b.prepared = true
}

// GetQuoted renders the buffer as a bytea literal with a ::bytea cast.
// Servers older than 9.0 get the octal escape format; everything else,
// including the unprepared state, gets hex.
func (b *Binary) GetQuoted() ([]byte, error) {
	opts := escaping.Options{StandardConformingStrings: b.prepared && b.scs}
	var out []byte
	if b.prepared && b.serverVersion > 0 && b.serverVersion < hexFormatVersion {
		out = escaping.BinaryEscape(b.data, opts)
	} else {
		out = escaping.BinaryHex(b.data, opts)
	}
	return append(out, "::bytea"...), nil
}
