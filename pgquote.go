// Package pgquote renders application values as PostgreSQL literals and
// quoted identifiers, byte-exact for the connection's client encoding.
//
// This package re-exports commonly used types and functions from
// subpackages for convenience. Advanced users can import subpackages
// directly:
//   - github.com/bawdo/pgquote/adapters (deferred-binding value adapters)
//   - github.com/bawdo/pgquote/escaping (literal and identifier escaping)
//   - github.com/bawdo/pgquote/encodings (client encoding registry)
//   - github.com/bawdo/pgquote/conninfo (connection context over pgx)
package pgquote

import (
	"github.com/bawdo/pgquote/adapters"
	"github.com/bawdo/pgquote/conninfo"
	"github.com/bawdo/pgquote/encodings"
	"github.com/bawdo/pgquote/escaping"
)

// --- Adapter Types ---

// Adapter renders a captured value as a SQL literal.
type Adapter = adapters.Adapter

// QuotedString adapts a text value with late-bound client encoding.
type QuotedString = adapters.QuotedString

// Binary adapts a byte buffer into a bytea literal.
type Binary = adapters.Binary

// Conn is the read-only connection view adapters consult on Prepare.
type Conn = adapters.Conn

// Static is a connection context known without a live connection.
type Static = conninfo.Static

// --- Error Types ---

// NulByteError reports an embedded zero byte in a string value.
type NulByteError = escaping.NulByteError

// EncodingError reports a character unrepresentable in the target encoding.
type EncodingError = encodings.EncodingError

// UnsupportedEncodingError reports an unknown client encoding name.
type UnsupportedEncodingError = encodings.UnsupportedEncodingError

// IdentError reports an identifier the target server cannot accept.
type IdentError = adapters.IdentError

// --- Constructors ---

// Adapt returns the adapter for a Go value.
func Adapt(v any) (adapters.Adapter, error) {
	return adapters.Adapt(v)
}

// NewQuotedString captures a Unicode text value.
func NewQuotedString(text string) *adapters.QuotedString {
	return adapters.NewQuotedString(text)
}

// NewQuotedBytes captures a text value already encoded in the client encoding.
func NewQuotedBytes(raw []byte) *adapters.QuotedString {
	return adapters.NewQuotedBytes(raw)
}

// NewBinary captures a binary buffer.
func NewBinary(data []byte) *adapters.Binary {
	return adapters.NewBinary(data)
}

// AsIs returns an adapter that emits s verbatim.
func AsIs(s string) adapters.Adapter {
	return adapters.AsIs(s)
}

// --- Quoting Functions ---

// QuoteIdent quotes an identifier for conn's server. conn may be nil.
func QuoteIdent(name string, conn adapters.Conn) (string, error) {
	return adapters.QuoteIdent(name, conn)
}

// QuoteIdentifier quotes an identifier unconditionally.
func QuoteIdentifier(name string) string {
	return escaping.QuoteIdentifier(name)
}

// Literal renders text as a quoted literal in the named client encoding,
// assuming standard_conforming_strings is off.
func Literal(text, encodingName string) ([]byte, error) {
	desc, err := encodings.Lookup(encodingName)
	if err != nil {
		return nil, err
	}
	return escaping.Literal(text, desc, escaping.Options{})
}
