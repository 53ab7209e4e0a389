package adapters

import (
	"errors"

	"github.com/bawdo/pgquote/encodings"
	"github.com/bawdo/pgquote/escaping"
)

// DefaultEncoding is the client encoding assumed when no connection has
// been consulted and no override was set. A single-byte encoding is the
// safe default: it never splits a value mid-character.
const DefaultEncoding = "LATIN1"

// ErrPrepared is returned by SetEncoding after Prepare has fixed the
// encoding from a connection.
var ErrPrepared = errors.New("adapter already prepared: client encoding is fixed by the connection")

// QuotedString adapts one text value (or raw bytes already in the client
// encoding) into a quoted SQL literal. The value is captured at
// construction; the target encoding is bound late, when the value is
// prepared against a connection.
//
// A QuotedString is used by a single goroutine at a time.
type QuotedString struct {
	text  string
	raw   []byte
	isRaw bool

	override string // canonical name set via SetEncoding, "" if unset
	resolved string // canonical name fixed by Prepare
	prepared bool
	scs      bool
}

// NewQuotedString captures a Unicode text value.
func NewQuotedString(text string) *QuotedString {
	return &QuotedString{text: text}
}

// NewQuotedBytes captures a value whose bytes are already in the client
// encoding. No re-encoding is performed on the quoting path.
func NewQuotedBytes(raw []byte) *QuotedString {
	return &QuotedString{raw: raw, isRaw: true}
}

// SetEncoding overrides the encoding used until the adapter is prepared.
// It may be called any number of times before Prepare; afterwards it fails
// with ErrPrepared. Unknown names fail with *UnsupportedEncodingError.
func (q *QuotedString) SetEncoding(name string) error {
	if q.prepared {
		return ErrPrepared
	}
	d, err := encodings.Lookup(name)
	if err != nil {
		return err
	}
	q.override = d.Name
	return nil
}

// Encoding returns the canonical name of the encoding GetQuoted would use:
// the connection's encoding once prepared, else the override, else
// DefaultEncoding.
func (q *QuotedString) Encoding() string {
	if q.prepared {
		return q.resolved
	}
	if q.override != "" {
		return q.override
	}
	return DefaultEncoding
}

// Prepare resolves the encoding from the connection. The connection always
// wins over any override set earlier. Prepare is idempotent; calling it
// again re-resolves from the (possibly changed) connection state.
func (q *QuotedString) Prepare(conn Conn) {
	name := conn.ClientEncoding()
	if name == "" {
		name = DefaultEncoding
	}
	q.resolved = encodings.Normalize(name)
	q.scs = conn.StandardConformingStrings()
	q.prepared = true
}

// GetQuoted renders the value as a literal in the active encoding. Valid
// in either state: before Prepare it uses the override-or-default
// encoding, which is best-effort; after Prepare the output matches the
// connection. Encoding failures surface here, not at construction.
func (q *QuotedString) GetQuoted() ([]byte, error) {
	desc, err := encodings.Lookup(q.Encoding())
	if err != nil {
		return nil, err
	}
	opts := escaping.Options{StandardConformingStrings: q.prepared && q.scs}
	if q.isRaw {
		return escaping.LiteralBytes(q.raw, desc, opts)
	}
	return escaping.Literal(q.text, desc, opts)
}
