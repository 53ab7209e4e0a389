package adapters

// Conn is the read-only view of a live connection that adapters consult
// when a value is prepared for sending. Implementations must be cheap,
// synchronous accessors over already-known session state.
type Conn interface {
	// ClientEncoding returns the server-reported client_encoding name,
	// in any spelling. Empty means unknown.
	ClientEncoding() string

	// StandardConformingStrings reports whether the server treats
	// backslashes in plain '...' strings as literal characters.
	StandardConformingStrings() bool

	// ServerVersion returns the server version in libpq numeric form
	// (e.g. 90624, 140002). Zero means unknown.
	ServerVersion() int
}
