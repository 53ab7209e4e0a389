package adapters

import (
	"fmt"
	"unicode"

	"github.com/bawdo/pgquote/escaping"
)

// unicodeIdentVersion is the first server version that accepts non-ASCII
// characters inside quoted identifiers.
const unicodeIdentVersion = 80000

// IdentError reports an identifier the target server cannot accept.
type IdentError struct {
	Name string
}

func (e *IdentError) Error() string {
	return fmt.Sprintf("identifier %q contains non-ASCII characters, which the server does not support", e.Name)
}

// QuoteIdent quotes name for use as an identifier on conn's server. A nil
// conn quotes unconditionally. Non-ASCII names are rejected with
// *IdentError when the server predates quoted Unicode identifiers.
func QuoteIdent(name string, conn Conn) (string, error) {
	if conn != nil {
		if v := conn.ServerVersion(); v > 0 && v < unicodeIdentVersion {
			for _, r := range name {
				if r > unicode.MaxASCII {
					return "", &IdentError{Name: name}
				}
			}
		}
	}
	return escaping.QuoteIdentifier(name), nil
}
