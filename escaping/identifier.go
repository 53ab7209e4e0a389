package escaping

import "strings"

// QuoteIdentifier quotes a SQL identifier using double quotes, doubling any
// embedded double quotes. The result is always quoted, even when the name
// would not need it: one predictable code path, no reserved-word heuristic.
// Operates on Unicode text, so multi-byte characters pass through whole.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
