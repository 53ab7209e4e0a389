// Package conninfo exposes the session state adapters need — client
// encoding, standard_conforming_strings, server version — read from a live
// pgx connection or supplied statically.
package conninfo

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Info reads connection parameters the server reported during startup and
// via ParameterStatus messages. All accessors are synchronous reads of
// cached session state; no round trip is made.
type Info struct {
	conn *pgconn.PgConn
}

// FromPgConn wraps a low-level pgconn connection.
func FromPgConn(conn *pgconn.PgConn) *Info {
	return &Info{conn: conn}
}

// FromConn wraps a pgx connection.
func FromConn(conn *pgx.Conn) *Info {
	return &Info{conn: conn.PgConn()}
}

func (i *Info) ClientEncoding() string {
	return i.conn.ParameterStatus("client_encoding")
}

func (i *Info) StandardConformingStrings() bool {
	return i.conn.ParameterStatus("standard_conforming_strings") == "on"
}

func (i *Info) ServerVersion() int {
	return ParseServerVersion(i.conn.ParameterStatus("server_version"))
}

// Static is a connection context known without a live connection, for
// tests and offline tooling.
type Static struct {
	Encoding string
	SCS      bool
	Version  int
}

func (s Static) ClientEncoding() string { return s.Encoding }

func (s Static) StandardConformingStrings() bool { return s.SCS }

func (s Static) ServerVersion() int { return s.Version }

// ParseServerVersion converts a server_version string to the libpq numeric
// form: "9.6.24" -> 90624, "14.2 (Debian 14.2-1)" -> 140002,
// "17beta1" -> 170000. Returns 0 when the string cannot be parsed.
func ParseServerVersion(s string) int {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return 0
	}

	var nums []int
	for _, part := range strings.SplitN(s, ".", 3) {
		j := 0
		for j < len(part) && part[j] >= '0' && part[j] <= '9' {
			j++
		}
		if j == 0 {
			break
		}
		n, err := strconv.Atoi(part[:j])
		if err != nil {
			break
		}
		nums = append(nums, n)
		// A development suffix like "beta1" or "rc2" ends the numbers.
		if j < len(part) {
			break
		}
	}
	if len(nums) == 0 {
		return 0
	}

	// From version 10 on there is no third component.
	if nums[0] >= 10 {
		v := nums[0] * 10000
		if len(nums) > 1 {
			v += nums[1]
		}
		return v
	}
	v := nums[0] * 10000
	if len(nums) > 1 {
		v += nums[1] * 100
	}
	if len(nums) > 2 {
		v += nums[2]
	}
	return v
}
