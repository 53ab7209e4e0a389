package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bawdo/pgquote/conninfo"
	"github.com/bawdo/pgquote/escaping"
)

const connectTimeout = 10 * time.Second

type dbConn struct {
	conn *pgx.Conn
	dsn  string
}

func connect(dsn string) (*dbConn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &dbConn{conn: conn, dsn: dsn}, nil
}

func (c *dbConn) close() error {
	return c.conn.Close(context.Background())
}

// info returns the adapter-facing view of the connection. ParameterStatus
// values are session state cached by pgx, so this is a cheap call.
func (c *dbConn) info() *conninfo.Info {
	return conninfo.FromConn(c.conn)
}

func (c *dbConn) setClientEncoding(name string) error {
	// Encoding names come from the registry, never from free-form input,
	// but quote anyway.
	_, err := c.conn.Exec(context.Background(),
		"SET client_encoding TO "+escaping.QuoteIdentifier(name))
	if err != nil {
		return fmt.Errorf("set client_encoding: %w", err)
	}
	return nil
}

// selectText sends SELECT <literal>::text and returns the server's parse of
// the literal.
func (c *dbConn) selectText(literal string) (string, error) {
	var got string
	err := c.conn.QueryRow(context.Background(), "SELECT "+literal+"::text").Scan(&got)
	if err != nil {
		return "", fmt.Errorf("select: %w", err)
	}
	return got, nil
}

func sanitizeDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuild manually to avoid percent-encoding the mask.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// Keyword/value form: password=... word.
	if i := strings.Index(dsn, "password="); i >= 0 {
		end := strings.IndexByte(dsn[i:], ' ')
		if end < 0 {
			end = len(dsn) - i
		}
		return dsn[:i] + "password=****" + dsn[i+end:]
	}
	return dsn
}
