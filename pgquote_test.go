package pgquote_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bawdo/pgquote"
)

// TestSimpleImportStyle demonstrates quoting values through the
// convenience package.
func TestSimpleImportStyle(t *testing.T) {
	a, err := pgquote.Adapt("O'Reilly")
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	quoted, err := a.GetQuoted()
	if err != nil {
		t.Fatalf("GetQuoted failed: %v", err)
	}
	if string(quoted) != "'O''Reilly'" {
		t.Errorf("Expected 'O''Reilly', got %s", quoted)
	}
}

// TestPrepareAgainstConnection demonstrates the late encoding binding: the
// connection's client_encoding wins over any override.
func TestPrepareAgainstConnection(t *testing.T) {
	q := pgquote.NewQuotedString("☃")
	if err := q.SetEncoding("latin9"); err != nil {
		t.Fatalf("SetEncoding failed: %v", err)
	}

	conn := pgquote.Static{Encoding: "utf-8", SCS: true, Version: 140002}
	q.Prepare(conn)

	if q.Encoding() != "UTF8" {
		t.Errorf("Expected UTF8 after Prepare, got %s", q.Encoding())
	}
	quoted, err := q.GetQuoted()
	if err != nil {
		t.Fatalf("GetQuoted failed: %v", err)
	}
	if string(quoted) != "'\xe2\x98\x83'" {
		t.Errorf("Expected the UTF-8 snowman literal, got %q", quoted)
	}
}

// TestBuildStatement demonstrates assembling a statement from quoted parts.
func TestBuildStatement(t *testing.T) {
	conn := pgquote.Static{Encoding: "utf8", SCS: true, Version: 140002}

	table, err := pgquote.QuoteIdent("user data", conn)
	if err != nil {
		t.Fatalf("QuoteIdent failed: %v", err)
	}

	values := []any{"it's", 42, true, nil}
	var parts []string
	for _, v := range values {
		a, err := pgquote.Adapt(v)
		if err != nil {
			t.Fatalf("Adapt(%v) failed: %v", v, err)
		}
		a.Prepare(conn)
		quoted, err := a.GetQuoted()
		if err != nil {
			t.Fatalf("GetQuoted(%v) failed: %v", v, err)
		}
		parts = append(parts, string(quoted))
	}

	stmt := "INSERT INTO " + table + " VALUES (" + strings.Join(parts, ", ") + ")"
	expected := `INSERT INTO "user data" VALUES ('it''s', 42, TRUE, NULL)`
	if stmt != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, stmt)
	}
}

// TestErrorSurface demonstrates the three failure kinds callers must handle.
func TestErrorSurface(t *testing.T) {
	if _, err := pgquote.Literal("bad\x00byte", "utf8"); err != nil {
		var ne *pgquote.NulByteError
		if !errors.As(err, &ne) {
			t.Errorf("Expected NulByteError, got %v", err)
		}
	} else {
		t.Error("Expected NUL rejection")
	}

	if _, err := pgquote.Literal("☃", "latin1"); err != nil {
		var ee *pgquote.EncodingError
		if !errors.As(err, &ee) {
			t.Errorf("Expected EncodingError, got %v", err)
		}
	} else {
		t.Error("Expected encoding failure")
	}

	if _, err := pgquote.Literal("x", "martian-5"); err != nil {
		var ue *pgquote.UnsupportedEncodingError
		if !errors.As(err, &ue) {
			t.Errorf("Expected UnsupportedEncodingError, got %v", err)
		}
	} else {
		t.Error("Expected unsupported encoding failure")
	}
}
