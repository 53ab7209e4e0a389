package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bawdo/pgquote/adapters"
	"github.com/bawdo/pgquote/encodings"
)

var errNotConnected = errors.New("not connected (use 'connect <dsn>' first)")

// Session holds the shell state: the live connection (nil when offline)
// and the offline encoding/scs settings used before one exists.
type Session struct {
	conn     *dbConn
	encoding string // offline client encoding override, canonical form
	scs      bool   // offline standard_conforming_strings
	out      io.Writer
}

func NewSession(out io.Writer) *Session {
	return &Session{out: out}
}

func (s *Session) Close() {
	if s.conn != nil {
		_ = s.conn.close()
		s.conn = nil
	}
}

// Execute dispatches one command line.
func (s *Session) Execute(line string) error {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "help":
		s.printHelp()
		return nil
	case "connect":
		return s.cmdConnect(arg)
	case "disconnect":
		s.Close()
		fmt.Fprintln(s.out, "  Disconnected")
		return nil
	case "info":
		return s.cmdInfo()
	case "encoding":
		return s.cmdEncoding(arg)
	case "scs":
		return s.cmdSCS(arg)
	case "quote":
		return s.cmdQuote(arg)
	case "ident":
		return s.cmdIdent(arg)
	case "bytes":
		return s.cmdBytes(arg)
	case "roundtrip":
		return s.cmdRoundtrip(arg)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  connect <dsn>      connect to a PostgreSQL server
  disconnect         close the current connection
  info               show client_encoding, scs, server version
  encoding <name>    set the client encoding (SET on the server if connected)
  scs on|off         set offline standard_conforming_strings assumption
  quote <value>      show the quoted literal for a text value
  ident <name>       show the quoted identifier
  bytes <hex>        show the bytea literal for hex-encoded bytes
  roundtrip <value>  quote, send through the server, compare
  exit               quit
`)
}

func (s *Session) cmdConnect(dsn string) error {
	if dsn == "" {
		return errors.New("usage: connect <dsn>")
	}
	conn, err := connect(dsn)
	if err != nil {
		return err
	}
	s.Close()
	s.conn = conn
	fmt.Fprintf(s.out, "  Connected to %s\n", sanitizeDSN(dsn))
	return s.cmdInfo()
}

func (s *Session) cmdInfo() error {
	if s.conn == nil {
		fmt.Fprintf(s.out, "  Offline — encoding=%s scs=%v\n", s.offlineEncoding(), s.scs)
		return nil
	}
	info := s.conn.info()
	fmt.Fprintf(s.out, "  client_encoding=%s standard_conforming_strings=%v server_version=%d\n",
		encodings.Normalize(info.ClientEncoding()), info.StandardConformingStrings(), info.ServerVersion())
	return nil
}

func (s *Session) offlineEncoding() string {
	if s.encoding != "" {
		return s.encoding
	}
	return adapters.DefaultEncoding
}

func (s *Session) cmdEncoding(name string) error {
	if name == "" {
		return errors.New("usage: encoding <name>")
	}
	desc, err := encodings.Lookup(name)
	if err != nil {
		return err
	}
	if s.conn != nil {
		if err := s.conn.setClientEncoding(desc.Name); err != nil {
			return err
		}
	}
	s.encoding = desc.Name
	fmt.Fprintf(s.out, "  Encoding: %s\n", desc.Name)
	return nil
}

func (s *Session) cmdSCS(arg string) error {
	switch strings.ToLower(arg) {
	case "on":
		s.scs = true
	case "off":
		s.scs = false
	default:
		return errors.New("usage: scs on|off")
	}
	fmt.Fprintf(s.out, "  standard_conforming_strings assumption: %v\n", s.scs)
	return nil
}

// adapter prepares a for the live connection, or applies the offline
// session settings when there is none.
func (s *Session) adapter(a adapters.Adapter) error {
	if s.conn != nil {
		a.Prepare(s.conn.info())
		return nil
	}
	if q, ok := a.(*adapters.QuotedString); ok && s.encoding != "" {
		return q.SetEncoding(s.encoding)
	}
	return nil
}

func (s *Session) cmdQuote(arg string) error {
	if arg == "" {
		return errors.New("usage: quote <value>")
	}
	q := adapters.NewQuotedString(unquoteArg(arg))
	if err := s.adapter(q); err != nil {
		return err
	}
	quoted, err := q.GetQuoted()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  %s\n  (encoding %s, %d bytes)\n", quoted, q.Encoding(), len(quoted))
	return nil
}

func (s *Session) cmdIdent(arg string) error {
	if arg == "" {
		return errors.New("usage: ident <name>")
	}
	var conn adapters.Conn
	if s.conn != nil {
		conn = s.conn.info()
	}
	quoted, err := adapters.QuoteIdent(unquoteArg(arg), conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  %s\n", quoted)
	return nil
}

func (s *Session) cmdBytes(arg string) error {
	if arg == "" {
		return errors.New("usage: bytes <hex>")
	}
	data, err := parseHex(arg)
	if err != nil {
		return err
	}
	b := adapters.NewBinary(data)
	if err := s.adapter(b); err != nil {
		return err
	}
	quoted, err := b.GetQuoted()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  %s\n", quoted)
	return nil
}

func (s *Session) cmdRoundtrip(arg string) error {
	if arg == "" {
		return errors.New("usage: roundtrip <value>")
	}
	if s.conn == nil {
		return errNotConnected
	}
	value := unquoteArg(arg)
	q := adapters.NewQuotedString(value)
	q.Prepare(s.conn.info())
	quoted, err := q.GetQuoted()
	if err != nil {
		return err
	}
	got, err := s.conn.selectText(string(quoted))
	if err != nil {
		return err
	}
	if got == value {
		fmt.Fprintf(s.out, "  OK — %d chars round-tripped via %s\n", len([]rune(value)), q.Encoding())
		return nil
	}
	fmt.Fprintf(s.out, "  MISMATCH\n  sent: %q\n  got:  %q\n", value, got)
	return nil
}
