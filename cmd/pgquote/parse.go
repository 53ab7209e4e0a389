package main

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// splitCommand separates the command word from its argument. The argument
// keeps its internal spacing.
func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.ToLower(line), ""
}

// unquoteArg strips optional surrounding single quotes, undoing '' doubling,
// so values with leading or trailing spaces can be entered. Unquoted
// arguments pass through as-is.
func unquoteArg(arg string) string {
	if len(arg) >= 2 && strings.HasPrefix(arg, "'") && strings.HasSuffix(arg, "'") {
		inner := arg[1 : len(arg)-1]
		return strings.ReplaceAll(inner, "''", "'")
	}
	return arg
}

// parseHex decodes hex bytes, tolerating spaces and an optional 0x/\x prefix.
func parseHex(arg string) ([]byte, error) {
	s := strings.ReplaceAll(arg, " ", "")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, `\x`)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse hex: %w", err)
	}
	return data, nil
}
