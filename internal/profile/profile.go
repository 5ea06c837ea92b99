// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile reads and writes the site's profile document: a single
// JSON file holding localized text for the profile/portfolio page.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// utf8BOM is tolerated (and stripped) at the start of the input file.
// Some of the document's earlier editors wrote it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError describes a malformed JSON document with its position.
type ParseError struct {
	Msg    string
	Line   int
	Column int
	Offset int64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}

// Decode parses raw document bytes into a generic JSON value. A leading
// UTF-8 byte-order marker is stripped first. Malformed input returns a
// *ParseError carrying line, column, and byte offset.
func Decode(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			line, col := position(data, syn.Offset)
			return nil, &ParseError{
				Msg:    syn.Error(),
				Line:   line,
				Column: col,
				Offset: syn.Offset,
			}
		}
		return nil, err
	}
	return doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save writes the document back with two-space indentation and HTML
// escaping disabled, so icon markup and non-ASCII text survive verbatim.
func Save(path string, doc any) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode serializes the document in the repository's canonical style.
func Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// position converts a byte offset into 1-based line and column numbers.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line = 1
	col = 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
