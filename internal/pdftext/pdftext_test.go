// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"strings"
	"testing"
)

// fakeExtractor returns canned page texts or an error.
type fakeExtractor struct {
	pages []string
	err   error
}

func (f fakeExtractor) PageTexts(path string, maxPages int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if maxPages > 0 && maxPages < len(f.pages) {
		return f.pages[:maxPages], nil
	}
	return f.pages, nil
}

func TestHead(t *testing.T) {
	t.Run("collapses whitespace across pages", func(t *testing.T) {
		e := fakeExtractor{pages: []string{"Annual  Report\n\n2022", "  DoMoMEA\ttrial  "}}
		got, err := Head(e, "report.pdf", 2, 800)
		if err != nil {
			t.Fatal(err)
		}
		want := "Annual Report 2022 DoMoMEA trial"
		if got != want {
			t.Errorf("Head = %q, want %q", got, want)
		}
	})

	t.Run("limits pages", func(t *testing.T) {
		e := fakeExtractor{pages: []string{"one", "two", "three"}}
		got, err := Head(e, "report.pdf", 2, 800)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(got, "three") {
			t.Errorf("page limit ignored: %q", got)
		}
	})

	t.Run("truncates by runes", func(t *testing.T) {
		e := fakeExtractor{pages: []string{strings.Repeat("à", 50)}}
		got, err := Head(e, "report.pdf", 1, 10)
		if err != nil {
			t.Fatal(err)
		}
		if n := len([]rune(got)); n != 10 {
			t.Errorf("got %d runes, want 10", n)
		}
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		e := fakeExtractor{err: errors.New("broken xref")}
		if _, err := Head(e, "report.pdf", 2, 800); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestNewExtractor(t *testing.T) {
	if _, err := NewExtractor("native"); err != nil {
		t.Errorf("native: %v", err)
	}
	if _, err := NewExtractor(""); err != nil {
		t.Errorf("default: %v", err)
	}
	if _, err := NewExtractor("pdftotext"); err != nil {
		t.Errorf("pdftotext: %v", err)
	}
	if _, err := NewExtractor("ghostscript"); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}
