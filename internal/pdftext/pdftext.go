// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext pulls plain text out of the PDF reports that feed the
// profile document, with pluggable extraction backends.
package pdftext

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor pulls text from a PDF file, one string per page. Different
// backends (the native reader, pdftotext) implement this interface.
type Extractor interface {
	// PageTexts returns the text of up to maxPages pages. maxPages <= 0
	// means all pages. A page that cannot be decoded contributes an
	// empty string rather than failing the whole file.
	PageTexts(path string, maxPages int) ([]string, error)
}

// NewExtractor returns the backend named by name: "native" or "pdftotext".
func NewExtractor(name string) (Extractor, error) {
	switch name {
	case "", "native":
		return NativeExtractor{}, nil
	case "pdftotext":
		return PdftotextExtractor{}, nil
	}
	return nil, fmt.Errorf("unknown pdf backend %q (want native or pdftotext)", name)
}

// NativeExtractor reads PDFs in-process.
type NativeExtractor struct{}

func (NativeExtractor) PageTexts(path string, maxPages int) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	if maxPages > 0 && maxPages < n {
		n = maxPages
	}

	texts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// PdftotextExtractor shells out to the poppler pdftotext tool.
type PdftotextExtractor struct{}

func (PdftotextExtractor) PageTexts(path string, maxPages int) ([]string, error) {
	args := []string{"-enc", "UTF-8"}
	if maxPages > 0 {
		args = append(args, "-f", "1", "-l", strconv.Itoa(maxPages))
	}
	args = append(args, path, "-")

	out, err := exec.Command("pdftotext", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("running pdftotext on %s: %w", path, err)
	}

	// pdftotext separates pages with form feeds and appends a final one.
	pages := strings.Split(strings.TrimSuffix(string(out), "\f"), "\f")
	return pages, nil
}

// Info holds the metadata the head command reports.
type Info struct {
	Pages   int
	Title   string
	Subject string
}

// ReadInfo returns page count and document metadata. It always uses the
// native reader; pdftotext has no metadata output on stdout.
func ReadInfo(path string) (Info, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	info := Info{Pages: r.NumPage()}
	meta := r.Trailer().Key("Info")
	if title := meta.Key("Title"); title.Kind() == pdf.String {
		info.Title = title.Text()
	}
	if subject := meta.Key("Subject"); subject.Kind() == pdf.String {
		info.Subject = subject.Text()
	}
	return info, nil
}
