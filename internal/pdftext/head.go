// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import "strings"

// Head defaults match the sizes that fit a terminal skim of a report.
const (
	DefaultHeadPages = 2
	DefaultHeadChars = 800
)

// Head returns the first pages of the PDF collapsed to a single line of
// at most chars characters. pages <= 0 and chars <= 0 fall back to the
// defaults.
func Head(e Extractor, path string, pages, chars int) (string, error) {
	if pages <= 0 {
		pages = DefaultHeadPages
	}
	if chars <= 0 {
		chars = DefaultHeadChars
	}

	texts, err := e.PageTexts(path, pages)
	if err != nil {
		return "", err
	}

	oneLine := strings.Join(strings.Fields(strings.Join(texts, " ")), " ")
	runes := []rune(oneLine)
	if len(runes) > chars {
		runes = runes[:chars]
	}
	return string(runes), nil
}
