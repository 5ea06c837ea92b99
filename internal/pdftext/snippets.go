// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"regexp"
	"strings"
)

// DefaultKeywords is the report vocabulary worth grepping for when
// curating phd_extract content. Overridable via config or flags.
var DefaultKeywords = []string{
	"DoMoMEA",
	"telerehab",
	"telerehabilitation",
	"Android TV",
	"TV box",
	"Unity",
	"Unity3D",
	"MUSE",
	"221e",
	"IMU",
	"pressure",
	"Bluetooth",
	"classic",
	"Django",
	"PostgreSQL",
	"Nginx",
	"Gunicorn",
	"store-and-forward",
	"SUS",
	"QUEST",
	"SIAMOC",
	"poster",
	"consortium",
	"Cereatti",
	"Sassari",
	"random",
	"RCT",
	"8 weeks",
	"5 days",
}

// phonePattern matches phone-like digit runs. Email never appears in
// extracted body text, so digits are the only PII to scrub.
var phonePattern = regexp.MustCompile(`\b\+?\d[\d\s().-]{7,}\d\b`)

// RedactPII replaces phone-like strings with a placeholder.
func RedactPII(text string) string {
	return phonePattern.ReplaceAllString(text, "[REDACTED_NUMBER]")
}

// Hit is one text line that matched at least one keyword.
type Hit struct {
	// Line is the 1-based index into the trimmed, non-empty lines of
	// the document text.
	Line int
	// Keywords lists which of the search terms matched, in search order.
	Keywords []string
	// Context is the matching line with one line before and after,
	// joined by " | ".
	Context string
}

// Scan splits text into trimmed non-empty lines and reports every line
// containing any of the keywords, matched case-insensitively as literal
// substrings. Each hit carries a one-line context window on either side.
func Scan(text string, keywords []string) []Hit {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	var hits []Hit
	for i, ln := range lines {
		lower := strings.ToLower(ln)
		var matched []string
		for j, k := range lowered {
			if k != "" && strings.Contains(lower, k) {
				matched = append(matched, keywords[j])
			}
		}
		if len(matched) == 0 {
			continue
		}

		start := max(0, i-1)
		end := min(len(lines), i+2)
		hits = append(hits, Hit{
			Line:     i + 1,
			Keywords: matched,
			Context:  strings.Join(lines[start:end], " | "),
		})
	}
	return hits
}
