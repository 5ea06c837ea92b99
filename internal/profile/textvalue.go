// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

// Languages the document localizes into.
const (
	LangEN = "en"
	LangIT = "it"
)

// TextKind classifies a value that is expected to carry user-facing text.
type TextKind int

const (
	// TextInvalid means the value is neither a string nor a localized object.
	TextInvalid TextKind = iota
	// TextPlain is a bare string, shown as-is in every language.
	TextPlain
	// TextLocalized is an object carrying parallel translations under the
	// recognized language keys.
	TextLocalized
)

// ClassifyText reports whether v is plain text, a localized object, or
// neither. A localized object only needs one of the recognized language
// keys present; the mapped values are not type-checked. That looseness
// matches what the site's renderer accepts, so tightening it here would
// start rejecting documents that display fine.
func ClassifyText(v any) TextKind {
	switch t := v.(type) {
	case string:
		return TextPlain
	case map[string]any:
		if _, ok := t[LangEN]; ok {
			return TextLocalized
		}
		if _, ok := t[LangIT]; ok {
			return TextLocalized
		}
	}
	return TextInvalid
}

// IsText reports whether v is a string or a localized text object.
func IsText(v any) bool {
	return ClassifyText(v) != TextInvalid
}

// EnglishVariant returns the English form of a text value: the string
// itself for plain text, the "en" entry for localized objects, and
// ok=false when neither yields a string.
func EnglishVariant(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		s, ok := t[LangEN].(string)
		return s, ok
	}
	return "", false
}
