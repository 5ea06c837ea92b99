// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package icons rewrites the profile document's display text: emoji are
// swapped for Font Awesome markup, and section labels get icon prefixes.
package icons

import "strings"

// emojiIcon maps one emoji to its Font Awesome replacement.
type emojiIcon struct {
	Emoji string
	Icon  string
}

// emojiIcons is ordered so replacement output is deterministic.
var emojiIcons = []emojiIcon{
	{"📑", `<i class="fa fa-list-alt"></i>`},
	{"📝", `<i class="fa fa-file-text-o"></i>`},
	{"✅", `<i class="fa fa-check-square-o"></i>`},
	{"🎯", `<i class="fa fa-bullseye"></i>`},
	{"🤝", `<i class="fa fa-handshake-o"></i>`},
	{"🔬", `<i class="fa fa-flask"></i>`},
	{"💼", `<i class="fa fa-briefcase"></i>`},
	{"🛠️", `<i class="fa fa-wrench"></i>`},
	{"🚀", `<i class="fa fa-rocket"></i>`},
	{"🌐", `<i class="fa fa-globe"></i>`},
	{"📍", `<i class="fa fa-map-marker"></i>`},
	{"🎓", `<i class="fa fa-graduation-cap"></i>`},
	{"📦", `<i class="fa fa-archive"></i>`},
	{"💡", `<i class="fa fa-lightbulb-o"></i>`},
	{"👥", `<i class="fa fa-users"></i>`},
	{"📚", `<i class="fa fa-book"></i>`},
	{"📖", `<i class="fa fa-book"></i>`},
	{"📧", `<i class="fa fa-envelope-o"></i>`},
	{"🧠", `<i class="fa fa-brain"></i>`},
}

// ReplaceEmoji walks the whole document and swaps every known emoji for
// its Font Awesome markup, returning the number of strings changed.
// Maps and slices are traversed; other values pass through untouched.
func ReplaceEmoji(doc any) (any, int) {
	changed := 0
	out := walkStrings(doc, func(s string) string {
		replaced := replaceEmojiInText(s)
		if replaced != s {
			changed++
		}
		return replaced
	})
	return out, changed
}

func replaceEmojiInText(s string) string {
	for _, ei := range emojiIcons {
		s = strings.ReplaceAll(s, ei.Emoji, ei.Icon)
	}
	return s
}

// walkStrings applies fn to every string value reachable from v.
func walkStrings(v any, fn func(string) string) any {
	switch t := v.(type) {
	case string:
		return fn(t)
	case map[string]any:
		for k, val := range t {
			t[k] = walkStrings(val, fn)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = walkStrings(val, fn)
		}
		return t
	default:
		return v
	}
}
