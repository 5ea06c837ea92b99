// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"about": map[string]any{
			"paragraph": map[string]any{"en": "old en", "it": "old it"},
		},
		"focus_now": map[string]any{
			"items": []any{
				map[string]any{"one_liner": map[string]any{"it": "vecchio"}},
				map[string]any{"one_liner": map[string]any{"it": "vecchio due"}},
			},
		},
		"hero": map[string]any{
			"tagline": "plain old",
			"facts":   []any{"fact zero", "fact one"},
		},
	}
}

func TestApply_LocalizedField(t *testing.T) {
	doc := sampleDoc()
	err := Apply(doc, []Patch{
		{Path: "about.paragraph", Lang: "en", Text: "new en"},
		{Path: "focus_now.items[1].one_liner", Lang: "it", Text: "nuovo"},
	})
	if err != nil {
		t.Fatal(err)
	}

	para := doc["about"].(map[string]any)["paragraph"].(map[string]any)
	if para["en"] != "new en" {
		t.Errorf("en = %q", para["en"])
	}
	if para["it"] != "old it" {
		t.Errorf("untouched language changed: %q", para["it"])
	}

	second := doc["focus_now"].(map[string]any)["items"].([]any)[1].(map[string]any)
	if second["one_liner"].(map[string]any)["it"] != "nuovo" {
		t.Errorf("indexed patch not applied: %v", second)
	}
}

func TestApply_PlainField(t *testing.T) {
	doc := sampleDoc()
	if err := Apply(doc, []Patch{{Path: "hero.tagline", Text: "fresh"}}); err != nil {
		t.Fatal(err)
	}
	if doc["hero"].(map[string]any)["tagline"] != "fresh" {
		t.Errorf("tagline = %v", doc["hero"].(map[string]any)["tagline"])
	}
}

func TestApply_ListElement(t *testing.T) {
	doc := sampleDoc()
	if err := Apply(doc, []Patch{{Path: "hero.facts[1]", Text: "updated fact"}}); err != nil {
		t.Fatal(err)
	}
	facts := doc["hero"].(map[string]any)["facts"].([]any)
	if facts[1] != "updated fact" {
		t.Errorf("facts = %v", facts)
	}
	if facts[0] != "fact zero" {
		t.Errorf("sibling changed: %v", facts)
	}
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		patch   Patch
		wantSub string
	}{
		{"missing key", Patch{Path: "about.missing", Text: "x"}, `"missing" not found`},
		{"index out of range", Patch{Path: "focus_now.items[9].one_liner", Lang: "it", Text: "x"}, "out of range"},
		{"index into object", Patch{Path: "about[0]", Text: "x"}, "not an array"},
		{"lang on plain string", Patch{Path: "hero.tagline", Lang: "en", Text: "x"}, "not a localized object"},
		{"malformed index", Patch{Path: "focus_now.items[x]", Text: "x"}, "invalid index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Apply(sampleDoc(), []Patch{tt.patch})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.patch.Path) {
				t.Errorf("error %q does not name the path", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patches.yaml")
	content := `patches:
  - path: about.paragraph
    lang: en
    text: corrected text
  - path: hero.tagline
    text: plain replacement
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	patches, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 2 {
		t.Fatalf("got %d patches, want 2", len(patches))
	}
	if patches[0].Lang != "en" || patches[0].Text != "corrected text" {
		t.Errorf("first patch = %+v", patches[0])
	}
	if patches[1].Lang != "" {
		t.Errorf("second patch lang = %q, want empty", patches[1].Lang)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patches.yaml")
	if err := os.WriteFile(path, []byte("patches: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for an empty patch list")
	}
}
