// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package icons

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceEmoji(t *testing.T) {
	doc := map[string]any{
		"title": "🎯 Goals",
		"nested": map[string]any{
			"items": []any{"📚 Reading", "no emoji here", 42.0},
		},
	}

	out, changed := ReplaceEmoji(doc)
	if changed != 2 {
		t.Errorf("changed = %d, want 2", changed)
	}

	root := out.(map[string]any)
	if root["title"] != `<i class="fa fa-bullseye"></i> Goals` {
		t.Errorf("title = %q", root["title"])
	}
	items := root["nested"].(map[string]any)["items"].([]any)
	if items[0] != `<i class="fa fa-book"></i> Reading` {
		t.Errorf("items[0] = %q", items[0])
	}
	if items[1] != "no emoji here" {
		t.Errorf("items[1] = %q", items[1])
	}
	if items[2] != 42.0 {
		t.Errorf("non-string mutated: %v", items[2])
	}
}

func TestReplaceEmoji_ScalarRoot(t *testing.T) {
	out, changed := ReplaceEmoji("🚀 launch")
	if changed != 1 || out != `<i class="fa fa-rocket"></i> launch` {
		t.Errorf("got %q (changed=%d)", out, changed)
	}
}

func decoratedDoc() map[string]any {
	return map[string]any{
		"hero": map[string]any{
			"bullets": []any{
				map[string]any{"en": "Causality first", "it": "Prima la causalità"},
				map[string]any{"en": "Explainable models"},
			},
		},
		"i18n": map[string]any{
			"en": map[string]any{"nav.home": "Home", "nav.contact": "Contact", "untouched": "x"},
			"it": map[string]any{"nav.home": "Inizio"},
		},
		"focus_now": map[string]any{
			"items": []any{
				map[string]any{"title": map[string]any{"en": "Causality"}},
			},
		},
		"background": []any{
			map[string]any{
				"period":       "2019-2023",
				"organization": map[string]any{"en": "University", "it": "Università"},
			},
		},
		"education": []any{
			map[string]any{"year": "2018", "institution": "Università di Cagliari"},
		},
		"people": []any{
			map[string]any{"name": "Prof. C."},
		},
		"reading": []any{
			map[string]any{"title": "Causal inference book"},
		},
		"projects": map[string]any{
			"categories": []any{
				map[string]any{
					"items": []any{
						map[string]any{"label": "Demo A", "type": "demo"},
						map[string]any{"label": "Other"},
					},
				},
			},
		},
	}
}

func TestDecorate(t *testing.T) {
	doc := decoratedDoc()
	changed := Decorate(doc, DefaultRules())
	if changed == 0 {
		t.Fatal("nothing decorated")
	}

	hero := doc["hero"].(map[string]any)["bullets"].([]any)
	first := hero[0].(map[string]any)
	if !strings.HasPrefix(first["en"].(string), `<i class="fa fa-chain"></i> `) {
		t.Errorf("hero bullet en = %q", first["en"])
	}
	if !strings.HasPrefix(first["it"].(string), `<i class="fa fa-chain"></i> `) {
		t.Errorf("hero bullet it = %q", first["it"])
	}
	second := hero[1].(map[string]any)
	if !strings.HasPrefix(second["en"].(string), `<i class="fa fa-lightbulb-o"></i> `) {
		t.Errorf("hero bullet 2 = %q", second["en"])
	}

	en := doc["i18n"].(map[string]any)["en"].(map[string]any)
	if !strings.HasPrefix(en["nav.home"].(string), `<i class="fa fa-home"></i> `) {
		t.Errorf("nav.home = %q", en["nav.home"])
	}
	if en["untouched"] != "x" {
		t.Errorf("unmapped label changed: %q", en["untouched"])
	}

	title := doc["focus_now"].(map[string]any)["items"].([]any)[0].(map[string]any)["title"].(map[string]any)
	if !strings.HasPrefix(title["en"].(string), `<i class="fa fa-link"></i> `) {
		t.Errorf("focus title = %q", title["en"])
	}

	entry := doc["background"].([]any)[0].(map[string]any)
	if !strings.HasPrefix(entry["period"].(string), `<i class="fa fa-calendar"></i> `) {
		t.Errorf("period = %q", entry["period"])
	}

	items := doc["projects"].(map[string]any)["categories"].([]any)[0].(map[string]any)["items"].([]any)
	if !strings.HasPrefix(items[0].(map[string]any)["label"].(string), `<i class="fa fa-desktop"></i> `) {
		t.Errorf("demo label = %q", items[0].(map[string]any)["label"])
	}
	if !strings.HasPrefix(items[1].(map[string]any)["label"].(string), `<i class="fa fa-cube"></i> `) {
		t.Errorf("default label = %q", items[1].(map[string]any)["label"])
	}

	reading := doc["reading"].([]any)[0].(map[string]any)
	if !strings.HasPrefix(reading["title"].(string), `<i class="fa fa-book"></i> `) {
		t.Errorf("reading title = %q", reading["title"])
	}
}

func TestDecorate_Idempotent(t *testing.T) {
	doc := decoratedDoc()
	Decorate(doc, DefaultRules())
	if changed := Decorate(doc, DefaultRules()); changed != 0 {
		t.Errorf("second pass changed %d values", changed)
	}
}

func TestDecorate_MissingSections(t *testing.T) {
	doc := map[string]any{"person": map[string]any{"name": "A. Z."}}
	if changed := Decorate(doc, DefaultRules()); changed != 0 {
		t.Errorf("decorated %d values in a document with no decorable sections", changed)
	}
}

func TestLoadRules_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "person_icon: '<i class=\"fa fa-user-circle\"></i>'\nhero_bullets:\n  - '<i class=\"fa fa-star\"></i>'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	if rules.PersonIcon != `<i class="fa fa-user-circle"></i>` {
		t.Errorf("PersonIcon = %q", rules.PersonIcon)
	}
	if len(rules.HeroBullets) != 1 {
		t.Errorf("HeroBullets = %v", rules.HeroBullets)
	}
	// Unset fields keep their defaults.
	if rules.ReadingIcon != DefaultRules().ReadingIcon {
		t.Errorf("ReadingIcon = %q", rules.ReadingIcon)
	}
	if len(rules.I18nLabels) == 0 {
		t.Error("I18nLabels lost defaults")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error")
	}
}
