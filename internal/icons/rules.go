// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package icons

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/azedda/sitekit/internal/profile"
)

// RuleSet declares which document fields get an icon prefix. Positional
// lists pair icons with items by index; map rules key on i18n label or
// project type. Decoration is idempotent: a value already carrying
// markup is never prefixed twice.
type RuleSet struct {
	// HeroBullets are positional icons for hero.bullets.
	HeroBullets []string `yaml:"hero_bullets"`
	// FocusTitles are positional icons for focus_now.items[].title.
	FocusTitles []string `yaml:"focus_titles"`
	// CollabTitles are positional icons for collaboration_modes[].title.
	CollabTitles []string `yaml:"collab_titles"`
	// BoundaryRules are positional icons for about.boundary_rules.
	BoundaryRules []string `yaml:"boundary_rules"`

	// I18nLabels maps i18n keys to icons, applied per language.
	I18nLabels map[string]string `yaml:"i18n_labels"`

	// ProjectTypeIcons maps a project item's type to its icon;
	// ProjectDefaultIcon covers everything else.
	ProjectTypeIcons   map[string]string `yaml:"project_type_icons"`
	ProjectDefaultIcon string            `yaml:"project_default_icon"`

	// Field icons for timeline and list entries.
	PeriodIcon       string `yaml:"period_icon"`
	OrganizationIcon string `yaml:"organization_icon"`
	YearIcon         string `yaml:"year_icon"`
	InstitutionIcon  string `yaml:"institution_icon"`
	PersonIcon       string `yaml:"person_icon"`
	ReadingIcon      string `yaml:"reading_icon"`
}

// DefaultRules returns the decoration scheme the site ships with.
func DefaultRules() RuleSet {
	return RuleSet{
		HeroBullets: []string{
			`<i class="fa fa-chain"></i>`,
			`<i class="fa fa-lightbulb-o"></i>`,
			`<i class="fa fa-check-circle-o"></i>`,
			`<i class="fa fa-arrows-alt"></i>`,
		},
		FocusTitles: []string{
			`<i class="fa fa-link"></i>`,
			`<i class="fa fa-eye"></i>`,
			`<i class="fa fa-repeat"></i>`,
			`<i class="fa fa-sitemap"></i>`,
		},
		CollabTitles: []string{
			`<i class="fa fa-flask"></i>`,
			`<i class="fa fa-line-chart"></i>`,
			`<i class="fa fa-heartbeat"></i>`,
			`<i class="fa fa-code"></i>`,
		},
		BoundaryRules: []string{
			`<i class="fa fa-cube"></i>`,
			`<i class="fa fa-filter"></i>`,
			`<i class="fa fa-pause-circle"></i>`,
			`<i class="fa fa-refresh"></i>`,
		},
		I18nLabels: map[string]string{
			"hero.kicker":            `<i class="fa fa-file-text-o"></i>`,
			"hero.ctaProjects":       `<i class="fa fa-folder-open-o"></i>`,
			"hero.ctaEmail":          `<i class="fa fa-envelope-o"></i>`,
			"hero.factCurrent":       `<i class="fa fa-briefcase"></i>`,
			"hero.factLocation":      `<i class="fa fa-map-marker"></i>`,
			"hero.factCollaboration": `<i class="fa fa-handshake-o"></i>`,
			"hero.pillarsLabel":      `<i class="fa fa-th-list"></i>`,

			"epistemic.questionsLabel":  `<i class="fa fa-question-circle-o"></i>`,
			"epistemic.methodLabel":     `<i class="fa fa-cogs"></i>`,
			"epistemic.domainsLabel":    `<i class="fa fa-sitemap"></i>`,
			"epistemic.commitmentLabel": `<i class="fa fa-compass"></i>`,

			"nav.home":     `<i class="fa fa-home"></i>`,
			"nav.index":    `<i class="fa fa-list"></i>`,
			"nav.note":     `<i class="fa fa-file-text"></i>`,
			"nav.evidence": `<i class="fa fa-check-square"></i>`,
			"nav.contact":  `<i class="fa fa-envelope"></i>`,

			"focus.lead":     `<i class="fa fa-angle-right"></i>`,
			"epistemic.lead": `<i class="fa fa-angle-right"></i>`,
			"note.lead":      `<i class="fa fa-angle-right"></i>`,
			"evidence.lead":  `<i class="fa fa-angle-right"></i>`,

			"os.title":              `<i class="fa fa-cogs"></i>`,
			"os.subtitle":           `<i class="fa fa-cogs"></i>`,
			"capabilities.title":    `<i class="fa fa-briefcase"></i>`,
			"capabilities.subtitle": `<i class="fa fa-briefcase"></i>`,
			"toolbox.title":         `<i class="fa fa-wrench"></i>`,
			"toolbox.subtitle":      `<i class="fa fa-wrench"></i>`,
			"background.title":      `<i class="fa fa-road"></i>`,
			"background.subtitle":   `<i class="fa fa-map-marker"></i>`,
			"projects.title":        `<i class="fa fa-cubes"></i>`,
			"projects.subtitle":     `<i class="fa fa-cubes"></i>`,
			"people.title":          `<i class="fa fa-users"></i>`,
			"people.subtitle":       `<i class="fa fa-users"></i>`,
			"about.title":           `<i class="fa fa-user"></i>`,
			"about.subtitle":        `<i class="fa fa-user"></i>`,
		},
		ProjectTypeIcons: map[string]string{
			"evidence_card": `<i class="fa fa-check-circle"></i>`,
			"demo":          `<i class="fa fa-desktop"></i>`,
			"tool":          `<i class="fa fa-wrench"></i>`,
		},
		ProjectDefaultIcon: `<i class="fa fa-cube"></i>`,
		PeriodIcon:         `<i class="fa fa-calendar"></i>`,
		OrganizationIcon:   `<i class="fa fa-building-o"></i>`,
		YearIcon:           `<i class="fa fa-calendar"></i>`,
		InstitutionIcon:    `<i class="fa fa-university"></i>`,
		PersonIcon:         `<i class="fa fa-user"></i>`,
		ReadingIcon:        `<i class="fa fa-book"></i>`,
	}
}

// LoadRules reads a YAML rule file and overlays it on the defaults:
// fields left empty in the file keep their default value.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules file: %w", err)
	}
	var loaded RuleSet
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	rules := DefaultRules()
	if len(loaded.HeroBullets) > 0 {
		rules.HeroBullets = loaded.HeroBullets
	}
	if len(loaded.FocusTitles) > 0 {
		rules.FocusTitles = loaded.FocusTitles
	}
	if len(loaded.CollabTitles) > 0 {
		rules.CollabTitles = loaded.CollabTitles
	}
	if len(loaded.BoundaryRules) > 0 {
		rules.BoundaryRules = loaded.BoundaryRules
	}
	if len(loaded.I18nLabels) > 0 {
		rules.I18nLabels = loaded.I18nLabels
	}
	if len(loaded.ProjectTypeIcons) > 0 {
		rules.ProjectTypeIcons = loaded.ProjectTypeIcons
	}
	if loaded.ProjectDefaultIcon != "" {
		rules.ProjectDefaultIcon = loaded.ProjectDefaultIcon
	}
	if loaded.PeriodIcon != "" {
		rules.PeriodIcon = loaded.PeriodIcon
	}
	if loaded.OrganizationIcon != "" {
		rules.OrganizationIcon = loaded.OrganizationIcon
	}
	if loaded.YearIcon != "" {
		rules.YearIcon = loaded.YearIcon
	}
	if loaded.InstitutionIcon != "" {
		rules.InstitutionIcon = loaded.InstitutionIcon
	}
	if loaded.PersonIcon != "" {
		rules.PersonIcon = loaded.PersonIcon
	}
	if loaded.ReadingIcon != "" {
		rules.ReadingIcon = loaded.ReadingIcon
	}
	return rules, nil
}

// Decorate applies the rule set to the document in place and returns
// the number of values that were prefixed.
func Decorate(doc map[string]any, rules RuleSet) int {
	d := decorator{rules: rules}
	d.heroBullets(doc)
	d.i18nLabels(doc)
	d.positionalTitles(doc, "focus_now", rules.FocusTitles)
	d.collabModes(doc)
	d.boundaryRules(doc)
	d.background(doc)
	d.education(doc)
	d.projectLabels(doc)
	d.people(doc)
	d.reading(doc)
	return d.changed
}

type decorator struct {
	rules   RuleSet
	changed int
}

// prefix returns s with the icon prepended, unless s already starts
// with markup.
func (d *decorator) prefix(s, icon string) string {
	if icon == "" || strings.HasPrefix(s, "<i") {
		return s
	}
	d.changed++
	return icon + " " + s
}

// prefixLocalized prefixes every recognized language entry of a
// localized text object.
func (d *decorator) prefixLocalized(m map[string]any, icon string) {
	for _, lang := range []string{profile.LangEN, profile.LangIT} {
		if s, ok := m[lang].(string); ok {
			m[lang] = d.prefix(s, icon)
		}
	}
}

func (d *decorator) heroBullets(doc map[string]any) {
	hero, ok := doc["hero"].(map[string]any)
	if !ok {
		return
	}
	bullets, ok := hero["bullets"].([]any)
	if !ok {
		return
	}
	for i, raw := range bullets {
		if i >= len(d.rules.HeroBullets) {
			break
		}
		if bullet, ok := raw.(map[string]any); ok {
			d.prefixLocalized(bullet, d.rules.HeroBullets[i])
		}
	}
}

func (d *decorator) i18nLabels(doc map[string]any) {
	i18n, ok := doc["i18n"].(map[string]any)
	if !ok {
		return
	}
	for _, lang := range []string{profile.LangEN, profile.LangIT} {
		table, ok := i18n[lang].(map[string]any)
		if !ok {
			continue
		}
		for key, icon := range d.rules.I18nLabels {
			if s, ok := table[key].(string); ok {
				table[key] = d.prefix(s, icon)
			}
		}
	}
}

// positionalTitles decorates section.items[i].title with icons[i].
func (d *decorator) positionalTitles(doc map[string]any, section string, icons []string) {
	sec, ok := doc[section].(map[string]any)
	if !ok {
		return
	}
	items, ok := sec["items"].([]any)
	if !ok {
		return
	}
	for i, raw := range items {
		if i >= len(icons) {
			break
		}
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if title, ok := item["title"].(map[string]any); ok {
			d.prefixLocalized(title, icons[i])
		}
	}
}

func (d *decorator) collabModes(doc map[string]any) {
	modes, ok := doc["collaboration_modes"].([]any)
	if !ok {
		return
	}
	for i, raw := range modes {
		if i >= len(d.rules.CollabTitles) {
			break
		}
		mode, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if title, ok := mode["title"].(map[string]any); ok {
			d.prefixLocalized(title, d.rules.CollabTitles[i])
		}
	}
}

func (d *decorator) boundaryRules(doc map[string]any) {
	about, ok := doc["about"].(map[string]any)
	if !ok {
		return
	}
	list, ok := about["boundary_rules"].([]any)
	if !ok {
		return
	}
	for i, raw := range list {
		if i >= len(d.rules.BoundaryRules) {
			break
		}
		if rule, ok := raw.(map[string]any); ok {
			d.prefixLocalized(rule, d.rules.BoundaryRules[i])
		}
	}
}

func (d *decorator) background(doc map[string]any) {
	entries, ok := doc["background"].([]any)
	if !ok {
		return
	}
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if period, ok := entry["period"].(string); ok {
			entry["period"] = d.prefix(period, d.rules.PeriodIcon)
		}
		if org, ok := entry["organization"].(map[string]any); ok {
			d.prefixLocalized(org, d.rules.OrganizationIcon)
		}
	}
}

func (d *decorator) education(doc map[string]any) {
	entries, ok := doc["education"].([]any)
	if !ok {
		return
	}
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if year, ok := entry["year"].(string); ok {
			entry["year"] = d.prefix(year, d.rules.YearIcon)
		}
		if inst, ok := entry["institution"].(string); ok {
			entry["institution"] = d.prefix(inst, d.rules.InstitutionIcon)
		}
	}
}

// projectLabels handles the grouped form of the projects section
// (an object holding categories of labeled items). The flat array form
// carries no labels and is left alone.
func (d *decorator) projectLabels(doc map[string]any) {
	projects, ok := doc["projects"].(map[string]any)
	if !ok {
		return
	}
	categories, ok := projects["categories"].([]any)
	if !ok {
		return
	}
	for _, rawCat := range categories {
		cat, ok := rawCat.(map[string]any)
		if !ok {
			continue
		}
		items, ok := cat["items"].([]any)
		if !ok {
			continue
		}
		for _, rawItem := range items {
			item, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			label, ok := item["label"].(string)
			if !ok {
				continue
			}
			icon := d.rules.ProjectDefaultIcon
			if typ, ok := item["type"].(string); ok {
				if mapped, ok := d.rules.ProjectTypeIcons[typ]; ok {
					icon = mapped
				}
			}
			item["label"] = d.prefix(label, icon)
		}
	}
}

func (d *decorator) people(doc map[string]any) {
	people, ok := doc["people"].([]any)
	if !ok {
		return
	}
	for _, raw := range people {
		person, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := person["name"].(string); ok {
			person["name"] = d.prefix(name, d.rules.PersonIcon)
		}
	}
}

// reading decorates the list form of the reading section; the object
// form (domains) carries no titles.
func (d *decorator) reading(doc map[string]any) {
	entries, ok := doc["reading"].([]any)
	if !ok {
		return
	}
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if title, ok := entry["title"].(string); ok {
			entry["title"] = d.prefix(title, d.rules.ReadingIcon)
		}
	}
}
