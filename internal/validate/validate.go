// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks the profile document against the structural
// invariants the site's front-end relies on. Violations are accumulated
// and all reported together; only a non-object root aborts checking.
package validate

import (
	"fmt"
	"strings"

	"github.com/azedda/sitekit/internal/profile"
)

// phdExtractKeys are the fields phd_extract must carry, each an array
// of strings.
var phdExtractKeys = []string{
	"research_objective",
	"architecture_stack",
	"innovation",
	"validation_plan",
	"engineering_challenges",
	"dissemination",
	"training_teaching",
}

// specListKeys are the loosely-typed list fields inside a project's
// spec block.
var specListKeys = []string{"inputs", "outputs", "reuse", "constraints", "current_focus"}

// Bullet-count bounds, inclusive on both ends.
const (
	proofBulletsMin = 6
	proofBulletsMax = 10
	bmiEvidenceMin  = 4
	bmiEvidenceMax  = 8
)

// Check validates a decoded document and returns every violation found,
// in detection order. An empty slice means the document is valid. The
// only short-circuit is a root value that is not an object: everything
// downstream assumes a mapping, so that case yields a single message.
func Check(doc any) []string {
	root, ok := doc.(map[string]any)
	if !ok {
		return []string{"Root JSON value must be an object"}
	}

	c := &checker{}
	c.topLevelKeys(root)
	c.i18n(root["i18n"])
	projects := c.projects(root["projects"])
	c.contexts(root["contexts"])
	c.reading(root["reading"])
	c.phdExtract(root["phd_extract"])
	c.proof(root["proof"])
	c.bmiProject(projects)
	return c.errs
}

// checker accumulates violation messages across the check sequence.
type checker struct {
	errs []string
}

func (c *checker) addf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func (c *checker) topLevelKeys(root map[string]any) {
	for _, key := range []string{"person", "i18n", "projects"} {
		if _, ok := root[key]; !ok {
			c.addf("Missing required top-level key: %s", key)
		}
	}
}

func (c *checker) i18n(v any) {
	if v == nil {
		return
	}
	i18n, ok := v.(map[string]any)
	if !ok {
		c.addf("i18n must be an object")
		return
	}
	for _, lang := range []string{profile.LangEN, profile.LangIT} {
		entry, ok := i18n[lang]
		if !ok {
			c.addf("i18n missing language: %s", lang)
			continue
		}
		if _, ok := entry.(map[string]any); !ok {
			c.addf("i18n.%s must be an object", lang)
		}
	}
}

// projects validates the project list and returns it (when it is a
// list) so the id=bmi check can run after the other sections.
func (c *checker) projects(v any) []any {
	if v == nil {
		return nil
	}
	projects, ok := v.([]any)
	if !ok {
		c.addf("projects must be an array")
		return nil
	}

	seen := map[string]bool{}
	for idx, p := range projects {
		proj, ok := p.(map[string]any)
		if !ok {
			c.addf("projects[%d] must be an object", idx)
			continue
		}

		pid, isString := proj["id"].(string)
		switch {
		case !isString || strings.TrimSpace(pid) == "":
			c.addf("projects[%d].id must be a non-empty string", idx)
		case seen[pid]:
			// First occurrence wins; only repeats are flagged.
			c.addf("Duplicate projects[].id: %s", pid)
		default:
			seen[pid] = true
		}

		c.contained(idx, proj["contained"])
		c.projectSpec(idx, proj["spec"])
	}
	return projects
}

func (c *checker) contained(idx int, v any) {
	if v == nil {
		return
	}
	contained, ok := v.([]any)
	if !ok {
		c.addf("projects[%d].contained must be an array", idx)
		return
	}
	for cidx, raw := range contained {
		item, ok := raw.(map[string]any)
		if !ok {
			c.addf("projects[%d].contained[%d] must be an object", idx, cidx)
			continue
		}
		if !isStringOrObject(item["name"]) {
			c.addf("projects[%d].contained[%d].name must be string or localized object", idx, cidx)
		}
		if tagline, ok := item["tagline"]; ok && !isStringOrObject(tagline) {
			c.addf("projects[%d].contained[%d].tagline must be string or localized object", idx, cidx)
		}
	}
}

func (c *checker) projectSpec(idx int, v any) {
	if v == nil {
		return
	}
	spec, ok := v.(map[string]any)
	if !ok {
		c.addf("projects[%d].spec must be an object", idx)
		return
	}

	// Only types are validated; the content is intentionally flexible.
	if status, ok := spec["status"]; ok {
		if _, isString := status.(string); !isString {
			c.addf("projects[%d].spec.status must be a string", idx)
		}
	}
	for _, key := range []string{"boundary", "purpose"} {
		if val, ok := spec[key]; ok && !profile.IsText(val) {
			c.addf("projects[%d].spec.%s must be string or localized object", idx, key)
		}
	}
	for _, key := range specListKeys {
		if val, ok := spec[key]; ok {
			if _, isList := val.([]any); !isList {
				c.addf("projects[%d].spec.%s must be an array", idx, key)
			}
		}
	}
}

func (c *checker) contexts(v any) {
	if v == nil {
		return
	}
	contexts, ok := v.(map[string]any)
	if !ok {
		c.addf("contexts must be an object")
		return
	}
	if disclaimer, ok := contexts["disclaimer"]; ok && !profile.IsText(disclaimer) {
		c.addf("contexts.disclaimer must be string or localized object")
	}
	for _, key := range []string{"direct_work", "operational_exposure"} {
		if val, ok := contexts[key]; ok {
			if _, isList := val.([]any); !isList {
				c.addf("contexts.%s must be an array", key)
			}
		}
	}
}

func (c *checker) reading(v any) {
	if v == nil {
		return
	}
	reading, ok := v.(map[string]any)
	if !ok {
		c.addf("reading must be an object")
		return
	}
	if domains := reading["domains"]; domains != nil {
		if _, isList := domains.([]any); !isList {
			c.addf("reading.domains must be an array")
		}
	}
}

func (c *checker) phdExtract(v any) {
	if v == nil {
		c.addf("Missing required top-level key: phd_extract")
		return
	}
	extract, ok := v.(map[string]any)
	if !ok {
		c.addf("phd_extract must be an object")
		return
	}

	if _, ok := extract["source"].(map[string]any); !ok {
		c.addf("phd_extract.source must be an object")
	}
	for _, key := range phdExtractKeys {
		val, present := extract[key]
		switch {
		case !present || val == nil:
			c.addf("phd_extract missing required key: %s", key)
		case !isStringList(val):
			c.addf("phd_extract.%s must be an array of strings", key)
		}
	}
}

// proof locates the DoMoMEA evidence items by case-insensitive substring
// match on the English variant of each item label. Every match is
// validated independently, reported with its 1-based position among the
// matches.
func (c *checker) proof(v any) {
	proof, ok := v.(map[string]any)
	if !ok {
		return
	}
	categories, ok := proof["categories"].([]any)
	if !ok {
		return
	}

	var matches []map[string]any
	for _, rawGroup := range categories {
		group, ok := rawGroup.(map[string]any)
		if !ok {
			continue
		}
		items, ok := group["items"].([]any)
		if !ok {
			continue
		}
		for _, rawItem := range items {
			item, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			labelEN, ok := profile.EnglishVariant(item["label"])
			if ok && strings.Contains(strings.ToLower(labelEN), "domomea") {
				matches = append(matches, item)
			}
		}
	}

	if len(matches) == 0 {
		c.addf("proof.categories must include a DoMoMEA evidence item")
		return
	}
	for idx, item := range matches {
		bullets := item["bullets"]
		if !isStringList(bullets) {
			c.addf("DoMoMEA proof item #%d bullets must be an array of strings", idx+1)
		} else if n := len(bullets.([]any)); n < proofBulletsMin || n > proofBulletsMax {
			c.addf("DoMoMEA proof item #%d bullets must have %d–%d items", idx+1, proofBulletsMin, proofBulletsMax)
		}
		if !isStringOrObject(item["source"]) {
			c.addf("DoMoMEA proof item #%d source must be a string or localized object", idx+1)
		}
	}
}

func (c *checker) bmiProject(projects []any) {
	if projects == nil {
		return
	}
	var bmi map[string]any
	for _, raw := range projects {
		if proj, ok := raw.(map[string]any); ok && proj["id"] == "bmi" {
			bmi = proj
			break
		}
	}
	if bmi == nil {
		c.addf("projects must include id=bmi")
		return
	}
	evidence := bmi["evidence_bullets"]
	if evidence == nil {
		return
	}
	if !isStringList(evidence) {
		c.addf("projects[id=bmi].evidence_bullets must be an array of strings")
	} else if n := len(evidence.([]any)); n < bmiEvidenceMin || n > bmiEvidenceMax {
		c.addf("projects[id=bmi].evidence_bullets must have %d–%d items", bmiEvidenceMin, bmiEvidenceMax)
	}
}

// isStringOrObject accepts a plain string or any object. Several fields
// (contained names, proof sources) allow arbitrary objects, not just
// localized ones.
func isStringOrObject(v any) bool {
	switch v.(type) {
	case string, map[string]any:
		return true
	}
	return false
}

func isStringList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}
