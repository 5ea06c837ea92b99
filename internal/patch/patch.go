// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package patch applies declarative text corrections to the profile
// document. A patch file names a field by dotted path and supplies the
// replacement text, optionally per language.
package patch

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Patch sets one text field. Path addresses the field with dot-separated
// keys and bracketed indexes, e.g. "focus_now.items[1].one_liner".
// When Lang is set the target must be a localized object and only that
// language entry is replaced; otherwise the field itself becomes Text.
type Patch struct {
	Path string `yaml:"path"`
	Lang string `yaml:"lang,omitempty"`
	Text string `yaml:"text"`
}

// File is the on-disk patch list.
type File struct {
	Patches []Patch `yaml:"patches"`
}

// LoadFile reads a YAML patch file.
func LoadFile(path string) ([]Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing patch file %s: %w", path, err)
	}
	if len(f.Patches) == 0 {
		return nil, fmt.Errorf("patch file %s contains no patches", path)
	}
	return f.Patches, nil
}

// Apply applies the patches to the document in order. A patch whose
// path does not resolve aborts with an error naming that path; earlier
// patches stay applied, matching the one-shot nature of the tool.
func Apply(doc map[string]any, patches []Patch) error {
	for _, p := range patches {
		if err := applyOne(doc, p); err != nil {
			return fmt.Errorf("patch %q: %w", p.Path, err)
		}
	}
	return nil
}

func applyOne(doc map[string]any, p Patch) error {
	segments, err := parsePath(p.Path)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("empty path")
	}

	parent, last, err := walk(doc, segments)
	if err != nil {
		return err
	}

	if p.Lang == "" {
		return setValue(parent, last, p.Text)
	}

	// Per-language patch: the addressed field must hold a localized object.
	target, err := getValue(parent, last)
	if err != nil {
		return err
	}
	localized, ok := target.(map[string]any)
	if !ok {
		return fmt.Errorf("field is %T, not a localized object", target)
	}
	localized[p.Lang] = p.Text
	return nil
}

// segment is one step of a parsed path: a map key or a list index.
type segment struct {
	key   string
	index int
	isIdx bool
}

func (s segment) String() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// parsePath splits "a.b[2].c" into key and index segments.
func parsePath(path string) ([]segment, error) {
	var segments []segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("empty path segment")
		}
		key := part
		var idxParts []string
		if open := strings.Index(part, "["); open >= 0 {
			key = part[:open]
			rest := part[open:]
			for rest != "" {
				end := strings.Index(rest, "]")
				if !strings.HasPrefix(rest, "[") || end < 0 {
					return nil, fmt.Errorf("malformed index in segment %q", part)
				}
				idxParts = append(idxParts, rest[1:end])
				rest = rest[end+1:]
			}
		}
		if key != "" {
			segments = append(segments, segment{key: key})
		}
		for _, raw := range idxParts {
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid index %q in segment %q", raw, part)
			}
			segments = append(segments, segment{index: idx, isIdx: true})
		}
	}
	return segments, nil
}

// walk descends to the parent of the final segment.
func walk(doc map[string]any, segments []segment) (parent any, last segment, err error) {
	var cur any = doc
	for _, seg := range segments[:len(segments)-1] {
		cur, err = getValue(cur, seg)
		if err != nil {
			return nil, segment{}, err
		}
	}
	return cur, segments[len(segments)-1], nil
}

func getValue(container any, seg segment) (any, error) {
	if seg.isIdx {
		list, ok := container.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot index %s: value is %T, not an array", seg, container)
		}
		if seg.index >= len(list) {
			return nil, fmt.Errorf("index %s out of range (len %d)", seg, len(list))
		}
		return list[seg.index], nil
	}

	obj, ok := container.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot descend into %q: value is %T, not an object", seg.key, container)
	}
	val, ok := obj[seg.key]
	if !ok {
		return nil, fmt.Errorf("key %q not found", seg.key)
	}
	return val, nil
}

func setValue(container any, seg segment, text string) error {
	if seg.isIdx {
		list, ok := container.([]any)
		if !ok {
			return fmt.Errorf("cannot index %s: value is %T, not an array", seg, container)
		}
		if seg.index >= len(list) {
			return fmt.Errorf("index %s out of range (len %d)", seg, len(list))
		}
		list[seg.index] = text
		return nil
	}

	obj, ok := container.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot set %q: value is %T, not an object", seg.key, container)
	}
	if _, exists := obj[seg.key]; !exists {
		return fmt.Errorf("key %q not found", seg.key)
	}
	obj[seg.key] = text
	return nil
}
