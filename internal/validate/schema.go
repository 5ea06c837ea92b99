// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// CheckSchema validates raw document bytes against a JSON Schema file
// and returns one message per schema violation, in the order the
// schema library reports them. A broken or unreadable schema is an
// error, not a violation: the caller cannot tell a bad document from a
// bad schema otherwise.
func CheckSchema(schemaPath string, document []byte) ([]string, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("resolving schema path %s: %w", schemaPath, err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("running schema validation with %s: %w", schemaPath, err)
	}

	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("schema: %s: %s", desc.Field(), desc.Description()))
	}
	return msgs, nil
}
