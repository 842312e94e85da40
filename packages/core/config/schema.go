package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var scenarioSchema []byte

// ValidationError collects every schema violation found in an effective
// configuration.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario configuration: %s", strings.Join(e.Violations, "; "))
}

// Validate checks the effective configuration against schema. A nil schema
// selects the embedded scenario schema. Violations are collected into a
// single *ValidationError rather than reported one at a time.
func (e *Effective) Validate(schema []byte) error {
	if schema == nil {
		schema = scenarioSchema
	}

	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(e.Tree)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ValidationError{Violations: violations}
}
