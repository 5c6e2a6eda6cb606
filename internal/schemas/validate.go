// Package schemas validates scrape output against the profile JSON Schema
// before it is written or stored.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchemaJSON []byte

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResult checks a scrape result document against the embedded
// profile schema. The document may be a struct or raw JSON bytes.
func ValidateResult(document any) error {
	var documentLoader gojsonschema.JSONLoader
	switch doc := document.(type) {
	case []byte:
		documentLoader = gojsonschema.NewBytesLoader(doc)
	case json.RawMessage:
		documentLoader = gojsonschema.NewBytesLoader(doc)
	default:
		data, err := json.Marshal(document)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		documentLoader = gojsonschema.NewBytesLoader(data)
	}

	schemaLoader := gojsonschema.NewBytesLoader(profileSchemaJSON)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return &ValidationError{Errors: fieldErrors}
}
