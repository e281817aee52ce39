// Package schemas holds the JSON response contracts for structured
// generation stages, validated with JSON Schema before deserialization.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names for the structured stage responses.
const (
	IdeaItems    = "idea_items.schema.json"
	Outline      = "outline.schema.json"
	Polish       = "polish.schema.json"
	Hashtagize   = "hashtagize.schema.json"
	ImagePrompts = "image_prompts.schema.json"
	Package      = "package.schema.json"
)

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations for one document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "document does not match %s:", e.Schema)
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, " %s: %s;", fe.Field, fe.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validate checks document against the named embedded schema. It
// returns *ValidationError on a contract violation; the document must
// already be known-valid JSON.
func Validate(name string, document []byte) error {
	schemaData, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("load schema %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validate against %s: %w", name, err)
	}

	if !result.Valid() {
		verr := &ValidationError{Schema: name}
		for _, re := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   re.Field(),
				Message: re.Description(),
			})
		}
		return verr
	}

	return nil
}
