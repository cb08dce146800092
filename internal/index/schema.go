package index

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMetadataValidation marks custom front-matter fields rejected by the
// configured metadata schema.
var ErrMetadataValidation = errors.New("index: metadata schema validation failed")

// MetadataIssue captures a single schema violation.
type MetadataIssue struct {
	Location string
	Message  string
}

// MetadataValidationError surfaces schema violations with instance locations.
type MetadataValidationError struct {
	Issues []MetadataIssue
	Cause  error
}

func (e *MetadataValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrMetadataValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *MetadataValidationError) Unwrap() error {
	return ErrMetadataValidation
}

// ValidateMetadata validates custom front-matter fields against the supplied
// JSON schema. A nil or empty schema validates everything.
func ValidateMetadata(schema map[string]any, payload map[string]any) error {
	if len(schema) == 0 {
		return nil
	}
	if payload == nil {
		payload = map[string]any{}
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataValidation, err)
	}
	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &MetadataValidationError{
				Issues: collectMetadataIssues(validationErr),
				Cause:  err,
			}
		}
		return &MetadataValidationError{Cause: err}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("metadata.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("metadata.json")
}

func collectMetadataIssues(err *jsonschema.ValidationError) []MetadataIssue {
	if err == nil {
		return nil
	}
	issues := []MetadataIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, MetadataIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
