package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

const (
	RecordSchema = "record.json"
	ListSchema   = "list.json"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Schema string
	Issues []ValidationIssue
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("%s: %s", ErrSchemaValidation, e.Schema)
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
	return fmt.Sprintf("%s (%s): %s", ErrSchemaValidation, e.Schema, strings.Join(parts, "; "))
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Validator checks upstream payloads against the embedded record and list schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// Default returns the shared validator compiled from the embedded schemas.
func Default() (*Validator, error) {
	defaultOnce.Do(func() {
		defaultValidator, defaultErr = NewValidator()
	})
	return defaultValidator, defaultErr
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	for _, name := range []string{RecordSchema, ListSchema} {
		raw, err := schemaFiles.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
		}
		if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
		}
	}

	schemas := make(map[string]*jsonschema.Schema, 2)
	for _, name := range []string{RecordSchema, ListSchema} {
		compiled, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
		}
		schemas[name] = compiled
	}
	return &Validator{schemas: schemas}, nil
}

// ValidateJSON decodes raw and validates it against the named schema.
func (v *Validator) ValidateJSON(schema string, raw []byte) error {
	compiled, ok := v.schemas[schema]
	if !ok {
		return fmt.Errorf("%w: unknown schema %q", ErrSchemaInvalid, schema)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return &PayloadValidationError{
			Schema: schema,
			Issues: []ValidationIssue{{Message: fmt.Sprintf("malformed json: %v", err)}},
		}
	}

	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &PayloadValidationError{Schema: schema, Issues: collectValidationIssues(validationErr)}
		}
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
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
