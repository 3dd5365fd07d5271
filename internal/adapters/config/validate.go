package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed schema/bootstrap.schema.json
var schemaBytes []byte

const schemaURL = "bootstrap.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to unmarshal config schema")
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = zerr.Wrap(err, "failed to add config schema resource")
			return
		}
		compiledSchema, err = c.Compile(schemaURL)
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to compile config schema")
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw YAML bytes against the configuration schema.
func validateDocument(data []byte, source string) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", source)
	}
	if raw == nil {
		// Empty document: nothing to override.
		return nil
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to convert config to JSON"), "path", source)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to prepare config for validation"), "path", source)
	}

	if err := schema.Validate(inst); err != nil {
		invalid := zerr.Wrap(domain.ErrInvalidConfig, "schema validation failed")
		invalid = zerr.With(invalid, "path", source)
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			invalid = zerr.With(invalid, "issues", strings.Join(collectIssues(ve), "; "))
		}
		return invalid
	}

	return nil
}

// collectIssues flattens the leaves of a validation error tree into "location: message" strings.
func collectIssues(ve *jsonschema.ValidationError) []string {
	seen := make(map[string]bool)
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			msg := e.Error()
			if e.ErrorKind != nil {
				msg = e.ErrorKind.LocalizedString(printer)
			}
			seen["/"+strings.Join(e.InstanceLocation, "/")+": "+msg] = true
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	issues := make([]string, 0, len(seen))
	for issue := range seen {
		issues = append(issues, issue)
	}
	sort.Strings(issues)
	return issues
}

// normalizeYAML converts YAML-decoded values to JSON-compatible types.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			if ks, ok := k.(string); ok {
				m[ks] = normalizeYAML(v)
			}
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, v := range val {
			s[i] = normalizeYAML(v)
		}
		return s
	default:
		return v
	}
}
