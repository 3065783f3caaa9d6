package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// overlaySchema constrains user-supplied vocabulary files: a flat mapping of
// word tokens to one of the four category labels.
const overlaySchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"tokens": {
			"type": "object",
			"additionalProperties": {
				"type": "string",
				"enum": ["structure", "creation", "power", "wisdom"]
			}
		}
	},
	"required": ["tokens"],
	"additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func overlayCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("vocabulary.schema.json", strings.NewReader(overlaySchema)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("vocabulary.schema.json")
	})
	return compiledSchema, compileErr
}

// overlayFile is the YAML shape of a vocabulary extension file.
type overlayFile struct {
	Tokens map[string]string `yaml:"tokens" json:"tokens"`
}

// LoadOverlay reads a YAML extension file, validates it against the embedded
// schema, and returns it as a Table. The caller merges it over Default().
func LoadOverlay(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary overlay: %w", err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse vocabulary overlay: %w", err)
	}

	if err := validateOverlay(&overlay); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(overlay.Tokens))
	for token, label := range overlay.Tokens {
		category, err := ParseCategory(label)
		if err != nil {
			return nil, fmt.Errorf("vocabulary overlay %s: %w", path, err)
		}
		entries = append(entries, Entry{Token: token, Category: category})
	}

	return NewTable(entries)
}

func validateOverlay(overlay *overlayFile) error {
	schema, err := overlayCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile vocabulary schema: %w", err)
	}

	// Round-trip through JSON so the validator sees plain maps.
	var v any
	raw, err := json.Marshal(overlay)
	if err != nil {
		return fmt.Errorf("marshal vocabulary overlay for validation: %w", err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("normalize vocabulary overlay for validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("vocabulary overlay schema validation failed: %w", err)
	}
	return nil
}
