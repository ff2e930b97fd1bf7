// Package schema validates rendered workflow documents against a
// bundled JSON Schema for the GitHub Actions workflow format. The
// schema ships with the library; nothing is fetched from GitHub.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed workflow.schema.json
var workflowSchema string

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidateWorkflow checks a rendered workflow YAML document against the
// bundled workflow schema. A nil return means the document is
// structurally valid for the GitHub Actions parser.
func ValidateWorkflow(document []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	// Parse YAML, then round-trip through JSON so the instance carries
	// the value types the schema compiler expects.
	var raw interface{}
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return fmt.Errorf("failed to parse workflow document: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert workflow document: %w", err)
	}
	var instance interface{}
	if err := json.Unmarshal(jsonData, &instance); err != nil {
		return fmt.Errorf("failed to convert workflow document: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("workflow document failed schema validation: %w", err)
	}
	return nil
}

// compiledSchema compiles the embedded schema once and reuses it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = jsonschema.CompileString("workflow.schema.json", workflowSchema)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile workflow schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}
