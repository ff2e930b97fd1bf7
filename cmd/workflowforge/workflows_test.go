package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sourceplane/workflowforge/schema"
)

func TestDefinitionsRenderAndPassSchema(t *testing.T) {
	for _, def := range definitions {
		t.Run(def.file, func(t *testing.T) {
			w, err := def.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			data, err := w.Render()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if err := schema.ValidateWorkflow(data); err != nil {
				t.Errorf("schema validation: %v\n%s", err, data)
			}
		})
	}
}

func TestGenerateWritesAllWorkflows(t *testing.T) {
	dir := t.TempDir()
	outputDir = dir
	skipSchema = false
	defer func() { outputDir = ".github/workflows" }()

	if err := generateWorkflows(); err != nil {
		t.Fatalf("generateWorkflows: %v", err)
	}

	for _, def := range definitions {
		if _, err := os.Stat(filepath.Join(dir, def.file)); err != nil {
			t.Errorf("missing %s: %v", def.file, err)
		}
	}
}

func TestCIWorkflowShape(t *testing.T) {
	w, err := buildCI()
	if err != nil {
		t.Fatalf("buildCI: %v", err)
	}
	data, err := w.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc["name"] != "CI" {
		t.Errorf("name = %v, want CI", doc["name"])
	}

	jobs := doc["jobs"].(map[string]any)
	build, ok := jobs["build"].(map[string]any)
	if !ok {
		t.Fatalf("missing build job")
	}
	if _, ok := jobs["audit"]; !ok {
		t.Fatalf("missing audit job")
	}

	matrix := build["strategy"].(map[string]any)["matrix"].(map[string]any)
	axis := matrix["node-version"].([]any)
	if len(axis) != 2 || axis[0] != 22 || axis[1] != 20 {
		t.Errorf("node-version axis = %v, want [22 20] as integers", axis)
	}

	steps := build["steps"].([]any)
	if len(steps) != 9 {
		t.Errorf("len(build.steps) = %d, want 9", len(steps))
	}
}

func TestPublishWorkflowCarriesSecretReference(t *testing.T) {
	w, err := buildPublish()
	if err != nil {
		t.Fatalf("buildPublish: %v", err)
	}
	data, err := w.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse: %v", err)
	}
	publish := doc["jobs"].(map[string]any)["publish"].(map[string]any)

	permissions := publish["permissions"].(map[string]any)
	if permissions["contents"] != "read" || permissions["id-token"] != "write" {
		t.Errorf("permissions = %v", permissions)
	}

	steps := publish["steps"].([]any)
	last := steps[len(steps)-1].(map[string]any)
	env := last["env"].(map[string]any)
	if env["NPM_TOKEN"] != "${{ secrets.NPM_TOKEN }}" {
		t.Errorf("NPM_TOKEN = %v, want the untouched secrets reference", env["NPM_TOKEN"])
	}
}
