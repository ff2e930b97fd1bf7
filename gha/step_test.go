package gha

import (
	"errors"
	"strings"
	"testing"
)

func TestRunTrimsOneBlankLineEachEnd(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"surrounding_newlines", "\necho hi\n", "echo hi"},
		{"trailing_newline_only", "echo hi\n", "echo hi"},
		{"leading_newline_only", "\necho hi", "echo hi"},
		{"no_trim_needed", "echo hi", "echo hi"},
		{"only_one_blank_line_trimmed", "\n\necho hi\n\n", "\necho hi\n"},
		{"blank_lines_with_spaces", "  \necho hi\n  ", "echo hi"},
		{"interior_whitespace_preserved", "\n  indented\nflush\n", "  indented\nflush"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			step := Run(test.script)
			if step.script != test.want {
				t.Errorf("Run(%q) stored %q, want %q", test.script, step.script, test.want)
			}
		})
	}
}

func TestWithOnRunStepRejected(t *testing.T) {
	job := NewJob("ubuntu-latest")
	job.AddStep(Run("true", With("key", "value")))
	w := New("bad", OnManual())
	if err := w.AddJob("a", job); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	_, err := w.Render()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Render = %v, want ValidationError", err)
	}
	if !strings.Contains(validation.Reason, "with is only valid on action steps") {
		t.Errorf("reason = %q", validation.Reason)
	}
}

func TestEmptyActionReferenceRejected(t *testing.T) {
	job := NewJob("ubuntu-latest")
	job.AddStep(Action(""))
	w := New("bad", OnManual())
	if err := w.AddJob("a", job); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	_, err := w.Render()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Render = %v, want ValidationError", err)
	}
	if validation.Context != "jobs[a].steps[0]" {
		t.Errorf("context = %q, want jobs[a].steps[0]", validation.Context)
	}
}

func TestContinueOnErrorRendered(t *testing.T) {
	job := NewJob("ubuntu-latest")
	job.AddStep(Run("pnpm audit --audit-level=moderate", ContinueOnError()))
	doc := decode(t, render(t, singleJobWorkflow(t, job)))

	steps := doc["jobs"].(map[string]any)["only"].(map[string]any)["steps"].([]any)
	flag, ok := steps[0].(map[string]any)["continue-on-error"].(bool)
	if !ok || !flag {
		t.Errorf("continue-on-error = %v, want true", steps[0].(map[string]any)["continue-on-error"])
	}
}

func TestWithRepeatedKeyOverwritesInPlace(t *testing.T) {
	job := NewJob("ubuntu-latest")
	job.AddStep(Action("actions/setup-node@v4",
		With("node-version", 18),
		With("registry-url", "https://registry.npmjs.org"),
		With("node-version", 20),
	))
	root := documentRoot(t, render(t, singleJobWorkflow(t, job)))

	steps := mappingValue(t, mappingValue(t, mappingValue(t, root, "jobs"), "only"), "steps")
	with := mappingValue(t, steps.Content[0], "with")
	keys := mappingKeys(t, with)
	if len(keys) != 2 || keys[0] != "node-version" || keys[1] != "registry-url" {
		t.Fatalf("with keys = %v, want [node-version registry-url]", keys)
	}
	if mappingValue(t, with, "node-version").Value != "20" {
		t.Errorf("node-version = %v, want 20", mappingValue(t, with, "node-version").Value)
	}
}

func TestEnvAllowedOnBothVariants(t *testing.T) {
	job := NewJob("ubuntu-latest")
	job.AddStep(Action("actions/checkout@v4", Env("GIT_TRACE", 1)))
	job.AddStep(Run("make", Env("CC", "clang")))
	if _, err := singleJobWorkflow(t, job).Render(); err != nil {
		t.Errorf("Render = %v, want nil", err)
	}
}
