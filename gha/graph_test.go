package gha

import (
	"errors"
	"strings"
	"testing"
)

func jobWithStep(opts ...JobOption) *Job {
	job := NewJob("ubuntu-latest", opts...)
	job.AddStep(Run("true"))
	return job
}

func TestCycleRejected(t *testing.T) {
	w := New("cyclic", OnManual())
	if err := w.AddJob("a", jobWithStep(Needs("b"))); err != nil {
		t.Fatalf("AddJob(a): %v", err)
	}
	if err := w.AddJob("b", jobWithStep(Needs("a"))); err != nil {
		t.Fatalf("AddJob(b): %v", err)
	}

	_, err := w.Render()
	var dependency *DependencyError
	if !errors.As(err, &dependency) {
		t.Fatalf("Render = %v, want DependencyError", err)
	}
	if !strings.Contains(dependency.Reason, "cycle") {
		t.Errorf("reason = %q, want it to mention a cycle", dependency.Reason)
	}
}

func TestSelfCycleRejected(t *testing.T) {
	w := New("selfcyclic", OnManual())
	if err := w.AddJob("a", jobWithStep(Needs("a"))); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	_, err := w.Render()
	var dependency *DependencyError
	if !errors.As(err, &dependency) {
		t.Fatalf("Render = %v, want DependencyError", err)
	}
	if dependency.JobID != "a" {
		t.Errorf("JobID = %q, want a", dependency.JobID)
	}
}

func TestDanglingNeedsRejected(t *testing.T) {
	w := New("dangling", OnManual())
	if err := w.AddJob("a", jobWithStep(Needs("missing"))); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	_, err := w.Render()
	var dependency *DependencyError
	if !errors.As(err, &dependency) {
		t.Fatalf("Render = %v, want DependencyError", err)
	}
	if dependency.JobID != "a" || !strings.Contains(dependency.Reason, "missing") {
		t.Errorf("got %v, want error naming job a and the missing reference", dependency)
	}
}

func TestForwardReferenceAllowed(t *testing.T) {
	// needs may point at a job added later; validation is deferred to
	// render time.
	w := New("forward", OnManual())
	if err := w.AddJob("deploy", jobWithStep(Needs("build"))); err != nil {
		t.Fatalf("AddJob(deploy): %v", err)
	}
	if err := w.AddJob("build", jobWithStep()); err != nil {
		t.Fatalf("AddJob(build): %v", err)
	}
	if _, err := w.Render(); err != nil {
		t.Errorf("Render = %v, want nil", err)
	}
}

func TestDiamondDependencyAllowed(t *testing.T) {
	w := New("diamond", OnManual())
	if err := w.AddJob("a", jobWithStep()); err != nil {
		t.Fatalf("AddJob(a): %v", err)
	}
	if err := w.AddJob("b", jobWithStep(Needs("a"))); err != nil {
		t.Fatalf("AddJob(b): %v", err)
	}
	if err := w.AddJob("c", jobWithStep(Needs("a"))); err != nil {
		t.Fatalf("AddJob(c): %v", err)
	}
	if err := w.AddJob("d", jobWithStep(Needs("b", "c"))); err != nil {
		t.Fatalf("AddJob(d): %v", err)
	}

	data := render(t, w)
	doc := decode(t, data)
	needs := doc["jobs"].(map[string]any)["d"].(map[string]any)["needs"].([]any)
	if len(needs) != 2 || needs[0] != "b" || needs[1] != "c" {
		t.Errorf("d.needs = %v, want [b c]", needs)
	}
}
