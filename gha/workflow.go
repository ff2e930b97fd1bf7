package gha

import (
	"fmt"
	"regexp"

	"github.com/sourceplane/workflowforge/internal/cron"
)

// jobIDPattern matches valid job ids: alphanumerics, underscores, and
// hyphens. Anchored to the full string.
var jobIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Workflow is the top-level pipeline definition: a name, an ordered
// trigger list, and an insertion-ordered job map. Each Workflow is an
// independent value with no shared state; separate workflows may be
// built and saved concurrently as long as they target distinct paths.
type Workflow struct {
	name     string
	triggers []Trigger
	jobIDs   []string
	jobs     map[string]*Job
}

// New creates a workflow with the given display name and triggers.
// Duplicate trigger variants are kept in caller order, never merged;
// callers are responsible for non-overlapping filters.
func New(name string, triggers ...Trigger) *Workflow {
	return &Workflow{
		name:     name,
		triggers: triggers,
		jobs:     make(map[string]*Job),
	}
}

// AddJob inserts a job under the given id. Output order follows
// insertion order. Returns a DuplicateJobError if the id is taken, or a
// ValidationError if the id is not a valid job identifier.
func (w *Workflow) AddJob(id string, job *Job) error {
	if !jobIDPattern.MatchString(id) {
		return &ValidationError{
			Context: fmt.Sprintf("jobs[%s]", id),
			Reason:  "job id must contain only alphanumerics, underscores, and hyphens",
		}
	}
	if _, exists := w.jobs[id]; exists {
		return &DuplicateJobError{ID: id}
	}
	w.jobIDs = append(w.jobIDs, id)
	w.jobs[id] = job
	return nil
}

// validate runs the full structural check performed before any output is
// produced. It walks triggers and jobs in declaration order and stops at
// the first problem so the error points at one construction call.
func (w *Workflow) validate() error {
	if w.name == "" {
		return &ValidationError{Context: "workflow", Reason: "name must not be empty"}
	}
	if len(w.triggers) == 0 {
		return &ValidationError{Context: "workflow", Reason: "at least one trigger is required"}
	}
	for i, t := range w.triggers {
		if t.kind != triggerSchedule {
			continue
		}
		if err := cron.Validate(t.cron); err != nil {
			return &ValidationError{
				Context: fmt.Sprintf("on[%d]", i),
				Reason:  fmt.Sprintf("invalid cron expression %q: %v", t.cron, err),
			}
		}
	}
	if len(w.jobIDs) == 0 {
		return &ValidationError{Context: "workflow", Reason: "at least one job is required"}
	}
	for _, id := range w.jobIDs {
		if err := w.validateJob(id, w.jobs[id]); err != nil {
			return err
		}
	}
	return w.checkDependencies()
}

func (w *Workflow) validateJob(id string, job *Job) error {
	context := fmt.Sprintf("jobs[%s]", id)
	if job.runsOn == "" {
		return &ValidationError{Context: context, Reason: "runs-on must not be empty"}
	}
	if len(job.steps) == 0 {
		return &ValidationError{Context: context, Reason: "at least one step is required"}
	}
	if job.strategy != nil {
		for _, axis := range job.strategy.axes {
			if axis.name == "" {
				return &ValidationError{Context: context, Reason: "matrix axis name must not be empty"}
			}
			if len(axis.values) == 0 {
				return &ValidationError{
					Context: context,
					Reason:  fmt.Sprintf("matrix axis %q must have at least one value", axis.name),
				}
			}
		}
	}
	for i, step := range job.steps {
		stepContext := fmt.Sprintf("%s.steps[%d]", context, i)
		switch step.kind {
		case stepAction:
			if step.uses == "" {
				return &ValidationError{Context: stepContext, Reason: "uses must not be empty"}
			}
		case stepRun:
			if step.script == "" {
				return &ValidationError{Context: stepContext, Reason: "run script must not be empty"}
			}
			if len(step.with) > 0 {
				return &ValidationError{Context: stepContext, Reason: "with is only valid on action steps"}
			}
		}
	}
	return nil
}
