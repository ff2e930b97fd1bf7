package gha

import "fmt"

// ValidationError reports a structurally invalid workflow (empty trigger
// list, empty job, malformed cron expression, and so on). Context locates
// the offending construction call, e.g. "jobs[build].steps[2]".
type ValidationError struct {
	Context string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Reason)
}

// DuplicateJobError reports an AddJob call with an id that is already
// present in the workflow.
type DuplicateJobError struct {
	ID string
}

func (e *DuplicateJobError) Error() string {
	return fmt.Sprintf("job %q already exists", e.ID)
}

// DependencyError reports a dangling or cyclic needs reference, detected
// when the workflow is rendered.
type DependencyError struct {
	JobID  string
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("job %q: %s", e.JobID, e.Reason)
}

// SerializationError reports a value that cannot be represented in
// workflow YAML, such as a nested slice passed as a with entry.
type SerializationError struct {
	Context string
	Reason  string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Reason)
}
