package gha

// Job is one execution unit within a workflow: an ordered step sequence
// plus execution metadata. Jobs are created empty and populated with
// AddStep; the needs references are validated when the owning workflow
// is rendered, so a job may depend on one that is added later.
type Job struct {
	runsOn      string
	strategy    *Strategy
	permissions []entry
	needs       []string
	steps       []Step
}

// JobOption configures an optional field on a job.
type JobOption func(*Job)

// WithStrategy attaches a matrix strategy to the job.
func WithStrategy(s *Strategy) JobOption {
	return func(j *Job) { j.strategy = s }
}

// Permission grants one token scope ("contents", "id-token", ...) at the
// given access level ("read", "write", "none"). Repeated calls append in
// call order.
func Permission(scope, access string) JobOption {
	return func(j *Job) { j.permissions = setEntry(j.permissions, scope, access) }
}

// Needs declares dependencies on other jobs by id. Existence and
// acyclicity are checked at render time, not here.
func Needs(ids ...string) JobOption {
	return func(j *Job) { j.needs = append(j.needs, ids...) }
}

// NewJob creates an empty job targeting the given runner.
func NewJob(runsOn string, opts ...JobOption) *Job {
	j := &Job{runsOn: runsOn}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// AddStep appends a step to the job's ordered step sequence.
func (j *Job) AddStep(step Step) {
	j.steps = append(j.steps, step)
}
