package gha

import "strings"

type stepKind int

const (
	stepAction stepKind = iota
	stepRun
)

// Step is one executable unit inside a job: either a reusable action
// invocation (Action) or an inline shell script (Run). The variant set
// is closed so rendering can be exhaustive.
type Step struct {
	kind            stepKind
	name            string
	condition       string
	uses            string
	script          string
	with            []entry
	env             []entry
	continueOnError bool
}

// StepOption configures an optional field on a step.
type StepOption func(*Step)

// Named sets the step's display name.
func Named(name string) StepOption {
	return func(s *Step) { s.name = name }
}

// If sets a conditional-execution expression on the step. The expression
// is passed through verbatim.
func If(condition string) StepOption {
	return func(s *Step) { s.condition = condition }
}

// With adds one action input parameter. Repeated calls append in call
// order; a repeated key overwrites in place. Only valid on Action steps.
func With(key string, value any) StepOption {
	return func(s *Step) { s.with = setEntry(s.with, key, value) }
}

// Env adds one environment variable to the step. Repeated calls append
// in call order; a repeated key overwrites in place.
func Env(key string, value any) StepOption {
	return func(s *Step) { s.env = setEntry(s.env, key, value) }
}

// ContinueOnError marks the step as non-fatal: the job proceeds even if
// the step fails.
func ContinueOnError() StepOption {
	return func(s *Step) { s.continueOnError = true }
}

// Action creates a step that invokes a reusable action, referenced as
// owner/repo@ref.
func Action(uses string, opts ...StepOption) Step {
	s := Step{kind: stepAction, uses: uses}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Run creates a step that executes an inline shell script.
//
// A single leading and a single trailing blank line are trimmed before
// storage. This is deliberate: callers frequently author scripts as
// multi-line raw literals that open and close with a newline, and the
// trim lets those render without spurious blank lines. All interior
// whitespace is preserved exactly as supplied.
func Run(script string, opts ...StepOption) Step {
	s := Step{kind: stepRun, script: trimScript(script)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// trimScript removes at most one leading and one trailing blank line.
func trimScript(script string) string {
	if i := strings.IndexByte(script, '\n'); i >= 0 && strings.TrimSpace(script[:i]) == "" {
		script = script[i+1:]
	}
	if i := strings.LastIndexByte(script, '\n'); i >= 0 && strings.TrimSpace(script[i+1:]) == "" {
		script = script[:i]
	}
	return script
}
