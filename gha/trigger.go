package gha

type triggerKind int

const (
	triggerPush triggerKind = iota
	triggerPullRequest
	triggerSchedule
	triggerManual
)

// Trigger is one condition under which a workflow starts. Construct
// triggers with OnPush, OnPullRequest, OnSchedule, or OnManual; the
// variant set is closed so rendering can be exhaustive.
type Trigger struct {
	kind     triggerKind
	branches []string
	tags     []string
	cron     string
}

// TriggerOption attaches an event filter to a push or pull_request trigger.
type TriggerOption func(*Trigger)

// Branches filters a push or pull_request trigger to the given branch
// patterns. Patterns are passed through verbatim; malformed globs are
// rejected by GitHub, not here.
func Branches(patterns ...string) TriggerOption {
	return func(t *Trigger) {
		t.branches = append(t.branches, patterns...)
	}
}

// Tags filters a push trigger to the given tag patterns.
func Tags(patterns ...string) TriggerOption {
	return func(t *Trigger) {
		t.tags = append(t.tags, patterns...)
	}
}

// OnPush creates a push trigger.
func OnPush(opts ...TriggerOption) Trigger {
	t := Trigger{kind: triggerPush}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// OnPullRequest creates a pull_request trigger.
func OnPullRequest(opts ...TriggerOption) Trigger {
	t := Trigger{kind: triggerPullRequest}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// OnSchedule creates a schedule trigger from a standard 5-field cron
// expression. The expression is validated when the workflow is rendered.
func OnSchedule(cron string) Trigger {
	return Trigger{kind: triggerSchedule, cron: cron}
}

// OnManual creates a workflow_dispatch trigger.
func OnManual() Trigger {
	return Trigger{kind: triggerManual}
}
