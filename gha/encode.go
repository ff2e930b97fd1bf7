package gha

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render validates the workflow and serializes it to GitHub Actions
// workflow YAML. Rendering is deterministic: the same model always
// produces byte-identical output.
//
// Key order is fixed throughout: the document renders name, on, jobs;
// each job renders runs-on, permissions, needs, strategy, steps; each
// step renders name, if, uses-or-run, with, env, continue-on-error.
// Quoting is delegated to the YAML emitter over typed scalar nodes, so
// an int renders unquoted, a string that would re-parse as a number
// renders quoted, and ${{ ... }} expressions pass through untouched for
// the GitHub Actions runtime to evaluate.
func (w *Workflow) Render() ([]byte, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}

	doc, err := w.yamlNode()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, &SerializationError{Context: "workflow", Reason: err.Error()}
	}
	if err := encoder.Close(); err != nil {
		return nil, &SerializationError{Context: "workflow", Reason: err.Error()}
	}
	return buf.Bytes(), nil
}

func (w *Workflow) yamlNode() (*yaml.Node, error) {
	jobs := mappingNode()
	for _, id := range w.jobIDs {
		jobNode, err := w.jobs[id].yamlNode(fmt.Sprintf("jobs[%s]", id))
		if err != nil {
			return nil, err
		}
		appendPair(jobs, id, jobNode)
	}

	doc := mappingNode()
	appendPair(doc, "name", stringNode(w.name))
	appendPair(doc, "on", w.triggersNode())
	appendPair(doc, "jobs", jobs)
	return doc, nil
}

// triggersNode renders the trigger list as the on: mapping. Triggers
// appear in caller order; duplicate variants are emitted as given.
func (w *Workflow) triggersNode() *yaml.Node {
	on := mappingNode()
	for _, t := range w.triggers {
		switch t.kind {
		case triggerPush:
			appendPair(on, "push", filtersNode(t))
		case triggerPullRequest:
			appendPair(on, "pull_request", filtersNode(t))
		case triggerSchedule:
			schedule := mappingNode()
			appendPair(schedule, "cron", stringNode(t.cron))
			appendPair(on, "schedule", sequenceNode(schedule))
		case triggerManual:
			appendPair(on, "workflow_dispatch", emptyMappingNode())
		}
	}
	return on
}

// filtersNode renders push/pull_request filters in canonical field order
// (branches, then tags).
func filtersNode(t Trigger) *yaml.Node {
	if len(t.branches) == 0 && len(t.tags) == 0 {
		return emptyMappingNode()
	}
	filters := mappingNode()
	if len(t.branches) > 0 {
		appendPair(filters, "branches", stringSequenceNode(t.branches))
	}
	if len(t.tags) > 0 {
		appendPair(filters, "tags", stringSequenceNode(t.tags))
	}
	return filters
}

func (j *Job) yamlNode(context string) (*yaml.Node, error) {
	job := mappingNode()
	appendPair(job, "runs-on", stringNode(j.runsOn))

	if len(j.permissions) > 0 {
		permissions, err := entriesNode(j.permissions, context+".permissions")
		if err != nil {
			return nil, err
		}
		appendPair(job, "permissions", permissions)
	}

	if len(j.needs) > 0 {
		needs := stringSequenceNode(j.needs)
		needs.Style = yaml.FlowStyle
		appendPair(job, "needs", needs)
	}

	if j.strategy != nil {
		strategy, err := j.strategy.yamlNode(context + ".strategy")
		if err != nil {
			return nil, err
		}
		appendPair(job, "strategy", strategy)
	}

	steps := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, step := range j.steps {
		stepNode, err := step.yamlNode(fmt.Sprintf("%s.steps[%d]", context, i))
		if err != nil {
			return nil, err
		}
		steps.Content = append(steps.Content, stepNode)
	}
	appendPair(job, "steps", steps)
	return job, nil
}

func (s *Strategy) yamlNode(context string) (*yaml.Node, error) {
	matrix := mappingNode()
	for _, axis := range s.axes {
		values := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, value := range axis.values {
			node, err := scalarNode(value, fmt.Sprintf("%s.matrix[%s]", context, axis.name))
			if err != nil {
				return nil, err
			}
			values.Content = append(values.Content, node)
		}
		appendPair(matrix, axis.name, values)
	}
	strategy := mappingNode()
	appendPair(strategy, "matrix", matrix)
	return strategy, nil
}

func (s Step) yamlNode(context string) (*yaml.Node, error) {
	step := mappingNode()
	if s.name != "" {
		appendPair(step, "name", stringNode(s.name))
	}
	if s.condition != "" {
		appendPair(step, "if", stringNode(s.condition))
	}

	switch s.kind {
	case stepAction:
		appendPair(step, "uses", stringNode(s.uses))
		if len(s.with) > 0 {
			with, err := entriesNode(s.with, context+".with")
			if err != nil {
				return nil, err
			}
			appendPair(step, "with", with)
		}
	case stepRun:
		appendPair(step, "run", stringNode(s.script))
	}

	if len(s.env) > 0 {
		env, err := entriesNode(s.env, context+".env")
		if err != nil {
			return nil, err
		}
		appendPair(step, "env", env)
	}
	if s.continueOnError {
		appendPair(step, "continue-on-error", &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!bool",
			Value: "true",
		})
	}
	return step, nil
}

// entriesNode renders an insertion-ordered scalar map (with, env,
// permissions).
func entriesNode(entries []entry, context string) (*yaml.Node, error) {
	mapping := mappingNode()
	for _, e := range entries {
		value, err := scalarNode(e.value, fmt.Sprintf("%s[%s]", context, e.key))
		if err != nil {
			return nil, err
		}
		appendPair(mapping, e.key, value)
	}
	return mapping, nil
}

// scalarNode converts a supported scalar value to a typed YAML node.
// The emitter decides quoting from the node's tag, which is what keeps
// numeric and boolean values unquoted while quoting strings that would
// otherwise re-parse as a different scalar type.
func scalarNode(value any, context string) (*yaml.Node, error) {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
	default:
		return nil, &SerializationError{
			Context: context,
			Reason:  fmt.Sprintf("unsupported value type %T (expected string, number, or bool)", value),
		}
	}
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return nil, &SerializationError{Context: context, Reason: err.Error()}
	}
	if s, ok := value.(string); ok && strings.Contains(s, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node, nil
}

// stringNode renders a string scalar. Multi-line values use a literal
// block scalar so scripts keep their line structure, re-indented under
// the owning key by the encoder.
func stringNode(value string) *yaml.Node {
	node := &yaml.Node{}
	node.SetString(value)
	if strings.Contains(value, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}

func stringSequenceNode(values []string) *yaml.Node {
	sequence := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, value := range values {
		sequence.Content = append(sequence.Content, stringNode(value))
	}
	return sequence
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func emptyMappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
}

func sequenceNode(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

// appendPair appends one key/value pair to a mapping node.
func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	keyNode := &yaml.Node{}
	keyNode.SetString(key)
	mapping.Content = append(mapping.Content, keyNode, value)
}
