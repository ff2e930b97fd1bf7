// Package cron validates standard 5-field cron expressions
// (minute, hour, day-of-month, month, day-of-week).
package cron

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldSpec names a cron field and bounds its value range.
type fieldSpec struct {
	name    string
	minimum int
	maximum int
}

var fields = [5]fieldSpec{
	{"minute", 0, 59},
	{"hour", 0, 23},
	{"day-of-month", 1, 31},
	{"month", 1, 12},
	{"day-of-week", 0, 6},
}

// Validate checks that expression is a syntactically valid 5-field cron
// expression. It does not compute schedule times; the expression is
// evaluated by the CI system at execution time.
func Validate(expression string) error {
	parts := strings.Fields(expression)
	if len(parts) != 5 {
		return fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	for i, spec := range fields {
		if err := checkField(parts[i], spec); err != nil {
			return fmt.Errorf("%s field: %w", spec.name, err)
		}
	}
	return nil
}

// checkField validates one field: comma-separated terms, each a
// wildcard, value, range, or stepped range/wildcard.
func checkField(field string, spec fieldSpec) error {
	for _, term := range strings.Split(field, ",") {
		if err := checkTerm(term, spec); err != nil {
			return err
		}
	}
	return nil
}

// checkTerm validates a single term: *, */N, V, V-V, or V-V/N.
func checkTerm(term string, spec fieldSpec) error {
	rangeExpression, stepExpression, hasStep := strings.Cut(term, "/")
	if hasStep {
		step, err := strconv.Atoi(stepExpression)
		if err != nil {
			return fmt.Errorf("invalid step %q: %w", stepExpression, err)
		}
		if step <= 0 {
			return fmt.Errorf("step must be positive, got %d", step)
		}
	}

	if rangeExpression == "*" {
		return nil
	}

	startExpression, endExpression, isRange := strings.Cut(rangeExpression, "-")
	start, err := strconv.Atoi(startExpression)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", startExpression, err)
	}
	end := start
	if isRange {
		end, err = strconv.Atoi(endExpression)
		if err != nil {
			return fmt.Errorf("invalid range end %q: %w", endExpression, err)
		}
		if start > end {
			return fmt.Errorf("range start %d > end %d", start, end)
		}
	}

	if start < spec.minimum || end > spec.maximum {
		return fmt.Errorf("value out of range [%d-%d]: got %d-%d", spec.minimum, spec.maximum, start, end)
	}
	return nil
}
