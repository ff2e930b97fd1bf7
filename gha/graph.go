package gha

import "fmt"

// checkDependencies verifies that every needs reference resolves to an
// existing job and that the dependency graph is acyclic. Jobs are walked
// in insertion order so repeated runs report the same edge first.
func (w *Workflow) checkDependencies() error {
	for _, id := range w.jobIDs {
		for _, need := range w.jobs[id].needs {
			if _, exists := w.jobs[need]; !exists {
				return &DependencyError{
					JobID:  id,
					Reason: fmt.Sprintf("needs unknown job %q", need),
				}
			}
		}
	}

	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	for _, id := range w.jobIDs {
		if !visited[id] {
			if cycleAt := w.findCycle(id, visited, onStack); cycleAt != "" {
				return &DependencyError{
					JobID:  cycleAt,
					Reason: "needs form a dependency cycle",
				}
			}
		}
	}
	return nil
}

// findCycle runs a depth-first traversal from id and returns the job at
// which the first back edge is found, or "" if none is reachable.
func (w *Workflow) findCycle(id string, visited, onStack map[string]bool) string {
	visited[id] = true
	onStack[id] = true

	for _, need := range w.jobs[id].needs {
		if !visited[need] {
			if cycleAt := w.findCycle(need, visited, onStack); cycleAt != "" {
				return cycleAt
			}
		} else if onStack[need] {
			return need
		}
	}

	onStack[id] = false
	return ""
}
