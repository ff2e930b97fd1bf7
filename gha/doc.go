// Package gha builds GitHub Actions workflow definitions in memory and
// serializes them to workflow YAML.
//
// A Workflow is assembled from triggers, jobs, and steps using plain
// constructor calls, then rendered or saved:
//
//	w := gha.New("CI", gha.OnPush(gha.Branches("main")))
//	build := gha.NewJob("ubuntu-latest")
//	build.AddStep(gha.Action("actions/checkout@v4"))
//	build.AddStep(gha.Run("make test"))
//	if err := w.AddJob("build", build); err != nil { ... }
//	if err := w.Save(".github/workflows/ci.yml"); err != nil { ... }
//
// Rendering is deterministic: identical construction calls always produce
// byte-identical output, with insertion order preserved for jobs, steps,
// matrix axes, and with/env/permissions entries.
package gha
