package main

import (
	"fmt"

	"github.com/sourceplane/workflowforge/gha"
)

// definition pairs an output file name with its workflow builder.
type definition struct {
	file  string
	build func() (*gha.Workflow, error)
}

// definitions lists the workflows this repository generates, in output
// order: CI with a pnpm/node matrix, CodeQL analysis, and npm publish
// on version tags.
var definitions = []definition{
	{"ci.yml", buildCI},
	{"codeql.yml", buildCodeQL},
	{"publish.yml", buildPublish},
}

const corepackScript = `
corepack enable
corepack prepare pnpm@latest --activate
`

func buildCI() (*gha.Workflow, error) {
	w := gha.New("CI",
		gha.OnPush(gha.Branches("main")),
		gha.OnPullRequest(gha.Branches("main")),
	)

	build := gha.NewJob("ubuntu-latest",
		gha.WithStrategy(gha.Matrix(gha.NewAxis("node-version", 22, 20))),
	)
	build.AddStep(gha.Action("actions/checkout@v4"))
	build.AddStep(gha.Action("actions/setup-node@v4",
		gha.With("node-version", "${{ matrix.node-version }}"),
	))
	build.AddStep(gha.Run(corepackScript))
	build.AddStep(gha.Run("pnpm install --frozen-lockfile=false"))
	for _, task := range []string{"typecheck", "lint", "security:lint", "build", "format:check"} {
		build.AddStep(gha.Run("pnpm run " + task))
	}
	if err := w.AddJob("build", build); err != nil {
		return nil, fmt.Errorf("failed to assemble CI workflow: %w", err)
	}

	audit := gha.NewJob("ubuntu-latest")
	audit.AddStep(gha.Action("actions/checkout@v4"))
	audit.AddStep(gha.Action("actions/setup-node@v4", gha.With("node-version", 22)))
	audit.AddStep(gha.Run(corepackScript))
	audit.AddStep(gha.Run("pnpm install --frozen-lockfile=false"))
	// The audit is advisory: the || true keeps a moderate finding from
	// failing the build.
	audit.AddStep(gha.Run("pnpm audit --audit-level=moderate || true"))
	if err := w.AddJob("audit", audit); err != nil {
		return nil, fmt.Errorf("failed to assemble CI workflow: %w", err)
	}

	return w, nil
}

func buildCodeQL() (*gha.Workflow, error) {
	w := gha.New("CodeQL",
		gha.OnPush(gha.Branches("main")),
		gha.OnPullRequest(gha.Branches("main")),
		gha.OnSchedule("17 8 * * 4"),
	)

	analyze := gha.NewJob("ubuntu-latest",
		gha.WithStrategy(gha.Matrix(gha.NewAxis("language", "javascript-typescript"))),
	)
	analyze.AddStep(gha.Action("actions/checkout@v4", gha.Named("Checkout repository")))
	analyze.AddStep(gha.Action("github/codeql-action/init@v3",
		gha.Named("Initialize CodeQL"),
		gha.With("languages", "${{ matrix.language }}"),
	))
	analyze.AddStep(gha.Action("github/codeql-action/autobuild@v3", gha.Named("Autobuild")))
	analyze.AddStep(gha.Action("github/codeql-action/analyze@v3", gha.Named("Perform CodeQL Analysis")))
	if err := w.AddJob("analyze", analyze); err != nil {
		return nil, fmt.Errorf("failed to assemble CodeQL workflow: %w", err)
	}

	return w, nil
}

func buildPublish() (*gha.Workflow, error) {
	w := gha.New("Publish npm",
		gha.OnPush(gha.Tags("v*")),
	)

	publish := gha.NewJob("ubuntu-latest",
		gha.Permission("contents", "read"),
		gha.Permission("id-token", "write"),
	)
	publish.AddStep(gha.Action("actions/checkout@v4", gha.Named("Checkout")))
	publish.AddStep(gha.Action("actions/setup-node@v4",
		gha.Named("Setup Node.js"),
		gha.With("node-version", 20),
		gha.With("registry-url", "https://registry.npmjs.org"),
	))
	publish.AddStep(gha.Run(corepackScript, gha.Named("Enable Corepack and pnpm")))
	publish.AddStep(gha.Run("pnpm install --frozen-lockfile=false", gha.Named("Install dependencies")))
	publish.AddStep(gha.Run(`
pnpm run typecheck
pnpm run lint
`, gha.Named("Lint and typecheck")))
	publish.AddStep(gha.Run("pnpm run build", gha.Named("Build")))
	publish.AddStep(gha.Run(`
PKG_VERSION=$(node -p "require('./package.json').version")
TAG_NAME="${GITHUB_REF_NAME}"
echo "package.json: v${PKG_VERSION} | tag: ${TAG_NAME}"
if [ "v${PKG_VERSION}" != "${TAG_NAME}" ]; then
  echo "Tag and package.json version mismatch" >&2
  exit 1
fi
`, gha.Named("Verify tag matches package.json version")))
	publish.AddStep(gha.Run(`
echo "//registry.npmjs.org/:_authToken=${NPM_TOKEN}" > ~/.npmrc
npm publish --access public --provenance
`,
		gha.Named("Publish to npm (with provenance)"),
		gha.Env("NPM_TOKEN", "${{ secrets.NPM_TOKEN }}"),
	))
	if err := w.AddJob("publish", publish); err != nil {
		return nil, fmt.Errorf("failed to assemble publish workflow: %w", err)
	}

	return w, nil
}
