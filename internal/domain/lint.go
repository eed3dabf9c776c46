package domain

import (
	"context"
)

var (
	defaultLintInclude = []string{
		"./lib/**/*.{ts,tsx}",
		"./src/**/*.{ts,tsx}",
		"./test/**/*.{ts,tsx}",
		"test*.{ts,tsx}",
		"index.{ts,tsx}",
		"cli.{ts,tsx}",
	}

	defaultLintExclude = []string{
		"./**/*.d.ts",
	}
)

func (s *session) lint(ctx context.Context) error {
	include := union(defaultLintInclude, s.cfg.Manifest.Pkgwrap.Include)
	exclude := union(defaultLintExclude, s.cfg.Manifest.Pkgwrap.Exclude)

	args := make([]string, 0, len(include)+2*len(exclude))
	args = append(args, include...)

	for _, pattern := range exclude {
		args = append(args, "--exclude", pattern)
	}

	return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.Linter, args...))
}
