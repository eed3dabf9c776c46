package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

var defaultCleanup = []string{
	"dist",
	"build",
	"coverage",
	".nyc_output",
	".DS_Store",
}

// clean removes build artifacts and every compiled JSX companion. Entries are
// project-relative paths or doublestar patterns.
func (s *session) clean(ctx context.Context) error {
	entries := union(defaultCleanup, s.cfg.Manifest.Pkgwrap.Cleanup)

	for _, entry := range entries {
		pattern := strings.TrimPrefix(entry, "./")

		matches, err := s.fs.Glob(ctx, s.cfg.WorkDir, pattern)
		if err != nil {
			return fmt.Errorf("cleanup entry %q: %w", entry, err)
		}

		for _, match := range matches {
			if filepath.Clean(string(match)) == filepath.Clean(string(s.cfg.WorkDir)) {
				return fmt.Errorf("cleanup entry %q matches the project root", entry)
			}

			s.debugf(ctx, " -> Removing %s", match)

			if err := s.fs.RemoveAll(ctx, match); err != nil {
				return fmt.Errorf("remove %s: %w", match, err)
			}
		}
	}

	files, err := s.discoverJSX(ctx, s.cfg.WorkDir)
	if err != nil {
		return err
	}

	return s.cleanupJSX(ctx, files)
}
