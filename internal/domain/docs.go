package domain

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

const markdownExtension = ".md"

// docs renders markdown for every documentation source and, with --site,
// builds the jsdoc site from the same files.
func (s *session) docs(ctx context.Context) error {
	sources, err := s.discoverDocs(ctx)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(ctx, s.cfg.DocsDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.cfg.DocsDir, err)
	}

	if len(sources) == 0 {
		s.ui.DisplayMessage(ctx, "No documentation sources found")
	}

	for _, rel := range sources {
		if err := s.renderDoc(ctx, rel); err != nil {
			return err
		}
	}

	if !s.opts.Site || len(sources) == 0 {
		return nil
	}

	s.ui.DisplayMessage(ctx, "Generating JSDoc site")

	args := []string{"-a", "all", "-R", s.cfg.Docs.Readme, "-c", s.cfg.Docs.JSDocConfig}
	for _, rel := range sources {
		args = append(args, string(s.absolute(ctx, rel)))
	}

	return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.JSDoc, args...))
}

// discoverDocs returns the project-relative, slash separated paths of every
// file matching an include glob and no exclude glob, sorted.
func (s *session) discoverDocs(ctx context.Context) ([]m.Path, error) {
	include := trimDotSlash(s.cfg.Docs.Include)
	exclude := trimDotSlash(s.cfg.Docs.Exclude)

	var sources []m.Path

	err := s.fs.Walk(ctx, s.cfg.WorkDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := s.fs.RelPath(ctx, s.cfg.WorkDir, m.Path(p))
		if err != nil {
			return err
		}

		rel := filepath.ToSlash(string(relPath))
		if rel == "." {
			return nil
		}

		if info.IsDir() {
			if excludedDir(exclude, rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if matchAny(include, rel) && !matchAny(exclude, rel) {
			sources = append(sources, m.Path(rel))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.cfg.WorkDir, err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	return sources, nil
}

// renderDoc replaces docs/<rel>.md with fresh jsdoc2md output.
func (s *session) renderDoc(ctx context.Context, rel m.Path) error {
	src := s.absolute(ctx, rel)
	mdRel := strings.TrimSuffix(string(rel), path.Ext(string(rel))) + markdownExtension
	dst := s.fs.JoinPath(ctx, string(s.cfg.DocsDir), filepath.FromSlash(mdRel))

	previous, hadPrevious, err := s.takeStaleDoc(ctx, dst)
	if err != nil {
		return err
	}

	s.debugf(ctx, " -> Creating %s from %s", dst, src)

	inv := s.tools.invocation(ctx, s.cfg.Tools.JSDoc2MD, string(src))
	s.log.Debug("Running tool", "command", inv.String())

	markdown, err := s.proc.Output(ctx, inv)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(ctx, dst, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	if s.opts.Debug && hadPrevious {
		changed := changedLines(string(previous), markdown)
		s.log.Debug("Regenerated documentation", "path", dst, "changed_lines", changed)
		s.ui.DisplayMessage(ctx, "    %d lines changed", changed)
	}

	return nil
}

// takeStaleDoc removes an existing rendering of dst, returning its content, or
// creates the parent directory when there is none.
func (s *session) takeStaleDoc(ctx context.Context, dst m.Path) ([]byte, bool, error) {
	exists, err := s.fs.Exists(ctx, dst)
	if err != nil {
		return nil, false, err
	}

	if !exists {
		parent := m.Path(filepath.Dir(string(dst)))
		if err := s.fs.MkdirAll(ctx, parent, 0o755); err != nil {
			return nil, false, fmt.Errorf("create %s: %w", parent, err)
		}

		return nil, false, nil
	}

	var previous []byte
	if s.opts.Debug {
		previous, err = s.fs.ReadFile(ctx, dst)
		if err != nil {
			return nil, false, fmt.Errorf("read %s: %w", dst, err)
		}
	}

	if err := s.fs.RemoveAll(ctx, dst); err != nil {
		return nil, false, fmt.Errorf("remove %s: %w", dst, err)
	}

	return previous, true, nil
}

func (s *session) absolute(ctx context.Context, rel m.Path) m.Path {
	return s.fs.JoinPath(ctx, string(s.cfg.WorkDir), filepath.FromSlash(string(rel)))
}

// changedLines counts the lines replaced, deleted or inserted between a and b.
func changedLines(a, b string) int {
	matcher := difflib.NewMatcher(difflib.SplitLines(a), difflib.SplitLines(b))

	changed := 0

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			changed += max(op.I2-op.I1, op.J2-op.J1)
		case 'd':
			changed += op.I2 - op.I1
		case 'i':
			changed += op.J2 - op.J1
		}
	}

	return changed
}

// excludedDir reports whether a "dir/**" exclude covers the whole directory.
func excludedDir(exclude []string, rel string) bool {
	for _, pattern := range exclude {
		prefix, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			continue
		}

		if matched, _ := doublestar.Match(prefix, rel); matched {
			return true
		}
	}

	return false
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}

	return false
}

func trimDotSlash(patterns []string) []string {
	trimmed := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmed = append(trimmed, strings.TrimPrefix(pattern, "./"))
	}

	return trimmed
}
