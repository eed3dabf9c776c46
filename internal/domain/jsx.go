package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// ErrCompileFailed marks a JSX batch in which at least one file failed to
// transpile. The other files of the batch still ran to completion.
var ErrCompileFailed = errors.New("jsx compilation failed")

const jsxExtension = ".jsx"

// jsxIgnoreList holds substrings that exclude a project-relative path from
// JSX discovery.
var jsxIgnoreList = []string{
	".git",
	"coverage",
	".nyc_output",
	"dist",
	"build",
	"node_modules",
	"package",
}

func (s *session) jsxBase() m.Path {
	if s.opts.JSXTest && s.cfg.JSXTestDir != "" {
		return s.cfg.JSXTestDir
	}

	return s.cfg.WorkDir
}

// discoverJSX walks base and returns every .jsx file outside the ignore list,
// sorted by path.
func (s *session) discoverJSX(ctx context.Context, base m.Path) ([]m.JSXFile, error) {
	s.log.Debug("Searching for JSX files", "base", base)

	exists, err := s.fs.Exists(ctx, base)
	if err != nil {
		return nil, err
	}

	if !exists {
		s.log.Debug("JSX search directory does not exist", "base", base)
		return nil, nil
	}

	var files []m.JSXFile

	err = s.fs.Walk(ctx, base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if s.jsxIgnored(ctx, m.Path(path)) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || filepath.Ext(path) != jsxExtension {
			return nil
		}

		files = append(files, m.NewJSXFile(m.Path(path)))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", base, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Source < files[j].Source
	})

	if s.opts.Debug && len(files) > 0 {
		s.ui.DisplayJSXFiles(ctx, files)
	}

	return files, nil
}

// jsxIgnored matches the ignore list against the path relative to the project
// root, so the location of the project itself never hides its files.
func (s *session) jsxIgnored(ctx context.Context, path m.Path) bool {
	rel, err := s.fs.RelPath(ctx, s.cfg.WorkDir, path)
	if err != nil {
		rel = path
	}

	relSlash := filepath.ToSlash(string(rel))
	if relSlash == "." {
		return false
	}

	for _, ignored := range jsxIgnoreList {
		if strings.Contains(relSlash, ignored) {
			return true
		}
	}

	return false
}

// cleanupJSX removes the transpiled companion of every file, if present.
func (s *session) cleanupJSX(ctx context.Context, files []m.JSXFile) error {
	for _, file := range files {
		exists, err := s.fs.Exists(ctx, file.Output)
		if err != nil {
			return err
		}

		if !exists {
			continue
		}

		s.log.Debug("Removing compiled JSX output", "path", file.Output)

		if err := s.fs.RemoveAll(ctx, file.Output); err != nil {
			return fmt.Errorf("remove %s: %w", file.Output, err)
		}
	}

	return nil
}

// poolSize clamps the worker count for a batch of files into [minWorkers, maxWorkers].
func poolSize(files, minWorkers, maxWorkers int) int {
	minWorkers = max(minWorkers, 1)
	maxWorkers = max(maxWorkers, minWorkers)

	return min(max(files, minWorkers), maxWorkers)
}

// compileJSX transpiles files on a bounded pool. A file that fails to compile
// is recorded and does not stop the others; only cancellation of ctx aborts
// the batch. Once every file has finished, ErrCompileFailed is returned if
// any of them failed.
func (s *session) compileJSX(ctx context.Context, files []m.JSXFile) ([]m.CompileResult, error) {
	workers := poolSize(len(files), s.opts.MinWorkers, s.opts.MaxWorkers)
	s.log.Debug("Starting JSX compile pool", "files", len(files), "workers", workers)
	s.ui.DisplayCompileStart(ctx, len(files), workers)

	results := make([]m.CompileResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, file := range files {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			inv := s.tools.invocation(groupCtx, s.cfg.Tools.Transpiler,
				string(file.Source), "-o", string(file.Output), "--source-maps", "inline")

			output, err := s.proc.CombinedOutput(groupCtx, inv)
			if err != nil && groupCtx.Err() != nil {
				return groupCtx.Err()
			}

			results[i] = m.CompileResult{File: file, Output: output, Err: err}
			s.ui.DisplayCompileResult(ctx, results[i])

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.log.Error("JSX compilation interrupted", "error", err)
		return nil, fmt.Errorf("jsx compilation interrupted: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("jsx compilation interrupted: %w", err)
	}

	s.ui.DisplayCompileSummary(ctx, results)

	failed := 0

	for _, result := range results {
		s.report.Compiled = append(s.report.Compiled, m.NewCompileRecord(result))

		if !result.OK() {
			failed++
			s.log.Error("Failed to compile JSX file", "path", result.File.Source, "error", result.Err)
		}
	}

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d files failed", ErrCompileFailed, failed, len(files))
	}

	return results, nil
}
