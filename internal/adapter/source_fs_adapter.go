// Package adapter contains the infrastructure adapters pkgwrap drives:
// the project filesystem, external tool processes, the package.json
// manifest and the run report store.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when scanning and cleaning user projects.
//
//nolint:interfacebloat // A richer interface keeps dispatch logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively. Returning filepath.SkipDir from fn on
	// a directory skips its contents.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// Glob expands a doublestar pattern relative to root and returns the
	// matching paths joined onto root.
	Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error)

	// Exists reports whether the path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path, perm os.FileMode) error

	// Chmod changes the mode of the path.
	Chmod(ctx context.Context, path m.Path, perm os.FileMode) error

	// RemoveAll removes a path and all its contents. Missing paths are not an error.
	RemoveAll(ctx context.Context, path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the dispatcher.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// Glob expands pattern inside root. Patterns that would escape root are rejected.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := filepath.ToSlash(filepath.Clean(pattern))
	if !filepath.IsLocal(filepath.FromSlash(cleaned)) {
		return nil, fmt.Errorf("pattern %q escapes %s", pattern, root)
	}

	if cleaned == "." {
		return nil, fmt.Errorf("pattern %q matches %s itself", pattern, root)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), cleaned)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(string(root), filepath.FromSlash(match))))
	}

	return paths, nil
}

// Exists reports whether the path exists.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, path m.Path) (bool, error) {
	_, err := os.Lstat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from the project walk, not user input
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(_ context.Context, path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// Chmod changes the mode of the path.
func (a *LocalSourceFSAdapter) Chmod(_ context.Context, path m.Path, perm os.FileMode) error {
	return os.Chmod(string(path), perm)
}

// RemoveAll removes a path and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
