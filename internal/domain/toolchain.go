package domain

import (
	"context"
	"log/slog"
	"path/filepath"

	"pkgwrap.dev/pkg/pkgwrap/internal/adapter"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// toolchain turns tool names into invocations rooted at the project.
type toolchain struct {
	fs  adapter.SourceFSAdapter
	cfg Config
}

// resolve prefers the project-local binary and falls back to PATH lookup.
func (tc toolchain) resolve(ctx context.Context, name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Base(name) != name || tc.cfg.BinDir == "" {
		return name
	}

	local := tc.fs.JoinPath(ctx, string(tc.cfg.BinDir), name)

	exists, err := tc.fs.Exists(ctx, local)
	if err != nil {
		slog.Debug("Failed to probe local tool", "tool", name, "path", local, "error", err)
		return name
	}

	if exists {
		return string(local)
	}

	return name
}

func (tc toolchain) invocation(ctx context.Context, name string, args ...string) m.Invocation {
	return m.Invocation{
		Name: tc.resolve(ctx, name),
		Args: args,
		Dir:  tc.cfg.WorkDir,
	}
}
