package domain

import (
	"context"
)

// build compiles TypeScript, then optionally transpiles JSX and bundles.
func (s *session) build(ctx context.Context) error {
	if err := s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.Compiler, "-p", ".")); err != nil {
		return err
	}

	if s.opts.JSX {
		compiled, err := s.buildJSX(ctx)
		if err != nil {
			return err
		}

		if !compiled {
			return nil
		}
	}

	if s.opts.Webpack {
		return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.Bundler))
	}

	return nil
}

// buildJSX reports whether any file was handed to the transpiler. With no
// JSX file found nothing downstream runs.
func (s *session) buildJSX(ctx context.Context) (bool, error) {
	files, err := s.discoverJSX(ctx, s.jsxBase())
	if err != nil {
		return false, err
	}

	if len(files) == 0 {
		s.ui.DisplayMessage(ctx, "No JSX files found")
		return false, nil
	}

	if err := s.cleanupJSX(ctx, files); err != nil {
		return false, err
	}

	if _, err := s.compileJSX(ctx, files); err != nil {
		return true, err
	}

	return true, nil
}
