package domain

import (
	"context"
	"fmt"
)

// testing runs the suite with the selected runner: jest, then ava, then mocha.
func (s *session) testing(ctx context.Context) error {
	switch {
	case s.opts.Jest:
		args := []string{}
		if s.opts.Debug {
			args = append(args, "--verbose")
		}

		if s.opts.UpdateSnapshots {
			args = append(args, "--updateSnapshot")
		}

		return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.Jest, args...))

	case s.opts.Ava:
		args := []string{
			s.tempDirectoryFlag(),
			s.tools.resolve(ctx, s.cfg.Tools.Ava),
			"--verbose",
		}
		if s.opts.UpdateSnapshots {
			args = append(args, "--update-snapshots")
		}

		return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.NYC, args...))

	default:
		return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.Mocha, "--require", "intelli-espower-loader"))
	}
}

func (s *session) tempDirectoryFlag() string {
	return fmt.Sprintf("--temp-directory=%s", s.cfg.ScratchDir)
}
