package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const lcovReport = "coverage/lcov.info"

func (s *session) reporting(ctx context.Context) error {
	return s.run(ctx, s.tools.invocation(ctx, s.cfg.Tools.NYC,
		"report", s.tempDirectoryFlag(), "--reporter=html"))
}

// coverage uploads coverage data. Jest leaves an lcov file behind; otherwise
// nyc renders lcov straight into the uploader.
func (s *session) coverage(ctx context.Context) error {
	upload := s.tools.invocation(ctx, s.cfg.Tools.Coveralls)

	if s.opts.Jest {
		upload.Stdin = s.fs.JoinPath(ctx, string(s.cfg.WorkDir), filepath.FromSlash(lcovReport))

		return s.run(ctx, upload)
	}

	report := s.tools.invocation(ctx, s.cfg.Tools.NYC,
		"report", s.tempDirectoryFlag(), "--reporter=text-lcov")

	s.ui.DisplayMessage(ctx, "%s | %s", report, upload)
	s.log.Debug("Piping coverage report", "from", report.String(), "to", upload.String())

	return s.proc.Pipe(ctx, report, upload)
}

var postinstallDirs = []string{"coverage", ".nyc_output"}

// postinstall prepares the coverage directories. Running it again is a no-op.
func (s *session) postinstall(ctx context.Context) error {
	for _, name := range postinstallDirs {
		dir := s.fs.JoinPath(ctx, string(s.cfg.WorkDir), name)

		if err := s.fs.MkdirAll(ctx, dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}

		if s.goos == "windows" {
			continue
		}

		s.debugf(ctx, " -> chmod 777 %s", dir)

		if err := s.fs.Chmod(ctx, dir, os.ModePerm); err != nil {
			return fmt.Errorf("chmod %s: %w", dir, err)
		}
	}

	return nil
}
