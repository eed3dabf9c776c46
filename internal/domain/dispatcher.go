// Package domain implements the pkgwrap command pipeline: it decides which
// external tools run, in which order, and how their failures propagate.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"pkgwrap.dev/pkg/pkgwrap/internal/adapter"
	"pkgwrap.dev/pkg/pkgwrap/internal/controller"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

var (
	// ErrNoCommands is returned when a request names no command.
	ErrNoCommands = errors.New("no command requested")

	// ErrInvalidOptions is returned for option values that cannot be honored.
	ErrInvalidOptions = errors.New("invalid options")
)

// Dispatcher runs requested commands against a project.
type Dispatcher interface {
	// Dispatch runs every requested command in pipeline order and stops at
	// the first failing one.
	Dispatch(ctx context.Context, cfg Config, req m.Request) error

	// Discover reports the JSX and documentation sources a dispatch would
	// touch, without running any tool.
	Discover(ctx context.Context, cfg Config, opts m.Options) (m.Discovery, error)
}

type dispatcher struct {
	fs    adapter.SourceFSAdapter
	proc  adapter.ProcessAdapter
	store adapter.ReportStore
	ui    controller.UI
	now   func() time.Time
	goos  string
}

// NewDispatcher wires a Dispatcher to its adapters.
func NewDispatcher(
	fs adapter.SourceFSAdapter,
	proc adapter.ProcessAdapter,
	store adapter.ReportStore,
	ui controller.UI,
) Dispatcher {
	return &dispatcher{
		fs:    fs,
		proc:  proc,
		store: store,
		ui:    ui,
		now:   time.Now,
		goos:  runtime.GOOS,
	}
}

// session carries the state of one dispatch.
type session struct {
	*dispatcher
	cfg    Config
	opts   m.Options
	tools  toolchain
	report m.RunReport
	log    *slog.Logger
}

func (d *dispatcher) newSession(cfg Config, opts m.Options) *session {
	return &session{
		dispatcher: d,
		cfg:        cfg,
		opts:       opts,
		tools:      toolchain{fs: d.fs, cfg: cfg},
		report: m.RunReport{
			Started: d.now(),
			WorkDir: cfg.WorkDir,
		},
		log: slog.With("component", "dispatcher"),
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, cfg Config, req m.Request) error {
	if req.Empty() {
		return ErrNoCommands
	}

	if err := validateOptions(req.Options); err != nil {
		return err
	}

	s := d.newSession(cfg, req.Options)
	s.log.Debug("Starting dispatch", "commands", req.Ordered(), "workdir", cfg.WorkDir)

	if err := s.ensureScratchDir(ctx); err != nil {
		return err
	}

	var runErr error

	for _, command := range req.Ordered() {
		d.ui.DisplayStep(ctx, command)

		started := d.now()
		err := s.step(command)(ctx)

		step := m.StepReport{
			Command:  command,
			Status:   m.StepOK,
			Duration: d.now().Sub(started),
		}

		if err != nil {
			step.Status = m.StepFailed
			step.Error = err.Error()
			runErr = fmt.Errorf("%s: %w", command, err)

			s.log.Error("Command failed", "command", command, "error", err)
		}

		s.report.Steps = append(s.report.Steps, step)

		if runErr != nil {
			break
		}
	}

	s.saveReport()

	return runErr
}

func (d *dispatcher) Discover(ctx context.Context, cfg Config, opts m.Options) (m.Discovery, error) {
	s := d.newSession(cfg, opts)

	jsx, err := s.discoverJSX(ctx, s.jsxBase())
	if err != nil {
		return m.Discovery{}, fmt.Errorf("discover jsx: %w", err)
	}

	docs, err := s.discoverDocs(ctx)
	if err != nil {
		return m.Discovery{}, fmt.Errorf("discover docs: %w", err)
	}

	return m.Discovery{JSX: jsx, Docs: docs}, nil
}

func validateOptions(opts m.Options) error {
	if opts.MinWorkers < 1 {
		return fmt.Errorf("%w: minWorkers must be at least 1, got %d", ErrInvalidOptions, opts.MinWorkers)
	}

	if opts.MaxWorkers < opts.MinWorkers {
		return fmt.Errorf("%w: maxWorkers (%d) is below minWorkers (%d)", ErrInvalidOptions, opts.MaxWorkers, opts.MinWorkers)
	}

	return nil
}

func (s *session) step(command m.Command) func(context.Context) error {
	switch command {
	case m.CommandClean:
		return s.clean
	case m.CommandBuild:
		return s.build
	case m.CommandTesting:
		return s.testing
	case m.CommandLint:
		return s.lint
	case m.CommandReporting:
		return s.reporting
	case m.CommandCoverage:
		return s.coverage
	case m.CommandPostinstall:
		return s.postinstall
	case m.CommandDocs:
		return s.docs
	case m.CommandGlobals:
		return s.globals
	}

	return func(context.Context) error {
		return fmt.Errorf("unsupported command %q", command)
	}
}

// ensureScratchDir creates the nyc temp directory once; later runs reuse it.
func (s *session) ensureScratchDir(ctx context.Context) error {
	if s.cfg.ScratchDir == "" {
		return nil
	}

	if err := s.fs.MkdirAll(ctx, s.cfg.ScratchDir, 0o755); err != nil {
		s.log.Error("Failed to create scratch directory", "path", s.cfg.ScratchDir, "error", err)
		return fmt.Errorf("create scratch directory: %w", err)
	}

	return nil
}

// run echoes and executes a tool with streamed output.
func (s *session) run(ctx context.Context, inv m.Invocation) error {
	s.ui.DisplayInvocation(ctx, inv)
	s.log.Debug("Running tool", "command", inv.String())

	return s.proc.Run(ctx, inv)
}

func (s *session) debugf(ctx context.Context, format string, args ...any) {
	if s.opts.Debug {
		s.ui.DisplayMessage(ctx, format, args...)
	}
}

func (s *session) saveReport() {
	if s.cfg.ReportPath == "" || s.store == nil {
		return
	}

	if err := s.store.SaveReport(s.cfg.ReportPath, s.report); err != nil {
		s.log.Warn("Failed to save run report", "path", s.cfg.ReportPath, "error", err)
	}
}
