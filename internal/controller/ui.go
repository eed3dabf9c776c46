// Package controller provides the output adapters that present dispatch
// progress and results to the user.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// UI defines how the dispatcher reports progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayStep(ctx context.Context, command m.Command)
	DisplayInvocation(ctx context.Context, inv m.Invocation)
	DisplayMessage(ctx context.Context, format string, args ...any)
	DisplayJSXFiles(ctx context.Context, files []m.JSXFile)
	DisplayCompileStart(ctx context.Context, files int, workers int)
	DisplayCompileResult(ctx context.Context, result m.CompileResult)
	DisplayCompileSummary(ctx context.Context, results []m.CompileResult)
	DisplayReport(ctx context.Context, report m.RunReport) error
	DisplaySources(ctx context.Context, jsx []m.JSXFile, docs []m.Path) error
}

// NewUI picks the interactive UI when output goes to a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
