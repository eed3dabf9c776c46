package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStep announces the command about to run.
func (s *SimpleUI) DisplayStep(ctx context.Context, command m.Command) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("==> %s\n", command)
}

// DisplayInvocation echoes the tool command line before it runs.
func (s *SimpleUI) DisplayInvocation(ctx context.Context, inv m.Invocation) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", inv)
}

// DisplayMessage prints a free-form line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf(format+"\n", args...)
}

// DisplayJSXFiles lists discovered JSX files.
func (s *SimpleUI) DisplayJSXFiles(ctx context.Context, files []m.JSXFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found JSX files:\n")

	for _, file := range files {
		s.printf(" ~> %s\n", file.Source)
	}
}

// DisplayCompileStart announces the transpile batch.
func (s *SimpleUI) DisplayCompileStart(ctx context.Context, files int, workers int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Compiling JSX Files (%d files, %d workers)\n", files, workers)
}

// DisplayCompileResult prints the status line of a single file, with the
// transpiler output when it failed.
func (s *SimpleUI) DisplayCompileResult(ctx context.Context, result m.CompileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, " -> %s\n", result.Message())

	if !result.OK() && result.Output != "" {
		_, _ = fmt.Fprintf(out, "%s\n", result.Output)
	}
}

// DisplayCompileSummary prints the aggregate transpile outcome.
func (s *SimpleUI) DisplayCompileSummary(ctx context.Context, results []m.CompileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	failed := countFailed(results)
	s.printf("Compilation finished - %d files (%d compiled, %d failed)\n", len(results), len(results)-failed, failed)
}

// DisplayReport renders a run report as a table.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	outcome := "succeeded"
	if report.Failed() {
		outcome = "failed"
	}

	s.printf("Run started %s in %s (%s)\n\n", report.Started.Format("2006-01-02 15:04:05"), report.WorkDir, outcome)
	s.printf("%s", renderStepTable(report.Steps))

	if len(report.Compiled) > 0 {
		s.printf("\n%s", renderCompileTable(report.Compiled))
	}

	return nil
}

// DisplaySources renders the discovery results of the list command.
func (s *SimpleUI) DisplaySources(ctx context.Context, jsx []m.JSXFile, docs []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Source", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, file := range jsx {
		table.Append([]string{"jsx", string(file.Source), string(file.Output)})
	}

	for _, doc := range docs {
		table.Append([]string{"docs", string(doc), ""})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d jsx", len(jsx)), fmt.Sprintf("%d docs", len(docs))})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func renderStepTable(steps []m.StepReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Command", "Status", "Duration", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0

	for _, step := range steps {
		if step.Status == m.StepFailed {
			failed++
		}

		table.Append([]string{string(step.Command), string(step.Status), step.Duration.String(), firstLine(step.Error)})
	}

	table.SetFooter([]string{fmt.Sprintf("Steps %d", len(steps)), fmt.Sprintf("%d failed", failed), "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderCompileTable(records []m.CompileRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Output", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, record := range records {
		result := "compiled"
		if record.Error != "" {
			result = firstLine(record.Error)
		}

		table.Append([]string{string(record.Source), string(record.Output), result})
	}

	table.Render()

	return tableBuffer.String()
}

func countFailed(results []m.CompileResult) int {
	failed := 0

	for _, result := range results {
		if !result.OK() {
			failed++
		}
	}

	return failed
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}

	return s
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
