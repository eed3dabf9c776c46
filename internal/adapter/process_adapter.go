package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// ProcessAdapter abstracts execution of the external tools pkgwrap wraps.
type ProcessAdapter interface {
	// Run executes the invocation, streaming its output to the adapter's
	// writers.
	Run(ctx context.Context, inv m.Invocation) error

	// Output executes the invocation and returns its captured standard
	// output. Standard error is captured into the returned ToolError on failure.
	Output(ctx context.Context, inv m.Invocation) (string, error)

	// CombinedOutput executes the invocation and returns stdout and stderr
	// interleaved, without streaming anything.
	CombinedOutput(ctx context.Context, inv m.Invocation) (string, error)

	// Pipe runs from | to, connecting the standard output of the first to
	// the standard input of the second. The second tool's output is streamed.
	Pipe(ctx context.Context, from, to m.Invocation) error
}

// ToolError reports an external tool that could not start or exited non-zero.
type ToolError struct {
	Command  string
	ExitCode int    // -1 when the tool never ran to completion
	Output   string // captured output, empty when the output was streamed
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("Command failed: %s (%v)", e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}

	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// LocalProcessAdapter provides a concrete implementation using os/exec.
type LocalProcessAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalProcessAdapter constructs a LocalProcessAdapter that forwards tool
// output to the given writers.
func NewLocalProcessAdapter(stdout, stderr io.Writer) *LocalProcessAdapter {
	return &LocalProcessAdapter{
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the invocation with output streamed.
func (a *LocalProcessAdapter) Run(ctx context.Context, inv m.Invocation) error {
	cmd := a.command(ctx, inv)
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	closeStdin, err := a.attachStdin(cmd, inv)
	if err != nil {
		return newToolError(inv, "", err)
	}
	defer closeStdin()

	if err := cmd.Run(); err != nil {
		return newToolError(inv, "", err)
	}

	return nil
}

// Output executes the invocation and returns its standard output.
func (a *LocalProcessAdapter) Output(ctx context.Context, inv m.Invocation) (string, error) {
	cmd := a.command(ctx, inv)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	closeStdin, err := a.attachStdin(cmd, inv)
	if err != nil {
		return "", newToolError(inv, "", err)
	}
	defer closeStdin()

	if err := cmd.Run(); err != nil {
		return stdout.String(), newToolError(inv, stderr.String(), err)
	}

	return stdout.String(), nil
}

// CombinedOutput executes the invocation and returns stdout and stderr together.
func (a *LocalProcessAdapter) CombinedOutput(ctx context.Context, inv m.Invocation) (string, error) {
	cmd := a.command(ctx, inv)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	closeStdin, err := a.attachStdin(cmd, inv)
	if err != nil {
		return "", newToolError(inv, "", err)
	}
	defer closeStdin()

	if err := cmd.Run(); err != nil {
		return output.String(), newToolError(inv, output.String(), err)
	}

	return output.String(), nil
}

// Pipe runs from | to without a shell.
func (a *LocalProcessAdapter) Pipe(ctx context.Context, from, to m.Invocation) error {
	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create pipe: %w", err)
	}

	src := a.command(ctx, from)
	src.Stdout = writer
	src.Stderr = a.stderr

	closeStdin, err := a.attachStdin(src, from)
	if err != nil {
		_ = reader.Close()
		_ = writer.Close()

		return newToolError(from, "", err)
	}
	defer closeStdin()

	dst := a.command(ctx, to)
	dst.Stdin = reader
	dst.Stdout = a.stdout
	dst.Stderr = a.stderr

	if err := dst.Start(); err != nil {
		_ = reader.Close()
		_ = writer.Close()

		return newToolError(to, "", err)
	}

	srcErr := src.Start()

	// The children hold their own copies of the pipe ends; closing ours lets
	// the reader see EOF once the writer exits.
	_ = writer.Close()
	_ = reader.Close()

	if srcErr == nil {
		srcErr = src.Wait()
	}

	dstErr := dst.Wait()

	// A sink that exits early breaks the pipe for the source, so the sink's
	// failure comes first.
	switch {
	case srcErr != nil && dstErr != nil:
		return errors.Join(newToolError(to, "", dstErr), newToolError(from, "", srcErr))
	case dstErr != nil:
		return newToolError(to, "", dstErr)
	case srcErr != nil:
		return newToolError(from, "", srcErr)
	}

	return nil
}

func (a *LocalProcessAdapter) command(ctx context.Context, inv m.Invocation) *exec.Cmd {
	// #nosec G204 - tools are resolved from the project toolchain configuration
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	if inv.Dir != "" {
		cmd.Dir = string(inv.Dir)
	}

	return cmd
}

func (a *LocalProcessAdapter) attachStdin(cmd *exec.Cmd, inv m.Invocation) (func(), error) {
	if inv.Stdin == "" {
		return func() {}, nil
	}

	// #nosec G304 - stdin files are project report files
	file, err := os.Open(string(inv.Stdin))
	if err != nil {
		return func() {}, fmt.Errorf("open stdin %s: %w", inv.Stdin, err)
	}

	cmd.Stdin = file

	return func() { _ = file.Close() }, nil
}

func newToolError(inv m.Invocation, output string, err error) *ToolError {
	code := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}

	return &ToolError{
		Command:  inv.String(),
		ExitCode: code,
		Output:   output,
		Err:      err,
	}
}
