package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	return cmd, buf
}

func TestSimpleUI_DisplayInvocation(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayInvocation(context.Background(), m.Invocation{Name: "tsc", Args: []string{"-p", "."}})

	assert.Equal(t, "tsc -p .\n", buf.String())
}

func TestSimpleUI_DisplayStep(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayStep(context.Background(), m.CommandBuild)

	assert.Equal(t, "==> build\n", buf.String())
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayStep(ctx, m.CommandBuild)
	ui.DisplayMessage(ctx, "hello %s", "world")
	require.Error(t, ui.DisplayReport(ctx, m.RunReport{}))

	assert.Empty(t, buf.String())
}

func TestSimpleUI_CompileOutput(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	ok := m.CompileResult{File: m.NewJSXFile("lib/app.jsx")}
	failed := m.CompileResult{
		File:   m.NewJSXFile("lib/broken.jsx"),
		Output: "SyntaxError: Unexpected token (3:4)",
		Err:    errors.New("exit status 1"),
	}

	ui.DisplayCompileStart(ctx, 2, 2)
	ui.DisplayCompileResult(ctx, ok)
	ui.DisplayCompileResult(ctx, failed)
	ui.DisplayCompileSummary(ctx, []m.CompileResult{ok, failed})

	out := buf.String()
	assert.Contains(t, out, "Compiling JSX Files (2 files, 2 workers)")
	assert.Contains(t, out, " -> compiled: lib/app.jsx")
	assert.Contains(t, out, " -> Error compiling file: lib/broken.jsx -> exit status 1")
	assert.Contains(t, out, "SyntaxError: Unexpected token (3:4)")
	assert.Contains(t, out, "Compilation finished - 2 files (1 compiled, 1 failed)")
}

func TestSimpleUI_DisplayJSXFiles(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayJSXFiles(context.Background(), []m.JSXFile{m.NewJSXFile("a.jsx"), m.NewJSXFile("lib/b.jsx")})

	assert.Equal(t, "Found JSX files:\n ~> a.jsx\n ~> lib/b.jsx\n", buf.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	report := m.RunReport{
		Started: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		WorkDir: "/work/widgets",
		Steps: []m.StepReport{
			{Command: m.CommandBuild, Status: m.StepOK, Duration: 2 * time.Second},
			{Command: m.CommandLint, Status: m.StepFailed, Duration: time.Second, Error: "Command failed: tslint\nsecond line"},
		},
		Compiled: []m.CompileRecord{{Source: "lib/app.jsx", Output: "lib/app.js"}},
	}

	require.NoError(t, ui.DisplayReport(context.Background(), report))

	out := buf.String()
	assert.Contains(t, out, "Run started 2024-05-06 07:08:09 in /work/widgets (failed)")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "Command failed: tslint")
	assert.NotContains(t, out, "second line")
	assert.Contains(t, out, "lib/app.jsx")
	assert.Contains(t, strings.ToLower(out), "1 failed")
}

func TestSimpleUI_DisplaySources(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	err := ui.DisplaySources(context.Background(),
		[]m.JSXFile{m.NewJSXFile("lib/app.jsx")},
		[]m.Path{"index.js", "lib/util.js"},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "lib/app.jsx")
	assert.Contains(t, out, "lib/app.js")
	assert.Contains(t, out, "lib/util.js")
	assert.Contains(t, strings.ToLower(out), "2 docs")
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := createTempFile(t)
	require.NoError(t, err)
	assert.False(t, IsTTY(f))
}

func TestSimpleUI_DisplayReport_Succeeded(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	report := m.RunReport{
		Started: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		WorkDir: "/work/widgets",
		Steps:   []m.StepReport{{Command: m.CommandBuild, Status: m.StepOK}},
	}

	require.NoError(t, ui.DisplayReport(context.Background(), report))
	assert.Contains(t, buf.String(), "in /work/widgets (succeeded)")
}
