package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"pkgwrap.dev/pkg/pkgwrap/internal/controller"
	"pkgwrap.dev/pkg/pkgwrap/internal/domain"
)

// isolateProject moves the test into an empty project directory and keeps
// logs, reports and nyc data out of the home directory.
func isolateProject(t *testing.T) string {
	t.Helper()

	projectDir := t.TempDir()
	stateDir := t.TempDir()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(projectDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	t.Setenv("PKGWRAP_LOG_FILENAME", filepath.Join(stateDir, "pkgwrap.log"))
	t.Setenv("PKGWRAP_REPORT_PATH", filepath.Join(stateDir, "report.yaml"))
	t.Setenv("PKGWRAP_PATHS_SCRATCH", filepath.Join(stateDir, ".nyc_output"))

	return projectDir
}

// useDispatcher swaps the shared dispatcher for the duration of the test.
func useDispatcher(t *testing.T, d domain.Dispatcher) {
	t.Helper()

	original := dispatcher
	dispatcher = d

	t.Cleanup(func() { dispatcher = original })
}

// useBufferedUI swaps the shared UI for a plain one writing into the returned buffer.
func useBufferedUI(t *testing.T) *bytes.Buffer {
	t.Helper()

	out := &bytes.Buffer{}
	uiCmd := &cobra.Command{}
	uiCmd.SetOut(out)

	original := ui
	ui = controller.NewSimpleUI(uiCmd)

	t.Cleanup(func() { ui = original })

	return out
}

func executeRoot(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	if sub != nil {
		cmd.AddCommand(sub)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
