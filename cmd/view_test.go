package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adaptermocks "pkgwrap.dev/pkg/pkgwrap/internal/adapter/mocks"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

func useReportStore(t *testing.T, store *adaptermocks.MockReportStore) {
	t.Helper()

	original := reportStore
	reportStore = store

	t.Cleanup(func() { reportStore = original })
}

func TestViewCmd_RendersReport(t *testing.T) {
	isolateProject(t)
	out := useBufferedUI(t)

	store := adaptermocks.NewMockReportStore(t)
	useReportStore(t, store)

	report := m.RunReport{
		Started: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		WorkDir: "/work/demo",
		Steps: []m.StepReport{
			{Command: m.CommandBuild, Status: m.StepOK, Duration: 2 * time.Second},
			{Command: m.CommandLint, Status: m.StepFailed, Error: "Command failed: tslint"},
		},
	}

	store.On("LoadReport", m.Path("/reports/last.yaml")).Return(report, nil).Once()

	_, err := executeRoot(t, newViewCmd(), "view", "--report", "/reports/last.yaml")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Run started 2024-05-01 12:00:00 in /work/demo")
	assert.Contains(t, strings.ToLower(out.String()), "1 failed")
}

func TestViewCmd_MissingReport(t *testing.T) {
	isolateProject(t)
	useBufferedUI(t)

	store := adaptermocks.NewMockReportStore(t)
	useReportStore(t, store)

	store.On("LoadReport", m.Path("/reports/none.yaml")).Return(m.RunReport{}, errors.New("read report: no such file")).Once()

	_, err := executeRoot(t, newViewCmd(), "view", "--report", "/reports/none.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load run report")
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	isolateProject(t)
	useReportStore(t, adaptermocks.NewMockReportStore(t))

	_, err := executeRoot(t, newViewCmd(), "view", "./custom-report.yaml")
	require.Error(t, err)
}
