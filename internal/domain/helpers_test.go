package domain

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pkgwrap.dev/pkg/pkgwrap/internal/adapter"
	adaptermocks "pkgwrap.dev/pkg/pkgwrap/internal/adapter/mocks"
	"pkgwrap.dev/pkg/pkgwrap/internal/controller"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// project is a dispatcher wired to a real temp directory, a mocked process
// runner and a SimpleUI writing into out.
type project struct {
	root string
	cfg  Config
	proc *adaptermocks.MockProcessAdapter
	out  *bytes.Buffer
	d    *dispatcher
}

func newProject(t *testing.T) *project {
	t.Helper()

	root := t.TempDir()
	proc := adaptermocks.NewMockProcessAdapter(t)

	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	d, ok := NewDispatcher(adapter.NewLocalSourceFSAdapter(), proc, nil, controller.NewSimpleUI(cmd)).(*dispatcher)
	require.True(t, ok)

	d.goos = "linux"

	return &project{
		root: root,
		cfg: Config{
			WorkDir:    m.Path(root),
			BinDir:     m.Path(filepath.Join(root, "node_modules", ".bin")),
			ScratchDir: m.Path(filepath.Join(t.TempDir(), ".nyc_output")),
			DocsDir:    m.Path(filepath.Join(root, "docs")),
			JSXTestDir: m.Path(filepath.Join(root, "test")),
			Tools:      DefaultTools(),
			Docs:       DefaultDocsConfig(),
		},
		proc: proc,
		out:  out,
		d:    d,
	}
}

func (p *project) path(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p *project) write(t *testing.T, rel, content string) {
	t.Helper()

	full := p.path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func (p *project) exists(rel string) bool {
	_, err := os.Stat(p.path(rel))
	return err == nil
}

func request(opts m.Options, commands ...m.Command) m.Request {
	return m.NewRequest(opts, commands...)
}

func toolNamed(name string) any {
	return mock.MatchedBy(func(inv m.Invocation) bool {
		return inv.Name == name
	})
}

// recordRuns accepts every streamed tool run and appends it to calls.
func (p *project) recordRuns(calls *[]m.Invocation) {
	p.proc.On("Run", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*calls = append(*calls, args.Get(1).(m.Invocation))
		}).
		Return(nil)
}
