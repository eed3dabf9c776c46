package domain

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

func TestPoolSize(t *testing.T) {
	tests := []struct {
		name  string
		files int
		lower int
		upper int
		want  int
	}{
		{name: "below lower bound", files: 2, lower: 5, upper: 10, want: 5},
		{name: "within bounds", files: 7, lower: 5, upper: 10, want: 7},
		{name: "above upper bound", files: 40, lower: 5, upper: 10, want: 10},
		{name: "single worker", files: 3, lower: 1, upper: 1, want: 1},
		{name: "zero lower bound is raised", files: 0, lower: 0, upper: 4, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, poolSize(tt.files, tt.lower, tt.upper))
		})
	}
}

func TestDiscoverJSX(t *testing.T) {
	p := newProject(t)
	p.write(t, "app.jsx", "")
	p.write(t, "src/components/button.jsx", "")
	p.write(t, "src/components/button.js", "")
	p.write(t, "node_modules/lib/index.jsx", "")
	p.write(t, "dist/bundle.jsx", "")
	p.write(t, "coverage/report.jsx", "")
	p.write(t, ".git/hooks/x.jsx", "")
	p.write(t, "packages/inner/view.jsx", "")

	s := p.d.newSession(p.cfg, m.DefaultOptions())

	files, err := s.discoverJSX(context.Background(), p.cfg.WorkDir)
	require.NoError(t, err)

	assert.Equal(t, []m.JSXFile{
		m.NewJSXFile(m.Path(p.path("app.jsx"))),
		m.NewJSXFile(m.Path(p.path("src/components/button.jsx"))),
	}, files)
}

func TestDiscoverJSX_MissingBase(t *testing.T) {
	p := newProject(t)
	s := p.d.newSession(p.cfg, m.DefaultOptions())

	files, err := s.discoverJSX(context.Background(), p.cfg.JSXTestDir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestJSXBase(t *testing.T) {
	p := newProject(t)

	opts := m.DefaultOptions()
	assert.Equal(t, p.cfg.WorkDir, p.d.newSession(p.cfg, opts).jsxBase())

	opts.JSXTest = true
	assert.Equal(t, p.cfg.JSXTestDir, p.d.newSession(p.cfg, opts).jsxBase())
}

func TestCompileJSX_FailureDoesNotStopSiblings(t *testing.T) {
	p := newProject(t)
	p.write(t, "a.jsx", "")
	p.write(t, "broken.jsx", "")
	p.write(t, "c.jsx", "")

	var calls atomic.Int32

	p.proc.On("CombinedOutput", mock.Anything, mock.MatchedBy(func(inv m.Invocation) bool {
		return inv.Name == "babel" && strings.HasSuffix(inv.Args[0], "broken.jsx")
	})).Run(func(mock.Arguments) { calls.Add(1) }).Return("SyntaxError: unexpected token", errors.New("exit status 1"))
	p.proc.On("CombinedOutput", mock.Anything, toolNamed("babel")).
		Run(func(mock.Arguments) { calls.Add(1) }).Return("", nil)

	s := p.d.newSession(p.cfg, m.DefaultOptions())

	files, err := s.discoverJSX(context.Background(), p.cfg.WorkDir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	results, err := s.compileJSX(context.Background(), files)
	require.ErrorIs(t, err, ErrCompileFailed)
	assert.Contains(t, err.Error(), "1 of 3 files failed")

	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())

	require.Len(t, s.report.Compiled, 3)
	assert.Equal(t, "exit status 1", s.report.Compiled[1].Error)

	out := p.out.String()
	assert.Contains(t, out, "Compiling JSX Files (3 files, 5 workers)")
	assert.Contains(t, out, "SyntaxError: unexpected token")
	assert.Contains(t, out, "Compilation finished - 3 files (2 compiled, 1 failed)")
}

func TestCompileJSX_TranspilerArguments(t *testing.T) {
	p := newProject(t)
	p.write(t, "view.jsx", "")

	var got m.Invocation

	p.proc.On("CombinedOutput", mock.Anything, toolNamed("babel")).
		Run(func(args mock.Arguments) { got = args.Get(1).(m.Invocation) }).
		Return("", nil).Once()

	s := p.d.newSession(p.cfg, m.DefaultOptions())

	_, err := s.compileJSX(context.Background(), []m.JSXFile{m.NewJSXFile(m.Path(p.path("view.jsx")))})
	require.NoError(t, err)

	assert.Equal(t, []string{p.path("view.jsx"), "-o", p.path("view.js"), "--source-maps", "inline"}, got.Args)
	assert.Equal(t, p.cfg.WorkDir, got.Dir)
}

func TestCompileJSX_Cancelled(t *testing.T) {
	p := newProject(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := p.d.newSession(p.cfg, m.DefaultOptions())

	_, err := s.compileJSX(ctx, []m.JSXFile{m.NewJSXFile("a.jsx"), m.NewJSXFile("b.jsx")})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrCompileFailed)
}

func TestCleanupJSX(t *testing.T) {
	p := newProject(t)
	p.write(t, "foo/bar.jsx", "")
	p.write(t, "foo/bar.js", "")
	p.write(t, "foo/baz.jsx", "")

	s := p.d.newSession(p.cfg, m.DefaultOptions())

	files, err := s.discoverJSX(context.Background(), p.cfg.WorkDir)
	require.NoError(t, err)
	require.NoError(t, s.cleanupJSX(context.Background(), files))

	assert.False(t, p.exists("foo/bar.js"))
	assert.True(t, p.exists("foo/bar.jsx"))
	assert.True(t, p.exists("foo/baz.jsx"))
}
