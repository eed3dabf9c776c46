package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

const recentResultLines = 5

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI renders the JSX transpile batch as a live Bubble Tea progress view.
// Every other display is delegated to SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayCompileStart starts the progress program.
func (t *TUI) DisplayCompileStart(ctx context.Context, files int, workers int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	model := newCompileModel(files, workers)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(nil),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Compile progress view stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done
}

// DisplayCompileResult forwards a finished file to the progress program.
func (t *TUI) DisplayCompileResult(ctx context.Context, result m.CompileResult) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		t.SimpleUI.DisplayCompileResult(ctx, result)
		return
	}

	program.Send(compileResultMsg{result: result})
}

// DisplayCompileSummary stops the progress program and prints failures and totals.
func (t *TUI) DisplayCompileSummary(ctx context.Context, results []m.CompileResult) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program != nil {
		program.Send(compileDoneMsg{})
		<-done
	}

	for _, result := range results {
		if !result.OK() {
			t.SimpleUI.DisplayCompileResult(ctx, result)
		}
	}

	t.SimpleUI.DisplayCompileSummary(ctx, results)
}

type compileResultMsg struct {
	result m.CompileResult
}

type compileDoneMsg struct{}

// compileModel is the Bubble Tea model behind the transpile progress view.
type compileModel struct {
	spinner  spinner.Model
	progress progress.Model
	total    int
	workers  int
	finished int
	failed   int
	recent   []string
	quitting bool
}

func newCompileModel(total, workers int) compileModel {
	return compileModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total:    total,
		workers:  workers,
	}
}

func (cm compileModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm compileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case compileResultMsg:
		cm.finished++

		line := okStyle.Render("✓ ") + string(msg.result.File.Source)
		if !msg.result.OK() {
			cm.failed++
			line = errorStyle.Render("✗ ") + string(msg.result.File.Source)
		}

		cm.recent = append(cm.recent, line)
		if len(cm.recent) > recentResultLines {
			cm.recent = cm.recent[len(cm.recent)-recentResultLines:]
		}

		return cm, nil

	case compileDoneMsg:
		cm.quitting = true
		return cm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			cm.quitting = true
			return cm, tea.Quit
		}

		return cm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd
	}

	return cm, nil
}

func (cm compileModel) percent() float64 {
	if cm.total == 0 {
		return 1
	}

	return float64(cm.finished) / float64(cm.total)
}

func (cm compileModel) View() string {
	var b strings.Builder

	if cm.quitting {
		fmt.Fprintf(&b, "Compiled %d/%d JSX files\n", cm.finished, cm.total)
		return b.String()
	}

	fmt.Fprintf(&b, "%s Compiling JSX files with %d workers\n", cm.spinner.View(), cm.workers)
	fmt.Fprintf(&b, "%s %d/%d", cm.progress.ViewAs(cm.percent()), cm.finished, cm.total)

	if cm.failed > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  %d failed", cm.failed)))
	}

	b.WriteString("\n")

	for _, line := range cm.recent {
		b.WriteString(faintStyle.Render("  "+line) + "\n")
	}

	return b.String()
}
