// Package tui renders progress for long running operations in the terminal.
package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/malq-cli/malq/log"
	"github.com/malq-cli/malq/style"
	"golang.org/x/term"
)

// Printer writes a line above the spinner.
type Printer func(line string)

type doneMsg struct {
	err error
}

// operation is fn running in the background. Its result can be read any
// number of times, so the spinner and Wait can both wait on it.
type operation struct {
	done chan struct{}
	err  error
}

func newOperation() *operation {
	return &operation{done: make(chan struct{})}
}

// run calls fn in a goroutine. It must be called once.
func (op *operation) run(fn func() error) {
	go func() {
		op.err = fn()
		close(op.done)
	}()
}

func (op *operation) result() error {
	<-op.done
	return op.err
}

type waitModel struct {
	title    string
	spinner  spinner.Model
	keymap   keymap
	op       *operation
	cancel   context.CancelFunc
	finished bool
	canceled bool
	err      error
}

func newWaitModel(title string, op *operation, cancel context.CancelFunc) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return waitModel{
		title:   title,
		spinner: s,
		keymap:  newKeymap(),
		op:      op,
		cancel:  cancel,
	}
}

func (m waitModel) wait() tea.Msg {
	return doneMsg{err: m.op.result()}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		// the operation sees the cancellation and reports back through op
		if key.Matches(msg, m.keymap.cancel) && !m.canceled {
			m.canceled = true
			m.title = "Cancelling"
			m.cancel()
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m waitModel) View() string {
	if m.finished {
		return ""
	}
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), m.title, style.Faint(m.keymap.cancel.Help().Key+" to cancel"))
}

// Wait runs fn while a spinner titled title is shown on stderr. Pressing
// ctrl+c cancels the context passed to fn. Without a terminal fn just runs.
func Wait(ctx context.Context, title string, fn func(ctx context.Context, println Printer) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return fn(ctx, func(line string) {
			fmt.Fprintln(os.Stderr, line)
		})
	}

	op := newOperation()
	program := tea.NewProgram(newWaitModel(title, op, cancel), tea.WithOutput(os.Stderr))
	op.run(func() error {
		return fn(ctx, func(line string) {
			program.Println(line)
		})
	})

	if _, err := program.Run(); err != nil {
		log.Warn("spinner stopped: " + err.Error())
	}
	return op.result()
}
