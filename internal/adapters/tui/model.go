// Package tui provides the interactive dashboard: a task list beside an
// output pane and an error pane.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/engine/session"
	"go.trai.ch/ecfg/internal/ui/output"
)

const taskListWidthRatio = 0.2

// MsgTasksReloaded replaces the task list after the task file changed.
type MsgTasksReloaded struct {
	Tasks []domain.Task
}

// MsgReloadFailed reports a task file that changed but could not be loaded.
type MsgReloadFailed struct {
	Err error
}

// Model is the bubbletea model of the dashboard. Tasks run synchronously
// inside Update, so the screen does not refresh while one is executing.
type Model struct {
	ctx     context.Context
	session *session.Session
	keys    keyMap
	help    help.Model

	Width  int
	Height int
}

// NewModel creates a dashboard over s. Task runs use ctx. The color profile
// is taken from w, stderr when nil.
func NewModel(ctx context.Context, s *session.Session, w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return &Model{
		ctx:     ctx,
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Session returns the underlying session.
func (m *Model) Session() *session.Session {
	return m.session
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses, resizes and reload notifications.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.session.Quit()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.session.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.session.MoveDown()
		case key.Matches(msg, m.keys.Select):
			// The error is already in the session's error log.
			_ = m.session.Select(m.ctx)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width

	case MsgTasksReloaded:
		m.session.Replace(msg.Tasks)

	case MsgReloadFailed:
		m.session.RecordError(msg.Err)
	}

	return m, nil
}
