package session

import (
	"context"

	"go.trai.ch/ecfg/internal/core/domain"
)

// State is the phase of an interactive session.
type State int

const (
	// StateBrowsing waits for the operator to pick a task.
	StateBrowsing State = iota
	// StateExecuting is held while the selected task runs.
	StateExecuting
	// StateExited is terminal.
	StateExited
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateExecuting:
		return "executing"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Session is the interactive state machine: a cursor over the task list and
// the accumulated output and error logs.
type Session struct {
	dispatcher *Dispatcher
	cursor     int
	state      State
	output     *Scrollback
	errors     *Scrollback
}

// New creates a Session in StateBrowsing with the cursor on the first task.
func New(dispatcher *Dispatcher, scrollback int) *Session {
	return &Session{
		dispatcher: dispatcher,
		output:     NewScrollback(scrollback),
		errors:     NewScrollback(scrollback),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Selected returns the cursor position.
func (s *Session) Selected() int {
	return s.cursor
}

// TaskNames returns the names shown in the task list.
func (s *Session) TaskNames() []string {
	tasks := s.dispatcher.Tasks()
	names := make([]string, len(tasks))
	for i := range tasks {
		names[i] = tasks[i].Name
	}
	return names
}

// Output returns the output log.
func (s *Session) Output() *Scrollback {
	return s.output
}

// Errors returns the error log.
func (s *Session) Errors() *Scrollback {
	return s.errors
}

// MoveUp moves the cursor up, stopping at the first task.
func (s *Session) MoveUp() {
	if s.state != StateBrowsing {
		return
	}
	s.cursor = max(0, s.cursor-1)
}

// MoveDown moves the cursor down, stopping at the last task.
func (s *Session) MoveDown() {
	if s.state != StateBrowsing {
		return
	}
	s.cursor = max(0, min(s.cursor+1, len(s.dispatcher.Tasks())-1))
}

// Select runs the task under the cursor and merges its log. A task error is
// recorded in the error log and returned; the session stays usable.
func (s *Session) Select(ctx context.Context) error {
	if s.state != StateBrowsing {
		return nil
	}

	s.state = StateExecuting
	log, err := s.dispatcher.ExecuteByIndex(ctx, s.cursor)
	s.Merge(log)
	if err != nil {
		s.RecordError(err)
	}
	if s.state == StateExecuting {
		s.state = StateBrowsing
	}
	return err
}

// Quit ends the session.
func (s *Session) Quit() {
	s.state = StateExited
}

// Merge appends the lines of log to the output and error logs.
func (s *Session) Merge(log domain.Log) {
	stdout, stderr := log.Lines()
	s.output.Append(stdout...)
	s.errors.Append(stderr...)
}

// RecordError appends err to the error log.
func (s *Session) RecordError(err error) {
	s.errors.Append(domain.SplitLines([]byte(err.Error()))...)
}

// Replace swaps the task list and keeps the cursor in range.
func (s *Session) Replace(tasks []domain.Task) {
	s.dispatcher.Replace(tasks)
	s.cursor = max(0, min(s.cursor, len(tasks)-1))
}
