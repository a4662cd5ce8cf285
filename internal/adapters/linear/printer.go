// Package linear prints task logs line by line for non-interactive runs.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/ui/output"
	"go.trai.ch/ecfg/internal/ui/style"
)

// Printer writes each log entry as it arrives: stdout lines to stdout and
// stderr lines to stderr. It is meant to be registered as a session visitor.
type Printer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu        sync.Mutex
	completed int
	failed    string
}

// NewPrinter creates a Printer. Nil writers default to the process streams.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Printer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
	}
}

// Visit prints the log of one task run.
func (p *Printer) Visit(task *domain.Task, log domain.Log, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range log {
		p.printEntryLocked(&log[i])
	}

	if err != nil {
		p.failed = task.Name
		return
	}
	p.completed++
}

// Summary prints the final line of the run.
func (p *Printer) Summary() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed != "" {
		cross := p.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(p.stderr, "%s %s failed\n", cross, p.failed)
		return
	}

	check := p.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(p.stderr, "%s %d task(s) completed\n", check, p.completed)
}

// Completed returns how many tasks succeeded so far.
func (p *Printer) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// printEntryLocked must be called with p.mu held.
func (p *Printer) printEntryLocked(entry *domain.LogEntry) {
	for _, line := range domain.SplitLines(entry.Stdout) {
		_, _ = fmt.Fprintln(p.stdout, line)
	}
	for _, line := range domain.SplitLines(entry.Stderr) {
		_, _ = fmt.Fprintln(p.stderr, line)
	}
	if !entry.Success {
		cross := p.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(p.stderr, "%s %s\n", cross, entry.Label)
	}
}
