package domain

import (
	"bytes"
	"strings"
)

// Step labels prefix every log entry.
const (
	LabelSymlink = "[symlink]"
	LabelExec    = "[exec]"
	LabelPackage = "[pkg]"
)

// LogEntry is the record of one executed step.
type LogEntry struct {
	// Label is a human-readable description such as "[exec] make".
	Label   string
	Success bool
	Stdout  []byte
	Stderr  []byte
	// ExitCode is set for spawned processes, zero otherwise.
	ExitCode int
}

// Log is the ordered sequence of entries produced by one or more task runs.
type Log []LogEntry

// Lines splits the stdout and stderr buffers of every entry into lines.
// Empty lines are dropped and carriage returns trimmed.
func (l Log) Lines() (stdout, stderr []string) {
	for i := range l {
		stdout = appendLines(stdout, l[i].Stdout)
		stderr = appendLines(stderr, l[i].Stderr)
	}
	return stdout, stderr
}

// Failed reports whether any entry is tagged as a failure.
func (l Log) Failed() bool {
	for i := range l {
		if !l[i].Success {
			return true
		}
	}
	return false
}

// SplitLines splits b on newlines, trimming carriage returns and dropping empty lines.
func SplitLines(b []byte) []string {
	return appendLines(nil, b)
}

func appendLines(dst []string, b []byte) []string {
	for line := range bytes.SplitSeq(b, []byte{'\n'}) {
		s := strings.TrimRight(string(line), "\r")
		if s == "" {
			continue
		}
		dst = append(dst, s)
	}
	return dst
}

// Marked returns b preceded by a marker line holding label.
func Marked(label string, b []byte) []byte {
	out := make([]byte, 0, len(label)+1+len(b))
	out = append(out, label...)
	out = append(out, '\n')
	return append(out, b...)
}
