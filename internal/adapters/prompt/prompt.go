// Package prompt reads the root password for package application.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Terminal implements ports.PasswordPrompt. On a terminal input is not
// echoed; otherwise one line is read from in.
type Terminal struct {
	in  *os.File
	out io.Writer
}

var _ ports.PasswordPrompt = (*Terminal)(nil)

// NewTerminal creates a prompt reading in and writing the prompt text to out.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// ReadPassword writes prompt and reads the answer without its line ending.
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", failure(err, "cannot write prompt")
	}

	fd := int(t.in.Fd()) //nolint:gosec // file descriptors fit in int
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(t.out)
		if err != nil {
			return "", failure(err, "cannot read password")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", failure(err, "cannot read password")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func failure(err error, msg string) error {
	return zerr.Wrap(errors.Join(domain.ErrPromptFailed, err), msg)
}
