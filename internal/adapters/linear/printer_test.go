package linear_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/ecfg/internal/adapters/linear"
	"go.trai.ch/ecfg/internal/core/domain"
)

func TestPrinter_SuccessfulRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	p := linear.NewPrinter(&stdout, &stderr)

	p.Visit(&domain.Task{Name: "dotfiles"}, domain.Log{
		{Label: "[symlink] /cfg/vimrc -> /home/me/.vimrc", Success: true, Stdout: []byte("[symlink] /cfg/vimrc -> /home/me/.vimrc\n")},
		{Label: "[exec] echo hi", Success: true, Stdout: []byte("[exec] echo hi\nhi\n")},
	}, nil)
	p.Visit(&domain.Task{Name: "shell"}, domain.Log{
		{Label: "[exec] ls missing", Success: true, ExitCode: 2, Stdout: []byte("[exec] ls missing\n"), Stderr: []byte("[exec] ls missing\nls: missing: No such file\n")},
	}, nil)
	p.Summary()

	g := goldie.New(t)
	g.Assert(t, "success_stdout", stdout.Bytes())
	g.Assert(t, "success_stderr", stderr.Bytes())
	assert.Equal(t, 2, p.Completed())
}

func TestPrinter_FailedRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	p := linear.NewPrinter(&stdout, &stderr)

	p.Visit(&domain.Task{Name: "tools"}, domain.Log{
		{Label: "[exec] true", Success: true, Stdout: []byte("[exec] true\n")},
		{Label: "[pkg] no package manager for distro Unknown", Stderr: []byte("[pkg] no package manager for distro Unknown\n")},
	}, errors.New("boom"))
	p.Summary()

	g := goldie.New(t)
	g.Assert(t, "failure_stdout", stdout.Bytes())
	g.Assert(t, "failure_stderr", stderr.Bytes())
	assert.Zero(t, p.Completed())
}

func TestPrinter_EmptyRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	p := linear.NewPrinter(&stdout, &stderr)
	p.Summary()

	assert.Empty(t, stdout.String())
	assert.Equal(t, "✓ 0 task(s) completed\n", stderr.String())
}
