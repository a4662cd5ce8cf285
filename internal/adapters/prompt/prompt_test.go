package prompt_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecfg/internal/adapters/prompt"
	"go.trai.ch/ecfg/internal/core/domain"
)

func pipeWith(t *testing.T, content string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return r
}

func TestTerminal_ReadPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline terminated", "hunter2\n", "hunter2"},
		{"crlf", "hunter2\r\n", "hunter2"},
		{"no trailing newline", "hunter2", "hunter2"},
		{"only first line", "first\nsecond\n", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.NewTerminal(pipeWith(t, tt.input), &out)

			got, err := p.ReadPassword("[sudo] password: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "[sudo] password: ", out.String())
		})
	}
}

func TestTerminal_ReadPassword_EmptyInput(t *testing.T) {
	p := prompt.NewTerminal(pipeWith(t, ""), &bytes.Buffer{})

	_, err := p.ReadPassword("password: ")
	require.ErrorIs(t, err, domain.ErrPromptFailed)
}
