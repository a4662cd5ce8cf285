package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecfg/internal/core/ports"
)

// NodeID is the unique identifier for the password prompt Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.PasswordPrompt]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PasswordPrompt, error) {
			return NewTerminal(os.Stdin, os.Stderr), nil
		},
	})
}
