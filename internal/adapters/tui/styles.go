package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ecfg/internal/ui/style"
)

var (
	taskStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	errorLineStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
