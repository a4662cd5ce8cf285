package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.trai.ch/ecfg/internal/engine/session"
	"go.trai.ch/ecfg/internal/ui/style"
)

// layout holds the pane sizes derived from the window size.
type layout struct {
	listWidth   int
	logWidth    int
	bodyHeight  int
	outHeight   int
	errorHeight int
}

func (m *Model) layout() layout {
	bodyHeight := max(0, m.Height-1)
	listWidth := int(float64(m.Width) * taskListWidthRatio)
	outHeight := bodyHeight / 2

	return layout{
		listWidth:   listWidth,
		logWidth:    max(0, m.Width-listWidth-1),
		bodyHeight:  bodyHeight,
		outHeight:   outHeight,
		errorHeight: bodyHeight - outHeight,
	}
}

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 || m.Height < 3 {
		return "Initializing..."
	}

	l := m.layout()

	logs := lipgloss.JoinVertical(
		lipgloss.Left,
		pane(titleStyle.Render("OUTPUT"), m.session.Output(), l.logWidth, l.outHeight, lipgloss.NewStyle()),
		pane(failureTitleStyle.Render("ERRORS"), m.session.Errors(), l.logWidth, l.errorHeight, errorLineStyle),
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.taskList(l.listWidth, l.bodyHeight),
		separator(l.bodyHeight),
		logs,
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m *Model) taskList(width, height int) string {
	rows := make([]string, 0, height)
	rows = append(rows, titleStyle.Render("TASKS"))

	names := m.session.TaskNames()
	visible := max(0, height-1)
	offset := max(0, m.session.Selected()-visible+1)

	for i := offset; i < len(names) && len(rows) < height; i++ {
		if i == m.session.Selected() {
			rows = append(rows, selectedStyle.Render(ansi.Truncate(style.Pointer+" "+names[i], width, style.Ellipsis)))
			continue
		}
		rows = append(rows, taskStyle.Render(ansi.Truncate("  "+names[i], width, style.Ellipsis)))
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(rows, "\n"))
}

// pane renders a title followed by as many recent lines of sb as fit in height.
func pane(title string, sb *session.Scrollback, width, height int, lineStyle lipgloss.Style) string {
	rows := make([]string, 0, height)
	rows = append(rows, title)
	for _, line := range sb.Tail(height - 1) {
		rows = append(rows, lineStyle.Render(ansi.Truncate(line, width, style.Ellipsis)))
	}

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(rows, "\n"))
}

func separator(height int) string {
	if height <= 0 {
		return ""
	}
	return separatorStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}
