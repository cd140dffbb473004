package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"envprof/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading environment... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	leftWidth := max(m.WindowSize.Width/2-4, 20)
	height := m.Preview.Height

	left := panelStyle.Width(leftWidth).Height(height).Render(m.renderProfiles(height))
	right := panelStyle.Width(m.Preview.Width).Height(height).Render(m.Preview.View())

	var b strings.Builder
	b.WriteString(titleStyle.Render("envprof"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.selectionSummary()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))
	return b.String()
}

func (m AppModel) renderProfiles(height int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Profiles"))
	b.WriteString("\n\n")

	if len(m.Profiles) == 0 {
		b.WriteString(dimStyle.Render("No profiles defined"))
		return b.String()
	}

	// Keep the cursor visible: the header takes two lines.
	visible := max(height-2, 1)
	start := 0
	if m.Cursor >= visible {
		start = m.Cursor - visible + 1
	}
	end := min(start+visible, len(m.Profiles))

	for i := start; i < end; i++ {
		p := m.Profiles[i]
		mark := " "
		style := unselectedItemStyle
		if m.IsSelected(p.Name) {
			mark = model.IconSelected
			style = selectedItemStyle
		}
		line := mark + " " + p.Name
		if p.Inherits() {
			line += " " + model.IconInherits
		}
		if i == m.Cursor {
			line = cursorStyle.Render(line)
		} else {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) selectionSummary() string {
	if len(m.Selection) == 0 {
		return "no profiles selected"
	}
	return strings.Join(m.Selection, " + ")
}

func (m AppModel) Init() tea.Cmd {
	return InitSnapshotCmd()
}
