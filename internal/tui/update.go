package tui

import (
	"slices"

	"envprof/internal/model"
	"envprof/internal/report"
	"envprof/internal/resolve"
	"envprof/internal/sysenv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgSnapshotReady carries the captured environment.
type MsgSnapshotReady struct {
	System *model.EnvMap
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Preview.Width = max(msg.Width/2-4, 20)
		m.Preview.Height = max(msg.Height-6, 4) // minus title, footer and borders
		m.Help.Width = msg.Width
		return m, nil

	case MsgSnapshotReady:
		m.Loading = false
		m.System = msg.System
		m.refreshPlan()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
		case key.Matches(msg, m.Keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, m.Keys.Down):
			if m.Cursor < len(m.Profiles)-1 {
				m.Cursor++
			}
		case key.Matches(msg, m.Keys.PageUp):
			m.Preview.SetYOffset(m.Preview.YOffset - m.Preview.Height)
		case key.Matches(msg, m.Keys.PageDown):
			m.Preview.SetYOffset(m.Preview.YOffset + m.Preview.Height)
		case key.Matches(msg, m.Keys.Toggle):
			if m.Loading || len(m.Profiles) == 0 {
				return m, nil
			}
			m.toggle(m.Profiles[m.Cursor].Name)
			m.refreshPlan()
		case key.Matches(msg, m.Keys.Confirm):
			// Only a plan that resolved can be applied.
			if m.Loading || m.Err != nil || m.PlanErr != nil {
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *AppModel) toggle(name string) {
	if i := slices.Index(m.Selection, name); i >= 0 {
		m.Selection = slices.Delete(slices.Clone(m.Selection), i, i+1)
		return
	}
	m.Selection = append(slices.Clone(m.Selection), name)
}

// refreshPlan recomputes the plan for the current selection and redraws
// the preview.
func (m *AppModel) refreshPlan() {
	plan, err := resolve.Plan(m.Table, m.Selection, m.System)
	if err != nil {
		m.Plan, m.Changes, m.PlanErr = nil, nil, err
		m.Preview.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.Plan, m.PlanErr = plan, nil
	m.Changes = resolve.Explain(plan, m.System)
	m.Preview.SetContent(report.Render(m.Changes, true))
}

// InitSnapshotCmd captures the environment in the background.
func InitSnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		system, err := sysenv.Capture()
		if err != nil {
			return MsgError(err)
		}
		return MsgSnapshotReady{System: system}
	}
}
