package tui

import (
	"envprof/internal/model"
	"envprof/internal/profile"
	"envprof/internal/resolve"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the picker state.
type AppModel struct {
	// Data
	Table   *profile.Table
	System  *model.EnvMap
	Plan    *model.UpdatePlan
	Changes []resolve.VariableChange
	PlanErr error // Resolution failure for the current selection
	Loading bool
	Err     error

	// UI State
	Profiles   []*profile.Profile // Index order
	Selection  []string           // Selected names, in the order they were picked
	Cursor     int
	Confirmed  bool
	WindowSize tea.WindowSizeMsg

	// Components
	Preview viewport.Model
	Keys    keyMap
	Help    help.Model
}

// InitialModel returns the picker for table with nothing selected.
func InitialModel(table *profile.Table) AppModel {
	return AppModel{
		Table:    table,
		Profiles: table.Sorted(),
		Loading:  true,
		Preview:  viewport.New(40, 10),
		Keys:     defaultKeyMap(),
		Help:     help.New(),
	}
}

// IsSelected reports whether the profile called name is selected.
func (m AppModel) IsSelected(name string) bool {
	for _, s := range m.Selection {
		if s == name {
			return true
		}
	}
	return false
}
