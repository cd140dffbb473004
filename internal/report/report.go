// Package report renders plans and profile tables for humans.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"envprof/internal/model"
	"envprof/internal/profile"
	"envprof/internal/resolve"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Strikethrough(true)

	keptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)
)

// Render describes the effect of a plan. Each variable gets a
// "Setting NAME" line; verbose mode also lists every value with its icon.
func Render(changes []resolve.VariableChange, verbose bool) string {
	var b strings.Builder
	if len(changes) == 0 {
		b.WriteString(dimStyle.Render("Nothing to change"))
		b.WriteString("\n")
		return b.String()
	}

	for _, change := range changes {
		verb := "Setting"
		if change.Cleared {
			verb = "Clearing"
		}
		line := verb + " " + nameStyle.Render(change.Name)
		if !change.Changed {
			line += " " + dimStyle.Render(model.IconUnchanged+" unchanged")
		}
		b.WriteString(line)
		b.WriteString("\n")

		if !verbose {
			continue
		}
		for _, vc := range change.Values {
			b.WriteString("  ")
			b.WriteString(RenderValue(vc))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderValue formats one classified value with its icon.
func RenderValue(vc resolve.ValueChange) string {
	switch vc.Kind {
	case resolve.Added:
		return addedStyle.Render(model.IconAdded + " " + vc.Value.String())
	case resolve.Removed:
		return removedStyle.Render(model.IconRemoved + " " + vc.Value.String())
	default:
		return keptStyle.Render(model.IconKept + " " + vc.Value.String())
	}
}

// RenderProfiles lists the profiles of table in index order, with what
// each one inherits and the variables it declares.
func RenderProfiles(table *profile.Table) string {
	var b strings.Builder
	sorted := table.Sorted()
	if len(sorted) == 0 {
		b.WriteString(dimStyle.Render("No profiles defined"))
		b.WriteString("\n")
		return b.String()
	}

	sep := string(os.PathListSeparator)
	for _, p := range sorted {
		b.WriteString(headingStyle.Render(p.Name))
		if p.Inherits() {
			b.WriteString(" " + dimStyle.Render(model.IconInherits+" "+inheritance(p)))
		}
		b.WriteString("\n")

		for _, name := range p.Env.Names() {
			set, _ := p.Env.Lookup(name)
			fmt.Fprintf(&b, "  %s = %s\n", nameStyle.Render(name), set.Join(sep))
		}
	}
	return b.String()
}

func inheritance(p *profile.Profile) string {
	var parts []string
	if len(p.Add) > 0 {
		parts = append(parts, "add "+strings.Join(p.Add, ", "))
	}
	if len(p.Remove) > 0 {
		parts = append(parts, "remove "+strings.Join(p.Remove, ", "))
	}
	return strings.Join(parts, "; ")
}
