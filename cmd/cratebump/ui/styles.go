// Package ui provides the visual styling for cratebump's terminal output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// CurrentVersion marks declarations still at the version being
	// replaced.
	CurrentVersion = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	// NextVersion marks declarations already at the target version.
	NextVersion = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	// DepName styles dependency names in listings.
	DepName = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	// PkgName styles package names in listings.
	PkgName = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // magenta
	// PathAccent highlights the parent directory inside displayed paths.
	PathAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	// MatchCount styles per-file match counts.
	MatchCount = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	// ErrorText styles failure notices.
	ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Red renders a string in the current-version color.
func Red(s string) string { return CurrentVersion.Render(s) }

// Green renders a string in the next-version color.
func Green(s string) string { return NextVersion.Render(s) }
