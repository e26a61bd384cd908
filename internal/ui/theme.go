package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

// styles holds every lipgloss style the pages draw with, built once per
// theme so toggling the theme restyles the whole app.
type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
	confirm lipgloss.Style
	banner  lipgloss.Style
	award   lipgloss.Style

	statCard    lipgloss.Style
	statNumber  lipgloss.Style
	statLabel   lipgloss.Style
	quote       lipgloss.Style
	completed   lipgloss.Style
	daySelected lipgloss.Style
	dayNormal   lipgloss.Style
	chartBox    lipgloss.Style
	navActive   lipgloss.Style
	navInactive lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	text := lipgloss.Color("252")
	dim := lipgloss.Color("241")
	border := lipgloss.Color("241")
	if theme == model.ThemeLight {
		text = lipgloss.Color("235")
		dim = lipgloss.Color("245")
		border = lipgloss.Color("250")
	}

	accent := lipgloss.Color("69")

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		status:  lipgloss.NewStyle().Foreground(dim),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		confirm: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		banner: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Foreground(lipgloss.Color("214")),
		award: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("220")).
			Foreground(lipgloss.Color("220")).
			Bold(true),

		statCard: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Align(lipgloss.Center),
		statNumber:  lipgloss.NewStyle().Bold(true).Foreground(text),
		statLabel:   lipgloss.NewStyle().Foreground(dim),
		quote:       lipgloss.NewStyle().Foreground(dim).Italic(true),
		completed:   lipgloss.NewStyle().Foreground(dim).Strikethrough(true),
		daySelected: lipgloss.NewStyle().Padding(0, 1).Background(accent).Foreground(lipgloss.Color("231")).Bold(true),
		dayNormal:   lipgloss.NewStyle().Padding(0, 1).Foreground(dim),
		chartBox: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
		navActive:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		navInactive: lipgloss.NewStyle().Foreground(dim),
	}
}
