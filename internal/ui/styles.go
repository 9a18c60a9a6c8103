package ui

import (
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorAccent    = lipgloss.Color("39")  // Blue
)

// typeColors gives each content type its own badge color.
var typeColors = map[catalog.ContentType]lipgloss.Color{
	catalog.Article:  lipgloss.Color("75"),
	catalog.Video:    lipgloss.Color("203"),
	catalog.Image:    lipgloss.Color("141"),
	catalog.Document: lipgloss.Color("214"),
}

// SelectedItem style for the currently highlighted item.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected items.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// MetaItem style for excerpts, authors and dates.
var MetaItem = lipgloss.NewStyle().
	Foreground(colorSecondary)

// Heading style for the listing title.
var Heading = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// Subheading style for the line under the heading.
var Subheading = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// TypeBadge renders a content type label in its color.
func TypeBadge(t catalog.ContentType) string {
	color, ok := typeColors[t]
	if !ok {
		color = colorMuted
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		Render(string(t))
}

// TagStyle for tag chips in the detail view.
var TagStyle = lipgloss.NewStyle().
	Foreground(colorAccent).
	Bold(true)

// Sidebar styles.
var (
	SidebarPanel = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorMuted)

	SidebarHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	SidebarActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	SidebarEntry = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// SummaryBox frames the AI summary.
var SummaryBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(colorAccent).
	PaddingLeft(1)

// SummaryTitle labels the summary box.
var SummaryTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent)

// AttachmentBox frames type-specific media.
var AttachmentBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// Chat styles.
var (
	ChatPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	ChatTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	ChatUser = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	ChatAssistant = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for the not-found state.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// SearchBar style for the search input bar.
var SearchBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("238")).
	Padding(0, 1)

// SearchBarCount style for the result count.
var SearchBarCount = lipgloss.NewStyle().
	Foreground(colorSecondary)

// Debug overlay styles.
var (
	DebugPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	DebugHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorHighlight)
)
