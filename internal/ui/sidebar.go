package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/filter"
	"github.com/abelbrown/tutoriais/internal/session"
)

// sidebarWidth is the fixed width of the category/type column.
const sidebarWidth = 24

// RenderSidebar lists categories with their advisory counts and the media
// type filters, marking the active selection.
func RenderSidebar(categories []catalog.Category, state *session.State, height int) string {
	var lines []string
	lines = append(lines, SidebarHeader.Render("CATEGORIES"))
	for _, c := range categories {
		label := fmt.Sprintf("%-14s %3d", truncateRunes(c.Name, 14), c.Count)
		if c.ID == state.Category() {
			lines = append(lines, SidebarActive.Render("▸ "+label))
		} else {
			lines = append(lines, SidebarEntry.Render("  "+label))
		}
	}

	lines = append(lines, "", SidebarHeader.Render("MEDIA TYPE"))
	lines = append(lines, typeLine("0", "All Types", state.Type() == filter.AllTypes))
	for i, t := range catalog.ContentTypes {
		lines = append(lines, typeLine(fmt.Sprint(i+1), t.Label(), state.Type() == string(t)))
	}

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return SidebarPanel.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func typeLine(keyLabel, label string, active bool) string {
	text := keyLabel + " " + label
	if active {
		return SidebarActive.Render("▸ " + text)
	}
	return SidebarEntry.Render("  " + text)
}

// categoryIndex returns the position of id among categories, or -1.
func categoryIndex(categories []catalog.Category, id string) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
