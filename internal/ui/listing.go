package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// linesPerItem is the rendered height of one listing entry: title line and
// excerpt line.
const linesPerItem = 2

// RenderListing renders the filtered items with the cursor row highlighted.
// height is the number of lines available for entries.
func RenderListing(items []catalog.Item, cursor int, width, height int) string {
	if len(items) == 0 {
		return HelpStyle.Render("No tutorials match these filters.\nPress x to clear all filters.")
	}

	visible := height / linesPerItem
	if visible < 1 {
		visible = 1
	}
	offset := calcScrollOffset(len(items), cursor, visible)

	var b strings.Builder
	for i := offset; i < len(items) && i < offset+visible; i++ {
		b.WriteString(renderItemLine(items[i], i == cursor, width))
		b.WriteString("\n")
		b.WriteString(renderExcerptLine(items[i], width))
		b.WriteString("\n")
	}
	return b.String()
}

// calcScrollOffset returns the first entry index so that cursor stays within
// a window of visible entries.
func calcScrollOffset(total, cursor, visible int) int {
	if total == 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor >= visible {
		return cursor - visible + 1
	}
	return 0
}

// renderItemLine renders the type badge, title, author and date.
func renderItemLine(item catalog.Item, selected bool, width int) string {
	badge := TypeBadge(item.Type)
	meta := item.Author
	if item.Date != "" {
		meta += " · " + item.Date
	}
	metaWidth := utf8.RuneCountInString(meta)

	titleWidth := width - lipgloss.Width(badge) - metaWidth - 5
	if titleWidth < 20 {
		titleWidth = 20
	}
	title := truncateRunes(item.Title, titleWidth)

	style := NormalItem
	if selected {
		style = SelectedItem
	}
	left := badge + " " + style.Render(title)

	pad := width - lipgloss.Width(left) - metaWidth - 1
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + MetaItem.Render(meta)
}

// renderExcerptLine renders the indented, single-line excerpt.
func renderExcerptLine(item catalog.Item, width int) string {
	indent := "   "
	limit := width - len(indent) - 1
	if limit < 10 {
		limit = 10
	}
	excerpt := strings.Join(strings.Fields(item.Excerpt), " ")
	return indent + MetaItem.Render(truncateRunes(excerpt, limit))
}

// truncateRunes shortens s to n runes, ending with "..." when cut.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// RenderHeader renders the listing heading, subheading and result label.
func RenderHeader(state *session.State, results int, width int) string {
	left := Heading.Render(state.Heading())
	right := SearchBarCount.Render(session.ResultLabel(results))
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right + "\n" + Subheading.Render(state.Subheading())
}

// RenderSearchBar renders the search input bar.
func RenderSearchBar(input string, focused bool, width int) string {
	prompt := StatusBarKey.Render("/")
	text := input
	if !focused && text == "" {
		text = StatusBarText.Render("Search tutorials...")
	}
	content := prompt + " " + text
	pad := width - lipgloss.Width(content) - 2
	if pad < 0 {
		pad = 0
	}
	return SearchBar.Width(width).Render(content + strings.Repeat(" ", pad))
}

// RenderStatusBar renders the bottom status bar with key hints and position.
func RenderStatusBar(left string, hints []string, width int) string {
	position := " " + left + " "
	keyHints := strings.Join(hints, " ")

	padding := width - lipgloss.Width(position) - lipgloss.Width(keyHints) - 2
	if padding < 0 {
		padding = 0
	}
	return StatusBar.Width(width).Render(position + strings.Repeat(" ", padding) + keyHints)
}

func listingHints() []string {
	return []string{
		hint(keys.Up),
		hint(keys.Open),
		hint(keys.Search),
		hint(keys.NextCat),
		hint(keys.TypeKeys),
		hint(keys.Clear),
		hint(keys.Quit),
	}
}

func positionLabel(cursor, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", cursor+1, total)
}
