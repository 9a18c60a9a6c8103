package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// relatedLimit caps the "Related Content" list.
const relatedLimit = 3

// markdown renders item bodies, rebuilding the glamour renderer only when
// the wrap width changes.
type markdown struct {
	width    int
	renderer *glamour.TermRenderer
}

func (m *markdown) render(body string, width int) string {
	if width < 20 {
		width = 20
	}
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return wordwrap.String(body, width)
		}
		m.renderer, m.width = r, width
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		return wordwrap.String(body, width)
	}
	return strings.TrimRight(out, "\n")
}

// detailView is everything renderDetail needs for one frame.
type detailView struct {
	item           catalog.Item
	summary        string
	summaryLoading bool
	spinner        string
	related        []catalog.Item
	width          int
}

// renderDetail renders the scrollable detail body: tags, title, the AI
// summary box, byline, type-specific attachment, markdown body and related
// content.
func renderDetail(v detailView, md *markdown) string {
	width := v.width
	if width < 30 {
		width = 30
	}
	var b strings.Builder

	var tags []string
	for _, t := range v.item.Tags {
		tags = append(tags, TagStyle.Render(strings.ToUpper(t)))
	}
	b.WriteString(TypeBadge(v.item.Type))
	if len(tags) > 0 {
		b.WriteString("  " + strings.Join(tags, " "))
	}
	b.WriteString("\n\n")

	b.WriteString(Heading.Render(wordwrap.String(v.item.Title, width-2)))
	b.WriteString("\n\n")

	b.WriteString(renderSummary(v, width))
	b.WriteString("\n\n")

	byline := v.item.Author
	if v.item.Date != "" {
		byline += " · " + v.item.Date
	}
	b.WriteString(MetaItem.Render(byline))
	b.WriteString("\n\n")

	if att := renderAttachment(v.item, width); att != "" {
		b.WriteString(att)
		b.WriteString("\n\n")
	}

	b.WriteString(md.render(v.item.Content, width-2))
	b.WriteString("\n")

	if len(v.related) > 0 {
		b.WriteString("\n")
		b.WriteString(Heading.Render("Related Content"))
		b.WriteString("\n")
		for i, r := range v.related {
			line := fmt.Sprintf("%s %s %s", StatusBarKey.Render(fmt.Sprint(i+1)), TypeBadge(r.Type), truncateRunes(r.Title, width-16))
			b.WriteString(" " + line + "\n")
		}
	}

	return b.String()
}

// renderSummary shows a spinner while loading, then the summary or, when the
// assistant returned nothing, the excerpt.
func renderSummary(v detailView, width int) string {
	var body string
	switch {
	case v.summaryLoading:
		body = v.spinner + " Generating summary..."
	case v.summary != "":
		body = v.summary
	default:
		body = v.item.Excerpt
	}
	inner := width - 4
	return SummaryBox.Render(SummaryTitle.Render("AI SUMMARY") + "\n" + wordwrap.String(body, inner))
}

// renderAttachment renders the type-specific block. Articles have none.
func renderAttachment(item catalog.Item, width int) string {
	inner := width - 4
	switch att := item.Attachment().(type) {
	case catalog.VideoPlayer:
		if att.URL == "" {
			return ""
		}
		return AttachmentBox.Render("▶ Video\n" + wordwrap.String(att.URL, inner))
	case catalog.ImageFrame:
		return AttachmentBox.Render("▣ Image\n" + wordwrap.String(att.URL, inner))
	case catalog.DocumentPreview:
		if att.URL == "" {
			return AttachmentBox.Render("▤ Document Preview\n" +
				MetaItem.Render("Document preview not available for this item."))
		}
		return AttachmentBox.Render("▤ Document Preview\n" + wordwrap.String(att.URL, inner))
	default:
		return ""
	}
}

// renderNotFound is the terminal state for an unknown detail route.
func renderNotFound(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		ErrorStyle.Render("404"),
		"Tutorial not found",
		"",
		MetaItem.Render("Press Esc to return home"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func detailHints(chatOpen bool) []string {
	if chatOpen {
		return []string{
			StatusBarKey.Render("Enter") + StatusBarText.Render(":send"),
			StatusBarKey.Render("Esc") + StatusBarText.Render(":close chat"),
		}
	}
	return []string{
		hint(keys.Up),
		hint(keys.Back),
		hint(keys.Ask),
		hint(keys.Related),
		hint(keys.Quit),
	}
}
