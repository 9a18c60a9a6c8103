package ui

import (
	"strings"

	"github.com/abelbrown/tutoriais/internal/chat"
	"github.com/muesli/reflow/wordwrap"
)

// chatPanelWidth is the width of the chat column including its border.
const chatPanelWidth = 40

// renderChat renders the transcript bottom-aligned into height lines, then
// the input line. Older messages scroll off the top.
func renderChat(messages []chat.Message, pending bool, spinner, input string, width, height int) string {
	inner := width - 3
	if inner < 10 {
		inner = 10
	}

	var lines []string
	for _, m := range messages {
		var who, text string
		switch m.Role {
		case chat.RoleUser:
			who = ChatUser.Render("You")
			text = wordwrap.String(m.Text, inner)
		default:
			who = ChatTitle.Render("AI")
			text = ChatAssistant.Render(wordwrap.String(m.Text, inner))
		}
		lines = append(lines, who)
		lines = append(lines, strings.Split(text, "\n")...)
		lines = append(lines, "")
	}
	if pending {
		lines = append(lines, spinner+" Thinking...")
	}

	// title + separator + input line
	body := height - 3
	if body < 1 {
		body = 1
	}
	if len(lines) > body {
		lines = lines[len(lines)-body:]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}

	out := ChatTitle.Render("AI Assistant") + "\n" +
		strings.Join(lines, "\n") + "\n" +
		strings.Repeat("─", inner) + "\n" +
		input
	return ChatPanel.Width(width).Render(out)
}
