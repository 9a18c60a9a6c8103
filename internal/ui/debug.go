package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/tutoriais/internal/activity"
)

// debugPanelChrome is the number of lines DebugPanel's border and padding
// consume. Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders assistant stats and recent activity. Returns "" if
// ring is nil.
func debugOverlay(ring *activity.Ring, now time.Time, width, height int) string {
	if ring == nil {
		return ""
	}

	counts := ring.Counts()
	recent := ring.Last(20)

	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Assistant"))
	lines = append(lines, fmt.Sprintf("  Summaries:  %d started, %d complete, %d empty, %d stale",
		counts[activity.KindSummaryStart], counts[activity.KindSummaryComplete],
		counts[activity.KindSummaryEmpty], counts[activity.KindSummaryStale]))
	lines = append(lines, fmt.Sprintf("  Questions:  %d asked, %d answered, %d stale",
		counts[activity.KindAskStart], counts[activity.KindAskComplete], counts[activity.KindAskStale]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, DebugHeaderStyle.Render("Recent Activity"))
	for _, e := range recent {
		line := fmt.Sprintf("  %6s  %-18s", formatAge(now.Sub(e.Time)), string(e.Kind))
		if e.ItemID != "" {
			line += "  item:" + e.ItemID
		}
		if e.Activation != 0 {
			line += fmt.Sprintf("  act:%d", e.Activation)
		}
		if e.SessionID != "" {
			sid := e.SessionID
			if len(sid) > 8 {
				sid = sid[:8]
			}
			line += "  chat:" + sid
		}
		if e.Msg != "" {
			line += "  " + truncateRunes(e.Msg, 30)
		}
		lines = append(lines, line)
	}

	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 86
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration compactly. Negative durations clamp to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

// debugStatusBar renders the status bar while the overlay is open.
func debugStatusBar(width int) string {
	return StatusBar.Width(width).Render("  [DEBUG]  " + hint(keys.Debug))
}
