package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// displayName derives a readable name from an ID when the catalog
// carries none. "river_bank" -> "River Bank".
func displayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// sceneName resolves a scene ID to its catalog name, falling back to a
// derived one.
func (m Model) sceneName(id string) string {
	if def, ok := m.game.Catalog.Scene(id); ok && def.Name != "" {
		return def.Name
	}
	return displayName(id)
}

// renderStatusBar produces a full-width inverted status line showing
// day, scene, condition, and mood, with a marker for unsaved changes.
func (m Model) renderStatusBar() string {
	g := m.game

	left := fmt.Sprintf(" Day %d | %s", g.Day(), m.sceneName(g.Scenes.Current()))
	if id := g.Status.Condition(); id != "" {
		name := id
		if def, ok := g.Catalog.Condition(id); ok && def.Name != "" {
			name = def.Name
		}
		left += " | " + name
	}

	right := fmt.Sprintf("mood %d ", g.Status.Mood())
	if g.Dirty() {
		right = "* " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
