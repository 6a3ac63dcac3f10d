// Package tui provides the Bubble Tea front-end: a save-slot menu with
// checkpoint handling and a status bar over the running session.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"komorebi/engine"
	"komorebi/engine/save"
)

// checkpointRow is the cursor index of the resume-checkpoint row, one
// past the save slots.
const checkpointRow = save.SlotCount

// Model is the Bubble Tea model for the slot menu.
type Model struct {
	game *engine.Game

	keys     keyMap
	log      *activityLog
	cursor   int
	width    int
	height   int
	ready    bool
	quitting bool
}

// keyMap holds the slot-menu key bindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Load       key.Binding
	Save       key.Binding
	Delete     key.Binding
	Checkpoint key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Load:       key.NewBinding(key.WithKeys("enter")),
		Save:       key.NewBinding(key.WithKeys("s")),
		Delete:     key.NewBinding(key.WithKeys("x")),
		Checkpoint: key.NewBinding(key.WithKeys("c")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// New creates a slot-menu model wired to the given game session.
func New(g *engine.Game) Model {
	return Model{
		game: g,
		keys: defaultKeyMap(),
		log:  newActivityLog(20),
	}
}

// Run starts the Bubble Tea program.
func Run(g *engine.Game) error {
	p := tea.NewProgram(New(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// rowCount returns the number of selectable rows: the save slots, plus
// the checkpoint row when one is waiting.
func (m Model) rowCount() int {
	if m.game.System.Unsaved {
		return save.SlotCount + 1
	}
	return save.SlotCount
}

// clampCursor keeps the cursor on an existing row after the checkpoint
// row appears or disappears.
func (m *Model) clampCursor() {
	if max := m.rowCount() - 1; m.cursor > max {
		m.cursor = max
	}
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Load):
			m.doLoad()

		case key.Matches(msg, m.keys.Save):
			m.doSave()

		case key.Matches(msg, m.keys.Delete):
			m.doDelete()

		case key.Matches(msg, m.keys.Checkpoint):
			m.doCheckpoint()
		}
	}

	return m, nil
}

// doSave writes the session into the slot under the cursor.
func (m *Model) doSave() {
	if m.cursor >= save.SlotCount {
		m.log.Push("Pick a slot to save into.")
		return
	}
	n := m.cursor + 1
	if err := m.game.SaveSlot(n); err != nil {
		m.log.Push(fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.log.Push(fmt.Sprintf("Saved to slot %d.", n))
	// Saving lowers the unsaved flag; the checkpoint row may vanish.
	m.clampCursor()
}

// doLoad loads the slot under the cursor, or resumes the checkpoint.
func (m *Model) doLoad() {
	if m.cursor == checkpointRow {
		if !m.game.LoadCheckpoint() {
			m.log.Push("Checkpoint could not be read.")
			return
		}
		m.log.Push("Checkpoint resumed.")
		return
	}
	n := m.cursor + 1
	if !m.game.LoadSlot(n) {
		m.log.Push(fmt.Sprintf("Slot %d is empty.", n))
		return
	}
	m.log.Push(fmt.Sprintf("Loaded slot %d.", n))
}

// doDelete clears the slot under the cursor, or discards the
// checkpoint.
func (m *Model) doDelete() {
	if m.cursor == checkpointRow {
		if err := m.game.DiscardCheckpoint(); err != nil {
			m.log.Push(fmt.Sprintf("Discard failed: %v", err))
			return
		}
		m.log.Push("Checkpoint discarded.")
		m.clampCursor()
		return
	}
	n := m.cursor + 1
	if err := m.game.DeleteSlot(n); err != nil {
		m.log.Push(fmt.Sprintf("Delete failed: %v", err))
		return
	}
	m.log.Push(fmt.Sprintf("Slot %d cleared.", n))
}

// doCheckpoint writes an autosave checkpoint from anywhere in the menu.
func (m *Model) doCheckpoint() {
	if err := m.game.SaveCheckpoint(); err != nil {
		m.log.Push(fmt.Sprintf("Checkpoint failed: %v", err))
		return
	}
	m.log.Push("Checkpoint written.")
}

// slotLine renders one slot summary: scene and timestamp, or empty.
func (m Model) slotLine(n int) string {
	sum, ok := m.game.System.Slot(n)
	if !ok || sum.SavedAt == 0 {
		return styleSlotEmpty.Render(fmt.Sprintf("slot %d: empty", n))
	}
	stamp := time.Unix(sum.SavedAt, 0).Local().Format("2006-01-02 15:04")
	return styleSlotFilled.Render(fmt.Sprintf("slot %d: %s (%s)", n, m.sceneName(sum.SceneID), stamp))
}

// renderRow draws one selectable row with the cursor marker.
func (m Model) renderRow(row int, text string) string {
	if row == m.cursor {
		return styleCursor.Render("> ") + text
	}
	return "  " + text
}

// View renders the slot list, recent feedback, the key bar, and the
// status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.game.Catalog.Game().Title))
	b.WriteString("\n\n")

	for n := 1; n <= save.SlotCount; n++ {
		b.WriteString(m.renderRow(n-1, m.slotLine(n)))
		b.WriteString("\n")
	}
	if m.game.System.Unsaved {
		b.WriteString(m.renderRow(checkpointRow, styleCheckpoint.Render("checkpoint: autosaved progress")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range m.log.Tail(3) {
		b.WriteString(styleFeedback.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(styleKeybar.Render("s save • enter load • x delete • c checkpoint • q quit"))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}
