package state

import (
	"sort"

	"komorebi/catalog"
	"komorebi/types"
)

// Scenes tracks where the player currently is and every scene they have
// entered at least once.
type Scenes struct {
	cat      *catalog.Catalog
	current  string
	visited  map[string]bool
	dirty    bool
	OnChange func()
}

// NewScenes creates a scene tracker with no current scene, validated
// against cat. A nil catalog disables validation.
func NewScenes(cat *catalog.Catalog) *Scenes {
	return &Scenes{cat: cat, visited: map[string]bool{}}
}

func (m *Scenes) known(id string) bool {
	return m.cat == nil || m.cat.HasScene(id)
}

func (m *Scenes) touch() {
	m.dirty = true
	if m.OnChange != nil {
		m.OnChange()
	}
}

// Load resets the tracker from a transfer shape. An empty or unknown
// current scene is skipped, leaving no current scene; visited entries
// skip empty and unknown IDs and collapse duplicates. The dirty flag is
// cleared.
func (m *Scenes) Load(d types.SceneData) {
	m.current = ""
	if d.Current != "" && m.known(d.Current) {
		m.current = d.Current
	}
	m.visited = make(map[string]bool, len(d.Visited))
	for _, id := range d.Visited {
		if id == "" || !m.known(id) {
			continue
		}
		m.visited[id] = true
	}
	if m.current != "" {
		m.visited[m.current] = true
	}
	m.dirty = false
}

// Snapshot writes the tracker as a transfer shape with the visited list
// sorted. The dirty flag is left as is.
func (m *Scenes) Snapshot() types.SceneData {
	visited := make([]string, 0, len(m.visited))
	for id := range m.visited {
		visited = append(visited, id)
	}
	sort.Strings(visited)
	return types.SceneData{Current: m.current, Visited: visited}
}

// TrySetCurrent moves the player to a scene and marks it visited. It
// reports false for an unknown ID and mutates nothing in that case.
func (m *Scenes) TrySetCurrent(id string) bool {
	if id == "" || !m.known(id) {
		return false
	}
	if m.current == id && m.visited[id] {
		return true
	}
	m.current = id
	m.visited[id] = true
	m.touch()
	return true
}

// Current returns the current scene ID, or an empty string before the
// first scene is entered.
func (m *Scenes) Current() string {
	return m.current
}

// Visited reports whether the player has ever entered the scene.
func (m *Scenes) Visited(id string) bool {
	return m.visited[id]
}

// VisitedCount returns how many distinct scenes have been entered.
func (m *Scenes) VisitedCount() int {
	return len(m.visited)
}

// Dirty reports whether the tracker changed since the last MarkSaved or
// Load.
func (m *Scenes) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag.
func (m *Scenes) MarkSaved() {
	m.dirty = false
}
