package state

import (
	"sort"

	"komorebi/catalog"
)

// Events records which story events the player has witnessed.
type Events struct {
	cat      *catalog.Catalog
	seen     map[string]bool
	dirty    bool
	OnChange func()
}

// NewEvents creates an empty seen-set validated against cat. A nil
// catalog disables validation.
func NewEvents(cat *catalog.Catalog) *Events {
	return &Events{cat: cat, seen: map[string]bool{}}
}

func (m *Events) known(id string) bool {
	return m.cat == nil || m.cat.HasEvent(id)
}

func (m *Events) touch() {
	m.dirty = true
	if m.OnChange != nil {
		m.OnChange()
	}
}

// Load resets the seen-set from a transfer slice, skipping empty and
// unknown IDs; duplicates collapse. The dirty flag is cleared.
func (m *Events) Load(ids []string) {
	m.seen = make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || !m.known(id) {
			continue
		}
		m.seen[id] = true
	}
	m.dirty = false
}

// Snapshot writes the seen-set as a sorted transfer slice. The dirty flag
// is left as is.
func (m *Events) Snapshot() []string {
	out := make([]string, 0, len(m.seen))
	for id := range m.seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MarkSeen records that the player witnessed an event. It reports false
// for an unknown ID; marking an already-seen event is a valid no-op.
func (m *Events) MarkSeen(id string) bool {
	if id == "" || !m.known(id) {
		return false
	}
	if m.seen[id] {
		return true
	}
	m.seen[id] = true
	m.touch()
	return true
}

// Seen reports whether the player has witnessed the event.
func (m *Events) Seen(id string) bool {
	return m.seen[id]
}

// SeenCount returns how many distinct events have been witnessed.
func (m *Events) SeenCount() int {
	return len(m.seen)
}

// Dirty reports whether the seen-set changed since the last MarkSaved or
// Load.
func (m *Events) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag.
func (m *Events) MarkSaved() {
	m.dirty = false
}
