package state

import (
	"sort"

	"komorebi/catalog"
	"komorebi/types"
)

// Items tracks how many of each catalog item the player holds. A zero
// count is kept rather than removed: it means "known but not currently
// held", while a missing entry means the item was never seen at all.
type Items struct {
	cat      *catalog.Catalog
	counts   map[string]int
	dirty    bool
	OnChange func()
}

// NewItems creates an empty inventory validated against cat. A nil
// catalog disables validation.
func NewItems(cat *catalog.Catalog) *Items {
	return &Items{cat: cat, counts: map[string]int{}}
}

func (m *Items) known(id string) bool {
	return m.cat == nil || m.cat.HasItem(id)
}

// maxCount returns the largest count the item may reach, or -1 when the
// item has no stack limit.
func (m *Items) maxCount(id string) int {
	if m.cat == nil {
		return -1
	}
	def, ok := m.cat.Item(id)
	if !ok || def.MaxStack <= 0 {
		return -1
	}
	return def.MaxStack
}

func (m *Items) clampCount(id string, count int) int {
	if count < 0 {
		count = 0
	}
	if max := m.maxCount(id); max >= 0 && count > max {
		count = max
	}
	return count
}

func (m *Items) touch() {
	m.dirty = true
	if m.OnChange != nil {
		m.OnChange()
	}
}

// Load resets the inventory from a transfer slice. Entries with an empty
// or unknown ID are skipped; entries sharing an ID are summed, not
// overwritten. The dirty flag is cleared: freshly loaded state is by
// definition in sync with what was loaded.
func (m *Items) Load(items []types.OwnedItem) {
	m.counts = make(map[string]int, len(items))
	for _, e := range items {
		if e.ItemID == "" || !m.known(e.ItemID) {
			continue
		}
		m.counts[e.ItemID] += e.Count
	}
	for id, c := range m.counts {
		m.counts[id] = m.clampCount(id, c)
	}
	m.dirty = false
}

// Snapshot writes the inventory as a transfer slice sorted by item ID,
// zero counts included. The dirty flag is left as is.
func (m *Items) Snapshot() []types.OwnedItem {
	out := make([]types.OwnedItem, 0, len(m.counts))
	for id, c := range m.counts {
		out = append(out, types.OwnedItem{ItemID: id, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// TryAdd adjusts an item count by delta, clamping the result into the
// item's legal range. It reports false for an unknown ID and mutates
// nothing in that case.
func (m *Items) TryAdd(id string, delta int) bool {
	if id == "" || !m.known(id) {
		return false
	}
	before, existed := m.counts[id]
	after := m.clampCount(id, before+delta)
	if existed && after == before {
		return true
	}
	m.counts[id] = after
	m.touch()
	return true
}

// TrySet sets an item count outright, clamping it into the item's legal
// range. It reports false for an unknown ID.
func (m *Items) TrySet(id string, count int) bool {
	if id == "" || !m.known(id) {
		return false
	}
	before, existed := m.counts[id]
	after := m.clampCount(id, count)
	if existed && after == before {
		return true
	}
	m.counts[id] = after
	m.touch()
	return true
}

// Count returns how many of the item the player holds. Items never seen
// count as zero.
func (m *Items) Count(id string) int {
	return m.counts[id]
}

// Has reports whether the player currently holds at least one of the item.
func (m *Items) Has(id string) bool {
	return m.counts[id] > 0
}

// Known reports whether the item has an inventory entry, held or not.
func (m *Items) Known(id string) bool {
	_, ok := m.counts[id]
	return ok
}

// Dirty reports whether the inventory changed since the last MarkSaved or
// Load.
func (m *Items) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag. Call it only after the snapshot
// actually reached the disk.
func (m *Items) MarkSaved() {
	m.dirty = false
}
