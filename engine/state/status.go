package state

import (
	"komorebi/catalog"
	"komorebi/types"
)

// Mood is bounded; new runs start from the midpoint.
const (
	MoodMin     = 0
	MoodMax     = 999
	defaultMood = 500
)

// Status tracks the player's current condition and bounded mood.
type Status struct {
	cat       *catalog.Catalog
	condition string
	mood      int
	dirty     bool
	OnChange  func()
}

// NewStatus creates a status tracker with no condition and a neutral
// mood, validated against cat. A nil catalog disables validation.
func NewStatus(cat *catalog.Catalog) *Status {
	return &Status{cat: cat, mood: defaultMood}
}

func (m *Status) known(id string) bool {
	return m.cat == nil || m.cat.HasCondition(id)
}

func (m *Status) touch() {
	m.dirty = true
	if m.OnChange != nil {
		m.OnChange()
	}
}

// Load resets the tracker from a transfer shape. An empty or unknown
// condition is skipped, leaving no condition; the mood is clamped into
// its bounds. The dirty flag is cleared.
func (m *Status) Load(d types.StatusData) {
	m.condition = ""
	if d.Condition != "" && m.known(d.Condition) {
		m.condition = d.Condition
	}
	m.mood = clamp(d.Mood, MoodMin, MoodMax)
	m.dirty = false
}

// Snapshot writes the tracker as a transfer shape. The dirty flag is left
// as is.
func (m *Status) Snapshot() types.StatusData {
	return types.StatusData{Condition: m.condition, Mood: m.mood}
}

// TrySetCondition changes the player's condition. It reports false for an
// unknown ID; setting the current condition again is a valid no-op.
func (m *Status) TrySetCondition(id string) bool {
	if id == "" || !m.known(id) {
		return false
	}
	if m.condition == id {
		return true
	}
	m.condition = id
	m.touch()
	return true
}

// SetMood sets the mood outright, clamped into its bounds.
func (m *Status) SetMood(v int) {
	v = clamp(v, MoodMin, MoodMax)
	if v == m.mood {
		return
	}
	m.mood = v
	m.touch()
}

// AddMood shifts the mood by delta, clamped into its bounds.
func (m *Status) AddMood(delta int) {
	m.SetMood(m.mood + delta)
}

// Condition returns the current condition ID, or an empty string when
// none is set.
func (m *Status) Condition() string {
	return m.condition
}

// Mood returns the current mood value.
func (m *Status) Mood() int {
	return m.mood
}

// Dirty reports whether the tracker changed since the last MarkSaved or
// Load.
func (m *Status) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag.
func (m *Status) MarkSaved() {
	m.dirty = false
}
