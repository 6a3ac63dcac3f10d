package state

import "testing"

func TestEventsMarkSeen_UnknownID(t *testing.T) {
	m := NewEvents(testCatalog())

	if m.MarkSeen("ev_nope") {
		t.Error("expected unknown event to be rejected")
	}
	if m.Dirty() {
		t.Error("expected rejected mutation to leave state clean")
	}
}

func TestEventsMarkSeen_RecordsEvent(t *testing.T) {
	m := NewEvents(testCatalog())

	if !m.MarkSeen("ev_intro") {
		t.Fatal("expected known event to be accepted")
	}
	if !m.Seen("ev_intro") {
		t.Error("expected event to be seen")
	}
	if !m.Dirty() {
		t.Error("expected dirty flag after a real change")
	}
}

func TestEventsMarkSeen_RepeatIsNotDirty(t *testing.T) {
	m := NewEvents(testCatalog())
	m.MarkSeen("ev_intro")
	m.MarkSaved()

	if !m.MarkSeen("ev_intro") {
		t.Fatal("expected repeated mark to be valid")
	}
	if m.Dirty() {
		t.Error("expected no dirty flag for an already-seen event")
	}
}

func TestEventsLoad_SkipsUnknownAndCollapsesDuplicates(t *testing.T) {
	m := NewEvents(testCatalog())

	m.Load([]string{"ev_intro", "ev_intro", "", "ev_nope", "ev_festival"})

	if m.SeenCount() != 2 {
		t.Errorf("expected 2 seen events, got %d", m.SeenCount())
	}
	if !m.Seen("ev_intro") || !m.Seen("ev_festival") {
		t.Error("expected both valid events to be seen")
	}
	if m.Dirty() {
		t.Error("expected load to clear the dirty flag")
	}
}

func TestEventsSnapshot_Sorted(t *testing.T) {
	m := NewEvents(testCatalog())
	m.MarkSeen("ev_festival")
	m.MarkSeen("ev_intro")

	snap := m.Snapshot()

	if len(snap) != 2 || snap[0] != "ev_festival" || snap[1] != "ev_intro" {
		t.Errorf("expected sorted [ev_festival ev_intro], got %v", snap)
	}
}

func TestEventsPermissiveMode(t *testing.T) {
	m := NewEvents(nil)

	if !m.MarkSeen("whatever") {
		t.Error("expected permissive mode to accept any ID")
	}
}
