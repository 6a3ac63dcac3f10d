// Package engine wires the content catalog, the runtime state managers,
// and the save store into one playable session.
package engine

import (
	"fmt"
	"time"

	"komorebi/catalog"
	"komorebi/engine/save"
	"komorebi/engine/state"
	"komorebi/types"
)

// Game is one play session: immutable content, the mutable state
// managers, live day and vitals, and the store that persists them.
type Game struct {
	Catalog *catalog.Catalog

	Items    *state.Items
	Events   *state.Events
	Scenes   *state.Scenes
	Status   *state.Status
	Settings *state.Settings

	Store  *save.Store
	System *save.SystemData

	day    int
	vitals types.Vitals
	dirty  bool

	// now is replaceable in tests.
	now func() time.Time
}

// New builds a session from loaded content and a save store. System data
// is read up front so slot summaries and settings are available before
// any slot is opened; on a first run the defaults are persisted right
// away. The runtime starts fresh at the content's opening day and start
// scene.
func New(cat *catalog.Catalog, store *save.Store) *Game {
	g := &Game{
		Catalog:  cat,
		Settings: state.NewSettings(),
		Store:    store,
		System:   store.LoadSystem(),
		now:      time.Now,
	}
	if g.System == nil {
		g.System = save.NewSystemData()
		// First run. The store logs a failed write; the session still runs.
		_ = g.Store.SaveSystem(g.System)
	}
	g.Settings.Load(g.System.Settings)
	g.Reset()
	return g
}

// Reset abandons the current runtime and starts fresh at the content's
// opening day and start scene. Settings are system data and survive.
func (g *Game) Reset() {
	g.Items = state.NewItems(g.Catalog)
	g.Events = state.NewEvents(g.Catalog)
	g.Scenes = state.NewScenes(g.Catalog)
	g.Status = state.NewStatus(g.Catalog)

	meta := g.Catalog.Game()
	g.day, g.vitals = save.NewGameData().Restore()
	if meta.OpeningDay > 0 {
		g.day = meta.OpeningDay
	}
	g.Scenes.Load(types.SceneData{Current: meta.StartScene})
	g.dirty = false
}

// Day returns the current in-game day.
func (g *Game) Day() int {
	return g.day
}

// Vitals returns the player's current vitals.
func (g *Game) Vitals() types.Vitals {
	return g.vitals
}

// SetVitals replaces the player's vitals, normalized the same way a save
// record normalizes them.
func (g *Game) SetVitals(v types.Vitals) {
	v = save.NormalizeVitals(v)
	if v == g.vitals {
		return
	}
	g.vitals = v
	g.dirty = true
}

// AdvanceDay ends the current day. When autosave is on, the new day is
// checkpointed immediately so an interrupted session can resume from it.
func (g *Game) AdvanceDay() int {
	g.day++
	g.dirty = true
	if g.Settings.Autosave() {
		// The store logs a failed write; the day advances either way.
		_ = g.SaveCheckpoint()
	}
	return g.day
}

// SetCondition switches the player's condition and applies the
// condition's mood bias. Re-setting the current condition is a no-op and
// does not apply the bias again.
func (g *Game) SetCondition(id string) bool {
	changed := id != g.Status.Condition()
	if !g.Status.TrySetCondition(id) {
		return false
	}
	if !changed {
		return true
	}
	if def, ok := g.Catalog.Condition(id); ok && def.MoodBias != 0 {
		g.Status.AddMood(def.MoodBias)
	}
	return true
}

// Dirty reports whether any live state differs from what was last saved
// or loaded.
func (g *Game) Dirty() bool {
	return g.dirty || g.Items.Dirty() || g.Events.Dirty() ||
		g.Scenes.Dirty() || g.Status.Dirty() || g.Settings.Dirty()
}

// capture rolls the live session into a save record.
func (g *Game) capture() *save.GameData {
	d := save.NewGameData()
	d.Capture(g.day, g.vitals)
	d.Items = g.Items.Snapshot()
	d.Events = g.Events.Snapshot()
	d.Scene = g.Scenes.Snapshot()
	d.Status = g.Status.Snapshot()
	return d
}

// restore replaces the live session with the contents of a save record.
func (g *Game) restore(d *save.GameData) {
	g.day, g.vitals = d.Restore()
	g.Items.Load(d.Items)
	g.Events.Load(d.Events)
	g.Scenes.Load(d.Scene)
	g.Status.Load(d.Status)
	g.dirty = false
}

// markGameSaved clears the dirty flags that the slot and checkpoint
// files cover. Settings are cleared separately once the system file is
// written.
func (g *Game) markGameSaved() {
	g.Items.MarkSaved()
	g.Events.MarkSaved()
	g.Scenes.MarkSaved()
	g.Status.MarkSaved()
	g.dirty = false
}

// SaveSlot writes the session to a numbered slot, then updates the slot
// summary and settings in the system file. The two writes are separate;
// a crash between them leaves a saved slot with a stale summary.
func (g *Game) SaveSlot(n int) error {
	if _, ok := g.System.Slot(n); !ok {
		return fmt.Errorf("save slot %d out of range", n)
	}
	if err := g.Store.SaveGame(g.capture(), save.SlotFile(n)); err != nil {
		return err
	}
	g.markGameSaved()
	g.System.SetSlot(n, g.now().UTC().Unix(), g.Scenes.Current())
	g.System.Settings = g.Settings.Snapshot()
	g.System.Unsaved = false
	if err := g.Store.SaveSystem(g.System); err != nil {
		return err
	}
	g.Settings.MarkSaved()
	return nil
}

// LoadSlot restores the session from a numbered slot. It reports false
// when the slot is out of range, empty, or unreadable; the session is
// left untouched in that case.
func (g *Game) LoadSlot(n int) bool {
	if _, ok := g.System.Slot(n); !ok {
		return false
	}
	d := g.Store.LoadGame(save.SlotFile(n))
	if d == nil {
		return false
	}
	g.restore(d)
	return true
}

// DeleteSlot removes a slot file and clears its summary in the system
// file. Deleting an already empty slot is a valid no-op.
func (g *Game) DeleteSlot(n int) error {
	if _, ok := g.System.Slot(n); !ok {
		return fmt.Errorf("save slot %d out of range", n)
	}
	if err := g.Store.Delete(save.SlotFile(n)); err != nil {
		return err
	}
	g.System.ClearSlot(n)
	return g.Store.SaveSystem(g.System)
}

// SaveCheckpoint writes the transient resume snapshot and raises the
// unsaved flag in the system file.
func (g *Game) SaveCheckpoint() error {
	if err := g.Store.SaveGame(g.capture(), save.UnsavedFile); err != nil {
		return err
	}
	g.markGameSaved()
	g.System.Settings = g.Settings.Snapshot()
	g.System.Unsaved = true
	if err := g.Store.SaveSystem(g.System); err != nil {
		return err
	}
	g.Settings.MarkSaved()
	return nil
}

// LoadCheckpoint resumes from the transient snapshot. It reports false
// when no checkpoint is flagged or the snapshot is unreadable.
func (g *Game) LoadCheckpoint() bool {
	if !g.System.Unsaved {
		return false
	}
	d := g.Store.LoadGame(save.UnsavedFile)
	if d == nil {
		return false
	}
	g.restore(d)
	return true
}

// DiscardCheckpoint deletes the transient snapshot and lowers the
// unsaved flag.
func (g *Game) DiscardCheckpoint() error {
	if err := g.Store.Delete(save.UnsavedFile); err != nil {
		return err
	}
	if !g.System.Unsaved {
		return nil
	}
	g.System.Unsaved = false
	return g.Store.SaveSystem(g.System)
}

// ApplySettings persists the current settings into the system file.
func (g *Game) ApplySettings() error {
	g.System.Settings = g.Settings.Snapshot()
	if err := g.Store.SaveSystem(g.System); err != nil {
		return err
	}
	g.Settings.MarkSaved()
	return nil
}
