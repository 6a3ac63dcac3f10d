package save

import "komorebi/types"

// SlotCount is the number of player-facing save slots.
const SlotCount = 3

// Default player settings.
const (
	defaultVolume    = 80
	defaultTextSpeed = 3
)

// SystemData is the payload of the system index file: the unsaved-
// checkpoint flag, the player settings, and one summary per save slot.
type SystemData struct {
	Unsaved  bool                `json:"unsaved"`
	Settings types.Settings      `json:"settings"`
	Slots    []types.SlotSummary `json:"slots"`
}

// NewSystemData returns the record created on first run: no checkpoint,
// default settings, every slot empty.
func NewSystemData() *SystemData {
	d := &SystemData{
		Settings: types.Settings{
			BGMVolume: defaultVolume,
			SEVolume:  defaultVolume,
			TextSpeed: defaultTextSpeed,
			Autosave:  true,
		},
	}
	d.normalize()
	return d
}

// normalize restores the record invariants: settings clamped into range
// and exactly SlotCount summaries, numbered by position.
func (d *SystemData) normalize() {
	d.Settings = normalizeSettings(d.Settings)
	if len(d.Slots) > SlotCount {
		d.Slots = d.Slots[:SlotCount]
	}
	for len(d.Slots) < SlotCount {
		d.Slots = append(d.Slots, types.SlotSummary{})
	}
	for i := range d.Slots {
		d.Slots[i].Slot = i + 1
	}
}

func normalizeSettings(s types.Settings) types.Settings {
	s.BGMVolume = clamp(s.BGMVolume, 0, 100)
	s.SEVolume = clamp(s.SEVolume, 0, 100)
	s.TextSpeed = clamp(s.TextSpeed, 1, 5)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slot returns the summary for slot n (1-based).
func (d *SystemData) Slot(n int) (types.SlotSummary, bool) {
	if n < 1 || n > len(d.Slots) {
		return types.SlotSummary{}, false
	}
	return d.Slots[n-1], true
}

// SetSlot records a save made at the given time and scene for slot n.
func (d *SystemData) SetSlot(n int, savedAt int64, sceneID string) bool {
	if n < 1 || n > len(d.Slots) {
		return false
	}
	d.Slots[n-1] = types.SlotSummary{Slot: n, SavedAt: savedAt, SceneID: sceneID}
	return true
}

// ClearSlot resets slot n's summary to empty.
func (d *SystemData) ClearSlot(n int) bool {
	if n < 1 || n > len(d.Slots) {
		return false
	}
	d.Slots[n-1] = types.SlotSummary{Slot: n}
	return true
}

// MarshalPayload normalizes the record in place and encodes it as payload
// bytes. A nil record encodes as the empty object.
func (d *SystemData) MarshalPayload() ([]byte, error) {
	if d == nil {
		return encodePayload(nil)
	}
	d.normalize()
	return encodePayload(d)
}

// decodeSystemDataV1 parses version-1 payload bytes, starting from the
// first-run record and normalizing afterward.
func decodeSystemDataV1(data []byte) (*SystemData, error) {
	d := NewSystemData()
	if err := decodePayload(data, d); err != nil {
		return nil, err
	}
	d.normalize()
	return d, nil
}
