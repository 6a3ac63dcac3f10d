package state

import "komorebi/types"

// Settings bounds and defaults.
const (
	VolumeMin    = 0
	VolumeMax    = 100
	TextSpeedMin = 1
	TextSpeedMax = 5
)

// Settings tracks the player-adjustable options. There is no catalog to
// validate against; every field simply clamps into its bounds.
type Settings struct {
	values   types.Settings
	dirty    bool
	OnChange func()
}

// NewSettings creates a tracker holding the default options.
func NewSettings() *Settings {
	return &Settings{
		values: types.Settings{
			BGMVolume: 80,
			SEVolume:  80,
			TextSpeed: 3,
			Autosave:  true,
		},
	}
}

func (m *Settings) touch() {
	m.dirty = true
	if m.OnChange != nil {
		m.OnChange()
	}
}

// Load resets the tracker from a transfer shape, clamping every numeric
// field. The dirty flag is cleared.
func (m *Settings) Load(s types.Settings) {
	s.BGMVolume = clamp(s.BGMVolume, VolumeMin, VolumeMax)
	s.SEVolume = clamp(s.SEVolume, VolumeMin, VolumeMax)
	s.TextSpeed = clamp(s.TextSpeed, TextSpeedMin, TextSpeedMax)
	m.values = s
	m.dirty = false
}

// Snapshot writes the current options as a transfer shape. The dirty
// flag is left as is.
func (m *Settings) Snapshot() types.Settings {
	return m.values
}

// SetBGMVolume sets the music volume, clamped into [0, 100].
func (m *Settings) SetBGMVolume(v int) {
	v = clamp(v, VolumeMin, VolumeMax)
	if v == m.values.BGMVolume {
		return
	}
	m.values.BGMVolume = v
	m.touch()
}

// SetSEVolume sets the effects volume, clamped into [0, 100].
func (m *Settings) SetSEVolume(v int) {
	v = clamp(v, VolumeMin, VolumeMax)
	if v == m.values.SEVolume {
		return
	}
	m.values.SEVolume = v
	m.touch()
}

// SetTextSpeed sets the text speed, clamped into [1, 5].
func (m *Settings) SetTextSpeed(v int) {
	v = clamp(v, TextSpeedMin, TextSpeedMax)
	if v == m.values.TextSpeed {
		return
	}
	m.values.TextSpeed = v
	m.touch()
}

// SetAutosave turns the day-end checkpoint on or off.
func (m *Settings) SetAutosave(on bool) {
	if on == m.values.Autosave {
		return
	}
	m.values.Autosave = on
	m.touch()
}

// BGMVolume returns the music volume.
func (m *Settings) BGMVolume() int {
	return m.values.BGMVolume
}

// SEVolume returns the effects volume.
func (m *Settings) SEVolume() int {
	return m.values.SEVolume
}

// TextSpeed returns the text speed.
func (m *Settings) TextSpeed() int {
	return m.values.TextSpeed
}

// Autosave reports whether the day-end checkpoint is on.
func (m *Settings) Autosave() bool {
	return m.values.Autosave
}

// Dirty reports whether the options changed since the last MarkSaved or
// Load.
func (m *Settings) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag.
func (m *Settings) MarkSaved() {
	m.dirty = false
}
