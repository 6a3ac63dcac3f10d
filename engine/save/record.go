package save

import "komorebi/types"

// Fresh-run defaults.
const (
	defaultDay   = 1
	defaultLevel = 1
	defaultHP    = 20
	defaultMood  = 500
)

// GameData is the payload of one slot or checkpoint file: everything
// needed to resume a run.
type GameData struct {
	Param  types.Param       `json:"param"`
	Items  []types.OwnedItem `json:"items"`
	Events []string          `json:"events"`
	Scene  types.SceneData   `json:"scene"`
	Status types.StatusData  `json:"status"`
}

// NewGameData returns a record holding fresh-run defaults.
func NewGameData() *GameData {
	return &GameData{
		Param: types.Param{
			Day: defaultDay,
			Player: types.Vitals{
				Level: defaultLevel,
				HP:    defaultHP,
				MaxHP: defaultHP,
			},
		},
		Items:  []types.OwnedItem{},
		Events: []string{},
		Scene:  types.SceneData{Visited: []string{}},
		Status: types.StatusData{Mood: defaultMood},
	}
}

// NormalizeVitals clamps a vitals block into its legal ranges: level to at
// least 1, exp to at least 0, max HP to at least 1, and HP into
// [0, max HP]. Max HP is clamped before HP so HP is bounded by the
// corrected ceiling, never the raw one. Applying the function twice gives
// the same result as applying it once.
func NormalizeVitals(v types.Vitals) types.Vitals {
	if v.Level < 1 {
		v.Level = 1
	}
	if v.Exp < 0 {
		v.Exp = 0
	}
	if v.MaxHP < 1 {
		v.MaxHP = 1
	}
	if v.HP < 0 {
		v.HP = 0
	}
	if v.HP > v.MaxHP {
		v.HP = v.MaxHP
	}
	return v
}

// normalize restores the record invariants: day never negative, vitals
// clamped, collection fields never nil.
func (d *GameData) normalize() {
	if d.Param.Day < 0 {
		d.Param.Day = 0
	}
	d.Param.Player = NormalizeVitals(d.Param.Player)
	if d.Items == nil {
		d.Items = []types.OwnedItem{}
	}
	if d.Events == nil {
		d.Events = []string{}
	}
	if d.Scene.Visited == nil {
		d.Scene.Visited = []string{}
	}
}

// MarshalPayload normalizes the record in place and encodes it as payload
// bytes. A nil record encodes as the empty object.
func (d *GameData) MarshalPayload() ([]byte, error) {
	if d == nil {
		return encodePayload(nil)
	}
	d.normalize()
	return encodePayload(d)
}

// decodeGameDataV1 parses version-1 payload bytes. Decoding starts from a
// default record and normalizes afterward, so missing or malformed blocks
// degrade to playable defaults instead of zero values. A future format
// version gets its own decode function; this one stays fixed.
func decodeGameDataV1(data []byte) (*GameData, error) {
	d := NewGameData()
	if err := decodePayload(data, d); err != nil {
		return nil, err
	}
	d.normalize()
	return d, nil
}

// Capture copies live gameplay values into the record and normalizes, so
// the record never holds out-of-range values longer than one call.
func (d *GameData) Capture(day int, v types.Vitals) {
	d.Param.Day = day
	d.Param.Player = v
	d.normalize()
}

// Restore normalizes the record and hands the live gameplay values back.
func (d *GameData) Restore() (day int, v types.Vitals) {
	d.normalize()
	return d.Param.Day, d.Param.Player
}
