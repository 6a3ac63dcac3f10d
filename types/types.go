// Package types defines the shared data structures for the Komorebi engine.
// This package contains only type definitions: no logic, no methods.
package types

// Vitals holds the player's core numeric stats.
type Vitals struct {
	Level int `json:"level"`
	Exp   int `json:"exp"`
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Favor int `json:"favor"`
}

// Param groups the per-run progress values carried by every save.
type Param struct {
	Day    int    `json:"day"`
	Player Vitals `json:"player"`
}

// OwnedItem is a single inventory entry.
type OwnedItem struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// SceneData tracks where the player is and where they have been.
type SceneData struct {
	Current string   `json:"current"`
	Visited []string `json:"visited,omitempty"`
}

// StatusData is the player's current condition and mood.
type StatusData struct {
	Condition string `json:"condition"`
	Mood      int    `json:"mood"`
}

// Settings holds the player-adjustable options stored alongside the saves.
type Settings struct {
	BGMVolume int  `json:"bgm_volume"`
	SEVolume  int  `json:"se_volume"`
	TextSpeed int  `json:"text_speed"`
	Autosave  bool `json:"autosave"`
}

// SlotSummary is the menu-facing digest of one save slot.
type SlotSummary struct {
	Slot    int    `json:"slot"`
	SavedAt int64  `json:"saved_at"` // unix seconds, UTC; zero means empty
	SceneID string `json:"scene_id"`
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title      string
	Author     string
	Version    string
	StartScene string
	OpeningDay int
}

// ItemDef is the base definition of a collectible item.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	MaxStack    int // 0 means unlimited
	Price       int
}

// SceneDef is the base definition of a visitable scene.
type SceneDef struct {
	ID          string
	Name        string
	Description string
}

// EventDef is the base definition of a witnessable story event.
type EventDef struct {
	ID     string
	Name   string
	Scene  string // scene the event belongs to; optional
	Repeat bool
}

// ConditionDef is the base definition of a player condition.
type ConditionDef struct {
	ID       string
	Name     string
	MoodBias int
}
