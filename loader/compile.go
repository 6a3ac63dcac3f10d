// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading; no Lua runs during play.
package loader

import (
	"fmt"
	"sort"

	"komorebi/types"

	lua "github.com/yuin/gopher-lua"
)

// rawDef holds a definition table before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// content holds compiled definitions before they are indexed into a catalog.
type content struct {
	game       types.GameDef
	gameBlocks int
	items      []types.ItemDef
	scenes     []types.SceneDef
	events     []types.EventDef
	conditions []types.ConditionDef
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// compile converts all collected Lua tables into typed definitions.
func compile(coll *collector) (*content, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	c := &content{
		game:       compileGame(coll.game),
		gameBlocks: coll.gameBlocks,
	}
	for _, raw := range coll.items {
		c.items = append(c.items, compileItem(raw))
	}
	for _, raw := range coll.scenes {
		c.scenes = append(c.scenes, compileScene(raw))
	}
	for _, raw := range coll.events {
		c.events = append(c.events, compileEvent(raw))
	}
	for _, raw := range coll.conditions {
		c.conditions = append(c.conditions, compileCondition(raw))
	}
	return c, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:      getString(tbl, "title"),
		Author:     getString(tbl, "author"),
		Version:    getString(tbl, "version"),
		StartScene: getString(tbl, "start_scene"),
		OpeningDay: getInt(tbl, "opening_day", 1),
	}
}

func compileItem(raw rawDef) types.ItemDef {
	tbl := raw.table
	return types.ItemDef{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		MaxStack:    getInt(tbl, "max_stack", 0),
		Price:       getInt(tbl, "price", 0),
	}
}

func compileScene(raw rawDef) types.SceneDef {
	tbl := raw.table
	return types.SceneDef{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
	}
}

// compileEvent reads the "repeatable" key for EventDef.Repeat because
// "repeat" is a reserved word in Lua.
func compileEvent(raw rawDef) types.EventDef {
	tbl := raw.table
	return types.EventDef{
		ID:     raw.id,
		Name:   getString(tbl, "name"),
		Scene:  getString(tbl, "scene"),
		Repeat: getBool(tbl, "repeatable", false),
	}
}

func compileCondition(raw rawDef) types.ConditionDef {
	tbl := raw.table
	return types.ConditionDef{
		ID:       raw.id,
		Name:     getString(tbl, "name"),
		MoodBias: getInt(tbl, "mood_bias", 0),
	}
}

// sortedLuaFiles returns .lua files in a directory, with game.lua first
// and the rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
