package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... } takes the table directly. A second Game
	// block overwrites the first; validation warns about it.
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		coll.gameBlocks++
		return 0
	}))

	// The rest are curried: Item("id") returns a function that takes the
	// definition table, so content files read as Item "id" { ... }.
	L.SetGlobal("Item", defConstructor(L, &coll.items))
	L.SetGlobal("Scene", defConstructor(L, &coll.scenes))
	L.SetGlobal("Event", defConstructor(L, &coll.events))
	L.SetGlobal("Condition", defConstructor(L, &coll.conditions))
}

// defConstructor builds a curried constructor that checks the ID string,
// then collects the definition table under that ID.
func defConstructor(L *lua.LState, dst *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*dst = append(*dst, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	})
}
