package loader

import (
	"strings"
	"testing"
)

func TestLoad_MinimalGame(t *testing.T) {
	cat, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	game := cat.Game()
	if game.Title != "Minimal Day" {
		t.Errorf("Title = %q, want %q", game.Title, "Minimal Day")
	}
	if game.StartScene != "home" {
		t.Errorf("StartScene = %q, want %q", game.StartScene, "home")
	}
	if game.OpeningDay != 1 {
		t.Errorf("OpeningDay = %d, want 1 (default)", game.OpeningDay)
	}
	if !cat.HasScene("home") {
		t.Error("scene 'home' not found")
	}
}

func TestLoad_FullGame(t *testing.T) {
	cat, err := Load("testdata/full")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Game metadata.
	game := cat.Game()
	if game.Title != "Full Test Town" {
		t.Errorf("Title = %q", game.Title)
	}
	if game.Author != "Tester" {
		t.Errorf("Author = %q", game.Author)
	}
	if game.StartScene != "home" {
		t.Errorf("StartScene = %q", game.StartScene)
	}
	if game.OpeningDay != 3 {
		t.Errorf("OpeningDay = %d, want 3", game.OpeningDay)
	}

	// Scenes.
	if len(cat.Scenes()) != 3 {
		t.Errorf("expected 3 scenes, got %d", len(cat.Scenes()))
	}
	river, ok := cat.Scene("river")
	if !ok {
		t.Fatal("scene 'river' not found")
	}
	if river.Name != "Riverbank" {
		t.Errorf("river name = %q, want Riverbank", river.Name)
	}

	// Items.
	potion, ok := cat.Item("potion")
	if !ok {
		t.Fatal("item 'potion' not found")
	}
	if potion.Name != "Herb Potion" {
		t.Errorf("potion name = %q", potion.Name)
	}
	if potion.MaxStack != 9 {
		t.Errorf("potion MaxStack = %d, want 9", potion.MaxStack)
	}
	if potion.Price != 120 {
		t.Errorf("potion Price = %d, want 120", potion.Price)
	}
	coin, ok := cat.Item("coin")
	if !ok {
		t.Fatal("item 'coin' not found")
	}
	if coin.MaxStack != 0 {
		t.Errorf("coin MaxStack = %d, want 0 (unlimited)", coin.MaxStack)
	}

	// Events.
	intro, ok := cat.Event("ev_intro")
	if !ok {
		t.Fatal("event 'ev_intro' not found")
	}
	if intro.Scene != "home" {
		t.Errorf("ev_intro scene = %q, want home", intro.Scene)
	}
	if intro.Repeat {
		t.Error("ev_intro should not repeat by default")
	}
	festival, ok := cat.Event("ev_festival")
	if !ok {
		t.Fatal("event 'ev_festival' not found")
	}
	if !festival.Repeat {
		t.Error("ev_festival should be repeatable")
	}

	// Conditions.
	tired, ok := cat.Condition("tired")
	if !ok {
		t.Fatal("condition 'tired' not found")
	}
	if tired.MoodBias != -50 {
		t.Errorf("tired MoodBias = %d, want -50", tired.MoodBias)
	}
	fine, ok := cat.Condition("fine")
	if !ok {
		t.Fatal("condition 'fine' not found")
	}
	if fine.MoodBias != 0 {
		t.Errorf("fine MoodBias = %d, want 0", fine.MoodBias)
	}
}

func TestLoad_NoGameDef_Fails(t *testing.T) {
	_, err := Load("testdata/no_game")
	if err == nil {
		t.Fatal("expected error for missing Game{} definition")
	}
	if !strings.Contains(err.Error(), "no Game{} definition") {
		t.Errorf("error = %q, expected 'no Game{} definition'", err.Error())
	}
}

func TestLoad_BadLuaSyntax_Fails(t *testing.T) {
	_, err := Load("testdata/bad_lua")
	if err == nil {
		t.Fatal("expected error for bad Lua syntax")
	}
}

func TestLoad_MissingStartScene_Fails(t *testing.T) {
	_, err := Load("testdata/missing_start")
	if err == nil {
		t.Fatal("expected error for undefined start scene")
	}
	if !strings.Contains(err.Error(), "start scene") {
		t.Errorf("error = %q, expected 'start scene'", err.Error())
	}
}

func TestLoad_MissingDir_Fails(t *testing.T) {
	_, err := Load("testdata/does_not_exist")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoad_EmptyDir_Fails(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory without .lua files")
	}
	if !strings.Contains(err.Error(), "no .lua files") {
		t.Errorf("error = %q, expected 'no .lua files'", err.Error())
	}
}

func TestLoad_DanglingEventScene_WarnsOnly(t *testing.T) {
	// An event pointing at an undefined scene is playable, so it must
	// load with a warning rather than fail.
	cat, err := Load("testdata/dangling_event")
	if err != nil {
		t.Fatalf("dangling event scene should be warning only, got error: %v", err)
	}
	if !cat.HasEvent("ev_ghost") {
		t.Error("event 'ev_ghost' should still be loaded")
	}
}

func TestLoad_DuplicateItemID_LastWins(t *testing.T) {
	cat, err := Load("testdata/duplicates")
	if err != nil {
		t.Fatalf("duplicate IDs should be warning only, got error: %v", err)
	}

	potion, ok := cat.Item("potion")
	if !ok {
		t.Fatal("item 'potion' not found")
	}
	if potion.Name != "Second Potion" {
		t.Errorf("potion name = %q, want the later definition", potion.Name)
	}
	if potion.MaxStack != 5 {
		t.Errorf("potion MaxStack = %d, want 5", potion.MaxStack)
	}
	if len(cat.Items()) != 1 {
		t.Errorf("expected 1 indexed item, got %d", len(cat.Items()))
	}
}

func TestLoad_SandboxEnforced(t *testing.T) {
	// os library should not be available.
	L, _ := newTestVM()
	defer L.Close()

	err := L.DoString(`os.execute("echo pwned")`)
	if err == nil {
		t.Fatal("expected sandbox to block os.execute")
	}
}

func TestLoad_FileOrdering(t *testing.T) {
	files := sortedLuaFiles([]string{"scenes.lua", "game.lua", "items.lua", "events.lua"})
	if files[0] != "game.lua" {
		t.Errorf("first file = %q, want game.lua", files[0])
	}
	// Rest should be alphabetical.
	if files[1] != "events.lua" {
		t.Errorf("second file = %q, want events.lua", files[1])
	}
	if files[2] != "items.lua" {
		t.Errorf("third file = %q, want items.lua", files[2])
	}
}
