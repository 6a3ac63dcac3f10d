package loader

import (
	"strings"
	"testing"

	"komorebi/types"
)

// validContent returns a minimal valid content set for testing.
func validContent() *content {
	return &content{
		game: types.GameDef{
			Title:      "Test",
			StartScene: "home",
			OpeningDay: 1,
		},
		gameBlocks: 1,
		scenes: []types.SceneDef{
			{ID: "home", Name: "Home", Description: "A home."},
		},
	}
}

func TestValidate_ValidContent(t *testing.T) {
	if err := validate(validContent()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	c := validContent()
	c.game.Title = ""

	err := validate(c)
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	assertContains(t, ve.Errors, "Title")
}

func TestValidate_EmptyStartScene(t *testing.T) {
	c := validContent()
	c.game.StartScene = ""

	err := validate(c)
	if err == nil {
		t.Fatal("expected error for empty start scene")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "StartScene")
}

func TestValidate_UnknownStartScene(t *testing.T) {
	c := validContent()
	c.game.StartScene = "nonexistent"

	err := validate(c)
	if err == nil {
		t.Fatal("expected error for unknown start scene")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, "start scene")
}

func TestValidate_DanglingEventScene_Warning(t *testing.T) {
	c := validContent()
	c.events = []types.EventDef{
		{ID: "ev", Name: "Ev", Scene: "nowhere"},
	}

	// Should not return error (only warning).
	if err := validate(c); err != nil {
		t.Fatalf("dangling event scene should be warning only, got error: %v", err)
	}
}

func TestValidate_EventWithoutScene_NoWarning(t *testing.T) {
	c := validContent()
	c.events = []types.EventDef{
		{ID: "ev", Name: "Ev"},
	}

	if err := validate(c); err != nil {
		t.Fatalf("scene-less event should validate, got error: %v", err)
	}
}

func TestValidate_DuplicateItemID_Warning(t *testing.T) {
	c := validContent()
	c.items = []types.ItemDef{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	}

	// Should not return error (only warning).
	if err := validate(c); err != nil {
		t.Fatalf("duplicate item ID should be warning only, got error: %v", err)
	}
}

func TestValidate_DuplicateSceneID_Warning(t *testing.T) {
	c := validContent()
	c.scenes = append(c.scenes, types.SceneDef{ID: "home", Name: "Home Again"})

	if err := validate(c); err != nil {
		t.Fatalf("duplicate scene ID should be warning only, got error: %v", err)
	}
}

func TestValidate_MultipleGameBlocks_Warning(t *testing.T) {
	c := validContent()
	c.gameBlocks = 2

	if err := validate(c); err != nil {
		t.Fatalf("multiple Game blocks should be warning only, got error: %v", err)
	}
}

func TestValidate_NegativeMaxStack_Warning(t *testing.T) {
	c := validContent()
	c.items = []types.ItemDef{
		{ID: "odd", Name: "Odd", MaxStack: -3},
	}

	if err := validate(c); err != nil {
		t.Fatalf("negative max_stack should be warning only, got error: %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c := validContent()
	c.game.Title = ""
	c.game.StartScene = "nonexistent"

	err := validate(c)
	if err == nil {
		t.Fatal("expected errors")
	}
	ve := err.(*ValidationError)
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if !strings.Contains(ve.Error(), "2 error(s)") {
		t.Errorf("Error() = %q, expected count in message", ve.Error())
	}
}

// assertContains checks that at least one string in the slice contains substr.
func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected one of %v to contain %q", strs, substr)
}
