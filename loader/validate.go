package loader

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled content for referential integrity and flags
// suspicious definitions. Errors block loading; warnings are printed to
// stderr and do not.
func validate(c *content) error {
	ve := &ValidationError{}

	// Game title required.
	if c.game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}
	if c.gameBlocks > 1 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"%d Game{} blocks found, last definition wins", c.gameBlocks))
	}

	// Build ID sets, flagging duplicates. Catalog lookups resolve to the
	// last definition, so a duplicate loads but is usually a mistake.
	sceneIDs := map[string]bool{}
	for _, d := range c.scenes {
		if sceneIDs[d.ID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"duplicate scene ID %q, last definition wins", d.ID))
		}
		sceneIDs[d.ID] = true
	}
	itemIDs := map[string]bool{}
	for _, d := range c.items {
		if itemIDs[d.ID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"duplicate item ID %q, last definition wins", d.ID))
		}
		itemIDs[d.ID] = true
	}
	eventIDs := map[string]bool{}
	for _, d := range c.events {
		if eventIDs[d.ID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"duplicate event ID %q, last definition wins", d.ID))
		}
		eventIDs[d.ID] = true
	}
	conditionIDs := map[string]bool{}
	for _, d := range c.conditions {
		if conditionIDs[d.ID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"duplicate condition ID %q, last definition wins", d.ID))
		}
		conditionIDs[d.ID] = true
	}

	// Start scene exists.
	if c.game.StartScene == "" {
		ve.Errors = append(ve.Errors, "Game.StartScene is required")
	} else if !sceneIDs[c.game.StartScene] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start scene %q not found in defined scenes", c.game.StartScene))
	}

	// Events name the scene they belong to. A dangling reference is
	// playable (the event just never fires) so it only warns.
	for _, ev := range c.events {
		if ev.Scene != "" && !sceneIDs[ev.Scene] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"event %q scene %q does not match any defined scene", ev.ID, ev.Scene))
		}
	}

	// Negative limits behave as "no limit" at runtime, so they only warn.
	for _, it := range c.items {
		if it.MaxStack < 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"item %q max_stack %d is negative, treated as unlimited", it.ID, it.MaxStack))
		}
		if it.Price < 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"item %q price %d is negative", it.ID, it.Price))
		}
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
