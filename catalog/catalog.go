// Package catalog holds the immutable game content compiled by the loader
// and answers ID lookups for the rest of the engine.
package catalog

import (
	"sort"

	"komorebi/types"
)

// Catalog stores the declared content lists and a derived ID index.
// The index is dropped when the lists change and rebuilt on demand.
type Catalog struct {
	game       types.GameDef
	items      []types.ItemDef
	scenes     []types.SceneDef
	events     []types.EventDef
	conditions []types.ConditionDef

	itemIndex      map[string]types.ItemDef
	sceneIndex     map[string]types.SceneDef
	eventIndex     map[string]types.EventDef
	conditionIndex map[string]types.ConditionDef
	indexed        bool
}

// New builds a catalog from declared content lists. The lookup index is
// built immediately so duplicate handling is settled at construction time.
func New(game types.GameDef, items []types.ItemDef, scenes []types.SceneDef, events []types.EventDef, conditions []types.ConditionDef) *Catalog {
	c := &Catalog{
		game:       game,
		items:      items,
		scenes:     scenes,
		events:     events,
		conditions: conditions,
	}
	c.buildIndex()
	return c
}

// Reload replaces the declared lists and drops the lookup index.
// The index is rebuilt on the next lookup.
func (c *Catalog) Reload(game types.GameDef, items []types.ItemDef, scenes []types.SceneDef, events []types.EventDef, conditions []types.ConditionDef) {
	c.game = game
	c.items = items
	c.scenes = scenes
	c.events = events
	c.conditions = conditions
	c.indexed = false
}

// buildIndex maps declared IDs to their definitions. Entries with an empty
// ID are skipped; when an ID is declared more than once the later entry wins.
func (c *Catalog) buildIndex() {
	c.itemIndex = make(map[string]types.ItemDef, len(c.items))
	for _, def := range c.items {
		if def.ID == "" {
			continue
		}
		c.itemIndex[def.ID] = def
	}
	c.sceneIndex = make(map[string]types.SceneDef, len(c.scenes))
	for _, def := range c.scenes {
		if def.ID == "" {
			continue
		}
		c.sceneIndex[def.ID] = def
	}
	c.eventIndex = make(map[string]types.EventDef, len(c.events))
	for _, def := range c.events {
		if def.ID == "" {
			continue
		}
		c.eventIndex[def.ID] = def
	}
	c.conditionIndex = make(map[string]types.ConditionDef, len(c.conditions))
	for _, def := range c.conditions {
		if def.ID == "" {
			continue
		}
		c.conditionIndex[def.ID] = def
	}
	c.indexed = true
}

func (c *Catalog) ensureIndex() {
	if !c.indexed {
		c.buildIndex()
	}
}

// Game returns the game metadata block.
func (c *Catalog) Game() types.GameDef {
	return c.game
}

// Item returns the item definition for the given ID.
func (c *Catalog) Item(id string) (types.ItemDef, bool) {
	c.ensureIndex()
	def, ok := c.itemIndex[id]
	return def, ok
}

// Scene returns the scene definition for the given ID.
func (c *Catalog) Scene(id string) (types.SceneDef, bool) {
	c.ensureIndex()
	def, ok := c.sceneIndex[id]
	return def, ok
}

// Event returns the event definition for the given ID.
func (c *Catalog) Event(id string) (types.EventDef, bool) {
	c.ensureIndex()
	def, ok := c.eventIndex[id]
	return def, ok
}

// Condition returns the condition definition for the given ID.
func (c *Catalog) Condition(id string) (types.ConditionDef, bool) {
	c.ensureIndex()
	def, ok := c.conditionIndex[id]
	return def, ok
}

// HasItem reports whether the ID names a declared item.
func (c *Catalog) HasItem(id string) bool {
	_, ok := c.Item(id)
	return ok
}

// HasScene reports whether the ID names a declared scene.
func (c *Catalog) HasScene(id string) bool {
	_, ok := c.Scene(id)
	return ok
}

// HasEvent reports whether the ID names a declared event.
func (c *Catalog) HasEvent(id string) bool {
	_, ok := c.Event(id)
	return ok
}

// HasCondition reports whether the ID names a declared condition.
func (c *Catalog) HasCondition(id string) bool {
	_, ok := c.Condition(id)
	return ok
}

// Items returns the indexed items sorted by ID.
func (c *Catalog) Items() []types.ItemDef {
	c.ensureIndex()
	out := make([]types.ItemDef, 0, len(c.itemIndex))
	for _, def := range c.itemIndex {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Scenes returns the indexed scenes sorted by ID.
func (c *Catalog) Scenes() []types.SceneDef {
	c.ensureIndex()
	out := make([]types.SceneDef, 0, len(c.sceneIndex))
	for _, def := range c.sceneIndex {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Events returns the indexed events sorted by ID.
func (c *Catalog) Events() []types.EventDef {
	c.ensureIndex()
	out := make([]types.EventDef, 0, len(c.eventIndex))
	for _, def := range c.eventIndex {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Conditions returns the indexed conditions sorted by ID.
func (c *Catalog) Conditions() []types.ConditionDef {
	c.ensureIndex()
	out := make([]types.ConditionDef, 0, len(c.conditionIndex))
	for _, def := range c.conditionIndex {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
