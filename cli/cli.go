// Package cli provides the plain terminal front-end: a prompt loop with
// gameplay commands and slash-prefixed meta-commands for saves and
// settings.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"komorebi/engine"
	"komorebi/engine/save"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Game *engine.Game
	In   io.Reader
	Out  io.Writer
}

// New creates a CLI wired to the given game session.
func New(g *engine.Game) *CLI {
	return &CLI{Game: g, In: os.Stdin, Out: os.Stdout}
}

// Run starts the loop: prompt, input, dispatch, output. It returns when
// the player quits or input ends.
func (c *CLI) Run() {
	meta := c.Game.Catalog.Game()
	c.printLine(meta.Title)
	if meta.Author != "" {
		c.printLine("by " + meta.Author)
	}
	c.printLine("")

	if c.Game.System.Unsaved {
		c.printSystem("An autosaved checkpoint exists. Type /resume to pick it up.")
	}
	c.cmdLook()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		c.handleCommand(input)
	}
}

// handleCommand dispatches gameplay commands.
func (c *CLI) handleCommand(input string) {
	parts := strings.Fields(input)
	verb := strings.ToLower(parts[0])
	args := parts[1:]

	switch verb {
	case "day":
		day := c.Game.AdvanceDay()
		c.printLine(fmt.Sprintf("Day %d begins.", day))
		if c.Game.System.Unsaved {
			c.printSystem("Progress autosaved.")
		}

	case "take", "get":
		c.cmdTake(args, 1)

	case "toss", "drop":
		c.cmdTake(args, -1)

	case "goto", "go":
		if len(args) == 0 {
			c.printLine("Go where?")
			return
		}
		id := args[0]
		if !c.Game.Scenes.TrySetCurrent(id) {
			c.printLine(fmt.Sprintf("There is no place called %q.", id))
			return
		}
		c.cmdLook()

	case "mark":
		if len(args) == 0 {
			c.printLine("Mark which event?")
			return
		}
		id := args[0]
		if !c.Game.Events.MarkSeen(id) {
			c.printLine(fmt.Sprintf("There is no event called %q.", id))
			return
		}
		if def, ok := c.Game.Catalog.Event(id); ok && def.Name != "" {
			c.printLine(fmt.Sprintf("%s happens.", def.Name))
		} else {
			c.printLine(fmt.Sprintf("%s happens.", id))
		}

	case "cond":
		if len(args) == 0 {
			c.printLine(fmt.Sprintf("Current condition: %s", c.conditionName()))
			return
		}
		id := args[0]
		if !c.Game.SetCondition(id) {
			c.printLine(fmt.Sprintf("There is no condition called %q.", id))
			return
		}
		c.printLine(fmt.Sprintf("You feel %s.", c.conditionName()))

	case "mood":
		if len(args) == 0 {
			c.printLine(fmt.Sprintf("Mood: %d", c.Game.Status.Mood()))
			return
		}
		delta, err := strconv.Atoi(args[0])
		if err != nil {
			c.printLine("Mood takes a number, like: mood +10")
			return
		}
		c.Game.Status.AddMood(delta)
		c.printLine(fmt.Sprintf("Mood: %d", c.Game.Status.Mood()))

	case "look", "l":
		c.cmdLook()

	case "items", "inventory", "i":
		c.cmdItems()

	default:
		c.printLine(fmt.Sprintf("I don't know how to %q. Type /help for commands.", verb))
	}
}

// cmdTake adjusts an item count. sign is +1 for take, -1 for toss; the
// optional second argument is the amount, default 1.
func (c *CLI) cmdTake(args []string, sign int) {
	if len(args) == 0 {
		if sign > 0 {
			c.printLine("Take what?")
		} else {
			c.printLine("Toss what?")
		}
		return
	}
	id := args[0]
	n := 1
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v <= 0 {
			c.printLine("The amount must be a positive number.")
			return
		}
		n = v
	}

	if !c.Game.Items.TryAdd(id, sign*n) {
		c.printLine(fmt.Sprintf("There is no item called %q.", id))
		return
	}

	name := id
	if def, ok := c.Game.Catalog.Item(id); ok && def.Name != "" {
		name = def.Name
	}
	c.printLine(fmt.Sprintf("%s x%d.", name, c.Game.Items.Count(id)))
}

func (c *CLI) cmdLook() {
	id := c.Game.Scenes.Current()
	def, ok := c.Game.Catalog.Scene(id)
	if !ok {
		c.printLine("You are nowhere in particular.")
		return
	}
	name := def.Name
	if name == "" {
		name = id
	}
	c.printLine(fmt.Sprintf("Day %d, %s.", c.Game.Day(), name))
	if def.Description != "" {
		c.printLine(def.Description)
	}
}

func (c *CLI) cmdItems() {
	owned := c.Game.Items.Snapshot()
	if len(owned) == 0 {
		c.printLine("You are carrying nothing.")
		return
	}
	for _, it := range owned {
		name := it.ItemID
		if def, ok := c.Game.Catalog.Item(it.ItemID); ok && def.Name != "" {
			name = def.Name
		}
		c.printLine(fmt.Sprintf("  %s x%d", name, it.Count))
	}
}

func (c *CLI) conditionName() string {
	id := c.Game.Status.Condition()
	if id == "" {
		return "nothing in particular"
	}
	if def, ok := c.Game.Catalog.Condition(id); ok && def.Name != "" {
		return def.Name
	}
	return id
}

// handleMeta dispatches meta-commands. Returns true if the game should
// exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/quit", "/exit":
		if c.Game.Dirty() {
			c.printSystem("Unsaved progress discarded.")
		}
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(args)

	case "/load":
		c.cmdLoad(args)

	case "/delete":
		c.cmdDelete(args)

	case "/slots":
		c.cmdSlots()

	case "/checkpoint":
		if err := c.Game.SaveCheckpoint(); err != nil {
			c.printSystem(fmt.Sprintf("Checkpoint failed: %v", err))
			return false
		}
		c.printSystem("Checkpoint written.")

	case "/resume":
		if !c.Game.LoadCheckpoint() {
			c.printSystem("No checkpoint to resume.")
			return false
		}
		c.printSystem("Checkpoint resumed.")
		c.cmdLook()

	case "/settings":
		c.cmdSettings(args)

	case "/state":
		c.cmdState()

	case "/help":
		c.cmdHelp()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

// slotArg parses a 1-based slot number from the first argument.
func (c *CLI) slotArg(args []string) (int, bool) {
	if len(args) == 0 {
		c.printSystem(fmt.Sprintf("Which slot? (1-%d)", save.SlotCount))
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > save.SlotCount {
		c.printSystem(fmt.Sprintf("Slots are numbered 1-%d.", save.SlotCount))
		return 0, false
	}
	return n, true
}

func (c *CLI) cmdSave(args []string) {
	n, ok := c.slotArg(args)
	if !ok {
		return
	}
	if err := c.Game.SaveSlot(n); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Saved to slot %d.", n))
}

func (c *CLI) cmdLoad(args []string) {
	n, ok := c.slotArg(args)
	if !ok {
		return
	}
	if !c.Game.LoadSlot(n) {
		c.printSystem(fmt.Sprintf("Slot %d is empty.", n))
		return
	}
	c.printSystem(fmt.Sprintf("Loaded slot %d.", n))
	c.cmdLook()
}

func (c *CLI) cmdDelete(args []string) {
	n, ok := c.slotArg(args)
	if !ok {
		return
	}
	if err := c.Game.DeleteSlot(n); err != nil {
		c.printSystem(fmt.Sprintf("Delete failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Slot %d cleared.", n))
}

func (c *CLI) cmdSlots() {
	for n := 1; n <= save.SlotCount; n++ {
		sum, ok := c.Game.System.Slot(n)
		if !ok {
			continue
		}
		c.printLine("  " + describeSlot(sum.Slot, sum.SavedAt, sum.SceneID, c.Game))
	}
	if c.Game.System.Unsaved {
		c.printLine("  checkpoint: autosaved progress waiting (/resume)")
	}
}

// describeSlot renders one slot summary line.
func describeSlot(n int, savedAt int64, sceneID string, g *engine.Game) string {
	if savedAt == 0 {
		return fmt.Sprintf("slot %d: empty", n)
	}
	scene := sceneID
	if def, ok := g.Catalog.Scene(sceneID); ok && def.Name != "" {
		scene = def.Name
	}
	return fmt.Sprintf("slot %d: %s (%s)", n, scene, formatStamp(savedAt))
}

// formatStamp renders a save timestamp in the player's local time.
func formatStamp(savedAt int64) string {
	return time.Unix(savedAt, 0).Local().Format("2006-01-02 15:04")
}

func (c *CLI) cmdSettings(args []string) {
	s := c.Game.Settings
	if len(args) == 0 {
		c.printSystem(fmt.Sprintf("bgm %d, se %d, speed %d, autosave %s",
			s.BGMVolume(), s.SEVolume(), s.TextSpeed(), onOff(s.Autosave())))
		return
	}
	if len(args) < 2 {
		c.printSystem("Usage: /settings <bgm|se|speed|autosave> <value>")
		return
	}

	key, val := args[0], args[1]
	switch key {
	case "bgm", "se", "speed":
		v, err := strconv.Atoi(val)
		if err != nil {
			c.printSystem(fmt.Sprintf("%s takes a number.", key))
			return
		}
		switch key {
		case "bgm":
			s.SetBGMVolume(v)
		case "se":
			s.SetSEVolume(v)
		case "speed":
			s.SetTextSpeed(v)
		}
	case "autosave":
		switch val {
		case "on":
			s.SetAutosave(true)
		case "off":
			s.SetAutosave(false)
		default:
			c.printSystem("autosave takes on or off.")
			return
		}
	default:
		c.printSystem(fmt.Sprintf("Unknown setting %q.", key))
		return
	}

	if err := c.Game.ApplySettings(); err != nil {
		c.printSystem(fmt.Sprintf("Settings not saved: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("bgm %d, se %d, speed %d, autosave %s",
		s.BGMVolume(), s.SEVolume(), s.TextSpeed(), onOff(s.Autosave())))
}

func (c *CLI) cmdState() {
	g := c.Game
	v := g.Vitals()
	c.printSystem(fmt.Sprintf("Day: %d", g.Day()))
	c.printSystem(fmt.Sprintf("Scene: %s (%d visited)", g.Scenes.Current(), g.Scenes.VisitedCount()))
	c.printSystem(fmt.Sprintf("Vitals: Lv%d HP %d/%d Exp %d Favor %d", v.Level, v.HP, v.MaxHP, v.Exp, v.Favor))
	c.printSystem(fmt.Sprintf("Condition: %s, mood %d", c.conditionName(), g.Status.Mood()))
	c.printSystem(fmt.Sprintf("Events seen: %d", g.Events.SeenCount()))
	if g.Dirty() {
		c.printSystem("Unsaved changes.")
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save <n>      — Save to slot n",
		"  /load <n>      — Load slot n",
		"  /delete <n>    — Clear slot n",
		"  /slots         — List save slots",
		"  /checkpoint    — Write an autosave checkpoint",
		"  /resume        — Resume the autosave checkpoint",
		"  /settings      — Show or change settings",
		"  /state         — Show the session state",
		"  /quit          — Exit game",
		"",
		"Game commands:",
		"  day                 — Advance to the next day",
		"  take <item> [n]     — Pick items up",
		"  toss <item> [n]     — Put items down",
		"  goto <scene>        — Move to a scene",
		"  mark <event>        — Mark an event as seen",
		"  cond [id]           — Show or set your condition",
		"  mood [±n]           — Show or nudge your mood",
		"  look (l)            — Describe where you are",
		"  items (i)           — List what you carry",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
